package request

type CreateCarRequest struct {
	PlateNumber string `json:"plate_number" validate:"required,min=2,max=12"`
	Model       string `json:"model" validate:"omitempty,max=50"`
	Size        string `json:"size" validate:"required,oneof=small medium large"`
}
