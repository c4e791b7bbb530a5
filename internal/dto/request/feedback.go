package request

type CreateFeedbackRequest struct {
	WashID  string `json:"wash_id" validate:"required,uuid4"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=500"`
}
