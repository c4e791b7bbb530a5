package request

type UpsertContentRequest struct {
	Slug  string `json:"slug" validate:"required,min=2,max=60"`
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required"`
}

type CreateBranchRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	City string `json:"city" validate:"omitempty,max=100"`
}
