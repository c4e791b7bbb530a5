package response

import (
	"carwash-booking/internal/data/entity"
)

type ContentResponse struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func ContentToResponse(content *entity.Content) ContentResponse {
	return ContentResponse{
		Slug:  content.Slug,
		Title: content.Title,
		Body:  content.Body,
	}
}

type BranchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

func BranchToResponse(branch *entity.Branch) BranchResponse {
	return BranchResponse{
		ID:   branch.ID.String(),
		Name: branch.Name,
		City: branch.City,
	}
}
