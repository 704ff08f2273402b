package handler

type createCategoryRequest struct {
	Name     string `json:"name"      validate:"required"`
	ParentID int64  `json:"parent_id"`
}

type categoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID int64  `json:"parent_id,omitempty"`
}
