package handler

import "time"

type createReviewRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Comment   string `json:"comment"`
	Grade     int    `json:"grade"      validate:"required,gte=1,lte=5"`
}

type reviewResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProductID   int64     `json:"product_id"`
	Comment     string    `json:"comment,omitempty"`
	CommentDate time.Time `json:"comment_date"`
	Grade       int       `json:"grade"`
}
