package model

type CreatePostDTO struct {
	UserID   int64    `json:"user_id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
}
