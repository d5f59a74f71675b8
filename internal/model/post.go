package model

import "github.com/jackc/pgx/v5/pgtype"

type Category string

const (
	CategoryNews       Category = "news"
	CategorySports     Category = "sports"
	CategoryCulture    Category = "culture"
	CategoryTechnology Category = "technology"
)

type Post struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Category  Category           `json:"category"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
