package model

// PostWithAuthor is a read-only joined projection of a post and its author.
// It is computed per query and never persisted.
type PostWithAuthor struct {
	Post
	Username string `json:"username"`
	Email    string `json:"email"`
}
