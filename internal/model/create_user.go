package model

type CreateUserDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
