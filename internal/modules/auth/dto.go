package auth

import "github.com/bryerblack/projeto-principios-dev-web/internal/domain"

type RegisterRequest struct {
	Name       string `json:"name" binding:"required" validate:"required"`
	Email      string `json:"email" binding:"required" validate:"required,email"`
	Password   string `json:"password" binding:"required" validate:"required,senha"`
	Phone      string `json:"phone" binding:"required" validate:"required"`
	Profession string `json:"profession"`
	Role       string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
