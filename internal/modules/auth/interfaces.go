package auth

import (
	"context"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type TokenService interface {
	GenerateToken(userID, role string) (string, error)
}
