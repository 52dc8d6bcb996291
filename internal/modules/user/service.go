package user

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/authz"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/validator"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update lets a user edit their own profile; admins may edit anyone and are
// the only ones allowed to change roles.
func (s *Service) Update(ctx context.Context, actorID string, actorRole domain.Role, id string, req UpdateUserRequest) (*domain.User, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.Allowed(actorRole, actorID, u.ID, domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != u.Email {
			if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
				return nil, ErrEmailTaken
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		u.Email = email
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Profession != nil {
		u.Profession = *req.Profession
	}
	if req.Role != nil {
		role, ok := domain.ParseRole(*req.Role)
		if !ok {
			return nil, ErrValidation
		}
		if actorRole != domain.RoleAdmin {
			return nil, ErrForbidden
		}
		u.Role = role
	}

	if err := s.users.Update(ctx, u); err != nil {
		// the unique index still wins races the pre-check misses
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// ChangePassword verifies the current password before storing the new hash.
// Admins may reset anyone's password without the current one.
func (s *Service) ChangePassword(ctx context.Context, actorID string, actorRole domain.Role, id string, req ChangePasswordRequest) error {
	if errs := validator.Validate(req); errs != nil {
		return ErrValidation
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.Allowed(actorRole, actorID, u.ID, domain.RoleAdmin) {
		return ErrForbidden
	}

	if actorRole != domain.RoleAdmin {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)) != nil {
			return ErrInvalidPassword
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, string(hash))
}

func (s *Service) Delete(ctx context.Context, actorID string, actorRole domain.Role, id string) error {
	if !authz.Allowed(actorRole, actorID, "", domain.RoleAdmin) {
		return ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
