package auth

import (
	"context"
	"errors"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
	"github.com/medorahq/clinic-api/internal/repository/sqlstore"
	"github.com/medorahq/clinic-api/pkg/auth"
	apperrors "github.com/medorahq/clinic-api/pkg/errors"
	"github.com/medorahq/clinic-api/pkg/security"
)

// Service validates credentials and issues bearer tokens. Tokens are
// stateless; there is no revocation.
type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
	hasher   security.PasswordHasher
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   hasher,
	}
}

// Login checks the password against the stored hash and returns a signed
// token with the user's role. Missing user and bad password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sqlstore.ErrNotFound) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	token, err := s.jwtSvc.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.LoginResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// Verify parses and validates a bearer token.
func (s *Service) Verify(token string) (*auth.Claims, error) {
	claims, err := s.jwtSvc.Verify(token)
	if err != nil {
		return nil, apperrors.InvalidToken(err)
	}
	return claims, nil
}
