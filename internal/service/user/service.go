package user

import (
	"context"
	"fmt"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
	"github.com/medorahq/clinic-api/pkg/security"
)

// Service provisions staff accounts. There is no self-registration and no
// default seeding: accounts are created explicitly by an operator.
type Service struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
}

func NewService(userRepo repository.UserRepository, hasher security.PasswordHasher) *Service {
	return &Service{userRepo: userRepo, hasher: hasher}
}

func (s *Service) Provision(ctx context.Context, username, password, role string) (*model.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("role must be one of admin, doctor, reception")
	}

	if existing, err := s.userRepo.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, fmt.Errorf("username %q already exists", username)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.userRepo.Count(ctx)
}
