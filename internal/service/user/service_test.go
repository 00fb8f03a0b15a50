package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/pkg/security"
)

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, assert.AnError
}

func (r *fakeUserRepo) List(_ context.Context) ([]*model.User, error) {
	out := []*model.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

func TestProvision(t *testing.T) {
	svc := NewService(newFakeUserRepo(), security.NewBcryptHasher(4))

	user, err := svc.Provision(context.Background(), "drsmith", "letmein-123", model.RoleDoctor)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, model.RoleDoctor, user.Role)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "letmein-123", user.PasswordHash)
}

func TestProvisionRejectsEmptyUsername(t *testing.T) {
	svc := NewService(newFakeUserRepo(), security.NewBcryptHasher(4))

	_, err := svc.Provision(context.Background(), "", "letmein-123", model.RoleDoctor)
	assert.Error(t, err)
}

func TestProvisionRejectsUnknownRole(t *testing.T) {
	svc := NewService(newFakeUserRepo(), security.NewBcryptHasher(4))

	_, err := svc.Provision(context.Background(), "drsmith", "letmein-123", "superuser")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")
}

func TestProvisionRejectsDuplicateUsername(t *testing.T) {
	svc := NewService(newFakeUserRepo(), security.NewBcryptHasher(4))

	_, err := svc.Provision(context.Background(), "drsmith", "letmein-123", model.RoleDoctor)
	require.NoError(t, err)

	_, err = svc.Provision(context.Background(), "drsmith", "other-pass-1", model.RoleAdmin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestProvisionRejectsShortPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), security.NewBcryptHasher(4))

	_, err := svc.Provision(context.Background(), "drsmith", "short", model.RoleDoctor)
	assert.ErrorIs(t, err, security.ErrPasswordTooShort)
}
