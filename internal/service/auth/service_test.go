package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository/sqlstore"
	"github.com/medorahq/clinic-api/pkg/auth"
	apperrors "github.com/medorahq/clinic-api/pkg/errors"
	"github.com/medorahq/clinic-api/pkg/security"
)

type stubUserRepo struct {
	user *model.User
	err  error
}

func (r *stubUserRepo) Create(context.Context, *model.User) error { return nil }

func (r *stubUserRepo) GetByUsername(context.Context, string) (*model.User, error) {
	return r.user, r.err
}

func (r *stubUserRepo) List(context.Context) ([]*model.User, error) { return nil, nil }

func (r *stubUserRepo) Count(context.Context) (int, error) { return 0, nil }

func newLoginService(t *testing.T, repo *stubUserRepo) *Service {
	t.Helper()
	return NewService(repo, auth.NewJWTService("test-secret", time.Hour), security.NewBcryptHasher(4))
}

func TestLogin(t *testing.T) {
	hasher := security.NewBcryptHasher(4)
	hash, err := hasher.Hash("letmein-123")
	require.NoError(t, err)

	repo := &stubUserRepo{user: &model.User{
		ID:           3,
		Username:     "drsmith",
		PasswordHash: hash,
		Role:         model.RoleDoctor,
	}}
	svc := newLoginService(t, repo)

	resp, err := svc.Login(context.Background(), "drsmith", "letmein-123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "drsmith", resp.User.Username)
	assert.Equal(t, model.RoleDoctor, resp.User.Role)

	claims, err := svc.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newLoginService(t, &stubUserRepo{err: sqlstore.ErrNotFound})

	_, err := svc.Login(context.Background(), "ghost", "whatever-1")
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus())
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	hasher := security.NewBcryptHasher(4)
	hash, err := hasher.Hash("letmein-123")
	require.NoError(t, err)

	svc := newLoginService(t, &stubUserRepo{user: &model.User{
		Username:     "drsmith",
		PasswordHash: hash,
		Role:         model.RoleDoctor,
	}})

	_, err = svc.Login(context.Background(), "drsmith", "wrong-password")
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus())
}

func TestLoginRepositoryFailure(t *testing.T) {
	svc := newLoginService(t, &stubUserRepo{err: assert.AnError})

	_, err := svc.Login(context.Background(), "drsmith", "letmein-123")
	require.Error(t, err)

	// A backend fault is a server error, not a credentials problem.
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus())
	assert.Equal(t, "internal server error", appErr.Message)
	assert.ErrorIs(t, err, assert.AnError)
}
