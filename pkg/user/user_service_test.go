package user_test

import (
	"context"
	"strings"
	"testing"

	"Food-Inventory/domain"
	"Food-Inventory/entities"
	"Food-Inventory/internal/testutil"
	"Food-Inventory/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (user.UserService, user.UserRepository) {
	t.Helper()
	repo := user.NewUserRepository(testutil.NewTestDB(t))
	return user.NewUserService(repo, bcrypt.MinCost), repo
}

func TestRegisterStoresHash(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	res, err := service.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, "alice", res.Username)

	stored, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	_, err := service.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "one"})
	require.NoError(t, err)

	_, err = service.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "two"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	assert.ErrorIs(t, err, domain.ErrConflict)

	count, err := service.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRegisterDuplicateKeyFromStore(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	require.NoError(t, db.Create(&entities.User{Username: "bob", PasswordHash: "x"}).Error)

	service := user.NewUserService(&blindRepository{UserRepository: user.NewUserRepository(db)}, bcrypt.MinCost)
	_, err := service.Register(ctx, domain.RegisterRequest{Username: "bob", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	_, err := service.Register(ctx, domain.RegisterRequest{Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = service.Register(ctx, domain.RegisterRequest{Username: "   ", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = service.Register(ctx, domain.RegisterRequest{Username: "alice", Password: " \t "})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	count, err := service.CountUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = service.Register(ctx, domain.RegisterRequest{Username: "alice", Password: strings.Repeat("a", 73)})
	assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegisterTrimsUsername(t *testing.T) {
	ctx := context.Background()
	service, repo := newService(t)

	res, err := service.Register(ctx, domain.RegisterRequest{Username: "  alice ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)

	_, err = repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)

	_, err = service.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	_, err = service.Login(ctx, domain.LoginRequest{Username: " alice", Password: "s3cret"})
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t)

	_, err := service.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	res, err := service.Login(ctx, domain.LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)

	_, err = service.Login(ctx, domain.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, err, domain.ErrAuthentication)

	_, err = service.Login(ctx, domain.LoginRequest{Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

// blindRepository reports every username as free so the unique index is what
// rejects the duplicate.
type blindRepository struct {
	user.UserRepository
}

func (r *blindRepository) CheckUsername(context.Context, string) (bool, error) {
	return false, nil
}
