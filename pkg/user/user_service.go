package user

import (
	"context"
	"errors"
	"strings"

	"Food-Inventory/domain"
	"Food-Inventory/entities"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt ignores everything past 72 bytes, so longer passwords are rejected.
const maxPasswordBytes = 72

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		CountUsers(ctx context.Context) (int64, error)
	}

	userService struct {
		userRepository UserRepository
		cost           int
		dummyHash      []byte
	}
)

func NewUserService(userRepository UserRepository, cost int) UserService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("food-inventory"), cost)
	return &userService{
		userRepository: userRepository,
		cost:           cost,
		dummyHash:      dummyHash,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || strings.TrimSpace(req.Password) == "" {
		return domain.RegisterResponse{}, domain.ErrMissingCredentials
	}
	if len(req.Password) > maxPasswordBytes {
		return domain.RegisterResponse{}, domain.ErrPasswordTooLong
	}

	exists, err := s.userRepository.CheckUsername(ctx, req.Username)
	if err != nil {
		return domain.RegisterResponse{}, domain.StorageError("check username", err)
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return domain.RegisterResponse{}, domain.ValidationError(err)
	}

	user := &entities.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.userRepository.RegisterUser(ctx, user); err != nil {
		// Two concurrent registrations can both pass the check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, domain.ErrDuplicateUsername
		}
		return domain.RegisterResponse{}, domain.StorageError("register user", err)
	}

	return domain.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// Login verifies the credentials. Unknown usernames and wrong passwords return
// the same error, and an unknown username still pays for a hash comparison.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return domain.LoginResponse{}, domain.ErrMissingCredentials
	}

	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, domain.StorageError("get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	return domain.LoginResponse{Username: user.Username}, nil
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	count, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return 0, domain.StorageError("count users", err)
	}
	return count, nil
}
