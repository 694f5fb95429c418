package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/technotes-api/internal/models"
	"github.com/yukikurage/technotes-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingUserFields       = errors.New("username and password are required")
	ErrMissingUserUpdateFields = errors.New("id, username, roles and active are required")
	ErrMissingUserID           = errors.New("user id is required")
	ErrNoUsers                 = errors.New("no users found")
	ErrUserNotFound            = errors.New("user not found")
	ErrDuplicateUsername       = errors.New("username already exists")
	ErrUserHasNotes            = errors.New("user has assigned notes")
	ErrInvalidUserData         = errors.New("invalid user data received")
	ErrFailedToHashPassword    = errors.New("failed to hash password")
	ErrPasswordTooLong         = errors.New("password exceeds 72 bytes")
)

// UserService handles user business logic
type UserService struct {
	userRepo   repository.UserRepository
	noteRepo   repository.NoteRepository
	bcryptCost int
}

// NewUserService creates a new UserService. A non-positive cost selects bcrypt.DefaultCost.
func NewUserService(userRepo repository.UserRepository, noteRepo repository.NoteRepository, bcryptCost int) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		userRepo:   userRepo,
		noteRepo:   noteRepo,
		bcryptCost: bcryptCost,
	}
}

// CreateUserInput represents input for creating a user. Empty Roles selects the default role.
type CreateUserInput struct {
	Username string
	Password string
	Roles    []string
}

// UpdateUserInput represents a full replacement of a user's mutable fields.
// Password is optional and only rehashed when non-empty.
type UpdateUserInput struct {
	ID       string
	Username string
	Roles    []string
	Active   *bool
	Password string
}

// ListUsers returns every user
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	return users, nil
}

// CreateUser validates input, rejects duplicate usernames and stores the user
// with a hashed password.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if blank(input.Username) || input.Password == "" {
		return nil, ErrMissingUserFields
	}

	if err := s.ensureUsernameFree(ctx, input.Username, ""); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = append([]string(nil), models.DefaultRoles...)
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: hash,
		Roles:        roles,
		Active:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if user.ID == "" {
		return nil, ErrInvalidUserData
	}

	return user, nil
}

// UpdateUser replaces username, roles and active flag, and the password when one is given.
func (s *UserService) UpdateUser(ctx context.Context, input UpdateUserInput) (*models.User, error) {
	if input.ID == "" || blank(input.Username) || len(input.Roles) == 0 || input.Active == nil {
		return nil, ErrMissingUserUpdateFields
	}

	user, err := s.findUser(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUsernameFree(ctx, input.Username, user.ID); err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.Roles = input.Roles
	user.Active = *input.Active

	if input.Password != "" {
		hash, err := s.hashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, ErrDuplicateUsername
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		default:
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return user, nil
}

// DeleteUser removes a user that no note references, returning the removed record.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, ErrMissingUserID
	}

	hasNotes, err := s.noteRepo.ExistsForUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check user notes: %w", err)
	}
	if hasNotes {
		return nil, ErrUserHasNotes
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return user, nil
}

func (s *UserService) findUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ensureUsernameFree fails when another user (any id but selfID) holds the username.
func (s *UserService) ensureUsernameFree(ctx context.Context, username, selfID string) error {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check username: %w", err)
	case existing.ID != selfID:
		return ErrDuplicateUsername
	default:
		return nil
	}
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToHashPassword, err)
	}
	return string(hash), nil
}
