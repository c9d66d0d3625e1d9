package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already exists")
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	// bcrypt rejects longer inputs.
	maxPasswordLength = 72
)

// AuthService checks credentials against the user store and creates accounts.
type AuthService struct {
	users  repo.UserRepository
	issuer *Issuer
}

func NewAuthService(users repo.UserRepository, issuer *Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

func (a *AuthService) Issuer() *Issuer {
	return a.issuer
}

// Login returns a signed token for valid credentials. Unknown users and wrong passwords
// are indistinguishable to the caller.
func (a *AuthService) Login(ctx context.Context, username, password string) (string, models.User, error) {
	user, err := a.users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repo.ErrUserNotFound) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.User{}, &apperr.StoreUnavailableError{Op: "login", Err: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := a.issuer.GenerateToken(user)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

// CreateUser hashes the password and stores a new account with the given role.
func (a *AuthService) CreateUser(ctx context.Context, username, password, role string) (models.User, error) {
	const op = "create user"

	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength {
		return models.User{}, apperr.Validation(op, "username", "must be at least 3 characters")
	}
	if len(password) < minPasswordLength {
		return models.User{}, apperr.Validation(op, "password", "must be at least 6 characters")
	}
	if len(password) > maxPasswordLength {
		return models.User{}, apperr.Validation(op, "password", "must be at most 72 bytes")
	}
	if role == "" {
		role = models.RoleStaff
	}
	if role != models.RoleAdmin && role != models.RoleStaff {
		return models.User{}, apperr.Validation(op, "role", "must be admin or staff")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.users.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
	})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.User{}, ErrUserExists
	}
	if err != nil {
		return models.User{}, &apperr.StoreUnavailableError{Op: op, Err: err}
	}
	return user, nil
}
