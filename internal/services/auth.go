package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"hallbooking/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type authService struct {
	userRepo       domain.UserRepository
	roleRepo       domain.RoleRepository
	hasher         domain.PasswordHasher
	issuer         domain.TokenIssuer
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewAuthService creates an AuthService with the given repositories, password
// hasher, and token issuer. New signups get the resident role.
func NewAuthService(
	userRepo domain.UserRepository,
	roleRepo domain.RoleRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	timeout time.Duration,
) domain.AuthService {
	return &authService{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		hasher:         hasher,
		issuer:         issuer,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password, name, room string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(email, hash, salt, strings.TrimSpace(name), strings.TrimSpace(room), now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	role, err := s.roleRepo.GetByCode(ctx, domain.RoleResident)
	if err != nil {
		return nil, fmt.Errorf("failed to get role %q: %w", domain.RoleResident, err)
	}
	if err := s.userRepo.AssignRole(ctx, user.ID, role.ID); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	roles, err := s.roleRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load roles: %w", err)
	}
	roleCodes := make([]string, len(roles))
	for i, r := range roles {
		roleCodes[i] = r.Code
	}

	token, err := s.issuer.Issue(user.ID, user.Email, roleCodes, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, user, nil
}

func (s *authService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.userRepo.GetByID(ctx, id)
}
