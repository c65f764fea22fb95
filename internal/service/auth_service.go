package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/hireai/hireai/internal/dto"
	"github.com/hireai/hireai/internal/model"
	"github.com/hireai/hireai/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService issues bearer tokens for the HR and VP portals. Credentials
// live server-side only; tokens are opaque uuids held in memory and die with
// the process.
type AuthService interface {
	Login(username, password string) (*dto.LoginResponse, error)
	Validate(token string) (*model.User, error)
	SeedDefaultUsers()
}

type authService struct {
	userRepo repository.UserRepository

	mu     sync.RWMutex
	tokens map[string]*model.User
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   make(map[string]*model.User),
	}
}

func (s *authService) Login(username, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = user
	s.mu.Unlock()

	log.Info().Str("username", user.Username).Str("role", user.Role).Msg("User logged in")
	return &dto.LoginResponse{Token: token, Username: user.Username, Role: user.Role}, nil
}

func (s *authService) Validate(token string) (*model.User, error) {
	s.mu.RLock()
	user, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// SeedDefaultUsers creates the initial HR and VP accounts if they do not
// exist yet. The default passwords must be rotated after first login.
func (s *authService) SeedDefaultUsers() {
	seeds := []struct {
		username string
		password string
		role     string
	}{
		{"hr_admin", "hr_admin_2024", model.RoleHR},
		{"vp_admin", "vp_admin_2024", model.RoleVP},
	}
	for _, seed := range seeds {
		if _, err := s.userRepo.FindByUsername(seed.username); err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Str("username", seed.username).Msg("Failed to hash seed password")
			continue
		}
		user := &model.User{
			Username:     seed.username,
			PasswordHash: string(hash),
			Role:         seed.role,
		}
		if err := s.userRepo.Create(user); err != nil {
			log.Error().Err(err).Str("username", seed.username).Msg("Failed to seed user")
			continue
		}
		log.Info().Str("username", seed.username).Str("role", seed.role).Msg("Seeded default user")
	}
}
