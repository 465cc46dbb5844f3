package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/agrofix/storefront-api/internal/domain/entity"
	"github.com/agrofix/storefront-api/internal/domain/repository"
	"github.com/agrofix/storefront-api/pkg/helpers"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AdminService verifies administrator credentials and issues session tokens.
type AdminService struct {
	Repo   repository.AdminRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewAdminService(repo repository.AdminRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *AdminService {
	return &AdminService{Repo: repo, Tokens: tokens, Logger: logger}
}

// Login verifies the email/password pair against the stored bcrypt hash and
// returns a signed session token. The raw password is never logged.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	a, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, ErrAdminNotFound
		}
		return "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(a.Password, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.Tokens.Issue(a.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("admin_id", a.ID).Error("issue token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// EnsureSeedAdmin creates the bootstrap administrator when the store holds
// no admin record yet. Called once at startup.
func (s *AdminService) EnsureSeedAdmin(ctx context.Context, email, password string) error {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	a := &entity.Admin{Email: email, Password: hash}
	if err := s.Repo.Create(ctx, a); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("email", email).Info("seed admin created")
	}
	return nil
}
