package services

import (
	"context"
	"log"

	"tasktrack/internal/models"
	"tasktrack/internal/repositories"
)

type UserService interface {
	// Register creates the user, seeds the default categories and fires the
	// welcome email. Uniqueness violations surface as ErrUsernameTaken /
	// ErrEmailTaken.
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	// Authenticate returns ErrInvalidCredentials for both an unknown username
	// and a password mismatch.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type userService struct {
	users        repositories.UserRepository
	categories   repositories.CategoryRepository
	authService  AuthService
	emailService EmailService
}

func NewUserService(
	users repositories.UserRepository,
	categories repositories.CategoryRepository,
	authService AuthService,
	emailService EmailService,
) UserService {
	return &userService{
		users:        users,
		categories:   categories,
		authService:  authService,
		emailService: emailService,
	}
}

func (s *userService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrUsernameTaken
	}

	taken, err = s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrEmailTaken
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	for _, def := range models.DefaultCategories {
		category := models.Category{
			UserID: user.ID,
			Name:   def.Name,
			Color:  def.Color,
		}
		if err := s.categories.Store(ctx, &category); err != nil {
			return nil, err
		}
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Username); err != nil {
			// warn but do not fail registration
			log.Printf("[user][register] warning: welcome email to %s failed: %v", user.Email, err)
		}
	}

	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if err == models.ErrNotFound {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.authService.CheckPassword(user.PasswordHash, password) {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}
