package services

import (
	"context"
	"errors"

	"blogicum/models"
	"blogicum/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, claims *Claims) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
	validate StructValidator
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService, validate StructValidator) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, validate: validate}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := s.validate.ValidateStruct(req); err != nil {
		return nil, err
	}

	var conflicts models.ErrorValidation
	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		conflicts = conflicts.Add("username", "A user with that username already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		conflicts = conflicts.Add("email", "A user with that email already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if len(conflicts.Fields) > 0 {
		return nil, conflicts
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashedPassword),
		Role:      models.RoleAuthor,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("username", "A user with that username already exists.")
		}
		return nil, err
	}

	return s.respond(user)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validate.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	return s.respond(user)
}

func (s *authService) Logout(ctx context.Context, claims *Claims) error {
	return s.tokens.Revoke(ctx, claims)
}

func (s *authService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}

func (s *authService) respond(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}
