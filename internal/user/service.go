package user

import (
	"context"
	"errors"
	"strings"
)

// Service defines the business logic for accounts.
type Service interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Login(ctx context.Context, params LoginParams) (*User, string, error)
	GetByID(ctx context.Context, id uint) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	email := strings.TrimSpace(strings.ToLower(params.Email))
	if email == "" || params.Password == "" {
		return nil, errors.New("email and password are required")
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		FullName:     params.FullName,
		Email:        email,
		PhoneNumber:  params.PhoneNumber,
		Address:      params.Address,
		Role:         "buyer",
		PasswordHash: hash,
	}

	return s.repo.CreateUser(ctx, u)
}

// Login returns the user plus a signed access token.
func (s *service) Login(ctx context.Context, params LoginParams) (*User, string, error) {
	email := strings.TrimSpace(strings.ToLower(params.Email))

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !CheckPasswordHash(params.Password, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}
