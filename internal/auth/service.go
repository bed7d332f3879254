package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/identity"
)

// Service turns verified credentials into identity tokens.
type Service struct {
	users  *identity.Service
	tokens *TokenService
}

// NewService wires the credential check to the token issuer.
func NewService(users *identity.Service, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// Login authenticates the email/password pair and issues a token for the user.
func (s *Service) Login(ctx context.Context, email, password string) (string, identity.User, error) {
	user, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return "", identity.User{}, err
	}
	token, err := s.tokens.Issue(ClaimsFor(user))
	if err != nil {
		return "", identity.User{}, err
	}
	return token, user, nil
}

// ClaimsFor builds the token payload identifying user.
func ClaimsFor(user identity.User) Claims {
	return Claims{
		Username:         user.Username,
		Email:            user.Email,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID},
	}
}
