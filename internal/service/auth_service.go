package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/alumnifc/clubledger/internal/auth"
	"github.com/alumnifc/clubledger/pkg/clubapi"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

var _ clubapi.AuthServiceHandler = (*AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login authenticates an operator and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[clubapi.LoginRequest]) (*connect.Response[clubapi.LoginResponse], error) {
	s.logger.Info("Login request", "operator", req.Msg.Operator)

	if req.Msg.Operator == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	op, err := s.authenticator.Authenticate(ctx, req.Msg.Operator, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "operator", req.Msg.Operator, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, expires, err := s.jwtManager.Generate(op)
	if err != nil {
		s.logger.Error("Failed to generate token", "operator", op.Name, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Operator logged in", "operator", op.Name)
	return connect.NewResponse(&clubapi.LoginResponse{
		Token:     token,
		ExpiresAt: expires.Unix(),
	}), nil
}
