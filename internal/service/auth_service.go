package service

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	appErr "github.com/xxxsen/mblog/internal/pkg/errors"
	"github.com/xxxsen/mblog/internal/pkg/token"
	"github.com/xxxsen/mblog/internal/store"
)

type AuthService struct {
	store  store.Store
	tokens *token.Service
}

func NewAuthService(st store.Store, tokens *token.Service) *AuthService {
	return &AuthService{store: st, tokens: tokens}
}

// Login looks the user up by exact email+password match and issues a
// token on success. A store failure and a failed match collapse into
// the same ErrUnauthorized so the response cannot be used to probe
// which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.FindUser(ctx, email, password)
	if err != nil {
		if !appErr.IsNotFound(err) {
			logutil.GetLogger(ctx).Error("login lookup failed", zap.Error(err))
		}
		return "", appErr.ErrUnauthorized
	}
	raw, err := s.tokens.Issue(token.Identity{Email: user.Email, Password: user.Password})
	if err != nil {
		logutil.GetLogger(ctx).Error("token issue failed", zap.Error(err))
		return "", appErr.ErrUnauthorized
	}
	return raw, nil
}
