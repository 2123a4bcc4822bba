package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/domain/repositories"
	"nodex-club.backend/pkg/logger"
	"nodex-club.backend/pkg/redis"
)

// AuthUsecase resolves recruiter auth keys into request sessions. The remote
// auth_keys lookup is fronted by a short-TTL Redis cache so a burst of
// dashboard requests does not re-fetch the same key every time.
type AuthUsecase struct {
	authKeyRepo repositories.AuthKeyRepository
	cache       *redis.AuthCache
}

// NewAuthUsecase creates a new auth usecase. cache may be nil, in which case
// every resolution hits the record store.
func NewAuthUsecase(authKeyRepo repositories.AuthKeyRepository, cache *redis.AuthCache) *AuthUsecase {
	return &AuthUsecase{
		authKeyRepo: authKeyRepo,
		cache:       cache,
	}
}

// Resolve validates an opaque auth key and returns the session context for
// the request. ErrAuthInvalid when the key matches no active record.
func (u *AuthUsecase) Resolve(ctx context.Context, key string) (*entities.Session, error) {
	if u.cache != nil {
		var cached entities.Session
		if hit, err := u.cache.Lookup(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	authKey, err := u.authKeyRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrAuthInvalid
		}
		return nil, err
	}

	session := &entities.Session{
		KeyID:    authKey.ID,
		Label:    authKey.Label,
		TeamMgmt: authKey.TeamMgmt,
	}

	if u.cache != nil {
		if err := u.cache.Put(ctx, key, session); err != nil {
			logger.Warn(ctx, "failed to cache auth session", zap.Error(err))
		}
	}
	return session, nil
}

// Invalidate drops a key's cached session, used on logout.
func (u *AuthUsecase) Invalidate(ctx context.Context, key string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx, key); err != nil {
		logger.Warn(ctx, "failed to invalidate auth session", zap.Error(err))
	}
}
