package repositories

import (
	"context"

	"nodex-club.backend/internal/domain/entities"
)

// AuthKeyRepository accesses the auth_keys collection.
type AuthKeyRepository interface {
	// FindByKey resolves an opaque auth key to its record. Returns
	// ErrNotFound when the key matches no active row.
	FindByKey(ctx context.Context, key string) (*entities.AuthKey, error)
}

// MemberKeyRepository accesses the member_keys collection.
type MemberKeyRepository interface {
	ListByMember(ctx context.Context, memberID string) ([]*entities.MemberKey, error)
}

// BlockedIPRepository accesses the blocked_ips collection.
type BlockedIPRepository interface {
	// FindByIP returns ErrNotFound when the IP is not blocked.
	FindByIP(ctx context.Context, ip string) (*entities.BlockedIP, error)
}
