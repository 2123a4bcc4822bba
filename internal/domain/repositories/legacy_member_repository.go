package repositories

import (
	"context"

	"nodex-club.backend/internal/domain/entities"
)

// LegacyMemberRepository accesses the read-mostly nodex_team collection.
type LegacyMemberRepository interface {
	GetByID(ctx context.Context, id string) (*entities.LegacyMember, error)
	ListAll(ctx context.Context) ([]*entities.LegacyMember, error)
	ListByCategory(ctx context.Context, category entities.LegacyCategory) ([]*entities.LegacyMember, error)
}
