package repositories

import (
	"context"

	"nodex-club.backend/internal/domain/entities"
)

// TeamRepository accesses the teams collection.
type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id string) (*entities.Team, error)
	ListAll(ctx context.Context) ([]*entities.Team, error)
	Update(ctx context.Context, team *entities.Team) error
	Delete(ctx context.Context, id string) error
}
