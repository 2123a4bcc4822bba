package repositories

import (
	"context"

	"nodex-club.backend/internal/domain/entities"
)

// ApplicationRepository accesses the nodex_apps collection.
type ApplicationRepository interface {
	Create(ctx context.Context, app *entities.Application) error
	GetByID(ctx context.Context, id string) (*entities.Application, error)
	ListAll(ctx context.Context) ([]*entities.Application, error)
	// AppendModRemarks appends an audit block to the application's
	// mod_remarks field, preserving existing content.
	AppendModRemarks(ctx context.Context, id, block string) error
}

// MarkRepository accesses the marked_apps collection. An application is
// pending iff no mark row references it.
type MarkRepository interface {
	Create(ctx context.Context, mark *entities.MarkedApplication) error
	GetByApplicationID(ctx context.Context, appID string) (*entities.MarkedApplication, error)
	ListAll(ctx context.Context) ([]*entities.MarkedApplication, error)
	Delete(ctx context.Context, id string) error
}
