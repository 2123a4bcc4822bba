package repositories

import (
	"context"

	"nodex-club.backend/internal/domain/entities"
)

// MemberRepository accesses the club_members collection.
type MemberRepository interface {
	Create(ctx context.Context, member *entities.Member) error
	GetByID(ctx context.Context, id string) (*entities.Member, error)
	// FindByNameEmail matches exactly; used by legacy migration to decide
	// whether a canonical record already exists.
	FindByNameEmail(ctx context.Context, name, email string) (*entities.Member, error)
	FindByStudentID(ctx context.Context, studentID string) (*entities.Member, error)
	ListAll(ctx context.Context) ([]*entities.Member, error)
	// ListByTeam returns every member whose teams array contains teamID.
	ListByTeam(ctx context.Context, teamID string) ([]*entities.Member, error)
	Update(ctx context.Context, member *entities.Member) error
	// UpdateTeams rewrites only the teams array of a member record.
	UpdateTeams(ctx context.Context, id string, teams []string) error
	Delete(ctx context.Context, id string) error
}
