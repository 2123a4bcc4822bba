package repositories

import (
	"context"
	"encoding/json"

	"nodex-club.backend/internal/domain/entities"
	"nodex-club.backend/internal/infrastructure/models"
	"nodex-club.backend/internal/infrastructure/pocketbase"
)

const legacyCollection = "nodex_team"

type LegacyMemberRepository struct {
	client *pocketbase.Client
}

func NewLegacyMemberRepository(client *pocketbase.Client) *LegacyMemberRepository {
	return &LegacyMemberRepository{client: client}
}

func (r *LegacyMemberRepository) GetByID(ctx context.Context, id string) (*entities.LegacyMember, error) {
	var m models.LegacyMember
	if err := r.client.GetOne(ctx, legacyCollection, id, &m); err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *LegacyMemberRepository) ListAll(ctx context.Context) ([]*entities.LegacyMember, error) {
	return r.list(ctx, pocketbase.ListOptions{
		Sort:    "pos",
		PerPage: pocketbase.MaxPerPage,
	})
}

func (r *LegacyMemberRepository) ListByCategory(ctx context.Context, category entities.LegacyCategory) ([]*entities.LegacyMember, error) {
	return r.list(ctx, pocketbase.ListOptions{
		Filter:  pocketbase.Filterf("category = %s", string(category)),
		Sort:    "pos",
		PerPage: pocketbase.MaxPerPage,
	})
}

func (r *LegacyMemberRepository) list(ctx context.Context, opts pocketbase.ListOptions) ([]*entities.LegacyMember, error) {
	result, err := r.client.List(ctx, legacyCollection, opts)
	if err != nil {
		return nil, err
	}
	items := make([]*entities.LegacyMember, 0, len(result.Items))
	for _, raw := range result.Items {
		var m models.LegacyMember
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		items = append(items, r.toEntity(&m))
	}
	return items, nil
}

func (r *LegacyMemberRepository) toEntity(m *models.LegacyMember) *entities.LegacyMember {
	return &entities.LegacyMember{
		ID:            m.ID,
		Name:          m.Name,
		Title:         m.Title,
		Qualification: m.Qualification,
		Category:      entities.LegacyCategory(m.Category),
		Photo:         m.Photo,
		Email:         m.Email,
		Phone:         m.Phone,
		Skills:        m.Skills,
		Github:        m.Github,
		LinkedIn:      m.LinkedIn,
		Pos:           m.Pos,
	}
}
