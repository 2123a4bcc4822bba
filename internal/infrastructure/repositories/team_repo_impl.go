package repositories

import (
	"context"
	"encoding/json"

	"github.com/volatiletech/null/v8"
	"nodex-club.backend/internal/domain/entities"
	"nodex-club.backend/internal/infrastructure/models"
	"nodex-club.backend/internal/infrastructure/pocketbase"
)

const teamsCollection = "teams"

type TeamRepository struct {
	client *pocketbase.Client
}

func NewTeamRepository(client *pocketbase.Client) *TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	m := r.toModel(team)
	var stored models.Team
	if err := r.client.Create(ctx, teamsCollection, m, &stored); err != nil {
		return err
	}
	team.ID = stored.ID
	team.Created = models.ParseTime(stored.Created)
	team.Updated = models.ParseTime(stored.Updated)
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*entities.Team, error) {
	var m models.Team
	if err := r.client.GetOne(ctx, teamsCollection, id, &m); err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]*entities.Team, error) {
	result, err := r.client.List(ctx, teamsCollection, pocketbase.ListOptions{
		Sort:    "-created",
		PerPage: pocketbase.MaxPerPage,
	})
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Team, 0, len(result.Items))
	for _, raw := range result.Items {
		var m models.Team
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		items = append(items, r.toEntity(&m))
	}
	return items, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.Team) error {
	m := r.toModel(team)
	var stored models.Team
	if err := r.client.Update(ctx, teamsCollection, team.ID, m, &stored); err != nil {
		return err
	}
	team.Updated = models.ParseTime(stored.Updated)
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, teamsCollection, id)
}

func (r *TeamRepository) toEntity(m *models.Team) *entities.Team {
	skills := m.SkillsRequired
	if skills == nil {
		skills = []string{}
	}
	maxMembers := null.Int{}
	if m.MaxMembers > 0 {
		maxMembers = null.IntFrom(m.MaxMembers)
	}
	return &entities.Team{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Category:       m.Category,
		TeamLead:       m.TeamLead,
		RepositoryURL:  m.RepositoryURL,
		JiraURL:        m.JiraURL,
		Status:         entities.TeamStatus(m.Status),
		ImageURL:       m.ImageURL,
		SkillsRequired: skills,
		MaxMembers:     maxMembers,
		CreatedBy:      m.CreatedBy,
		Created:        models.ParseTime(m.Created),
		Updated:        models.ParseTime(m.Updated),
	}
}

func (r *TeamRepository) toModel(e *entities.Team) *models.Team {
	skills := e.SkillsRequired
	if skills == nil {
		skills = []string{}
	}
	return &models.Team{
		Name:           e.Name,
		Description:    e.Description,
		Category:       e.Category,
		TeamLead:       e.TeamLead,
		RepositoryURL:  e.RepositoryURL,
		JiraURL:        e.JiraURL,
		Status:         string(e.Status),
		ImageURL:       e.ImageURL,
		SkillsRequired: skills,
		MaxMembers:     e.MaxMembers.Int,
		CreatedBy:      e.CreatedBy,
	}
}
