package repositories

import (
	"context"
	"encoding/json"

	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/infrastructure/models"
	"nodex-club.backend/internal/infrastructure/pocketbase"
)

const membersCollection = "club_members"

type MemberRepository struct {
	client *pocketbase.Client
}

func NewMemberRepository(client *pocketbase.Client) *MemberRepository {
	return &MemberRepository{client: client}
}

func (r *MemberRepository) Create(ctx context.Context, member *entities.Member) error {
	m := r.toModel(member)
	var stored models.Member
	if err := r.client.Create(ctx, membersCollection, m, &stored); err != nil {
		return err
	}
	member.ID = stored.ID
	member.Created = models.ParseTime(stored.Created)
	member.Updated = models.ParseTime(stored.Updated)
	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*entities.Member, error) {
	var m models.Member
	if err := r.client.GetOne(ctx, membersCollection, id, &m); err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MemberRepository) FindByNameEmail(ctx context.Context, name, email string) (*entities.Member, error) {
	result, err := r.client.List(ctx, membersCollection, pocketbase.ListOptions{
		Filter:  pocketbase.Filterf("name = %s && email = %s", name, email),
		PerPage: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	var m models.Member
	if err := json.Unmarshal(result.Items[0], &m); err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MemberRepository) FindByStudentID(ctx context.Context, studentID string) (*entities.Member, error) {
	result, err := r.client.List(ctx, membersCollection, pocketbase.ListOptions{
		Filter:  pocketbase.Filterf("student_id = %s", studentID),
		PerPage: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	var m models.Member
	if err := json.Unmarshal(result.Items[0], &m); err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MemberRepository) ListAll(ctx context.Context) ([]*entities.Member, error) {
	return r.list(ctx, pocketbase.ListOptions{
		Sort:    "-created",
		PerPage: pocketbase.MaxPerPage,
	})
}

func (r *MemberRepository) ListByTeam(ctx context.Context, teamID string) ([]*entities.Member, error) {
	return r.list(ctx, pocketbase.ListOptions{
		Filter:  pocketbase.Filterf("teams ~ %s", teamID),
		PerPage: pocketbase.MaxPerPage,
	})
}

func (r *MemberRepository) Update(ctx context.Context, member *entities.Member) error {
	m := r.toModel(member)
	var stored models.Member
	if err := r.client.Update(ctx, membersCollection, member.ID, m, &stored); err != nil {
		return err
	}
	member.Updated = models.ParseTime(stored.Updated)
	return nil
}

func (r *MemberRepository) UpdateTeams(ctx context.Context, id string, teams []string) error {
	if teams == nil {
		teams = []string{}
	}
	patch := map[string]any{"teams": teams}
	return r.client.Update(ctx, membersCollection, id, patch, nil)
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, membersCollection, id)
}

func (r *MemberRepository) list(ctx context.Context, opts pocketbase.ListOptions) ([]*entities.Member, error) {
	result, err := r.client.List(ctx, membersCollection, opts)
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Member, 0, len(result.Items))
	for _, raw := range result.Items {
		var m models.Member
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		items = append(items, r.toEntity(&m))
	}
	return items, nil
}

func (r *MemberRepository) toEntity(m *models.Member) *entities.Member {
	teams := m.Teams
	if teams == nil {
		teams = []string{}
	}
	skills := m.Skills
	if skills == nil {
		skills = []string{}
	}
	return &entities.Member{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		StudentID:    m.StudentID,
		Phone:        m.Phone,
		MemberType:   entities.MemberType(m.MemberType),
		Position:     m.Position,
		Department:   m.Department,
		Year:         m.Year,
		Teams:        teams,
		Skills:       skills,
		Bio:          m.Bio,
		LinkedInURL:  m.LinkedInURL,
		GithubURL:    m.GithubURL,
		PortfolioURL: m.PortfolioURL,
		Status:       entities.MemberStatus(m.Status),
		Created:      models.ParseTime(m.Created),
		Updated:      models.ParseTime(m.Updated),
	}
}

func (r *MemberRepository) toModel(e *entities.Member) *models.Member {
	teams := e.Teams
	if teams == nil {
		teams = []string{}
	}
	skills := e.Skills
	if skills == nil {
		skills = []string{}
	}
	return &models.Member{
		Name:         e.Name,
		Email:        e.Email,
		StudentID:    e.StudentID,
		Phone:        e.Phone,
		MemberType:   string(e.MemberType),
		Position:     e.Position,
		Department:   e.Department,
		Year:         e.Year,
		Teams:        teams,
		Skills:       skills,
		Bio:          e.Bio,
		LinkedInURL:  e.LinkedInURL,
		GithubURL:    e.GithubURL,
		PortfolioURL: e.PortfolioURL,
		Status:       string(e.Status),
	}
}
