package repositories

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/volatiletech/null/v8"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/infrastructure/models"
	"nodex-club.backend/internal/infrastructure/pocketbase"
)

const (
	applicationsCollection = "nodex_apps"
	marksCollection        = "marked_apps"
)

type ApplicationRepository struct {
	client *pocketbase.Client
}

func NewApplicationRepository(client *pocketbase.Client) *ApplicationRepository {
	return &ApplicationRepository{client: client}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *entities.Application) error {
	m := r.toModel(app)
	var stored models.Application
	if err := r.client.Create(ctx, applicationsCollection, m, &stored); err != nil {
		return err
	}
	app.ID = stored.ID
	app.Created = models.ParseTime(stored.Created)
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*entities.Application, error) {
	var m models.Application
	if err := r.client.GetOne(ctx, applicationsCollection, id, &m); err != nil {
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]*entities.Application, error) {
	result, err := r.client.List(ctx, applicationsCollection, pocketbase.ListOptions{
		Sort:    "-created",
		PerPage: pocketbase.MaxPerPage,
	})
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Application, 0, len(result.Items))
	for _, raw := range result.Items {
		var m models.Application
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		items = append(items, r.toEntity(&m))
	}
	return items, nil
}

func (r *ApplicationRepository) AppendModRemarks(ctx context.Context, id, block string) error {
	var m models.Application
	if err := r.client.GetOne(ctx, applicationsCollection, id, &m); err != nil {
		return err
	}
	remarks := m.ModRemarks
	if strings.TrimSpace(remarks) != "" {
		remarks += "\n"
	}
	remarks += block
	patch := map[string]any{"mod_remarks": remarks}
	return r.client.Update(ctx, applicationsCollection, id, patch, nil)
}

func (r *ApplicationRepository) toEntity(m *models.Application) *entities.Application {
	skills := m.Skills
	if skills == nil {
		skills = []string{}
	}
	return &entities.Application{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		StudentID:  m.StudentID,
		Phone:      m.Phone,
		Department: m.Department,
		Year:       m.Year,
		Skills:     skills,
		Motivation: m.Motivation,
		ModRemarks: m.ModRemarks,
		Created:    models.ParseTime(m.Created),
	}
}

func (r *ApplicationRepository) toModel(e *entities.Application) *models.Application {
	skills := e.Skills
	if skills == nil {
		skills = []string{}
	}
	return &models.Application{
		Name:       e.Name,
		Email:      e.Email,
		StudentID:  e.StudentID,
		Phone:      e.Phone,
		Department: e.Department,
		Year:       e.Year,
		Skills:     skills,
		Motivation: e.Motivation,
		ModRemarks: e.ModRemarks,
	}
}

type MarkRepository struct {
	client *pocketbase.Client
}

func NewMarkRepository(client *pocketbase.Client) *MarkRepository {
	return &MarkRepository{client: client}
}

func (r *MarkRepository) Create(ctx context.Context, mark *entities.MarkedApplication) error {
	m := &models.MarkedApplication{
		ApplicationID: mark.ApplicationID,
		Status:        string(mark.Status),
		Remarks:       mark.Remarks,
		Reviewer:      mark.Reviewer,
	}
	if mark.ReviewedAt.Valid {
		m.ReviewedAt = models.FormatTime(mark.ReviewedAt.Time)
	}
	var stored models.MarkedApplication
	if err := r.client.Create(ctx, marksCollection, m, &stored); err != nil {
		return err
	}
	mark.ID = stored.ID
	mark.Created = models.ParseTime(stored.Created)
	return nil
}

func (r *MarkRepository) GetByApplicationID(ctx context.Context, appID string) (*entities.MarkedApplication, error) {
	result, err := r.client.List(ctx, marksCollection, pocketbase.ListOptions{
		Filter:  pocketbase.Filterf("application_id = %s", appID),
		PerPage: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	var m models.MarkedApplication
	if err := json.Unmarshal(result.Items[0], &m); err != nil {
		return nil, err
	}
	return r.markToEntity(&m), nil
}

func (r *MarkRepository) ListAll(ctx context.Context) ([]*entities.MarkedApplication, error) {
	result, err := r.client.List(ctx, marksCollection, pocketbase.ListOptions{
		PerPage: pocketbase.MaxPerPage,
	})
	if err != nil {
		return nil, err
	}
	items := make([]*entities.MarkedApplication, 0, len(result.Items))
	for _, raw := range result.Items {
		var m models.MarkedApplication
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		items = append(items, r.markToEntity(&m))
	}
	return items, nil
}

func (r *MarkRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, marksCollection, id)
}

func (r *MarkRepository) markToEntity(m *models.MarkedApplication) *entities.MarkedApplication {
	reviewedAt := null.Time{}
	if t := models.ParseTime(m.ReviewedAt); !t.IsZero() {
		reviewedAt = null.TimeFrom(t)
	}
	return &entities.MarkedApplication{
		ID:            m.ID,
		ApplicationID: m.ApplicationID,
		Status:        entities.ApplicationStatus(m.Status),
		Remarks:       m.Remarks,
		Reviewer:      m.Reviewer,
		ReviewedAt:    reviewedAt,
		Created:       models.ParseTime(m.Created),
	}
}
