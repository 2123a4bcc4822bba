package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/domain/repositories"
	"nodex-club.backend/pkg/logger"
)

// ApplicationUsecase drives the marking state machine:
// Pending -> Approved|Rejected -> (rolled back) -> Pending.
// Pending is derived, not stored: an application is pending iff no
// marked_apps row references it. Every transition appends an audit block to
// the application's mod_remarks.
type ApplicationUsecase struct {
	appRepo  repositories.ApplicationRepository
	markRepo repositories.MarkRepository
	now      func() time.Time
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo repositories.ApplicationRepository,
	markRepo repositories.MarkRepository,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		appRepo:  appRepo,
		markRepo: markRepo,
		now:      time.Now,
	}
}

// Mark records a recruiter's accept/reject decision. Conflict when the
// application already carries a mark.
func (u *ApplicationUsecase) Mark(ctx context.Context, appID string, status entities.ApplicationStatus, remarks, reviewer string) (*entities.MarkedApplication, error) {
	if status != entities.ApplicationApproved && status != entities.ApplicationRejected {
		return nil, domainerrors.BadRequest("status must be approved or rejected")
	}

	if _, err := u.appRepo.GetByID(ctx, appID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("application not found")
		}
		return nil, err
	}

	existing, err := u.markRepo.GetByApplicationID(ctx, appID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("application is already marked")
	}

	now := u.now()
	mark := &entities.MarkedApplication{
		ApplicationID: appID,
		Status:        status,
		Remarks:       remarks,
		Reviewer:      reviewer,
		ReviewedAt:    null.TimeFrom(now),
	}
	if err := u.markRepo.Create(ctx, mark); err != nil {
		return nil, err
	}

	block := auditBlock(strings.ToUpper(string(status)), reviewer, now, remarks)
	if err := u.appRepo.AppendModRemarks(ctx, appID, block); err != nil {
		return nil, err
	}

	logger.Info(ctx, "application marked",
		zap.String("application_id", appID),
		zap.String("status", string(status)),
		zap.String("reviewer", reviewer),
	)
	return mark, nil
}

// Rollback reverts a previous decision: the mark is deleted, the application
// becomes pending again, and the rollback itself is appended to the audit
// trail. NotFound when no mark exists.
func (u *ApplicationUsecase) Rollback(ctx context.Context, appID, reason, reviewer string) error {
	mark, err := u.markRepo.GetByApplicationID(ctx, appID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("application has no mark to roll back")
		}
		return err
	}

	if err := u.markRepo.Delete(ctx, mark.ID); err != nil {
		return err
	}

	block := auditBlock("ROLLBACK", reviewer, u.now(), reason)
	if err := u.appRepo.AppendModRemarks(ctx, appID, block); err != nil {
		return err
	}

	logger.Info(ctx, "application mark rolled back",
		zap.String("application_id", appID),
		zap.String("reviewer", reviewer),
	)
	return nil
}

// List returns applications with their derived status, optionally filtered.
// statusFilter is one of pending|approved|rejected|all.
func (u *ApplicationUsecase) List(ctx context.Context, statusFilter string) ([]*entities.Application, error) {
	apps, err := u.appRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	marks, err := u.markRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	markByApp := make(map[string]*entities.MarkedApplication, len(marks))
	for _, m := range marks {
		markByApp[m.ApplicationID] = m
	}

	out := make([]*entities.Application, 0, len(apps))
	for _, app := range apps {
		if mark, ok := markByApp[app.ID]; ok {
			app.Status = mark.Status
			app.Mark = mark
		} else {
			app.Status = entities.ApplicationPending
		}

		switch statusFilter {
		case "", "all":
			out = append(out, app)
		default:
			if string(app.Status) == statusFilter {
				out = append(out, app)
			}
		}
	}
	return out, nil
}

// auditBlock formats one mod_remarks entry.
func auditBlock(action, reviewer string, at time.Time, text string) string {
	return fmt.Sprintf("[%s by %s at %s] %s", action, reviewer, at.UTC().Format(time.RFC3339), text)
}
