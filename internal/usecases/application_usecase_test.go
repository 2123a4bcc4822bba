package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
)

func newApplicationFixture() (*ApplicationUsecase, *appRepoStub, *markRepoStub) {
	appRepo := newAppRepoStub()
	markRepo := newMarkRepoStub()
	uc := NewApplicationUsecase(appRepo, markRepo)
	uc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	return uc, appRepo, markRepo
}

func TestMark_ThenRollback_AuditTrail(t *testing.T) {
	uc, appRepo, markRepo := newApplicationFixture()
	appRepo.items["a1"] = &entities.Application{ID: "a1", Name: "Kasun"}

	mark, err := uc.Mark(context.Background(), "a1", entities.ApplicationApproved, "strong portfolio", "recruiter-1")
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if mark.Status != entities.ApplicationApproved {
		t.Fatalf("unexpected mark: %+v", mark)
	}
	if !mark.ReviewedAt.Valid {
		t.Fatalf("expected reviewedAt set")
	}

	remarks := appRepo.items["a1"].ModRemarks
	if !strings.Contains(remarks, "APPROVED by recruiter-1") || !strings.Contains(remarks, "strong portfolio") {
		t.Fatalf("unexpected audit trail: %q", remarks)
	}

	// A second mark conflicts.
	if _, err := uc.Mark(context.Background(), "a1", entities.ApplicationRejected, "x", "recruiter-2"); !errors.Is(err, domainerrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if err := uc.Rollback(context.Background(), "a1", "marked in error", "recruiter-2"); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if len(markRepo.items) != 0 {
		t.Fatalf("expected mark removed, got %d", len(markRepo.items))
	}

	remarks = appRepo.items["a1"].ModRemarks
	approvedIdx := strings.Index(remarks, "APPROVED")
	rollbackIdx := strings.Index(remarks, "ROLLBACK by recruiter-2")
	if approvedIdx < 0 || rollbackIdx < 0 || rollbackIdx < approvedIdx {
		t.Fatalf("audit blocks out of order: %q", remarks)
	}

	// Rolled back means markable again.
	if _, err := uc.Mark(context.Background(), "a1", entities.ApplicationRejected, "re-reviewed", "recruiter-2"); err != nil {
		t.Fatalf("re-mark after rollback: %v", err)
	}
}

func TestMark_InvalidStatus(t *testing.T) {
	uc, appRepo, _ := newApplicationFixture()
	appRepo.items["a1"] = &entities.Application{ID: "a1"}

	if _, err := uc.Mark(context.Background(), "a1", entities.ApplicationPending, "", "r"); !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestMark_UnknownApplication(t *testing.T) {
	uc, _, _ := newApplicationFixture()
	if _, err := uc.Mark(context.Background(), "missing", entities.ApplicationApproved, "", "r"); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRollback_NoMark(t *testing.T) {
	uc, appRepo, _ := newApplicationFixture()
	appRepo.items["a1"] = &entities.Application{ID: "a1"}

	if err := uc.Rollback(context.Background(), "a1", "", "r"); !errors.Is(err, domainerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestList_DerivesStatus(t *testing.T) {
	uc, appRepo, markRepo := newApplicationFixture()
	appRepo.items["a1"] = &entities.Application{ID: "a1"}
	appRepo.items["a2"] = &entities.Application{ID: "a2"}
	appRepo.items["a3"] = &entities.Application{ID: "a3"}
	markRepo.items["mk1"] = &entities.MarkedApplication{ID: "mk1", ApplicationID: "a2", Status: entities.ApplicationApproved}

	all, err := uc.List(context.Background(), "all")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 applications, got %d", len(all))
	}
	statuses := map[string]entities.ApplicationStatus{}
	for _, app := range all {
		statuses[app.ID] = app.Status
	}
	if statuses["a1"] != entities.ApplicationPending || statuses["a2"] != entities.ApplicationApproved || statuses["a3"] != entities.ApplicationPending {
		t.Fatalf("unexpected derived statuses: %v", statuses)
	}

	pending, err := uc.List(context.Background(), "pending")
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}

	approved, err := uc.List(context.Background(), "approved")
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != "a2" {
		t.Fatalf("unexpected approved list: %+v", approved)
	}
	if approved[0].Mark == nil {
		t.Fatalf("expected the mark attached to the listing")
	}
}
