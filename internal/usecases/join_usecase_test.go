package usecases

import (
	"context"
	"testing"

	"nodex-club.backend/internal/domain/entities"
)

func TestJoinSubmit_CreatesApplication(t *testing.T) {
	appRepo := newAppRepoStub()
	blockedRepo := newBlockedIPRepoStub()
	uc := NewJoinUsecase(appRepo, blockedRepo)

	result, err := uc.Submit(context.Background(), &entities.JoinInput{
		Name:       "Kasun Perera",
		Email:      "kasun@uni.dev",
		StudentID:  "IT21001",
		Department: "CS",
		Year:       "2",
		Motivation: "I want to build things with the club",
	}, "10.0.0.9")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Blocked {
		t.Fatalf("unexpected block")
	}
	if result.Application == nil || result.Application.ID == "" {
		t.Fatalf("expected a created application, got %+v", result)
	}
	if len(appRepo.items) != 1 {
		t.Fatalf("expected 1 stored application, got %d", len(appRepo.items))
	}
}

func TestJoinSubmit_BlockedIP(t *testing.T) {
	appRepo := newAppRepoStub()
	blockedRepo := newBlockedIPRepoStub()
	blockedRepo.items["10.0.0.13"] = &entities.BlockedIP{
		IP:          "10.0.0.13",
		Reason:      "spam",
		RedirectURL: "https://example.com/elsewhere",
	}
	uc := NewJoinUsecase(appRepo, blockedRepo)

	result, err := uc.Submit(context.Background(), &entities.JoinInput{
		Name:       "Spam Bot",
		Email:      "bot@spam.dev",
		StudentID:  "XX00000",
		Department: "CS",
		Year:       "1",
		Motivation: "definitely a real person",
	}, "10.0.0.13")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Blocked {
		t.Fatalf("expected block")
	}
	if result.RedirectURL != "https://example.com/elsewhere" {
		t.Fatalf("unexpected redirect: %s", result.RedirectURL)
	}
	// No record may be created for a blocked submission.
	if len(appRepo.items) != 0 {
		t.Fatalf("expected no stored applications, got %d", len(appRepo.items))
	}
}
