package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/domain/repositories"
	"nodex-club.backend/pkg/logger"
)

// JoinResult is the outcome of a join submission. When Blocked is set the
// caller answers with a redirect and no application exists.
type JoinResult struct {
	Application *entities.Application
	Blocked     bool
	RedirectURL string
}

// JoinUsecase handles public join-form intake.
type JoinUsecase struct {
	appRepo     repositories.ApplicationRepository
	blockedRepo repositories.BlockedIPRepository
}

// NewJoinUsecase creates a new join usecase
func NewJoinUsecase(
	appRepo repositories.ApplicationRepository,
	blockedRepo repositories.BlockedIPRepository,
) *JoinUsecase {
	return &JoinUsecase{
		appRepo:     appRepo,
		blockedRepo: blockedRepo,
	}
}

// Submit checks the caller's IP against the blocklist, then creates the
// application. A blocked IP gets the row's redirect URL back and no
// nodex_apps record is written.
func (u *JoinUsecase) Submit(ctx context.Context, input *entities.JoinInput, clientIP string) (*JoinResult, error) {
	blocked, err := u.blockedRepo.FindByIP(ctx, clientIP)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if blocked != nil {
		logger.Warn(ctx, "join submission from blocked IP",
			zap.String("client_ip", clientIP),
			zap.String("reason", blocked.Reason),
		)
		return &JoinResult{Blocked: true, RedirectURL: blocked.RedirectURL}, nil
	}

	app := &entities.Application{
		Name:       input.Name,
		Email:      input.Email,
		StudentID:  input.StudentID,
		Phone:      input.Phone,
		Department: input.Department,
		Year:       input.Year,
		Skills:     input.Skills,
		Motivation: input.Motivation,
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	logger.Info(ctx, "join application submitted",
		zap.String("application_id", app.ID),
		zap.String("student_id", app.StudentID),
	)
	return &JoinResult{Application: app}, nil
}
