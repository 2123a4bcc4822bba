package usecases

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/domain/repositories"
	"nodex-club.backend/pkg/logger"
)

// TeamUsecase handles team lifecycle. Deletion is the delicate part: because
// membership lives on each member record, the team must first be stripped
// from every referencing member, and a member whose rewrite fails must not
// be silently skipped.
type TeamUsecase struct {
	teamRepo   repositories.TeamRepository
	memberRepo repositories.MemberRepository
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(
	teamRepo repositories.TeamRepository,
	memberRepo repositories.MemberRepository,
) *TeamUsecase {
	return &TeamUsecase{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
	}
}

// DeleteTeam strips the team from every member referencing it, then deletes
// the team record. Detach failures are collected instead of aborting the
// loop; when any member could not be rewritten the team record is kept so
// the operation can be retried, and the report names the failed members.
func (u *TeamUsecase) DeleteTeam(ctx context.Context, teamID string) (*entities.TeamDetachReport, error) {
	if _, err := u.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("team not found")
		}
		return nil, err
	}

	members, err := u.memberRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	report := &entities.TeamDetachReport{TeamID: teamID, Detached: []string{}}
	for _, member := range members {
		teams := make([]string, 0, len(member.Teams))
		for _, id := range member.Teams {
			if id != teamID {
				teams = append(teams, id)
			}
		}
		if err := u.memberRepo.UpdateTeams(ctx, member.ID, teams); err != nil {
			logger.Error(ctx, "failed to detach member from team",
				zap.String("team_id", teamID),
				zap.String("member_id", member.ID),
				zap.Error(err),
			)
			report.Failed = append(report.Failed, member.ID)
			continue
		}
		report.Detached = append(report.Detached, member.ID)
	}

	if len(report.Failed) > 0 {
		return report, domainerrors.NewAppError(
			http.StatusInternalServerError,
			"some members could not be detached; team was not deleted, retry the deletion",
			domainerrors.ErrUpstreamFailure,
		)
	}

	if err := u.teamRepo.Delete(ctx, teamID); err != nil {
		return report, err
	}
	logger.Info(ctx, "team deleted",
		zap.String("team_id", teamID),
		zap.Int("detached_members", len(report.Detached)),
	)
	return report, nil
}

// GetTeamWithMembers returns a team together with its current members.
func (u *TeamUsecase) GetTeamWithMembers(ctx context.Context, teamID string) (*entities.Team, []*entities.Member, error) {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.NotFound("team not found")
		}
		return nil, nil, err
	}
	members, err := u.memberRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	return team, members, nil
}
