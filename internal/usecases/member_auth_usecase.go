package usecases

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/domain/repositories"
	"nodex-club.backend/pkg/crypto"
	"nodex-club.backend/pkg/jwt"
	"nodex-club.backend/pkg/logger"
)

// MemberAuthUsecase handles member self-service login and session checks.
type MemberAuthUsecase struct {
	memberRepo    repositories.MemberRepository
	memberKeyRepo repositories.MemberKeyRepository
	teamRepo      repositories.TeamRepository
	tokens        *jwt.TokenService
	now           func() time.Time
}

// NewMemberAuthUsecase creates a new member auth usecase
func NewMemberAuthUsecase(
	memberRepo repositories.MemberRepository,
	memberKeyRepo repositories.MemberKeyRepository,
	teamRepo repositories.TeamRepository,
	tokens *jwt.TokenService,
) *MemberAuthUsecase {
	return &MemberAuthUsecase{
		memberRepo:    memberRepo,
		memberKeyRepo: memberKeyRepo,
		teamRepo:      teamRepo,
		tokens:        tokens,
		now:           time.Now,
	}
}

// Login verifies a student's access key and returns the member plus a signed
// member-session token for the cookie.
func (u *MemberAuthUsecase) Login(ctx context.Context, input *entities.MemberLoginInput) (*entities.Member, string, error) {
	member, err := u.memberRepo.FindByStudentID(ctx, input.StudentID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, "", domainerrors.Unauthorized("invalid student ID or access key")
		}
		return nil, "", err
	}

	keys, err := u.memberKeyRepo.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, "", err
	}

	var matched *entities.MemberKey
	for _, k := range keys {
		if crypto.CheckKey(input.AccessKey, k.KeyHash) {
			matched = k
			break
		}
	}
	if matched == nil {
		return nil, "", domainerrors.Unauthorized("invalid student ID or access key")
	}

	token, err := u.tokens.Generate(member.ID, matched.KeyType, u.now())
	if err != nil {
		return nil, "", err
	}

	logger.Info(ctx, "member logged in",
		zap.String("member_id", member.ID),
		zap.String("key_type", matched.KeyType),
	)
	return member, token, nil
}

// Validate checks a member-session token and applies the soft expiry on the
// login time in addition to the token's own exp claim.
func (u *MemberAuthUsecase) Validate(ctx context.Context, tokenString string) (*entities.MemberSession, error) {
	claims, err := u.tokens.Validate(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrSessionExpired
		}
		return nil, domainerrors.ErrAuthInvalid
	}

	if u.now().Sub(claims.LoginTime) > u.tokens.Expiry() {
		return nil, domainerrors.ErrSessionExpired
	}

	return &entities.MemberSession{
		MemberID:  claims.MemberID,
		KeyType:   claims.KeyType,
		LoginTime: claims.LoginTime,
	}, nil
}

// MemberTeams returns the teams the logged-in member belongs to.
func (u *MemberAuthUsecase) MemberTeams(ctx context.Context, memberID string) ([]*entities.Team, error) {
	member, err := u.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("member not found")
		}
		return nil, err
	}

	teams := make([]*entities.Team, 0, len(member.Teams))
	for _, teamID := range member.Teams {
		team, err := u.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				// Stale reference; skip rather than fail the listing.
				continue
			}
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}
