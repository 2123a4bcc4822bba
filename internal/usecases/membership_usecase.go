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

// MembershipUsecase reconciles the two people collections. club_members is
// canonical; nodex_team profiles are addressed through "legacy_" prefixed
// refs and get migrated into club_members the first time a team operation
// needs them.
type MembershipUsecase struct {
	memberRepo repositories.MemberRepository
	legacyRepo repositories.LegacyMemberRepository
	teamRepo   repositories.TeamRepository
}

// NewMembershipUsecase creates a new membership usecase
func NewMembershipUsecase(
	memberRepo repositories.MemberRepository,
	legacyRepo repositories.LegacyMemberRepository,
	teamRepo repositories.TeamRepository,
) *MembershipUsecase {
	return &MembershipUsecase{
		memberRepo: memberRepo,
		legacyRepo: legacyRepo,
		teamRepo:   teamRepo,
	}
}

// MigrateLegacyMember materializes a club_members record for a nodex_team
// profile. Idempotent: when a canonical member with the same (name, email)
// already exists it is returned as-is, nothing is created.
func (u *MembershipUsecase) MigrateLegacyMember(ctx context.Context, legacyID string) (*entities.Member, error) {
	legacy, err := u.legacyRepo.GetByID(ctx, legacyID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("legacy member not found")
		}
		return nil, err
	}

	existing, err := u.memberRepo.FindByNameEmail(ctx, legacy.Name, legacy.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	member := legacy.Seed()
	if err := u.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	logger.Info(ctx, "migrated legacy member",
		zap.String("legacy_id", legacyID),
		zap.String("member_id", member.ID),
	)
	return member, nil
}

// resolve turns a MemberRef into a canonical member record. Legacy refs
// migrate when allowCreate is set; read paths pass false so a lookup never
// mutates the store.
func (u *MembershipUsecase) resolve(ctx context.Context, ref entities.MemberRef, allowCreate bool) (*entities.Member, error) {
	if !ref.IsLegacy() {
		member, err := u.memberRepo.GetByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.NotFound("member not found")
			}
			return nil, err
		}
		return member, nil
	}

	if allowCreate {
		return u.MigrateLegacyMember(ctx, ref.ID)
	}

	legacy, err := u.legacyRepo.GetByID(ctx, ref.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("legacy member not found")
		}
		return nil, err
	}
	member, err := u.memberRepo.FindByNameEmail(ctx, legacy.Name, legacy.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("legacy member has no canonical record")
		}
		return nil, err
	}
	return member, nil
}

// AddMember appends a team to a member's teams array. A legacy ref is
// migrated first so membership is always recorded on club_members.
func (u *MembershipUsecase) AddMember(ctx context.Context, teamID string, ref entities.MemberRef) (*entities.Member, error) {
	if _, err := u.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("team not found")
		}
		return nil, err
	}

	member, err := u.resolve(ctx, ref, true)
	if err != nil {
		return nil, err
	}

	if member.HasTeam(teamID) {
		return nil, domainerrors.Conflict("member is already part of this team")
	}

	member.Teams = append(member.Teams, teamID)
	if err := u.memberRepo.UpdateTeams(ctx, member.ID, member.Teams); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember drops a team from a member's teams array. A legacy ref that
// was never migrated cannot be part of any team, so removal resolves without
// creating anything.
func (u *MembershipUsecase) RemoveMember(ctx context.Context, teamID string, ref entities.MemberRef) (*entities.Member, error) {
	member, err := u.resolve(ctx, ref, false)
	if err != nil {
		return nil, err
	}

	if !member.HasTeam(teamID) {
		return nil, domainerrors.NotFound("member is not part of this team")
	}

	teams := make([]string, 0, len(member.Teams)-1)
	for _, id := range member.Teams {
		if id != teamID {
			teams = append(teams, id)
		}
	}
	member.Teams = teams
	if err := u.memberRepo.UpdateTeams(ctx, member.ID, member.Teams); err != nil {
		return nil, err
	}
	return member, nil
}

// ListMerged returns the union of both people collections the way the
// dashboard shows them: canonical members as-is, legacy profiles mapped into
// the member shape with synthetic prefixed IDs.
func (u *MembershipUsecase) ListMerged(ctx context.Context) ([]*entities.Member, error) {
	members, err := u.memberRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	legacy, err := u.legacyRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	merged := make([]*entities.Member, 0, len(members)+len(legacy))
	merged = append(merged, members...)
	for _, l := range legacy {
		m := l.Seed()
		m.ID = entities.MemberRef{Kind: entities.RefLegacy, ID: l.ID}.String()
		merged = append(merged, m)
	}
	return merged, nil
}
