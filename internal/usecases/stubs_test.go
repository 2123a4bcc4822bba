package usecases

import (
	"context"
	"fmt"
	"sort"

	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
)

// In-memory repository stubs shared by the usecase tests.

type memberRepoStub struct {
	items  map[string]*entities.Member
	nextID int
	// updateTeamsErr injects a failure for a specific member ID.
	updateTeamsErr map[string]error
}

func newMemberRepoStub() *memberRepoStub {
	return &memberRepoStub{
		items:          map[string]*entities.Member{},
		updateTeamsErr: map[string]error{},
	}
}

func (s *memberRepoStub) Create(_ context.Context, member *entities.Member) error {
	if member.ID == "" {
		s.nextID++
		member.ID = fmt.Sprintf("m%d", s.nextID)
	}
	cp := *member
	s.items[member.ID] = &cp
	return nil
}

func (s *memberRepoStub) GetByID(_ context.Context, id string) (*entities.Member, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *memberRepoStub) FindByNameEmail(_ context.Context, name, email string) (*entities.Member, error) {
	for _, item := range s.items {
		if item.Name == name && item.Email == email {
			cp := *item
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *memberRepoStub) FindByStudentID(_ context.Context, studentID string) (*entities.Member, error) {
	for _, item := range s.items {
		if item.StudentID == studentID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *memberRepoStub) ListAll(_ context.Context) ([]*entities.Member, error) {
	out := make([]*entities.Member, 0, len(s.items))
	for _, item := range s.items {
		cp := *item
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memberRepoStub) ListByTeam(_ context.Context, teamID string) ([]*entities.Member, error) {
	out := make([]*entities.Member, 0)
	for _, item := range s.items {
		if item.HasTeam(teamID) {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memberRepoStub) Update(_ context.Context, member *entities.Member) error {
	if _, ok := s.items[member.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *member
	s.items[member.ID] = &cp
	return nil
}

func (s *memberRepoStub) UpdateTeams(_ context.Context, id string, teams []string) error {
	if err, ok := s.updateTeamsErr[id]; ok {
		return err
	}
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.Teams = teams
	return nil
}

func (s *memberRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type legacyRepoStub struct {
	items map[string]*entities.LegacyMember
}

func newLegacyRepoStub() *legacyRepoStub {
	return &legacyRepoStub{items: map[string]*entities.LegacyMember{}}
}

func (s *legacyRepoStub) GetByID(_ context.Context, id string) (*entities.LegacyMember, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *legacyRepoStub) ListAll(_ context.Context) ([]*entities.LegacyMember, error) {
	out := make([]*entities.LegacyMember, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos < out[j].Pos })
	return out, nil
}

func (s *legacyRepoStub) ListByCategory(_ context.Context, category entities.LegacyCategory) ([]*entities.LegacyMember, error) {
	out := make([]*entities.LegacyMember, 0)
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos < out[j].Pos })
	return out, nil
}

type teamRepoStub struct {
	items  map[string]*entities.Team
	nextID int
}

func newTeamRepoStub() *teamRepoStub {
	return &teamRepoStub{items: map[string]*entities.Team{}}
}

func (s *teamRepoStub) Create(_ context.Context, team *entities.Team) error {
	if team.ID == "" {
		s.nextID++
		team.ID = fmt.Sprintf("t%d", s.nextID)
	}
	cp := *team
	s.items[team.ID] = &cp
	return nil
}

func (s *teamRepoStub) GetByID(_ context.Context, id string) (*entities.Team, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *teamRepoStub) ListAll(_ context.Context) ([]*entities.Team, error) {
	out := make([]*entities.Team, 0, len(s.items))
	for _, item := range s.items {
		cp := *item
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *teamRepoStub) Update(_ context.Context, team *entities.Team) error {
	if _, ok := s.items[team.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *team
	s.items[team.ID] = &cp
	return nil
}

func (s *teamRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type appRepoStub struct {
	items  map[string]*entities.Application
	nextID int
}

func newAppRepoStub() *appRepoStub {
	return &appRepoStub{items: map[string]*entities.Application{}}
}

func (s *appRepoStub) Create(_ context.Context, app *entities.Application) error {
	if app.ID == "" {
		s.nextID++
		app.ID = fmt.Sprintf("a%d", s.nextID)
	}
	cp := *app
	s.items[app.ID] = &cp
	return nil
}

func (s *appRepoStub) GetByID(_ context.Context, id string) (*entities.Application, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *appRepoStub) ListAll(_ context.Context) ([]*entities.Application, error) {
	out := make([]*entities.Application, 0, len(s.items))
	for _, item := range s.items {
		cp := *item
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *appRepoStub) AppendModRemarks(_ context.Context, id, block string) error {
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if item.ModRemarks == "" {
		item.ModRemarks = block
	} else {
		item.ModRemarks = item.ModRemarks + "\n" + block
	}
	return nil
}

type markRepoStub struct {
	items  map[string]*entities.MarkedApplication
	nextID int
}

func newMarkRepoStub() *markRepoStub {
	return &markRepoStub{items: map[string]*entities.MarkedApplication{}}
}

func (s *markRepoStub) Create(_ context.Context, mark *entities.MarkedApplication) error {
	if mark.ID == "" {
		s.nextID++
		mark.ID = fmt.Sprintf("mk%d", s.nextID)
	}
	cp := *mark
	s.items[mark.ID] = &cp
	return nil
}

func (s *markRepoStub) GetByApplicationID(_ context.Context, appID string) (*entities.MarkedApplication, error) {
	for _, item := range s.items {
		if item.ApplicationID == appID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *markRepoStub) ListAll(_ context.Context) ([]*entities.MarkedApplication, error) {
	out := make([]*entities.MarkedApplication, 0, len(s.items))
	for _, item := range s.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (s *markRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type authKeyRepoStub struct {
	items map[string]*entities.AuthKey // keyed by the opaque key
}

func newAuthKeyRepoStub() *authKeyRepoStub {
	return &authKeyRepoStub{items: map[string]*entities.AuthKey{}}
}

func (s *authKeyRepoStub) FindByKey(_ context.Context, key string) (*entities.AuthKey, error) {
	item, ok := s.items[key]
	if !ok || !item.Active {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

type memberKeyRepoStub struct {
	items []*entities.MemberKey
}

func (s *memberKeyRepoStub) ListByMember(_ context.Context, memberID string) ([]*entities.MemberKey, error) {
	out := make([]*entities.MemberKey, 0)
	for _, item := range s.items {
		if item.MemberID == memberID && item.Active {
			out = append(out, item)
		}
	}
	return out, nil
}

type blockedIPRepoStub struct {
	items map[string]*entities.BlockedIP // keyed by IP
}

func newBlockedIPRepoStub() *blockedIPRepoStub {
	return &blockedIPRepoStub{items: map[string]*entities.BlockedIP{}}
}

func (s *blockedIPRepoStub) FindByIP(_ context.Context, ip string) (*entities.BlockedIP, error) {
	item, ok := s.items[ip]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}
