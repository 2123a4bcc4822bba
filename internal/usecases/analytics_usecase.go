package usecases

import (
	"context"
	"sort"
	"time"

	"nodex-club.backend/internal/domain/entities"
	"nodex-club.backend/internal/domain/repositories"
)

// recentWindow is how far back a member counts as "recent".
const recentWindow = 30 * 24 * time.Hour

// topSkillsLimit caps the skills frequency table.
const topSkillsLimit = 10

// SkillCount is one row of the top-skills table
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// AnalyticsSummary is the dashboard overview payload
type AnalyticsSummary struct {
	TotalMembers        int            `json:"totalMembers"`
	TotalTeams          int            `json:"totalTeams"`
	MembersByType       map[string]int `json:"membersByType"`
	MembersByDepartment map[string]int `json:"membersByDepartment"`
	MembersByYear       map[string]int `json:"membersByYear"`
	TeamsWithoutMembers []string       `json:"teamsWithoutMembers"`
	MembersWithoutTeams int            `json:"membersWithoutTeams"`
	RecentMembers       int            `json:"recentMembers"`
	TopSkills           []SkillCount   `json:"topSkills"`
}

// AnalyticsUsecase folds both people collections and the teams collection
// into summary counts. Everything is fetched in full (the record store caps
// list fetches at 1000 per collection) and reduced in memory.
type AnalyticsUsecase struct {
	memberRepo repositories.MemberRepository
	legacyRepo repositories.LegacyMemberRepository
	teamRepo   repositories.TeamRepository
	now        func() time.Time
}

// NewAnalyticsUsecase creates a new analytics usecase
func NewAnalyticsUsecase(
	memberRepo repositories.MemberRepository,
	legacyRepo repositories.LegacyMemberRepository,
	teamRepo repositories.TeamRepository,
) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		memberRepo: memberRepo,
		legacyRepo: legacyRepo,
		teamRepo:   teamRepo,
		now:        time.Now,
	}
}

// Summary computes the dashboard analytics overview.
func (u *AnalyticsUsecase) Summary(ctx context.Context) (*AnalyticsSummary, error) {
	members, err := u.memberRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	legacy, err := u.legacyRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := u.teamRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Merge: legacy profiles join the fold with the same mapping the
	// dashboard listing uses (prefixed ID, direc -> bos).
	merged := make([]*entities.Member, 0, len(members)+len(legacy))
	merged = append(merged, members...)
	for _, l := range legacy {
		m := l.Seed()
		m.ID = entities.MemberRef{Kind: entities.RefLegacy, ID: l.ID}.String()
		merged = append(merged, m)
	}

	summary := &AnalyticsSummary{
		TotalMembers:        len(merged),
		TotalTeams:          len(teams),
		MembersByType:       map[string]int{},
		MembersByDepartment: map[string]int{},
		MembersByYear:       map[string]int{},
		TeamsWithoutMembers: []string{},
		TopSkills:           []SkillCount{},
	}

	teamHasMembers := make(map[string]bool, len(teams))
	skillFreq := map[string]int{}
	cutoff := u.now().Add(-recentWindow)

	for _, m := range merged {
		if string(m.MemberType) != "" {
			summary.MembersByType[string(m.MemberType)]++
		}
		if m.Department != "" {
			summary.MembersByDepartment[m.Department]++
		}
		if m.Year != "" {
			summary.MembersByYear[m.Year]++
		}
		if len(m.Teams) == 0 {
			summary.MembersWithoutTeams++
		}
		for _, teamID := range m.Teams {
			teamHasMembers[teamID] = true
		}
		if !m.Created.IsZero() && m.Created.After(cutoff) {
			summary.RecentMembers++
		}
		for _, skill := range m.Skills {
			if skill != "" {
				skillFreq[skill]++
			}
		}
	}

	for _, t := range teams {
		if !teamHasMembers[t.ID] {
			summary.TeamsWithoutMembers = append(summary.TeamsWithoutMembers, t.ID)
		}
	}
	sort.Strings(summary.TeamsWithoutMembers)

	summary.TopSkills = topSkills(skillFreq, topSkillsLimit)
	return summary, nil
}

func topSkills(freq map[string]int, limit int) []SkillCount {
	out := make([]SkillCount, 0, len(freq))
	for skill, count := range freq {
		out = append(out, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
