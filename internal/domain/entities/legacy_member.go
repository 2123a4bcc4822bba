package entities

import "strings"

// LegacyCategory represents the nodex_team profile category
type LegacyCategory string

const (
	LegacyCategoryFounding LegacyCategory = "founding"
	LegacyCategoryCore     LegacyCategory = "core"
	LegacyCategoryDirec    LegacyCategory = "direc"
)

// LegacyMember is a founder/core/board-of-students profile from the older
// nodex_team collection. Read-mostly: the public site renders it directly,
// the dashboard only ever migrates it into club_members.
type LegacyMember struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Title         string         `json:"title"`
	Qualification string         `json:"qualification"`
	Category      LegacyCategory `json:"category"`
	Photo         string         `json:"photo"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Skills        string         `json:"skills"` // comma separated
	Github        string         `json:"github"`
	LinkedIn      string         `json:"linkedin"`
	Pos           int            `json:"pos"`
}

// MemberType maps the legacy category onto the club_members member_type.
// "direc" (board of students) becomes "bos", the rest pass through.
func (l *LegacyMember) MemberType() MemberType {
	switch l.Category {
	case LegacyCategoryDirec:
		return MemberTypeBOS
	case LegacyCategoryFounding:
		return MemberTypeFounding
	default:
		return MemberTypeCore
	}
}

// SkillList splits the comma-separated skills string into a trimmed slice.
func (l *LegacyMember) SkillList() []string {
	if strings.TrimSpace(l.Skills) == "" {
		return []string{}
	}
	parts := strings.Split(l.Skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Seed builds the club_members record a migration creates for this profile.
func (l *LegacyMember) Seed() *Member {
	return &Member{
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		MemberType:  l.MemberType(),
		Position:    l.Title,
		Teams:       []string{},
		Skills:      l.SkillList(),
		Bio:         l.Qualification,
		LinkedInURL: l.LinkedIn,
		GithubURL:   l.Github,
		Status:      MemberStatusActive,
	}
}
