package entities

import "time"

// MemberType represents the kind of club membership
type MemberType string

const (
	MemberTypeFounding MemberType = "founding"
	MemberTypeCore     MemberType = "core"
	MemberTypeBOS      MemberType = "bos"
	MemberTypeGeneral  MemberType = "general"
)

// MemberStatus represents member account status
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusAlumni   MemberStatus = "alumni"
)

// Member is the canonical person record in the club_members collection.
// Team membership is inverse: Teams holds the IDs of every team the member
// belongs to, the Team record itself carries no member list.
type Member struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	StudentID    string       `json:"studentId"`
	Phone        string       `json:"phone"`
	MemberType   MemberType   `json:"memberType"`
	Position     string       `json:"position"`
	Department   string       `json:"department"`
	Year         string       `json:"year"`
	Teams        []string     `json:"teams"`
	Skills       []string     `json:"skills"`
	Bio          string       `json:"bio"`
	LinkedInURL  string       `json:"linkedinUrl,omitempty"`
	GithubURL    string       `json:"githubUrl,omitempty"`
	PortfolioURL string       `json:"portfolioUrl,omitempty"`
	Status       MemberStatus `json:"status"`
	Created      time.Time    `json:"created"`
	Updated      time.Time    `json:"updated"`
}

// HasTeam reports whether the member already belongs to the given team.
func (m *Member) HasTeam(teamID string) bool {
	for _, id := range m.Teams {
		if id == teamID {
			return true
		}
	}
	return false
}

// CreateMemberInput represents input for creating a club member
type CreateMemberInput struct {
	Name         string   `json:"name" binding:"required,min=2,max=100"`
	Email        string   `json:"email" binding:"required,email"`
	StudentID    string   `json:"studentId"`
	Phone        string   `json:"phone"`
	MemberType   string   `json:"memberType" binding:"required"`
	Position     string   `json:"position"`
	Department   string   `json:"department"`
	Year         string   `json:"year"`
	Skills       []string `json:"skills"`
	Bio          string   `json:"bio"`
	LinkedInURL  string   `json:"linkedinUrl"`
	GithubURL    string   `json:"githubUrl"`
	PortfolioURL string   `json:"portfolioUrl"`
}

// UpdateMemberInput represents input for updating a club member
type UpdateMemberInput struct {
	Name         string   `json:"name" binding:"required,min=2,max=100"`
	Email        string   `json:"email" binding:"required,email"`
	StudentID    string   `json:"studentId"`
	Phone        string   `json:"phone"`
	MemberType   string   `json:"memberType" binding:"required"`
	Position     string   `json:"position"`
	Department   string   `json:"department"`
	Year         string   `json:"year"`
	Skills       []string `json:"skills"`
	Bio          string   `json:"bio"`
	LinkedInURL  string   `json:"linkedinUrl"`
	GithubURL    string   `json:"githubUrl"`
	PortfolioURL string   `json:"portfolioUrl"`
	Status       string   `json:"status"`
}
