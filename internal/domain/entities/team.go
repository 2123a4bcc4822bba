package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// TeamStatus represents team lifecycle status
type TeamStatus string

const (
	TeamStatusActive   TeamStatus = "active"
	TeamStatusArchived TeamStatus = "archived"
)

// Team is a project/working group. It owns no member list: membership is
// recorded on each Member's Teams array, so deleting a Team must first strip
// its ID from every referencing member.
type Team struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	TeamLead       string     `json:"teamLead"`
	RepositoryURL  string     `json:"repositoryUrl,omitempty"`
	JiraURL        string     `json:"jiraUrl,omitempty"`
	Status         TeamStatus `json:"status"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	SkillsRequired []string   `json:"skillsRequired"`
	MaxMembers     null.Int   `json:"maxMembers,omitempty"`
	CreatedBy      string     `json:"createdBy"`
	Created        time.Time  `json:"created"`
	Updated        time.Time  `json:"updated"`
}

// CreateTeamInput represents input for creating a team
type CreateTeamInput struct {
	Name           string   `json:"name" binding:"required,min=2,max=100"`
	Description    string   `json:"description" binding:"required"`
	Category       string   `json:"category"`
	TeamLead       string   `json:"teamLead"`
	RepositoryURL  string   `json:"repositoryUrl"`
	JiraURL        string   `json:"jiraUrl"`
	ImageURL       string   `json:"imageUrl"`
	SkillsRequired []string `json:"skillsRequired"`
	MaxMembers     int      `json:"maxMembers"`
}

// UpdateTeamInput represents input for updating a team
type UpdateTeamInput struct {
	Name           string   `json:"name" binding:"required,min=2,max=100"`
	Description    string   `json:"description" binding:"required"`
	Category       string   `json:"category"`
	TeamLead       string   `json:"teamLead"`
	RepositoryURL  string   `json:"repositoryUrl"`
	JiraURL        string   `json:"jiraUrl"`
	Status         string   `json:"status"`
	ImageURL       string   `json:"imageUrl"`
	SkillsRequired []string `json:"skillsRequired"`
	MaxMembers     int      `json:"maxMembers"`
}

// TeamDetachReport is the outcome of stripping a team from its members during
// deletion. Failed holds member IDs whose rewrite did not go through; the team
// record is only removed when Failed is empty.
type TeamDetachReport struct {
	TeamID   string   `json:"teamId"`
	Detached []string `json:"detached"`
	Failed   []string `json:"failed,omitempty"`
}
