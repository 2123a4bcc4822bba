package models

// Team is the teams record as stored in the record store.
type Team struct {
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	TeamLead       string   `json:"team_lead"`
	RepositoryURL  string   `json:"repository_url"`
	JiraURL        string   `json:"jira_url"`
	Status         string   `json:"status"`
	ImageURL       string   `json:"image_url"`
	SkillsRequired []string `json:"skills_required"`
	MaxMembers     int      `json:"max_members"`
	CreatedBy      string   `json:"created_by"`
	Created        string   `json:"created,omitempty"`
	Updated        string   `json:"updated,omitempty"`
}
