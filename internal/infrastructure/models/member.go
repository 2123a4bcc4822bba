package models

// Member is the club_members record as stored in the record store.
type Member struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	StudentID    string   `json:"student_id"`
	Phone        string   `json:"phone"`
	MemberType   string   `json:"member_type"`
	Position     string   `json:"position"`
	Department   string   `json:"department"`
	Year         string   `json:"year"`
	Teams        []string `json:"teams"`
	Skills       []string `json:"skills"`
	Bio          string   `json:"bio"`
	LinkedInURL  string   `json:"linkedin_url"`
	GithubURL    string   `json:"github_url"`
	PortfolioURL string   `json:"portfolio_url"`
	Status       string   `json:"status"`
	Created      string   `json:"created,omitempty"`
	Updated      string   `json:"updated,omitempty"`
}

// LegacyMember is the nodex_team record as stored in the record store.
type LegacyMember struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Title         string `json:"title"`
	Qualification string `json:"qualification"`
	Category      string `json:"category"`
	Photo         string `json:"photo"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Skills        string `json:"skills"`
	Github        string `json:"github"`
	LinkedIn      string `json:"linkedin"`
	Pos           int    `json:"pos"`
}
