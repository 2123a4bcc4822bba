package models

// Application is the nodex_apps record as stored in the record store.
type Application struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	StudentID  string   `json:"student_id"`
	Phone      string   `json:"phone"`
	Department string   `json:"department"`
	Year       string   `json:"year"`
	Skills     []string `json:"skills"`
	Motivation string   `json:"motivation"`
	ModRemarks string   `json:"mod_remarks"`
	Created    string   `json:"created,omitempty"`
}

// MarkedApplication is the marked_apps record as stored in the record store.
type MarkedApplication struct {
	ID            string `json:"id,omitempty"`
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
	Remarks       string `json:"remarks"`
	Reviewer      string `json:"reviewer"`
	ReviewedAt    string `json:"reviewed_at"`
	Created       string `json:"created,omitempty"`
}
