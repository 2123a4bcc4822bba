package models

// AuthKey is the auth_keys record as stored in the record store.
type AuthKey struct {
	ID       string `json:"id,omitempty"`
	Key      string `json:"key"`
	Label    string `json:"label"`
	TeamMgmt bool   `json:"team_mgmt"`
	Active   bool   `json:"active"`
}

// MemberKey is the member_keys record as stored in the record store.
type MemberKey struct {
	ID       string `json:"id,omitempty"`
	MemberID string `json:"member_id"`
	KeyHash  string `json:"key_hash"`
	KeyType  string `json:"key_type"`
	Active   bool   `json:"active"`
}

// BlockedIP is the blocked_ips record as stored in the record store.
type BlockedIP struct {
	ID          string `json:"id,omitempty"`
	IP          string `json:"ip"`
	Reason      string `json:"reason"`
	RedirectURL string `json:"redirect_url"`
}
