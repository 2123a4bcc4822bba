package entities

import "time"

// AuthKey is a recruiter/admin credential in the auth_keys collection. The
// opaque key travels in the auth-key cookie and is looked up by exact match.
type AuthKey struct {
	ID       string `json:"id"`
	Key      string `json:"-"`
	Label    string `json:"label"`
	TeamMgmt bool   `json:"teamMgmt"`
	Active   bool   `json:"active"`
}

// Session is the per-request authentication context built by the auth
// middleware after resolving the auth-key cookie. Handlers read it from the
// gin context instead of re-fetching the key themselves.
type Session struct {
	KeyID    string `json:"keyId"`
	Label    string `json:"label"`
	TeamMgmt bool   `json:"teamMgmt"`
}

// MemberKey is a member self-service credential in the member_keys
// collection. The key itself is stored bcrypt-hashed.
type MemberKey struct {
	ID       string `json:"id"`
	MemberID string `json:"memberId"`
	KeyHash  string `json:"-"`
	KeyType  string `json:"keyType"`
	Active   bool   `json:"active"`
}

// MemberSession is the payload of the member-session cookie. The cookie
// carries it as a signed token; LoginTime is re-checked in application code
// against the 24h soft expiry.
type MemberSession struct {
	MemberID  string    `json:"memberId"`
	KeyType   string    `json:"keyType"`
	LoginTime time.Time `json:"loginTime"`
}

// BlockedIP is a blocklist row consulted by the join endpoint. A matching
// submission is answered with a redirect instead of creating an application.
type BlockedIP struct {
	ID          string `json:"id"`
	IP          string `json:"ip"`
	Reason      string `json:"reason"`
	RedirectURL string `json:"redirectUrl"`
}

// MemberLoginInput represents member dashboard login
type MemberLoginInput struct {
	StudentID string `json:"studentId" binding:"required"`
	AccessKey string `json:"accessKey" binding:"required"`
}
