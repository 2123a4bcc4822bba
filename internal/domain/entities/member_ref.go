package entities

import "strings"

// LegacyIDPrefix marks IDs that address the nodex_team collection instead of
// club_members. The prefix is synthetic: it exists only on the wire, never in
// either collection.
const LegacyIDPrefix = "legacy_"

// RefKind tells which collection a MemberRef addresses
type RefKind string

const (
	RefCanonical RefKind = "canonical"
	RefLegacy    RefKind = "legacy"
)

// MemberRef is a parsed member identifier. Callers may pass either a raw
// club_members ID or a "legacy_" prefixed nodex_team ID; the prefix is parsed
// exactly once here and carried as an explicit variant downstream.
type MemberRef struct {
	Kind RefKind
	ID   string
}

// ParseMemberRef resolves the synthetic prefix into a tagged ref.
func ParseMemberRef(raw string) MemberRef {
	if rest, ok := strings.CutPrefix(raw, LegacyIDPrefix); ok {
		return MemberRef{Kind: RefLegacy, ID: rest}
	}
	return MemberRef{Kind: RefCanonical, ID: raw}
}

// String renders the ref back to its wire form.
func (r MemberRef) String() string {
	if r.Kind == RefLegacy {
		return LegacyIDPrefix + r.ID
	}
	return r.ID
}

// IsLegacy reports whether the ref addresses the nodex_team collection.
func (r MemberRef) IsLegacy() bool {
	return r.Kind == RefLegacy
}
