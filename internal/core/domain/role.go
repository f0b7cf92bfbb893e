package domain

import "fmt"

// Role is the canonical account role. Exactly three roles exist; the long
// spellings used by older clients are accepted at the HTTP boundary only.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDataEntry    Role = "deo"
	RoleVerification Role = "vo"
)

// roleAliases maps legacy client spellings to canonical roles.
var roleAliases = map[string]Role{
	"admin":               RoleAdmin,
	"deo":                 RoleDataEntry,
	"dataEntryOfficer":    RoleDataEntry,
	"vo":                  RoleVerification,
	"verificationOfficer": RoleVerification,
}

// ParseRole resolves a role string (canonical or legacy spelling) to its
// canonical form.
func ParseRole(s string) (Role, error) {
	if role, ok := roleAliases[s]; ok {
		return role, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// IsOfficer reports whether the role is subject to the single-active-officer
// rule and the officer-detail requirement.
func (r Role) IsOfficer() bool {
	return r == RoleDataEntry || r == RoleVerification
}

// String returns the canonical spelling.
func (r Role) String() string {
	return string(r)
}
