package model

// Role is a bitmask over the platform authorities. A user may hold
// several authorities at once, combined with bitwise OR.
type Role int

const (
	RoleUser      Role = 1
	RoleModerator Role = 2
	RoleAdmin     Role = 4
)

// RoleAny matches any authenticated caller.
const RoleAny = RoleUser | RoleModerator | RoleAdmin

// Has reports whether the role carries at least one of the
// authorities in mask.
func (r Role) Has(mask Role) bool {
	return r&mask != 0
}

// Status is the moderation state of a recipe. Transitions are flat
// assignments: a moderator may set any status at any time.
type Status int

const (
	StatusDenied   Status = 0
	StatusPending  Status = 1
	StatusApproved Status = 2
)

// ValidStatus reports whether s is one of the known moderation states.
func ValidStatus(s Status) bool {
	return s >= StatusDenied && s <= StatusApproved
}
