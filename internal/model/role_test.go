package model

import "testing"

func TestRoleHas(t *testing.T) {
	cases := []struct {
		name string
		role Role
		mask Role
		want bool
	}{
		{"user against any", RoleUser, RoleAny, true},
		{"moderator against moderator or admin", RoleModerator, RoleModerator | RoleAdmin, true},
		{"moderator against admin alone", RoleModerator, RoleAdmin, false},
		{"full mask against admin", RoleUser | RoleModerator | RoleAdmin, RoleAdmin, true},
		{"user against moderation mask", RoleUser, RoleModerator | RoleAdmin, false},
		{"zero role", Role(0), RoleAny, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.role.Has(tc.mask); got != tc.want {
				t.Errorf("Role(%d).Has(%d) = %v, want %v", tc.role, tc.mask, got, tc.want)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for s := StatusDenied; s <= StatusApproved; s++ {
		if !ValidStatus(s) {
			t.Errorf("status %d should be valid", s)
		}
	}
	if ValidStatus(Status(-1)) || ValidStatus(Status(3)) {
		t.Error("out-of-range statuses should be invalid")
	}
}
