package entities

import (
	"time"

	"github.com/google/uuid"
)

// TeamRole is the role a talent holds within a team
type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
)

// IsValid reports whether r is a known role.
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleOwner, TeamRoleAdmin, TeamRoleMember:
		return true
	}
	return false
}

// TeamAction is a team-scoped operation that requires a role.
type TeamAction string

const (
	ActionManageTeam   TeamAction = "manage_team"
	ActionViewPostings TeamAction = "view_postings"
	ActionDeleteTeam   TeamAction = "delete_team"
)

var teamPermissions = map[TeamAction][]TeamRole{
	ActionManageTeam:   {TeamRoleOwner, TeamRoleAdmin},
	ActionViewPostings: {TeamRoleOwner, TeamRoleAdmin, TeamRoleMember},
	ActionDeleteTeam:   {TeamRoleOwner},
}

// RolesFor returns the roles allowed to perform action. Unknown actions allow
// no role.
func RolesFor(action TeamAction) []TeamRole {
	return teamPermissions[action]
}

// TeamMember links a talent to a team. At most one exists per (team, talent).
type TeamMember struct {
	ID       uuid.UUID `json:"id"`
	TalentID uuid.UUID `json:"talentId"`
	TeamID   uuid.UUID `json:"teamId"`
	Position string    `json:"position"`
	Role     TeamRole  `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// HasRole reports whether the member's role is one of roles.
func (m *TeamMember) HasRole(roles ...TeamRole) bool {
	for _, r := range roles {
		if m.Role == r {
			return true
		}
	}
	return false
}

// MembershipSummary is the membership part of a MyTeam view.
type MembershipSummary struct {
	Position string    `json:"position"`
	Role     TeamRole  `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}
