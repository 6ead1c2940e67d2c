package domain

import "context"

// MemberRole names a team-member role subtype. Each role has its own extension
// table sharing the (MemberName, MemberPhoneNo) composite key.
type MemberRole string

const (
	RoleSpeaker      MemberRole = "Speaker"
	RolePhotographer MemberRole = "Photographer"
	RoleVolunteer    MemberRole = "Volunteer"
)

// ValidRole reports whether r names a known role subtype.
func ValidRole(r MemberRole) bool {
	switch r {
	case RoleSpeaker, RolePhotographer, RoleVolunteer:
		return true
	}
	return false
}

// TeamMember represents one staff member, keyed by the composite
// (MemberName, MemberPhoneNo) natural key.
type TeamMember struct {
	MemberName    string   `json:"MemberName"`
	MemberPhoneNo string   `json:"MemberPhoneNo"`
	OrganizerID   *int     `json:"OrganizerID"`
	StaffEmail    *string  `json:"StaffEmail"`
	PayRate       *float64 `json:"PayRate"`
}

// RoleDetail is the tagged-variant extension of a team member: the role table
// the member appears in plus its single role-specific attribute
// (ExperienceLevel, Equipment, or Skill).
type RoleDetail struct {
	Role      MemberRole `json:"Role"`
	Attribute string     `json:"Attribute"`
}

// TeamMemberRepository defines storage operations for team members. Writes that
// carry a RoleDetail touch the base row and the role extension row in a single
// transaction.
type TeamMemberRepository interface {
	ListAll(ctx context.Context) ([]*TeamMember, error)
	Create(ctx context.Context, m *TeamMember, role *RoleDetail) error
	Update(ctx context.Context, memberName, memberPhoneNo string, fields []FieldAssignment, role *RoleDetail) (int64, error)
	// Delete removes the member's role extension rows and the base row together.
	Delete(ctx context.Context, memberName, memberPhoneNo string) error
}

// TeamMemberService defines team-member CRUD operations.
type TeamMemberService interface {
	ListTeamMembers(ctx context.Context) ([]*TeamMember, error)
	AddTeamMember(ctx context.Context, m *TeamMember, role *RoleDetail) error
	UpdateTeamMember(ctx context.Context, memberName, memberPhoneNo string, fields map[string]any, role *RoleDetail) error
	DeleteTeamMember(ctx context.Context, memberName, memberPhoneNo string) error
}
