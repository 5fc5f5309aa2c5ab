package models

import "encoding/json"

// Role identifies a member's duty within the club.
type Role string

const (
	RoleExecutive         Role = "exec"
	RolePartLeader        Role = "part"
	RoleAttendanceOfficer Role = "officer"
	RoleMember            Role = "member"
	RoleUnknown           Role = "unk"
)

// Roles lists every role in display order.
var Roles = []Role{
	RoleExecutive, RolePartLeader, RoleAttendanceOfficer, RoleMember,
	RoleUnknown,
}

var roleDisplayNames = map[Role]string{
	RoleExecutive:         "役員",
	RolePartLeader:        "パートリーダー",
	RoleAttendanceOfficer: "出席係",
	RoleMember:            "部員",
	RoleUnknown:           "不明",
}

// DisplayName returns the Japanese display name for the role.
func (r Role) DisplayName() string {
	if name, ok := roleDisplayNames[r]; ok {
		return name
	}
	return roleDisplayNames[RoleUnknown]
}

// NormalizeRole maps an arbitrary string onto a known role value.
// Anything unrecognized becomes RoleUnknown rather than an error.
func NormalizeRole(value string) Role {
	if _, ok := roleDisplayNames[Role(value)]; ok {
		return Role(value)
	}
	return RoleUnknown
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = NormalizeRole(s)
	return nil
}
