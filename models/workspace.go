package models

// WorkspaceRole is a user's role inside a workspace as reported by the
// membership collaborator. The zero value [RoleNone] means "not a member"
// or "unknown".
type WorkspaceRole string

const (
	RoleNone   WorkspaceRole = ""
	RoleOwner  WorkspaceRole = "OWNER"
	RoleAdmin  WorkspaceRole = "ADMIN"
	RoleMember WorkspaceRole = "MEMBER"
	RoleViewer WorkspaceRole = "VIEWER"
)

// IsAdmin reports whether the role grants the workspace admin override.
func (r WorkspaceRole) IsAdmin() bool {
	return r == RoleOwner || r == RoleAdmin
}
