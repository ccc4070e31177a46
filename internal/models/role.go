package models

// PermissionLevel is a user's level inside one organization.
type PermissionLevel string

const (
	PermissionAdmin     PermissionLevel = "admin"
	PermissionVolunteer PermissionLevel = "volunteer"
)

// Valid reports whether p is a known permission level.
func (p PermissionLevel) Valid() bool {
	return p == PermissionAdmin || p == PermissionVolunteer
}

// Role links a user to an organization with a permission level.
// A user holds one role per organization they belong to.
type Role struct {
	UserID          int64           `json:"user_id"`
	OrganizationID  int64           `json:"organization_id"`
	PermissionLevel PermissionLevel `json:"permission_level"`
}
