// models/user.go
package models

// Role determines how broadly a user can see stored proposals.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleOwner      Role = "owner"
	RoleAdmin      Role = "admin"
	RoleAgent      Role = "agent"
)

// User is the authenticated caller identity carried through request
// context. It arrives from JWT claims; there is no local user storage.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CompanyID string `json:"companyId"`
	Role      Role   `json:"role"`
}

// SeesAllProposals reports whether the role is exempt from company and
// author scoping when listing proposals.
func (r Role) SeesAllProposals() bool {
	return r == RoleSuperAdmin || r == RoleOwner
}
