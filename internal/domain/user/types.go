package user

type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleRenter, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// NewSignupRole parses a role chosen at registration. Admin accounts
// are provisioned out of band and cannot be self-assigned.
func NewSignupRole(s string) (Role, error) {
	role, err := NewRole(s)
	if err != nil {
		return "", err
	}
	if role == RoleAdmin {
		return "", ErrInvalidRole
	}
	return role, nil
}
