package roles

// Role is the access level carried in a user's token claims.
type Role string

const (
	Owner       Role = "owner"
	Admin       Role = "admin"
	Doctor      Role = "doctor"
	Hospital    Role = "hospital"
	Deliverer   Role = "deliverer"
	Distributor Role = "distributor"
	Accountant  Role = "accountant"
)

// All returns every valid role.
func All() []Role {
	return []Role{Owner, Admin, Doctor, Hospital, Deliverer, Distributor, Accountant}
}

// IsValid checks if the role is one of the predefined valid roles.
func (r Role) IsValid() bool {
	switch r {
	case Owner, Admin, Doctor, Hospital, Deliverer, Distributor, Accountant:
		return true
	default:
		return false
	}
}

// IsOwner reports whether the role is the owner role.
func (r Role) IsOwner() bool {
	return r == Owner
}

// Parse safely parses a string into a Role.
func Parse(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}

// Allowed reports whether role may pass a gate restricted to required.
// The owner role passes every gate; this is an explicit override, not a
// default. The same predicate backs the server middleware and is what a
// client route guard must mirror.
func Allowed(role Role, required ...Role) bool {
	if role.IsOwner() {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}
