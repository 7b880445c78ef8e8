package warta

// Policy is a fixed set of roles allowed to perform an action. An empty
// policy admits any authenticated principal regardless of role.
type Policy []Role

var (
	// PolicyAuthenticated admits any signed-in principal.
	PolicyAuthenticated = Policy(nil)
	// PolicyContent guards content mutations.
	PolicyContent = Policy{RoleAdmin, RoleEditor}
	// PolicyAdmin guards user-role mutations.
	PolicyAdmin = Policy{RoleAdmin}
)

func (p Policy) Allows(role Role) bool {
	if len(p) == 0 {
		return true
	}
	for _, r := range p {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize checks the principal against the policy. A missing
// principal yields ErrUnauthenticated, a role outside the set yields
// ErrForbidden.
func Authorize(pr *Principal, policy Policy) error {
	if pr == nil {
		return ErrUnauthenticated
	}
	if !policy.Allows(pr.Role) {
		return ErrForbidden
	}
	return nil
}
