// Package policy holds the authorization decision point shared by all
// modules.
//
// Admin designation comes from two places: a configured phone allow-list and
// the role carried by the resolved identity. Keeping the decision in one
// function prevents the two sources from being consulted inconsistently
// across call sites.
package policy

// Policy authorizes admin-only operations.
type Policy struct {
	adminPhones map[string]struct{}
	defaultRole string
}

// New builds a Policy from the admin phone allow-list and the default
// (non-privileged) role name.
func New(adminPhones []string, defaultRole string) *Policy {
	phones := make(map[string]struct{}, len(adminPhones))
	for _, p := range adminPhones {
		phones[p] = struct{}{}
	}

	return &Policy{adminPhones: phones, defaultRole: defaultRole}
}

// Authorize reports whether the identity may perform admin-only operations:
// its phone is allow-listed, or its role is not the default role.
func (p *Policy) Authorize(phone, role string) bool {
	if _, ok := p.adminPhones[phone]; ok {
		return true
	}

	return role != "" && role != p.defaultRole
}
