// Package authz holds the pure role predicates gating every action and the
// visibility scopes narrowing what each principal can see. Nothing in here
// touches the datastore.
package authz

import "jobboard/internal/domain"

type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Resource string

const (
	ResourceListing     Resource = "listing"
	ResourceCompany     Resource = "company"
	ResourceApplication Resource = "application"
)

// Allow decides whether a principal may perform an action on a resource
// kind. It returns ErrUnauthorized for anonymous callers and ErrForbidden
// for role mismatches. Ownership checks on concrete records are separate
// (CanManageCompany, CanManageListing).
func Allow(p *domain.Principal, action Action, res Resource) error {
	if p == nil {
		return domain.ErrUnauthorized
	}
	switch res {
	case ResourceListing:
		switch action {
		case ActionList, ActionRead:
			return nil // any authenticated principal
		case ActionCreate, ActionUpdate, ActionDelete:
			if p.IsEmployer() || p.IsAdmin() {
				return nil
			}
			return domain.ErrForbidden
		}
	case ResourceCompany:
		switch action {
		case ActionList, ActionRead:
			return nil
		case ActionCreate:
			// Only employers can own a company, so only they create one.
			if p.IsEmployer() {
				return nil
			}
			return domain.ErrForbidden
		case ActionUpdate, ActionDelete:
			if p.IsEmployer() || p.IsAdmin() {
				return nil
			}
			return domain.ErrForbidden
		}
	case ResourceApplication:
		switch action {
		case ActionCreate:
			if p.IsCandidate() {
				return nil
			}
			return domain.ErrForbidden
		case ActionList, ActionRead, ActionUpdate:
			if p.IsEmployer() || p.IsAdmin() {
				return nil
			}
			return domain.ErrForbidden
		}
	}
	return domain.ErrForbidden
}

// CanManageCompany gates writes against a concrete company: its owner or an
// admin.
func CanManageCompany(p *domain.Principal, c *domain.Company) error {
	if p == nil {
		return domain.ErrUnauthorized
	}
	if p.IsAdmin() || c.OwnerID == p.ID {
		return nil
	}
	return domain.ErrForbidden
}

// CanManageListing gates writes against a concrete listing given the owner
// of its parent company.
func CanManageListing(p *domain.Principal, companyOwner domain.UserID) error {
	if p == nil {
		return domain.ErrUnauthorized
	}
	if p.IsAdmin() || (p.IsEmployer() && companyOwner == p.ID) {
		return nil
	}
	return domain.ErrForbidden
}
