package authz

import "jobboard/internal/domain"

// ListingScope describes the subset of listings a principal may see. The
// store translates it into query predicates.
type ListingScope struct {
	All        bool           // admin: everything, active or not
	OwnerID    *domain.UserID // employer: listings of companies they own
	ActiveOnly bool           // candidate: active listings only
}

func ListingsVisibleTo(p *domain.Principal) ListingScope {
	switch {
	case p.IsAdmin():
		return ListingScope{All: true}
	case p.IsEmployer():
		id := p.ID
		return ListingScope{OwnerID: &id}
	default:
		return ListingScope{ActiveOnly: true}
	}
}

// CanSeeListing is the single-record counterpart of ListingsVisibleTo.
func CanSeeListing(p *domain.Principal, l *domain.Listing, companyOwner domain.UserID) bool {
	switch {
	case p.IsAdmin():
		return true
	case p.IsEmployer():
		return companyOwner == p.ID || l.Active
	default:
		return l.Active
	}
}

// CompanyScope narrows company reads: admins see all, employers their own,
// candidates none.
type CompanyScope struct {
	All     bool
	OwnerID *domain.UserID
	None    bool
}

func CompaniesVisibleTo(p *domain.Principal) CompanyScope {
	switch {
	case p.IsAdmin():
		return CompanyScope{All: true}
	case p.IsEmployer():
		id := p.ID
		return CompanyScope{OwnerID: &id}
	default:
		return CompanyScope{None: true}
	}
}

// ApplicationScope narrows application reads: admins see all, employers the
// applications against their companies' listings.
type ApplicationScope struct {
	All            bool
	CompanyOwnerID *domain.UserID
}

func ApplicationsVisibleTo(p *domain.Principal) ApplicationScope {
	if p.IsAdmin() {
		return ApplicationScope{All: true}
	}
	id := p.ID
	return ApplicationScope{CompanyOwnerID: &id}
}
