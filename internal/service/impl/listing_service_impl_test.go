package impl

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain"
	"jobboard/internal/dto"
	"jobboard/internal/store"

	"github.com/google/uuid"
)

func strp(s string) *string { return &s }

func TestCreateListing(t *testing.T) {
	st := setupStore(t)
	svc := NewListingServiceImpl(st)
	ctx := context.Background()

	emp := createUser(t, st, domain.RoleEmployer, true)
	company := createCompany(t, st, emp)

	l, err := svc.Create(ctx, principalFor(emp), dto.CreateListingRequest{
		Title:    "  Backend Engineer  ",
		Location: "Berlin",
		Salary:   80000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if l.Title != "Backend Engineer" {
		t.Fatalf("title = %q, want trimmed", l.Title)
	}
	if !l.Active {
		t.Fatal("new listings start active")
	}
	if l.CompanyID != company.ID {
		t.Fatal("listing should land on the employer's first company")
	}
}

func TestCreateListingValidation(t *testing.T) {
	st := setupStore(t)
	svc := NewListingServiceImpl(st)
	ctx := context.Background()

	emp := createUser(t, st, domain.RoleEmployer, true)
	createCompany(t, st, emp)
	p := principalFor(emp)

	if _, err := svc.Create(ctx, p, dto.CreateListingRequest{Title: "  "}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank title: err = %v, want ErrValidation", err)
	}
	if _, err := svc.Create(ctx, p, dto.CreateListingRequest{Title: "x", Salary: -1}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("negative salary: err = %v, want ErrValidation", err)
	}
}

func TestCreateListingCompanyResolution(t *testing.T) {
	st := setupStore(t)
	svc := NewListingServiceImpl(st)
	ctx := context.Background()

	// employer with no company cannot post
	orphan := createUser(t, st, domain.RoleEmployer, true)
	if _, err := svc.Create(ctx, principalFor(orphan), dto.CreateListingRequest{Title: "x"}); !errors.Is(err, domain.ErrNoOwnedCompany) {
		t.Fatalf("no company: err = %v, want ErrNoOwnedCompany", err)
	}

	emp := createUser(t, st, domain.RoleEmployer, true)
	company := createCompany(t, st, emp)

	// candidates cannot post at all
	cand := createUser(t, st, domain.RoleCandidate, true)
	if _, err := svc.Create(ctx, principalFor(cand), dto.CreateListingRequest{Title: "x"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("candidate: err = %v, want ErrForbidden", err)
	}

	// an employer cannot post under someone else's company
	rival := createUser(t, st, domain.RoleEmployer, true)
	createCompany(t, st, rival)
	id := company.ID.String()
	if _, err := svc.Create(ctx, principalFor(rival), dto.CreateListingRequest{Title: "x", CompanyID: &id}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign company: err = %v, want ErrForbidden", err)
	}

	// admins may, but only with an explicit company
	admin := createUser(t, st, domain.RoleAdmin, true)
	if _, err := svc.Create(ctx, principalFor(admin), dto.CreateListingRequest{Title: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("admin without companyId: err = %v, want ErrValidation", err)
	}
	if _, err := svc.Create(ctx, principalFor(admin), dto.CreateListingRequest{Title: "x", CompanyID: &id}); err != nil {
		t.Fatalf("admin with companyId: %v", err)
	}

	missing := uuid.NewString()
	if _, err := svc.Create(ctx, principalFor(admin), dto.CreateListingRequest{Title: "x", CompanyID: &missing}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown company: err = %v, want ErrNotFound", err)
	}
}

func TestGetListingVisibility(t *testing.T) {
	st := setupStore(t)
	svc := NewListingServiceImpl(st)
	ctx := context.Background()

	emp := createUser(t, st, domain.RoleEmployer, true)
	company := createCompany(t, st, emp)
	hidden := createListing(t, st, company, false)

	if _, err := svc.Get(ctx, nil, hidden.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous: err = %v, want ErrUnauthorized", err)
	}

	// candidates see inactive listings as if they never existed
	cand := createUser(t, st, domain.RoleCandidate, true)
	if _, err := svc.Get(ctx, principalFor(cand), hidden.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("candidate sees inactive: err = %v, want ErrNotFound", err)
	}
	rival := createUser(t, st, domain.RoleEmployer, true)
	if _, err := svc.Get(ctx, principalFor(rival), hidden.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("rival sees inactive: err = %v, want ErrNotFound", err)
	}

	// the owner and admins still do
	if _, err := svc.Get(ctx, principalFor(emp), hidden.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	admin := createUser(t, st, domain.RoleAdmin, true)
	if _, err := svc.Get(ctx, principalFor(admin), hidden.ID); err != nil {
		t.Fatalf("admin get: %v", err)
	}
}

func TestListListingsScoped(t *testing.T) {
	st := setupStore(t)
	svc := NewListingServiceImpl(st)
	ctx := context.Background()

	emp := createUser(t, st, domain.RoleEmployer, true)
	company := createCompany(t, st, emp)
	active := createListing(t, st, company, true)
	inactive := createListing(t, st, company, false)

	rival := createUser(t, st, domain.RoleEmployer, true)
	rivalCo := createCompany(t, st, rival)
	createListing(t, st, rivalCo, true)

	cand := createUser(t, st, domain.RoleCandidate, true)
	_, total, err := svc.List(ctx, principalFor(cand), store.ListingFilter{}, store.Page{})
	if err != nil {
		t.Fatalf("candidate list: %v", err)
	}
	if total != 2 {
		t.Fatalf("candidate sees %d, want the 2 active", total)
	}

	// an employer's feed is their own book, active or not
	ls, total, err := svc.List(ctx, principalFor(emp), store.ListingFilter{}, store.Page{})
	if err != nil {
		t.Fatalf("employer list: %v", err)
	}
	if total != 2 {
		t.Fatalf("employer sees %d, want 2", total)
	}
	seen := map[domain.ListingID]bool{}
	for _, l := range ls {
		seen[l.ID] = true
	}
	if !seen[active.ID] || !seen[inactive.ID] {
		t.Fatalf("employer feed missing own listings: %v", seen)
	}

	admin := createUser(t, st, domain.RoleAdmin, true)
	_, total, err = svc.List(ctx, principalFor(admin), store.ListingFilter{}, store.Page{})
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if total != 3 {
		t.Fatalf("admin sees %d, want all 3", total)
	}
}

func TestListListingsFilters(t *testing.T) {
	st := setupStore(t)
	svc := NewListingServiceImpl(st)
	ctx := context.Background()

	emp := createUser(t, st, domain.RoleEmployer, true)
	company := createCompany(t, st, emp) // name Acme, location Berlin

	mk := func(title, location string, salary int64) {
		l := createListing(t, st, company, true)
		l.Title, l.Location, l.Salary = title, location, salary
		if err := st.Listings().Update(ctx, l); err != nil {
			t.Fatalf("update seed: %v", err)
		}
	}
	mk("Go Developer", "Berlin", 70000)
	mk("Data Analyst", "Remote", 50000)
	mk("Senior Go Developer", "Munich", 95000)

	cand := principalFor(createUser(t, st, domain.RoleCandidate, true))

	_, total, err := svc.List(ctx, cand, store.ListingFilter{Search: "go dev"}, store.Page{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 2 {
		t.Fatalf("search 'go dev' matched %d, want 2", total)
	}

	// company name matches too
	_, total, err = svc.List(ctx, cand, store.ListingFilter{Search: "acme"}, store.Page{})
	if err != nil {
		t.Fatalf("search company: %v", err)
	}
	if total != 3 {
		t.Fatalf("search 'acme' matched %d, want 3", total)
	}

	salary := int64(70000)
	_, total, err = svc.List(ctx, cand, store.ListingFilter{Salary: &salary}, store.Page{})
	if err != nil {
		t.Fatalf("salary filter: %v", err)
	}
	if total != 1 {
		t.Fatalf("salary=70000 matched %d, want 1", total)
	}

	loc := "Berlin"
	_, total, err = svc.List(ctx, cand, store.ListingFilter{Location: &loc}, store.Page{})
	if err != nil {
		t.Fatalf("location filter: %v", err)
	}
	if total != 1 {
		t.Fatalf("location Berlin matched %d, want 1", total)
	}
}

func TestUpdateListing(t *testing.T) {
	st := setupStore(t)
	svc := NewListingServiceImpl(st)
	ctx := context.Background()

	emp := createUser(t, st, domain.RoleEmployer, true)
	company := createCompany(t, st, emp)
	l := createListing(t, st, company, true)

	rival := createUser(t, st, domain.RoleEmployer, true)
	if _, err := svc.Update(ctx, principalFor(rival), l.ID, dto.UpdateListingRequest{Title: strp("hijacked")}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("rival update: err = %v, want ErrForbidden", err)
	}

	if _, err := svc.Update(ctx, principalFor(emp), l.ID, dto.UpdateListingRequest{Title: strp("  ")}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank title: err = %v, want ErrValidation", err)
	}

	salary := int64(120000)
	got, err := svc.Update(ctx, principalFor(emp), l.ID, dto.UpdateListingRequest{
		Title:  strp("Staff Engineer"),
		Salary: &salary,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "Staff Engineer" || got.Salary != 120000 {
		t.Fatalf("got %q/%d", got.Title, got.Salary)
	}
	// untouched fields survive the patch
	if got.Location != l.Location {
		t.Fatalf("location changed: %q", got.Location)
	}
}

func TestDeactivateListing(t *testing.T) {
	st := setupStore(t)
	svc := NewListingServiceImpl(st)
	ctx := context.Background()

	emp := createUser(t, st, domain.RoleEmployer, true)
	company := createCompany(t, st, emp)
	l := createListing(t, st, company, true)

	cand := createUser(t, st, domain.RoleCandidate, true)
	if err := svc.Deactivate(ctx, principalFor(cand), l.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("candidate: err = %v, want ErrForbidden", err)
	}

	if err := svc.Deactivate(ctx, principalFor(emp), l.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	got, err := st.Listings().GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("row must survive deactivation: %v", err)
	}
	if got.Active {
		t.Fatal("listing should be inactive")
	}

	if err := svc.Deactivate(ctx, principalFor(emp), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing listing: err = %v, want ErrNotFound", err)
	}
}
