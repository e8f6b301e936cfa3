package http

import (
	"net/http"
	"strconv"

	"jobboard/internal/domain"
	"jobboard/internal/store"
)

func parsePage(r *http.Request) store.Page {
	q := r.URL.Query()
	page := store.Page{}
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		page.Number = n
	}
	if n, err := strconv.Atoi(q.Get("page_size")); err == nil {
		page.Size = n
	}
	return page
}

func parseListingFilter(r *http.Request) store.ListingFilter {
	q := r.URL.Query()
	f := store.ListingFilter{Search: q.Get("search")}
	if v := q.Get("salary"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.Salary = &n
		}
	}
	if v := q.Get("location"); v != "" {
		f.Location = &v
	}
	if v := q.Get("active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.Active = &b
		}
	}
	return f
}

func parseApplicationFilter(r *http.Request) store.ApplicationFilter {
	q := r.URL.Query()
	f := store.ApplicationFilter{Search: q.Get("search")}
	if v := q.Get("listing_location"); v != "" {
		f.ListingLocation = &v
	}
	if v := q.Get("listing_salary"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.ListingSalary = &n
		}
	}
	if v := q.Get("status"); v != "" {
		s := domain.ApplicationStatus(v)
		f.Status = &s
	}
	return f
}
