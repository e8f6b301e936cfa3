package dto

// CreateListingRequest carries an optional company id: employers owning
// several companies can pick one explicitly, otherwise their first company
// is used.
type CreateListingRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	Location     string  `json:"location"`
	Salary       int64   `json:"salary"`
	CompanyID    *string `json:"companyId,omitempty"`
}

// UpdateListingRequest uses pointers so PATCH can distinguish omitted from
// zero-valued fields.
type UpdateListingRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	Location     *string `json:"location,omitempty"`
	Salary       *int64  `json:"salary,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}
