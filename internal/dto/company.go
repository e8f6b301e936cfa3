package dto

type CompanyRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
}

// UpdateCompanyRequest uses pointers so PATCH can distinguish omitted from
// zero-valued fields.
type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty"`
	Location     *string `json:"location,omitempty"`
	Description  *string `json:"description,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
}
