package dto

// SubmitApplicationRequest is decoded from a multipart form: the resume
// bytes come from the uploaded file part.
type SubmitApplicationRequest struct {
	ListingID   string
	Resume      []byte
	ResumeName  string
	CoverLetter string
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}
