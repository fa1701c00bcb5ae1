package models

// CheckMessageResponse contains the result of a message risk check.
type CheckMessageResponse struct {
	Message string `json:"message"`
	Risk    string `json:"risk"`
}

// ReportResponse contains the result of a scam report submission.
type ReportResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ReportCount int    `json:"report_count"`
}

// StatusResponse is the generic success/message envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
