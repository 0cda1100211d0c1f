package receipts

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("receipt not found")

// Receipt is the portal's own record of a successful submission. It is
// bookkeeping for support queries, not authoritative application state;
// the HR API remains the source of truth.
type Receipt struct {
	ID            string    `json:"id"`
	ReferenceCode string    `json:"referenceCode"`
	JobPostingID  string    `json:"jobPostingId"`
	JobTitle      string    `json:"jobTitle"`
	ApplicantName string    `json:"applicantName"`
	Email         string    `json:"email"`
	ServerIssued  bool      `json:"serverIssued"`
	EmailQueued   bool      `json:"emailQueued"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
