package tracker

import (
	"context"
	"fmt"
	"strings"

	"careers-portal/internal/hrapi"
)

// lookupLimit bounds the fuzzy search; exact-match selection happens here.
const lookupLimit = 10

// HRClient is the slice of the HR API the tracker depends on.
type HRClient interface {
	ApplicantsByReference(ctx context.Context, search string, limit int) ([]hrapi.Applicant, error)
}

// Service resolves reference codes to status progress views.
type Service struct {
	hr HRClient
}

// NewService constructs a Service.
func NewService(hr HRClient) *Service {
	return &Service{hr: hr}
}

// Lookup normalizes the reference, queries the HR API and selects the
// exact case-insensitive match from the result set. A near-match returned
// by the server-side fuzzy search is not a match.
func (s *Service) Lookup(ctx context.Context, reference string) (Result, error) {
	normalized := strings.ToUpper(strings.TrimSpace(reference))
	if normalized == "" {
		return Result{}, ErrEmptyReference
	}

	applicants, err := s.hr.ApplicantsByReference(ctx, normalized, lookupLimit)
	if err != nil {
		return Result{}, fmt.Errorf("reference lookup: %w", err)
	}

	for _, a := range applicants {
		if strings.EqualFold(strings.TrimSpace(a.ApplicantCode), normalized) {
			return Result{
				Reference: normalized,
				Applicant: projectApplicant(a),
				Progress:  BuildProgress(strings.ToUpper(strings.TrimSpace(a.Status))),
			}, nil
		}
	}
	return Result{}, ErrNotFound
}

func projectApplicant(a hrapi.Applicant) Applicant {
	jobTitle := a.JobTitle
	jobCode := a.JobCode
	if a.JobPosting != nil {
		if jobTitle == "" {
			jobTitle = a.JobPosting.JobTitle
		}
		if jobCode == "" {
			jobCode = a.JobPosting.JobCode
		}
	}
	fullName := strings.TrimSpace(a.FullName)
	if fullName == "" {
		fullName = strings.TrimSpace(a.FirstName + " " + a.LastName)
	}
	return Applicant{
		ReferenceCode: strings.ToUpper(strings.TrimSpace(a.ApplicantCode)),
		FullName:      fullName,
		Email:         a.Email,
		Phone:         a.Phone,
		JobTitle:      jobTitle,
		JobCode:       jobCode,
		Status:        strings.ToUpper(strings.TrimSpace(a.Status)),
		SubmittedAt:   a.CreatedAt,
	}
}
