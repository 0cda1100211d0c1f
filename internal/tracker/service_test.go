package tracker

import (
	"context"
	"errors"
	"testing"

	"careers-portal/internal/hrapi"
)

type fakeHR struct {
	lastSearch string
	lastLimit  int
	calls      int
	applicants []hrapi.Applicant
	err        error
}

func (f *fakeHR) ApplicantsByReference(ctx context.Context, search string, limit int) ([]hrapi.Applicant, error) {
	f.calls++
	f.lastSearch = search
	f.lastLimit = limit
	return f.applicants, f.err
}

func TestLookupNormalizesBeforeQuerying(t *testing.T) {
	hr := &fakeHR{applicants: []hrapi.Applicant{
		{ApplicantCode: "NU1705ABC123", Status: "SHORTLISTED", FullName: "Amina Okello"},
	}}
	svc := NewService(hr)

	result, err := svc.Lookup(context.Background(), "  nu1705abc123 ")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if hr.lastSearch != "NU1705ABC123" {
		t.Errorf("search sent = %q, want normalized", hr.lastSearch)
	}
	if result.Reference != "NU1705ABC123" {
		t.Errorf("result reference = %q", result.Reference)
	}
	if result.Progress.Status != StatusShortlisted {
		t.Errorf("progress status = %q", result.Progress.Status)
	}
}

func TestLookupNearMatchIsNotFound(t *testing.T) {
	hr := &fakeHR{applicants: []hrapi.Applicant{
		{ApplicantCode: "NU1705ABC124", Status: "SUBMITTED"},
	}}
	svc := NewService(hr)

	_, err := svc.Lookup(context.Background(), "NU1705ABC123")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("near-match must be not-found, got %v", err)
	}
}

func TestLookupSelectsExactMatchFromResultSet(t *testing.T) {
	hr := &fakeHR{applicants: []hrapi.Applicant{
		{ApplicantCode: "NU1705ABC999", Status: "REJECTED"},
		{ApplicantCode: "nu1705abc123", Status: "UNDER_REVIEW", FirstName: "Amina", LastName: "Okello"},
	}}
	svc := NewService(hr)

	result, err := svc.Lookup(context.Background(), "NU1705ABC123")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if result.Applicant.ReferenceCode != "NU1705ABC123" {
		t.Errorf("selected %q, want the exact case-insensitive match", result.Applicant.ReferenceCode)
	}
	if result.Applicant.FullName != "Amina Okello" {
		t.Errorf("fullName = %q", result.Applicant.FullName)
	}
}

func TestLookupEmptyReferenceSkipsQuery(t *testing.T) {
	hr := &fakeHR{}
	svc := NewService(hr)

	if _, err := svc.Lookup(context.Background(), "   "); !errors.Is(err, ErrEmptyReference) {
		t.Fatalf("expected ErrEmptyReference, got %v", err)
	}
	if hr.calls != 0 {
		t.Errorf("no query expected for empty input, got %d", hr.calls)
	}
}

func TestLookupEmptyResultSetIsNotFound(t *testing.T) {
	svc := NewService(&fakeHR{})
	if _, err := svc.Lookup(context.Background(), "NU1705ABC123"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupUpstreamErrorIsDistinctFromNotFound(t *testing.T) {
	hr := &fakeHR{err: &hrapi.RequestError{Err: errors.New("connection refused")}}
	svc := NewService(hr)

	_, err := svc.Lookup(context.Background(), "NU1705ABC123")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("transport failure must not classify as not-found, got %v", err)
	}
	if !hrapi.IsTransport(err) {
		t.Errorf("wrapped error should keep its transport classification")
	}
}

func TestProjectApplicantFallbacks(t *testing.T) {
	a := hrapi.Applicant{
		ApplicantCode: " nu1705abc123 ",
		FirstName:     "Amina",
		LastName:      "Okello",
		Status:        "shortlisted",
		JobPosting:    &hrapi.JobPosting{JobTitle: "Lecturer", JobCode: "NU-BUS-014"},
	}
	got := projectApplicant(a)
	if got.ReferenceCode != "NU1705ABC123" {
		t.Errorf("referenceCode = %q", got.ReferenceCode)
	}
	if got.FullName != "Amina Okello" {
		t.Errorf("fullName = %q", got.FullName)
	}
	if got.JobTitle != "Lecturer" || got.JobCode != "NU-BUS-014" {
		t.Errorf("job fields = %q / %q", got.JobTitle, got.JobCode)
	}
	if got.Status != "SHORTLISTED" {
		t.Errorf("status = %q", got.Status)
	}
}
