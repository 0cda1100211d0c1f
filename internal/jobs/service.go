package jobs

import (
	"context"
	"errors"
	"strings"

	"careers-portal/internal/hrapi"
)

var ErrNotFound = errors.New("job posting not found")

const (
	defaultLimit = 20
	maxLimit     = 100
)

// HRClient is the slice of the HR API the job browser depends on.
type HRClient interface {
	JobPostings(ctx context.Context, limit, offset int, filter *hrapi.JobPostingFilter) (hrapi.JobPostingsPage, error)
	JobPosting(ctx context.Context, id string) (*hrapi.JobPosting, error)
}

// Service proxies job listings and details from the HR API.
type Service struct {
	hr HRClient
}

// NewService constructs a Service.
func NewService(hr HRClient) *Service {
	return &Service{hr: hr}
}

// Filter narrows a listing. Blank fields are not sent upstream.
type Filter struct {
	Search         string
	Department     string
	WorkLocation   string
	EmploymentType string
	Status         string
}

func (f Filter) upstream() *hrapi.JobPostingFilter {
	out := hrapi.JobPostingFilter{
		Search:         strings.TrimSpace(f.Search),
		Department:     strings.TrimSpace(f.Department),
		WorkLocation:   strings.TrimSpace(f.WorkLocation),
		EmploymentType: strings.TrimSpace(f.EmploymentType),
		Status:         strings.TrimSpace(f.Status),
	}
	if out == (hrapi.JobPostingFilter{}) {
		return nil
	}
	return &out
}

// List returns one page of postings.
func (s *Service) List(ctx context.Context, limit, offset int, filter Filter) (hrapi.JobPostingsPage, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.hr.JobPostings(ctx, limit, offset, filter.upstream())
}

// Get returns one posting with its full description block.
func (s *Service) Get(ctx context.Context, id string) (*hrapi.JobPosting, error) {
	posting, err := s.hr.JobPosting(ctx, id)
	if err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, ErrNotFound
	}
	return posting, nil
}
