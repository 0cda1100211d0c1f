package jobs

import (
	"context"
	"errors"
	"testing"

	"careers-portal/internal/hrapi"
)

type fakeHR struct {
	page       hrapi.JobPostingsPage
	posting    *hrapi.JobPosting
	err        error
	lastLimit  int
	lastOffset int
	lastFilter *hrapi.JobPostingFilter
}

func (f *fakeHR) JobPostings(ctx context.Context, limit, offset int, filter *hrapi.JobPostingFilter) (hrapi.JobPostingsPage, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	f.lastFilter = filter
	return f.page, f.err
}

func (f *fakeHR) JobPosting(ctx context.Context, id string) (*hrapi.JobPosting, error) {
	return f.posting, f.err
}

func TestListClampsPagination(t *testing.T) {
	hr := &fakeHR{}
	svc := NewService(hr)

	if _, err := svc.List(context.Background(), 0, -5, Filter{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if hr.lastLimit != defaultLimit || hr.lastOffset != 0 {
		t.Errorf("limit/offset = %d/%d", hr.lastLimit, hr.lastOffset)
	}

	if _, err := svc.List(context.Background(), 500, 10, Filter{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if hr.lastLimit != maxLimit {
		t.Errorf("limit = %d, want clamped to %d", hr.lastLimit, maxLimit)
	}
}

func TestListOmitsEmptyFilter(t *testing.T) {
	hr := &fakeHR{}
	svc := NewService(hr)

	if _, err := svc.List(context.Background(), 10, 0, Filter{Search: "  "}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if hr.lastFilter != nil {
		t.Errorf("blank filter should not be sent upstream, got %+v", hr.lastFilter)
	}

	if _, err := svc.List(context.Background(), 10, 0, Filter{Department: " Education "}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if hr.lastFilter == nil || hr.lastFilter.Department != "Education" {
		t.Errorf("filter = %+v", hr.lastFilter)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := NewService(&fakeHR{})
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetPassesThroughUpstreamError(t *testing.T) {
	upstream := &hrapi.RequestError{Err: errors.New("boom")}
	svc := NewService(&fakeHR{err: upstream})
	if _, err := svc.Get(context.Background(), "jp-1"); !hrapi.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
