package receipts

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for submission receipts.
type Service struct {
	Repo Repo

	now func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// Record stores a receipt for a successful submission, assigning an ID
// and timestamp when absent.
func (s *Service) Record(ctx context.Context, receipt Receipt) (Receipt, error) {
	if receipt.ID == "" {
		receipt.ID = uuid.NewString()
	}
	if receipt.SubmittedAt.IsZero() {
		receipt.SubmittedAt = s.now().UTC()
	}
	receipt.ReferenceCode = normalizeReference(receipt.ReferenceCode)
	receipt.Email = normalizeEmail(receipt.Email)
	if err := s.Repo.Create(ctx, receipt); err != nil {
		return Receipt{}, err
	}
	return receipt, nil
}

// GetByReference looks up one receipt.
func (s *Service) GetByReference(ctx context.Context, referenceCode string) (Receipt, error) {
	if strings.TrimSpace(referenceCode) == "" {
		return Receipt{}, ErrNotFound
	}
	return s.Repo.GetByReference(ctx, referenceCode)
}

// ListByEmail returns recent receipts for one applicant email.
func (s *Service) ListByEmail(ctx context.Context, email string, limit int) ([]Receipt, error) {
	if strings.TrimSpace(email) == "" {
		return nil, nil
	}
	return s.Repo.ListByEmail(ctx, email, limit)
}
