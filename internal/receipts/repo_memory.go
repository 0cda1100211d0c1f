package receipts

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo stores receipts in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu          sync.RWMutex
	byReference map[string]Receipt
	byEmail     map[string][]Receipt
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byReference: make(map[string]Receipt),
		byEmail:     make(map[string][]Receipt),
	}
}

// Create stores the receipt.
func (r *MemoryRepo) Create(ctx context.Context, receipt Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byReference[normalizeReference(receipt.ReferenceCode)] = receipt
	email := normalizeEmail(receipt.Email)
	r.byEmail[email] = append(r.byEmail[email], receipt)
	return nil
}

// GetByReference returns a receipt by its reference code.
func (r *MemoryRepo) GetByReference(ctx context.Context, referenceCode string) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	receipt, ok := r.byReference[normalizeReference(referenceCode)]
	if !ok {
		return Receipt{}, ErrNotFound
	}
	return receipt, nil
}

// ListByEmail returns receipts for an email, newest first.
func (r *MemoryRepo) ListByEmail(ctx context.Context, email string, limit int) ([]Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.byEmail[normalizeEmail(email)]
	out := make([]Receipt, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func normalizeReference(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
