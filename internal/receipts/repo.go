package receipts

import "context"

// Repo defines persistence operations for submission receipts.
type Repo interface {
	Create(ctx context.Context, receipt Receipt) error
	GetByReference(ctx context.Context, referenceCode string) (Receipt, error)
	ListByEmail(ctx context.Context, email string, limit int) ([]Receipt, error)
}
