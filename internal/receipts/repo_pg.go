package receipts

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new receipt.
func (r *PGRepo) Create(ctx context.Context, receipt Receipt) error {
	const query = `
INSERT INTO submission_receipts (
	id, reference_code, job_posting_id, job_title, applicant_name, email,
	server_issued, email_queued, submitted_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		receipt.ID,
		normalizeReference(receipt.ReferenceCode),
		receipt.JobPostingID,
		receipt.JobTitle,
		receipt.ApplicantName,
		normalizeEmail(receipt.Email),
		receipt.ServerIssued,
		receipt.EmailQueued,
		receipt.SubmittedAt,
	)
	return err
}

// GetByReference returns a receipt by its reference code.
func (r *PGRepo) GetByReference(ctx context.Context, referenceCode string) (Receipt, error) {
	const query = `
SELECT id, reference_code, job_posting_id, job_title, applicant_name, email,
	server_issued, email_queued, submitted_at
FROM submission_receipts
WHERE reference_code = $1`
	row := r.DB.QueryRowContext(ctx, query, normalizeReference(referenceCode))
	receipt, err := scanReceipt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Receipt{}, ErrNotFound
	}
	return receipt, err
}

// ListByEmail returns receipts for an email, newest first.
func (r *PGRepo) ListByEmail(ctx context.Context, email string, limit int) ([]Receipt, error) {
	const query = `
SELECT id, reference_code, job_posting_id, job_title, applicant_name, email,
	server_issued, email_queued, submitted_at
FROM submission_receipts
WHERE email = $1
ORDER BY submitted_at DESC
LIMIT $2`
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx, query, normalizeEmail(email), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row rowScanner) (Receipt, error) {
	var receipt Receipt
	err := row.Scan(
		&receipt.ID,
		&receipt.ReferenceCode,
		&receipt.JobPostingID,
		&receipt.JobTitle,
		&receipt.ApplicantName,
		&receipt.Email,
		&receipt.ServerIssued,
		&receipt.EmailQueued,
		&receipt.SubmittedAt,
	)
	if err != nil {
		return Receipt{}, err
	}
	receipt.ReferenceCode = strings.ToUpper(receipt.ReferenceCode)
	return receipt, nil
}
