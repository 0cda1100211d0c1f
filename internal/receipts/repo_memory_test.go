package receipts

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoNormalizesReferenceLookups(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	receipt := Receipt{
		ID:            "receipt-1",
		ReferenceCode: "JAP7K9QX2M4N",
		Email:         "amina@example.com",
		SubmittedAt:   time.Now().UTC(),
	}
	if err := repo.Create(ctx, receipt); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByReference(ctx, " jap7k9qx2m4n ")
	if err != nil {
		t.Fatalf("GetByReference: %v", err)
	}
	if got.ID != receipt.ID {
		t.Errorf("got %+v", got)
	}

	if _, err := repo.GetByReference(ctx, "JAP000000000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoListByEmailNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	for i, ref := range []string{"JAPAAAA1111BB", "JAPAAAA2222BB", "JAPAAAA3333BB"} {
		err := repo.Create(ctx, Receipt{
			ID:            ref,
			ReferenceCode: ref,
			Email:         "Amina@Example.com",
			SubmittedAt:   base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	receipts, err := repo.ListByEmail(ctx, "amina@example.com", 2)
	if err != nil {
		t.Fatalf("ListByEmail: %v", err)
	}
	if len(receipts) != 2 {
		t.Fatalf("len = %d, want 2", len(receipts))
	}
	if receipts[0].ReferenceCode != "JAPAAAA3333BB" || receipts[1].ReferenceCode != "JAPAAAA2222BB" {
		t.Errorf("order = %s, %s", receipts[0].ReferenceCode, receipts[1].ReferenceCode)
	}
}

func TestMemoryRepoHonoursCancelledContext(t *testing.T) {
	repo := NewMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Create(ctx, Receipt{ReferenceCode: "JAPAAAA1111BB"}); err == nil {
		t.Fatal("expected context error")
	}
	if _, err := repo.GetByReference(ctx, "JAPAAAA1111BB"); err == nil {
		t.Fatal("expected context error")
	}
}
