package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"careers-portal/internal/hrapi"
)

var (
	ErrNoItemsSelected = errors.New("no fee items selected")
	ErrUnknownFeeItem  = errors.New("unknown fee item")
	ErrEmptyReference  = errors.New("payment reference is empty")
	ErrNotFound        = errors.New("payment reference not found")
	ErrInvalidPayer    = errors.New("payer details incomplete")
)

// HRClient is the slice of the HR API the payments subsystem depends on.
type HRClient interface {
	CurrentFees(ctx context.Context) ([]hrapi.Fee, error)
	GenerateGlobalPRT(ctx context.Context, input hrapi.GeneratePRTInput) (hrapi.PRT, error)
	PRTDetails(ctx context.Context, prt string) (*hrapi.PRTDetails, error)
}

// Service drives fee listing, payment reference generation and lookup.
type Service struct {
	hr HRClient
}

// NewService constructs a Service.
func NewService(hr HRClient) *Service {
	return &Service{hr: hr}
}

// ListFees returns the active fee catalogue.
func (s *Service) ListFees(ctx context.Context) ([]Fee, error) {
	fees, err := s.hr.CurrentFees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fees: %w", err)
	}
	out := make([]Fee, 0, len(fees))
	for _, fee := range fees {
		name := fee.FeeItem.ItemName
		if name == "" {
			name = "Unknown Item"
		}
		out = append(out, Fee{ID: fee.ID, ItemName: name, Amount: fee.Amount})
	}
	return out, nil
}

// Generate validates the selection against the current catalogue, totals
// it and requests a payment reference from the HR API.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (Slip, error) {
	fullName := strings.TrimSpace(req.FullName)
	phone := strings.TrimSpace(req.PhoneNo)
	if fullName == "" || phone == "" {
		return Slip{}, ErrInvalidPayer
	}
	if len(req.Items) == 0 {
		return Slip{}, ErrNoItemsSelected
	}

	fees, err := s.ListFees(ctx)
	if err != nil {
		return Slip{}, err
	}
	byID := make(map[string]Fee, len(fees))
	for _, fee := range fees {
		byID[fee.ID] = fee
	}

	var total float64
	allocations := make([]hrapi.PRTAllocation, 0, len(req.Items))
	for _, item := range req.Items {
		fee, ok := byID[item.FeeID]
		if !ok {
			return Slip{}, fmt.Errorf("%w: %s", ErrUnknownFeeItem, item.FeeID)
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		amount := fee.Amount * float64(quantity)
		total += amount
		allocations = append(allocations, hrapi.PRTAllocation{
			ItemID:   fee.ID,
			ItemCode: fee.ID,
			ItemName: fee.ItemName,
			Amount:   strconv.FormatFloat(amount, 'f', -1, 64),
		})
	}
	if total == 0 {
		return Slip{}, ErrNoItemsSelected
	}

	encoded, err := json.Marshal(allocations)
	if err != nil {
		return Slip{}, err
	}

	prt, err := s.hr.GenerateGlobalPRT(ctx, hrapi.GeneratePRTInput{
		StudentID:   strings.TrimSpace(req.StudentNo),
		PhoneNo:     phone,
		FullName:    fullName,
		Email:       strings.TrimSpace(req.Email),
		Items:       string(encoded),
		TotalAmount: total,
	})
	if err != nil {
		return Slip{}, fmt.Errorf("generate payment reference: %w", err)
	}

	amount := prt.Amount.Float64()
	if amount == 0 {
		amount = total
	}
	return Slip{
		PRT:           prt.PRT,
		FullName:      prt.FullName,
		StudentNo:     prt.StudentNo,
		Email:         prt.Email,
		PhoneNo:       prt.PhoneNo,
		Amount:        amount,
		AmountInWords: numberToWords(int64(amount)) + " Only",
		Status:        strings.ToUpper(prt.Status),
		CreatedAt:     prt.CreatedAt,
		ExpiresAt:     prt.PRTExpiry,
		Allocations:   allocationLines(prt.Invs, prt.Allocations),
		Summary:       allocationSummary(prt.Invs, prt.Allocations),
		PayableFrom:   payableBanks,
	}, nil
}

// Lookup fetches a payment reference and renders its details.
func (s *Service) Lookup(ctx context.Context, reference string) (Details, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return Details{}, ErrEmptyReference
	}

	prt, err := s.hr.PRTDetails(ctx, reference)
	if err != nil {
		return Details{}, fmt.Errorf("payment lookup: %w", err)
	}
	if prt == nil {
		return Details{}, ErrNotFound
	}

	status := strings.ToUpper(strings.TrimSpace(prt.Status))
	amount := prt.Amount.Float64()
	return Details{
		PRT:           prt.PRT,
		FullName:      prt.FullName,
		StudentNo:     prt.StudentNo,
		Email:         prt.Email,
		PhoneNo:       prt.PhoneNo,
		Amount:        amount,
		AmountInWords: numberToWords(int64(amount)) + " Only",
		Status:        status,
		Paid:          status == "PAID",
		CreatedAt:     prt.CreatedAt,
		ExpiresAt:     prt.PRTExpiry,
		Allocations:   allocationLines(prt.Invs, prt.Allocations),
		Summary:       allocationSummary(prt.Invs, prt.Allocations),
		GeneratedBy:   prt.GeneratedBy,
		PaymentDate:   prt.PaymentDate,
		TransactionID: prt.TnxID,
		BankName:      prt.BankName,
		BankBranch:    prt.BankBranch,
	}, nil
}

func allocationLines(invs []hrapi.PRTAllocation, _ string) []AllocationLine {
	lines := make([]AllocationLine, 0, len(invs))
	for _, inv := range invs {
		amount, _ := strconv.ParseFloat(strings.TrimSpace(inv.Amount), 64)
		lines = append(lines, AllocationLine{ItemName: inv.ItemName, Amount: amount})
	}
	return lines
}

// allocationSummary renders the slip's one-line fee breakdown. When the
// API returns no structured lines it falls back to the raw allocations
// text.
func allocationSummary(invs []hrapi.PRTAllocation, raw string) string {
	if len(invs) == 0 {
		if raw != "" {
			return raw
		}
		return "No allocations available"
	}
	parts := make([]string, 0, len(invs))
	for _, inv := range invs {
		amount, _ := strconv.ParseFloat(strings.TrimSpace(inv.Amount), 64)
		parts = append(parts, fmt.Sprintf("%s: %s", inv.ItemName, formatUGX(amount)))
	}
	return strings.Join(parts, " | ")
}
