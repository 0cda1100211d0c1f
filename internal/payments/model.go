package payments

// Fee is one selectable item from the current fee catalogue.
type Fee struct {
	ID       string  `json:"id"`
	ItemName string  `json:"itemName"`
	Amount   float64 `json:"amount"`
}

// Selection is one fee item chosen for a payment reference.
type Selection struct {
	FeeID    string `json:"feeId"`
	Quantity int    `json:"quantity"`
}

// GenerateRequest carries the payer identity and chosen items.
type GenerateRequest struct {
	FullName  string      `json:"fullName"`
	StudentNo string      `json:"studentNo"`
	Email     string      `json:"email"`
	PhoneNo   string      `json:"phoneNo"`
	Items     []Selection `json:"items"`
}

// AllocationLine is one fee line on a slip or lookup result.
type AllocationLine struct {
	ItemName string  `json:"itemName"`
	Amount   float64 `json:"amount"`
}

// Slip is the payment reference returned after generation.
type Slip struct {
	PRT           string           `json:"prt"`
	FullName      string           `json:"fullName"`
	StudentNo     string           `json:"studentNo"`
	Email         string           `json:"email"`
	PhoneNo       string           `json:"phoneNo"`
	Amount        float64          `json:"amount"`
	AmountInWords string           `json:"amountInWords"`
	Status        string           `json:"status"`
	CreatedAt     string           `json:"createdAt"`
	ExpiresAt     string           `json:"expiresAt"`
	Allocations   []AllocationLine `json:"allocations"`
	Summary       string           `json:"summary"`
	PayableFrom   []string         `json:"payableFrom"`
}

// Details is a payment reference lookup result. The bank fields are only
// populated once the reference has been paid.
type Details struct {
	PRT           string           `json:"prt"`
	FullName      string           `json:"fullName"`
	StudentNo     string           `json:"studentNo"`
	Email         string           `json:"email"`
	PhoneNo       string           `json:"phoneNo"`
	Amount        float64          `json:"amount"`
	AmountInWords string           `json:"amountInWords"`
	Status        string           `json:"status"`
	Paid          bool             `json:"paid"`
	CreatedAt     string           `json:"createdAt"`
	ExpiresAt     string           `json:"expiresAt"`
	Allocations   []AllocationLine `json:"allocations"`
	Summary       string           `json:"summary"`
	GeneratedBy   string           `json:"generatedBy,omitempty"`
	PaymentDate   string           `json:"paymentDate,omitempty"`
	TransactionID string           `json:"transactionId,omitempty"`
	BankName      string           `json:"bankName,omitempty"`
	BankBranch    string           `json:"bankBranch,omitempty"`
}

// payableBanks is the fixed list shown on every slip.
var payableBanks = []string{"CENTENARY BANK", "DFCU BANK", "STANBIC BANK"}
