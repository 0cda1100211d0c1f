package tracker

// Application status vocabulary as reported by the HR API.
const (
	StatusSubmitted   = "SUBMITTED"
	StatusUnderReview = "UNDER_REVIEW"
	StatusShortlisted = "SHORTLISTED"
	StatusInterview   = "INTERVIEW"
	StatusOffer       = "OFFER"
	StatusHired       = "HIRED"
	StatusRejected    = "REJECTED"
	StatusWithdrawn   = "WITHDRAWN"
)

// Milestone states within a progress view.
const (
	StateComplete = "complete"
	StateCurrent  = "current"
	StatePending  = "pending"
	StateTerminal = "terminal"
)

// Milestone is one entry in the rendered progress path.
type Milestone struct {
	Status  string `json:"status"`
	Title   string `json:"title"`
	Caption string `json:"caption"`
	State   string `json:"state"`
}

// Banner is the alert shown alongside the progress view, fixed per status.
type Banner struct {
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Progress is the full status-driven rendering for one applicant.
type Progress struct {
	Status     string      `json:"status"`
	Milestones []Milestone `json:"milestones"`
	Banner     *Banner     `json:"banner,omitempty"`
}

// Applicant is the tracker's read-only projection of a lookup hit.
type Applicant struct {
	ReferenceCode string `json:"referenceCode"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	JobTitle      string `json:"jobTitle"`
	JobCode       string `json:"jobCode"`
	Status        string `json:"status"`
	SubmittedAt   string `json:"submittedAt"`
}

// Result is one successful lookup.
type Result struct {
	Reference string    `json:"reference"`
	Applicant Applicant `json:"applicant"`
	Progress  Progress  `json:"progress"`
}
