package hrapi

import "encoding/json"

// JobPosting mirrors the core fields of the HR API's JobPosting type.
type JobPosting struct {
	ID             string          `json:"id"`
	JobCode        string          `json:"jobCode"`
	JobTitle       string          `json:"jobTitle"`
	Department     string          `json:"department"`
	EmploymentType string          `json:"employmentType"`
	WorkLocation   string          `json:"workLocation"`
	Visibility     string          `json:"visibility"`
	Status         string          `json:"status"`
	Openings       int             `json:"openings"`
	OpeningsFilled int             `json:"openingsFilled"`
	OpeningDate    string          `json:"openingDate"`
	ClosingDate    string          `json:"closingDate"`
	PostedDate     string          `json:"postedDate"`
	DisplaySalary  bool            `json:"displaySalary"`
	MinSalary      *float64        `json:"minSalary"`
	MaxSalary      *float64        `json:"maxSalary"`
	Currency       string          `json:"currency"`
	PayPeriod      string          `json:"payPeriod"`
	SalaryLabel    string          `json:"salaryLabel"`
	JobSummary     string          `json:"jobSummary"`
	Notes          string          `json:"notes"`
	Metadata       json.RawMessage `json:"metadata"`
	JobDescription *JobDescription `json:"jobDescription,omitempty"`
}

// JobDescription is the full description block attached to a posting detail.
type JobDescription struct {
	ID                 string `json:"id"`
	JobCode            string `json:"jobCode"`
	JobTitle           string `json:"jobTitle"`
	PositionName       string `json:"positionName"`
	Category           string `json:"category"`
	JobFamily          string `json:"jobFamily"`
	Department         string `json:"department"`
	Division           string `json:"division"`
	EmploymentType     string `json:"employmentType"`
	Grade              string `json:"grade"`
	ReportsTo          string `json:"reportsTo"`
	WorkLocation       string `json:"workLocation"`
	Status             string `json:"status"`
	JobSummary         string `json:"jobSummary"`
	Responsibilities   string `json:"responsibilities"`
	Education          string `json:"education"`
	Experience         string `json:"experience"`
	TechnicalSkills    string `json:"technicalSkills"`
	SoftSkills         string `json:"softSkills"`
	Certifications     string `json:"certifications"`
	KPIs               string `json:"kpis"`
	Languages          string `json:"languages"`
	Benefits           string `json:"benefits"`
	AdditionalBenefits string `json:"additionalBenefits"`
	ApprovedPositions  int    `json:"approvedPositions"`
	FilledPositions    int    `json:"filledPositions"`
	Openings           int    `json:"openings"`
}

// JobPostingFilter narrows a postings listing.
type JobPostingFilter struct {
	Search         string `json:"search,omitempty"`
	Department     string `json:"department,omitempty"`
	WorkLocation   string `json:"workLocation,omitempty"`
	EmploymentType string `json:"employmentType,omitempty"`
	Status         string `json:"status,omitempty"`
}

// PostingMetrics summarizes the listing result set.
type PostingMetrics struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Closing int `json:"closing"`
	Closed  int `json:"closed"`
	Draft   int `json:"draft"`
}

// JobPostingsPage is one page of postings.
type JobPostingsPage struct {
	Data    []JobPosting   `json:"data"`
	Total   int            `json:"total"`
	Metrics PostingMetrics `json:"metrics"`
}

// ResumeUpload is the inline attachment carried in a submission.
type ResumeUpload struct {
	Kind     string `json:"kind"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Content  string `json:"content"`
}

// SubmitApplicationInput mirrors the submitJobApplication mutation input.
type SubmitApplicationInput struct {
	JobPostingID    string         `json:"jobPostingId"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone,omitempty"`
	Source          string         `json:"source"`
	Resume          ResumeUpload   `json:"resume"`
	CoverLetter     string         `json:"coverLetter,omitempty"`
	CurrentEmployer string         `json:"currentEmployer,omitempty"`
	CurrentTitle    string         `json:"currentTitle,omitempty"`
	ExperienceYears *float64       `json:"experienceYears,omitempty"`
	NoticePeriod    string         `json:"noticePeriod,omitempty"`
	Message         string         `json:"message,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// SubmitResult is the submitJobApplication response.
type SubmitResult struct {
	ApplicantCode string
	EmailQueued   bool
}

// Applicant is the projection returned by the reference search.
type Applicant struct {
	ID              string          `json:"id"`
	ApplicantCode   string          `json:"applicantCode"`
	JobPostingID    string          `json:"jobPostingId"`
	JobTitle        string          `json:"jobTitle"`
	JobCode         string          `json:"jobCode"`
	Status          string          `json:"status"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	FullName        string          `json:"fullName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Source          string          `json:"source"`
	CreatedAt       string          `json:"createdAt"`
	ResumeName      string          `json:"resumeName"`
	ResumeMimeType  string          `json:"resumeMimeType"`
	ResumeSize      int64           `json:"resumeSize"`
	CoverLetter     bool            `json:"coverLetterIncluded"`
	CurrentEmployer string          `json:"currentEmployer"`
	CurrentTitle    string          `json:"currentTitle"`
	ExperienceYears *float64        `json:"experienceYears"`
	NoticePeriod    string          `json:"noticePeriod"`
	Message         string          `json:"message"`
	Metadata        json.RawMessage `json:"metadata"`
	JobPosting      *JobPosting     `json:"jobPosting"`
}

// Fee is one entry in the current fee catalogue.
type Fee struct {
	ID      string  `json:"id"`
	Amount  float64 `json:"amount"`
	FeeItem struct {
		ItemName string `json:"item_name"`
	} `json:"fee_item"`
}

// PRTAllocation is one fee line allocated to a payment reference.
type PRTAllocation struct {
	ItemID   string `json:"item_id"`
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
	Amount   string `json:"amount"`
}

// GeneratePRTInput mirrors the generateGlobalPRT payload. Items carries
// the allocation lines JSON-encoded, which is how the API expects them.
type GeneratePRTInput struct {
	StudentID   string  `json:"student_id"`
	PhoneNo     string  `json:"phone_no"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Items       string  `json:"items"`
	TotalAmount float64 `json:"total_amount"`
}

// PRT is a generated payment reference.
type PRT struct {
	ID          string          `json:"id"`
	StudentNo   string          `json:"student_no"`
	FullName    string          `json:"full_name"`
	PhoneNo     string          `json:"phone_no"`
	Email       string          `json:"email"`
	Type        string          `json:"type"`
	PRT         string          `json:"prt"`
	Amount      FlexAmount      `json:"amount"`
	Status      string          `json:"status"`
	Allocations string          `json:"allocations"`
	PRTExpiry   string          `json:"prt_expiry"`
	CreatedAt   string          `json:"created_at"`
	GeneratedBy string          `json:"generated_by"`
	Invs        []PRTAllocation `json:"invs"`
}

// PRTDetails is the full record returned by a reference lookup, including
// post-payment bank fields for PAID references.
type PRTDetails struct {
	PRT         string          `json:"prt"`
	FullName    string          `json:"full_name"`
	StudentNo   string          `json:"student_no"`
	Email       string          `json:"email"`
	PhoneNo     string          `json:"phone_no"`
	Amount      FlexAmount      `json:"amount"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
	PRTExpiry   string          `json:"prt_expiry"`
	Allocations string          `json:"allocations"`
	Invs        []PRTAllocation `json:"invs"`
	GeneratedBy string          `json:"generated_by"`
	PaymentDate string          `json:"payment_date"`
	TnxID       string          `json:"tnx_id"`
	BankName    string          `json:"bank_name"`
	BankBranch  string          `json:"bank_branch"`
}
