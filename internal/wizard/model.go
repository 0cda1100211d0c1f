package wizard

import (
	"sync"
	"time"
)

// Wizard steps in order. Advancement is strictly sequential.
const (
	StepPersonal = iota
	StepBackground
	StepMotivation
	StepDocuments
	StepReview
)

var stepTitles = [...]string{"Personal", "Background", "About You", "Documents", "Review"}

// StepTitle returns the display title for a step index.
func StepTitle(step int) string {
	if step < 0 || step >= len(stepTitles) {
		return ""
	}
	return stepTitles[step]
}

// Draft accumulates the applicant's answers across steps. Fields belonging
// to steps not yet validated are empty. It doubles as the advance request
// body; each step only reads and merges its own fields.
type Draft struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	EmployeeID string `json:"employeeId"`

	CurrentTitle         string `json:"currentTitle"`
	CurrentEmployer      string `json:"currentEmployer"`
	ExperienceRange      string `json:"experienceRange"`
	HighestQualification string `json:"highestQualification"`
	KeySkills            string `json:"keySkills"`

	WhyThisRole      string `json:"whyThisRole"`
	WhatMakesYouFit  string `json:"whatMakesYouFit"`
	CareerGoals      string `json:"careerGoals"`
	NoticePreference string `json:"noticePreference"`

	CoverLetter        string `json:"coverLetter"`
	HeardFrom          string `json:"heardFrom"`
	AdditionalComments string `json:"additionalComments"`
}

// Attachment is an encoded resume ready for transport.
type Attachment struct {
	FileName string
	MimeType string
	Size     int64
	Content  string
	Pages    int
}

// Session is one wizard instance for one job posting. All mutation goes
// through Service methods, which hold mu.
type Session struct {
	ID           string
	JobPostingID string
	JobTitle     string
	JobCode      string
	Visibility   string

	Step       int
	Draft      Draft
	Attachment *Attachment

	Encoding    bool
	encodeToken uint64
	EncodeError string

	Submitting bool

	CreatedAt time.Time
	UpdatedAt time.Time

	mu sync.Mutex
}

// internalApplicant reports whether the posting accepts internal
// applicants, which is the only case where an employee ID is collected.
func (s *Session) internalApplicant() bool {
	return s.Visibility == "INTERNAL" || s.Visibility == "BOTH"
}

// View is the read projection of a session returned to clients.
type View struct {
	ID                string      `json:"id"`
	JobPostingID      string      `json:"jobPostingId"`
	JobTitle          string      `json:"jobTitle"`
	JobCode           string      `json:"jobCode"`
	Step              int         `json:"step"`
	StepTitle         string      `json:"stepTitle"`
	Steps             []string    `json:"steps"`
	Draft             Draft       `json:"draft"`
	Resume            *ResumeView `json:"resume"`
	Encoding          bool        `json:"encoding"`
	InternalApplicant bool        `json:"internalApplicant"`
}

// ResumeView summarizes the attachment without its encoded content.
type ResumeView struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	Pages    int    `json:"pages,omitempty"`
}

func (s *Session) view() View {
	v := View{
		ID:                s.ID,
		JobPostingID:      s.JobPostingID,
		JobTitle:          s.JobTitle,
		JobCode:           s.JobCode,
		Step:              s.Step,
		StepTitle:         StepTitle(s.Step),
		Steps:             stepTitles[:],
		Draft:             s.Draft,
		Encoding:          s.Encoding,
		InternalApplicant: s.internalApplicant(),
	}
	if s.Attachment != nil {
		v.Resume = &ResumeView{
			FileName: s.Attachment.FileName,
			MimeType: s.Attachment.MimeType,
			Size:     s.Attachment.Size,
			Pages:    s.Attachment.Pages,
		}
	}
	return v
}

// Outcome is the result of a successful submission.
type Outcome struct {
	Reference    string `json:"reference"`
	ServerIssued bool   `json:"serverIssued"`
	EmailQueued  bool   `json:"emailQueued"`
}
