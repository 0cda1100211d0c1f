package wizard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"careers-portal/internal/hrapi"
	"careers-portal/internal/receipts"
	"careers-portal/internal/shared/telemetry"
)

// HRClient is the slice of the HR API the wizard depends on.
type HRClient interface {
	JobPosting(ctx context.Context, id string) (*hrapi.JobPosting, error)
	SubmitApplication(ctx context.Context, input hrapi.SubmitApplicationInput) (hrapi.SubmitResult, error)
}

// Service drives wizard sessions: step transitions, resume handling and
// the single submission attempt per flow.
type Service struct {
	hr       HRClient
	sessions *Store
	receipts *receipts.Service

	spawn        func(func())
	newReference func() string
	now          func() time.Time
}

// NewService constructs a Service. The receipts service may be nil;
// receipt recording is best-effort bookkeeping.
func NewService(hr HRClient, sessions *Store, rcpts *receipts.Service) *Service {
	return &Service{
		hr:           hr,
		sessions:     sessions,
		receipts:     rcpts,
		spawn:        func(fn func()) { go fn() },
		newReference: fallbackReference,
		now:          time.Now,
	}
}

// Start creates a session for one job posting, capturing the posting
// context the wizard needs (title, code, visibility).
func (s *Service) Start(ctx context.Context, jobPostingID string) (View, error) {
	posting, err := s.hr.JobPosting(ctx, jobPostingID)
	if err != nil {
		return View{}, fmt.Errorf("load job posting: %w", err)
	}
	if posting == nil {
		return View{}, ErrJobNotFound
	}

	now := s.now()
	sess := &Session{
		ID:           uuid.NewString(),
		JobPostingID: posting.ID,
		JobTitle:     posting.JobTitle,
		JobCode:      posting.JobCode,
		Visibility:   posting.Visibility,
		Step:         StepPersonal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.sessions.put(sess)
	return sess.view(), nil
}

// Get returns the current state of a session.
func (s *Service) Get(id string) (View, error) {
	sess, err := s.sessions.get(id)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// Advance validates the current step's fields, merges them into the draft
// and moves forward. On validation failure the step does not change. The
// documents step additionally requires a ready attachment.
func (s *Service) Advance(id string, fields Draft) (View, error) {
	sess, err := s.sessions.get(id)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch sess.Step {
	case StepPersonal:
		if !sess.internalApplicant() {
			fields.EmployeeID = ""
		}
		if errs := validatePersonal(fields); len(errs) > 0 {
			return sess.view(), &ValidationError{Fields: errs}
		}
		sess.Draft.FirstName = fields.FirstName
		sess.Draft.LastName = fields.LastName
		sess.Draft.Email = fields.Email
		sess.Draft.Phone = fields.Phone
		sess.Draft.EmployeeID = fields.EmployeeID

	case StepBackground:
		if errs := validateBackground(fields); len(errs) > 0 {
			return sess.view(), &ValidationError{Fields: errs}
		}
		sess.Draft.CurrentTitle = fields.CurrentTitle
		sess.Draft.CurrentEmployer = fields.CurrentEmployer
		sess.Draft.ExperienceRange = fields.ExperienceRange
		sess.Draft.HighestQualification = fields.HighestQualification
		sess.Draft.KeySkills = fields.KeySkills

	case StepMotivation:
		if errs := validateMotivation(fields); len(errs) > 0 {
			return sess.view(), &ValidationError{Fields: errs}
		}
		sess.Draft.WhyThisRole = fields.WhyThisRole
		sess.Draft.WhatMakesYouFit = fields.WhatMakesYouFit
		sess.Draft.CareerGoals = fields.CareerGoals
		sess.Draft.NoticePreference = fields.NoticePreference

	case StepDocuments:
		if sess.Encoding {
			return sess.view(), ErrEncodingInProgress
		}
		if sess.Attachment == nil {
			return sess.view(), ErrResumeRequired
		}
		if errs := validateDocuments(fields); len(errs) > 0 {
			return sess.view(), &ValidationError{Fields: errs}
		}
		sess.Draft.CoverLetter = fields.CoverLetter
		sess.Draft.HeardFrom = fields.HeardFrom
		sess.Draft.AdditionalComments = fields.AdditionalComments
		if sess.internalApplicant() && strings.TrimSpace(fields.EmployeeID) != "" {
			sess.Draft.EmployeeID = fields.EmployeeID
		}

	case StepReview:
		return sess.view(), ErrAlreadyAtReview
	}

	sess.Step++
	return sess.view(), nil
}

// Retreat moves one step back without validation or data loss. From the
// first step it cancels the session instead.
func (s *Service) Retreat(id string) (View, bool, error) {
	sess, err := s.sessions.get(id)
	if err != nil {
		return View{}, false, err
	}

	sess.mu.Lock()
	if sess.Step == StepPersonal {
		sess.mu.Unlock()
		s.sessions.delete(id)
		return View{}, true, nil
	}
	sess.Step--
	view := sess.view()
	sess.mu.Unlock()
	return view, false, nil
}

// Submit issues exactly one submission attempt from the review step. On
// success the session is discarded and a tracking reference returned; on
// failure the session stays intact for the applicant to retry explicitly.
func (s *Service) Submit(ctx context.Context, id string) (Outcome, error) {
	sess, err := s.sessions.get(id)
	if err != nil {
		return Outcome{}, err
	}

	sess.mu.Lock()
	switch {
	case sess.Step != StepReview:
		sess.mu.Unlock()
		return Outcome{}, ErrNotAtReview
	case sess.Encoding:
		sess.mu.Unlock()
		return Outcome{}, ErrEncodingInProgress
	case sess.Attachment == nil:
		sess.mu.Unlock()
		return Outcome{}, ErrResumeRequired
	case sess.Submitting:
		sess.mu.Unlock()
		return Outcome{}, ErrSubmitInFlight
	}
	if !validateIdentity(sess.Draft) {
		sess.mu.Unlock()
		return Outcome{}, &ValidationError{Fields: []FieldError{
			{Field: "identity", Message: "First name, last name, and a valid email are required."},
		}}
	}
	sess.Submitting = true
	input := buildSubmission(sess.JobPostingID, sess.Draft, sess.Attachment)
	jobTitle := sess.JobTitle
	sess.mu.Unlock()

	result, err := s.hr.SubmitApplication(ctx, input)
	if err != nil {
		sess.mu.Lock()
		sess.Submitting = false
		sess.mu.Unlock()
		return Outcome{}, &SubmissionError{Message: classifyOutcome(err), Err: err}
	}

	reference := result.ApplicantCode
	serverIssued := reference != ""
	if !serverIssued {
		reference = s.newReference()
	}

	if s.receipts != nil {
		_, recErr := s.receipts.Record(ctx, receipts.Receipt{
			ReferenceCode: reference,
			JobPostingID:  input.JobPostingID,
			JobTitle:      jobTitle,
			ApplicantName: input.FirstName + " " + input.LastName,
			Email:         input.Email,
			ServerIssued:  serverIssued,
			EmailQueued:   result.EmailQueued,
		})
		if recErr != nil {
			telemetry.Warn("wizard.receipt.record_failed", map[string]any{
				"reference": reference,
				"error":     recErr.Error(),
			})
		}
	}

	s.sessions.delete(id)
	telemetry.Info("wizard.submitted", map[string]any{
		"jobPostingId": input.JobPostingID,
		"reference":    reference,
		"serverIssued": serverIssued,
	})
	return Outcome{
		Reference:    reference,
		ServerIssued: serverIssued,
		EmailQueued:  result.EmailQueued,
	}, nil
}
