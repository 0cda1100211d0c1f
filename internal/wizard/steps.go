package wizard

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

const (
	whyThisRoleMin     = 50
	whyThisRoleMax     = 500
	whatMakesYouFitMin = 50
	whatMakesYouFitMax = 500
	careerGoalsMin     = 30
	careerGoalsMax     = 400
	coverLetterMax     = 2000
	commentsMax        = 500
)

// validatePersonal checks the contact step. The employee ID is optional
// and only collected for postings open to internal applicants.
func validatePersonal(d Draft) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(d.FirstName) == "" {
		errs = append(errs, FieldError{"firstName", "Please enter your first name"})
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs = append(errs, FieldError{"lastName", "Please enter your last name"})
	}
	email := strings.TrimSpace(d.Email)
	if email == "" || !emailPattern.MatchString(email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email address"})
	}
	phone := strings.TrimSpace(d.Phone)
	switch {
	case phone == "":
		errs = append(errs, FieldError{"phone", "Please enter your phone number"})
	case !phonePattern.MatchString(phone):
		errs = append(errs, FieldError{"phone", "Please enter a valid phone number"})
	}
	return errs
}

func validateBackground(d Draft) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(d.CurrentTitle) == "" {
		errs = append(errs, FieldError{"currentTitle", "Please enter your current or most recent role"})
	}
	if strings.TrimSpace(d.CurrentEmployer) == "" {
		errs = append(errs, FieldError{"currentEmployer", "Please enter your employer"})
	}
	if strings.TrimSpace(d.ExperienceRange) == "" {
		errs = append(errs, FieldError{"experienceRange", "Please select your experience level"})
	}
	if strings.TrimSpace(d.HighestQualification) == "" {
		errs = append(errs, FieldError{"highestQualification", "Please select your qualification"})
	}
	return errs
}

func validateMotivation(d Draft) []FieldError {
	var errs []FieldError
	errs = appendLengthChecks(errs, "whyThisRole", d.WhyThisRole,
		whyThisRoleMin, whyThisRoleMax, "Please tell us why you're interested")
	errs = appendLengthChecks(errs, "whatMakesYouFit", d.WhatMakesYouFit,
		whatMakesYouFitMin, whatMakesYouFitMax, "Please describe what makes you a good fit")
	errs = appendLengthChecks(errs, "careerGoals", d.CareerGoals,
		careerGoalsMin, careerGoalsMax, "Please share your career goals")
	if strings.TrimSpace(d.NoticePreference) == "" {
		errs = append(errs, FieldError{"noticePreference", "Please select your availability"})
	}
	return errs
}

// validateDocuments covers the optional free-text fields on the documents
// step. Attachment presence and encoding state are checked separately by
// the session, not here.
func validateDocuments(d Draft) []FieldError {
	var errs []FieldError
	if utf8.RuneCountInString(d.CoverLetter) > coverLetterMax {
		errs = append(errs, FieldError{"coverLetter",
			fmt.Sprintf("Please keep your cover letter under %d characters", coverLetterMax)})
	}
	if utf8.RuneCountInString(d.AdditionalComments) > commentsMax {
		errs = append(errs, FieldError{"additionalComments",
			fmt.Sprintf("Please keep additional comments under %d characters", commentsMax)})
	}
	return errs
}

func appendLengthChecks(errs []FieldError, field, value string, min, max int, requiredMsg string) []FieldError {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		errs = append(errs, FieldError{field, requiredMsg})
	case utf8.RuneCountInString(trimmed) < min:
		errs = append(errs, FieldError{field, fmt.Sprintf("Please provide at least %d characters", min)})
	case utf8.RuneCountInString(trimmed) > max:
		errs = append(errs, FieldError{field, fmt.Sprintf("Please keep this under %d characters", max)})
	}
	return errs
}

// validateIdentity is the final pre-submission check on the identity
// fields, re-run regardless of earlier step validation.
func validateIdentity(d Draft) bool {
	return strings.TrimSpace(d.FirstName) != "" &&
		strings.TrimSpace(d.LastName) != "" &&
		strings.TrimSpace(d.Email) != ""
}
