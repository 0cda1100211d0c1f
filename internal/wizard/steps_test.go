package wizard

import (
	"strings"
	"testing"
)

func fieldNames(errs []FieldError) map[string]bool {
	names := make(map[string]bool, len(errs))
	for _, e := range errs {
		names[e.Field] = true
	}
	return names
}

func TestValidatePersonal(t *testing.T) {
	valid := Draft{
		FirstName: "Amina",
		LastName:  "Okello",
		Email:     "amina@example.com",
		Phone:     "+256 700 000 000",
	}
	if errs := validatePersonal(valid); len(errs) != 0 {
		t.Fatalf("valid draft rejected: %v", errs)
	}

	tests := []struct {
		name   string
		mutate func(*Draft)
		field  string
	}{
		{"missing first name", func(d *Draft) { d.FirstName = "  " }, "firstName"},
		{"missing last name", func(d *Draft) { d.LastName = "" }, "lastName"},
		{"missing email", func(d *Draft) { d.Email = "" }, "email"},
		{"malformed email", func(d *Draft) { d.Email = "not-an-email" }, "email"},
		{"missing phone", func(d *Draft) { d.Phone = "" }, "phone"},
		{"letters in phone", func(d *Draft) { d.Phone = "call me" }, "phone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			errs := validatePersonal(d)
			if !fieldNames(errs)[tt.field] {
				t.Errorf("expected error on %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateBackgroundRequiresAllFields(t *testing.T) {
	errs := validateBackground(Draft{})
	names := fieldNames(errs)
	for _, field := range []string{"currentTitle", "currentEmployer", "experienceRange", "highestQualification"} {
		if !names[field] {
			t.Errorf("missing error for %q", field)
		}
	}

	valid := Draft{
		CurrentTitle:         "Lecturer",
		CurrentEmployer:      "Nkumba University",
		ExperienceRange:      "3-5",
		HighestQualification: "master",
	}
	if errs := validateBackground(valid); len(errs) != 0 {
		t.Errorf("valid draft rejected: %v", errs)
	}
}

func TestValidateMotivationLengths(t *testing.T) {
	long := func(n int) string { return strings.Repeat("x", n) }
	valid := Draft{
		WhyThisRole:      long(60),
		WhatMakesYouFit:  long(60),
		CareerGoals:      long(40),
		NoticePreference: "1month",
	}
	if errs := validateMotivation(valid); len(errs) != 0 {
		t.Fatalf("valid draft rejected: %v", errs)
	}

	tests := []struct {
		name    string
		mutate  func(*Draft)
		field   string
		message string
	}{
		{"why too short", func(d *Draft) { d.WhyThisRole = long(49) }, "whyThisRole", "Please provide at least 50 characters"},
		{"why too long", func(d *Draft) { d.WhyThisRole = long(501) }, "whyThisRole", ""},
		{"fit too short", func(d *Draft) { d.WhatMakesYouFit = long(10) }, "whatMakesYouFit", "Please provide at least 50 characters"},
		{"goals too short", func(d *Draft) { d.CareerGoals = long(29) }, "careerGoals", "Please provide at least 30 characters"},
		{"goals missing", func(d *Draft) { d.CareerGoals = "" }, "careerGoals", "Please share your career goals"},
		{"availability missing", func(d *Draft) { d.NoticePreference = " " }, "noticePreference", "Please select your availability"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			errs := validateMotivation(d)
			var found *FieldError
			for i := range errs {
				if errs[i].Field == tt.field {
					found = &errs[i]
				}
			}
			if found == nil {
				t.Fatalf("expected error on %q, got %v", tt.field, errs)
			}
			if tt.message != "" && found.Message != tt.message {
				t.Errorf("message = %q, want %q", found.Message, tt.message)
			}
		})
	}
}

func TestValidateDocumentsLimits(t *testing.T) {
	if errs := validateDocuments(Draft{}); len(errs) != 0 {
		t.Fatalf("documents step has no required fields, got %v", errs)
	}
	d := Draft{
		CoverLetter:        strings.Repeat("x", 2001),
		AdditionalComments: strings.Repeat("x", 501),
	}
	errs := validateDocuments(d)
	names := fieldNames(errs)
	if !names["coverLetter"] || !names["additionalComments"] {
		t.Errorf("expected length errors, got %v", errs)
	}
}

func TestValidateIdentity(t *testing.T) {
	if validateIdentity(Draft{FirstName: "A", LastName: "B"}) {
		t.Error("identity without email should fail")
	}
	if !validateIdentity(Draft{FirstName: " A ", LastName: "B", Email: "a@b.com"}) {
		t.Error("complete identity should pass")
	}
}
