package wizard

import (
	"reflect"
	"testing"
)

func fullDraft() Draft {
	return Draft{
		FirstName:            " Amina ",
		LastName:             "Okello",
		Email:                "amina@example.com",
		Phone:                "+256 700 000 000",
		EmployeeID:           "EMP-42",
		CurrentTitle:         "Lecturer",
		CurrentEmployer:      "Makerere University",
		ExperienceRange:      "5-10",
		HighestQualification: "master",
		KeySkills:            "Teaching, Research , ,Curriculum Design",
		WhyThisRole:          "I am deeply interested in this role because it matches my teaching background.",
		WhatMakesYouFit:      "Ten years of lecturing and curriculum development make me a strong candidate.",
		CareerGoals:          "Grow into an academic leadership position.",
		NoticePreference:     "1month",
		CoverLetter:          "Dear hiring committee...",
		HeardFrom:            "linkedin",
		AdditionalComments:   "Available for evening classes.",
	}
}

func TestBuildSubmissionMapsAndLabels(t *testing.T) {
	att := &Attachment{FileName: "cv.pdf", MimeType: "application/pdf", Size: 1024, Content: "QkFTRTY0"}
	input := buildSubmission("jp-1", fullDraft(), att)

	if input.FirstName != "Amina" {
		t.Errorf("firstName = %q, want trimmed", input.FirstName)
	}
	if input.Source != "LinkedIn" {
		t.Errorf("source = %q, want LinkedIn", input.Source)
	}
	if input.ExperienceYears == nil || *input.ExperienceYears != 7.5 {
		t.Errorf("experienceYears = %v, want 7.5", input.ExperienceYears)
	}
	if input.NoticePeriod != "1 Month" {
		t.Errorf("noticePeriod = %q, want 1 Month", input.NoticePeriod)
	}
	if input.Resume.Kind != "RESUME" || input.Resume.Content != "QkFTRTY0" {
		t.Errorf("resume = %+v", input.Resume)
	}

	meta := input.Metadata
	if meta["highestQualification"] != "Master's Degree" || meta["highestQualificationKey"] != "master" {
		t.Errorf("qualification metadata = %v / %v", meta["highestQualification"], meta["highestQualificationKey"])
	}
	if meta["heardFrom"] != "LinkedIn" || meta["heardFromKey"] != "linkedin" {
		t.Errorf("source metadata = %v / %v", meta["heardFrom"], meta["heardFromKey"])
	}
	wantSkills := []string{"Teaching", "Research", "Curriculum Design"}
	if !reflect.DeepEqual(meta["keySkills"], wantSkills) {
		t.Errorf("keySkills = %v, want %v", meta["keySkills"], wantSkills)
	}
	if meta["resumeFileName"] != "cv.pdf" || meta["resumeMimeType"] != "application/pdf" {
		t.Errorf("resume metadata = %v / %v", meta["resumeFileName"], meta["resumeMimeType"])
	}
	if meta["employeeId"] != "EMP-42" {
		t.Errorf("employeeId = %v", meta["employeeId"])
	}
	if meta["additionalComments"] != "Available for evening classes." {
		t.Errorf("additionalComments = %v", meta["additionalComments"])
	}
}

func TestBuildSubmissionOmitsBlankMetadata(t *testing.T) {
	draft := Draft{
		FirstName: "Amina",
		LastName:  "Okello",
		Email:     "amina@example.com",
	}
	att := &Attachment{FileName: "cv.pdf", MimeType: "application/pdf", Content: "QQ=="}
	input := buildSubmission("jp-1", draft, att)

	for _, key := range []string{"employeeId", "keySkills", "careerGoals", "heardFrom", "heardFromKey", "additionalComments", "experienceRange"} {
		if _, ok := input.Metadata[key]; ok {
			t.Errorf("metadata should omit blank %q", key)
		}
	}
	// The attachment always contributes its name and type.
	if input.Metadata["resumeFileName"] != "cv.pdf" {
		t.Errorf("resumeFileName = %v", input.Metadata["resumeFileName"])
	}
}

func TestBuildSubmissionSourceFallbacks(t *testing.T) {
	att := &Attachment{FileName: "cv.pdf", MimeType: "application/pdf", Content: "QQ=="}

	draft := Draft{FirstName: "A", LastName: "B", Email: "a@b.com"}
	if input := buildSubmission("jp-1", draft, att); input.Source != "Jobs Portal" {
		t.Errorf("default source = %q, want Jobs Portal", input.Source)
	}

	draft.HeardFrom = "campus-noticeboard"
	input := buildSubmission("jp-1", draft, att)
	if input.Source != "campus-noticeboard" {
		t.Errorf("unknown source key = %q, want passthrough", input.Source)
	}
	if input.Metadata["heardFrom"] != "campus-noticeboard" || input.Metadata["heardFromKey"] != "campus-noticeboard" {
		t.Errorf("unknown source metadata = %v", input.Metadata)
	}
}

func TestMapExperienceYears(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0-1", 0.5, true},
		{"1-3", 2, true},
		{"3-5", 4, true},
		{"5-10", 7.5, true},
		{"10+", 12, true},
		{"7", 7, true},
		{"", 0, false},
		{"lots", 0, false},
	}
	for _, tt := range tests {
		got := mapExperienceYears(tt.in)
		if tt.ok != (got != nil) {
			t.Errorf("mapExperienceYears(%q) presence = %v, want %v", tt.in, got != nil, tt.ok)
			continue
		}
		if got != nil && *got != tt.want {
			t.Errorf("mapExperienceYears(%q) = %v, want %v", tt.in, *got, tt.want)
		}
	}
}

func TestMapNoticePeriodPassthrough(t *testing.T) {
	if got := mapNoticePeriod("2weeks"); got != "2 Weeks" {
		t.Errorf("mapNoticePeriod(2weeks) = %q", got)
	}
	if got := mapNoticePeriod("custom"); got != "custom" {
		t.Errorf("unknown value should pass through, got %q", got)
	}
	if got := mapNoticePeriod("  "); got != "" {
		t.Errorf("blank should map to empty, got %q", got)
	}
}
