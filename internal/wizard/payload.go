package wizard

import (
	"strconv"
	"strings"

	"careers-portal/internal/hrapi"
)

const defaultSource = "Jobs Portal"

var experienceYears = map[string]float64{
	"0-1":  0.5,
	"1-3":  2,
	"3-5":  4,
	"5-10": 7.5,
	"10+":  12,
}

var noticePeriodLabels = map[string]string{
	"immediately": "Immediate",
	"2weeks":      "2 Weeks",
	"1month":      "1 Month",
	"2months":     "2 Months",
	"negotiable":  "Negotiable",
}

var qualificationLabels = map[string]string{
	"high-school": "High School Diploma",
	"certificate": "Certificate",
	"diploma":     "Diploma",
	"bachelor":    "Bachelor's Degree",
	"master":      "Master's Degree",
	"phd":         "PhD/Doctorate",
	"other":       "Other",
}

var sourceLabels = map[string]string{
	"university-website": "University Website",
	"linkedin":           "LinkedIn",
	"facebook":           "Facebook",
	"twitter":            "Twitter",
	"job-board":          "Job Board",
	"referral":           "Employee Referral",
	"newspaper":          "Newspaper",
	"other":              "Other",
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// mapExperienceYears converts an experience bucket to its representative
// numeric value. Unknown buckets fall back to direct numeric parsing.
func mapExperienceYears(value string) *float64 {
	value = trimmed(value)
	if value == "" {
		return nil
	}
	if years, ok := experienceYears[value]; ok {
		return &years
	}
	if years, err := strconv.ParseFloat(value, 64); err == nil {
		return &years
	}
	return nil
}

func mapNoticePeriod(value string) string {
	value = trimmed(value)
	if value == "" {
		return ""
	}
	if label, ok := noticePeriodLabels[value]; ok {
		return label
	}
	return value
}

func splitSkills(raw string) []string {
	if trimmed(raw) == "" {
		return nil
	}
	var skills []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// buildSubmission assembles the server-ready payload from a completed
// draft and its attachment. Blank metadata entries are omitted entirely.
func buildSubmission(jobPostingID string, d Draft, att *Attachment) hrapi.SubmitApplicationInput {
	sourceKey := trimmed(d.HeardFrom)
	sourceLabel := ""
	if sourceKey != "" {
		sourceLabel = sourceLabels[sourceKey]
		if sourceLabel == "" {
			sourceLabel = sourceKey
		}
	}

	qualificationKey := trimmed(d.HighestQualification)
	qualificationLabel := ""
	if qualificationKey != "" {
		qualificationLabel = qualificationLabels[qualificationKey]
		if qualificationLabel == "" {
			qualificationLabel = qualificationKey
		}
	}

	metadata := map[string]any{}
	putMeta := func(key, value string) {
		if v := trimmed(value); v != "" {
			metadata[key] = v
		}
	}
	putMeta("employeeId", d.EmployeeID)
	putMeta("highestQualification", qualificationLabel)
	putMeta("highestQualificationKey", qualificationKey)
	if skills := splitSkills(d.KeySkills); len(skills) > 0 {
		metadata["keySkills"] = skills
	}
	putMeta("careerGoals", d.CareerGoals)
	putMeta("whatMakesYouFit", d.WhatMakesYouFit)
	putMeta("whyThisRole", d.WhyThisRole)
	putMeta("experienceRange", d.ExperienceRange)
	putMeta("noticePreference", d.NoticePreference)
	putMeta("heardFrom", sourceLabel)
	putMeta("heardFromKey", sourceKey)
	putMeta("resumeFileName", att.FileName)
	putMeta("resumeMimeType", att.MimeType)
	putMeta("additionalComments", d.AdditionalComments)
	if len(metadata) == 0 {
		metadata = nil
	}

	source := sourceLabel
	if source == "" {
		source = sourceKey
	}
	if source == "" {
		source = defaultSource
	}

	return hrapi.SubmitApplicationInput{
		JobPostingID: jobPostingID,
		FirstName:    trimmed(d.FirstName),
		LastName:     trimmed(d.LastName),
		Email:        trimmed(d.Email),
		Phone:        trimmed(d.Phone),
		Source:       source,
		Resume: hrapi.ResumeUpload{
			Kind:     "RESUME",
			FileName: att.FileName,
			MimeType: att.MimeType,
			Content:  att.Content,
		},
		CoverLetter:     trimmed(d.CoverLetter),
		CurrentEmployer: trimmed(d.CurrentEmployer),
		CurrentTitle:    trimmed(d.CurrentTitle),
		ExperienceYears: mapExperienceYears(d.ExperienceRange),
		NoticePeriod:    mapNoticePeriod(d.NoticePreference),
		Message:         trimmed(d.AdditionalComments),
		Metadata:        metadata,
	}
}
