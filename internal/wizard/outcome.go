package wizard

import (
	"net/http"

	"careers-portal/internal/hrapi"
)

const (
	oversizedResumeMessage = "We couldn't upload your resume because the server reported it was too large. Please confirm the file is under 5 MB, then try again. If it already is, wait a moment and retry or email hr@nkumbauniversity.ac.ug for help."
	networkIssueMessage    = "We couldn't submit your application because of a network issue. Please try again in a moment."
	genericFailureMessage  = "Failed to submit application. Please try again."
)

// classifyOutcome converts a submission failure into the text shown to the
// applicant. An oversized-payload rejection wins over any structured
// message; a bare transport failure gets the generic connectivity text.
func classifyOutcome(err error) string {
	if err == nil {
		return ""
	}

	message, hasStructured := hrapi.FirstGraphQLMessage(err)

	if hrapi.IsTransport(err) {
		if hrapi.StatusCodeOf(err) == http.StatusRequestEntityTooLarge {
			return oversizedResumeMessage
		}
		if !hasStructured {
			return networkIssueMessage
		}
	}
	if hasStructured {
		return message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return genericFailureMessage
}
