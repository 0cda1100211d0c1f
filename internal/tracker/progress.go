package tracker

// milestonePath is the canonical ordered progress path. Terminal-negative
// statuses are never part of it.
var milestonePath = []struct {
	status  string
	title   string
	caption string
}{
	{StatusSubmitted, "Application Submitted", "Application received successfully"},
	{StatusUnderReview, "Under Review", "HR team is reviewing your application"},
	{StatusShortlisted, "Shortlisted", "Congratulations! You've been shortlisted"},
	{StatusInterview, "Interview", "You've been invited to the interview stage"},
	{StatusOffer, "Offer", "An offer is being prepared for you"},
	{StatusHired, "Hired", "Welcome to Nkumba University!"},
}

// outcomeCaptions replace the generic caption at the current milestone for
// the two positive terminal outcomes.
var outcomeCaptions = map[string]string{
	StatusOffer: "Congratulations! An offer has been extended. Please check your email for the details and next steps.",
	StatusHired: "Welcome to Nkumba University! Our HR team will reach out with your onboarding details.",
}

var terminalEntries = map[string]Milestone{
	StatusRejected: {
		Status:  StatusRejected,
		Title:   "Application Not Successful",
		Caption: "Thank you for your interest",
		State:   StateTerminal,
	},
	StatusWithdrawn: {
		Status:  StatusWithdrawn,
		Title:   "Application Withdrawn",
		Caption: "This application was withdrawn and is no longer under consideration",
		State:   StateTerminal,
	},
}

var banners = map[string]Banner{
	StatusSubmitted: {
		Severity:    "info",
		Title:       "Application Received",
		Description: "Your application has been received and is waiting for review.",
	},
	StatusUnderReview: {
		Severity:    "info",
		Title:       "Under Review",
		Description: "The HR team is reviewing your application. Check back for updates.",
	},
	StatusShortlisted: {
		Severity:    "success",
		Title:       "You've Been Shortlisted",
		Description: "Congratulations! Your application stood out. The HR team will contact you about the next steps.",
	},
	StatusInterview: {
		Severity:    "info",
		Title:       "Interview Stage",
		Description: "You've been invited to interview. Check your email for scheduling details.",
	},
	StatusOffer: {
		Severity:    "success",
		Title:       "Offer Extended",
		Description: "Congratulations! An offer has been extended. Please respond to HR as soon as possible.",
	},
	StatusHired: {
		Severity:    "success",
		Title:       "Hired",
		Description: "Welcome to Nkumba University!",
	},
	StatusRejected: {
		Severity:    "warning",
		Title:       "Application Not Successful",
		Description: "Thank you for your interest in Nkumba University. We encourage you to apply for future openings.",
	},
	StatusWithdrawn: {
		Severity:    "warning",
		Title:       "Application Withdrawn",
		Description: "This application was withdrawn. You're welcome to apply again for future openings.",
	},
}

// pathIndex returns the position of a status on the canonical path, or -1.
func pathIndex(status string) int {
	for i, m := range milestonePath {
		if m.status == status {
			return i
		}
	}
	return -1
}

// BuildProgress maps a status to its rendered milestone list and banner.
// Terminal-negative statuses render the canonical path up through the
// review milestone plus one appended terminal entry; the API does not
// report how far the applicant actually got before the negative outcome.
func BuildProgress(status string) Progress {
	progress := Progress{Status: status}
	if banner, ok := banners[status]; ok {
		progress.Banner = &banner
	}

	if terminal, ok := terminalEntries[status]; ok {
		reachedIndex := pathIndex(StatusUnderReview)
		for i, m := range milestonePath {
			state := StatePending
			if i <= reachedIndex {
				state = StateComplete
			}
			progress.Milestones = append(progress.Milestones, Milestone{
				Status:  m.status,
				Title:   m.title,
				Caption: m.caption,
				State:   state,
			})
		}
		progress.Milestones = append(progress.Milestones, terminal)
		return progress
	}

	currentIndex := pathIndex(status)
	for i, m := range milestonePath {
		entry := Milestone{
			Status:  m.status,
			Title:   m.title,
			Caption: m.caption,
			State:   StatePending,
		}
		if currentIndex >= 0 {
			switch {
			case i < currentIndex:
				entry.State = StateComplete
			case i == currentIndex:
				entry.State = StateCurrent
				if caption, ok := outcomeCaptions[status]; ok {
					entry.Caption = caption
				}
			}
		}
		progress.Milestones = append(progress.Milestones, entry)
	}
	return progress
}
