package wizard

import (
	"errors"
	"testing"

	"careers-portal/internal/hrapi"
)

func TestClassifyOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"structured message verbatim",
			&hrapi.GraphQLError{Message: "You have already applied for this position"},
			"You have already applied for this position",
		},
		{
			"top level statusCode 413",
			&hrapi.RequestError{HTTPStatus: 400, StatusCode: 413},
			oversizedResumeMessage,
		},
		{
			"status field 413",
			&hrapi.RequestError{HTTPStatus: 400, Status: 413},
			oversizedResumeMessage,
		},
		{
			"nested result statusCode 413",
			&hrapi.RequestError{HTTPStatus: 400, ResultStatusCode: 413},
			oversizedResumeMessage,
		},
		{
			"http status 413",
			&hrapi.RequestError{HTTPStatus: 413},
			oversizedResumeMessage,
		},
		{
			"413 wins over structured errors",
			&hrapi.RequestError{HTTPStatus: 413, Errs: []hrapi.GraphQLError{{Message: "rejected"}}},
			oversizedResumeMessage,
		},
		{
			"bare network failure",
			&hrapi.RequestError{Err: errors.New("dial tcp: connection refused")},
			networkIssueMessage,
		},
		{
			"transport with structured error surfaces it",
			&hrapi.RequestError{HTTPStatus: 500, Errs: []hrapi.GraphQLError{{Message: "internal rule violation"}}},
			"internal rule violation",
		},
		{
			"plain error surfaces its text",
			errors.New("context deadline exceeded"),
			"context deadline exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyOutcome(tt.err); got != tt.want {
				t.Errorf("classifyOutcome = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackReferenceShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := fallbackReference()
		if len(ref) != len(referencePrefix)+referenceLength {
			t.Fatalf("reference %q has wrong length", ref)
		}
		if ref[:3] != referencePrefix {
			t.Fatalf("reference %q missing prefix", ref)
		}
		for _, ch := range ref[3:] {
			found := false
			for _, allowed := range referenceCharset {
				if ch == allowed {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("reference %q contains %q outside charset", ref, ch)
			}
		}
		seen[ref] = true
	}
	if len(seen) < 2 {
		t.Error("references should vary")
	}
}
