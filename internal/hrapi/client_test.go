package hrapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL, "test-token", 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	if _, err := NewClient("  ", "", 0); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSubmitApplicationSuccess(t *testing.T) {
	var gotAuth string
	var gotReq graphqlRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"submitJobApplication":{"applicant":{"applicantCode":" JAP7K9QX2M4N "},"emailQueued":true}}}`))
	})

	result, err := client.SubmitApplication(context.Background(), SubmitApplicationInput{
		JobPostingID: "jp-1",
		FirstName:    "Amina",
		LastName:     "Okello",
		Email:        "amina@example.com",
		Source:       "Jobs Portal",
	})
	if err != nil {
		t.Fatalf("SubmitApplication: %v", err)
	}
	if result.ApplicantCode != "JAP7K9QX2M4N" {
		t.Errorf("applicant code = %q, want trimmed JAP7K9QX2M4N", result.ApplicantCode)
	}
	if !result.EmailQueued {
		t.Error("expected emailQueued true")
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if gotReq.OperationName != "JobsPortalSubmitApplication" {
		t.Errorf("operation name = %q", gotReq.OperationName)
	}
	input, ok := gotReq.Variables["input"].(map[string]any)
	if !ok {
		t.Fatalf("variables missing input object: %#v", gotReq.Variables)
	}
	if input["jobPostingId"] != "jp-1" {
		t.Errorf("jobPostingId = %v", input["jobPostingId"])
	}
}

func TestSubmitApplicationGraphQLError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":null,"errors":[{"message":"You have already applied for this position"}]}`))
	})

	_, err := client.SubmitApplication(context.Background(), SubmitApplicationInput{})
	if err == nil {
		t.Fatal("expected error")
	}
	msg, ok := FirstGraphQLMessage(err)
	if !ok || msg != "You have already applied for this position" {
		t.Errorf("FirstGraphQLMessage = %q, %v", msg, ok)
	}
	if IsTransport(err) {
		t.Error("structured error should not classify as transport")
	}
}

func TestStatusCodeProbing(t *testing.T) {
	tests := []struct {
		name       string
		httpStatus int
		body       string
		want       int
	}{
		{"top level statusCode", http.StatusBadRequest, `{"statusCode":413}`, 413},
		{"status field", http.StatusBadRequest, `{"status":413}`, 413},
		{"nested result", http.StatusBadRequest, `{"result":{"statusCode":413}}`, 413},
		{"http status fallback", http.StatusRequestEntityTooLarge, `upstream rejected`, 413},
		{"statusCode wins over http", http.StatusBadGateway, `{"statusCode":413,"status":500}`, 413},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.httpStatus)
				w.Write([]byte(tt.body))
			})
			_, err := client.SubmitApplication(context.Background(), SubmitApplicationInput{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsTransport(err) {
				t.Fatalf("expected transport error, got %T", err)
			}
			if got := StatusCodeOf(err); got != tt.want {
				t.Errorf("StatusCodeOf = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNetworkFailureIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(srv.URL, "", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	srv.Close()

	_, err = client.SubmitApplication(context.Background(), SubmitApplicationInput{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTransport(err) {
		t.Errorf("expected transport error, got %T", err)
	}
	if StatusCodeOf(err) != 0 {
		t.Errorf("expected no status code, got %d", StatusCodeOf(err))
	}
	if _, ok := FirstGraphQLMessage(err); ok {
		t.Error("network failure should carry no structured message")
	}
}

func TestApplicantsByReference(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		filter, _ := req.Variables["filter"].(map[string]any)
		if filter["search"] != "NU1705ABC123" {
			t.Errorf("search = %v", filter["search"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"jobApplicants":{"data":[{"applicantCode":"NU1705ABC123","status":"SHORTLISTED","fullName":"Amina Okello"}],"total":1}}}`))
	})

	applicants, err := client.ApplicantsByReference(context.Background(), "NU1705ABC123", 5)
	if err != nil {
		t.Fatalf("ApplicantsByReference: %v", err)
	}
	if len(applicants) != 1 {
		t.Fatalf("got %d applicants, want 1", len(applicants))
	}
	if applicants[0].Status != "SHORTLISTED" {
		t.Errorf("status = %q", applicants[0].Status)
	}
}

func TestJobPostingNullResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"jobPosting":null}}`))
	})

	posting, err := client.JobPosting(context.Background(), "missing")
	if err != nil {
		t.Fatalf("JobPosting: %v", err)
	}
	if posting != nil {
		t.Errorf("expected nil posting, got %+v", posting)
	}
}

func TestJobPostingsPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"jobPostings":{"data":[{"id":"jp-1","jobTitle":"Lecturer","status":"ACTIVE"}],"total":1,"metrics":{"total":1,"active":1}}}}`))
	})

	page, err := client.JobPostings(context.Background(), 20, 0, &JobPostingFilter{Department: "Education"})
	if err != nil {
		t.Fatalf("JobPostings: %v", err)
	}
	if page.Total != 1 || len(page.Data) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Metrics.Active != 1 {
		t.Errorf("metrics.active = %d", page.Metrics.Active)
	}
}

func TestPRTDetailsStringAmount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"get_prt_details":{"prt":"2250012345678","full_name":"Amina Okello","amount":"50000","status":"PENDING"}}}`))
	})

	details, err := client.PRTDetails(context.Background(), "2250012345678")
	if err != nil {
		t.Fatalf("PRTDetails: %v", err)
	}
	if details == nil {
		t.Fatal("expected details")
	}
	if details.Amount.Float64() != 50000 {
		t.Errorf("amount = %v, want 50000", details.Amount)
	}
}

func TestCurrentFees(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"current_fees":[{"id":"f1","amount":50000,"fee_item":{"item_name":"Application Fee"}}]}}`))
	})

	fees, err := client.CurrentFees(context.Background())
	if err != nil {
		t.Fatalf("CurrentFees: %v", err)
	}
	if len(fees) != 1 || fees[0].FeeItem.ItemName != "Application Fee" {
		t.Fatalf("unexpected fees: %+v", fees)
	}
}
