package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks GraphQL-over-HTTP to the external HR API. The API owns all
// persistence and business rules; this client only shapes requests and
// classifies failures.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient constructs a Client for the given endpoint. A zero timeout
// falls back to 30 seconds.
func NewClient(endpoint, token string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, ErrNotConfigured
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type graphqlRequest struct {
	OperationName string         `json:"operationName,omitempty"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// errorBody matches the shapes the gateway wraps around rejected requests.
// Status codes show up top-level or nested under result depending on which
// layer rejected the request.
type errorBody struct {
	StatusCode int `json:"statusCode"`
	Status     int `json:"status"`
	Result     *struct {
		StatusCode int `json:"statusCode"`
	} `json:"result"`
	Errors []GraphQLError `json:"errors"`
}

func (c *Client) do(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphqlRequest{
		OperationName: operation,
		Query:         query,
		Variables:     variables,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{HTTPStatus: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return transportError(resp.StatusCode, body)
	}

	var parsed graphqlResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &RequestError{HTTPStatus: resp.StatusCode, Err: fmt.Errorf("response parse: %w", err)}
	}
	if len(parsed.Errors) > 0 {
		return &parsed.Errors[0]
	}
	if out != nil {
		if len(parsed.Data) == 0 {
			return &RequestError{HTTPStatus: resp.StatusCode, Err: fmt.Errorf("response missing data")}
		}
		if err := json.Unmarshal(parsed.Data, out); err != nil {
			return &RequestError{HTTPStatus: resp.StatusCode, Err: fmt.Errorf("data decode: %w", err)}
		}
	}
	return nil
}

func transportError(httpStatus int, body []byte) *RequestError {
	reqErr := &RequestError{HTTPStatus: httpStatus}
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		reqErr.StatusCode = parsed.StatusCode
		reqErr.Status = parsed.Status
		if parsed.Result != nil {
			reqErr.ResultStatusCode = parsed.Result.StatusCode
		}
		reqErr.Errs = parsed.Errors
	}
	return reqErr
}

const jobPostingCoreFields = `
fragment JobPostingCoreFields on JobPosting {
  id
  jobCode
  jobTitle
  department
  employmentType
  workLocation
  visibility
  status
  openings
  openingsFilled
  openingDate
  closingDate
  postedDate
  displaySalary
  minSalary
  maxSalary
  currency
  payPeriod
  salaryLabel
  jobSummary
  notes
  metadata
}`

const jobPostingsQuery = jobPostingCoreFields + `
query JobsPortalJobPostings($limit: Int!, $offset: Int!, $filter: JobPostingFilter) {
  jobPostings(limit: $limit, offset: $offset, filter: $filter) {
    data {
      ...JobPostingCoreFields
    }
    total
    metrics {
      total
      active
      closing
      closed
      draft
    }
  }
}`

const jobPostingQuery = jobPostingCoreFields + `
query JobsPortalJobPosting($id: ID!) {
  jobPosting(id: $id) {
    ...JobPostingCoreFields
    jobDescription {
      id
      jobCode
      jobTitle
      positionName
      category
      jobFamily
      department
      division
      employmentType
      grade
      reportsTo
      workLocation
      status
      jobSummary
      responsibilities
      education
      experience
      technicalSkills
      softSkills
      certifications
      kpis
      languages
      benefits
      additionalBenefits
      approvedPositions
      filledPositions
      openings
    }
  }
}`

const applicantByReferenceQuery = `
query JobsPortalApplicantByReference($limit: Int!, $filter: JobApplicantFilter) {
  jobApplicants(limit: $limit, filter: $filter) {
    data {
      id
      applicantCode
      jobPostingId
      jobTitle
      jobCode
      status
      firstName
      lastName
      fullName
      email
      phone
      source
      createdAt
      resumeName
      resumeMimeType
      resumeSize
      coverLetterIncluded
      currentEmployer
      currentTitle
      experienceYears
      noticePeriod
      message
      metadata
      jobPosting {
        id
        jobTitle
        jobCode
      }
    }
    total
  }
}`

const submitApplicationMutation = `
mutation JobsPortalSubmitApplication($input: SubmitJobApplicationInput!) {
  submitJobApplication(input: $input) {
    applicant {
      applicantCode
    }
    emailQueued
  }
}`

const currentFeesQuery = `
query JobsPortalCurrentFees {
  current_fees {
    id
    amount
    fee_item {
      item_name
    }
  }
}`

const generateGlobalPRTMutation = `
mutation GenerateGlobalPRT($payload: GlobalPRTInput) {
  generateGlobalPRT(payload: $payload) {
    id
    student_no
    full_name
    phone_no
    email
    type
    prt
    amount
    status
    allocations
    prt_expiry
    created_at
    generated_by
    invs {
      item_id
      item_code
      item_name
      amount
    }
  }
}`

const prtDetailsQuery = `
query PRTDetails($prt: String!) {
  get_prt_details(prt: $prt) {
    prt
    full_name
    student_no
    email
    phone_no
    amount
    status
    created_at
    prt_expiry
    allocations
    invs {
      item_id
      item_code
      item_name
      amount
    }
    generated_by
    payment_date
    tnx_id
    bank_name
    bank_branch
  }
}`

// JobPostings returns one page of postings with optional filter.
func (c *Client) JobPostings(ctx context.Context, limit, offset int, filter *JobPostingFilter) (JobPostingsPage, error) {
	var data struct {
		JobPostings JobPostingsPage `json:"jobPostings"`
	}
	vars := map[string]any{"limit": limit, "offset": offset}
	if filter != nil {
		vars["filter"] = filter
	}
	if err := c.do(ctx, "JobsPortalJobPostings", jobPostingsQuery, vars, &data); err != nil {
		return JobPostingsPage{}, err
	}
	return data.JobPostings, nil
}

// JobPosting fetches one posting with its description block. A nil posting
// with nil error means the ID is unknown to the HR API.
func (c *Client) JobPosting(ctx context.Context, id string) (*JobPosting, error) {
	var data struct {
		JobPosting *JobPosting `json:"jobPosting"`
	}
	if err := c.do(ctx, "JobsPortalJobPosting", jobPostingQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	return data.JobPosting, nil
}

// ApplicantsByReference runs the server-side fuzzy reference search. Exact
// match selection is the caller's responsibility.
func (c *Client) ApplicantsByReference(ctx context.Context, search string, limit int) ([]Applicant, error) {
	var data struct {
		JobApplicants struct {
			Data  []Applicant `json:"data"`
			Total int         `json:"total"`
		} `json:"jobApplicants"`
	}
	vars := map[string]any{
		"limit":  limit,
		"filter": map[string]any{"search": search},
	}
	if err := c.do(ctx, "JobsPortalApplicantByReference", applicantByReferenceQuery, vars, &data); err != nil {
		return nil, err
	}
	return data.JobApplicants.Data, nil
}

// SubmitApplication issues the submission mutation exactly once.
func (c *Client) SubmitApplication(ctx context.Context, input SubmitApplicationInput) (SubmitResult, error) {
	var data struct {
		SubmitJobApplication *struct {
			Applicant *struct {
				ApplicantCode string `json:"applicantCode"`
			} `json:"applicant"`
			EmailQueued bool `json:"emailQueued"`
		} `json:"submitJobApplication"`
	}
	vars := map[string]any{"input": input}
	if err := c.do(ctx, "JobsPortalSubmitApplication", submitApplicationMutation, vars, &data); err != nil {
		return SubmitResult{}, err
	}
	var result SubmitResult
	if data.SubmitJobApplication != nil {
		result.EmailQueued = data.SubmitJobApplication.EmailQueued
		if data.SubmitJobApplication.Applicant != nil {
			result.ApplicantCode = strings.TrimSpace(data.SubmitJobApplication.Applicant.ApplicantCode)
		}
	}
	return result, nil
}

// CurrentFees returns the active fee catalogue.
func (c *Client) CurrentFees(ctx context.Context) ([]Fee, error) {
	var data struct {
		CurrentFees []Fee `json:"current_fees"`
	}
	if err := c.do(ctx, "JobsPortalCurrentFees", currentFeesQuery, nil, &data); err != nil {
		return nil, err
	}
	return data.CurrentFees, nil
}

// GenerateGlobalPRT creates a payment reference for the given payer and
// fee allocations.
func (c *Client) GenerateGlobalPRT(ctx context.Context, input GeneratePRTInput) (PRT, error) {
	var data struct {
		GenerateGlobalPRT *PRT `json:"generateGlobalPRT"`
	}
	vars := map[string]any{"payload": input}
	if err := c.do(ctx, "GenerateGlobalPRT", generateGlobalPRTMutation, vars, &data); err != nil {
		return PRT{}, err
	}
	if data.GenerateGlobalPRT == nil {
		return PRT{}, &RequestError{Err: fmt.Errorf("generateGlobalPRT returned no record")}
	}
	return *data.GenerateGlobalPRT, nil
}

// PRTDetails looks up one payment reference. A nil result with nil error
// means the reference is unknown.
func (c *Client) PRTDetails(ctx context.Context, prt string) (*PRTDetails, error) {
	var data struct {
		GetPRTDetails *PRTDetails `json:"get_prt_details"`
	}
	if err := c.do(ctx, "PRTDetails", prtDetailsQuery, map[string]any{"prt": prt}, &data); err != nil {
		return nil, err
	}
	return data.GetPRTDetails, nil
}
