package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/domain/user"
)

// APIError is a non-success envelope from the server. The client treats a
// 200 with success:false exactly like a 4xx/5xx.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%q", e.StatusCode, e.Message)
}

// Client talks to the job-portal API. The cookie jar carries the session
// cookie issued at login; login and logout keep the identity slot in sync.
type Client struct {
	baseURL string
	http    *http.Client
	store   *Store
	logger  *log.Logger
}

func New(baseURL string, store *Store, logger *log.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("empty base URL")
	}
	if store == nil {
		return nil, errors.New("nil store")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
		store:   store,
		logger:  logger,
	}, nil
}

type loginPayload struct {
	envelope
	User dto.UserResponse `json:"user"`
}

type jobsPayload struct {
	envelope
	Jobs []dto.JobResponse `json:"jobs"`
}

type jobPayload struct {
	envelope
	Job dto.JobResponse `json:"job"`
}

type applicantsPayload struct {
	envelope
	Job dto.JobWithApplicationsResponse `json:"job"`
}

type appliedPayload struct {
	envelope
	Applications []dto.AppliedJobResponse `json:"applications"`
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e envelope) ok() bool { return e.Success }

// Login authenticates and hydrates the identity slot.
func (c *Client) Login(ctx context.Context, email, password string, role user.Role) error {
	var out loginPayload
	err := c.do(ctx, http.MethodPost, "/api/v1/user/login", map[string]any{
		"email":    email,
		"password": password,
		"role":     role,
	}, &out)
	if err != nil {
		return err
	}

	c.store.SetIdentity(&Identity{
		UserID:   out.User.ID,
		FullName: out.User.FullName,
		Email:    out.User.Email,
		Role:     out.User.Role,
	})
	return nil
}

// Logout clears the server session and the identity slot. The identity is
// cleared even if the request fails; the cookie may already be gone.
func (c *Client) Logout(ctx context.Context) error {
	var out envelope
	err := c.do(ctx, http.MethodPost, "/api/v1/user/logout", nil, &out)
	c.store.SetIdentity(nil)
	return err
}

func (c *Client) FetchJobs(ctx context.Context, keyword string) ([]dto.JobResponse, error) {
	path := "/api/v1/job"
	if keyword != "" {
		path += "?keyword=" + url.QueryEscape(keyword)
	}
	var out jobsPayload
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

func (c *Client) FetchAdminJobs(ctx context.Context) ([]dto.JobResponse, error) {
	var out jobsPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/job/getadminjobs", nil, &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

func (c *Client) FetchApplicants(ctx context.Context, jobID uuid.UUID) (dto.JobWithApplicationsResponse, error) {
	var out applicantsPayload
	path := "/api/v1/application/" + jobID.String() + "/applicants"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return dto.JobWithApplicationsResponse{}, err
	}
	return out.Job, nil
}

func (c *Client) FetchAppliedJobs(ctx context.Context) ([]dto.AppliedJobResponse, error) {
	var out appliedPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/application/", nil, &out); err != nil {
		return nil, err
	}
	return out.Applications, nil
}

func (c *Client) Apply(ctx context.Context, jobID uuid.UUID) error {
	var out envelope
	return c.do(ctx, http.MethodPost, "/api/v1/application/apply/"+jobID.String(), nil, &out)
}

func (c *Client) PostJob(ctx context.Context, in dto.JobResponse) (dto.JobResponse, error) {
	var out jobPayload
	body := map[string]any{
		"title":            in.Title,
		"description":      in.Description,
		"requirements":     in.Requirements,
		"salary":           in.Salary,
		"location":         in.Location,
		"job_type":         in.JobType,
		"experience_level": in.ExperienceLevel,
		"positions":        in.Positions,
		"company_id":       in.CompanyID,
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/job/", body, &out); err != nil {
		return dto.JobResponse{}, err
	}
	return out.Job, nil
}

type okReporter interface {
	ok() bool
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "malformed response"}
	}

	if rep, okType := out.(okReporter); okType && !rep.ok() {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		if c.logger != nil {
			c.logger.Printf("[Client] request failed method=%s path=%s status=%d message=%q",
				method, path, resp.StatusCode, env.Message)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	return nil
}
