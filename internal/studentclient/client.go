// Package studentclient is an HTTP client for the student records REST API.
package studentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
)

// DefaultTimeout bounds every request
const DefaultTimeout = 30 * time.Second

// APIError is a non-2xx response from the API
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	status := fmt.Sprintf("HTTP %d", e.HTTPStatus)
	if e.Code != "" {
		status += ", " + e.Code
	}
	msg := fmt.Sprintf("API error (%s): %s", status, e.Message)
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	return msg
}

// Client talks to one API host
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for baseURL, e.g. "http://localhost:8080"
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Do sends a request to /api<path>, JSON-encoding body when it is not nil
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/api"+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

// CheckError turns a non-2xx response into an *APIError. The body is consumed on failure.
func CheckError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)
	apiErr := &APIError{HTTPStatus: resp.StatusCode}

	var body dto.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Code = string(body.Code)
		apiErr.Message = body.Error
		apiErr.Details = body.Details
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}

func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := CheckError(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// List fetches every student
func (c *Client) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := c.call(ctx, http.MethodGet, "/users", nil, &students); err != nil {
		return nil, err
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// Create stores a new student
func (c *Client) Create(ctx context.Context, req dto.CreateStudentRequest) (models.Student, error) {
	var student models.Student
	err := c.call(ctx, http.MethodPost, "/users", req, &student)
	return student, err
}

// Update changes the submitted fields of a student
func (c *Client) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (models.Student, error) {
	var student models.Student
	err := c.call(ctx, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), req, &student)
	return student, err
}

// Delete removes a student and returns the removed record
func (c *Client) Delete(ctx context.Context, id int64) (models.Student, error) {
	var student models.Student
	err := c.call(ctx, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), nil, &student)
	return student, err
}
