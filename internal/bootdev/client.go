package bootdev

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vedtoob/internal/contextutil"
)

// maxErrorBody caps how much of a failed response body ends up in an error.
const maxErrorBody = 512

// Client is a client for the Boot.dev content API.
type Client struct {
	BaseURL string
	client  *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
	}
}

// CoursesOverview fetches the summary of every published course.
func (c *Client) CoursesOverview(ctx context.Context) ([]CourseSummary, error) {
	var out []CourseSummary
	if err := c.getJSON(ctx, "/v1/static/courses/overview", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CourseBySlug looks a course up by its slug.
func (c *Client) CourseBySlug(ctx context.Context, slug string) (*CourseLookup, error) {
	var out CourseLookup
	if err := c.getJSON(ctx, "/v1/static/courses/slug/"+url.PathEscape(slug), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Courses fetches the full course list.
func (c *Client) Courses(ctx context.Context) ([]CourseSummary, error) {
	var out []CourseSummary
	if err := c.getJSON(ctx, "/v1/courses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Course fetches one course document, chapters and lessons included.
func (c *Client) Course(ctx context.Context, courseID string) (*Course, error) {
	var out Course
	if err := c.getJSON(ctx, "/v1/courses/"+url.PathEscape(courseID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Lesson fetches one lesson by its UUID.
func (c *Client) Lesson(ctx context.Context, lessonID string) (*LessonEnvelope, error) {
	var out LessonEnvelope
	if err := c.getJSON(ctx, "/v1/static/lessons/"+url.PathEscape(lessonID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON issues a single GET against path and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	logger := contextutil.LoggerFromContext(ctx)
	endpoint := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "vedtoob")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrRequest, endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	logger.DebugContext(ctx, "api response", "url", endpoint, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrDecode, endpoint, err)
	}

	return nil
}
