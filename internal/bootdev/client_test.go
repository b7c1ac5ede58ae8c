package bootdev

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8081/")
	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.BaseURL != "http://localhost:8081" {
		t.Errorf("NewClient() BaseURL = %v, want http://localhost:8081", client.BaseURL)
	}
	if client.client == nil {
		t.Error("NewClient() client should not be nil")
	}
}

func TestClient_CoursesOverview(t *testing.T) {
	tests := []struct {
		name       string
		serverResp func(w http.ResponseWriter, r *http.Request)
		wantSlugs  []string
		wantErr    error
	}{
		{
			name: "successful fetch",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET, got %s", r.Method)
				}
				if r.URL.Path != "/v1/static/courses/overview" {
					t.Errorf("expected /v1/static/courses/overview, got %s", r.URL.Path)
				}
				if r.Header.Get("Accept") != "application/json" {
					t.Error("missing Accept header")
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[{"Slug":"learn-go","Title":"Learn Go","Extra":1},{"Slug":"learn-sql","Title":"Learn SQL"}]`))
			},
			wantSlugs: []string{"learn-go", "learn-sql"},
		},
		{
			name: "server error",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("internal server error"))
			},
			wantErr: ErrBadStatus,
		},
		{
			name: "malformed body",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not":"an array"`))
			},
			wantErr: ErrDecode,
		},
		{
			name: "wrong shape",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"Slug":"learn-go"}`))
			},
			wantErr: ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResp))
			defer server.Close()

			client := NewClient(server.URL)
			got, err := client.CoursesOverview(context.Background())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CoursesOverview() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("CoursesOverview() unexpected error: %v", err)
			}
			if len(got) != len(tt.wantSlugs) {
				t.Fatalf("CoursesOverview() returned %d courses, want %d", len(got), len(tt.wantSlugs))
			}
			for i, want := range tt.wantSlugs {
				slug, err := got[i].SlugValue()
				if err != nil || slug != want {
					t.Errorf("CoursesOverview()[%d] slug = %q (%v), want %q", i, slug, err, want)
				}
			}
		})
	}
}

func TestClient_StatusErrorDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Course(context.Background(), "missing")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Course() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusError.StatusCode = %d, want 404", statusErr.StatusCode)
	}
	if statusErr.Body != `{"error":"not found"}` {
		t.Errorf("StatusError.Body = %q", statusErr.Body)
	}
	if statusErr.URL != server.URL+"/v1/courses/missing" {
		t.Errorf("StatusError.URL = %q", statusErr.URL)
	}
}

func TestClient_RequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.Courses(context.Background())
	if !errors.Is(err, ErrRequest) {
		t.Errorf("Courses() error = %v, want ErrRequest", err)
	}
}

func TestClient_EndpointPaths(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		switch r.URL.Path {
		case "/v1/courses":
			_, _ = w.Write([]byte(`[]`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	tests := []struct {
		name     string
		call     func() error
		wantPath string
	}{
		{
			name: "course by slug",
			call: func() error {
				_, err := client.CourseBySlug(ctx, "learn-go")
				return err
			},
			wantPath: "/v1/static/courses/slug/learn-go",
		},
		{
			name: "slug is escaped",
			call: func() error {
				_, err := client.CourseBySlug(ctx, "a b/c")
				return err
			},
			wantPath: "/v1/static/courses/slug/a%20b%2Fc",
		},
		{
			name: "course list",
			call: func() error {
				_, err := client.Courses(ctx)
				return err
			},
			wantPath: "/v1/courses",
		},
		{
			name: "course by id",
			call: func() error {
				_, err := client.Course(ctx, "c-1")
				return err
			},
			wantPath: "/v1/courses/c-1",
		},
		{
			name: "lesson by id",
			call: func() error {
				_, err := client.Lesson(ctx, "l-1")
				return err
			},
			wantPath: "/v1/static/lessons/l-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}

func TestClient_Course(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"UUID": "c-1",
			"Chapters": [
				{"Title": "Basics", "Lessons": [{"UUID": "l-1", "Title": "Hello"}, {"UUID": "l-2"}]},
				{"Title": "Loops"}
			]
		}`))
	}))
	defer server.Close()

	course, err := NewClient(server.URL).Course(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("Course() error = %v", err)
	}

	chapters, err := course.ChapterList()
	if err != nil {
		t.Fatalf("ChapterList() error = %v", err)
	}
	if len(chapters) != 2 {
		t.Fatalf("ChapterList() returned %d chapters, want 2", len(chapters))
	}

	lessons, err := chapters[0].LessonList()
	if err != nil {
		t.Fatalf("LessonList() error = %v", err)
	}
	if id, _ := lessons[1].ID(); id != "l-2" {
		t.Errorf("lessons[1].ID() = %q, want l-2", id)
	}
	if _, err := lessons[1].TitleValue(); !errors.Is(err, ErrMissingField) {
		t.Errorf("lessons[1].TitleValue() error = %v, want ErrMissingField", err)
	}
	if _, err := chapters[1].LessonList(); !errors.Is(err, ErrMissingField) {
		t.Errorf("chapters[1].LessonList() error = %v, want ErrMissingField", err)
	}
}
