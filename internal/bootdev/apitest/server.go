// Package apitest provides an in-process fake of the Boot.dev content API.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Server serves canned response bodies keyed by route parameters.
// Bodies are raw JSON so tests can also serve malformed or partial documents.
type Server struct {
	URL string

	mu         sync.Mutex
	overview   []json.RawMessage
	courseList []json.RawMessage
	bySlug     map[string]string
	courses    map[string]string
	lessons    map[string]string
	hits       []string
}

// LessonSpec describes a lesson to register with AddCourse.
type LessonSpec struct {
	Title  string
	Readme string
}

// ChapterSpec describes a chapter to register with AddCourse.
type ChapterSpec struct {
	Title   string
	Lessons []LessonSpec
}

// CourseFixture holds the identifiers generated by AddCourse.
type CourseFixture struct {
	ID      string
	Slug    string
	Lessons [][]string // Lessons[chapter][lesson] is a lesson UUID, zero-based
}

// NewServer starts a fake API server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		overview:   []json.RawMessage{},
		courseList: []json.RawMessage{},
		bySlug:     make(map[string]string),
		courses:    make(map[string]string),
		lessons:    make(map[string]string),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Get("/v1/static/courses/overview", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		body, _ := json.Marshal(s.overview)
		s.mu.Unlock()
		writeJSON(w, string(body))
	})
	r.Get("/v1/courses", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		body, _ := json.Marshal(s.courseList)
		s.mu.Unlock()
		writeJSON(w, string(body))
	})
	r.Get("/v1/static/courses/slug/{slug}", s.lookup(func() map[string]string { return s.bySlug }, "slug"))
	r.Get("/v1/courses/{uuid}", s.lookup(func() map[string]string { return s.courses }, "uuid"))
	r.Get("/v1/static/lessons/{uuid}", s.lookup(func() map[string]string { return s.lessons }, "uuid"))

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	s.URL = ts.URL

	return s
}

// AddCourse registers a consistent course across every endpoint and returns
// the generated identifiers.
func (s *Server) AddCourse(slug, title string, chapters ...ChapterSpec) CourseFixture {
	fixture := CourseFixture{ID: uuid.NewString(), Slug: slug}

	type lessonDoc struct {
		UUID  string `json:"UUID"`
		Title string `json:"Title"`
	}
	type chapterDoc struct {
		Title   string      `json:"Title"`
		Lessons []lessonDoc `json:"Lessons"`
	}

	chapterDocs := make([]chapterDoc, 0, len(chapters))
	for _, ch := range chapters {
		doc := chapterDoc{Title: ch.Title, Lessons: []lessonDoc{}}
		ids := make([]string, 0, len(ch.Lessons))
		for _, l := range ch.Lessons {
			id := uuid.NewString()
			ids = append(ids, id)
			doc.Lessons = append(doc.Lessons, lessonDoc{UUID: id, Title: l.Title})
			s.SetLesson(id, mustJSON(map[string]any{
				"Lesson": map[string]any{
					"UUID":               id,
					"Title":              l.Title,
					"Type":               "type_markdown",
					"LessonDataMarkdown": map[string]any{"Readme": l.Readme},
				},
			}))
		}
		fixture.Lessons = append(fixture.Lessons, ids)
		chapterDocs = append(chapterDocs, doc)
	}

	summary := mustJSON(map[string]any{"UUID": fixture.ID, "Slug": slug, "Title": title})

	s.mu.Lock()
	s.overview = append(s.overview, json.RawMessage(summary))
	s.courseList = append(s.courseList, json.RawMessage(summary))
	s.mu.Unlock()

	s.SetCourseBySlug(slug, mustJSON(map[string]any{
		"Course": map[string]any{"UUID": fixture.ID, "Slug": slug, "Title": title},
	}))
	s.SetCourse(fixture.ID, mustJSON(map[string]any{
		"UUID":     fixture.ID,
		"Slug":     slug,
		"Title":    title,
		"Chapters": chapterDocs,
	}))

	return fixture
}

// SetOverview replaces the overview and course list with the given raw elements.
func (s *Server) SetOverview(elements ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overview = s.overview[:0]
	for _, e := range elements {
		s.overview = append(s.overview, json.RawMessage(e))
	}
	s.courseList = append([]json.RawMessage(nil), s.overview...)
}

// SetCourseBySlug sets the raw body served for a slug lookup.
func (s *Server) SetCourseBySlug(slug, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bySlug[slug] = body
}

// SetCourse sets the raw body served for a course id.
func (s *Server) SetCourse(id, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[id] = body
}

// SetLesson sets the raw body served for a lesson id.
func (s *Server) SetLesson(id, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons[id] = body
}

// Hits returns the request paths served so far, in order.
func (s *Server) Hits() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.hits...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits = append(s.hits, r.URL.Path)
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) lookup(table func() map[string]string, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, param)
		s.mu.Lock()
		body, ok := table()[key]
		s.mu.Unlock()
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
			return
		}
		writeJSON(w, body)
	}
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
