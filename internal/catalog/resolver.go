// Package catalog resolves human-facing course slugs and 1-based chapter and
// lesson numbers into platform identifiers, and lists what a course contains.
package catalog

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_course_source.go -package=mocks vedtoob/internal/catalog CourseSource

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"vedtoob/internal/bootdev"
	"vedtoob/internal/contextutil"
)

// CourseSource is the part of the content API the resolver reads.
type CourseSource interface {
	// CoursesOverview returns the summary of every course.
	CoursesOverview(ctx context.Context) ([]bootdev.CourseSummary, error)
	// CourseBySlug looks a course up through the dedicated slug endpoint.
	CourseBySlug(ctx context.Context, slug string) (*bootdev.CourseLookup, error)
	// Courses returns the full course list.
	Courses(ctx context.Context) ([]bootdev.CourseSummary, error)
	// Course returns one course with its chapters and lessons.
	Course(ctx context.Context, courseID string) (*bootdev.Course, error)
}

// Strategy selects how a slug is turned into a course id.
type Strategy string

const (
	// StrategyLookup asks the slug endpoint directly.
	StrategyLookup Strategy = "slug"
	// StrategyScan fetches the full course list and filters it by slug.
	StrategyScan Strategy = "scan"
)

// ParseStrategy converts a configuration value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyLookup:
		return StrategyLookup, nil
	case StrategyScan:
		return StrategyScan, nil
	default:
		return "", fmt.Errorf("unknown resolve strategy %q", s)
	}
}

// CourseEntry is one line of the course listing.
type CourseEntry struct {
	Slug  string
	Title string
}

// Resolver walks the course -> chapter -> lesson graph.
type Resolver struct {
	src      CourseSource
	strategy Strategy
}

// NewResolver creates a Resolver. An empty strategy means StrategyLookup.
func NewResolver(src CourseSource, strategy Strategy) *Resolver {
	if strategy == "" {
		strategy = StrategyLookup
	}
	return &Resolver{
		src:      src,
		strategy: strategy,
	}
}

// ResolveCourseID returns the identifier of the course with the given slug.
func (r *Resolver) ResolveCourseID(ctx context.Context, slug string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var (
		id  string
		err error
	)
	switch r.strategy {
	case StrategyScan:
		id, err = r.scanCourseID(ctx, slug)
	default:
		id, err = r.lookupCourseID(ctx, slug)
	}
	if err != nil {
		return "", err
	}

	logger.DebugContext(ctx, "resolved course", "slug", slug, "strategy", string(r.strategy), "course_id", id)
	return id, nil
}

func (r *Resolver) lookupCourseID(ctx context.Context, slug string) (string, error) {
	lookup, err := r.src.CourseBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	return lookup.ID()
}

func (r *Resolver) scanCourseID(ctx context.Context, slug string) (string, error) {
	courses, err := r.src.Courses(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range courses {
		if c.Slug == nil || *c.Slug != slug {
			continue
		}
		return c.ID()
	}
	return "", fmt.Errorf("%w: '%s'", ErrCourseNotFound, slug)
}

// ResolveLessonID returns the identifier of lesson lessonNo in chapter
// chapterNo of the course. Both numbers are 1-based.
func (r *Resolver) ResolveLessonID(ctx context.Context, slug string, chapterNo, lessonNo int) (string, error) {
	lessons, err := r.chapterLessons(ctx, slug, chapterNo)
	if err != nil {
		return "", err
	}

	if lessonNo < 1 || len(lessons) < lessonNo {
		return "", &RangeError{Unit: UnitLesson, Number: lessonNo, Chapter: chapterNo, Course: slug}
	}

	id, err := lessons[lessonNo-1].ID()
	if err != nil {
		return "", err
	}

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "resolved lesson",
		"slug", slug, "chapter", chapterNo, "lesson", lessonNo, "lesson_id", id)
	return id, nil
}

// ListCourses returns every course as a slug/title pair, sorted by slug.
func (r *Resolver) ListCourses(ctx context.Context) ([]CourseEntry, error) {
	courses, err := r.src.CoursesOverview(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]CourseEntry, 0, len(courses))
	for _, c := range courses {
		slug, err := c.SlugValue()
		if err != nil {
			return nil, err
		}
		title, err := c.TitleValue()
		if err != nil {
			return nil, err
		}
		entries = append(entries, CourseEntry{Slug: slug, Title: title})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Slug < entries[j].Slug
	})
	return entries, nil
}

// ListChapters returns the chapter titles of a course in course order.
func (r *Resolver) ListChapters(ctx context.Context, slug string) ([]string, error) {
	chapters, err := r.chapters(ctx, slug)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		title, err := ch.TitleValue()
		if err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, nil
}

// ListLessons returns the lesson titles of one chapter in chapter order.
func (r *Resolver) ListLessons(ctx context.Context, slug string, chapterNo int) ([]string, error) {
	lessons, err := r.chapterLessons(ctx, slug, chapterNo)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(lessons))
	for _, l := range lessons {
		title, err := l.TitleValue()
		if err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, nil
}

func (r *Resolver) chapters(ctx context.Context, slug string) ([]bootdev.Chapter, error) {
	courseID, err := r.ResolveCourseID(ctx, slug)
	if err != nil {
		return nil, err
	}
	course, err := r.src.Course(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return course.ChapterList()
}

// chapterLessons bounds-checks chapterNo and returns that chapter's lessons.
func (r *Resolver) chapterLessons(ctx context.Context, slug string, chapterNo int) ([]bootdev.Lesson, error) {
	chapters, err := r.chapters(ctx, slug)
	if err != nil {
		return nil, err
	}

	if chapterNo < 1 || len(chapters) < chapterNo {
		return nil, &RangeError{Unit: UnitChapter, Number: chapterNo, Chapter: chapterNo, Course: slug}
	}

	return chapters[chapterNo-1].LessonList()
}
