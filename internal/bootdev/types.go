package bootdev

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Fields are pointers so an absent key can be told apart from an empty value.

// CourseSummary is one element of the course overview and of the full course list.
type CourseSummary struct {
	UUID  *string `json:"UUID"`
	Slug  *string `json:"Slug"`
	Title *string `json:"Title"`
}

// CourseLookup is the response of the course-by-slug endpoint.
type CourseLookup struct {
	Course *CourseRef `json:"Course"`
}

// CourseRef is the course object embedded in a CourseLookup.
type CourseRef struct {
	UUID *string `json:"UUID"`
}

// Course is a full course document with its chapters.
type Course struct {
	UUID     *string    `json:"UUID"`
	Slug     *string    `json:"Slug"`
	Title    *string    `json:"Title"`
	Chapters *[]Chapter `json:"Chapters"`
}

// Chapter is one entry of Course.Chapters. Position in the array is its number.
type Chapter struct {
	Title   *string   `json:"Title"`
	Lessons *[]Lesson `json:"Lessons"`
}

// Lesson is one entry of Chapter.Lessons.
type Lesson struct {
	UUID  *string `json:"UUID"`
	Title *string `json:"Title"`
}

var (
	errNullChapter = errors.New("chapter element is null")
	errNullLesson  = errors.New("lesson element is null")
)

// UnmarshalJSON rejects a null array element instead of decoding it to an
// empty Chapter.
func (c *Chapter) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNullChapter
	}
	type plain Chapter
	return json.Unmarshal(data, (*plain)(c))
}

// UnmarshalJSON rejects a null array element instead of decoding it to an
// empty Lesson.
func (l *Lesson) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return errNullLesson
	}
	type plain Lesson
	return json.Unmarshal(data, (*plain)(l))
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// LessonEnvelope is the response of the lesson-by-id endpoint.
// The lesson is kept raw because its data key varies with the lesson type.
type LessonEnvelope struct {
	Lesson map[string]json.RawMessage `json:"Lesson"`
}

// LessonData is the type-specific payload stored under a "LessonData*" key.
type LessonData struct {
	Readme *string `json:"Readme"`
}

// LessonDataPrefix prefixes the key holding a lesson's type-specific data.
const LessonDataPrefix = "LessonData"

// SlugValue returns the course slug.
func (c CourseSummary) SlugValue() (string, error) {
	if c.Slug == nil {
		return "", missing("Slug", "no slug found for a course")
	}
	return *c.Slug, nil
}

// TitleValue returns the course title.
func (c CourseSummary) TitleValue() (string, error) {
	if c.Title == nil {
		return "", missing("Title", "no title found for a course")
	}
	return *c.Title, nil
}

// ID returns the course UUID.
func (c CourseSummary) ID() (string, error) {
	if c.UUID == nil {
		return "", missing("UUID", "no ID found for this course")
	}
	return *c.UUID, nil
}

// ID returns the UUID of the looked-up course.
func (l CourseLookup) ID() (string, error) {
	if l.Course == nil {
		return "", missing("Course", "no course found with this slug")
	}
	if l.Course.UUID == nil {
		return "", missing("UUID", "no ID found for this course")
	}
	return *l.Course.UUID, nil
}

// ChapterList returns the chapters in API order.
func (c Course) ChapterList() ([]Chapter, error) {
	if c.Chapters == nil {
		return nil, missing("Chapters", "no chapters found in this course")
	}
	return *c.Chapters, nil
}

// TitleValue returns the chapter title.
func (c Chapter) TitleValue() (string, error) {
	if c.Title == nil {
		return "", missing("Title", "no title found for a chapter")
	}
	return *c.Title, nil
}

// LessonList returns the lessons in API order.
func (c Chapter) LessonList() ([]Lesson, error) {
	if c.Lessons == nil {
		return nil, missing("Lessons", "no lessons found in this chapter")
	}
	return *c.Lessons, nil
}

// ID returns the lesson UUID.
func (l Lesson) ID() (string, error) {
	if l.UUID == nil {
		return "", missing("UUID", "no UUID found for this lesson")
	}
	return *l.UUID, nil
}

// TitleValue returns the lesson title.
func (l Lesson) TitleValue() (string, error) {
	if l.Title == nil {
		return "", missing("Title", "no title found for a lesson")
	}
	return *l.Title, nil
}

// Data decodes the lesson's "LessonData*" object. When several keys carry
// the prefix the lexicographically smallest one is used.
func (e LessonEnvelope) Data() (LessonData, error) {
	if e.Lesson == nil {
		return LessonData{}, missing("Lesson", "no lesson found with this UUID")
	}

	keys := make([]string, 0, 1)
	for k := range e.Lesson {
		if strings.HasPrefix(k, LessonDataPrefix) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return LessonData{}, missing(LessonDataPrefix, "no lesson data found")
	}
	sort.Strings(keys)

	raw := e.Lesson[keys[0]]
	var data LessonData
	if err := json.Unmarshal(raw, &data); err != nil {
		// A non-string Readme or a non-object payload.
		var obj map[string]json.RawMessage
		if json.Unmarshal(raw, &obj) == nil {
			return LessonData{}, missing("Readme", "no readme found in lesson data")
		}
		return LessonData{}, fmt.Errorf("%w: %s is not an object: %v", ErrDecode, keys[0], err)
	}
	return data, nil
}

// ReadmeValue returns the readme text.
func (d LessonData) ReadmeValue() (string, error) {
	if d.Readme == nil {
		return "", missing("Readme", "no readme found in lesson data")
	}
	return *d.Readme, nil
}
