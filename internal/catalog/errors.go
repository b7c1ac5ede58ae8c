package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a chapter or lesson number is outside its course.
	ErrOutOfRange = errors.New("out of range")
	// ErrCourseNotFound is returned when no course in the full list carries the slug.
	ErrCourseNotFound = errors.New("no course found with this slug")
)

// Units a RangeError can refer to.
const (
	UnitChapter = "chapter"
	UnitLesson  = "lesson"
)

// RangeError reports a chapter or lesson number that does not exist.
// Chapter is the requested chapter in both cases.
type RangeError struct {
	Unit    string
	Number  int
	Chapter int
	Course  string
}

func (e *RangeError) Error() string {
	if e.Unit == UnitLesson {
		return fmt.Sprintf("no lesson %d in chapter %d of course '%s'", e.Number, e.Chapter, e.Course)
	}
	return fmt.Sprintf("no chapter %d in course '%s'", e.Number, e.Course)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
