// Package readme pulls a lesson's readme out of the content API.
package readme

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_lesson_source.go -package=mocks vedtoob/internal/readme LessonSource

import (
	"context"
	"log/slog"

	"vedtoob/internal/bootdev"
	"vedtoob/internal/contextutil"
)

// LessonSource fetches a lesson document by id.
type LessonSource interface {
	Lesson(ctx context.Context, lessonID string) (*bootdev.LessonEnvelope, error)
}

// Extractor reads readme text from lesson documents.
type Extractor struct {
	src LessonSource
}

// NewExtractor creates a new Extractor.
func NewExtractor(src LessonSource) *Extractor {
	return &Extractor{src: src}
}

// Extract returns the raw readme of the lesson with the given id.
func (e *Extractor) Extract(ctx context.Context, lessonID string) (string, error) {
	envelope, err := e.src.Lesson(ctx, lessonID)
	if err != nil {
		return "", err
	}

	data, err := envelope.Data()
	if err != nil {
		return "", err
	}

	text, err := data.ReadmeValue()
	if err != nil {
		return "", err
	}

	// Title parses the whole readme; only done at debug level.
	if logger := contextutil.LoggerFromContext(ctx); logger.Enabled(ctx, slog.LevelDebug) {
		logger.DebugContext(ctx, "extracted readme",
			"lesson_id", lessonID, "title", Title([]byte(text)), "length", len(text))
	}
	return text, nil
}
