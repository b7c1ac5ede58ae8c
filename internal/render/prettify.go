// Package render reflows lesson text through an external converter and
// writes highlighted output to the terminal.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"vedtoob/internal/contextutil"
)

var (
	// ErrConverter is returned when the converter cannot be started or exits non-zero.
	ErrConverter = errors.New("converter failed")
	// ErrInvalidOutput is returned when the converter output is not valid UTF-8 text.
	ErrInvalidOutput = errors.New("converter output is not valid text")
)

// DefaultColumns is the wrap width used when none is configured.
const DefaultColumns = 80

// Prettifier reflows markdown to a fixed width with a pandoc-compatible converter.
type Prettifier struct {
	Converter string
	Columns   int
}

// NewPrettifier creates a Prettifier. A non-positive width means DefaultColumns.
func NewPrettifier(converter string, columns int) *Prettifier {
	if columns <= 0 {
		columns = DefaultColumns
	}
	return &Prettifier{
		Converter: converter,
		Columns:   columns,
	}
}

// Args returns the converter arguments for an input file.
func (p *Prettifier) Args(inputPath string) []string {
	return []string{inputPath, "-t", "markdown", fmt.Sprintf("--columns=%d", p.Columns)}
}

// CheckConverter reports whether the converter binary can be found.
func (p *Prettifier) CheckConverter() error {
	if _, err := exec.LookPath(p.Converter); err != nil {
		return fmt.Errorf("%w: missing required binary %q in PATH: %v", ErrConverter, p.Converter, err)
	}
	return nil
}

// Prettify writes raw to a temporary file, runs the converter on it and
// returns the converter's standard output. The file is removed before
// Prettify returns.
func (p *Prettifier) Prettify(ctx context.Context, raw string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	input, err := os.CreateTemp("", "vedtoob-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := input.Name()
	defer func() {
		_ = os.Remove(path)
	}()

	if _, err := input.WriteString(raw); err != nil {
		_ = input.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := input.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, p.Converter, p.Args(path)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: failed to call %s: %v: %s", ErrConverter, p.Converter, err, msg)
		}
		return "", fmt.Errorf("%w: failed to call %s: %v", ErrConverter, p.Converter, err)
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", ErrInvalidOutput
	}

	logger.DebugContext(ctx, "prettified readme",
		"converter", p.Converter, "columns", p.Columns, "in", len(raw), "out", stdout.Len())
	return stdout.String(), nil
}
