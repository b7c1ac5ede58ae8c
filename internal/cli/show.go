package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"vedtoob/internal/readme"
	"vedtoob/internal/render"
)

type showOptions struct {
	course   string
	chapter  int
	lesson   int
	lessonID string
	outline  bool
	raw      bool
}

func newShowCommand(deps *Deps) *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the readme for a given lesson",
		Example: `  vedtoob show --course learn-go --chapter 2 --lesson 3
  vedtoob show --id 2c7c4ac4-8ad7-4bd2-9c4b-7b3c1c9b7d3e`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, deps, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.course, "course", "c", "", "course slug")
	cmd.Flags().IntVarP(&opts.chapter, "chapter", "p", 0, "chapter number (1-based)")
	cmd.Flags().IntVarP(&opts.lesson, "lesson", "l", 0, "lesson number (1-based)")
	cmd.Flags().StringVar(&opts.lessonID, "id", "", "lesson UUID, instead of course/chapter/lesson")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "print the readme's heading outline instead of the readme")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "print the readme without reflowing it")

	cmd.MarkFlagsRequiredTogether("course", "chapter", "lesson")
	cmd.MarkFlagsOneRequired("course", "id")
	cmd.MarkFlagsMutuallyExclusive("id", "course")
	cmd.MarkFlagsMutuallyExclusive("id", "chapter")
	cmd.MarkFlagsMutuallyExclusive("id", "lesson")

	return cmd
}

func runShow(cmd *cobra.Command, deps *Deps, opts *showOptions) error {
	ctx := cmd.Context()

	lessonID := opts.lessonID
	if lessonID != "" {
		parsed, err := uuid.Parse(lessonID)
		if err != nil {
			return fmt.Errorf("invalid lesson id %q: %w", lessonID, err)
		}
		lessonID = parsed.String()
	} else {
		if err := positive("chapter", opts.chapter); err != nil {
			return err
		}
		if err := positive("lesson", opts.lesson); err != nil {
			return err
		}
	}

	prettify := !opts.raw && !opts.outline
	if prettify {
		// Fail before any network traffic when the converter is missing.
		if err := deps.Prettifier.CheckConverter(); err != nil {
			return fmt.Errorf("failed to prettify readme: %w", err)
		}
	}

	if lessonID == "" {
		id, err := deps.Resolver.ResolveLessonID(ctx, opts.course, opts.chapter, opts.lesson)
		if err != nil {
			return fmt.Errorf("failed to get lesson ID: %w", err)
		}
		lessonID = id
	}

	text, err := deps.Extractor.Extract(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("failed to get lesson readme: %w", err)
	}

	if opts.outline {
		if err := deps.Printer.Print(formatOutline(readme.Outline([]byte(text))), render.YAML); err != nil {
			return fmt.Errorf("failed to print output: %w", err)
		}
		return nil
	}

	if prettify {
		text, err = deps.Prettifier.Prettify(ctx, text)
		if err != nil {
			return fmt.Errorf("failed to prettify readme: %w", err)
		}
	}

	if err := deps.Printer.Print(text, render.Markdown); err != nil {
		return fmt.Errorf("failed to print output: %w", err)
	}
	return nil
}

// formatOutline renders headings as a nested YAML-style list.
func formatOutline(headings []readme.Heading) string {
	var b strings.Builder
	for _, h := range headings {
		depth := h.Level - 1
		if depth < 0 {
			depth = 0
		}
		fmt.Fprintf(&b, "%s- %s\n", strings.Repeat("  ", depth), h.Text)
	}
	return b.String()
}
