package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vedtoob/internal/catalog"
	"vedtoob/internal/render"
)

func newListCoursesCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list-courses",
		Short: "List the slugs of all available courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := deps.Resolver.ListCourses(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get course slugs: %w", err)
			}
			if err := deps.Printer.Print(formatCourses(courses), render.TOML); err != nil {
				return fmt.Errorf("failed to print output: %w", err)
			}
			return nil
		},
	}
}

func newListChaptersCommand(deps *Deps) *cobra.Command {
	var course string

	cmd := &cobra.Command{
		Use:   "list-chapters",
		Short: "List the chapters of a given course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chapters, err := deps.Resolver.ListChapters(cmd.Context(), course)
			if err != nil {
				return fmt.Errorf("failed to get chapters: %w", err)
			}
			if err := deps.Printer.Print(formatNumbered(chapters), render.YAML); err != nil {
				return fmt.Errorf("failed to print output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&course, "course", "c", "", "course slug (required)")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}

func newListLessonsCommand(deps *Deps) *cobra.Command {
	var (
		course  string
		chapter int
	)

	cmd := &cobra.Command{
		Use:   "list-lessons",
		Short: "List the lessons in a given course chapter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := positive("chapter", chapter); err != nil {
				return err
			}
			lessons, err := deps.Resolver.ListLessons(cmd.Context(), course, chapter)
			if err != nil {
				return fmt.Errorf("failed to get lessons: %w", err)
			}
			if err := deps.Printer.Print(formatNumbered(lessons), render.YAML); err != nil {
				return fmt.Errorf("failed to print output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&course, "course", "c", "", "course slug (required)")
	cmd.Flags().IntVarP(&chapter, "chapter", "p", 0, "chapter number, 1-based (required)")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("chapter")

	return cmd
}

// formatCourses renders one `slug = "title"` line per course.
func formatCourses(courses []catalog.CourseEntry) string {
	var b strings.Builder
	for _, c := range courses {
		fmt.Fprintf(&b, "%s = %s\n", c.Slug, strconv.Quote(c.Title))
	}
	return b.String()
}

// formatNumbered renders one `N: title` line per entry, numbered from 1.
func formatNumbered(titles []string) string {
	var b strings.Builder
	for i, title := range titles {
		fmt.Fprintf(&b, "%d: %s\n", i+1, title)
	}
	return b.String()
}
