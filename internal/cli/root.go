// Package cli implements the vedtoob commands using Cobra.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"vedtoob/internal/catalog"
	"vedtoob/internal/contextutil"
	"vedtoob/internal/readme"
	"vedtoob/internal/render"
)

// Version is set at build time with -ldflags "-X vedtoob/internal/cli.Version=...".
var Version = "dev"

// Deps holds the collaborators the commands run against.
type Deps struct {
	Resolver   *catalog.Resolver
	Extractor  *readme.Extractor
	Prettifier *render.Prettifier
	Printer    *render.Printer
	Logger     *slog.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand(deps *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:     "vedtoob",
		Short:   "View Boot.dev lesson readmes in the terminal",
		Version: Version,
		Long: `vedtoob fetches a lesson from the Boot.dev course catalog, reflows its readme
to a fixed width with pandoc and prints it with syntax highlighting.

Lessons are addressed by course slug plus 1-based chapter and lesson numbers:
  vedtoob list-courses
  vedtoob list-chapters -c learn-go
  vedtoob list-lessons -c learn-go -p 2
  vedtoob show -c learn-go -p 2 -l 3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := deps.Logger
			if logger == nil {
				logger = slog.Default()
			}
			cmd.SetContext(contextutil.WithLogger(ctx, logger.With("command", cmd.Name())))
		},
	}

	root.AddCommand(
		newShowCommand(deps),
		newListCoursesCommand(deps),
		newListChaptersCommand(deps),
		newListLessonsCommand(deps),
	)

	return root
}

// positive validates a 1-based chapter or lesson flag.
func positive(flag string, n int) error {
	if n < 1 {
		return fmt.Errorf("--%s must be 1 or greater, got %d", flag, n)
	}
	return nil
}
