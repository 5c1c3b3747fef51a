package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/infra/logger"
	"github.com/aalvaropc/pizzadough/internal/ui/tui"
	"github.com/aalvaropc/pizzadough/internal/usecase"
)

type rootOptions struct {
	debug   bool
	cleanup func() error
}

func (o *rootOptions) setupLogging(root string) {
	if o.cleanup != nil || root == "" {
		return
	}
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: o.debug})
	if err == nil {
		o.cleanup = cleanup
	}
}

func (o *rootOptions) closeLogging() {
	if o.cleanup != nil {
		_ = o.cleanup()
		o.cleanup = nil
	}
}

func Execute() {
	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	err := cmd.Execute()
	opts.closeLogging()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pizzadough",
		Short:         "pizzadough: plan pizza dough ingredients and fermentation times",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// Logs only go to an existing workspace unless --debug asks for them.
			if root, ok := findWorkspace(); ok {
				opts.setupLogging(root)
			} else if opts.debug {
				opts.setupLogging(workingDir())
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace("")
			if err != nil {
				return err
			}

			defaults, err := ws.defaultParams()
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Planner: usecase.NewPlanDough(ws.profiles,
					usecase.WithPlanStore(ws.plans),
					usecase.WithLogger(logger.Named("usecase")),
				),
				Profiles:    ws.profiles,
				Root:        ws.root,
				Defaults:    defaults,
				ProfilePath: ws.defaultProfile(),
				SavePlans:   ws.cfg.Plans.Save,
				Logger:      logger.Named("tui"),
				Debug:       opts.debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .pizzadough/logs/pizzadough.log")

	cmd.AddCommand(
		planCmd(),
		validateCmd(),
		profileCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// printError writes err for a person: validation failures become one line per
// problem, other errors print as-is.
func printError(w io.Writer, err error) {
	if problems := domain.Problems(err); len(problems) > 0 {
		fmt.Fprintln(w, "Error: invalid parameters")
		for _, p := range problems {
			fmt.Fprintf(w, "  - %s\n", p)
		}
		return
	}
	fmt.Fprintf(w, "Error: %s\n", strings.TrimSpace(err.Error()))
}
