package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiber-space/exhaustive/internal/binding"
	"github.com/fiber-space/exhaustive/internal/flows"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the example chart and query it",
		Long: `Run the three example flows to exhaustion, print the aggregated
assignments, then print the fix(x=1, y=0) and filter(x=1, y=0) views
to contrast soft and hard constraint application.

Examples:
  exhaustive demo
  exhaustive demo --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	return cmd
}

func runDemo(opts *DemoOptions, cmd *cobra.Command) error {
	ch, err := flows.ExampleChart()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build example chart", err)
	}
	if err := ch.Create(); err != nil {
		return WrapExitError(ExitFailure, "enumeration failed", err)
	}

	constraints := binding.Record{"x": 1, "y": 0}
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if opts.Format == "json" {
		return out.Success(map[string]any{
			"assignments": renderCollection(ch.Collection()),
			"fix":         renderCollection(ch.Fix(constraints).Collection()),
			"filter":      renderCollection(ch.Filter(constraints).Collection()),
		})
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("assignments (%d):", ch.Len()))
	lines = append(lines, renderCollection(ch.Collection())...)
	lines = append(lines, "", "fix x=1, y=0:")
	lines = append(lines, renderCollection(ch.Fix(constraints).Collection())...)
	lines = append(lines, "", "filter x=1, y=0:")
	lines = append(lines, renderCollection(ch.Filter(constraints).Collection())...)
	return out.Success(lines)
}
