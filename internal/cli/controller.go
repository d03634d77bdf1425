package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiber-space/exhaustive/internal/chart"
	"github.com/fiber-space/exhaustive/internal/flows"
)

// ControllerOptions holds flags for the controller command.
type ControllerOptions struct {
	*RootOptions
	CountOnly bool
}

// NewControllerCommand creates the controller command.
func NewControllerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ControllerOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "controller [machine.yaml]",
		Short: "Enumerate accepted traces of a state machine",
		Long: `Enumerate every accepted trace of a finite-state transition table.

Without an argument the embedded door-controller table is used; pass a
YAML file to enumerate a custom machine.

Examples:
  exhaustive controller
  exhaustive controller --count
  exhaustive controller ./machine.yaml --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runController(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.CountOnly, "count", false, "print only the trace count")

	return cmd
}

func runController(opts *ControllerOptions, args []string, cmd *cobra.Command) error {
	machine := flows.DefaultDoorMachine()
	if len(args) == 1 {
		m, err := flows.LoadMachine(args[0])
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load machine", err)
		}
		machine = m
	}

	ch := chart.New()
	if err := ch.Register(machine.Name, flows.Controller(machine)); err != nil {
		return WrapExitError(ExitCommandError, "failed to register flow", err)
	}
	if err := ch.Create(); err != nil {
		return WrapExitError(ExitFailure, "enumeration failed", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		data := map[string]any{
			"machine": machine.Name,
			"traces":  ch.Len(),
		}
		if !opts.CountOnly {
			data["trace_list"] = renderCollection(ch.Collection())
		}
		return out.Success(data)
	}

	lines := []string{fmt.Sprintf("%s: %d accepted traces", machine.Name, ch.Len())}
	if !opts.CountOnly {
		lines = append(lines, renderCollection(ch.Collection())...)
	}
	return out.Success(lines)
}
