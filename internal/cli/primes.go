package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiber-space/exhaustive/internal/chart"
	"github.com/fiber-space/exhaustive/internal/flows"
)

// PrimesOptions holds flags for the primes command.
type PrimesOptions struct {
	*RootOptions
	Max int
}

// NewPrimesCommand creates the primes command.
func NewPrimesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PrimesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "Search primes below a bound",
		Long: `Enumerate candidates in [2, max) and keep those the trial-division
flow does not reject. The search visits domains in reverse order, so
the primes print descending.

Examples:
  exhaustive primes
  exhaustive primes --max 50 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrimes(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Max, "max", 100, "exclusive upper bound of the candidate domain")

	return cmd
}

func runPrimes(opts *PrimesOptions, cmd *cobra.Command) error {
	if opts.Max < 3 {
		return WrapExitError(ExitCommandError, fmt.Sprintf("--max %d leaves an empty candidate domain", opts.Max), nil)
	}

	ch := chart.New()
	if err := ch.Register("primes", flows.Primes(opts.Max)); err != nil {
		return WrapExitError(ExitCommandError, "failed to register flow", err)
	}
	if err := ch.Create(); err != nil {
		return WrapExitError(ExitFailure, "enumeration failed", err)
	}

	primes := ch.Fetch("prime")
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(map[string]any{"max": opts.Max, "primes": primes})
	}

	lines := make([]string, 0, len(primes)+1)
	lines = append(lines, fmt.Sprintf("primes below %d (%d):", opts.Max, len(primes)))
	for _, p := range primes {
		lines = append(lines, fmt.Sprintf("%v", p))
	}
	return out.Success(lines)
}
