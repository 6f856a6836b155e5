// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ezrec/opsolve/cpu"
	"github.com/ezrec/opsolve/logging"
	"github.com/ezrec/opsolve/solver"
	"github.com/ezrec/opsolve/trace"
)

const (
	EXIT_FAILURE       = 1 // Any other failure.
	EXIT_PARSE         = 2 // Malformed sample, program or listing input.
	EXIT_UNSATISFIABLE = 3 // The samples do not determine an assignment.
)

// exitCode classifies a command failure.
func exitCode(err error) int {
	var traceSyntax *trace.ErrSyntax
	var cpuSyntax *cpu.ErrSyntax

	switch {
	case errors.Is(err, solver.ErrUnsatisfiableAssignment):
		return EXIT_UNSATISFIABLE
	case errors.As(err, &traceSyntax), errors.As(err, &cpuSyntax):
		return EXIT_PARSE
	default:
		return EXIT_FAILURE
	}
}

// options are shared by every subcommand.
type options struct {
	verbose bool
	logger  *log.Logger
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "opsolve",
		Short:         "Deduce opcode numbering from execution samples, and run programs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.logger == nil {
				opts.logger = logging.NewLogger()
			}
			// OPSOLVE_LOG_LEVEL=debug implies --verbose.
			if logging.IsDebug() {
				opts.verbose = true
			}
			if opts.verbose {
				opts.logger.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")

	root.AddCommand(
		newCountCmd(opts),
		newMatchCmd(opts),
		newSolveCmd(opts),
		newRunCmd(opts),
		newExecCmd(opts),
		newDayCmd(opts),
	)

	return root
}

func main() {
	opts := &options{}
	err := newRootCmd(opts).Execute()
	if err != nil {
		if opts.logger == nil {
			opts.logger = logging.NewLogger()
		}
		opts.logger.Error(err)
		os.Exit(exitCode(err))
	}
}
