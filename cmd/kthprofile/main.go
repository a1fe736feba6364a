package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kth-tools/kthprofile/internal/config"
	"github.com/kth-tools/kthprofile/internal/ctxlog"
	"github.com/kth-tools/kthprofile/internal/logging"
	"github.com/kth-tools/kthprofile/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(config.Default(), stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// newRootCmd builds the kthprofile command. Lookups write to stdout, logs and
// usage errors to stderr.
func newRootCmd(cfg config.Config, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kthprofile NAME...",
		Short:   "Look up people in the KTH profile directory",
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				printUsage(cmd.ErrOrStderr(), cmd)
				return err
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger := logging.New(level, stderr)
			ctx := ctxlog.WithLogger(cmd.Context(), logger)

			// Per-identifier failures are reported on stdout and never
			// change the exit status.
			lookupAll(ctx, stdout, client.New(cfg), args)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level (debug, info, warn, error)")
	_ = cmd.Flags().MarkHidden("log-level")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printHelp(c.OutOrStdout(), c)
	})
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		printUsage(c.ErrOrStderr(), c)
		return err
	})
	return cmd
}
