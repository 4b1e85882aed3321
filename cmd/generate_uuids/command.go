package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/camuuid/category"
	"github.com/viant/camuuid/generator"
	"github.com/viant/camuuid/tracing"
)

const (
	name    = "generate_uuids"
	version = "0.1.0"
)

const longHelp = `Generates camera session UUIDs that collide with none issued before.

Arguments starting with - are read as flags; put -- in front of the
positional arguments to pass such a value as the count.`

// errUsage marks failures that are answered with the usage message.
var errUsage = errors.New("invalid arguments")

func run(args []string, stdout, stderr io.Writer, options ...generator.Option) int {
	out := newConsole(stdout)
	command := newCommand(out, options...)
	command.SetArgs(args)
	command.SetOut(stdout)
	command.SetErr(stderr)

	if err := command.Execute(); err != nil {
		out.Failed(err)
		if errors.Is(err, errUsage) {
			_ = command.Usage()
		}
		return 1
	}
	return 0
}

func newCommand(out *console, options ...generator.Option) *cobra.Command {
	cfg := generator.DefaultConfig()
	command := &cobra.Command{
		Use:           name + " <count> <" + joinNames() + "> [<directory>]",
		Short:         "Generates camera session UUIDs that collide with none issued before",
		Long:          longHelp,
		Version:       version,
		Args:          checkArgCount,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(command *cobra.Command, args []string) error {
			count, err := parseCount(args[0])
			if err != nil {
				return err
			}
			cat, err := category.Parse(args[1])
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}
			if len(args) == 3 {
				cfg.Directory = args[2]
			}

			if cfg.TraceFile != "" {
				if err := tracing.Init(name, version, cfg.TraceFile); err != nil {
					return fmt.Errorf("failed to initialise tracing: %w", err)
				}
				defer func() { _ = tracing.Shutdown(command.Context()) }()
			}

			srv, err := generator.NewFromConfig(cfg, append([]generator.Option{generator.WithListener(out)}, options...)...)
			if err != nil {
				return err
			}
			_, err = srv.Run(command.Context(), cfg.Request(count, cat))
			return err
		},
	}
	command.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	flags := command.Flags()
	flags.BoolVar(&cfg.AllCategories, "all-categories", false, "check collisions against the record files of every category")
	flags.BoolVar(&cfg.LocalTime, "local-time", false, "date the record file in local time instead of UTC")
	flags.StringVar(&cfg.TraceFile, "trace-file", "", "write OpenTelemetry spans of the run to this file")
	return command
}

func checkArgCount(_ *cobra.Command, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: expected 2 or 3 arguments, got %d", errUsage, len(args))
	}
	return nil
}

func parseCount(arg string) (int, error) {
	count, err := strconv.ParseInt(arg, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: count %s is out of range", errUsage, arg)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: count %q is not a number", errUsage, arg)
	}
	if count < 1 {
		return 0, fmt.Errorf("%w: count must be positive, got %d", errUsage, count)
	}
	return int(count), nil
}

func joinNames() string {
	return strings.Join(category.Names(), " | ")
}
