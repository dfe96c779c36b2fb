package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/pathfind"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// main is the entrypoint for the hillclimb command.
func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the parsed command-line settings.
type options struct {
	path      string
	reverse   bool
	heuristic bool
	maxClimb  int
	logLevel  slog.Level
	logFormat string
}

// parseFlags processes command-line arguments. It returns the options, a
// boolean indicating the program should exit cleanly, or an ExitError.
func parseFlags(args []string, output io.Writer) (*options, bool, error) {
	flagSet := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
hillclimb - fewest steps from the marked start, and from the best lowest square, to the summit.

Usage:
  hillclimb [options] [MAP_PATH]

Arguments:
  MAP_PATH
    Height map file. Reads stdin when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the height map file.")
	reverseFlag := flagSet.Bool("reverse", false, "Answer the lowest-square query with one reverse search.")
	heuristicFlag := flagSet.Bool("heuristic", false, "Guide the origin query with the Manhattan distance.")
	maxClimbFlag := flagSet.Int("max-climb", 1, "Largest elevation gain allowed per step.")
	logLevelFlag := flagSet.String("log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &options{
		path:      *inputFlag,
		reverse:   *reverseFlag,
		heuristic: *heuristicFlag,
		maxClimb:  *maxClimbFlag,
		logFormat: strings.ToLower(*logFormatFlag),
	}
	switch {
	case flagSet.NArg() > 1:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments %q", flagSet.Args()[1:])}
	case flagSet.NArg() == 1 && opts.path != "":
		return nil, false, &ExitError{Code: 2, Message: "give the map path either with -input or as an argument, not both"}
	case flagSet.NArg() == 1:
		opts.path = flagSet.Arg(0)
	}
	if err := opts.logLevel.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log level %q", *logLevelFlag)}
	}
	if opts.logFormat != "text" && opts.logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log format %q", *logFormatFlag)}
	}

	return opts, false, nil
}

// newLogger builds the process logger on errW.
func newLogger(opts *options, errW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: opts.logLevel}
	if opts.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(errW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(errW, handlerOpts))
}

// run encapsulates the command logic for easier testing and error handling.
func run(ctx context.Context, inR io.Reader, outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := parseFlags(args, outW)
	if err != nil || shouldExit {
		return err
	}
	logger := newLogger(opts, errW)

	in := inR
	if opts.path != "" {
		f, err := os.Open(opts.path)
		if err != nil {
			return fmt.Errorf("open height map: %w", err)
		}
		defer f.Close()
		in = f
	}
	logger.Debug("Reading height map.", "path", opts.path)

	climbOpts := []climb.Option{climb.WithLogger(logger), climb.WithMaxClimb(opts.maxClimb)}
	if opts.reverse {
		climbOpts = append(climbOpts, climb.WithReverseSweep())
	}
	if opts.heuristic {
		climbOpts = append(climbOpts, climb.WithHeuristic())
	}
	survey, err := climb.Read(in, climbOpts...)
	if err != nil {
		return err
	}

	for _, q := range []struct {
		label string
		query func(context.Context) (int, error)
	}{
		{"origin", survey.FromOrigin},
		{"lowest", survey.FromLowest},
	} {
		steps, err := q.query(ctx)
		switch {
		case errors.Is(err, pathfind.ErrUnreachable):
			fmt.Fprintf(outW, "%s: unreachable\n", q.label)
		case err != nil:
			return fmt.Errorf("%s query: %w", q.label, err)
		default:
			fmt.Fprintf(outW, "%s: %d\n", q.label, steps)
		}
	}
	return nil
}
