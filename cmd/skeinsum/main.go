// skeinsum prints or checks file digests computed with a configurable
// state width and output length.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"skeinsum/internal/config"
	"skeinsum/internal/engine"
	"skeinsum/internal/hasher"
	"skeinsum/internal/logging"
	"skeinsum/internal/metrics"
	"skeinsum/internal/produce"
	"skeinsum/internal/verify"
	"skeinsum/internal/version"
)

const progName = "skeinsum"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := config.DefaultOptions()
	var showHelp, showVersion bool

	flagSet := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}
	flagSet.SortFlags = false

	flagSet.IntVarP(&opts.StateWidth, "statesize", "s", config.DefaultStateWidth, "internal state size: 256, 512, or 1024")
	flagSet.IntVarP(&opts.OutputBits, "length", "l", 0, "output length in bits (default: state size)")
	flagSet.IntVar(&opts.OutputBits, "len", 0, "alias for --length")
	_ = flagSet.MarkHidden("len")
	flagSet.BoolVarP(&opts.Binary, "binary", "b", false, "read files in binary mode")
	flagSet.BoolVarP(&opts.Check, "check", "c", false, "read sums from the FILEs and check them")
	flagSet.BoolVarP(&opts.Text, "text", "t", false, "read files in text mode (default)")
	flagSet.StringVar(&opts.Engine, "engine", engine.Default, "digest engine")
	flagSet.BoolVar(&opts.Flags.Quiet, "quiet", false, "don't print OK for each verified file")
	flagSet.BoolVar(&opts.Flags.Status, "status", false, "don't output anything, status code shows success")
	flagSet.BoolVarP(&opts.Flags.Warn, "warn", "w", false, "warn about improperly formatted checksum lines")
	flagSet.BoolVar(&opts.Flags.Strict, "strict", false, "exit non-zero for improperly formatted checksum lines")
	flagSet.BoolVar(&opts.Debug, "debug", false, "write debug logs to stderr")
	flagSet.BoolVarP(&showHelp, "help", "h", false, "show this help and exit")
	flagSet.BoolVar(&showVersion, "version", false, "show version number and exit")

	if err := flagSet.Parse(args); err != nil {
		return fail(stderr, config.UsageError(err))
	}

	if showHelp {
		printHelp(stdout)
		return 0
	}
	if showVersion {
		if opts.Debug {
			fmt.Fprintln(stdout, version.Full(progName))
		} else {
			fmt.Fprintln(stdout, version.Line(progName))
		}
		return 0
	}

	opts.LengthSet = flagSet.Changed("length") || flagSet.Changed("len")
	opts.Files = flagSet.Args()

	v, err := opts.Validate()
	if err != nil {
		return fail(stderr, err)
	}

	logger := logging.New(stderr, opts.Debug)
	logger.Debug("configuration",
		"engine", v.Name,
		"state_width", v.Digest.StateWidth,
		"output_bits", v.Digest.OutputBits,
		"check", v.Check,
		"mode", v.Mode.String(),
	)

	stats := &metrics.Stats{}
	stats.Start()
	defer func() {
		stats.Stop()
		metrics.Log(logger, stats)
	}()

	if v.Check {
		verify.Verify(v.Files, verify.Options{
			Engine:    v.Engine,
			Digest:    v.Digest,
			LengthSet: v.LengthSet,
			Flags:     v.Flags,
			Stdin:     stdin,
			Stdout:    stdout,
			Stderr:    stderr,
			Logger:    logger,
		}, stats)
		if stats.CheckFailed(v.Flags.Strict) {
			return 1
		}
		return 0
	}

	h, err := hasher.New(v.Engine, v.Digest,
		hasher.WithStdin(stdin),
		hasher.WithOnRead(stats.AddBytes),
		hasher.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to initialize digest engine for parameters %d, %d: %v\n",
			progName, v.Digest.StateWidth, v.Digest.OutputBits, err)
		return 1
	}

	cfg := h.Config()
	logger.Debug("digest engine ready", "engine", v.Name, "state_width", cfg.StateWidth, "output_bits", cfg.OutputBits)

	produce.Produce(h, v.Files, produce.Options{
		Mode:   v.Mode,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}, stats)
	if stats.ProduceFailed() {
		return 1
	}
	return 0
}

// fail prints a configuration error with its hint and returns the exit
// status for it.
func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "%s: %v\n", progName, err)
	var ce *config.Error
	if errors.As(err, &ce) && ce.Hint != "" {
		fmt.Fprintln(w, ce.Hint)
	}
	return 1
}
