package main

import (
	"fmt"
	"io"
	"strings"

	"skeinsum/internal/engine"
)

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `Usage: %[1]s [OPTIONS]... [FILE]...
Print or check Skein checksums.
With no FILE, or when FILE is -, read standard input.

  -s, --statesize=SIZE      Use internal state size SIZE, one of
                            256, 512, or 1024 (default 512)
  -l, --length=LEN          Use output length LEN (default, equals
                            state size).
  -b, --binary              Read files in binary mode.
  -c, --check               Read Skein sums from the FILEs and check them.
  -t, --text                Read files in text mode (default).
      --engine=NAME         Digest engine, one of %[2]s
                            (default %[3]s).

The following options are used when checking sums:
      --quiet               Don't print OK for each successfully verified file.
      --status              Don't output anything, status code shows success.
  -w, --warn                Warn about improperly formatted checksum lines.
      --strict              Exit non-zero for improperly formatted checksum lines.

Sum files do not record the state size or engine. Pass the same
--statesize and --engine to --check that produced the sums, or every
line reports FAILED. The output length is taken from each checksum
unless --length is given.

Other options:
      --debug               Write debug logs to standard error.
      --help                Show this help and exit.
      --version             Show version number and exit.
`, progName, strings.Join(engine.Names(), ", "), engine.Default)
}
