// ttfsampler - generate PDF sample sheets from TrueType/OpenType fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"seehuhn.de/go/ttfsampler/internal/buildinfo"
	"seehuhn.de/go/ttfsampler/internal/profile"
	"seehuhn.de/go/ttfsampler/internal/textenc"
	"seehuhn.de/go/ttfsampler/layout"
	"seehuhn.de/go/ttfsampler/pdfbackend"
	"seehuhn.de/go/ttfsampler/report"
	"seehuhn.de/go/ttfsampler/sampler"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

// errUsage is returned by parseArgs for command lines which cannot be
// used.  The message has already been printed.
var errUsage = errors.New("usage error")

// counter is a flag which counts how often it is given.
type counter int

func (c *counter) String() string   { return strconv.Itoa(int(*c)) }
func (c *counter) IsBoolFlag() bool { return true }

func (c *counter) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*c++
	}
	return nil
}

type options struct {
	cfg        *sampler.Config
	cpuprofile string
	memprofile string
}

func run(ctx context.Context, args []string, stderr io.Writer, getenv func(string) string) int {
	opt, err := parseArgs(args, stderr, getenv)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return 2
	}

	stopProfile, err := profile.Start(opt.cpuprofile, opt.memprofile)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	sink := report.NewWriterSink(stderr, opt.cfg.Verbosity)
	_, err = sampler.Run(ctx, opt.cfg, pdfbackend.New(), sink)
	if perr := stopProfile(); err == nil {
		err = perr
	}
	if ferr := sink.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		sink.Error(err.Error())
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer, getenv func(string) string) (*options, error) {
	fs := flag.NewFlagSet("ttfsampler", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var verbosity counter
	fs.Var(&verbosity, "v", "verbose output; repeat for more detail")
	allowBroken := fs.Bool("f", false, "skip broken and duplicate fonts instead of failing")
	noSort := fs.Bool("S", false, "do not sort the fonts; keep the command line order")
	sampleText := fs.String("t", "", "sample `text` to show in every font")
	encName := fs.String("encoding", "", "character `encoding` of the sample text (default from the locale)")
	fontSize := fs.Float64("s", 12, "font `size` in points")
	output := fs.String("o", "", "output PDF `file` (required)")
	listFile := fs.String("l", "", "read further font names from `file`, one per line")
	paper := fs.String("paper", "letter", "paper `size`: letter, a4 or a5")
	overflow := fs.String("overflow", "place", "`policy` for fonts too tall for a page: place or fail")
	configFile := fs.String("config", "", "read default settings from YAML `file`")
	cpuprofile := fs.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := fs.String("memprofile", "", "write memory profile to `file`")

	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "ttfsampler - generate PDF sample sheets from font files\n")
		fmt.Fprintf(w, "%s\n\n", buildinfo.Short("ttfsampler"))
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  ttfsampler [options] -o output.pdf <font.ttf>...\n\n")
		fmt.Fprintf(w, "Arguments:\n")
		fmt.Fprintf(w, "  font.ttf   one or more TrueType or OpenType font files\n\n")
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  ttfsampler -o fonts.pdf /usr/share/fonts/truetype/*/*.ttf\n")
		fmt.Fprintf(w, "  ttfsampler -f -v -t \"The quick brown fox\" -o fonts.pdf *.otf\n")
	}
	usageError := func(format string, args ...any) (*options, error) {
		fmt.Fprintf(stderr, "error: "+format+"\n\n", args...)
		fs.Usage()
		return nil, errUsage
	}

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}

	cfg := sampler.DefaultConfig()
	if *configFile != "" {
		err := sampler.LoadConfigFile(*configFile, cfg)
		if err != nil {
			return usageError("%v", err)
		}
	}

	// explicitly given flags override the config file
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			cfg.Verbosity = int(verbosity)
		case "f":
			cfg.AllowBrokenFonts = *allowBroken
		case "S":
			cfg.Sort = !*noSort
		case "s":
			cfg.FontSize = *fontSize
		case "paper":
			cfg.Paper = *paper
		case "overflow":
			p, err := layout.ParseOverflowPolicy(*overflow)
			if err != nil && setErr == nil {
				setErr = err
			}
			cfg.Overflow = p
		case "t":
			enc := textenc.Local(getenv)
			if *encName != "" {
				e, err := textenc.Lookup(*encName)
				if err != nil && setErr == nil {
					setErr = err
				}
				enc = e
			}
			if setErr != nil {
				return
			}
			text, err := textenc.Decode(*sampleText, enc)
			if err != nil {
				setErr = err
			}
			cfg.SampleText = text
		}
	})
	if setErr != nil {
		return usageError("%v", setErr)
	}
	cfg.Output = *output

	if *listFile != "" {
		names, err := readList(*listFile)
		if err != nil {
			return usageError("%v", err)
		}
		cfg.Inputs = append(cfg.Inputs, names...)
	}
	cfg.Inputs = append(cfg.Inputs, fs.Args()...)

	err = cfg.Validate()
	if err != nil {
		return usageError("%v", err)
	}

	return &options{
		cfg:        cfg,
		cpuprofile: *cpuprofile,
		memprofile: *memprofile,
	}, nil
}

// readList reads file names from a text file, one per line.
// Empty lines and lines starting with '#' are ignored.
func readList(fname string) ([]string, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	var res []string
	sc := bufio.NewScanner(fd)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res = append(res, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
