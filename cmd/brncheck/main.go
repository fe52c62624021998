// Command brncheck validates Korean business registration numbers.
//
// Numbers are taken from the arguments or, when there are none, from stdin,
// one per line. Each input produces one output line:
//
//	120-81-47521	120-81-47521	for_profit_corporate_hq
//	1208147520	ERROR	checksum_mismatch
//
// With -json every line is a JSON object instead. With -check-digit the inputs
// are nine-digit bodies and the output carries the computed check digit and
// the completed number. The exit status is 1 when any input was rejected and
// 2 on usage or configuration errors.
//
// Environment: APP_ENV, LOG_LEVEL, BRNCHECK_OUTPUT (text or json),
// BRNCHECK_GROUPED. A .env file in the working directory is loaded if present.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/kbrn/pkg/config"
	"github.com/dmitrymomot/kbrn/pkg/environment"
	"github.com/dmitrymomot/kbrn/pkg/logger"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "brncheck: %v\n", err)
		os.Exit(exitUsage)
	}
	ctx := context.Background()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, env.ToMap(os.Environ())))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, environ map[string]string) int {
	var cfg Config
	if err := config.Parse(&cfg, environ); err != nil {
		fmt.Fprintf(stderr, "brncheck: %v\n", err)
		return exitUsage
	}
	switch strings.ToLower(cfg.Output) {
	case outputText, outputJSON:
	default:
		fmt.Fprintf(stderr, "brncheck: unknown output %q\n", cfg.Output)
		return exitUsage
	}

	fset := flag.NewFlagSet("brncheck", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintln(stderr, "usage: brncheck [-json] [-grouped] [-check-digit] [number ...]")
		fset.PrintDefaults()
	}
	asJSON := fset.Bool("json", strings.EqualFold(cfg.Output, outputJSON), "print one JSON object per input")
	grouped := fset.Bool("grouped", cfg.Grouped, "print numbers as DDD-DD-DDDDD instead of ten digits")
	checkDigit := fset.Bool("check-digit", false, "treat inputs as nine-digit bodies and print the check digit")
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "brncheck: %v\n", err)
		return exitUsage
	}
	appEnv := environment.Parse(cfg.AppEnv)
	format := logger.FormatJSON
	if appEnv == environment.Development {
		format = logger.FormatText
	}
	log := logger.New(
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithOutput(stderr),
		logger.WithAttr(logger.Component("brncheck")),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	)
	ctx = environment.WithContext(ctx, appEnv)

	c := checker{grouped: *grouped, checkDigit: *checkDigit}
	out := newPrinter(stdout, *asJSON)

	invalid := 0
	handle := func(raw string) error {
		r := c.check(raw)
		if r.ok() {
			log.DebugContext(ctx, "accepted", logger.BRN("brn", r.brn))
		} else {
			invalid++
			log.WarnContext(ctx, "rejected",
				logger.BRNInput(raw),
				logger.ErrorKind(r.err),
			)
		}
		return out.print(r)
	}

	if fset.NArg() > 0 {
		for _, raw := range fset.Args() {
			if err := handle(raw); err != nil {
				log.ErrorContext(ctx, "write result", logger.Error(err))
				return exitUsage
			}
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := handle(line); err != nil {
				log.ErrorContext(ctx, "write result", logger.Error(err))
				return exitUsage
			}
		}
		if err := scanner.Err(); err != nil {
			log.ErrorContext(ctx, "read input", logger.Error(err))
			return exitUsage
		}
	}

	log.InfoContext(ctx, "done", slog.Int("invalid", invalid))
	if invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

type printer struct {
	w   io.Writer
	enc *json.Encoder
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	p := &printer{w: w}
	if asJSON {
		p.enc = json.NewEncoder(w)
		p.enc.SetEscapeHTML(false)
	}
	return p
}

func (p *printer) print(r result) error {
	if p.enc != nil {
		return p.enc.Encode(r)
	}
	_, err := fmt.Fprintln(p.w, r.text())
	return err
}
