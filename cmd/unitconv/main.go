// Command unitconv parses quantities and converts them between units.
//
// Usage:
//
//	unitconv [-to UNIT] [-locale TAG] QUANTITY...
//	unitconv -list
//
// Examples:
//
//	unitconv -to mi "42.195 km"
//	unitconv -to °F "100 °C" "-40 °C"
//	unitconv -locale de -to km/h "10 m/s"
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/units"
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// run executes unitconv and returns the process exit code.
func run(args, environ []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(environ)
	if err != nil {
		fmt.Fprintf(stderr, "unitconv: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("unitconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		to     = fs.String("to", "", "convert to `unit` (symbol or expression)")
		locale = fs.String("locale", cfg.Locale, "format amounts for language `tag`")
		list   = fs.Bool("list", false, "list the units of the default catalog")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: unitconv [-to UNIT] [-locale TAG] QUANTITY...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	units.SetLogger(logger)
	defer units.SetLogger(nil)

	if *list {
		listUnits(stdout)
		return 0
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	tag, err := parseLocale(*locale)
	if err != nil {
		fmt.Fprintf(stderr, "unitconv: %v\n", err)
		return 2
	}

	p := units.NewParser(units.WithCacheSize(cfg.CacheSize))
	var target units.Unit
	if *to != "" {
		if target, err = p.ParseUnit(*to); err != nil {
			fmt.Fprintf(stderr, "unitconv: -to: %v\n", err)
			return 1
		}
	}

	for _, arg := range fs.Args() {
		q, err := p.Parse(arg)
		if err != nil {
			fmt.Fprintf(stderr, "unitconv: %v\n", err)
			return 1
		}
		if *to != "" {
			if q, err = q.In(target); err != nil {
				fmt.Fprintf(stderr, "unitconv: %s: %v\n", arg, err)
				return 1
			}
		}
		logger.Debug("converted", "input", arg, "amount", q.Amount(), "unit", q.Unit().Symbol())
		fmt.Fprintln(stdout, q.Format(tag))
	}
	return 0
}

// listUnits prints the default catalog as "symbol<TAB>dimensions".
func listUnits(w io.Writer) {
	for _, u := range units.DefaultCatalog().Units() {
		if u.Symbol() == "" {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", u.Symbol(), u.Dimensions())
	}
}
