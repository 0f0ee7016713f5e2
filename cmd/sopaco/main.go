// Command sopaco runs Ant Colony Optimization over a Sequential Ordering
// Problem instance (spec.md §6).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	_ "github.com/katalvlaran/sopaco/colony/sequential"
	_ "github.com/katalvlaran/sopaco/colony/workgroup"

	"github.com/katalvlaran/sopaco/antparams"
	"github.com/katalvlaran/sopaco/orchestrator"
	"github.com/katalvlaran/sopaco/profiler"
	"github.com/katalvlaran/sopaco/registry"
	"github.com/katalvlaran/sopaco/report"
	"github.com/katalvlaran/sopaco/rng"
	"github.com/katalvlaran/sopaco/sopfile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sopaco", flag.ContinueOnError)
	fs.SetOutput(stderr)

	help := fs.Bool("help", false, "Prints this help message")
	fs.BoolVar(help, "h", false, "Prints this help message")
	list := fs.Bool("list", false, "List all optimization variants available")
	fs.BoolVar(list, "l", false, "List all optimization variants available")
	colonyFlag := fs.String("colony", "", "Selects the colony to run; variant arguments follow a colon (name:args)")
	fs.StringVar(colonyFlag, "c", "", "Selects the colony to run; variant arguments follow a colon (name:args)")
	rounds := fs.Uint("rounds", 500, "How many rounds of optimization to run")
	fs.UintVar(rounds, "r", 500, "How many rounds of optimization to run")
	seed := fs.String("seed", "thomas", "Controls the random-number-generator seed")
	output := fs.String("output", "", "CSV output path")
	fs.StringVar(output, "o", "", "CSV output path")
	appendMode := fs.Bool("append", false, "Append to the CSV output file instead of overwriting it")
	fs.BoolVar(appendMode, "a", false, "Append to the CSV output file instead of overwriting it")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	if *help {
		fmt.Fprintf(stdout, "Ant Colony Optimization -- Sequential Ordering Problem\n")
		fmt.Fprintf(stdout, "Usage:\n  sopaco [flags] <problem.sop>\n\nFlags:\n")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		return 0
	}

	if *list {
		fmt.Fprintf(stdout, "Available optimization variants:\n")
		for _, name := range registry.List() {
			fmt.Fprintf(stdout, "  %s\n", name)
		}
		return 0
	}

	positional := fs.Args()
	if len(positional) != 1 {
		word := "Too many"
		if len(positional) == 0 {
			word = "Not enough"
		}
		fmt.Fprintf(stderr, "%s files provided\nSee --help for more information\n", word)
		return 1
	}

	variantName, variantArgs := splitColonyIdentifier(*colonyFlag)
	factory, err := registry.Lookup(variantName)
	if err != nil {
		fmt.Fprintf(stderr, "Unknown colony identifier: %q\n", variantName)
		return 1
	}

	prob, err := sopfile.Load(positional[0])
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}

	params := antparams.New(
		antparams.WithRandomSeed(rng.HashSeedString(*seed)),
		antparams.WithVariantArgs(variantArgs),
	)
	if err := params.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}

	var prof profiler.Profiler
	engine, err := factory(prob, params, &prof)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}

	log.Info().Str("variant", variantName).Int("n", prob.N()).Uint("rounds", *rounds).Msg("starting optimization")

	res, err := orchestrator.Run(context.Background(), engine, *rounds, &prof)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}

	summary := report.Summary{
		Variant:     variantName,
		VariantArgs: variantArgs,
		Problem:     positional[0],
		Timestamp:   nowRFC3339(),
		Rounds:      *rounds,
		BestLength:  res.BestRouteLength,
		ScoreCap:    prob.LowerBound,
		Prof:        &prof,
	}

	if *output == "" {
		return writeHumanReport(stdout, summary)
	}
	return writeCSVReport(*output, *appendMode, summary, stderr)
}

func splitColonyIdentifier(s string) (name, args string) {
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return s, ""
}

func writeHumanReport(w io.Writer, s report.Summary) int {
	if err := report.WriteHuman(w, s); err != nil {
		return 1
	}
	return 0
}

func writeCSVReport(path string, appendMode bool, s report.Summary, stderr io.Writer) int {
	writeHeader := !appendMode
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
		if _, err := os.Stat(path); err != nil {
			writeHeader = true
		}
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}
	defer f.Close()

	if err := report.WriteCSV(f, writeHeader, s); err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}
	return 0
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
