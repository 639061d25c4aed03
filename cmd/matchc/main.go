package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	merrors "github.com/rjooske/match-transformer/internal/errors"
	"github.com/rjooske/match-transformer/internal/dtree"
	"github.com/rjooske/match-transformer/internal/evaltree"
	"github.com/rjooske/match-transformer/internal/fixtures"
	"github.com/rjooske/match-transformer/internal/repl"
	"github.com/rjooske/match-transformer/internal/schema"
)

var (
	Version = "dev"
	Commit  = "unknown"

	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		jsonFlag    = flag.Bool("json", false, "Emit diagnostics as JSON")
		compactFlag = flag.Bool("compact", false, "Compact JSON output (with -json)")
		heuristic   = flag.String("heuristic", "fewest-minima", "Compiler heuristic: fewest-minima or random")
		seed        = flag.Int64("seed", 0, "Random seed, used when -heuristic=random")
	)

	flag.Parse()
	schema.SetCompactMode(*compactFlag)

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	h, err := resolveHeuristic(*heuristic, *seed)
	if err != nil {
		reportFatal(err, *jsonFlag)
	}

	switch cmd := flag.Arg(0); cmd {
	case "compile":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing fixture file argument\n", red("Error"))
			fmt.Println("Usage: matchc compile <fixture.yaml>")
			os.Exit(1)
		}
		runCompile(flag.Arg(1), h, *jsonFlag)

	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing fixture file argument\n", red("Error"))
			fmt.Println("Usage: matchc check <fixture.yaml> [value.yaml]")
			os.Exit(1)
		}
		var valuePath string
		if flag.NArg() >= 3 {
			valuePath = flag.Arg(2)
		}
		runCheck(flag.Arg(1), valuePath, h, *jsonFlag)

	case "repl":
		session := repl.New()
		session.SetHeuristic(h)
		session.Start(os.Stdout)

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), cmd)
		printHelp()
		os.Exit(1)
	}
}

func resolveHeuristic(name string, seed int64) (dtree.Heuristic, error) {
	switch name {
	case "", "fewest-minima":
		return dtree.FewestMinimaHeuristic{}, nil
	case "random":
		return dtree.NewRandomHeuristic(seed), nil
	default:
		return nil, merrors.WrapReport(merrors.New(merrors.CLI001, fmt.Sprintf("unknown heuristic %q", name), nil))
	}
}

func runCompile(path string, h dtree.Heuristic, asJSON bool) {
	f, err := fixtures.Load(path)
	if err != nil {
		reportFatal(err, asJSON)
	}
	tree := f.Compile(h)

	if asJSON {
		out, err := schema.MarshalDeterministic(map[string]any{
			"schema": schema.TreeV1,
			"tree":   tree.String(),
		})
		if err != nil {
			reportFatal(err, asJSON)
		}
		formatted, err := schema.FormatJSON(out)
		if err != nil {
			reportFatal(err, asJSON)
		}
		fmt.Println(string(formatted))
		return
	}

	fmt.Println(tree.String())
}

// runCheck compiles the fixture at path. With no valuePath it runs the
// fixture's own embedded checks list; with one it evaluates that single
// standalone value against the compiled tree and prints the dispatch
// result, the demo harness for the fixture scenarios.
func runCheck(path, valuePath string, h dtree.Heuristic, asJSON bool) {
	f, err := fixtures.Load(path)
	if err != nil {
		reportFatal(err, asJSON)
	}
	tree := f.Compile(h)

	if valuePath == "" {
		if err := f.RunChecks(tree); err != nil {
			reportFatal(err, asJSON)
		}
		if asJSON {
			out, _ := schema.MarshalDeterministic(map[string]any{"schema": schema.ErrorV1, "ok": true, "checks": len(f.Checks)})
			formatted, _ := schema.FormatJSON(out)
			fmt.Println(string(formatted))
			return
		}
		fmt.Printf("%s %d check(s) passed\n", green("OK"), len(f.Checks))
		return
	}

	value, err := fixtures.LoadValue(valuePath)
	if err != nil {
		reportFatal(err, asJSON)
	}
	result := evaltree.Eval(tree, value)

	if asJSON {
		out, _ := schema.MarshalDeterministic(map[string]any{
			"schema":    schema.ErrorV1,
			"fail":      result.Fail,
			"caseIndex": result.CaseIndex,
		})
		formatted, _ := schema.FormatJSON(out)
		fmt.Println(string(formatted))
		return
	}
	if result.Fail {
		fmt.Printf("%s fail\n", yellow("->"))
		return
	}
	fmt.Printf("%s success(%d)\n", green("->"), result.CaseIndex)
}

func reportFatal(err error, asJSON bool) {
	if rep, ok := merrors.AsReport(err); ok {
		if asJSON {
			body, _ := rep.ToJSON(schema.CompactMode)
			fmt.Fprintln(os.Stderr, body)
		} else {
			fmt.Fprintf(os.Stderr, "%s %s: %s\n", red("Error"), rep.Code, rep.Message)
		}
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("matchc %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("Commit: %s\n", Commit)
	}
}

func printHelp() {
	fmt.Println(bold("matchc - structural pattern-match compiler"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  matchc <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  compile <fixture.yaml>   Compile a fixture's cases to a decision tree and print it")
	fmt.Println("  check <fixture.yaml> [value.yaml]")
	fmt.Println("                           Compile a fixture; with no value, run its embedded checks,")
	fmt.Println("                           otherwise evaluate the given standalone value against the tree")
	fmt.Println("  repl                     Start an interactive session")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
