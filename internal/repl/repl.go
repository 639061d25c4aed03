// Package repl implements matchc's interactive session: build up a
// scrutinee type and an ordered list of case patterns, compile them to a
// decision tree, and probe it against sample values — all from a
// liner-backed prompt with command history.
package repl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/rjooske/match-transformer/internal/dtree"
	"github.com/rjooske/match-transformer/internal/evaltree"
	"github.com/rjooske/match-transformer/internal/fixtures"
	"github.com/rjooske/match-transformer/internal/mtype"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

type caseEntry struct {
	source string
	union  mtype.Union
	index  int
}

// REPL holds one interactive session's accumulated state: the scrutinee
// type, ordered cases, the last compiled tree, and command history.
type REPL struct {
	heuristic dtree.Heuristic
	input     mtype.Union
	inputSrc  string
	cases     []caseEntry
	tree      dtree.DecisionTree
	history   []string
}

// New creates a session with the default (fewest-minima) heuristic and
// input type unknown.
func New() *REPL {
	return &REPL{input: mtype.Union{&mtype.Unknown{}}, inputSrc: "unknown"}
}

// SetHeuristic overrides the compiler heuristic used by :compile.
func (r *REPL) SetHeuristic(h dtree.Heuristic) { r.heuristic = h }

// Start runs the read-eval-print loop, reading lines from the terminal via
// liner and writing to out, until EOF or :quit.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	historyFile := filepath.Join(os.TempDir(), ".matchc_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s\n", bold("matchc"))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))
	fmt.Fprintln(out)

	line.SetCompleter(func(pfx string) (c []string) {
		if strings.HasPrefix(pfx, ":") {
			for _, cmd := range []string{":help", ":quit", ":input", ":case", ":reset", ":compile", ":tree", ":check", ":history", ":clear"} {
				if strings.HasPrefix(cmd, pfx) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	for {
		input, err := line.Prompt("match> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		r.history = append(r.history, input)

		if strings.HasPrefix(input, ":") {
			if input == ":quit" || input == ":q" {
				fmt.Fprintln(out, green("Goodbye!"))
				break
			}
			r.handleCommand(input, out)
			continue
		}

		fmt.Fprintf(out, "%s unrecognized input; commands start with ':' (try :help)\n", yellow("Note:"))
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (r *REPL) handleCommand(cmd string, out io.Writer) {
	fields := strings.SplitN(strings.TrimSpace(cmd), " ", 2)
	name := fields[0]
	var arg string
	if len(fields) > 1 {
		arg = strings.TrimSpace(fields[1])
	}

	switch name {
	case ":help", ":h":
		printHelp(out)

	case ":input":
		if arg == "" {
			fmt.Fprintf(out, "current input: %s\n", cyan(r.inputSrc))
			return
		}
		u, err := fixtures.ParseTypeExpr(arg)
		if err != nil {
			fmt.Fprintf(out, "%s %v\n", red("Error:"), err)
			return
		}
		r.input = u
		r.inputSrc = arg
		r.tree = nil
		fmt.Fprintf(out, "%s input set to %s\n", green("OK"), cyan(u.String()))

	case ":case":
		u, err := fixtures.ParseTypeExpr(arg)
		if err != nil {
			fmt.Fprintf(out, "%s %v\n", red("Error:"), err)
			return
		}
		idx := len(r.cases)
		r.cases = append(r.cases, caseEntry{source: arg, union: u, index: idx})
		r.tree = nil
		fmt.Fprintf(out, "%s case %d: %s\n", green("OK"), idx, cyan(u.String()))

	case ":reset":
		r.cases = nil
		r.tree = nil
		fmt.Fprintf(out, "%s cases cleared\n", green("OK"))

	case ":compile":
		patterns := make([]mtype.Union, len(r.cases)+1)
		indices := make([]int, len(r.cases)+1)
		for i, c := range r.cases {
			patterns[i] = c.union
			indices[i] = c.index
		}
		patterns[len(r.cases)] = mtype.Union{&mtype.Unknown{}}
		indices[len(r.cases)] = -1

		r.tree = dtree.NewCompiler(r.heuristic).Compile(r.input, patterns, indices)
		fmt.Fprintf(out, "%s compiled %d case(s)\n", green("OK"), len(r.cases))

	case ":tree":
		if r.tree == nil {
			fmt.Fprintf(out, "%s no tree compiled yet; run :compile first\n", yellow("Note:"))
			return
		}
		fmt.Fprintln(out, r.tree.String())

	case ":check":
		if r.tree == nil {
			fmt.Fprintf(out, "%s no tree compiled yet; run :compile first\n", yellow("Note:"))
			return
		}
		v, err := parseCheckValue(arg)
		if err != nil {
			fmt.Fprintf(out, "%s %v\n", red("Error:"), err)
			return
		}
		result := evaltree.Eval(r.tree, v)
		if result.Fail {
			fmt.Fprintf(out, "%s fail\n", yellow("->"))
		} else {
			fmt.Fprintf(out, "%s case %d\n", green("->"), result.CaseIndex)
		}

	case ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%4d  %s\n", i, h)
		}

	case ":clear":
		fmt.Fprint(out, "\033[H\033[2J")

	default:
		fmt.Fprintf(out, "%s unknown command %q (try :help)\n", red("Error:"), name)
	}
}

// parseCheckValue accepts a JSON-ish value; undefined/null/bigint, which
// JSON cannot spell unambiguously, use the same {$undefined: true},
// {$null: true}, {$bigint: "42"} tags the fixture format uses.
func parseCheckValue(src string) (any, error) {
	if src == "" {
		return nil, fmt.Errorf("usage: :check <json value>")
	}
	var generic interface{}
	if err := json.Unmarshal([]byte(src), &generic); err != nil {
		return nil, fmt.Errorf("malformed value: %w", err)
	}
	return fixtures.ConvertValue(generic)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintf(out, "  %s                 Show this help\n", cyan(":help"))
	fmt.Fprintf(out, "  %s <type-expr>    Set the scrutinee's static input type\n", cyan(":input"))
	fmt.Fprintf(out, "  %s <type-expr>     Append a case pattern (case index = append order)\n", cyan(":case"))
	fmt.Fprintf(out, "  %s                Clear all cases\n", cyan(":reset"))
	fmt.Fprintf(out, "  %s              Compile the current input + cases to a decision tree\n", cyan(":compile"))
	fmt.Fprintf(out, "  %s                 Print the last compiled tree\n", cyan(":tree"))
	fmt.Fprintf(out, "  %s <json value>   Evaluate a sample value against the last compiled tree\n", cyan(":check"))
	fmt.Fprintf(out, "  %s              Show command history\n", cyan(":history"))
	fmt.Fprintf(out, "  %s               Clear the screen\n", cyan(":clear"))
	fmt.Fprintf(out, "  %s, %s            Exit\n", cyan(":quit"), cyan(":q"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Type expressions: unknown, undefined, null, true, false, 42, 42n,")
	fmt.Fprintln(out, `  "str", string, number, bigint, boolean, T[], [T1, T2], {a: T, b?: T},`)
	fmt.Fprintln(out, "  Record<string, T>, T1 | T2")
}
