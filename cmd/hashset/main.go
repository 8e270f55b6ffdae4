package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adapap/hashset"
	"github.com/adapap/hashset/internal/logfields"
	"github.com/adapap/hashset/slicehelpers"
	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// CLI holds the parsed command line.
type CLI struct {
	Everything []string `arg:"" optional:"" help:"Arguments to echo."`
	Format     string   `short:"f" enum:"text,json,yaml" default:"text" env:"HASHSET_FORMAT" help:"Output format (text, json, yaml)."`
	Unique     bool     `short:"u" help:"Echo each distinct argument once, in first-seen order."`
	Verbose    bool     `short:"v" help:"Enable verbose logging"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// namespace is the echoed form of the parsed arguments.
type namespace struct {
	Everything []string `json:"everything" yaml:"everything"`
}

func main() {
	cli, err := parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(os.Stdout, cli); err != nil {
		slog.Error("Echo failed", logfields.Error(err))
		os.Exit(1)
	}
}

func parse(args []string) (*CLI, error) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("hashset"),
		kong.Description("Example program"),
		kong.UsageOnError(),
	)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	return &cli, nil
}

// run writes the parsed arguments to w in the requested format.
func run(w io.Writer, cli *CLI) error {
	ns := namespace{Everything: cli.Everything}
	if ns.Everything == nil {
		ns.Everything = []string{}
	}
	if cli.Unique {
		ns.Everything = unique(ns.Everything)
	}
	slog.Debug("Echoing arguments", logfields.Format(cli.Format), logfields.Args(len(ns.Everything)))

	switch cli.Format {
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(ns)
	case "yaml":
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(ns); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return e.Close()
	case "text", "":
		_, err := fmt.Fprintf(w, "Namespace(everything=%q)\n", ns.Everything)
		return err
	default:
		return fmt.Errorf("unknown format %q", cli.Format)
	}
}

// unique drops repeated arguments, keeping the first occurrence of each.
func unique(args []string) []string {
	seen := hashset.New(hashset.String,
		hashset.WithCapacity(max(2*len(args), hashset.DefaultCapacity)),
		hashset.WithLogger(slog.Default()))
	out := slicehelpers.Unique(args, func(a string) bool {
		if seen.Contains(a) {
			return true
		}
		seen.Add(a)
		return false
	})
	slog.Debug("Deduplicated arguments", logfields.Args(len(args)), logfields.Count(seen.Len()))
	return out
}
