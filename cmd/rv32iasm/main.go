// Command rv32iasm is the CLI front end for the RV32I two-pass
// assembler: lex, expand, resolve, encode, then write the assembled
// text segment in hex or binary, or run one of the tooling modes
// (lint, format, cross-reference, browse).
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/lookbusy1344/rv32i-asm/assembler"
	"github.com/lookbusy1344/rv32i-asm/config"
	"github.com/lookbusy1344/rv32i-asm/diag"
	"github.com/lookbusy1344/rv32i-asm/tools"
	"github.com/lookbusy1344/rv32i-asm/tui"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		outPath     = flag.String("o", "", "Output file path (default: stdout)")
		format      = flag.String("format", "", "Output format: hex or bin (default: config's output.default_format)")
		lintMode    = flag.Bool("lint", false, "Run the linter instead of assembling")
		lintStrict  = flag.Bool("lint-strict", false, "Treat lint warnings as errors")
		fmtMode     = flag.Bool("fmt", false, "Print canonically formatted source instead of assembling")
		fmtWrite    = flag.Bool("w", false, "With -fmt, rewrite the input file in place")
		fmtCompact  = flag.Bool("fmt-compact", false, "With -fmt, use compact column layout")
		xrefMode    = flag.Bool("xref", false, "Print a symbol cross-reference report instead of assembling")
		browseMode  = flag.Bool("browse", false, "Open the read-only TUI browser instead of assembling")
		configPath  = flag.String("config", "", "Config file path (default: platform config dir)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("rv32iasm %s (%s)\n", Version, Commit)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rv32iasm [flags] <input.s>")
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rv32iasm: %v\n", err)
		os.Exit(1)
	}

	lines, err := readLines(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rv32iasm: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *lintMode:
		os.Exit(runLint(lines, cfg, *lintStrict))
	case *fmtMode:
		os.Exit(runFormat(lines, inputPath, *fmtWrite, *fmtCompact, cfg))
	case *xrefMode:
		os.Exit(runXref(lines))
	case *browseMode:
		os.Exit(runBrowse(lines))
	default:
		os.Exit(runAssemble(lines, *outPath, resolveFormat(*format, cfg), cfg))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func resolveFormat(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Output.DefaultFormat
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-supplied input file path
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

func runAssemble(lines []string, outPath, format string, cfg *config.Config) int {
	result := assembler.Assemble(lines)

	var renderer diag.Renderer = diag.TextRenderer{}
	if cfg.Diagnostics.Format == "json" {
		renderer = diag.JSONRenderer{Indent: "  "}
	}
	if err := renderer.Render(os.Stderr, result.Diagnostics); err != nil {
		fmt.Fprintf(os.Stderr, "rv32iasm: %v\n", err)
	}
	if !result.OK {
		return 1
	}

	var rendered string
	switch format {
	case "bin":
		rendered = string(result.Text)
	default:
		rendered = hex.EncodeToString(result.Text) + "\n"
	}

	if outPath == "" {
		fmt.Print(rendered)
		return 0
	}
	if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil { // #nosec G306 -- assembled output is not sensitive
		fmt.Fprintf(os.Stderr, "rv32iasm: writing %s: %v\n", outPath, err)
		return 1
	}
	return 0
}

func runLint(lines []string, cfg *config.Config, strictFlag bool) int {
	opts := tools.DefaultLintOptions()
	opts.Strict = cfg.Lint.Strict || strictFlag
	opts.CheckUnused = cfg.Lint.CheckUnused
	opts.SuggestFixes = cfg.Lint.SuggestFixes

	issues := tools.NewLinter(opts).Lint(lines)
	hasError := false
	for _, issue := range issues {
		fmt.Println(issue.String())
		if issue.Level == tools.LintError || (opts.Strict && issue.Level == tools.LintWarning) {
			hasError = true
		}
	}
	if hasError {
		return 1
	}
	return 0
}

func runFormat(lines []string, inputPath string, write, compact bool, cfg *config.Config) int {
	opts := tools.DefaultFormatOptions()
	opts.InstructionColumn = cfg.Format.InstructionColumn
	opts.OperandColumn = cfg.Format.OperandColumn
	opts.CommentColumn = cfg.Format.CommentColumn
	if compact || cfg.Format.Style == "compact" {
		opts = tools.CompactFormatOptions()
	}
	out := tools.NewFormatter(opts).Format(lines)

	if !write {
		fmt.Print(out)
		return 0
	}
	if err := os.WriteFile(inputPath, []byte(out), 0644); err != nil { // #nosec G306 -- rewriting the user's own source file
		fmt.Fprintf(os.Stderr, "rv32iasm: writing %s: %v\n", inputPath, err)
		return 1
	}
	return 0
}

func runXref(lines []string) int {
	result := assembler.Assemble(lines)
	fmt.Print(tools.NewXRefReport(lines, result.Symbols).String())
	return 0
}

func runBrowse(lines []string) int {
	result := assembler.Assemble(lines)
	if err := tui.NewBrowser(lines, result).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "rv32iasm: %v\n", err)
		return 1
	}
	return 0
}
