package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mcncl/jsontree/internal/config"
	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/node"
	"github.com/mcncl/jsontree/internal/parser"
	"github.com/mcncl/jsontree/internal/printer"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config      string `help:"Path to config file. Discovered automatically when not set." short:"c" type:"path"`
	NoColor     bool   `help:"Disable colored diagnostics."`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	kongParser := kong.Must(&CLI,
		kong.Name("jsontree"),
		kong.Description("A tool to parse JSON and reformat it canonically"),
		kong.UsageOnError(),
	)

	// No arguments on a terminal means interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := kongParser.Parse(os.Args[1:])
	if err != nil {
		// Usage was already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsontree version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	ctx := &Context{Debug: CLI.Debug || cfg.Dev.Debug, Config: cfg}
	if err := run(ctx); err != nil {
		reportError(cfg, err)
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsontree --help\n")
		os.Exit(1)
	}
}

// loadConfig resolves the configuration: explicit path, discovered file,
// or defaults, with CLI flags layered on top.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, errors.NewInputError(fmt.Sprintf("failed to load config from '%s'", path), err)
		}
		cfg = loaded
	}

	if CLI.NoColor {
		cfg.Output.Color = false
	}
	return cfg, nil
}

// reportError renders a user-facing diagnostic on stderr
func reportError(cfg *config.Config, err error) {
	message := errors.UserFriendlyError(err)
	if cfg.Output.Color {
		color.New(color.FgRed).Fprintln(os.Stderr, message)
		return
	}
	fmt.Fprintln(os.Stderr, message)
}

// run executes the main program logic: load the document, print it back
// in canonical form.
func run(ctx *Context) error {
	doc, err := loadInput(ctx)
	if err != nil {
		// Error is already wrapped by loadInput
		return err
	}

	text := printer.Sprint(doc)
	return writeOutput(ctx, text)
}

// loadInput reads a JSON document from file or stdin
func loadInput(ctx *Context) (node.Document, error) {
	if CLI.Input != "" {
		debugf(ctx, "loading document from %s", CLI.Input)
		return parser.ParseFile(CLI.Input)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return node.Document{}, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		if CLI.Interactive {
			return readInteractiveInput(ctx)
		}
		return node.Document{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	debugf(ctx, "loading document from stdin")
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return node.Document{}, errors.NewInputError("failed to read from stdin", err)
	}
	if len(jsonData) == 0 {
		return node.Document{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes the printed document to file or stdout
func writeOutput(ctx *Context, text string) error {
	if ctx.Config.Output.TrailingNewline {
		text += "\n"
	}

	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(text), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Formatted JSON written to %s\n", CLI.Output)
		return nil
	}

	if _, err := fmt.Print(text); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput(ctx *Context) (node.Document, error) {
	fmt.Fprintln(os.Stderr, "jsontree Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return node.Document{}, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return node.Document{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}

// debugf logs a diagnostic line on stderr when debug mode is enabled
func debugf(ctx *Context, format string, args ...interface{}) {
	if ctx.Debug || ctx.Config.Dev.Verbose {
		fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
	}
}
