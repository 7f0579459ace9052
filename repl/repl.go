/*
File    : go-jay/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive loop for the go-jay parser.
The repl provides an interactive environment where users can:
- Enter Jay code spanning multiple lines (input is parsed once braces balance)
- See the AST the parser built for their input
- See syntax diagnostics with error recovery in action
- Navigate input history using arrow keys

The repl uses the readline library for enhanced line editing capabilities
and integrates with the parser to show trees and diagnostics.
*/
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/go-jay/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for repl output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: AST trees and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// ContinuePrompt is shown while input is still inside unbalanced braces.
const ContinuePrompt = "   ...> "

// Repl represents the interactive loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the parser
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "jay >>> ")
}

// NewRepl creates and initializes a new Repl instance.
// This constructor sets up all the visual elements and configuration
// needed for the interactive session.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
// This function is called when the repl starts to provide users with:
// - The go-jay logo (ASCII art)
// - Version and author information
// - Basic usage instructions
//
// The output uses colors to make the information visually appealing
// and easy to read.
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	// Print top separator line in blue
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print the banner in green
	greenColor.Fprintf(writer, "%s\n", r.Banner)

	// Print version, author, and license info in yellow
	yellowColor.Fprintf(writer, "Version : %s\n", r.Version)
	yellowColor.Fprintf(writer, "Author  : %s\n", r.Author)
	yellowColor.Fprintf(writer, "License : %s\n", r.License)

	// Print usage instructions in cyan
	cyanColor.Fprintf(writer, "Type Jay code; it is parsed when braces balance.\n")
	cyanColor.Fprintf(writer, "Type :quit to exit. Use arrow keys for history.\n")

	// Print bottom separator line in blue
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the interactive loop until the user quits or input ends.
// Lines are accumulated until the curly braces balance, then the whole
// chunk is parsed as one compilation unit named "<repl>": diagnostics are
// listed in red, and the AST tree is printed in yellow.
func (r *Repl) Start() {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(os.Stderr, "repl: %v\n", err)
		return
	}
	defer rl.Close()

	r.PrintBannerInfo(os.Stdout)

	var buffer strings.Builder
	depth := 0

	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF on ctrl-d, readline.ErrInterrupt on ctrl-c
			break
		}

		trimmed := strings.TrimSpace(line)
		if buffer.Len() == 0 {
			if trimmed == "" {
				continue
			}
			if trimmed == ":quit" || trimmed == ":q" {
				break
			}
		}

		buffer.WriteString(line)
		buffer.WriteString("\n")
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth > 0 {
			rl.SetPrompt(ContinuePrompt)
			continue
		}

		src := buffer.String()
		buffer.Reset()
		depth = 0
		rl.SetPrompt(r.Prompt)

		r.parseAndShow(os.Stdout, src)
	}
}

// parseAndShow parses one chunk of input and renders the outcome: the
// collected diagnostics in red, then the AST tree in yellow. The parser's
// own stderr stream is silenced; the repl colorizes the collected copies
// instead.
func (r *Repl) parseAndShow(writer io.Writer, src string) {
	par := parser.NewParser("<repl>", src)
	par.ErrOut = io.Discard
	unit := par.Parse()

	if par.ErrorHasOccurred() {
		for _, msg := range par.Errors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
	}

	printer := &parser.PrintingVisitor{}
	unit.Accept(printer)
	yellowColor.Fprintf(writer, "%s", printer.String())
	blueColor.Fprintf(writer, "%s\n", r.Line)
}
