/*
File    : go-jay/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the go-jay parser.
It provides two modes of operation:
1. REPL Mode (default): Interactive loop that parses input and shows the AST
2. File Mode: Parse a Jay source file given on the command line

Either way the pipeline is the same: lexer -> scanner -> parser -> AST.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-jay/parser"
	"github.com/akashmaji946/go-jay/repl"
	"github.com/fatih/color"
)

// MODE defines the default operating mode of the parser
// Currently set to "repl" for interactive mode
var MODE = "repl"

// VERSION represents the current version of the go-jay parser
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the parser's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "Jay >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
// It shows "go-jay" in stylized ASCII characters
var BANNER = `
   ▄▄▄▄                    ▄▄▄▄  ▄▄▄▄   ▄▄   ▄▄
 ██▀▀▀▀█                     ██ ██  ██  ▀██ ██▀
██        ▄████▄             ██ ██  ██    ███
██  ▄▄▄▄ ██▀  ▀██   █████    ██ ██████    ▀█▀
██  ▀▀██ ██    ██        ▄█  ██ ██  ██     █
 ██▄▄▄██ ▀██▄▄██▀        ▀████▀ ██  ██     █
   ▀▀▀▀    ▀▀▀▀
`

// LINE is a separator line used for visual formatting
var LINE = "----------------------------------------------------------------"

// Color definitions for file mode output
// - redColor: Error messages and failures
// - yellowColor: The printed AST tree
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

// runFile parses one Jay source file. The collected diagnostics are
// printed to stderr in red; on success the AST tree is printed. The process
// exits 1 when the file cannot be read or contains syntax errors.
func runFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "go-jay: %v\n", err)
		os.Exit(1)
	}

	par := parser.NewParser(path, string(data))
	par.ErrOut = io.Discard
	unit := par.Parse()
	if par.ErrorHasOccurred() {
		for _, msg := range par.Errors {
			redColor.Fprintf(os.Stderr, "%s\n", msg)
		}
		redColor.Fprintf(os.Stderr, "go-jay: %d syntax error(s) in %s\n", len(par.Errors), path)
		os.Exit(1)
	}

	printer := &parser.PrintingVisitor{}
	unit.Accept(printer)
	yellowColor.Fprintf(os.Stdout, "%s", printer.String())
}

// main dispatches between file mode and REPL mode.
//
// Usage:
//
//	go-jay            - start the interactive REPL
//	go-jay file.jay   - parse a file and print its AST
func main() {
	if len(os.Args) > 1 {
		MODE = "file"
		runFile(os.Args[1])
		return
	}

	fmt.Println()
	r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	r.Start()
}
