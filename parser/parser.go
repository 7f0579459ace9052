/*
File    : go-jay/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements syntax analysis for the Jay programming
language, a reduced Java-like language with classes, single inheritance,
the basic types boolean/char/int, arrays, methods and constructors,
if/while/return control flow, and a fixed operator hierarchy.

The parser is a recursive descent parser by the book: one function per
production, with the operator precedence and associativity encoded in the
nesting of the expression productions. Three spots in the grammar are
genuinely ambiguous with one-token lookahead:

  - a parenthesized expression vs. a cast: (x) vs. (T) x
  - an expression statement vs. a local variable declaration: x.y = 1; vs. x.y z;
  - a basic type vs. an array of a basic type: int vs. int[]

These are resolved by speculative lookahead: the scanner supports nested
bookmark/rewind pairs of arbitrary depth, and the see* predicates read as
far ahead as they need before rewinding.

Syntax errors never abort the parse. Matching an expected token that is
not there reports one diagnostic and puts the parser into an error state;
while in that state further mismatches silently skip tokens until the
expected one (or EOF) reappears, so one mistake produces one message
rather than a cascade. Productions that find no viable alternative report
and return a placeholder (WildExpressionNode for expressions, AnyType for
types) so the AST always comes back structurally whole.

Key Features:
- Full AST construction for one compilation unit
- Arbitrary-depth speculative lookahead over a rewinding scanner
- Single-report error recovery with resynchronization
- Error collection (doesn't stop at the first error)
- Statement-expression legality checking
- Modifier duplicate and access-conflict checking
*/
package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-jay/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Jay source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Scan *lexer.Scanner // Token stream with bookmark/rewind support

	// Error recovery state
	// InError is sticky: once any syntax error has been reported it stays
	// set. Recovered is false while the parser is in the silently-skipping
	// phase of recovery; it starts true ("recovered until proven guilty").
	InError   bool
	Recovered bool

	// Collect diagnostic lines instead of stopping at the first error.
	// Each entry is the full "file:line: message" text, in report order.
	Errors []string

	// ErrOut is where diagnostic lines are written as they are reported.
	// It defaults to os.Stderr; tests and the repl substitute their own.
	ErrOut io.Writer
}

// NewParser creates and initializes a new Parser instance for the given
// source. This is the main entry point for creating a parser.
//
// Parameters:
//
//	fileName - The name used to attribute diagnostics (any label works)
//	src      - The Jay source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(fileName string, src string) *Parser {
	return NewParserFromScanner(lexer.NewScanner(fileName, src))
}

// NewParserFromScanner creates a Parser over an existing scanner. The
// scanner must not have been advanced yet; Parse primes it.
func NewParserFromScanner(scan *lexer.Scanner) *Parser {
	return &Parser{
		Scan:      scan,
		Recovered: true,
		Errors:    make([]string, 0),
		ErrOut:    os.Stderr,
	}
}

// Parse parses one compilation unit and returns the AST root. It primes
// the scanner with the first token, runs the compilationUnit production
// (which consumes the terminating EOF), and returns the root.
//
// The returned tree is always structurally valid; syntax errors show up
// as placeholder nodes in the tree and as collected diagnostics, and
// ErrorHasOccurred reports whether any were seen.
func (par *Parser) Parse() *CompilationUnitNode {
	par.Scan.Advance() // prime the pump
	return par.compilationUnit()
}

// ErrorHasOccurred reports whether any syntax error was found. Downstream
// phases are expected to refuse to run when this is true.
func (par *Parser) ErrorHasOccurred() bool {
	return par.InError
}

// reportParserError reports a syntax error at the current token's line.
// The diagnostic has the shape "file:line: message". Reporting an error
// also drops the parser out of the recovered state, so a following
// mismatch in mustBe resynchronizes silently instead of piling on.
func (par *Parser) reportParserError(format string, args ...interface{}) {
	par.InError = true
	par.Recovered = false
	text := fmt.Sprintf("%s:%d: %s", par.Scan.FileName(), par.Scan.Current().Line, fmt.Sprintf(format, args...))
	par.Errors = append(par.Errors, text)
	fmt.Fprintln(par.ErrOut, text)
}
