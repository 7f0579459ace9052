/*
File    : go-jay/lexer/scanner.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// Scanner is the token stream the parser pulls from. It wraps a Lexer with
// an append-only token buffer and a cursor, which gives the parser:
//
//   - Current():  the token under the cursor (never advances)
//   - Previous(): the token most recently consumed by Advance()
//   - Advance():  move to the next token; once EOF is reached, stays on EOF
//   - RecordPosition() / ReturnToPosition(): LIFO bookmarks allowing
//     speculative reads of arbitrary, nested depth
//
// The buffer is never trimmed, so a bookmark taken at any point remains
// valid no matter how far ahead speculation has read. A compilation unit's
// token count is small enough that this costs nothing in practice.
//
// The cursor starts one position before the first token; the parser primes
// the stream with a single Advance() before its first production.
type Scanner struct {
	lex      Lexer   // Underlying lexer producing tokens on demand
	fileName string  // Source file name, used in diagnostics
	buffer   []Token // All tokens read so far, in order
	pos      int     // Cursor into buffer; -1 before the first Advance
	marks    []int   // LIFO stack of recorded cursor positions
}

// NewScanner creates a Scanner over the given source text. The fileName is
// only used for diagnostic attribution and may be any label (the repl uses
// "<repl>").
func NewScanner(fileName string, src string) *Scanner {
	return &Scanner{
		lex:      NewLexer(src),
		fileName: fileName,
		pos:      -1,
	}
}

// fill lexes tokens into the buffer until index i is valid. The lexer
// returns EOF_TYPE forever once the source is exhausted, so fill always
// terminates.
func (scan *Scanner) fill(i int) {
	for len(scan.buffer) <= i {
		scan.buffer = append(scan.buffer, scan.lex.NextToken())
	}
}

// Current returns the token under the cursor without consuming it.
func (scan *Scanner) Current() Token {
	if scan.pos < 0 {
		scan.fill(0)
		return scan.buffer[0]
	}
	return scan.buffer[scan.pos]
}

// Previous returns the token most recently consumed by Advance. Before the
// first token has been consumed it returns the zero Token. Rewinding with
// ReturnToPosition restores Previous along with Current, since both are
// derived from the cursor.
func (scan *Scanner) Previous() Token {
	if scan.pos < 1 {
		return Token{}
	}
	return scan.buffer[scan.pos-1]
}

// Advance moves the cursor to the next token. Once the cursor sits on EOF
// it stays there; repeated calls are harmless.
func (scan *Scanner) Advance() {
	if scan.pos >= 0 && scan.buffer[scan.pos].Type == EOF_TYPE {
		return
	}
	scan.pos++
	scan.fill(scan.pos)
}

// RecordPosition pushes the current cursor position onto the bookmark
// stack. Every RecordPosition must be balanced by exactly one
// ReturnToPosition; pairs nest LIFO.
func (scan *Scanner) RecordPosition() {
	scan.marks = append(scan.marks, scan.pos)
}

// ReturnToPosition pops the most recent bookmark and rewinds the cursor to
// it. Afterwards Current and Previous are exactly as they were when the
// bookmark was recorded. Calling without an outstanding bookmark is a
// no-op.
func (scan *Scanner) ReturnToPosition() {
	if len(scan.marks) == 0 {
		return
	}
	scan.pos = scan.marks[len(scan.marks)-1]
	scan.marks = scan.marks[:len(scan.marks)-1]
}

// FileName returns the name of the source being scanned, for diagnostics.
func (scan *Scanner) FileName() string {
	return scan.fileName
}
