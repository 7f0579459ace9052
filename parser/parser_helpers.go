/*
File    : go-jay/parser/parser_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-jay/lexer"
)

// see checks whether the current token has the given type, without
// consuming anything.
func (par *Parser) see(tokenType lexer.TokenType) bool {
	return par.Scan.Current().Type == tokenType
}

// have consumes the current token and returns true if it has the given
// type; otherwise it consumes nothing and returns false.
func (par *Parser) have(tokenType lexer.TokenType) bool {
	if par.see(tokenType) {
		par.Scan.Advance()
		return true
	}
	return false
}

// mustBe consumes a token of the given type or enters error recovery.
//
// The recovery scheme reports one diagnostic per contiguous error region:
//
//   - If the current token matches, consume it; the parser is recovered.
//   - On a mismatch while recovered, report "<found> found where <sought>
//     sought" once and leave the token alone; the parser is now in error.
//   - On a mismatch while already in error, skip tokens silently until the
//     sought type (consume it, recovered again) or EOF (stay put).
func (par *Parser) mustBe(tokenType lexer.TokenType) {
	if par.see(tokenType) {
		par.Scan.Advance()
		par.Recovered = true
		return
	}

	if par.Recovered {
		current := par.Scan.Current()
		par.reportParserError("%s found where %s sought", current.Image(), string(tokenType))
		return
	}

	// Already in error: resynchronize at the sought token or EOF
	for !par.see(tokenType) && !par.see(lexer.EOF_TYPE) {
		par.Scan.Advance()
	}
	if par.see(tokenType) {
		par.Scan.Advance()
		par.Recovered = true
	}
}

// ============================================================
// Speculative lookahead predicates
// ============================================================
//
// Each predicate records the scanner position, reads as far ahead as it
// needs, and rewinds before returning, so the visible scanner state is
// untouched. These resolve the grammar's genuine ambiguities.

// seeIdentLParen looks ahead to determine whether the next two tokens are
// an identifier followed by '(' - the shape of a constructor declaration
// or a method name.
func (par *Parser) seeIdentLParen() bool {
	par.Scan.RecordPosition()
	defer par.Scan.ReturnToPosition()
	return par.have(lexer.IDENTIFIER_ID) && par.see(lexer.LEFT_PAREN)
}

// seeBasicType checks whether the current token starts a basic type. No
// lookahead is needed.
func (par *Parser) seeBasicType() bool {
	return par.see(lexer.BOOLEAN_KEY) || par.see(lexer.CHAR_KEY) || par.see(lexer.INT_KEY)
}

// seeReferenceType looks ahead to determine whether the parser is at a
// reference type: a named type, or a basic type followed by "[]".
func (par *Parser) seeReferenceType() bool {
	if par.see(lexer.IDENTIFIER_ID) {
		return true
	}
	par.Scan.RecordPosition()
	defer par.Scan.ReturnToPosition()
	if !par.have(lexer.BOOLEAN_KEY) && !par.have(lexer.CHAR_KEY) && !par.have(lexer.INT_KEY) {
		return false
	}
	return par.have(lexer.LEFT_BRACKET) && par.see(lexer.RIGHT_BRACKET)
}

// seeDims looks ahead to determine whether the next two tokens are an
// empty dimension pair "[]".
func (par *Parser) seeDims() bool {
	par.Scan.RecordPosition()
	defer par.Scan.ReturnToPosition()
	return par.have(lexer.LEFT_BRACKET) && par.see(lexer.RIGHT_BRACKET)
}

// seeCast looks ahead to determine whether the parser is at a cast rather
// than a parenthesized expression: '(' followed by a basic type, or by a
// qualified identifier with optional "[]" pairs and a closing ')'.
func (par *Parser) seeCast() bool {
	par.Scan.RecordPosition()
	defer par.Scan.ReturnToPosition()

	if !par.have(lexer.LEFT_PAREN) {
		return false
	}
	if par.seeBasicType() {
		return true
	}

	// A qualified identifier ...
	if !par.have(lexer.IDENTIFIER_ID) {
		return false
	}
	for par.have(lexer.DOT_OP) {
		if !par.have(lexer.IDENTIFIER_ID) {
			return false
		}
	}
	// ... followed by any number of "[]" pairs ...
	for par.have(lexer.LEFT_BRACKET) {
		if !par.have(lexer.RIGHT_BRACKET) {
			return false
		}
	}
	// ... and the closing parenthesis
	return par.have(lexer.RIGHT_PAREN)
}

// seeLocalVariableDeclaration looks ahead to determine whether the parser
// is at a local variable declaration rather than an expression statement:
// a type (qualified identifier or basic type) with optional "[]" pairs,
// then an identifier, again with optional "[]" pairs.
func (par *Parser) seeLocalVariableDeclaration() bool {
	par.Scan.RecordPosition()
	defer par.Scan.ReturnToPosition()

	if par.have(lexer.IDENTIFIER_ID) {
		// A qualified identifier is ok
		for par.have(lexer.DOT_OP) {
			if !par.have(lexer.IDENTIFIER_ID) {
				return false
			}
		}
	} else if par.seeBasicType() {
		par.Scan.Advance()
	} else {
		return false
	}

	for par.have(lexer.LEFT_BRACKET) {
		if !par.have(lexer.RIGHT_BRACKET) {
			return false
		}
	}
	if !par.have(lexer.IDENTIFIER_ID) {
		return false
	}
	for par.have(lexer.LEFT_BRACKET) {
		if !par.have(lexer.RIGHT_BRACKET) {
			return false
		}
	}
	return true
}
