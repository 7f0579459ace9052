/*
File    : go-jay/parser/parser_types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-jay/lexer"
)

// qualifiedIdentifier parses a dot-separated identifier sequence and
// returns it as a named type carrying the line of its first identifier.
//
// Syntax:
//
//	IDENTIFIER { '.' IDENTIFIER }
func (par *Parser) qualifiedIdentifier() *TypeName {
	line := par.Scan.Current().Line
	par.mustBe(lexer.IDENTIFIER_ID)
	name := par.Scan.Previous().Literal
	for par.have(lexer.DOT_OP) {
		par.mustBe(lexer.IDENTIFIER_ID)
		name += "." + par.Scan.Previous().Literal
	}
	return &TypeName{Name: name, Line: line}
}

// parseType parses any type: a reference type when one is ahead,
// otherwise a basic type (whose error case reports "Type sought").
//
// Syntax:
//
//	referenceType | basicType
func (par *Parser) parseType() Type {
	if par.seeReferenceType() {
		return par.referenceType()
	}
	return par.basicType()
}

// basicType parses one of the basic types. When the current token is not
// a basic type it reports "Type sought where <image> found" and returns
// the AnyType sentinel without consuming anything.
//
// Syntax:
//
//	'boolean' | 'char' | 'int'
func (par *Parser) basicType() Type {
	switch {
	case par.have(lexer.BOOLEAN_KEY):
		return BooleanType
	case par.have(lexer.CHAR_KEY):
		return CharType
	case par.have(lexer.INT_KEY):
		return IntType
	default:
		current := par.Scan.Current()
		par.reportParserError("Type sought where %s found", current.Image())
		return AnyType
	}
}

// referenceType parses a reference type: a qualified name with optional
// dimensions, or a basic type with at least one dimension.
//
// Syntax:
//
//	qualifiedIdentifier { '[' ']' }
//	| basicType '[' ']' { '[' ']' }
func (par *Parser) referenceType() Type {
	var typ Type
	if !par.seeBasicType() {
		typ = par.qualifiedIdentifier()
	} else {
		typ = par.basicType()
		par.mustBe(lexer.LEFT_BRACKET)
		par.mustBe(lexer.RIGHT_BRACKET)
		typ = &ArrayTypeName{Component: typ}
	}
	for par.seeDims() {
		par.mustBe(lexer.LEFT_BRACKET)
		par.mustBe(lexer.RIGHT_BRACKET)
		typ = &ArrayTypeName{Component: typ}
	}
	return typ
}
