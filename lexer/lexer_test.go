/*
File    : go-jay/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: `class Animal extends Object { int age; }`,
			ExpectedTokens: []Token{
				NewToken(CLASS_KEY, "class"),
				NewToken(IDENTIFIER_ID, "Animal"),
				NewToken(EXTENDS_KEY, "extends"),
				NewToken(IDENTIFIER_ID, "Object"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(INT_KEY, "int"),
				NewToken(IDENTIFIER_ID, "age"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `x ++ += + -- - == = <= > && ! instanceof`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(INC_OP, "++"),
				NewToken(PLUS_ASSIGN, "+="),
				NewToken(PLUS_OP, "+"),
				NewToken(DEC_OP, "--"),
				NewToken(MINUS_OP, "-"),
				NewToken(EQ_OP, "=="),
				NewToken(ASSIGN_OP, "="),
				NewToken(LE_OP, "<="),
				NewToken(GT_OP, ">"),
				NewToken(AND_OP, "&&"),
				NewToken(NOT_OP, "!"),
				NewToken(INSTANCEOF_KEY, "instanceof"),
			},
		},
		{
			// Operators full Java has but Jay does not lex as INVALID
			Input: `a < b & c`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(INVALID_TYPE, "<"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(INVALID_TYPE, "&"),
				NewToken(IDENTIFIER_ID, "c"),
			},
		},
		{
			// Char and string literals keep their quotes and escapes
			Input: `'a' '\n' "hello" "a\"b"`,
			ExpectedTokens: []Token{
				NewToken(CHAR_LIT, `'a'`),
				NewToken(CHAR_LIT, `'\n'`),
				NewToken(STRING_LIT, `"hello"`),
				NewToken(STRING_LIT, `"a\"b"`),
			},
		},
		{
			// Comments are whitespace
			Input: "a // line comment\n/* block\ncomment */ b",
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(IDENTIFIER_ID, "b"),
			},
		},
		{
			Input: `this super new null true false void boolean char`,
			ExpectedTokens: []Token{
				NewToken(THIS_KEY, "this"),
				NewToken(SUPER_KEY, "super"),
				NewToken(NEW_KEY, "new"),
				NewToken(NULL_KEY, "null"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(VOID_KEY, "void"),
				NewToken(BOOLEAN_KEY, "boolean"),
				NewToken(CHAR_KEY, "char"),
			},
		},
	}

	for _, test := range tests {
		lexer := NewLexer(test.Input)
		tokens := lexer.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(tokens), "input: %q", test.Input)
		for i, expected := range test.ExpectedTokens {
			if i >= len(tokens) {
				break
			}
			assert.Equal(t, expected.Type, tokens[i].Type, "input: %q token %d", test.Input, i)
			assert.Equal(t, expected.Literal, tokens[i].Literal, "input: %q token %d", test.Input, i)
		}
	}
}

// TestNewLexer_LineNumbers tests that tokens carry the line they start on
func TestNewLexer_LineNumbers(t *testing.T) {

	src := "class A\n{\n  int x;\n}\n"
	lexer := NewLexer(src)

	expected := []struct {
		tokenType TokenType
		line      int
	}{
		{CLASS_KEY, 1},
		{IDENTIFIER_ID, 1},
		{LEFT_BRACE, 2},
		{INT_KEY, 3},
		{IDENTIFIER_ID, 3},
		{SEMICOLON_DELIM, 3},
		{RIGHT_BRACE, 4},
	}

	for i, exp := range expected {
		tok := lexer.NextToken()
		assert.Equal(t, exp.tokenType, tok.Type, "token %d", i)
		assert.Equal(t, exp.line, tok.Line, "token %d", i)
	}
	assert.Equal(t, EOF_TYPE, lexer.NextToken().Type)
}

// TestNewLexer_MultiLineCommentTracksLines tests line counting across
// block comments
func TestNewLexer_MultiLineCommentTracksLines(t *testing.T) {

	src := "/* one\ntwo\nthree */ x"
	lexer := NewLexer(src)

	tok := lexer.NextToken()
	assert.Equal(t, IDENTIFIER_ID, tok.Type)
	assert.Equal(t, "x", tok.Literal)
	assert.Equal(t, 3, tok.Line)
}

// TestNewLexer_EOFIsSticky tests that NextToken keeps returning EOF
func TestNewLexer_EOFIsSticky(t *testing.T) {

	lexer := NewLexer("x")
	assert.Equal(t, IDENTIFIER_ID, lexer.NextToken().Type)
	assert.Equal(t, EOF_TYPE, lexer.NextToken().Type)
	assert.Equal(t, EOF_TYPE, lexer.NextToken().Type)
	assert.Equal(t, EOF_TYPE, lexer.NextToken().Type)
}

// TestToken_Image tests the diagnostic image of tokens
func TestToken_Image(t *testing.T) {

	identifier := NewToken(IDENTIFIER_ID, "counter")
	assert.Equal(t, "counter", identifier.Image())

	keyword := NewToken(CLASS_KEY, "class")
	assert.Equal(t, "class", keyword.Image())

	eof := NewToken(EOF_TYPE, "")
	assert.Equal(t, "<EOF>", eof.Image())
}
