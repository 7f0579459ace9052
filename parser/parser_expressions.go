/*
File    : go-jay/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// This file implements the expression grammar. Precedence and
// associativity are encoded in the production hierarchy itself - each
// level parses its operands at the next level down, and left-associative
// levels loop, building left-deep trees:
//
//	assignment        =  +=        (right-associative, via recursion)
//	conditional-and   &&           (left-associative)
//	equality          ==           (left-associative)
//	relational        >  <=  instanceof  (at most one, non-associative)
//	additive          +  -         (left-associative)
//	multiplicative    *  /  %      (left-associative)
//	unary             ++  -  +
//	simple unary      !  casts
//	postfix           selectors, then --
//	primary           literals, names, this/super, new, (expr)
package parser

import (
	"strings"

	"github.com/akashmaji946/go-jay/lexer"
)

// expression parses an expression. It is an alias for the lowest
// precedence level, assignment.
func (par *Parser) expression() ExpressionNode {
	return par.assignmentExpression()
}

// assignmentExpression parses an assignment, which associates to the
// right via recursion, or passes through the next level.
//
// Syntax:
//
//	conditionalAndExpression [ ( '=' | '+=' ) assignmentExpression ]
func (par *Parser) assignmentExpression() ExpressionNode {
	line := par.Scan.Current().Line
	lhs := par.conditionalAndExpression()
	if par.have(lexer.ASSIGN_OP) {
		return &AssignNode{
			Line: line,
			Lhs:  lhs,
			Rhs:  par.assignmentExpression(),
		}
	}
	if par.have(lexer.PLUS_ASSIGN) {
		return &PlusAssignNode{
			Line: line,
			Lhs:  lhs,
			Rhs:  par.assignmentExpression(),
		}
	}
	return lhs
}

// conditionalAndExpression parses a chain of short-circuit ands,
// left-associatively.
//
// Syntax:
//
//	equalityExpression { '&&' equalityExpression }
func (par *Parser) conditionalAndExpression() ExpressionNode {
	line := par.Scan.Current().Line
	lhs := par.equalityExpression()
	more := true
	for more {
		if par.have(lexer.AND_OP) {
			lhs = &LogicalAndNode{
				Line: line,
				Lhs:  lhs,
				Rhs:  par.equalityExpression(),
			}
		} else {
			more = false
		}
	}
	return lhs
}

// equalityExpression parses a chain of equality comparisons,
// left-associatively.
//
// Syntax:
//
//	relationalExpression { '==' relationalExpression }
func (par *Parser) equalityExpression() ExpressionNode {
	line := par.Scan.Current().Line
	lhs := par.relationalExpression()
	more := true
	for more {
		if par.have(lexer.EQ_OP) {
			lhs = &EqualNode{
				Line: line,
				Lhs:  lhs,
				Rhs:  par.relationalExpression(),
			}
		} else {
			more = false
		}
	}
	return lhs
}

// relationalExpression parses at most one relational operation. The
// operators do not associate: "a > b > c" leaves the second '>' behind
// for the enclosing production to reject.
//
// Syntax:
//
//	additiveExpression [ ( '>' | '<=' ) additiveExpression
//	                   | 'instanceof' referenceType ]
func (par *Parser) relationalExpression() ExpressionNode {
	line := par.Scan.Current().Line
	lhs := par.additiveExpression()
	switch {
	case par.have(lexer.GT_OP):
		return &GreaterThanNode{
			Line: line,
			Lhs:  lhs,
			Rhs:  par.additiveExpression(),
		}
	case par.have(lexer.LE_OP):
		return &LessEqualNode{
			Line: line,
			Lhs:  lhs,
			Rhs:  par.additiveExpression(),
		}
	case par.have(lexer.INSTANCEOF_KEY):
		return &InstanceOfNode{
			Line:     line,
			Expr:     lhs,
			TypeSpec: par.referenceType(),
		}
	default:
		return lhs
	}
}

// additiveExpression parses a chain of additions and subtractions,
// left-associatively.
//
// Syntax:
//
//	multiplicativeExpression { ( '+' | '-' ) multiplicativeExpression }
func (par *Parser) additiveExpression() ExpressionNode {
	line := par.Scan.Current().Line
	lhs := par.multiplicativeExpression()
	more := true
	for more {
		if par.have(lexer.PLUS_OP) {
			lhs = &PlusNode{
				Line: line,
				Lhs:  lhs,
				Rhs:  par.multiplicativeExpression(),
			}
		} else if par.have(lexer.MINUS_OP) {
			lhs = &SubtractNode{
				Line: line,
				Lhs:  lhs,
				Rhs:  par.multiplicativeExpression(),
			}
		} else {
			more = false
		}
	}
	return lhs
}

// multiplicativeExpression parses a chain of multiplicative operations,
// left-associatively.
//
// Syntax:
//
//	unaryExpression { ( '*' | '/' | '%' ) unaryExpression }
func (par *Parser) multiplicativeExpression() ExpressionNode {
	line := par.Scan.Current().Line
	lhs := par.unaryExpression()
	more := true
	for more {
		if par.have(lexer.MUL_OP) {
			lhs = &MultiplyNode{
				Line: line,
				Lhs:  lhs,
				Rhs:  par.unaryExpression(),
			}
		} else if par.have(lexer.DIV_OP) {
			lhs = &DivideNode{
				Line: line,
				Lhs:  lhs,
				Rhs:  par.unaryExpression(),
			}
		} else if par.have(lexer.MOD_OP) {
			lhs = &ModuloNode{
				Line: line,
				Lhs:  lhs,
				Rhs:  par.unaryExpression(),
			}
		} else {
			more = false
		}
	}
	return lhs
}

// unaryExpression parses a prefix operator chain. Only '++', '-' and '+'
// live at this level; '--x' and 'x++' are not in the language.
//
// Syntax:
//
//	'++' unaryExpression
//	| '-' unaryExpression
//	| '+' unaryExpression
//	| simpleUnaryExpression
func (par *Parser) unaryExpression() ExpressionNode {
	line := par.Scan.Current().Line
	switch {
	case par.have(lexer.INC_OP):
		return &PreIncrementNode{
			Line:    line,
			Operand: par.unaryExpression(),
		}
	case par.have(lexer.MINUS_OP):
		return &NegateNode{
			Line:    line,
			Operand: par.unaryExpression(),
		}
	case par.have(lexer.PLUS_OP):
		return &UnaryPlusNode{
			Line:    line,
			Operand: par.unaryExpression(),
		}
	default:
		return par.simpleUnaryExpression()
	}
}

// simpleUnaryExpression parses logical negation, casts, and postfix
// expressions. seeCast separates a cast from a parenthesized expression.
// A basic-type cast recurses into unaryExpression, so "(int) -x" works; a
// reference-type cast recurses into simpleUnaryExpression, so a unary
// operator cannot directly follow it.
//
// Syntax:
//
//	'!' unaryExpression
//	| '(' basicType ')' unaryExpression
//	| '(' referenceType ')' simpleUnaryExpression
//	| postfixExpression
func (par *Parser) simpleUnaryExpression() ExpressionNode {
	line := par.Scan.Current().Line
	if par.have(lexer.NOT_OP) {
		return &LogicalNotNode{
			Line:    line,
			Operand: par.unaryExpression(),
		}
	}
	if par.seeCast() {
		par.mustBe(lexer.LEFT_PAREN)
		if par.seeReferenceType() {
			typ := par.referenceType()
			par.mustBe(lexer.RIGHT_PAREN)
			return &CastNode{
				Line: line,
				Type: typ,
				Expr: par.simpleUnaryExpression(),
			}
		}
		typ := par.basicType()
		par.mustBe(lexer.RIGHT_PAREN)
		return &CastNode{
			Line: line,
			Type: typ,
			Expr: par.unaryExpression(),
		}
	}
	return par.postfixExpression()
}

// postfixExpression parses a primary followed by its selectors and then
// any number of '--' operators. All selectors bind before any '--'; a
// '--' cannot precede a selector.
//
// Syntax:
//
//	primaryExpression { selector } { '--' }
func (par *Parser) postfixExpression() ExpressionNode {
	line := par.Scan.Current().Line
	expr := par.primaryExpression()
	for par.see(lexer.DOT_OP) || par.see(lexer.LEFT_BRACKET) {
		expr = par.selector(expr)
	}
	for par.have(lexer.DEC_OP) {
		expr = &PostDecrementNode{
			Line:    line,
			Operand: expr,
		}
	}
	return expr
}

// selector parses one postfix selector applied to the given target: a
// field access, a method invocation, or an array index.
//
// Syntax:
//
//	'.' IDENTIFIER [ arguments ]
//	| '[' expression ']'
func (par *Parser) selector(target ExpressionNode) ExpressionNode {
	line := par.Scan.Current().Line
	if par.have(lexer.DOT_OP) {
		par.mustBe(lexer.IDENTIFIER_ID)
		name := par.Scan.Previous().Literal
		if par.see(lexer.LEFT_PAREN) {
			return &MessageExpressionNode{
				Line:   line,
				Target: target,
				Name:   name,
				Args:   par.arguments(),
			}
		}
		return &FieldSelectionNode{
			Line:   line,
			Target: target,
			Name:   name,
		}
	}
	par.mustBe(lexer.LEFT_BRACKET)
	index := par.expression()
	par.mustBe(lexer.RIGHT_BRACKET)
	return &ArrayExpressionNode{
		Line:   line,
		Target: target,
		Index:  index,
	}
}

// primaryExpression parses a primary: a parenthesized expression, this or
// super forms, object/array creation, a name, or a literal.
//
// A dotted name is kept textual: "a.b.c" applied to '(' becomes a message
// expression whose ambiguous part is "a.b"; without '(' a simple name is
// a variable and a dotted name is a field selection off its ambiguous
// prefix. What the prefix denotes (package, variable, type) is left to
// semantic analysis.
//
// Syntax:
//
//	parExpression
//	| 'this' [ arguments ]
//	| 'super' ( arguments | '.' IDENTIFIER [ arguments ] )
//	| 'new' creator
//	| qualifiedIdentifier [ arguments ]
//	| literal
func (par *Parser) primaryExpression() ExpressionNode {
	line := par.Scan.Current().Line
	switch {

	case par.see(lexer.LEFT_PAREN):
		return par.parExpression()

	case par.have(lexer.THIS_KEY):
		if par.see(lexer.LEFT_PAREN) {
			return &ThisConstructionNode{
				Line: line,
				Args: par.arguments(),
			}
		}
		return &ThisNode{Line: line}

	case par.have(lexer.SUPER_KEY):
		if !par.have(lexer.DOT_OP) {
			// super(...) - invoking the superclass constructor
			return &SuperConstructionNode{
				Line: line,
				Args: par.arguments(),
			}
		}
		par.mustBe(lexer.IDENTIFIER_ID)
		name := par.Scan.Previous().Literal
		target := &SuperNode{Line: line}
		if par.see(lexer.LEFT_PAREN) {
			return &MessageExpressionNode{
				Line:   line,
				Target: target,
				Name:   name,
				Args:   par.arguments(),
			}
		}
		return &FieldSelectionNode{
			Line:   line,
			Target: target,
			Name:   name,
		}

	case par.have(lexer.NEW_KEY):
		return par.creator()

	case par.see(lexer.IDENTIFIER_ID):
		name := par.qualifiedIdentifier().Name
		if par.see(lexer.LEFT_PAREN) {
			// A message expression; the qualifier, if any, is ambiguous
			ambiguousPart := ""
			simpleName := name
			if lastDot := strings.LastIndex(name, "."); lastDot >= 0 {
				ambiguousPart = name[:lastDot]
				simpleName = name[lastDot+1:]
			}
			return &MessageExpressionNode{
				Line:          line,
				AmbiguousPart: ambiguousPart,
				Name:          simpleName,
				Args:          par.arguments(),
			}
		}
		if lastDot := strings.LastIndex(name, "."); lastDot >= 0 {
			// A field selection off an ambiguous prefix
			return &FieldSelectionNode{
				Line:          line,
				AmbiguousPart: name[:lastDot],
				Name:          name[lastDot+1:],
			}
		}
		return &VariableNode{
			Line: line,
			Name: name,
		}

	default:
		return par.literal()
	}
}

// literal parses a literal. Anything else reports "Literal sought" and
// yields the wild placeholder without consuming the offending token.
//
// Syntax:
//
//	<INT_LITERAL> | <CHAR_LITERAL> | <STRING_LITERAL>
//	| 'true' | 'false' | 'null'
func (par *Parser) literal() ExpressionNode {
	line := par.Scan.Current().Line
	switch {
	case par.have(lexer.INT_LIT):
		return &LiteralIntNode{Line: line, Text: par.Scan.Previous().Literal}
	case par.have(lexer.CHAR_LIT):
		return &LiteralCharNode{Line: line, Text: par.Scan.Previous().Literal}
	case par.have(lexer.STRING_LIT):
		return &LiteralStringNode{Line: line, Text: par.Scan.Previous().Literal}
	case par.have(lexer.TRUE_KEY):
		return &LiteralTrueNode{Line: line}
	case par.have(lexer.FALSE_KEY):
		return &LiteralFalseNode{Line: line}
	case par.have(lexer.NULL_KEY):
		return &LiteralNullNode{Line: line}
	default:
		current := par.Scan.Current()
		par.reportParserError("Literal sought where %s found", current.Image())
		return &WildExpressionNode{Line: line}
	}
}

// creator parses what follows 'new': a constructor invocation, an array
// type with an initializer, or an array with dimension expressions.
//
// Syntax:
//
//	( basicType | qualifiedIdentifier )
//	  ( arguments
//	  | '[' ']' { '[' ']' } arrayInitializer
//	  | newArrayDeclarator )
func (par *Parser) creator() ExpressionNode {
	line := par.Scan.Current().Line
	var typ Type
	if par.seeBasicType() {
		typ = par.basicType()
	} else {
		typ = par.qualifiedIdentifier()
	}

	switch {
	case par.see(lexer.LEFT_PAREN):
		return &NewOpNode{
			Line: line,
			Type: typ,
			Args: par.arguments(),
		}
	case par.seeDims():
		// Empty dimensions, so an initializer must supply the values
		expected := typ
		for par.seeDims() {
			par.mustBe(lexer.LEFT_BRACKET)
			par.mustBe(lexer.RIGHT_BRACKET)
			expected = &ArrayTypeName{Component: expected}
		}
		return par.arrayInitializer(expected)
	case par.see(lexer.LEFT_BRACKET):
		return par.newArrayDeclarator(line, typ)
	default:
		current := par.Scan.Current()
		par.reportParserError("( or [ sought where %s found", current.Image())
		return &WildExpressionNode{Line: line}
	}
}

// newArrayDeclarator parses the dimensions of an array creation: at least
// one sized dimension, then either more sized dimensions or empty pairs.
// Once an empty pair appears, every remaining pair must be empty; each
// one wraps the created type in another array level.
//
// Syntax:
//
//	'[' expression ']' { '[' expression ']' } { '[' ']' }
func (par *Parser) newArrayDeclarator(line int, typ Type) ExpressionNode {
	dimensions := make([]ExpressionNode, 0)
	par.mustBe(lexer.LEFT_BRACKET)
	dimensions = append(dimensions, par.expression())
	par.mustBe(lexer.RIGHT_BRACKET)
	typ = &ArrayTypeName{Component: typ}

	for par.have(lexer.LEFT_BRACKET) {
		if par.have(lexer.RIGHT_BRACKET) {
			// We are done with dimension expressions
			typ = &ArrayTypeName{Component: typ}
			for par.have(lexer.LEFT_BRACKET) {
				par.mustBe(lexer.RIGHT_BRACKET)
				typ = &ArrayTypeName{Component: typ}
			}
			return &NewArrayOpNode{
				Line: line,
				Type: typ,
				Dims: dimensions,
			}
		}
		dimensions = append(dimensions, par.expression())
		typ = &ArrayTypeName{Component: typ}
		par.mustBe(lexer.RIGHT_BRACKET)
	}
	return &NewArrayOpNode{
		Line: line,
		Type: typ,
		Dims: dimensions,
	}
}

// arrayInitializer parses a brace-enclosed initializer for the given
// array type. Elements are initializers for the component type, so nested
// braces handle nested arrays. A trailing comma is allowed.
//
// Syntax:
//
//	'{' [ variableInitializer { ',' variableInitializer } [ ',' ] ] '}'
func (par *Parser) arrayInitializer(typ Type) ExpressionNode {
	line := par.Scan.Current().Line
	initials := make([]ExpressionNode, 0)
	par.mustBe(lexer.LEFT_BRACE)
	if par.have(lexer.RIGHT_BRACE) {
		return &ArrayInitializerNode{
			Line:     line,
			Type:     typ,
			Initials: initials,
		}
	}
	initials = append(initials, par.variableInitializer(componentType(typ)))
	for par.have(lexer.COMMA_DELIM) {
		if par.see(lexer.RIGHT_BRACE) {
			// Trailing comma
			break
		}
		initials = append(initials, par.variableInitializer(componentType(typ)))
	}
	par.mustBe(lexer.RIGHT_BRACE)
	return &ArrayInitializerNode{
		Line:     line,
		Type:     typ,
		Initials: initials,
	}
}

// arguments parses a parenthesized, possibly empty, comma-separated
// argument list.
//
// Syntax:
//
//	'(' [ expression { ',' expression } ] ')'
func (par *Parser) arguments() []ExpressionNode {
	args := make([]ExpressionNode, 0)
	par.mustBe(lexer.LEFT_PAREN)
	if !par.see(lexer.RIGHT_PAREN) {
		for {
			args = append(args, par.expression())
			if !par.have(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	par.mustBe(lexer.RIGHT_PAREN)
	return args
}
