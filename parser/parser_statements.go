/*
File    : go-jay/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-jay/lexer"
)

// block parses a brace-enclosed statement sequence.
//
// Syntax:
//
//	'{' { blockStatement } '}'
func (par *Parser) block() *BlockNode {
	line := par.Scan.Current().Line
	statements := make([]StatementNode, 0)
	par.mustBe(lexer.LEFT_BRACE)
	for !par.see(lexer.RIGHT_BRACE) && !par.see(lexer.EOF_TYPE) {
		statements = append(statements, par.blockStatement())
	}
	par.mustBe(lexer.RIGHT_BRACE)
	return &BlockNode{
		Line:       line,
		Statements: statements,
	}
}

// blockStatement parses one statement inside a block: a local variable
// declaration when the lookahead says so, otherwise any statement. This
// is one of the ambiguous spots: "x.y z;" declares, "x.y = z;" computes,
// and only speculation tells them apart.
//
// Syntax:
//
//	localVariableDeclarationStatement | statement
func (par *Parser) blockStatement() StatementNode {
	if par.seeLocalVariableDeclaration() {
		return par.localVariableDeclarationStatement()
	}
	return par.statement()
}

// statement parses a single statement.
//
// Syntax:
//
//	block
//	| 'if' parExpression statement [ 'else' statement ]
//	| 'while' parExpression statement
//	| 'return' [ expression ] ';'
//	| ';'
//	| statementExpression ';'
func (par *Parser) statement() StatementNode {
	line := par.Scan.Current().Line
	switch {

	case par.see(lexer.LEFT_BRACE):
		return par.block()

	case par.have(lexer.IF_KEY):
		condition := par.parExpression()
		consequent := par.statement()
		var alternate StatementNode
		if par.have(lexer.ELSE_KEY) {
			alternate = par.statement()
		}
		return &IfNode{
			Line:      line,
			Condition: condition,
			Then:      consequent,
			Else:      alternate,
		}

	case par.have(lexer.WHILE_KEY):
		condition := par.parExpression()
		return &WhileNode{
			Line:      line,
			Condition: condition,
			Body:      par.statement(),
		}

	case par.have(lexer.RETURN_KEY):
		if par.have(lexer.SEMICOLON_DELIM) {
			return &ReturnNode{Line: line}
		}
		expr := par.expression()
		par.mustBe(lexer.SEMICOLON_DELIM)
		return &ReturnNode{
			Line: line,
			Expr: expr,
		}

	case par.have(lexer.SEMICOLON_DELIM):
		return &EmptyStatementNode{Line: line}

	default:
		// Must be a statement expression
		statement := par.statementExpression()
		par.mustBe(lexer.SEMICOLON_DELIM)
		return statement
	}
}

// localVariableDeclarationStatement parses a local variable declaration.
// Local variables have no modifiers in Jay; the empty modifier list keeps
// the node shape uniform with fields.
//
// Syntax:
//
//	type variableDeclarators ';'
func (par *Parser) localVariableDeclarationStatement() StatementNode {
	line := par.Scan.Current().Line
	mods := make([]string, 0)
	typ := par.parseType()
	declarators := par.variableDeclarators(typ)
	par.mustBe(lexer.SEMICOLON_DELIM)
	return &VariableDeclarationNode{
		Line:        line,
		Mods:        mods,
		Declarators: declarators,
	}
}

// statementExpression parses an expression in statement position. Only
// expressions with a side-effect are legal here: assignments, increments
// and decrements, method invocations, constructor invocations, and object
// or array creation. A legal expression is stamped as a statement
// expression so later phases know its value is discarded; an illegal one
// is reported but still wrapped, keeping the written shape in the tree.
func (par *Parser) statementExpression() StatementNode {
	line := par.Scan.Current().Line
	expr := par.expression()
	switch expr.(type) {
	case *AssignNode, *PlusAssignNode,
		*PreIncrementNode, *PostDecrementNode,
		*MessageExpressionNode,
		*SuperConstructionNode, *ThisConstructionNode,
		*NewOpNode, *NewArrayOpNode:
		expr.MarkStatementExpression()
	default:
		par.reportParserError("Invalid statement expression; it does not have a side-effect")
	}
	return &StatementExpressionNode{
		Line: line,
		Expr: expr,
	}
}

// parExpression parses a parenthesized expression. The parentheses leave
// no node behind; grouping only shapes the tree.
//
// Syntax:
//
//	'(' expression ')'
func (par *Parser) parExpression() ExpressionNode {
	par.mustBe(lexer.LEFT_PAREN)
	expr := par.expression()
	par.mustBe(lexer.RIGHT_PAREN)
	return expr
}
