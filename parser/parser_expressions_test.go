/*
File    : go-jay/parser/parser_expressions_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// parseReturnExpr parses "class C { int f() { return <src>; } }" and
// returns the expression of the return statement.
func parseReturnExpr(t *testing.T, src string) (ExpressionNode, *Parser) {
	par := NewParser("test.jay", `class C { int f() { return `+src+`; } }`)
	par.ErrOut = io.Discard
	unit := par.Parse()
	assert.NotNil(t, unit)
	method := unit.TypeDecls[0].Members[0].(*MethodDeclNode)
	ret := method.Body.Statements[0].(*ReturnNode)
	assert.NotNil(t, ret.Expr)
	return ret.Expr, par
}

func TestParser_Expr_LeftAssociativeChains(t *testing.T) {

	// a + b + c parses as ((a + b) + c)
	expr, par := parseReturnExpr(t, `a + b + c`)
	assert.False(t, par.ErrorHasOccurred())

	outer, can := expr.(*PlusNode)
	assert.True(t, can)
	inner, can := outer.Lhs.(*PlusNode)
	assert.True(t, can)
	assert.Equal(t, "a", inner.Lhs.(*VariableNode).Name)
	assert.Equal(t, "b", inner.Rhs.(*VariableNode).Name)
	assert.Equal(t, "c", outer.Rhs.(*VariableNode).Name)
	assert.Equal(t, "((a + b) + c)", expr.Literal())
}

func TestParser_Expr_Precedence(t *testing.T) {

	// a + b * c parses as (a + (b * c))
	expr, par := parseReturnExpr(t, `a + b * c`)
	assert.False(t, par.ErrorHasOccurred())

	plus, can := expr.(*PlusNode)
	assert.True(t, can)
	_, can = plus.Lhs.(*VariableNode)
	assert.True(t, can)
	mul, can := plus.Rhs.(*MultiplyNode)
	assert.True(t, can)
	assert.Equal(t, "b", mul.Lhs.(*VariableNode).Name)
	assert.Equal(t, "c", mul.Rhs.(*VariableNode).Name)

	// a == b && c <= d parses as ((a == b) && (c <= d))
	expr, par = parseReturnExpr(t, `a == b && c <= d`)
	assert.False(t, par.ErrorHasOccurred())

	and, can := expr.(*LogicalAndNode)
	assert.True(t, can)
	_, can = and.Lhs.(*EqualNode)
	assert.True(t, can)
	_, can = and.Rhs.(*LessEqualNode)
	assert.True(t, can)
}

func TestParser_Expr_MultiplicativeMix(t *testing.T) {

	// a * b / c % d parses as (((a * b) / c) % d)
	expr, par := parseReturnExpr(t, `a * b / c % d`)
	assert.False(t, par.ErrorHasOccurred())

	mod, can := expr.(*ModuloNode)
	assert.True(t, can)
	div, can := mod.Lhs.(*DivideNode)
	assert.True(t, can)
	_, can = div.Lhs.(*MultiplyNode)
	assert.True(t, can)
}

func TestParser_Expr_AssignmentAssociatesRight(t *testing.T) {

	// a = b = c parses as (a = (b = c))
	expr, par := parseReturnExpr(t, `a = b = c`)
	assert.False(t, par.ErrorHasOccurred())

	outer, can := expr.(*AssignNode)
	assert.True(t, can)
	_, can = outer.Lhs.(*VariableNode)
	assert.True(t, can)
	inner, can := outer.Rhs.(*AssignNode)
	assert.True(t, can)
	assert.Equal(t, "b", inner.Lhs.(*VariableNode).Name)

	// a += b
	expr, par = parseReturnExpr(t, `a += b`)
	assert.False(t, par.ErrorHasOccurred())
	_, can = expr.(*PlusAssignNode)
	assert.True(t, can)
}

func TestParser_Expr_Unary(t *testing.T) {

	expr, par := parseReturnExpr(t, `-x`)
	assert.False(t, par.ErrorHasOccurred())
	negate, can := expr.(*NegateNode)
	assert.True(t, can)
	assert.Equal(t, "x", negate.Operand.(*VariableNode).Name)

	expr, par = parseReturnExpr(t, `+x`)
	assert.False(t, par.ErrorHasOccurred())
	_, can = expr.(*UnaryPlusNode)
	assert.True(t, can)

	expr, par = parseReturnExpr(t, `!x`)
	assert.False(t, par.ErrorHasOccurred())
	_, can = expr.(*LogicalNotNode)
	assert.True(t, can)

	expr, par = parseReturnExpr(t, `++x`)
	assert.False(t, par.ErrorHasOccurred())
	_, can = expr.(*PreIncrementNode)
	assert.True(t, can)

	expr, par = parseReturnExpr(t, `x--`)
	assert.False(t, par.ErrorHasOccurred())
	_, can = expr.(*PostDecrementNode)
	assert.True(t, can)

	// - - x nests
	expr, par = parseReturnExpr(t, `- - x`)
	assert.False(t, par.ErrorHasOccurred())
	outer, can := expr.(*NegateNode)
	assert.True(t, can)
	_, can = outer.Operand.(*NegateNode)
	assert.True(t, can)
}

func TestParser_Expr_PostfixOrder(t *testing.T) {

	// Selectors all apply before any --, so a.b[1]-- decrements the
	// indexed element expression
	expr, par := parseReturnExpr(t, `a.b[1]--`)
	assert.False(t, par.ErrorHasOccurred())

	dec, can := expr.(*PostDecrementNode)
	assert.True(t, can)
	index, can := dec.Operand.(*ArrayExpressionNode)
	assert.True(t, can)
	_, can = index.Target.(*FieldSelectionNode)
	assert.True(t, can)
}

func TestParser_Expr_CastBasic(t *testing.T) {

	// (int) -3 parses as a cast of the negation
	expr, par := parseReturnExpr(t, `(int) -3`)
	assert.False(t, par.ErrorHasOccurred())

	cast, can := expr.(*CastNode)
	assert.True(t, can)
	assert.Equal(t, IntType, cast.Type)
	negate, can := cast.Expr.(*NegateNode)
	assert.True(t, can)
	literal, can := negate.Operand.(*LiteralIntNode)
	assert.True(t, can)
	assert.Equal(t, "3", literal.Text)
}

func TestParser_Expr_CastReference(t *testing.T) {

	expr, par := parseReturnExpr(t, `(Animal) a`)
	assert.False(t, par.ErrorHasOccurred())

	cast, can := expr.(*CastNode)
	assert.True(t, can)
	assert.Equal(t, "Animal", cast.Type.String())
	_, can = cast.Expr.(*VariableNode)
	assert.True(t, can)

	// Casting to an array of a basic type goes down the reference branch
	expr, par = parseReturnExpr(t, `(int[]) a`)
	assert.False(t, par.ErrorHasOccurred())
	cast, can = expr.(*CastNode)
	assert.True(t, can)
	assert.Equal(t, "int[]", cast.Type.String())

	// Chained reference casts are fine: a cast is a simple unary
	expr, par = parseReturnExpr(t, `(Animal) (Pet) a`)
	assert.False(t, par.ErrorHasOccurred())
	outer, can := expr.(*CastNode)
	assert.True(t, can)
	_, can = outer.Expr.(*CastNode)
	assert.True(t, can)
}

func TestParser_Expr_CastReference_NoUnary(t *testing.T) {

	// A reference-type cast recurses into simple unary, so "(T) -x" does
	// not parse as a cast of a negation; the '-' is reported instead.
	par := NewParser("test.jay", `class C { int f() { return (T) -x; } }`)
	par.ErrOut = io.Discard
	par.Parse()
	assert.True(t, par.ErrorHasOccurred())
	assert.Contains(t, par.Errors[0], "Literal sought where - found")
}

func TestParser_Expr_ParenthesizedLeavesNoNode(t *testing.T) {

	// Grouping shapes the tree but leaves no wrapper node behind
	expr, par := parseReturnExpr(t, `(a + b) * c`)
	assert.False(t, par.ErrorHasOccurred())

	mul, can := expr.(*MultiplyNode)
	assert.True(t, can)
	_, can = mul.Lhs.(*PlusNode)
	assert.True(t, can)
}

func TestParser_Expr_AmbiguousNames(t *testing.T) {

	// A simple name is a variable
	expr, par := parseReturnExpr(t, `x`)
	assert.False(t, par.ErrorHasOccurred())
	_, can := expr.(*VariableNode)
	assert.True(t, can)

	// A dotted name is a field selection off an ambiguous prefix
	expr, par = parseReturnExpr(t, `a.b`)
	assert.False(t, par.ErrorHasOccurred())
	sel, can := expr.(*FieldSelectionNode)
	assert.True(t, can)
	assert.Nil(t, sel.Target)
	assert.Equal(t, "a", sel.AmbiguousPart)
	assert.Equal(t, "b", sel.Name)

	// A dotted name applied to arguments is a message whose ambiguous
	// part is everything before the last dot
	expr, par = parseReturnExpr(t, `a.b.c(x)`)
	assert.False(t, par.ErrorHasOccurred())
	message, can := expr.(*MessageExpressionNode)
	assert.True(t, can)
	assert.Nil(t, message.Target)
	assert.Equal(t, "a.b", message.AmbiguousPart)
	assert.Equal(t, "c", message.Name)
	assert.Equal(t, 1, len(message.Args))
	assert.Equal(t, "x", message.Args[0].(*VariableNode).Name)

	// An unqualified call has no ambiguous part
	expr, par = parseReturnExpr(t, `c(x, y)`)
	assert.False(t, par.ErrorHasOccurred())
	message, can = expr.(*MessageExpressionNode)
	assert.True(t, can)
	assert.Equal(t, "", message.AmbiguousPart)
	assert.Equal(t, 2, len(message.Args))
}

func TestParser_Expr_ThisAndSuper(t *testing.T) {

	expr, par := parseReturnExpr(t, `this`)
	assert.False(t, par.ErrorHasOccurred())
	_, can := expr.(*ThisNode)
	assert.True(t, can)

	expr, par = parseReturnExpr(t, `this.x`)
	assert.False(t, par.ErrorHasOccurred())
	sel, can := expr.(*FieldSelectionNode)
	assert.True(t, can)
	_, can = sel.Target.(*ThisNode)
	assert.True(t, can)

	expr, par = parseReturnExpr(t, `super.size()`)
	assert.False(t, par.ErrorHasOccurred())
	message, can := expr.(*MessageExpressionNode)
	assert.True(t, can)
	_, can = message.Target.(*SuperNode)
	assert.True(t, can)
	assert.Equal(t, "size", message.Name)

	expr, par = parseReturnExpr(t, `super.count`)
	assert.False(t, par.ErrorHasOccurred())
	sel, can = expr.(*FieldSelectionNode)
	assert.True(t, can)
	_, can = sel.Target.(*SuperNode)
	assert.True(t, can)
}

func TestParser_Stmt_ConstructorInvocations(t *testing.T) {

	src := `class C { C(int n) { this(); } C() { super(1, 2); } }`
	par := NewParser("test.jay", src)
	unit := par.Parse()
	assert.False(t, par.ErrorHasOccurred())

	first := unit.TypeDecls[0].Members[0].(*ConstructorDeclNode)
	stmt := first.Body.Statements[0].(*StatementExpressionNode)
	thisCall, can := stmt.Expr.(*ThisConstructionNode)
	assert.True(t, can)
	assert.Equal(t, 0, len(thisCall.Args))
	assert.True(t, thisCall.IsStatementExpression())

	second := unit.TypeDecls[0].Members[1].(*ConstructorDeclNode)
	stmt = second.Body.Statements[0].(*StatementExpressionNode)
	superCall, can := stmt.Expr.(*SuperConstructionNode)
	assert.True(t, can)
	assert.Equal(t, 2, len(superCall.Args))
}

func TestParser_Expr_InstanceOf(t *testing.T) {

	expr, par := parseReturnExpr(t, `a instanceof animals.Animal`)
	assert.False(t, par.ErrorHasOccurred())

	test, can := expr.(*InstanceOfNode)
	assert.True(t, can)
	assert.Equal(t, "a", test.Expr.(*VariableNode).Name)
	assert.Equal(t, "animals.Animal", test.TypeSpec.String())
}

func TestParser_Expr_NewObject(t *testing.T) {

	expr, par := parseReturnExpr(t, `new Animal(1, x)`)
	assert.False(t, par.ErrorHasOccurred())

	newOp, can := expr.(*NewOpNode)
	assert.True(t, can)
	assert.Equal(t, "Animal", newOp.Type.String())
	assert.Equal(t, 2, len(newOp.Args))
}

func TestParser_Expr_NewArray(t *testing.T) {

	// new int[3] - one sized dimension
	expr, par := parseReturnExpr(t, `new int[3]`)
	assert.False(t, par.ErrorHasOccurred())
	newArray, can := expr.(*NewArrayOpNode)
	assert.True(t, can)
	assert.Equal(t, "int[]", newArray.Type.String())
	assert.Equal(t, 1, len(newArray.Dims))

	// new int[3][4] - two sized dimensions
	expr, par = parseReturnExpr(t, `new int[3][4]`)
	assert.False(t, par.ErrorHasOccurred())
	newArray, can = expr.(*NewArrayOpNode)
	assert.True(t, can)
	assert.Equal(t, "int[][]", newArray.Type.String())
	assert.Equal(t, 2, len(newArray.Dims))

	// new int[3][][] - one sized dimension, two promoted empty pairs
	expr, par = parseReturnExpr(t, `new int[3][][]`)
	assert.False(t, par.ErrorHasOccurred())
	newArray, can = expr.(*NewArrayOpNode)
	assert.True(t, can)
	assert.Equal(t, "int[][][]", newArray.Type.String())
	assert.Equal(t, 1, len(newArray.Dims))
	assert.Equal(t, "3", newArray.Dims[0].(*LiteralIntNode).Text)
}

func TestParser_Expr_ArrayInitializer(t *testing.T) {

	// new int[]{1,2,} - trailing comma allowed
	expr, par := parseReturnExpr(t, `new int[]{1,2,}`)
	assert.False(t, par.ErrorHasOccurred())

	initializer, can := expr.(*ArrayInitializerNode)
	assert.True(t, can)
	assert.Equal(t, "int[]", initializer.Type.String())
	assert.Equal(t, 2, len(initializer.Initials))
	assert.Equal(t, "1", initializer.Initials[0].(*LiteralIntNode).Text)
	assert.Equal(t, "2", initializer.Initials[1].(*LiteralIntNode).Text)

	// Nested initializers for nested arrays
	expr, par = parseReturnExpr(t, `new int[][]{{1}, {2, 3}}`)
	assert.False(t, par.ErrorHasOccurred())
	outer, can := expr.(*ArrayInitializerNode)
	assert.True(t, can)
	assert.Equal(t, "int[][]", outer.Type.String())
	assert.Equal(t, 2, len(outer.Initials))
	inner, can := outer.Initials[1].(*ArrayInitializerNode)
	assert.True(t, can)
	assert.Equal(t, "int[]", inner.Type.String())
	assert.Equal(t, 2, len(inner.Initials))
}

func TestParser_Decl_ArrayInitializerInDeclarator(t *testing.T) {

	src := `class C { int[] a = {1, 2}; }`
	par := NewParser("test.jay", src)
	unit := par.Parse()
	assert.False(t, par.ErrorHasOccurred())

	field := unit.TypeDecls[0].Members[0].(*FieldDeclNode)
	initializer, can := field.Declarators[0].Initializer.(*ArrayInitializerNode)
	assert.True(t, can)
	assert.Equal(t, "int[]", initializer.Type.String())
	assert.Equal(t, 2, len(initializer.Initials))
}

func TestParser_Expr_Literals(t *testing.T) {

	expr, _ := parseReturnExpr(t, `'a'`)
	char, can := expr.(*LiteralCharNode)
	assert.True(t, can)
	assert.Equal(t, `'a'`, char.Text)

	expr, _ = parseReturnExpr(t, `"hi\n"`)
	str, can := expr.(*LiteralStringNode)
	assert.True(t, can)
	assert.Equal(t, `"hi\n"`, str.Text)

	expr, _ = parseReturnExpr(t, `true`)
	_, can = expr.(*LiteralTrueNode)
	assert.True(t, can)

	expr, _ = parseReturnExpr(t, `false`)
	_, can = expr.(*LiteralFalseNode)
	assert.True(t, can)

	expr, _ = parseReturnExpr(t, `null`)
	_, can = expr.(*LiteralNullNode)
	assert.True(t, can)
}
