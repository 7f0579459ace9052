/*
File    : go-jay/parser/test_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser - test_visitor.go
// This file defines the TestingVisitor type, which is a visitor implementation
// used for testing the AST traversal of the parser. The TestingVisitor asserts
// that the nodes visited during a pre-order traversal match an expected
// sequence of nodes provided in advance. It uses the testify/assert package to
// perform assertions and will fail tests if the actual traversal does not
// match expectations.
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestingVisitor is a visitor that asserts the expected nodes
// The expected nodes are given in pre-order traversal order
type TestingVisitor struct {
	ExpectedNodes []Node     // List of expected nodes in traversal order
	Ptr           int        // Current position pointer in the expected nodes list
	T             *testing.T // Testing instance for assertions
}

// next returns the next expected node, or nil when the expectation list is
// exhausted (which is itself reported as a failure).
func (v *TestingVisitor) next() Node {
	if v.Ptr >= len(v.ExpectedNodes) {
		assert.Fail(v.T, "more nodes visited than expected")
		return nil
	}
	curr := v.ExpectedNodes[v.Ptr]
	v.Ptr++
	return curr
}

// Done asserts that every expected node has been visited.
func (v *TestingVisitor) Done() {
	assert.Equal(v.T, len(v.ExpectedNodes), v.Ptr, "not all expected nodes were visited")
}

// VisitCompilationUnitNode visits the root and recursively visits all declarations
func (v *TestingVisitor) VisitCompilationUnitNode(node CompilationUnitNode) {
	for _, decl := range node.TypeDecls {
		decl.Accept(v)
	}
}

// VisitClassDeclNode asserts a class declaration and visits its members
func (v *TestingVisitor) VisitClassDeclNode(node ClassDeclNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*ClassDeclNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Name, node.Name)
		assert.Equal(v.T, exp.SuperType.String(), node.SuperType.String())
	}
	for _, member := range node.Members {
		member.Accept(v)
	}
}

// VisitFieldDeclNode asserts a field declaration and visits its declarators
func (v *TestingVisitor) VisitFieldDeclNode(node FieldDeclNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*FieldDeclNode)
	assert.True(v.T, ok)
	for _, decl := range node.Declarators {
		decl.Accept(v)
	}
}

// VisitMethodDeclNode asserts a method declaration and visits its parameters and body
func (v *TestingVisitor) VisitMethodDeclNode(node MethodDeclNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*MethodDeclNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Name, node.Name)
		assert.Equal(v.T, exp.ReturnType.String(), node.ReturnType.String())
	}
	for _, param := range node.Params {
		param.Accept(v)
	}
	if node.Body != nil {
		node.Body.Accept(v)
	}
}

// VisitConstructorDeclNode asserts a constructor declaration and visits its
// parameters and body
func (v *TestingVisitor) VisitConstructorDeclNode(node ConstructorDeclNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*ConstructorDeclNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Name, node.Name)
	}
	for _, param := range node.Params {
		param.Accept(v)
	}
	node.Body.Accept(v)
}

// VisitFormalParameterNode asserts a formal parameter's type and name
func (v *TestingVisitor) VisitFormalParameterNode(node FormalParameterNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*FormalParameterNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Type.String(), node.Type.String())
		assert.Equal(v.T, exp.Name, node.Name)
	}
}

// VisitVariableDeclaratorNode asserts a declarator and visits its initializer
func (v *TestingVisitor) VisitVariableDeclaratorNode(node VariableDeclaratorNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*VariableDeclaratorNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Name, node.Name)
		assert.Equal(v.T, exp.Type.String(), node.Type.String())
	}
	if node.Initializer != nil {
		node.Initializer.Accept(v)
	}
}

// VisitBlockNode asserts a block and visits its statements
func (v *TestingVisitor) VisitBlockNode(node BlockNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*BlockNode)
	assert.True(v.T, ok)
	for _, stmt := range node.Statements {
		stmt.Accept(v)
	}
}

// VisitIfNode asserts an if statement and visits its parts
func (v *TestingVisitor) VisitIfNode(node IfNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*IfNode)
	assert.True(v.T, ok)
	node.Condition.Accept(v)
	node.Then.Accept(v)
	if node.Else != nil {
		node.Else.Accept(v)
	}
}

// VisitWhileNode asserts a while statement and visits its parts
func (v *TestingVisitor) VisitWhileNode(node WhileNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*WhileNode)
	assert.True(v.T, ok)
	node.Condition.Accept(v)
	node.Body.Accept(v)
}

// VisitReturnNode asserts a return statement and visits its expression
func (v *TestingVisitor) VisitReturnNode(node ReturnNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*ReturnNode)
	assert.True(v.T, ok)
	if node.Expr != nil {
		node.Expr.Accept(v)
	}
}

// VisitEmptyStatementNode asserts an empty statement
func (v *TestingVisitor) VisitEmptyStatementNode(node EmptyStatementNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*EmptyStatementNode)
	assert.True(v.T, ok)
}

// VisitStatementExpressionNode asserts a statement expression and visits
// the wrapped expression
func (v *TestingVisitor) VisitStatementExpressionNode(node StatementExpressionNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*StatementExpressionNode)
	assert.True(v.T, ok)
	node.Expr.Accept(v)
}

// VisitVariableDeclarationNode asserts a local declaration and visits its
// declarators
func (v *TestingVisitor) VisitVariableDeclarationNode(node VariableDeclarationNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*VariableDeclarationNode)
	assert.True(v.T, ok)
	for _, decl := range node.Declarators {
		decl.Accept(v)
	}
}

// VisitLiteralIntNode asserts an integer literal's text
func (v *TestingVisitor) VisitLiteralIntNode(node LiteralIntNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*LiteralIntNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Text, node.Text)
	}
}

// VisitLiteralCharNode asserts a character literal's text
func (v *TestingVisitor) VisitLiteralCharNode(node LiteralCharNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*LiteralCharNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Text, node.Text)
	}
}

// VisitLiteralStringNode asserts a string literal's text
func (v *TestingVisitor) VisitLiteralStringNode(node LiteralStringNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*LiteralStringNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Text, node.Text)
	}
}

// VisitLiteralTrueNode asserts the true literal
func (v *TestingVisitor) VisitLiteralTrueNode(node LiteralTrueNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*LiteralTrueNode)
	assert.True(v.T, ok)
}

// VisitLiteralFalseNode asserts the false literal
func (v *TestingVisitor) VisitLiteralFalseNode(node LiteralFalseNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*LiteralFalseNode)
	assert.True(v.T, ok)
}

// VisitLiteralNullNode asserts the null literal
func (v *TestingVisitor) VisitLiteralNullNode(node LiteralNullNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*LiteralNullNode)
	assert.True(v.T, ok)
}

// VisitVariableNode asserts a simple name
func (v *TestingVisitor) VisitVariableNode(node VariableNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*VariableNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Name, node.Name)
	}
}

// VisitFieldSelectionNode asserts a field selection and visits its target
func (v *TestingVisitor) VisitFieldSelectionNode(node FieldSelectionNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*FieldSelectionNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.AmbiguousPart, node.AmbiguousPart)
		assert.Equal(v.T, exp.Name, node.Name)
	}
	if node.Target != nil {
		node.Target.Accept(v)
	}
}

// VisitArrayExpressionNode asserts an index expression and visits its parts
func (v *TestingVisitor) VisitArrayExpressionNode(node ArrayExpressionNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*ArrayExpressionNode)
	assert.True(v.T, ok)
	node.Target.Accept(v)
	node.Index.Accept(v)
}

// VisitMessageExpressionNode asserts an invocation and visits its target
// and arguments
func (v *TestingVisitor) VisitMessageExpressionNode(node MessageExpressionNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*MessageExpressionNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.AmbiguousPart, node.AmbiguousPart)
		assert.Equal(v.T, exp.Name, node.Name)
	}
	if node.Target != nil {
		node.Target.Accept(v)
	}
	for _, arg := range node.Args {
		arg.Accept(v)
	}
}

// VisitThisNode asserts this
func (v *TestingVisitor) VisitThisNode(node ThisNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*ThisNode)
	assert.True(v.T, ok)
}

// VisitSuperNode asserts super
func (v *TestingVisitor) VisitSuperNode(node SuperNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*SuperNode)
	assert.True(v.T, ok)
}

// VisitThisConstructionNode asserts this(...) and visits its arguments
func (v *TestingVisitor) VisitThisConstructionNode(node ThisConstructionNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*ThisConstructionNode)
	assert.True(v.T, ok)
	for _, arg := range node.Args {
		arg.Accept(v)
	}
}

// VisitSuperConstructionNode asserts super(...) and visits its arguments
func (v *TestingVisitor) VisitSuperConstructionNode(node SuperConstructionNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*SuperConstructionNode)
	assert.True(v.T, ok)
	for _, arg := range node.Args {
		arg.Accept(v)
	}
}

// VisitNewOpNode asserts object creation and visits its arguments
func (v *TestingVisitor) VisitNewOpNode(node NewOpNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*NewOpNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Type.String(), node.Type.String())
	}
	for _, arg := range node.Args {
		arg.Accept(v)
	}
}

// VisitNewArrayOpNode asserts array creation and visits its dimensions
func (v *TestingVisitor) VisitNewArrayOpNode(node NewArrayOpNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*NewArrayOpNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Type.String(), node.Type.String())
	}
	for _, dim := range node.Dims {
		dim.Accept(v)
	}
}

// VisitArrayInitializerNode asserts an initializer and visits its elements
func (v *TestingVisitor) VisitArrayInitializerNode(node ArrayInitializerNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*ArrayInitializerNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Type.String(), node.Type.String())
	}
	for _, initial := range node.Initials {
		initial.Accept(v)
	}
}

// VisitPreIncrementNode asserts ++x and visits its operand
func (v *TestingVisitor) VisitPreIncrementNode(node PreIncrementNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*PreIncrementNode)
	assert.True(v.T, ok)
	node.Operand.Accept(v)
}

// VisitPostDecrementNode asserts x-- and visits its operand
func (v *TestingVisitor) VisitPostDecrementNode(node PostDecrementNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*PostDecrementNode)
	assert.True(v.T, ok)
	node.Operand.Accept(v)
}

// VisitNegateNode asserts unary minus and visits its operand
func (v *TestingVisitor) VisitNegateNode(node NegateNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*NegateNode)
	assert.True(v.T, ok)
	node.Operand.Accept(v)
}

// VisitUnaryPlusNode asserts unary plus and visits its operand
func (v *TestingVisitor) VisitUnaryPlusNode(node UnaryPlusNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*UnaryPlusNode)
	assert.True(v.T, ok)
	node.Operand.Accept(v)
}

// VisitLogicalNotNode asserts logical negation and visits its operand
func (v *TestingVisitor) VisitLogicalNotNode(node LogicalNotNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*LogicalNotNode)
	assert.True(v.T, ok)
	node.Operand.Accept(v)
}

// assertBinary asserts the next expected node has the given concrete type
// and visits both operands.
func (v *TestingVisitor) assertBinary(ok bool, lhs ExpressionNode, rhs ExpressionNode) {
	assert.True(v.T, ok)
	lhs.Accept(v)
	rhs.Accept(v)
}

// VisitPlusNode asserts an addition
func (v *TestingVisitor) VisitPlusNode(node PlusNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*PlusNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitSubtractNode asserts a subtraction
func (v *TestingVisitor) VisitSubtractNode(node SubtractNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*SubtractNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitMultiplyNode asserts a multiplication
func (v *TestingVisitor) VisitMultiplyNode(node MultiplyNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*MultiplyNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitDivideNode asserts a division
func (v *TestingVisitor) VisitDivideNode(node DivideNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*DivideNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitModuloNode asserts a remainder operation
func (v *TestingVisitor) VisitModuloNode(node ModuloNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*ModuloNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitGreaterThanNode asserts a > comparison
func (v *TestingVisitor) VisitGreaterThanNode(node GreaterThanNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*GreaterThanNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitLessEqualNode asserts a <= comparison
func (v *TestingVisitor) VisitLessEqualNode(node LessEqualNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*LessEqualNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitLogicalAndNode asserts a && operation
func (v *TestingVisitor) VisitLogicalAndNode(node LogicalAndNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*LogicalAndNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitEqualNode asserts an == comparison
func (v *TestingVisitor) VisitEqualNode(node EqualNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*EqualNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitInstanceOfNode asserts an instanceof test and visits its expression
func (v *TestingVisitor) VisitInstanceOfNode(node InstanceOfNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*InstanceOfNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.TypeSpec.String(), node.TypeSpec.String())
	}
	node.Expr.Accept(v)
}

// VisitAssignNode asserts an assignment
func (v *TestingVisitor) VisitAssignNode(node AssignNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*AssignNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitPlusAssignNode asserts a compound assignment
func (v *TestingVisitor) VisitPlusAssignNode(node PlusAssignNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*PlusAssignNode)
	v.assertBinary(ok, node.Lhs, node.Rhs)
}

// VisitCastNode asserts a cast and visits its operand
func (v *TestingVisitor) VisitCastNode(node CastNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	exp, ok := curr.(*CastNode)
	assert.True(v.T, ok)
	if ok {
		assert.Equal(v.T, exp.Type.String(), node.Type.String())
	}
	node.Expr.Accept(v)
}

// VisitWildExpressionNode asserts the error placeholder
func (v *TestingVisitor) VisitWildExpressionNode(node WildExpressionNode) {
	curr := v.next()
	if curr == nil {
		return
	}
	_, ok := curr.(*WildExpressionNode)
	assert.True(v.T, ok)
}
