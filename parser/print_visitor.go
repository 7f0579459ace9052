/*
File    : go-jay/parser/print_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// This file defines the PrintingVisitor type, which renders an AST as an
// indented tree, one node per line. The repl and the file runner use it to
// show what the parser built; the main package's tests print sample trees
// with it.
package parser

import (
	"bytes"
	"fmt"
)

const INDENT_SIZE = 4

// PrintingVisitor is a visitor that prints the nodes
type PrintingVisitor struct {
	Indent int          // Current indentation in spaces
	Buf    bytes.Buffer // Accumulated output
}

// indent indents the buffer by the indent size
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// enter prints one labeled line and increases the indentation for the
// node's children.
func (p *PrintingVisitor) enter(format string, args ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
	p.Indent += INDENT_SIZE
}

// leave undoes one enter.
func (p *PrintingVisitor) leave() {
	p.Indent -= INDENT_SIZE
}

// line prints one labeled line for a leaf node.
func (p *PrintingVisitor) line(format string, args ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
}

// String returns the string representation of the visitor
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}

// VisitCompilationUnitNode prints the compilation unit and recursively
// prints its declarations
func (p *PrintingVisitor) VisitCompilationUnitNode(node CompilationUnitNode) {
	p.enter("CompilationUnit [%s]", node.FileName)
	if node.Package != nil {
		p.line("Package [%s]", node.Package.Name)
	}
	for _, imp := range node.Imports {
		p.line("Import [%s]", imp.Name)
	}
	for _, decl := range node.TypeDecls {
		decl.Accept(p)
	}
	p.leave()
}

// VisitClassDeclNode prints a class declaration and its members
func (p *PrintingVisitor) VisitClassDeclNode(node ClassDeclNode) {
	p.enter("ClassDecl [%s%s extends %s]", joinModifiers(node.Mods), node.Name, node.SuperType.String())
	for _, member := range node.Members {
		member.Accept(p)
	}
	p.leave()
}

// VisitFieldDeclNode prints a field declaration and its declarators
func (p *PrintingVisitor) VisitFieldDeclNode(node FieldDeclNode) {
	p.enter("FieldDecl [%s]", joinModifiers(node.Mods)+declaratorsLiteral(node.Declarators))
	for _, decl := range node.Declarators {
		decl.Accept(p)
	}
	p.leave()
}

// VisitMethodDeclNode prints a method declaration, its parameters, and its body
func (p *PrintingVisitor) VisitMethodDeclNode(node MethodDeclNode) {
	p.enter("MethodDecl [%s%s %s]", joinModifiers(node.Mods), node.ReturnType.String(), node.Name)
	for _, param := range node.Params {
		param.Accept(p)
	}
	if node.Body != nil {
		node.Body.Accept(p)
	}
	p.leave()
}

// VisitConstructorDeclNode prints a constructor declaration, its parameters, and its body
func (p *PrintingVisitor) VisitConstructorDeclNode(node ConstructorDeclNode) {
	p.enter("ConstructorDecl [%s%s]", joinModifiers(node.Mods), node.Name)
	for _, param := range node.Params {
		param.Accept(p)
	}
	node.Body.Accept(p)
	p.leave()
}

// VisitFormalParameterNode prints a formal parameter
func (p *PrintingVisitor) VisitFormalParameterNode(node FormalParameterNode) {
	p.line("FormalParameter [%s %s]", node.Type.String(), node.Name)
}

// VisitVariableDeclaratorNode prints a declarator and its initializer
func (p *PrintingVisitor) VisitVariableDeclaratorNode(node VariableDeclaratorNode) {
	if node.Initializer == nil {
		p.line("VariableDeclarator [%s %s]", node.Type.String(), node.Name)
		return
	}
	p.enter("VariableDeclarator [%s %s =]", node.Type.String(), node.Name)
	node.Initializer.Accept(p)
	p.leave()
}

// VisitBlockNode prints a block and its statements
func (p *PrintingVisitor) VisitBlockNode(node BlockNode) {
	p.enter("Block")
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.leave()
}

// VisitIfNode prints an if statement with its condition and branches
func (p *PrintingVisitor) VisitIfNode(node IfNode) {
	p.enter("If")
	node.Condition.Accept(p)
	node.Then.Accept(p)
	if node.Else != nil {
		node.Else.Accept(p)
	}
	p.leave()
}

// VisitWhileNode prints a while statement with its condition and body
func (p *PrintingVisitor) VisitWhileNode(node WhileNode) {
	p.enter("While")
	node.Condition.Accept(p)
	node.Body.Accept(p)
	p.leave()
}

// VisitReturnNode prints a return statement and its expression, if any
func (p *PrintingVisitor) VisitReturnNode(node ReturnNode) {
	if node.Expr == nil {
		p.line("Return")
		return
	}
	p.enter("Return")
	node.Expr.Accept(p)
	p.leave()
}

// VisitEmptyStatementNode prints an empty statement
func (p *PrintingVisitor) VisitEmptyStatementNode(node EmptyStatementNode) {
	p.line("EmptyStatement")
}

// VisitStatementExpressionNode prints a statement expression wrapper
func (p *PrintingVisitor) VisitStatementExpressionNode(node StatementExpressionNode) {
	p.enter("StatementExpression")
	node.Expr.Accept(p)
	p.leave()
}

// VisitVariableDeclarationNode prints a local declaration and its declarators
func (p *PrintingVisitor) VisitVariableDeclarationNode(node VariableDeclarationNode) {
	p.enter("VariableDeclaration")
	for _, decl := range node.Declarators {
		decl.Accept(p)
	}
	p.leave()
}

// VisitLiteralIntNode prints an integer literal
func (p *PrintingVisitor) VisitLiteralIntNode(node LiteralIntNode) {
	p.line("LiteralInt [%s]", node.Text)
}

// VisitLiteralCharNode prints a character literal
func (p *PrintingVisitor) VisitLiteralCharNode(node LiteralCharNode) {
	p.line("LiteralChar [%s]", node.Text)
}

// VisitLiteralStringNode prints a string literal
func (p *PrintingVisitor) VisitLiteralStringNode(node LiteralStringNode) {
	p.line("LiteralString [%s]", node.Text)
}

// VisitLiteralTrueNode prints the true literal
func (p *PrintingVisitor) VisitLiteralTrueNode(node LiteralTrueNode) {
	p.line("LiteralTrue")
}

// VisitLiteralFalseNode prints the false literal
func (p *PrintingVisitor) VisitLiteralFalseNode(node LiteralFalseNode) {
	p.line("LiteralFalse")
}

// VisitLiteralNullNode prints the null literal
func (p *PrintingVisitor) VisitLiteralNullNode(node LiteralNullNode) {
	p.line("LiteralNull")
}

// VisitVariableNode prints a simple name
func (p *PrintingVisitor) VisitVariableNode(node VariableNode) {
	p.line("Variable [%s]", node.Name)
}

// VisitFieldSelectionNode prints a field selection and its target, if any
func (p *PrintingVisitor) VisitFieldSelectionNode(node FieldSelectionNode) {
	if node.Target == nil {
		p.line("FieldSelection [%s.%s]", node.AmbiguousPart, node.Name)
		return
	}
	p.enter("FieldSelection [.%s]", node.Name)
	node.Target.Accept(p)
	p.leave()
}

// VisitArrayExpressionNode prints an array index expression
func (p *PrintingVisitor) VisitArrayExpressionNode(node ArrayExpressionNode) {
	p.enter("ArrayExpression")
	node.Target.Accept(p)
	node.Index.Accept(p)
	p.leave()
}

// VisitMessageExpressionNode prints a method invocation with its target
// or ambiguous qualifier and its arguments
func (p *PrintingVisitor) VisitMessageExpressionNode(node MessageExpressionNode) {
	if node.AmbiguousPart != "" {
		p.enter("MessageExpression [%s.%s]", node.AmbiguousPart, node.Name)
	} else {
		p.enter("MessageExpression [%s]", node.Name)
	}
	if node.Target != nil {
		node.Target.Accept(p)
	}
	for _, arg := range node.Args {
		arg.Accept(p)
	}
	p.leave()
}

// VisitThisNode prints this
func (p *PrintingVisitor) VisitThisNode(node ThisNode) {
	p.line("This")
}

// VisitSuperNode prints super
func (p *PrintingVisitor) VisitSuperNode(node SuperNode) {
	p.line("Super")
}

// VisitThisConstructionNode prints this(...) and its arguments
func (p *PrintingVisitor) VisitThisConstructionNode(node ThisConstructionNode) {
	p.enter("ThisConstruction")
	for _, arg := range node.Args {
		arg.Accept(p)
	}
	p.leave()
}

// VisitSuperConstructionNode prints super(...) and its arguments
func (p *PrintingVisitor) VisitSuperConstructionNode(node SuperConstructionNode) {
	p.enter("SuperConstruction")
	for _, arg := range node.Args {
		arg.Accept(p)
	}
	p.leave()
}

// VisitNewOpNode prints object creation with its arguments
func (p *PrintingVisitor) VisitNewOpNode(node NewOpNode) {
	p.enter("NewOp [%s]", node.Type.String())
	for _, arg := range node.Args {
		arg.Accept(p)
	}
	p.leave()
}

// VisitNewArrayOpNode prints array creation with its dimensions
func (p *PrintingVisitor) VisitNewArrayOpNode(node NewArrayOpNode) {
	p.enter("NewArrayOp [%s]", node.Type.String())
	for _, dim := range node.Dims {
		dim.Accept(p)
	}
	p.leave()
}

// VisitArrayInitializerNode prints an array initializer and its elements
func (p *PrintingVisitor) VisitArrayInitializerNode(node ArrayInitializerNode) {
	p.enter("ArrayInitializer [%s]", node.Type.String())
	for _, initial := range node.Initials {
		initial.Accept(p)
	}
	p.leave()
}

// VisitPreIncrementNode prints ++x and its operand
func (p *PrintingVisitor) VisitPreIncrementNode(node PreIncrementNode) {
	p.enter("PreIncrement")
	node.Operand.Accept(p)
	p.leave()
}

// VisitPostDecrementNode prints x-- and its operand
func (p *PrintingVisitor) VisitPostDecrementNode(node PostDecrementNode) {
	p.enter("PostDecrement")
	node.Operand.Accept(p)
	p.leave()
}

// VisitNegateNode prints unary minus and its operand
func (p *PrintingVisitor) VisitNegateNode(node NegateNode) {
	p.enter("Negate")
	node.Operand.Accept(p)
	p.leave()
}

// VisitUnaryPlusNode prints unary plus and its operand
func (p *PrintingVisitor) VisitUnaryPlusNode(node UnaryPlusNode) {
	p.enter("UnaryPlus")
	node.Operand.Accept(p)
	p.leave()
}

// VisitLogicalNotNode prints logical negation and its operand
func (p *PrintingVisitor) VisitLogicalNotNode(node LogicalNotNode) {
	p.enter("LogicalNot")
	node.Operand.Accept(p)
	p.leave()
}

// visitBinary prints one binary node with its operands
func (p *PrintingVisitor) visitBinary(label string, lhs ExpressionNode, rhs ExpressionNode) {
	p.enter("%s", label)
	lhs.Accept(p)
	rhs.Accept(p)
	p.leave()
}

// VisitPlusNode prints an addition
func (p *PrintingVisitor) VisitPlusNode(node PlusNode) {
	p.visitBinary("Plus [+]", node.Lhs, node.Rhs)
}

// VisitSubtractNode prints a subtraction
func (p *PrintingVisitor) VisitSubtractNode(node SubtractNode) {
	p.visitBinary("Subtract [-]", node.Lhs, node.Rhs)
}

// VisitMultiplyNode prints a multiplication
func (p *PrintingVisitor) VisitMultiplyNode(node MultiplyNode) {
	p.visitBinary("Multiply [*]", node.Lhs, node.Rhs)
}

// VisitDivideNode prints a division
func (p *PrintingVisitor) VisitDivideNode(node DivideNode) {
	p.visitBinary("Divide [/]", node.Lhs, node.Rhs)
}

// VisitModuloNode prints a remainder operation
func (p *PrintingVisitor) VisitModuloNode(node ModuloNode) {
	p.visitBinary("Modulo [%]", node.Lhs, node.Rhs)
}

// VisitGreaterThanNode prints a > comparison
func (p *PrintingVisitor) VisitGreaterThanNode(node GreaterThanNode) {
	p.visitBinary("GreaterThan [>]", node.Lhs, node.Rhs)
}

// VisitLessEqualNode prints a <= comparison
func (p *PrintingVisitor) VisitLessEqualNode(node LessEqualNode) {
	p.visitBinary("LessEqual [<=]", node.Lhs, node.Rhs)
}

// VisitLogicalAndNode prints a && operation
func (p *PrintingVisitor) VisitLogicalAndNode(node LogicalAndNode) {
	p.visitBinary("LogicalAnd [&&]", node.Lhs, node.Rhs)
}

// VisitEqualNode prints an == comparison
func (p *PrintingVisitor) VisitEqualNode(node EqualNode) {
	p.visitBinary("Equal [==]", node.Lhs, node.Rhs)
}

// VisitInstanceOfNode prints an instanceof test
func (p *PrintingVisitor) VisitInstanceOfNode(node InstanceOfNode) {
	p.enter("InstanceOf [%s]", node.TypeSpec.String())
	node.Expr.Accept(p)
	p.leave()
}

// VisitAssignNode prints an assignment
func (p *PrintingVisitor) VisitAssignNode(node AssignNode) {
	p.visitBinary("Assign [=]", node.Lhs, node.Rhs)
}

// VisitPlusAssignNode prints a compound assignment
func (p *PrintingVisitor) VisitPlusAssignNode(node PlusAssignNode) {
	p.visitBinary("PlusAssign [+=]", node.Lhs, node.Rhs)
}

// VisitCastNode prints a cast and its operand
func (p *PrintingVisitor) VisitCastNode(node CastNode) {
	p.enter("Cast [(%s)]", node.Type.String())
	node.Expr.Accept(p)
	p.leave()
}

// VisitWildExpressionNode prints the error placeholder
func (p *PrintingVisitor) VisitWildExpressionNode(node WildExpressionNode) {
	p.line("WildExpression")
}
