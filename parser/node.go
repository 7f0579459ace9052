/*
File    : go-jay/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "strings"

// NodeVisitor implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing, analysis, or transformation.
type NodeVisitor interface {
	// Structure visitors - compilation unit, class, and member handling
	VisitCompilationUnitNode(node CompilationUnitNode) // Entry point for one source file
	VisitClassDeclNode(node ClassDeclNode)             // Class declarations: class C extends S { ... }
	VisitFieldDeclNode(node FieldDeclNode)             // Field declarations: int x, y;
	VisitMethodDeclNode(node MethodDeclNode)           // Method declarations: int f(int x) { ... }
	VisitConstructorDeclNode(node ConstructorDeclNode) // Constructor declarations: C(int x) { ... }
	VisitFormalParameterNode(node FormalParameterNode) // Formal parameters: int x
	VisitVariableDeclaratorNode(node VariableDeclaratorNode)

	// Statement visitors
	VisitBlockNode(node BlockNode)                             // Code blocks: { stmt1 stmt2 }
	VisitIfNode(node IfNode)                                   // If-else conditionals
	VisitWhileNode(node WhileNode)                             // While loops
	VisitReturnNode(node ReturnNode)                           // Return statements
	VisitEmptyStatementNode(node EmptyStatementNode)           // Bare semicolons
	VisitStatementExpressionNode(node StatementExpressionNode) // Expressions used as statements
	VisitVariableDeclarationNode(node VariableDeclarationNode) // Local variable declarations

	// Literal visitors
	VisitLiteralIntNode(node LiteralIntNode)       // Integer literals: 42
	VisitLiteralCharNode(node LiteralCharNode)     // Character literals: 'a'
	VisitLiteralStringNode(node LiteralStringNode) // String literals: "hi"
	VisitLiteralTrueNode(node LiteralTrueNode)     // true
	VisitLiteralFalseNode(node LiteralFalseNode)   // false
	VisitLiteralNullNode(node LiteralNullNode)     // null

	// Name and access visitors
	VisitVariableNode(node VariableNode)                 // Simple names: x
	VisitFieldSelectionNode(node FieldSelectionNode)     // Field access: e.f or a.b.f
	VisitArrayExpressionNode(node ArrayExpressionNode)   // Array indexing: a[i]
	VisitMessageExpressionNode(node MessageExpressionNode) // Method invocation: e.m(args)

	// Object and array creation visitors
	VisitThisNode(node ThisNode)                             // this
	VisitSuperNode(node SuperNode)                           // super (as a target)
	VisitThisConstructionNode(node ThisConstructionNode)     // this(args)
	VisitSuperConstructionNode(node SuperConstructionNode)   // super(args)
	VisitNewOpNode(node NewOpNode)                           // new C(args)
	VisitNewArrayOpNode(node NewArrayOpNode)                 // new int[3][]
	VisitArrayInitializerNode(node ArrayInitializerNode)     // new int[] {1, 2}

	// Unary operator visitors
	VisitPreIncrementNode(node PreIncrementNode)   // ++x
	VisitPostDecrementNode(node PostDecrementNode) // x--
	VisitNegateNode(node NegateNode)               // -x
	VisitUnaryPlusNode(node UnaryPlusNode)         // +x
	VisitLogicalNotNode(node LogicalNotNode)       // !x

	// Binary operator visitors
	VisitPlusNode(node PlusNode)               // +
	VisitSubtractNode(node SubtractNode)       // -
	VisitMultiplyNode(node MultiplyNode)       // *
	VisitDivideNode(node DivideNode)           // /
	VisitModuloNode(node ModuloNode)           // %
	VisitGreaterThanNode(node GreaterThanNode) // >
	VisitLessEqualNode(node LessEqualNode)     // <=
	VisitLogicalAndNode(node LogicalAndNode)   // &&
	VisitEqualNode(node EqualNode)             // ==
	VisitInstanceOfNode(node InstanceOfNode)   // instanceof
	VisitAssignNode(node AssignNode)           // =
	VisitPlusAssignNode(node PlusAssignNode)   // +=

	// Other expression visitors
	VisitCastNode(node CastNode)                   // (T) e
	VisitWildExpressionNode(node WildExpressionNode) // Error placeholder
}

// Node: base interface for all nodes of the AST
// Literal(): returns a compact, re-parseable source form of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// MemberNode: base interface for class member declarations
// (fields, methods, constructors)
type MemberNode interface {
	Node
	Member()
}

// ExpressionNode: base interface for all expression nodes.
// Besides the Node behavior, every expression carries a flag recording
// whether it is used as a statement; the statement parser stamps it on
// forms whose value may be discarded.
type ExpressionNode interface {
	Node
	Expression()
	MarkStatementExpression()
	IsStatementExpression() bool
}

// StmtExprState is embedded in every expression node. It holds the
// statement-expression flag, the only part of the AST that is mutated
// after construction.
type StmtExprState struct {
	StatementExpression bool
}

// MarkStatementExpression records that the expression's value is discarded.
func (state *StmtExprState) MarkStatementExpression() { state.StatementExpression = true }

// IsStatementExpression reports whether the expression is used as a statement.
func (state *StmtExprState) IsStatementExpression() bool { return state.StatementExpression }

// Expression marks the embedding node as an expression.
func (state *StmtExprState) Expression() {}

// joinModifiers renders a modifier list followed by a trailing space, or
// nothing when the list is empty.
func joinModifiers(mods []string) string {
	if len(mods) == 0 {
		return ""
	}
	return strings.Join(mods, " ") + " "
}

// joinExpressions renders a comma-separated argument list.
func joinExpressions(list []ExpressionNode) string {
	parts := make([]string, 0, len(list))
	for _, expr := range list {
		parts = append(parts, expr.Literal())
	}
	return strings.Join(parts, ", ")
}

// CompilationUnitNode is the root of the AST: one Jay source file with an
// optional package clause, any number of imports, and the type
// declarations.
type CompilationUnitNode struct {
	FileName  string           // Source file name, for diagnostics
	Line      int              // Line of the first token
	Package   *TypeName        // Package name, or nil if absent
	Imports   []*TypeName      // Imported type names, in source order
	TypeDecls []*ClassDeclNode // Top-level class declarations, in source order
}

// CompilationUnitNode.Literal(): re-parseable source form of the whole unit
func (node *CompilationUnitNode) Literal() string {
	var sb strings.Builder
	if node.Package != nil {
		sb.WriteString("package " + node.Package.Name + "; ")
	}
	for _, imp := range node.Imports {
		sb.WriteString("import " + imp.Name + "; ")
	}
	for i, decl := range node.TypeDecls {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(decl.Literal())
	}
	return strings.TrimRight(sb.String(), " ")
}

// CompilationUnitNode.Accept(): accepts a visitor
func (node *CompilationUnitNode) Accept(visitor NodeVisitor) {
	visitor.VisitCompilationUnitNode(*node)
}

// ClassDeclNode represents a class declaration with its modifiers, name,
// supertype (java.lang.Object when no extends clause was written), and
// members in source order.
type ClassDeclNode struct {
	Line      int          // Line of the 'class' keyword
	Mods      []string     // Modifiers as written, lowercase, in source order
	Name      string       // Simple class name
	SuperType Type         // Declared or implicit supertype
	Members   []MemberNode // Fields, methods, constructors in source order
}

// ClassDeclNode.Literal(): re-parseable source form of the class
func (node *ClassDeclNode) Literal() string {
	var sb strings.Builder
	sb.WriteString(joinModifiers(node.Mods))
	sb.WriteString("class " + node.Name + " extends " + node.SuperType.String() + " {")
	for _, member := range node.Members {
		sb.WriteString(" " + member.Literal())
	}
	sb.WriteString(" }")
	return sb.String()
}

// ClassDeclNode.Accept(): accepts a visitor
func (node *ClassDeclNode) Accept(visitor NodeVisitor) {
	visitor.VisitClassDeclNode(*node)
}

// FieldDeclNode represents a field declaration: one type, one or more
// declarators.
type FieldDeclNode struct {
	Line        int                       // Line of the declared type
	Mods        []string                  // Modifiers in source order
	Declarators []*VariableDeclaratorNode // At least one declarator
}

// FieldDeclNode.Literal(): re-parseable source form of the field declaration
func (node *FieldDeclNode) Literal() string {
	return joinModifiers(node.Mods) + declaratorsLiteral(node.Declarators) + ";"
}

// FieldDeclNode.Accept(): accepts a visitor
func (node *FieldDeclNode) Accept(visitor NodeVisitor) {
	visitor.VisitFieldDeclNode(*node)
}

// FieldDeclNode.Member(): marks this as a class member
func (node *FieldDeclNode) Member() {}

// declaratorsLiteral renders "type name = init, name2" for a declarator
// list; all declarators share the leading type.
func declaratorsLiteral(decls []*VariableDeclaratorNode) string {
	var sb strings.Builder
	if len(decls) > 0 {
		sb.WriteString(decls[0].Type.String() + " ")
	}
	for i, decl := range decls {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(decl.Literal())
	}
	return sb.String()
}

// MethodDeclNode represents a method declaration. An abstract method has a
// nil Body.
type MethodDeclNode struct {
	Line       int                    // Line of the return type
	Mods       []string               // Modifiers in source order
	Name       string                 // Method name
	ReturnType Type                   // Return type; VoidType for void methods
	Params     []*FormalParameterNode // Formal parameters in source order
	Body       *BlockNode             // Method body, or nil when declared with ';'
}

// MethodDeclNode.Literal(): re-parseable source form of the method
func (node *MethodDeclNode) Literal() string {
	var sb strings.Builder
	sb.WriteString(joinModifiers(node.Mods))
	sb.WriteString(node.ReturnType.String() + " " + node.Name + "(")
	for i, param := range node.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Literal())
	}
	sb.WriteString(")")
	if node.Body == nil {
		sb.WriteString(";")
	} else {
		sb.WriteString(" " + node.Body.Literal())
	}
	return sb.String()
}

// MethodDeclNode.Accept(): accepts a visitor
func (node *MethodDeclNode) Accept(visitor NodeVisitor) {
	visitor.VisitMethodDeclNode(*node)
}

// MethodDeclNode.Member(): marks this as a class member
func (node *MethodDeclNode) Member() {}

// ConstructorDeclNode represents a constructor declaration. Unlike a
// method, a constructor always has a body and no return type.
type ConstructorDeclNode struct {
	Line   int                    // Line of the constructor name
	Mods   []string               // Modifiers in source order
	Name   string                 // Constructor name (the class name)
	Params []*FormalParameterNode // Formal parameters in source order
	Body   *BlockNode             // Constructor body
}

// ConstructorDeclNode.Literal(): re-parseable source form of the constructor
func (node *ConstructorDeclNode) Literal() string {
	var sb strings.Builder
	sb.WriteString(joinModifiers(node.Mods))
	sb.WriteString(node.Name + "(")
	for i, param := range node.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Literal())
	}
	sb.WriteString(") " + node.Body.Literal())
	return sb.String()
}

// ConstructorDeclNode.Accept(): accepts a visitor
func (node *ConstructorDeclNode) Accept(visitor NodeVisitor) {
	visitor.VisitConstructorDeclNode(*node)
}

// ConstructorDeclNode.Member(): marks this as a class member
func (node *ConstructorDeclNode) Member() {}

// FormalParameterNode represents one formal parameter of a method or
// constructor.
type FormalParameterNode struct {
	Line int    // Line of the parameter type
	Type Type   // Declared type
	Name string // Parameter name
}

// FormalParameterNode.Literal(): re-parseable source form of the parameter
func (node *FormalParameterNode) Literal() string {
	return node.Type.String() + " " + node.Name
}

// FormalParameterNode.Accept(): accepts a visitor
func (node *FormalParameterNode) Accept(visitor NodeVisitor) {
	visitor.VisitFormalParameterNode(*node)
}

// VariableDeclaratorNode represents one name in a field or local variable
// declaration, with the declared type and the optional initializer.
type VariableDeclaratorNode struct {
	Line        int            // Line of the declared name
	Name        string         // Declared name
	Type        Type           // Declared type (shared across the declarator list)
	Initializer ExpressionNode // Initializer expression, or nil
}

// VariableDeclaratorNode.Literal(): "name" or "name = initializer"
func (node *VariableDeclaratorNode) Literal() string {
	if node.Initializer == nil {
		return node.Name
	}
	return node.Name + " = " + node.Initializer.Literal()
}

// VariableDeclaratorNode.Accept(): accepts a visitor
func (node *VariableDeclaratorNode) Accept(visitor NodeVisitor) {
	visitor.VisitVariableDeclaratorNode(*node)
}
