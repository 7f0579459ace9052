/*
File    : go-jay/parser/parser_declarations.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-jay/lexer"
)

// compilationUnit parses one whole source file, through EOF.
//
// Syntax:
//
//	[ 'package' qualifiedIdentifier ';' ]
//	{ 'import' qualifiedIdentifier ';' }
//	{ typeDeclaration }
//	EOF
func (par *Parser) compilationUnit() *CompilationUnitNode {
	line := par.Scan.Current().Line

	var packageName *TypeName
	if par.have(lexer.PACKAGE_KEY) {
		packageName = par.qualifiedIdentifier()
		par.mustBe(lexer.SEMICOLON_DELIM)
	}

	imports := make([]*TypeName, 0)
	for par.have(lexer.IMPORT_KEY) {
		imports = append(imports, par.qualifiedIdentifier())
		par.mustBe(lexer.SEMICOLON_DELIM)
	}

	typeDecls := make([]*ClassDeclNode, 0)
	for !par.see(lexer.EOF_TYPE) {
		typeDecls = append(typeDecls, par.typeDeclaration())
	}
	par.mustBe(lexer.EOF_TYPE)

	return &CompilationUnitNode{
		FileName:  par.Scan.FileName(),
		Line:      line,
		Package:   packageName,
		Imports:   imports,
		TypeDecls: typeDecls,
	}
}

// typeDeclaration parses a top-level type declaration: its modifiers and
// the class declaration they precede.
//
// Syntax:
//
//	modifiers classDeclaration
func (par *Parser) typeDeclaration() *ClassDeclNode {
	mods := par.modifiers()
	return par.classDeclaration(mods)
}

// modifiers parses a possibly empty modifier sequence. Every modifier
// seen is kept, in source order; duplicates and conflicting access
// modifiers are reported but do not stop the parse.
//
// Syntax:
//
//	{ 'public' | 'protected' | 'private' | 'static' | 'abstract' }
func (par *Parser) modifiers() []string {
	mods := make([]string, 0)
	scannedPublic := false
	scannedProtected := false
	scannedPrivate := false
	scannedStatic := false
	scannedAbstract := false

	more := true
	for more {
		switch {
		case par.have(lexer.PUBLIC_KEY):
			mods = append(mods, "public")
			if scannedPublic {
				par.reportParserError("Repeated modifier: public")
			}
			if scannedProtected || scannedPrivate {
				par.reportParserError("Access conflict in modifiers")
			}
			scannedPublic = true
		case par.have(lexer.PROTECTED_KEY):
			mods = append(mods, "protected")
			if scannedProtected {
				par.reportParserError("Repeated modifier: protected")
			}
			if scannedPublic || scannedPrivate {
				par.reportParserError("Access conflict in modifiers")
			}
			scannedProtected = true
		case par.have(lexer.PRIVATE_KEY):
			mods = append(mods, "private")
			if scannedPrivate {
				par.reportParserError("Repeated modifier: private")
			}
			if scannedPublic || scannedProtected {
				par.reportParserError("Access conflict in modifiers")
			}
			scannedPrivate = true
		case par.have(lexer.STATIC_KEY):
			mods = append(mods, "static")
			if scannedStatic {
				par.reportParserError("Repeated modifier: static")
			}
			scannedStatic = true
		case par.have(lexer.ABSTRACT_KEY):
			mods = append(mods, "abstract")
			if scannedAbstract {
				par.reportParserError("Repeated modifier: abstract")
			}
			scannedAbstract = true
		default:
			more = false
		}
	}
	return mods
}

// classDeclaration parses a class declaration. A class without an extends
// clause gets java.lang.Object as its supertype.
//
// Syntax:
//
//	'class' IDENTIFIER [ 'extends' qualifiedIdentifier ] classBody
func (par *Parser) classDeclaration(mods []string) *ClassDeclNode {
	line := par.Scan.Current().Line
	par.mustBe(lexer.CLASS_KEY)
	par.mustBe(lexer.IDENTIFIER_ID)
	name := par.Scan.Previous().Literal

	var superType Type
	if par.have(lexer.EXTENDS_KEY) {
		superType = par.qualifiedIdentifier()
	} else {
		superType = ObjectType
	}

	return &ClassDeclNode{
		Line:      line,
		Mods:      mods,
		Name:      name,
		SuperType: superType,
		Members:   par.classBody(),
	}
}

// classBody parses the brace-enclosed member list of a class.
//
// Syntax:
//
//	'{' { modifiers memberDecl } '}'
func (par *Parser) classBody() []MemberNode {
	members := make([]MemberNode, 0)
	par.mustBe(lexer.LEFT_BRACE)
	for !par.see(lexer.RIGHT_BRACE) && !par.see(lexer.EOF_TYPE) {
		mods := par.modifiers()
		members = append(members, par.memberDecl(mods))
	}
	par.mustBe(lexer.RIGHT_BRACE)
	return members
}

// memberDecl parses one class member. The alternatives are told apart by
// shape: an identifier directly followed by '(' is a constructor; 'void'
// starts a void method; otherwise a type is parsed and the same
// identifier-then-'(' test separates a method from a field.
//
// Syntax:
//
//	IDENTIFIER formalParameters block                        -- constructor
//	| 'void' IDENTIFIER formalParameters ( block | ';' )
//	| type IDENTIFIER formalParameters ( block | ';' )
//	| type variableDeclarators ';'                           -- field
func (par *Parser) memberDecl(mods []string) MemberNode {
	line := par.Scan.Current().Line

	if par.seeIdentLParen() {
		// A constructor
		par.mustBe(lexer.IDENTIFIER_ID)
		name := par.Scan.Previous().Literal
		params := par.formalParameters()
		return &ConstructorDeclNode{
			Line:   line,
			Mods:   mods,
			Name:   name,
			Params: params,
			Body:   par.block(),
		}
	}

	if par.have(lexer.VOID_KEY) {
		// A void method
		par.mustBe(lexer.IDENTIFIER_ID)
		name := par.Scan.Previous().Literal
		params := par.formalParameters()
		var body *BlockNode
		if !par.have(lexer.SEMICOLON_DELIM) {
			body = par.block()
		}
		return &MethodDeclNode{
			Line:       line,
			Mods:       mods,
			Name:       name,
			ReturnType: VoidType,
			Params:     params,
			Body:       body,
		}
	}

	typ := par.parseType()
	if par.seeIdentLParen() {
		// A non-void method
		par.mustBe(lexer.IDENTIFIER_ID)
		name := par.Scan.Previous().Literal
		params := par.formalParameters()
		var body *BlockNode
		if !par.have(lexer.SEMICOLON_DELIM) {
			body = par.block()
		}
		return &MethodDeclNode{
			Line:       line,
			Mods:       mods,
			Name:       name,
			ReturnType: typ,
			Params:     params,
			Body:       body,
		}
	}

	// A field
	field := &FieldDeclNode{
		Line:        line,
		Mods:        mods,
		Declarators: par.variableDeclarators(typ),
	}
	par.mustBe(lexer.SEMICOLON_DELIM)
	return field
}

// formalParameters parses a parenthesized, possibly empty, comma-separated
// formal parameter list.
//
// Syntax:
//
//	'(' [ formalParameter { ',' formalParameter } ] ')'
func (par *Parser) formalParameters() []*FormalParameterNode {
	params := make([]*FormalParameterNode, 0)
	par.mustBe(lexer.LEFT_PAREN)
	if !par.see(lexer.RIGHT_PAREN) {
		for {
			params = append(params, par.formalParameter())
			if !par.have(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	par.mustBe(lexer.RIGHT_PAREN)
	return params
}

// formalParameter parses one formal parameter: a type and a name.
//
// Syntax:
//
//	type IDENTIFIER
func (par *Parser) formalParameter() *FormalParameterNode {
	line := par.Scan.Current().Line
	typ := par.parseType()
	par.mustBe(lexer.IDENTIFIER_ID)
	return &FormalParameterNode{
		Line: line,
		Type: typ,
		Name: par.Scan.Previous().Literal,
	}
}

// variableDeclarators parses a comma-separated declarator list, all
// sharing the given type.
//
// Syntax:
//
//	variableDeclarator { ',' variableDeclarator }
func (par *Parser) variableDeclarators(typ Type) []*VariableDeclaratorNode {
	decls := make([]*VariableDeclaratorNode, 0)
	for {
		decls = append(decls, par.variableDeclarator(typ))
		if !par.have(lexer.COMMA_DELIM) {
			break
		}
	}
	return decls
}

// variableDeclarator parses one declared name with its optional
// initializer.
//
// Syntax:
//
//	IDENTIFIER [ '=' variableInitializer ]
func (par *Parser) variableDeclarator(typ Type) *VariableDeclaratorNode {
	line := par.Scan.Current().Line
	par.mustBe(lexer.IDENTIFIER_ID)
	name := par.Scan.Previous().Literal
	var initializer ExpressionNode
	if par.have(lexer.ASSIGN_OP) {
		initializer = par.variableInitializer(typ)
	}
	return &VariableDeclaratorNode{
		Line:        line,
		Name:        name,
		Type:        typ,
		Initializer: initializer,
	}
}

// variableInitializer parses a declarator initializer: a brace-form array
// initializer for the declared (array) type, or any expression.
//
// Syntax:
//
//	arrayInitializer | expression
func (par *Parser) variableInitializer(typ Type) ExpressionNode {
	if par.see(lexer.LEFT_BRACE) {
		return par.arrayInitializer(typ)
	}
	return par.expression()
}
