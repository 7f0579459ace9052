/*
File    : go-jay/parser/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

// Type is a syntactic type descriptor attached to AST nodes. At parse time
// types are purely textual: a basic type, a (possibly qualified) class
// name, or an array of either. Name resolution happens downstream.
//
// Type descriptors are immutable value objects; the shared basic types
// below are singletons so they can be compared by identity.
type Type interface {
	// String returns the source-level spelling of the type.
	String() string
	typeDescriptor()
}

// BasicType represents one of Jay's primitive types, the void return type,
// or the <any> error sentinel produced when a type could not be parsed.
type BasicType struct {
	Name string // Source spelling: "int", "boolean", "char", "void", "<any>"
}

// The basic type singletons. AnyType is only produced on a syntax error;
// VoidType is only legal as a method return type.
var (
	BooleanType = &BasicType{Name: "boolean"}
	CharType    = &BasicType{Name: "char"}
	IntType     = &BasicType{Name: "int"}
	VoidType    = &BasicType{Name: "void"}
	AnyType     = &BasicType{Name: "<any>"}
)

func (typ *BasicType) String() string { return typ.Name }
func (typ *BasicType) typeDescriptor() {}

// TypeName represents a named (possibly package-qualified) reference type,
// e.g. "Animal" or "java.lang.Object". The line records where the name
// appeared, for diagnostic attribution by later phases.
type TypeName struct {
	Name string // Qualified name, dot-separated
	Line int    // Source line of the first identifier
}

// ObjectType is the implicit supertype of a class declared without an
// extends clause.
var ObjectType = &TypeName{Name: "java.lang.Object"}

func (typ *TypeName) String() string { return typ.Name }
func (typ *TypeName) typeDescriptor() {}

// ArrayTypeName represents an array type wrapped around a component type.
// There is no "array of nothing": the component is always present.
type ArrayTypeName struct {
	Component Type // Element type of the array
}

func (typ *ArrayTypeName) String() string { return typ.Component.String() + "[]" }
func (typ *ArrayTypeName) typeDescriptor() {}

// ComponentType returns the element type of the array.
func (typ *ArrayTypeName) ComponentType() Type { return typ.Component }

// componentType unwraps one array level from typ. For a non-array type it
// returns the error sentinel. The parser reaches that case when a brace
// initializer is given for a non-array type (int x = {1};), which it does
// not report.
func componentType(typ Type) Type {
	if arr, ok := typ.(*ArrayTypeName); ok {
		return arr.Component
	}
	return AnyType
}
