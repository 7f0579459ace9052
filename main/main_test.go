/*
File    : go-jay/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-jay/parser"
)

// TestMain_Main exercises the parser with code samples covering the language surface
func TestMain_Main(t *testing.T) {

	fmt.Println("Hello, go-jay!")

	// smallest possible class
	src1 := `class A {}`
	par1 := parser.NewParser("A.jay", src1)
	root1 := par1.Parse()
	assert.False(t, par1.ErrorHasOccurred())
	visitor1 := &parser.PrintingVisitor{}
	root1.Accept(visitor1)
	fmt.Println(visitor1)

	// class with a package, imports, and inheritance
	src2 := `package zoo;
import java.lang.System;
class Dog extends zoo.Animal {}`
	par2 := parser.NewParser("Dog.jay", src2)
	root2 := par2.Parse()
	assert.False(t, par2.ErrorHasOccurred())
	visitor2 := &parser.PrintingVisitor{}
	root2.Accept(visitor2)
	fmt.Println(visitor2)

	// fields, a constructor, and chained constructor invocation
	src3 := `class Point {
	int x, y;
	Point() { this(0, 0); }
	Point(int x, int y) { this.x = x; this.y = y; }
}`
	par3 := parser.NewParser("Point.jay", src3)
	root3 := par3.Parse()
	assert.False(t, par3.ErrorHasOccurred())
	visitor3 := &parser.PrintingVisitor{}
	root3.Accept(visitor3)
	fmt.Println(visitor3)

	// methods with control flow and the operator hierarchy
	src4 := `class Math {
	int factorial(int n) {
		int result = 1;
		while (n > 1) {
			result = result * n;
			n = n - 1;
		}
		return result;
	}
	boolean near(int a, int b) {
		return a - b <= 1 && b - a <= 1;
	}
}`
	par4 := parser.NewParser("Math.jay", src4)
	root4 := par4.Parse()
	assert.False(t, par4.ErrorHasOccurred())
	visitor4 := &parser.PrintingVisitor{}
	root4.Accept(visitor4)
	fmt.Println(visitor4)

	// arrays, creation, initializers, casts, instanceof
	src5 := `class Arrays {
	int[][] grid = {{1, 2}, {3, 4}};
	char take(Object o) {
		if (o instanceof char[]) return ((char[]) o)[0];
		return (char) -1;
	}
	int[] fresh(int n) { return new int[n + 1]; }
}`
	par5 := parser.NewParser("Arrays.jay", src5)
	root5 := par5.Parse()
	assert.False(t, par5.ErrorHasOccurred())
	visitor5 := &parser.PrintingVisitor{}
	root5.Accept(visitor5)
	fmt.Println(visitor5)

	// an erroneous program still yields a printable tree
	src6 := `class Broken { int x public int y; }`
	par6 := parser.NewParser("Broken.jay", src6)
	par6.ErrOut = io.Discard
	root6 := par6.Parse()
	assert.True(t, par6.ErrorHasOccurred())
	assert.Equal(t, 1, len(par6.Errors))
	visitor6 := &parser.PrintingVisitor{}
	root6.Accept(visitor6)
	fmt.Println(visitor6)
}
