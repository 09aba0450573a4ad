package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/errors"
	"github.com/typecore/corelang/internal/scope"
	"github.com/typecore/corelang/internal/typeprovider"
	"github.com/typecore/corelang/internal/validate"
	"github.com/typecore/corelang/internal/workspace"
)

// fixtureSource mirrors the constructs built by runCheck line-for-line,
// so diagnostics raised against fixturePos(N) can be rendered with the
// source context a real frontend would have attached.
const fixtureSource = `interface Shaped
  area(): f64

class Circle
  radius: f64
  area(): f64

fn add(a: i32, b: i32): i32
fn add(a: f64, b: f64): f64
fn add(a: i32, b: i32): i32

fn identity<T>(x: T): T
fn identity(x: i32): i32

add(1, 2)
[1, 2, 3].push(4)
i32?`

// toCompilerErrors adapts validator diagnostics to the source-context
// error formatter, attributing each to fixtureSource/fixture.tl by the
// node it was raised against.
func toCompilerErrors(diags []validate.Diagnostic) []*errors.CompilerError {
	out := make([]*errors.CompilerError, 0, len(diags))
	for _, d := range diags {
		out = append(out, errors.NewDiagnosticError(d, fixtureSource, "fixture.tl"))
	}
	return out
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the type system core against a built-in fixture program",
	Long: `check builds a small in-memory program exercising classes,
interfaces, function overloading, generics and built-in prototypes, and
reports what the type system core concludes about it: inferred
expression types, structural assignability between a class and an
interface, and every overload-uniqueness diagnostic the sample program
triggers on purpose.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func fixturePos(line int) ast.Position {
	return ast.Position{File: "fixture.tl", Line: line, Column: 1}
}

func primitive(line int, name string) ast.TypeExpression {
	return ast.NewPrimitiveTypeExpr(fixturePos(line), name)
}

func runCheck(cmd *cobra.Command, args []string) error {
	sc := scope.New()
	p := typeprovider.New(sc, workspace.Default())

	shaped := ast.NewInterfaceDecl(fixturePos(1), "Shaped", nil, []*ast.MethodDecl{
		ast.NewMethodDecl(fixturePos(2), []string{"area"}, nil, nil, primitive(2, "f64"), false, false, false),
	}, nil)
	sc.Define(shaped)

	circle := ast.NewClassDecl(fixturePos(4), "Circle", nil,
		[]*ast.AttributeDecl{
			ast.NewAttributeDecl(fixturePos(5), "radius", primitive(5, "f64"), false, false, false),
		},
		[]*ast.MethodDecl{
			ast.NewMethodDecl(fixturePos(6), []string{"area"}, nil, nil, primitive(6, "f64"), false, false, false),
		}, nil, nil)
	sc.Define(circle)

	addInts := ast.NewFunctionDecl(fixturePos(8), "add", nil, []*ast.ParamDecl{
		ast.NewParamDecl(fixturePos(8), "a", primitive(8, "i32"), false),
		ast.NewParamDecl(fixturePos(8), "b", primitive(8, "i32"), false),
	}, primitive(8, "i32"), false)
	addFloats := ast.NewFunctionDecl(fixturePos(9), "add", nil, []*ast.ParamDecl{
		ast.NewParamDecl(fixturePos(9), "a", primitive(9, "f64"), false),
		ast.NewParamDecl(fixturePos(9), "b", primitive(9, "f64"), false),
	}, primitive(9, "f64"), false)
	addIntsDuplicate := ast.NewFunctionDecl(fixturePos(10), "add", nil, []*ast.ParamDecl{
		ast.NewParamDecl(fixturePos(10), "a", primitive(10, "i32"), false),
		ast.NewParamDecl(fixturePos(10), "b", primitive(10, "i32"), false),
	}, primitive(10, "i32"), false)
	sc.Define(addInts)
	sc.Define(addFloats)
	sc.Define(addIntsDuplicate)

	identityGeneric := ast.NewFunctionDecl(fixturePos(12), "identity",
		[]*ast.GenericParam{ast.NewGenericParam(fixturePos(12), "T", nil)},
		[]*ast.ParamDecl{ast.NewParamDecl(fixturePos(12), "x", ast.NewNameTypeExpr(fixturePos(12), "T", nil), false)},
		ast.NewNameTypeExpr(fixturePos(12), "T", nil), false)
	identityInt := ast.NewFunctionDecl(fixturePos(13), "identity", nil,
		[]*ast.ParamDecl{ast.NewParamDecl(fixturePos(13), "x", primitive(13, "i32"), false)},
		primitive(13, "i32"), false)
	sc.Define(identityGeneric)
	sc.Define(identityInt)

	funcDecls := []*ast.FunctionDecl{addInts, addFloats, addIntsDuplicate, identityGeneric, identityInt}

	fmt.Println("Overload uniqueness diagnostics:")
	diags := validate.CheckFunctionOverloads(p, funcDecls)
	if len(diags) == 0 {
		fmt.Println("  (none)")
	} else {
		fmt.Println(errors.FormatErrorsWithContext(toCompilerErrors(diags), 1, false))
	}

	fmt.Println()
	fmt.Println("Structural assignability:")
	circleType := p.DeclarationType(circle)
	shapedType := p.DeclarationType(shaped)
	res := p.Checker.IsAssignable(circleType, shapedType)
	fmt.Printf("  Circle assignable to Shaped: %s\n", res)

	fmt.Println()
	fmt.Println("Expression inference:")
	callSite := ast.NewCallExpr(fixturePos(15), "add", []ast.Expr{
		ast.NewIntLiteralExpr(fixturePos(15), 1),
		ast.NewIntLiteralExpr(fixturePos(15), 2),
	})
	fmt.Printf("  add(1, 2) : %s\n", p.TypeOf(callSite))

	arrayLit := ast.NewArrayLiteralExpr(fixturePos(16), []ast.Expr{
		ast.NewIntLiteralExpr(fixturePos(16), 1),
		ast.NewIntLiteralExpr(fixturePos(16), 2),
		ast.NewIntLiteralExpr(fixturePos(16), 3),
	})
	pushCall := ast.NewMemberCallExpr(fixturePos(16), arrayLit, "push", []ast.Expr{
		ast.NewIntLiteralExpr(fixturePos(16), 4),
	})
	fmt.Printf("  [1, 2, 3].push(4) : %s\n", p.TypeOf(pushCall))

	fmt.Println()
	fmt.Println("Nullable-annotation diagnostics:")
	nullableInt := primitive(17, "i32")
	annotated := ast.NewNullableTypeExpr(fixturePos(17), nullableInt)
	resolved := p.TypeOf(annotated)
	nullableDiags := validate.CheckNullableAnnotation(resolved, annotated)
	if len(nullableDiags) == 0 {
		fmt.Println("  (none)")
	} else {
		fmt.Println(errors.FormatErrorsWithContext(toCompilerErrors(nullableDiags), 1, false))
	}

	if verbose {
		fmt.Println()
		fmt.Println("(verbose) resolved Circle type:", circleType)
		fmt.Println("(verbose) resolved Shaped type:", shapedType)
	}

	return nil
}
