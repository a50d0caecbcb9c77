package predicate

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/erraggy/jsonmatch/matcherrors"
)

// ExprVariable is the name under which the candidate value is visible to
// CEL expressions.
const ExprVariable = "x"

var exprEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(cel.Variable(ExprVariable, cel.DynType))
})

// ExprMatch is satisfied when a CEL expression evaluates to true.
type ExprMatch struct {
	expr    string
	program cel.Program
}

// Expr compiles a boolean CEL expression over the variable x.
//
//	predicate.Expr(`size(x) == 3`)
//	predicate.Expr(`x.startsWith("v") && size(x) > 1`)
func Expr(expr string) (*ExprMatch, error) {
	env, err := exprEnv()
	if err != nil {
		return nil, &matcherrors.ConfigError{Kind: "expr", Message: "failed creating CEL environment", Cause: err}
	}

	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, &matcherrors.ConfigError{Kind: "expr", Value: expr, Cause: iss.Err()}
	}

	if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
		return nil, &matcherrors.ConfigError{
			Kind:    "expr",
			Value:   expr,
			Message: fmt.Sprintf("wanted bool result, got %v", ast.OutputType()),
		}
	}

	prg, err := env.Program(ast, cel.EvalOptions(cel.OptOptimize))
	if err != nil {
		return nil, &matcherrors.ConfigError{Kind: "expr", Value: expr, Cause: err}
	}

	return &ExprMatch{expr: expr, program: prg}, nil
}

// MustExpr is like Expr but panics on an invalid expression.
func MustExpr(expr string) *ExprMatch {
	e, err := Expr(expr)
	if err != nil {
		panic(err)
	}
	return e
}

// Match implements Predicate.
func (e *ExprMatch) Match(v any) (bool, error) {
	out, _, err := e.program.Eval(map[string]any{ExprVariable: v})
	if err != nil {
		return false, err
	}
	return out.Value() == true, nil
}

// String implements fmt.Stringer.
func (e *ExprMatch) String() string {
	return fmt.Sprintf("Expr(%q)", e.expr)
}
