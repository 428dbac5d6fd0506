package gen

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	"synth-generator/internal/model"
)

// typeFormatter renders type expressions for the file being generated.
// Types declared in the output package are written without their qualifier.
type typeFormatter struct {
	local string // Qualifier of the output package ("" when none is referenced)
}

// typ renders a type expression, stripping the local qualifier.
// Expressions that do not parse are returned unchanged; the planner has
// already reported them.
func (f typeFormatter) typ(expr string) string {
	if f.local == "" || expr == "" {
		return expr
	}

	fset := token.NewFileSet()

	node, err := parser.ParseExprFrom(fset, "", expr, 0)
	if err != nil {
		return expr
	}

	rewritten := astutil.Apply(node, nil, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok && id.Name == f.local {
			c.Replace(ast.NewIdent(sel.Sel.Name))
		}

		return true
	})

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, rewritten); err != nil {
		return expr
	}

	return buf.String()
}

// param renders a parameter type with its mode decoration.
func (f typeFormatter) param(p model.Parameter) string {
	t := f.typ(p.Type)
	if p.Mode == model.ParamRef || p.Mode == model.ParamOut {
		t = "*" + t
	}

	if p.IsParamsArray {
		t = "..." + t
	}

	return t
}

// result renders an unwrapped result in its async shape.
func (f typeFormatter) result(result string, async model.AsyncShape) string {
	return model.FormatResult(f.typ(result), async)
}

// elem renders the element type carried by an async result.
func (f typeFormatter) elem(result string) string {
	if result == "" {
		return "struct{}"
	}

	return f.typ(result)
}

// qualify renders a reference to a package-level identifier.
func (f typeFormatter) qualify(qualifier, name string) string {
	if qualifier == "" || qualifier == f.local {
		return name
	}

	return qualifier + "." + name
}
