package plan

import (
	"errors"
	"go/ast"
	"go/parser"
	"sort"

	"synth-generator/internal/common"
	"synth-generator/internal/diagnostic"
	"synth-generator/internal/oracle"
)

// Qualifiers returns the package qualifiers referenced by a Go type
// expression, in order of first appearance.
func Qualifiers(typeExpr string) ([]string, error) {
	expr, err := parser.ParseExpr(typeExpr)
	if err != nil {
		return nil, err
	}

	var out []string

	seen := make(map[string]bool)

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok && !seen[id.Name] {
			seen[id.Name] = true
			out = append(out, id.Name)
		}

		return false
	})

	return out, nil
}

// resolveImports computes the imports of the emitted file. Qualifiers
// resolving to the output scope are local: they are neither imported nor
// kept in emitted type expressions.
func resolveImports(o oracle.Oracle, p *ResolvedPlan, rep *diagnostic.Reporter) {
	exprs := p.typeExprs()

	qualifiers := make(map[string]bool)

	for _, e := range exprs {
		qs, err := Qualifiers(e)
		if err != nil {
			rep.Errorf(diagnostic.KindNotSynthesizable, e, "%q is not a valid Go type expression: %v", e, err)
			continue
		}

		for _, q := range qs {
			qualifiers[q] = true
		}
	}

	for _, b := range p.Bindings {
		if b.Candidate.Host != "" {
			qualifiers[b.Candidate.Host] = true
		}
	}

	names := make([]string, 0, len(qualifiers))
	for q := range qualifiers {
		names = append(names, q)
	}

	sort.Strings(names)

	for _, q := range names {
		path, err := o.ResolvePackage(q)
		if err != nil {
			if errors.Is(err, oracle.ErrNotFound) {
				rep.Errorf(diagnostic.KindNotSynthesizable, q, "package qualifier %q has no known import path", q)
			} else {
				rep.Errorf(diagnostic.KindOracleFailure, q, "resolving package %q: %v", q, err)
			}

			continue
		}

		if path == p.Request.Scope {
			p.Local = q
			continue
		}

		imp := Import{Path: path}
		if common.PkgAlias(path) != q {
			imp.Alias = q
		}

		p.Imports = append(p.Imports, imp)
	}

	sort.Slice(p.Imports, func(i, j int) bool {
		if p.Imports[i].Path != p.Imports[j].Path {
			return p.Imports[i].Path < p.Imports[j].Path
		}

		return p.Imports[i].Alias < p.Imports[j].Alias
	})
}

// typeExprs lists the type expressions the emitted file spells out.
func (p *ResolvedPlan) typeExprs() []string {
	var exprs []string

	add := func(e string) {
		if e != "" {
			exprs = append(exprs, e)
		}
	}

	add(p.ContractType)
	add(p.ReceiverType)

	for i := range p.Members {
		m := &p.Members[i]
		if _, ok := p.Binding(m.Key()); !ok && !p.IsStub(m.Key()) {
			continue
		}

		for _, prm := range m.Params {
			add(prm.Type)
		}

		add(m.Result)
	}

	return exprs
}
