package analyze

import (
	"fmt"
	"go/ast"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Directive marks a function as a mapping fragment. An optional argument
// names the contract member the fragment implements.
const Directive = "//synth:map"

// SynthSuffix is the file suffix of synthesized artifacts; their
// declarations are not part of a scope's visible names.
const SynthSuffix = ".synth.go"

// Analyzer loads Go packages and builds an oracle snapshot.
type Analyzer struct {
	// Dir is the directory packages are loaded from ("" for the current one).
	Dir string

	snapshot  *oracle.Snapshot
	contracts map[*types.TypeName]string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		snapshot:  oracle.NewSnapshot(),
		contracts: make(map[*types.TypeName]string),
	}
}

// LoadPackages loads the specified packages and adds their declarations
// to the snapshot. Patterns are standard Go package patterns (e.g.,
// "./examples/...", "synth-generator/examples/legacy").
func (a *Analyzer) LoadPackages(patterns ...string) (*oracle.Snapshot, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].PkgPath < pkgs[j].PkgPath })

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.snapshot, nil
}

// Snapshot returns the snapshot built so far.
func (a *Analyzer) Snapshot() *oracle.Snapshot {
	return a.snapshot
}

// processPackage extracts contracts, fragments and scope names.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	a.snapshot.AddPackage(pkg.Name, pkg.PkgPath)

	synthesized := a.synthesizedFiles(pkg)

	scope := pkg.Types.Scope()
	names := make(oracle.NameSet)

	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if synthesized[pkg.Fset.Position(obj.Pos()).Filename] {
			continue
		}

		names[name] = declKind(obj)

		if tn, ok := obj.(*types.TypeName); ok {
			if _, isIface := tn.Type().Underlying().(*types.Interface); isIface {
				a.contract(tn)
			}
		}
	}

	a.snapshot.AddScope(pkg.PkgPath, names)

	if cands := a.fragments(pkg, synthesized); len(cands) > 0 {
		a.snapshot.AddHost(pkg.PkgPath, cands...)
	}
}

func (a *Analyzer) synthesizedFiles(pkg *packages.Package) map[string]bool {
	out := make(map[string]bool)

	for _, f := range pkg.GoFiles {
		if strings.HasSuffix(f, SynthSuffix) {
			out[f] = true
		}
	}

	return out
}

func declKind(obj types.Object) oracle.DeclKind {
	switch obj.(type) {
	case *types.Func:
		return oracle.DeclFunc
	case *types.Var:
		return oracle.DeclVar
	case *types.Const:
		return oracle.DeclConst
	default:
		return oracle.DeclType
	}
}

// contract registers the interface named by tn and, recursively, the
// interfaces it embeds. It returns the contract reference.
func (a *Analyzer) contract(tn *types.TypeName) string {
	if ref, ok := a.contracts[tn]; ok {
		return ref
	}

	pkgPath := ""
	if tn.Pkg() != nil {
		pkgPath = tn.Pkg().Path()
	}

	ref := tn.Name()
	if pkgPath != "" {
		ref = pkgPath + "." + tn.Name()
	}

	a.contracts[tn] = ref

	iface, _ := tn.Type().Underlying().(*types.Interface)

	decl := &oracle.ContractDecl{
		Name:  ref,
		Type:  a.typeString(tn.Type()),
		Scope: pkgPath,
	}

	if named, ok := tn.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
		decl.IsGeneric = true
	}

	for i := range iface.NumEmbeddeds() {
		named, ok := types.Unalias(iface.EmbeddedType(i)).(*types.Named)
		if !ok {
			continue
		}

		if _, ok := named.Underlying().(*types.Interface); ok {
			decl.Extends = append(decl.Extends, a.contract(named.Obj()))
		}
	}

	for i := range iface.NumExplicitMethods() {
		m := iface.ExplicitMethod(i)
		sig, _ := m.Type().(*types.Signature)

		member := model.ContractMember{
			Kind:   model.MemberMethod,
			Name:   m.Name(),
			Params: a.params(sig.Params(), sig.Variadic()),
		}

		member.Result, member.Async = model.ParseResult(a.results(sig.Results()))

		if !m.Exported() {
			member.Access = model.AccessInternal
		}

		decl.Members = append(decl.Members, member)
	}

	a.snapshot.AddContract(decl)

	return ref
}

// fragments collects the package-level functions of pkg in declaration
// order. Only functions carrying the directive are marked.
func (a *Analyzer) fragments(pkg *packages.Package, synthesized map[string]bool) []model.MappingCandidate {
	files := make([]*ast.File, 0, len(pkg.Syntax))

	for _, f := range pkg.Syntax {
		if !synthesized[pkg.Fset.Position(f.Pos()).Filename] {
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return pkg.Fset.Position(files[i].Pos()).Filename < pkg.Fset.Position(files[j].Pos()).Filename
	})

	var out []model.MappingCandidate

	for _, file := range files {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}

			fn, ok := pkg.TypesInfo.Defs[fd.Name].(*types.Func)
			if !ok || fd.Name.Name == "init" {
				continue
			}

			sig, _ := fn.Type().(*types.Signature)
			marked, target := directive(fd.Doc)

			c := model.MappingCandidate{
				Host:           pkg.Name,
				Name:           fd.Name.Name,
				Params:         a.params(sig.Params(), sig.Variadic()),
				ExplicitTarget: target,
				IsStatic:       sig.Recv() == nil,
				IsGeneric:      sig.TypeParams().Len() > 0,
				Marked:         marked,
				Ordinal:        len(out),
			}

			c.Result, c.Async = model.ParseResult(a.results(sig.Results()))

			out = append(out, c)
		}
	}

	return out
}

// directive reports whether doc carries the mapping directive, and its
// target argument if any.
func directive(doc *ast.CommentGroup) (bool, string) {
	if doc == nil {
		return false, ""
	}

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, Directive)
		if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
			continue
		}

		if fields := strings.Fields(rest); len(fields) > 0 {
			return true, fields[0]
		}

		return true, ""
	}

	return false, ""
}

func (a *Analyzer) params(tuple *types.Tuple, variadic bool) []model.Parameter {
	if tuple.Len() == 0 {
		return nil
	}

	out := make([]model.Parameter, tuple.Len())

	for i := range tuple.Len() {
		v := tuple.At(i)

		name := v.Name()
		if name == "_" {
			name = ""
		}

		p := model.Parameter{Name: name}

		if variadic && i == tuple.Len()-1 {
			p.IsParamsArray = true

			if s, ok := v.Type().(*types.Slice); ok {
				p.Type = a.typeString(s.Elem())
			}
		} else {
			p.Type = a.typeString(v.Type())
		}

		out[i] = p
	}

	return out
}

// results renders a result list the way it is written after a signature.
func (a *Analyzer) results(tuple *types.Tuple) string {
	switch tuple.Len() {
	case 0:
		return ""
	case 1:
		return a.typeString(tuple.At(0).Type())
	}

	parts := make([]string, tuple.Len())
	for i := range tuple.Len() {
		parts[i] = a.typeString(tuple.At(i).Type())
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// typeString qualifies named types by package name and records each
// qualifier's import path.
func (a *Analyzer) typeString(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		a.snapshot.AddPackage(p.Name(), p.Path())
		return p.Name()
	})
}
