package plan

import (
	"strings"

	"synth-generator/internal/common"
	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
)

// AdapteeField is the field holding the wrapped value of an adapter.
const AdapteeField = "adaptee"

const (
	ctorPrefix    = "New"
	defaultSuffix = "Default"
)

// IntroducedNames lists every identifier the emitter will declare for the
// request: package-level names (type, constructor, singleton, import
// qualifiers) and the fields of the synthesized type.
func IntroducedNames(req *Request, receiverType string, imports []Import) []IntroducedName {
	names := []IntroducedName{
		{Name: req.TypeName, Kind: oracle.DeclType, Role: "type"},
		{Name: ctorPrefix + req.TypeName, Kind: oracle.DeclFunc, Role: "constructor"},
	}

	switch req.Pattern {
	case PatternAdapter:
		names = append(names, IntroducedName{Name: AdapteeField, Kind: oracle.DeclField, Role: "field"})
	case PatternDecorator:
		names = append(names, IntroducedName{Name: EmbeddedField(receiverType), Kind: oracle.DeclField, Role: "field"})
	case PatternFacade:
		names = append(names, IntroducedName{Name: req.TypeName + defaultSuffix, Kind: oracle.DeclVar, Role: "singleton"})
	}

	for _, imp := range imports {
		names = append(names, IntroducedName{Name: imp.Qualifier(), Kind: oracle.DeclPackage, Role: "import"})
	}

	return names
}

// EmbeddedField returns the field name Go gives an embedded type:
// "*pkg.Name" embeds as "Name".
func EmbeddedField(typeExpr string) string {
	t := strings.TrimPrefix(typeExpr, "*")
	if i := strings.IndexByte(t, '['); i >= 0 {
		t = t[:i]
	}

	_, name := common.SplitQualified(t)

	return name
}

// Qualifier returns the name the import is referred to by.
func (i Import) Qualifier() string {
	if i.Alias != "" {
		return i.Alias
	}

	return common.PkgAlias(i.Path)
}

// CheckNames reports every introduced identifier that collides with a
// declaration visible in scope, with a member of the synthesized type, or
// with another introduced identifier. A nil visible set skips the scope
// check.
func CheckNames(
	introduced []IntroducedName,
	members []model.ContractMember,
	visible oracle.NameSet,
	rep *diagnostic.Reporter,
) {
	declared := make(map[string]IntroducedName)

	for _, n := range introduced {
		if n.Kind == oracle.DeclField {
			continue
		}

		if prev, dup := declared[n.Name]; dup {
			rep.Errorf(diagnostic.KindNameConflict, n.Name,
				"%s %q would be declared twice (also introduced as %s)", n.Role, n.Name, prev.Role)

			continue
		}

		declared[n.Name] = n

		if kind, ok := visible[n.Name]; ok {
			rep.Errorf(diagnostic.KindNameConflict, n.Name,
				"%s %q collides with existing %s %s", n.Role, n.Name, kind, n.Name)
		}
	}

	methods := make(map[string]int, len(members))
	for i := range members {
		methods[members[i].Name]++
	}

	for i := range members {
		m := &members[i]
		if methods[m.Name] > 1 {
			rep.Errorf(diagnostic.KindNameConflict, m.Name,
				"member %s is overloaded; a Go type cannot declare two methods named %s", m.Signature(), m.Name)

			methods[m.Name] = 0 // once per name
		}
	}

	for _, n := range introduced {
		if n.Kind != oracle.DeclField {
			continue
		}

		if _, ok := methods[n.Name]; ok {
			rep.Errorf(diagnostic.KindNameConflict, n.Name,
				"field %q collides with method %s of the synthesized type", n.Name, n.Name)
		}
	}
}
