package gen

import (
	"fmt"
	"maps"
	"strings"

	"synth-generator/internal/common"
	"synth-generator/internal/model"
	"synth-generator/internal/plan"
)

// Temporaries used by async glue; parameters are renamed away from them.
var glueNames = []string{"ch", "f", "v"}

// templateData holds all data needed for the synthesized-type template.
type templateData struct {
	PackageName  string
	Imports      []plan.Import
	TypeName     string
	Doc          string
	Field        *fieldData
	ContractType string
	Singleton    string
	Methods      []methodData
}

// fieldData describes the single field of an adapter or decorator.
type fieldData struct {
	Name     string
	Type     string
	Param    string // Constructor parameter name
	Embedded bool
}

// methodData is one emitted method.
type methodData struct {
	Doc     string
	Recv    string
	Name    string
	Params  string
	Results string
	Body    string
}

// buildTemplateData constructs the template data from a resolved plan.
func buildTemplateData(p *plan.ResolvedPlan) *templateData {
	f := typeFormatter{local: p.Local}
	req := &p.Request

	data := &templateData{
		PackageName:  req.Package,
		Imports:      p.Imports,
		TypeName:     req.TypeName,
		ContractType: f.typ(p.ContractType),
	}

	switch req.Pattern {
	case plan.PatternAdapter:
		data.Field = &fieldData{Name: plan.AdapteeField, Type: f.typ(p.ReceiverType), Param: plan.AdapteeField}
	case plan.PatternDecorator:
		data.Field = &fieldData{
			Name:     plan.EmbeddedField(p.ReceiverType),
			Type:     f.typ(p.ReceiverType),
			Param:    "inner",
			Embedded: true,
		}
	case plan.PatternFacade:
		data.Singleton = req.TypeName + "Default"
	}

	data.Doc = typeDoc(p, f)

	reserved := make(map[string]bool)
	for _, imp := range p.Imports {
		reserved[imp.Qualifier()] = true
	}

	for _, n := range glueNames {
		reserved[n] = true
	}

	recv := receiverName(req.TypeName)

	omitted := make(map[model.MemberKey]bool, len(p.Omitted))
	for i := range p.Omitted {
		omitted[p.Omitted[i].Key()] = true
	}

	for i := range p.Members {
		m := &p.Members[i]
		if omitted[m.Key()] {
			continue
		}

		b, bound := p.Binding(m.Key())

		local := maps.Clone(reserved)
		local[recv] = true

		if bound && b.Candidate.Host == p.Local {
			// A local fragment is called unqualified and must not be shadowed.
			local[b.Candidate.Name] = true
		}

		md := methodData{
			Recv:    recv,
			Name:    m.Name,
			Results: f.result(m.Result, m.Async),
		}

		names := paramNames(m.Params, local)
		md.Params = renderParams(m.Params, names, f)

		if bound {
			md.Doc = fmt.Sprintf("%s forwards to %s.", m.Name, f.qualify(b.Candidate.Host, b.Candidate.Name))
			md.Body = forwardBody(b, call(p, b, recv, names, f), f)
		} else {
			md.Doc = m.Name + " is not implemented."
			md.Body = fmt.Sprintf("\tpanic(%q)\n", req.TypeName+"."+m.Name+" not implemented")
		}

		data.Methods = append(data.Methods, md)
	}

	return data
}

func typeDoc(p *plan.ResolvedPlan, f typeFormatter) string {
	var sb strings.Builder

	if p.ContractType != "" {
		sb.WriteString("implements " + f.typ(p.ContractType))
	} else {
		sb.WriteString("exposes the mapping fragments")
	}

	if host := common.PkgAlias(p.Request.Host); host != "" {
		sb.WriteString(" by forwarding to fragments of " + host)
	}

	sb.WriteString(".")

	return sb.String()
}

// receiverName returns the lowercased first letter of the type name.
func receiverName(typeName string) string {
	for _, r := range typeName {
		return strings.ToLower(string(r))
	}

	return "s"
}

// paramNames assigns each parameter a name that is unique in the
// signature and does not shadow anything the body refers to.
func paramNames(params []model.Parameter, reserved map[string]bool) []string {
	names := make([]string, len(params))

	for i, prm := range params {
		name := prm.Name
		if name == "" || name == "_" {
			name = fmt.Sprintf("p%d", i)
		}

		for reserved[name] {
			name += "_"
		}

		reserved[name] = true
		names[i] = name
	}

	return names
}

func renderParams(params []model.Parameter, names []string, f typeFormatter) string {
	parts := make([]string, len(params))
	for i, prm := range params {
		parts[i] = names[i] + " " + f.param(prm)
	}

	return strings.Join(parts, ", ")
}

// call renders the fragment invocation, receiver argument first.
func call(p *plan.ResolvedPlan, b *model.Binding, recv string, names []string, f typeFormatter) string {
	var args []string

	switch p.Request.Pattern {
	case plan.PatternAdapter:
		args = append(args, recv+"."+plan.AdapteeField)
	case plan.PatternDecorator:
		args = append(args, recv+"."+plan.EmbeddedField(p.ReceiverType))
	case plan.PatternFacade:
	}

	for i, name := range names {
		if b.Member.Params[i].IsParamsArray {
			name += "..."
		}

		args = append(args, name)
	}

	return f.qualify(b.Candidate.Host, b.Candidate.Name) + "(" + strings.Join(args, ", ") + ")"
}

// forwardBody renders a method body around the fragment call, inserting
// the glue chosen during validation.
func forwardBody(b *model.Binding, expr string, f typeFormatter) string {
	m := &b.Member
	void := m.IsVoid()
	elem := f.elem(m.Result)

	var sb strings.Builder

	line := func(format string, args ...any) {
		sb.WriteString("\t")
		fmt.Fprintf(&sb, format, args...)
		sb.WriteString("\n")
	}

	switch b.Adapt {
	case model.AdaptNone:
		if void {
			line("%s", expr)
		} else {
			line("return %s", expr)
		}

	case model.AdaptWrap:
		if m.Async == model.AsyncTask {
			line("ch := make(chan %s, 1)", elem)

			if void {
				line("%s", expr)
				line("ch <- struct{}{}")
			} else {
				line("ch <- %s", expr)
			}

			line("close(ch)")
			line("return ch")
		} else {
			if void {
				line("%s", expr)
				line("return func() {}")
			} else {
				line("v := %s", expr)
				line("return func() %s { return v }", elem)
			}
		}

	case model.AdaptRewrap:
		if m.Async == model.AsyncValueTask {
			// Channel to thunk: the value is received before returning.
			if void {
				line("<-%s", expr)
				line("return func() {}")
			} else {
				line("v := <-%s", expr)
				line("return func() %s { return v }", elem)
			}
		} else {
			line("f := %s", expr)
			line("ch := make(chan %s, 1)", elem)
			line("go func() {")

			if void {
				line("\tf()")
				line("\tch <- struct{}{}")
			} else {
				line("\tch <- f()")
			}

			line("\tclose(ch)")
			line("}()")
			line("return ch")
		}
	}

	return sb.String()
}
