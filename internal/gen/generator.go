package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"synth-generator/internal/common"
	"synth-generator/internal/plan"
)

// ArtifactSuffix is the file suffix of every synthesized artifact.
const ArtifactSuffix = ".synth.go"

// Header is the first line of every synthesized artifact.
const Header = "// Code generated by synth-generator. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// DebugDir receives the unformatted source when formatting fails.
	DebugDir string
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the artifact key (e.g., "legacy_clock_adapter.synth.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// ArtifactKey derives the stable file name of a request's artifact from
// its fragment host and the synthesized type. Type names are unique within
// the output package, so distinct types never share a file.
func ArtifactKey(p *plan.ResolvedPlan) string {
	source := common.PkgAlias(p.Request.Host)

	return common.SnakeCase(source) + "_" + common.SnakeCase(p.Request.TypeName) + ArtifactSuffix
}

// Generate emits the synthesized type of a plan that passed the gate.
// A formatting error means an earlier stage let an invalid plan through;
// the unformatted source is returned alongside it.
func (g *Generator) Generate(p *plan.ResolvedPlan) (*GeneratedFile, error) {
	data := buildTemplateData(p)
	filename := ArtifactKey(p)

	var buf bytes.Buffer
	if err := synthTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

// Template for the synthesized type

var synthTemplate = template.Must(template.New("synth").Parse(Header + `

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// {{.TypeName}} {{.Doc}}
type {{.TypeName}} struct {
{{- with .Field}}
	{{if not .Embedded}}{{.Name}} {{end}}{{.Type}}
{{- end}}
}
{{if .ContractType}}
var _ {{.ContractType}} = (*{{.TypeName}})(nil)
{{end}}{{if .Singleton}}
// {{.Singleton}} is the shared {{.TypeName}}.
var {{.Singleton}} = New{{.TypeName}}()
{{end}}
// New{{.TypeName}} returns a {{.TypeName}}{{with .Field}} forwarding to {{.Param}}{{end}}.
func New{{.TypeName}}({{with .Field}}{{.Param}} {{.Type}}{{end}}) *{{.TypeName}} {
	return &{{.TypeName}}{ {{- with .Field}}{{.Name}}: {{.Param}}{{end -}} }
}
{{range .Methods}}
// {{.Doc}}
func ({{.Recv}} *{{$.TypeName}}) {{.Name}}({{.Params}}){{if .Results}} {{.Results}}{{end}} {
{{.Body}}}
{{end}}`))
