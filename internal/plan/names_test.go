package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
)

func TestIntroducedNames(t *testing.T) {
	req := &Request{TypeName: "Clock", Pattern: PatternDecorator}
	imports := []Import{{Path: "time"}, {Alias: "yaml", Path: "gopkg.in/yaml.v3"}}

	got := IntroducedNames(req, "*clock.Clock", imports)

	assert.Equal(t, []IntroducedName{
		{Name: "Clock", Kind: oracle.DeclType, Role: "type"},
		{Name: "NewClock", Kind: oracle.DeclFunc, Role: "constructor"},
		{Name: "Clock", Kind: oracle.DeclField, Role: "field"},
		{Name: "time", Kind: oracle.DeclPackage, Role: "import"},
		{Name: "yaml", Kind: oracle.DeclPackage, Role: "import"},
	}, got)
}

func TestEmbeddedField(t *testing.T) {
	assert.Equal(t, "Clock", EmbeddedField("clock.Clock"))
	assert.Equal(t, "Reader", EmbeddedField("*io.Reader"))
	assert.Equal(t, "Store", EmbeddedField("Store[int]"))
	assert.Equal(t, "Local", EmbeddedField("Local"))
}

func TestCheckNames(t *testing.T) {
	tests := []struct {
		name       string
		introduced []IntroducedName
		members    []model.ContractMember
		visible    oracle.NameSet
		want       []string
	}{
		{
			name: "clean",
			introduced: []IntroducedName{
				{Name: "Clock", Kind: oracle.DeclType, Role: "type"},
				{Name: "adaptee", Kind: oracle.DeclField, Role: "field"},
			},
			members: []model.ContractMember{{Name: "Now"}},
			visible: oracle.NameSet{"Other": oracle.DeclType},
		},
		{
			name:       "scope collision",
			introduced: []IntroducedName{{Name: "Clock", Kind: oracle.DeclType, Role: "type"}},
			visible:    oracle.NameSet{"Clock": oracle.DeclVar},
			want:       []string{`type "Clock" collides with existing var Clock`},
		},
		{
			name:       "import collides with package-level name",
			introduced: []IntroducedName{{Name: "time", Kind: oracle.DeclPackage, Role: "import"}},
			visible:    oracle.NameSet{"time": oracle.DeclFunc},
			want:       []string{`import "time" collides with existing func time`},
		},
		{
			name: "introduced twice",
			introduced: []IntroducedName{
				{Name: "NewX", Kind: oracle.DeclType, Role: "type"},
				{Name: "NewX", Kind: oracle.DeclFunc, Role: "constructor"},
			},
			want: []string{`constructor "NewX" would be declared twice (also introduced as type)`},
		},
		{
			name:       "field shadows method",
			introduced: []IntroducedName{{Name: "Clock", Kind: oracle.DeclField, Role: "field"}},
			members:    []model.ContractMember{{Name: "Clock"}},
			want:       []string{`field "Clock" collides with method Clock of the synthesized type`},
		},
		{
			name: "overloaded member",
			members: []model.ContractMember{
				{Name: "Print", Params: []model.Parameter{p("int")}},
				{Name: "Print", Params: []model.Parameter{p("string")}},
			},
			want: []string{"member Print(int) is overloaded; a Go type cannot declare two methods named Print"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, rep := newRep()
			CheckNames(tt.introduced, tt.members, tt.visible, rep)

			var got []string
			for _, d := range diags.Items {
				require.Equal(t, diagnostic.KindNameConflict, d.Kind)
				got = append(got, d.Message)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQualifiers(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"int", nil},
		{"time.Time", []string{"time"}},
		{"map[string]*legacy.Clock", []string{"legacy"}},
		{"func(context.Context, io.Reader) (time.Duration, error)", []string{"context", "io", "time"}},
		{"<-chan pkg.A[pkg.B]", []string{"pkg"}},
	}

	for _, tt := range tests {
		got, err := Qualifiers(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}

	_, err := Qualifiers("map[")
	require.Error(t, err)
}

func TestApplyPolicy(t *testing.T) {
	unbound := []model.ContractMember{{Name: "A"}, {Name: "B"}}

	t.Run("error", func(t *testing.T) {
		diags, rep := newRep()
		stubs, omitted := ApplyPolicy(unbound, PolicyError, PatternAdapter, rep)

		assert.Empty(t, stubs)
		assert.Empty(t, omitted)
		assert.Len(t, diags.OfKind(diagnostic.KindMissingMapping), 2)
	})

	t.Run("stub", func(t *testing.T) {
		diags, rep := newRep()
		stubs, _ := ApplyPolicy(unbound, PolicyThrowingStub, PatternFacade, rep)

		assert.Len(t, stubs, 2)
		assert.Empty(t, diags.Items)
	})

	t.Run("ignore", func(t *testing.T) {
		diags, rep := newRep()
		_, omitted := ApplyPolicy(unbound, PolicyIgnore, PatternDecorator, rep)

		assert.Len(t, omitted, 2)
		assert.Empty(t, diags.Items)
	})

	t.Run("ignore unsupported", func(t *testing.T) {
		diags, rep := newRep()
		stubs, omitted := ApplyPolicy(unbound, PolicyIgnore, PatternFacade, rep)

		assert.Empty(t, stubs)
		assert.Empty(t, omitted)
		assert.Len(t, diags.OfKind(diagnostic.KindPolicyNotSupported), 1)
		assert.Len(t, diags.OfKind(diagnostic.KindMissingMapping), 2)
	})
}
