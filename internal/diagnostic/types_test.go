package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamily_Code(t *testing.T) {
	assert.Equal(t, "ADP002", FamilyAdapter.Code(KindMissingMapping))
	assert.Equal(t, "DEC007", FamilyDecorator.Code(KindNameConflict))
	assert.Equal(t, "FAC006", FamilyFacade.Code(KindRefKindMismatch))
	assert.Equal(t, "ref_kind_mismatch", KindRefKindMismatch.String())
}

func TestDiagnostics_OrderAndGate(t *testing.T) {
	var d Diagnostics

	r := NewReporter(&d, FamilyAdapter, "clock")
	r.Warnf(KindEmptyContract, "IClock", "contract %s declares no members", "IClock")
	assert.True(t, d.IsValid(), "warnings never block emission")
	require.NoError(t, d.Error())

	r.Errorf(KindMissingMapping, "Now", "no mapping for %s", "Now")
	r.Errorf(KindNameConflict, "ClockAdapter", "name taken")

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Errors(), 2)
	assert.Len(t, d.Warnings(), 1)
	assert.Empty(t, d.Infos())
	assert.Equal(t, 3, d.Len())

	// Insertion order is preserved across severities.
	assert.Equal(t, KindEmptyContract, d.Items[0].Kind)
	assert.Equal(t, KindMissingMapping, d.Items[1].Kind)
	assert.Equal(t, KindNameConflict, d.Items[2].Kind)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[clock] Now: [ADP002] no mapping for Now; [clock] ClockAdapter: [ADP007] name taken",
		err.Error())
}

func TestDiagnostic_StringWithSuggestions(t *testing.T) {
	var d Diagnostics

	r := NewReporter(&d, FamilyFacade, "")
	r.ErrorSuggest(KindTargetNotFound, "Nwo", []string{"Now"}, "target member %q not found", "Nwo")

	assert.Equal(t, `Nwo: [FAC004] target member "Nwo" not found (did you mean "Now"?)`, d.Items[0].String())
	assert.Len(t, d.OfKind(KindTargetNotFound), 1)
}

func TestDiagnostics_MergeAndSort(t *testing.T) {
	var a, b Diagnostics

	a.AddError("ADP002", "second", "b-request", "")
	a.AddWarning("ADP011", "first of b", "b-request", "")
	b.AddError("FAC002", "only", "a-request", "")

	a.Merge(b)
	a.Sort()

	require.Len(t, a.Items, 3)
	assert.Equal(t, "a-request", a.Items[0].Request)
	assert.Equal(t, "second", a.Items[1].Message)
	assert.Equal(t, "first of b", a.Items[2].Message)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
