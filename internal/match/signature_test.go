package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synth-generator/internal/model"
)

func param(typ string) model.Parameter {
	return model.Parameter{Type: typ}
}

func TestValidateSignature_AsyncEquivalence(t *testing.T) {
	member := &model.ContractMember{Name: "Fetch", Result: "string", Async: model.AsyncValueTask}

	tests := []struct {
		name   string
		cand   model.MappingCandidate
		ok     bool
		adapt  model.Adaptation
		aspect Aspect
	}{
		{
			name:  "plain value",
			cand:  model.MappingCandidate{Name: "Fetch", Result: "string"},
			ok:    true,
			adapt: model.AdaptWrap,
		},
		{
			name:  "channel",
			cand:  model.MappingCandidate{Name: "Fetch", Result: "string", Async: model.AsyncTask},
			ok:    true,
			adapt: model.AdaptRewrap,
		},
		{
			name:  "thunk",
			cand:  model.MappingCandidate{Name: "Fetch", Result: "string", Async: model.AsyncValueTask},
			ok:    true,
			adapt: model.AdaptNone,
		},
		{
			name:   "channel of another type",
			cand:   model.MappingCandidate{Name: "Fetch", Result: "int", Async: model.AsyncTask},
			aspect: AspectResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateSignature(member, &tt.cand)
			assert.Equal(t, tt.ok, v.OK)

			if tt.ok {
				assert.Equal(t, tt.adapt, v.Adapt)
				assert.Equal(t, AspectNone, v.Aspect)
			} else {
				assert.Equal(t, tt.aspect, v.Aspect)
				assert.Contains(t, v.Detail, "fragment returns <-chan int")
			}
		})
	}
}

func TestValidateSignature_SyncMemberRejectsAsync(t *testing.T) {
	member := &model.ContractMember{Name: "Now", Result: "time.Time"}

	for _, shape := range []model.AsyncShape{model.AsyncTask, model.AsyncValueTask} {
		v := ValidateSignature(member, &model.MappingCandidate{Name: "Now", Result: "time.Time", Async: shape})
		assert.False(t, v.OK, shape.String())
		assert.Equal(t, AspectResult, v.Aspect)
		assert.Contains(t, v.Detail, "synchronous contract member returns time.Time")
	}

	v := ValidateSignature(member, &model.MappingCandidate{Name: "Now", Result: "time.Time"})
	require.True(t, v.OK)
	assert.Equal(t, model.AdaptNone, v.Adapt)
}

func TestValidateSignature_RefAgainstPointer(t *testing.T) {
	member := &model.ContractMember{Name: "Swap", Params: []model.Parameter{{Type: "int", Mode: model.ParamRef}}}

	v := ValidateSignature(member, &model.MappingCandidate{Params: []model.Parameter{param("*int")}})
	assert.Equal(t, AspectParamMode, v.Aspect)
	assert.True(t, v.IsRefKind())
	assert.Contains(t, v.Detail, "contract passes by ref, fragment passes by value")

	v = ValidateSignature(member, &model.MappingCandidate{Params: []model.Parameter{param("*string")}})
	assert.Equal(t, AspectParamType, v.Aspect)
}

func TestValidateSignature_AspectOrder(t *testing.T) {
	member := &model.ContractMember{
		Name:   "Swap",
		Params: []model.Parameter{{Type: "int", Mode: model.ParamRef}, param("string")},
		Result: "bool",
	}

	// Arity is checked first.
	v := ValidateSignature(member, &model.MappingCandidate{Params: []model.Parameter{param("int")}, Result: "int"})
	assert.Equal(t, AspectArity, v.Aspect)

	// Types are checked before modes.
	v = ValidateSignature(member, &model.MappingCandidate{
		Params: []model.Parameter{param("int"), param("int")},
		Result: "bool",
	})
	assert.Equal(t, AspectParamType, v.Aspect)
	assert.Contains(t, v.Detail, "parameter 2")

	v = ValidateSignature(member, &model.MappingCandidate{
		Params: []model.Parameter{param("int"), param("string")},
		Result: "bool",
	})
	assert.Equal(t, AspectParamMode, v.Aspect)
	assert.True(t, v.IsRefKind())
	assert.Contains(t, v.Detail, "contract passes by ref, fragment passes by value")

	v = ValidateSignature(member, &model.MappingCandidate{
		Params: []model.Parameter{{Type: "int", Mode: model.ParamRef}, {Type: "string", IsParamsArray: true}},
		Result: "bool",
	})
	assert.Equal(t, AspectVariadic, v.Aspect)

	v = ValidateSignature(member, &model.MappingCandidate{
		Params: []model.Parameter{{Type: "int", Mode: model.ParamRef}, param("string")},
	})
	assert.Equal(t, AspectResult, v.Aspect)
	assert.Contains(t, v.Detail, "fragment returns nothing")
}

func TestValidateSignature_NoWidening(t *testing.T) {
	member := &model.ContractMember{Name: "Add", Params: []model.Parameter{param("int64")}}
	v := ValidateSignature(member, &model.MappingCandidate{Params: []model.Parameter{param("int32")}})

	assert.False(t, v.OK)
	assert.Equal(t, AspectParamType, v.Aspect)
}

func TestChooseAdaptation(t *testing.T) {
	cases := []struct {
		member, cand model.AsyncShape
		want         model.Adaptation
	}{
		{model.AsyncNone, model.AsyncNone, model.AdaptNone},
		{model.AsyncTask, model.AsyncNone, model.AdaptWrap},
		{model.AsyncNone, model.AsyncValueTask, model.AdaptNone},
		{model.AsyncTask, model.AsyncValueTask, model.AdaptRewrap},
	}

	for _, c := range cases {
		if got := ChooseAdaptation(c.member, c.cand); got != c.want {
			t.Errorf("ChooseAdaptation(%v, %v) = %v, want %v", c.member, c.cand, got, c.want)
		}
	}
}

func TestAspect_String(t *testing.T) {
	assert.Equal(t, "ref kind", AspectParamMode.String())
	assert.Equal(t, "unknown", Aspect(42).String())
}
