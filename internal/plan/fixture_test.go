package plan

import (
	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
)

func p(typ string) model.Parameter {
	return model.Parameter{Type: typ}
}

func legacyRecv() model.Parameter {
	return model.Parameter{Name: "c", Type: "*legacy.Clock"}
}

func frag(name, target, result string, params ...model.Parameter) model.MappingCandidate {
	return model.MappingCandidate{
		Host:           "legacy",
		Name:           name,
		ExplicitTarget: target,
		Params:         params,
		Result:         result,
		IsStatic:       true,
		Marked:         true,
	}
}

// clockSnapshot declares
//
//	clock.Clock -> (clock.Zoner, clock.Sleeper) -> clock.Base
//
// and a legacy host with fragments for every member.
func clockSnapshot() *oracle.Snapshot {
	s := oracle.NewSnapshot()

	s.AddContract(&oracle.ContractDecl{
		Name: "clock.Base", Type: "clock.Base", Scope: "example.com/clock",
		Members: []model.ContractMember{{Name: "Now", Result: "time.Time"}},
	})
	s.AddContract(&oracle.ContractDecl{
		Name: "clock.Zoner", Type: "clock.Zoner", Scope: "example.com/clock",
		Extends: []string{"clock.Base"},
		Members: []model.ContractMember{{Name: "Zone", Result: "string"}},
	})
	s.AddContract(&oracle.ContractDecl{
		Name: "clock.Sleeper", Type: "clock.Sleeper", Scope: "example.com/clock",
		Extends: []string{"clock.Base"},
		Members: []model.ContractMember{{Name: "Sleep", Params: []model.Parameter{p("time.Duration")}}},
	})
	s.AddContract(&oracle.ContractDecl{
		Name: "clock.Clock", Type: "clock.Clock", Scope: "example.com/clock",
		Extends: []string{"clock.Zoner", "clock.Sleeper"},
		Members: []model.ContractMember{{
			Name: "Since", Params: []model.Parameter{p("time.Time")}, Result: "time.Duration",
		}},
	})

	s.AddHost("example.com/legacy",
		frag("CurrentTime", "Now", "time.Time", legacyRecv()),
		frag("Since", "", "time.Duration", legacyRecv(), p("time.Time")),
		frag("Pause", "", "", legacyRecv(), p("time.Duration")),
		frag("ZoneName", "", "string", legacyRecv()),
		model.MappingCandidate{Host: "legacy", Name: "helper", IsStatic: true},
	)

	s.AddScope("example.com/out", oracle.NameSet{"Existing": oracle.DeclType})
	s.AddScope("example.com/clock", oracle.NameSet{"Clock": oracle.DeclType})

	s.AddPackage("clock", "example.com/clock")
	s.AddPackage("legacy", "example.com/legacy")
	s.AddPackage("time", "time")
	s.AddPackage("out", "example.com/out")

	return s
}

func clockRequest() Request {
	return Request{
		Name:     "clock",
		Pattern:  PatternAdapter,
		Mode:     ModeContractFirst,
		Policy:   PolicyError,
		Contract: "clock.Clock",
		Host:     "example.com/legacy",
		Scope:    "example.com/out",
		TypeName: "ClockAdapter",
		Receiver: "*legacy.Clock",
		Package:  "out",
	}
}

func resolve(o oracle.Oracle, req Request) (*ResolvedPlan, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	rep := diagnostic.NewReporter(diags, req.Pattern.Family(), req.Name)

	return NewResolver(o, req, rep).Resolve(), diags
}

func newRep() (*diagnostic.Diagnostics, *diagnostic.Reporter) {
	diags := &diagnostic.Diagnostics{}
	return diags, diagnostic.NewReporter(diags, diagnostic.FamilyAdapter, "test")
}

func nameList(members []model.ContractMember) []string {
	out := make([]string, len(members))
	for i := range members {
		out[i] = members[i].Name
	}

	return out
}
