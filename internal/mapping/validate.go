package mapping

import (
	"go/token"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
	"synth-generator/internal/plan"
)

// SupportedVersion is the only schema version this loader understands.
const SupportedVersion = "1"

// Validate checks the structure of a synthesis file. It does not consult
// any oracle: references to contracts and hosts are resolved, and
// reported, by the pipeline.
func Validate(sf *SynthesisFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	file := diagnostic.NewReporter(res, diagnostic.FamilyConfig, "")

	if sf == nil {
		file.Errorf(diagnostic.KindInvalidConfig, "", "synthesis file is nil")
		return res
	}

	if sf.Version != SupportedVersion {
		file.Errorf(diagnostic.KindInvalidConfig, "version",
			"unsupported version %q (expected %q)", sf.Version, SupportedVersion)
	}

	if len(sf.Requests) == 0 {
		file.Warnf(diagnostic.KindInvalidConfig, "requests", "synthesis file declares no requests")
	}

	seenRequests := map[string]struct{}{}

	for i := range sf.Requests {
		r := &sf.Requests[i]
		rep := diagnostic.NewReporter(res, diagnostic.FamilyConfig, r.Name)

		if _, ok := seenRequests[r.Name]; ok {
			rep.Errorf(diagnostic.KindInvalidConfig, r.Name, "duplicate request %q", r.Name)
		}

		seenRequests[r.Name] = struct{}{}

		validateRequest(rep, r)
	}

	for _, q := range sortedKeys(sf.Packages) {
		path := sf.Packages[q]
		if !token.IsIdentifier(q) {
			file.Errorf(diagnostic.KindInvalidConfig, q, "package qualifier %q is not a Go identifier", q)
		}

		if path == "" {
			file.Errorf(diagnostic.KindInvalidConfig, q, "package qualifier %q has an empty import path", q)
		}
	}

	validateContracts(file, sf.Contracts)
	validateHosts(file, sf.Hosts)
	validateScopes(file, sf.Scopes)

	return res
}

func validateRequest(rep *diagnostic.Reporter, r *RequestDef) {
	if r.Name == "" {
		rep.Errorf(diagnostic.KindInvalidConfig, "", "request must specify a name or a type")
	}

	if r.Type == "" {
		rep.Errorf(diagnostic.KindInvalidConfig, r.Name, "request must specify type")
	}

	if r.Host == "" {
		rep.Errorf(diagnostic.KindInvalidConfig, r.Name, "request must specify host")
	}

	if _, err := plan.ParsePattern(r.Pattern); err != nil {
		rep.Errorf(diagnostic.KindInvalidConfig, r.Name, "%v", err)
	}

	if _, err := plan.ParseMode(r.Mode); err != nil {
		rep.Errorf(diagnostic.KindInvalidConfig, r.Name, "%v", err)
	}

	if _, err := plan.ParsePolicy(r.Policy); err != nil {
		rep.Errorf(diagnostic.KindInvalidConfig, r.Name, "%v", err)
	}
}

func validateContracts(rep *diagnostic.Reporter, contracts []ContractDef) {
	seen := map[string]struct{}{}

	for i := range contracts {
		c := &contracts[i]
		if c.Name == "" {
			rep.Errorf(diagnostic.KindInvalidConfig, "", "contract #%d must specify a name", i+1)
			continue
		}

		if _, ok := seen[c.Name]; ok {
			rep.Errorf(diagnostic.KindInvalidConfig, c.Name, "duplicate contract %q", c.Name)
		}

		seen[c.Name] = struct{}{}

		if c.Extends.Contains(c.Name) {
			rep.Errorf(diagnostic.KindInvalidConfig, c.Name, "contract %s extends itself", c.Name)
		}

		for j := range c.Members {
			m := &c.Members[j]
			subject := c.Name + "." + m.Name

			if m.Name == "" {
				rep.Errorf(diagnostic.KindInvalidConfig, c.Name, "member #%d of %s must specify a name", j+1, c.Name)
			}

			if _, err := model.ParseMemberKind(m.Kind); err != nil {
				rep.Errorf(diagnostic.KindInvalidConfig, subject, "%v", err)
			}

			if m.Access != "" && m.Access != "public" && m.Access != "internal" {
				rep.Errorf(diagnostic.KindInvalidConfig, subject, "unknown access %q", m.Access)
			}

			validateParams(rep, subject, m.Params)
		}
	}
}

func validateHosts(rep *diagnostic.Reporter, hosts []HostDef) {
	seen := map[string]struct{}{}

	for i := range hosts {
		h := &hosts[i]
		if h.Name == "" {
			rep.Errorf(diagnostic.KindInvalidConfig, "", "host #%d must specify a name", i+1)
			continue
		}

		if _, ok := seen[h.Name]; ok {
			rep.Errorf(diagnostic.KindInvalidConfig, h.Name, "duplicate host %q", h.Name)
		}

		seen[h.Name] = struct{}{}

		if !token.IsIdentifier(h.Qualifier) {
			rep.Errorf(diagnostic.KindInvalidConfig, h.Name, "host qualifier %q is not a Go identifier", h.Qualifier)
		}

		for j := range h.Fragments {
			f := &h.Fragments[j]
			subject := h.Qualifier + "." + f.Name

			if !token.IsIdentifier(f.Name) {
				rep.Errorf(diagnostic.KindInvalidConfig, subject, "fragment name %q is not a Go identifier", f.Name)
			}

			validateParams(rep, subject, f.Params)
		}
	}
}

func validateScopes(rep *diagnostic.Reporter, scopes []ScopeDef) {
	for i := range scopes {
		s := &scopes[i]
		if s.Name == "" {
			rep.Errorf(diagnostic.KindInvalidConfig, "", "scope #%d must specify a name", i+1)
			continue
		}

		for _, n := range sortedKeys(s.Names) {
			if _, err := oracle.ParseDeclKind(s.Names[n]); err != nil {
				rep.Errorf(diagnostic.KindInvalidConfig, s.Name+"."+n, "%v", err)
			}
		}
	}
}

func validateParams(rep *diagnostic.Reporter, subject string, params ParamList) {
	for i, p := range params {
		if p.Type == "" {
			rep.Errorf(diagnostic.KindInvalidConfig, subject, "parameter #%d must specify a type", i+1)
		}

		if _, err := model.ParseParamMode(p.Mode); err != nil {
			rep.Errorf(diagnostic.KindInvalidConfig, subject, "%v", err)
		}

		if p.Variadic && i != len(params)-1 {
			rep.Errorf(diagnostic.KindInvalidConfig, subject, "only the last parameter can be variadic")
		}
	}
}
