package plan

import (
	"errors"
	"go/token"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/match"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
)

// Resolver runs every stage before emission for one request. It holds no
// state beyond its inputs; a Resolver is used once.
type Resolver struct {
	oracle oracle.Oracle
	req    Request
	rep    *diagnostic.Reporter
}

// NewResolver creates a new Resolver reporting into rep.
func NewResolver(o oracle.Oracle, req Request, rep *diagnostic.Reporter) *Resolver {
	return &Resolver{oracle: o, req: req, rep: rep}
}

// Resolve runs contract resolution, collection, binding, the missing-member
// policy and the name checks, in that order. Every stage reports into the
// same Reporter and runs whenever its inputs exist, so a failing request
// carries every finding at once; the caller gates on the result.
func (r *Resolver) Resolve() *ResolvedPlan {
	p := &ResolvedPlan{Request: r.req}

	r.checkRequest()

	raw, hostOK := r.hostDeclarations()

	// Members exist in host-first mode once the host is known; otherwise
	// they come from a resolved contract graph.
	membersOK := r.req.Mode == ModeHostFirst

	switch r.req.Mode {
	case ModeContractFirst:
		p.Contract = r.req.Contract
	case ModeAutoTarget:
		p.Contract = DiscoverContract(r.oracle, r.req.Scope, raw, r.rep)
	case ModeHostFirst:
	}

	if p.Contract != "" {
		g, ok := r.contractGraph(p.Contract)
		if ok {
			p.ContractType = g.Root().Type
			p.Members = ResolveMembers(g, r.rep)
		}

		membersOK = ok
	}

	p.ReceiverType = r.receiverType(p.ContractType)
	p.Candidates = Collect(raw, p.ReceiverType, r.rep)

	// A missing receiver leaves the receiver parameter in every candidate,
	// so binding would only report mismatches caused by the request.
	candidatesOK := hostOK && (!r.needsExplicitReceiver() || r.req.Receiver != "")

	if membersOK && candidatesOK {
		r.bind(p)
		resolveImports(r.oracle, p, r.rep)
	}

	if r.req.TypeName != "" {
		p.Introduced = IntroducedNames(&r.req, p.ReceiverType, p.Imports)
		CheckNames(p.Introduced, p.Members, r.visibleNames(), r.rep)
	}

	return p
}

// bind matches candidates to members, then applies the missing-member
// policy to whatever is left unbound.
func (r *Resolver) bind(p *ResolvedPlan) {
	var unbound []model.ContractMember

	if r.req.Mode == ModeHostFirst {
		p.Members, p.Bindings = HostMembers(p.Candidates, r.rep)
		if len(p.Members) == 0 {
			r.rep.Warnf(diagnostic.KindEmptyContract, r.req.Host, "host %s declares no mapping fragments", r.req.Host)
		}
	} else {
		res := match.Bind(p.Members, p.Candidates, r.rep)
		p.Bindings = res.Bindings
		p.Unused = res.Unused
		unbound = res.Unbound
	}

	p.Stubs, p.Omitted = ApplyPolicy(unbound, r.req.Policy, r.req.Pattern, r.rep)
}

// needsExplicitReceiver reports whether the receiver type must come from
// the request rather than the contract.
func (r *Resolver) needsExplicitReceiver() bool {
	return r.req.Pattern == PatternAdapter ||
		(r.req.Pattern == PatternDecorator && r.req.Mode == ModeHostFirst)
}

// checkRequest reports request shapes no pattern can synthesize.
func (r *Resolver) checkRequest() {
	fail := func(subject, format string, args ...any) {
		r.rep.Errorf(diagnostic.KindNotSynthesizable, subject, format, args...)
	}

	switch {
	case r.req.TypeName == "":
		fail(r.req.Name, "type name is required")
	case !token.IsIdentifier(r.req.TypeName) || !token.IsExported(r.req.TypeName):
		fail(r.req.TypeName, "type name %q is not an exported Go identifier", r.req.TypeName)
	}

	if !token.IsIdentifier(r.req.Package) {
		fail(r.req.Name, "package name %q is not a Go identifier", r.req.Package)
	}

	if r.req.Host == "" {
		fail(r.req.Name, "a fragment host is required")
	}

	if r.req.Mode == ModeContractFirst && r.req.Contract == "" {
		fail(r.req.Name, "mode %s requires a contract", r.req.Mode)
	}

	if r.req.Mode == ModeAutoTarget && r.req.Scope == "" {
		fail(r.req.Name, "mode %s requires a scope to search", r.req.Mode)
	}

	if r.needsExplicitReceiver() && r.req.Receiver == "" {
		fail(r.req.Name, "pattern %s in mode %s requires a receiver type", r.req.Pattern, r.req.Mode)
	}
}

func (r *Resolver) hostDeclarations() ([]model.MappingCandidate, bool) {
	if r.req.Host == "" {
		return nil, false
	}

	raw, err := r.oracle.ResolveCandidates(r.req.Host)
	if err != nil {
		r.oracleError(r.req.Host, "fragment host", err)
		return nil, false
	}

	return raw, true
}

func (r *Resolver) contractGraph(ref string) (*oracle.Graph, bool) {
	g, err := r.oracle.ResolveContract(ref)
	if err != nil {
		r.oracleError(ref, "contract", err)
		return nil, false
	}

	if g.Root() == nil {
		r.rep.Errorf(diagnostic.KindOracleFailure, ref, "contract %s resolved to an empty graph", ref)
		return nil, false
	}

	return g, true
}

// visibleNames returns nil when the request names no scope.
func (r *Resolver) visibleNames() oracle.NameSet {
	if r.req.Scope == "" {
		return nil
	}

	names, err := r.oracle.LookupVisibleNames(r.req.Scope)
	if err != nil {
		r.oracleError(r.req.Scope, "scope", err)
		return nil
	}

	return names
}

func (r *Resolver) receiverType(contractType string) string {
	switch r.req.Pattern {
	case PatternAdapter:
		return r.req.Receiver
	case PatternDecorator:
		if contractType != "" {
			return contractType
		}

		return r.req.Receiver
	default:
		return ""
	}
}

func (r *Resolver) oracleError(ref, what string, err error) {
	if errors.Is(err, oracle.ErrNotFound) {
		r.rep.Errorf(diagnostic.KindNotSynthesizable, ref, "%s %s not found", what, ref)
		return
	}

	r.rep.Errorf(diagnostic.KindOracleFailure, ref, "resolving %s %s: %v", what, ref, err)
}
