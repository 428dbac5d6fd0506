package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"synth-generator/internal/common"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Diagnostics is the ordered list of findings for one or more requests.
// Stages only append; the order of insertion is part of the output.
type Diagnostics struct {
	Items []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is the stable family-prefixed code, e.g. "ADP003".
	Code string
	// Kind is the family-independent category behind Code.
	Kind Kind
	// Message is the human-readable description.
	Message string
	// Request names the synthesis request this relates to (if any).
	Request string
	// Subject names the member, fragment or identifier concerned (if any).
	Subject string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Kind is a family-independent diagnostic category. Its numeric value is
// the numeric part of the stable code, so values must never be reordered.
type Kind int

const (
	KindUnknown            Kind = iota // unknown
	KindNotSynthesizable               // not_synthesizable
	KindMissingMapping                 // missing_mapping
	KindDuplicateMapping               // duplicate_mapping
	KindTargetNotFound                 // target_not_found
	KindSignatureMismatch              // signature_mismatch
	KindRefKindMismatch                // ref_kind_mismatch
	KindNameConflict                   // name_conflict
	KindUnsupportedMember              // unsupported_member
	KindInstanceFragment               // instance_fragment
	KindMissingReceiver                // missing_receiver
	KindEmptyContract                  // empty_contract
	KindUnexportedMember               // unexported_member
	KindAmbiguousContract              // ambiguous_contract
	KindShadowedCandidate              // shadowed_candidate
	KindUnusedFragment                 // unused_fragment
	KindPolicyNotSupported             // policy_not_supported
	KindOracleFailure                  // oracle_failure
	KindInvalidConfig                  // invalid_config
)

// Family is the code prefix of one generator family.
type Family string

const (
	FamilyAdapter   Family = "ADP"
	FamilyDecorator Family = "DEC"
	FamilyFacade    Family = "FAC"
	FamilyConfig    Family = "CFG"
)

// Code returns the stable code for kind within this family.
func (f Family) Code(k Kind) string {
	return fmt.Sprintf("%s%03d", string(f), int(k))
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, request, subject string) {
	d.add(DiagnosticError, code, message, request, subject)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, request, subject string) {
	d.add(DiagnosticWarning, code, message, request, subject)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, request, subject string) {
	d.add(DiagnosticInfo, code, message, request, subject)
}

// Add appends a fully built diagnostic.
func (d *Diagnostics) Add(diag Diagnostic) {
	d.Items = append(d.Items, diag)
}

func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, request, subject string) {
	d.Items = append(d.Items, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Request:  request,
		Subject:  subject,
	})
}

// Errors returns the error diagnostics in insertion order.
func (d *Diagnostics) Errors() []Diagnostic {
	return d.filter(DiagnosticError)
}

// Warnings returns the warning diagnostics in insertion order.
func (d *Diagnostics) Warnings() []Diagnostic {
	return d.filter(DiagnosticWarning)
}

// Infos returns the info diagnostics in insertion order.
func (d *Diagnostics) Infos() []Diagnostic {
	return d.filter(DiagnosticInfo)
}

func (d *Diagnostics) filter(sev DiagnosticSeverity) []Diagnostic {
	var out []Diagnostic

	for _, item := range d.Items {
		if item.Severity == sev {
			out = append(out, item)
		}
	}

	return out
}

// OfKind returns the diagnostics of the given kind in insertion order.
func (d *Diagnostics) OfKind(k Kind) []Diagnostic {
	var out []Diagnostic

	for _, item := range d.Items {
		if item.Kind == k {
			out = append(out, item)
		}
	}

	return out
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.Items {
		if item.Severity == DiagnosticError {
			return true
		}
	}

	return false
}

// Len returns the number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Items)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Items = append(d.Items, other.Items...)
}

// Sort orders diagnostics by request name, keeping insertion order within
// a request. Used when merging results of independently run requests.
func (d *Diagnostics) Sort() {
	sort.SliceStable(d.Items, func(i, j int) bool {
		return d.Items[i].Request < d.Items[j].Request
	})
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors() {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Request != "" {
		prefix = append(prefix, "["+d.Request+"]")
	}

	if d.Subject != "" {
		prefix = append(prefix, d.Subject)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(quoteAll(d.Suggestions), ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}

	return out
}
