package diagnostic

import "fmt"

// Reporter appends diagnostics for one request of one generator family.
// Every pipeline stage of a request shares the same Reporter.
type Reporter struct {
	diags   *Diagnostics
	family  Family
	request string
}

// NewReporter returns a Reporter that appends to diags.
func NewReporter(diags *Diagnostics, family Family, request string) *Reporter {
	return &Reporter{diags: diags, family: family, request: request}
}

// Diagnostics returns the underlying list.
func (r *Reporter) Diagnostics() *Diagnostics {
	return r.diags
}

// Family returns the code family of this reporter.
func (r *Reporter) Family() Family {
	return r.family
}

// Errorf reports an error-severity finding.
func (r *Reporter) Errorf(kind Kind, subject, format string, args ...any) {
	r.report(DiagnosticError, kind, subject, nil, format, args...)
}

// Warnf reports a warning-severity finding.
func (r *Reporter) Warnf(kind Kind, subject, format string, args ...any) {
	r.report(DiagnosticWarning, kind, subject, nil, format, args...)
}

// Infof reports an informational finding.
func (r *Reporter) Infof(kind Kind, subject, format string, args ...any) {
	r.report(DiagnosticInfo, kind, subject, nil, format, args...)
}

// ErrorSuggest reports an error with "did you mean" suggestions.
func (r *Reporter) ErrorSuggest(kind Kind, subject string, suggestions []string, format string, args ...any) {
	r.report(DiagnosticError, kind, subject, suggestions, format, args...)
}

func (r *Reporter) report(
	sev DiagnosticSeverity,
	kind Kind,
	subject string,
	suggestions []string,
	format string,
	args ...any,
) {
	r.diags.Add(Diagnostic{
		Severity:    sev,
		Code:        r.family.Code(kind),
		Kind:        kind,
		Message:     fmt.Sprintf(format, args...),
		Request:     r.request,
		Subject:     subject,
		Suggestions: suggestions,
	})
}
