package diagnostic

import (
	"errors"
	"strings"

	"strictjson-generator/internal/common"
)

// Severity orders diagnostics. Only errors stop generation.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one finding about a record schema or its source.
type Diagnostic struct {
	Severity Severity
	// Code is stable and meant for matching; Message is for people.
	Code    string
	Message string
	// Record and Field locate the finding; either may be empty.
	Record string
	Field  string
	// Suggestions are names the author may have meant.
	Suggestions []string
}

// String renders "Record.field: CODE: message (did you mean X?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	switch {
	case d.Record != "" && d.Field != "":
		b.WriteString(d.Record + "." + d.Field + ": ")
	case d.Record != "":
		b.WriteString(d.Record + ": ")
	case d.Field != "":
		b.WriteString(d.Field + ": ")
	}

	if d.Code != "" {
		b.WriteString(d.Code + ": ")
	}

	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(d.Suggestions, ", ") + "?)")
	}

	return b.String()
}

// Diagnostics collects findings by severity. The zero value is ready to use.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

func (d *Diagnostics) add(sev Severity, code, message, record, field string, suggestions []string) {
	diag := Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		Record:      record,
		Field:       field,
		Suggestions: suggestions,
	}

	switch sev {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError records a finding that prevents generation.
func (d *Diagnostics) AddError(code, message, record, field string, suggestions ...string) {
	d.add(SeverityError, code, message, record, field, suggestions)
}

// AddWarning records a finding generation can proceed past.
func (d *Diagnostics) AddWarning(code, message, record, field string, suggestions ...string) {
	d.add(SeverityWarning, code, message, record, field, suggestions)
}

// AddInfo records a note.
func (d *Diagnostics) AddInfo(code, message, record, field string) {
	d.add(SeverityInfo, code, message, record, field, nil)
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid is the opposite of HasErrors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Merge appends other's findings to d.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error joins the error diagnostics into one error, or returns nil.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// Codes lists the codes of ds in order.
func Codes(ds []Diagnostic) []string {
	var out []string
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}
