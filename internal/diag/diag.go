// Package diag is the boundary between semantic analysis and whatever
// renders diagnostics to the user. The resolver only ever talks to the Sink
// interface; Engine is the in-memory implementation used by the driver and
// by tests.
package diag

import (
	"fmt"

	"github.com/coral-lang/coral/internal/cst"
)

type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

var severityNames = [...]string{
	Error:   "error",
	Warning: "warning",
	Note:    "note",
}

func (s Severity) String() string { return severityNames[s] }

type Sink interface {
	Diag(severity Severity, message string, r cst.Range)
}

type Diagnostic struct {
	Severity Severity
	Message  string
	Range    cst.Range
}

func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message + " [" + d.Range.String() + "]"
}

// Engine collects diagnostics in emission order.
type Engine struct {
	diags []Diagnostic
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Diag(severity Severity, message string, r cst.Range) {
	e.diags = append(e.diags, Diagnostic{Severity: severity, Message: message, Range: r})
}

func (e *Engine) Diagnostics() []Diagnostic {
	return e.diags
}

func (e *Engine) HasErrors() bool {
	for _, d := range e.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of Error-severity diagnostics collected.
func (e *Engine) ErrorCount() int {
	n := 0
	for _, d := range e.diags {
		if d.Severity == Error {
			n++
		}
	}
	return n
}

// Message templates. Every diagnostic the resolver emits goes through one of
// these so tests can match on exact text.

func NotDeclared(name string) string {
	return fmt.Sprintf("'%s' was not declared in this scope", name)
}

func CircularDepend(name string) string {
	return fmt.Sprintf("circular dependency detected while resolving '%s'", name)
}

func DuplicateQual(qual string) string {
	return fmt.Sprintf("duplicate qualifier '%s'", qual)
}

func Redefinition(name string) string {
	return fmt.Sprintf("redefinition of '%s'", name)
}

func Redeclaration(name string) string {
	return fmt.Sprintf("redeclaration of '%s'", name)
}
