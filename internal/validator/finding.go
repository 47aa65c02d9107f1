package validator

import "fmt"

// ValidationFinding is a structured observation the validator emits (spec
// §3.7). Findings are append-only: no finding is ever retracted once
// emitted, and re-folding the same trace must reproduce the same findings
// in the same order.
type ValidationFinding struct {
	Lane       Lane
	Severity   Severity
	Subject    Subject
	Code       string
	Message    string
	TraceIndex int

	// Failure is the underlying error this finding was derived from, if
	// any (e.g. a *protocol.ProtocolError or *codec.DecodeError). Not part
	// of the dedup key.
	Failure error
}

// DedupKey is the tuple used as the deduplication key:
// (lane, severity, code, subject, traceIndex). Two findings with equal
// DedupKey values are the same finding.
type DedupKey struct {
	Lane       Lane
	Severity   Severity
	Code       string
	Subject    string
	TraceIndex int
}

func (f ValidationFinding) Key() DedupKey {
	return DedupKey{
		Lane:       f.Lane,
		Severity:   f.Severity,
		Code:       f.Code,
		Subject:    f.Subject.String(),
		TraceIndex: f.TraceIndex,
	}
}

func (f ValidationFinding) String() string {
	if f.Message != "" {
		return fmt.Sprintf("[%s/%s] %s at %s (#%d): %s", f.Lane, f.Severity, f.Code, f.Subject, f.TraceIndex, f.Message)
	}
	return fmt.Sprintf("[%s/%s] %s at %s (#%d)", f.Lane, f.Severity, f.Code, f.Subject, f.TraceIndex)
}
