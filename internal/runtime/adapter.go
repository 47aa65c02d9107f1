// Package runtime is the thin façade an embedding runtime calls at each I/O
// edge: validateInbound and validateOutbound, wiring codec + protocol +
// validator behind the validator's frame-size check. It is the
// one internal package allowed to depend on internal/obslog.
package runtime

import (
	"sync"

	"go.uber.org/zap"

	"github.com/IsraelAraujo70/acpcore/internal/domain"
	"github.com/IsraelAraujo70/acpcore/internal/obslog"
	"github.com/IsraelAraujo70/acpcore/internal/protocol"
	"github.com/IsraelAraujo70/acpcore/internal/validator"
)

// Config configures one Adapter. Logger is optional — a nil Logger
// disables logging entirely, never logic.
type Config struct {
	Profile          *validator.RuntimeProfile
	Logger           *obslog.Logger
	StopOnFirstError bool
}

// Frame is one message observed at an I/O edge, paired with its raw byte
// length (0 if unknown) for the Transport lane's size check.
type Frame struct {
	RawByteLength int
	Message       domain.Message
}

// Outcome is what validateInbound/validateOutbound return.
type Outcome struct {
	Trace      []domain.Message
	Findings   []validator.ValidationFinding
	Phase      protocol.Phase
	Message    domain.Message
	// Block is set by ValidateOutbound when the message would violate a
	// gating rule; the adapter recommends the embedder not send it. It is
	// always false for ValidateInbound (inbound frames already happened).
	Block bool
}

// Adapter owns one connection's accumulated trace and Phase, threading
// them through successive validateInbound/validateOutbound calls so
// validation can run online, one message at a time. It is safe for
// concurrent use; the embedder is still
// responsible for presenting frames in true wire order.
type Adapter struct {
	mu               sync.Mutex
	connectionID     string
	spec             protocol.Spec
	profile          *validator.RuntimeProfile
	logger           *obslog.Logger
	stopOnFirstError bool
	messages         []validator.InputMessage
	phase            protocol.Phase
}

// New creates an Adapter bound to spec (normally protocol.ACP).
func New(connectionID string, spec protocol.Spec, cfg Config) *Adapter {
	profile := cfg.Profile
	if profile == nil {
		p := validator.DefaultProfile()
		profile = &p
	}
	return &Adapter{
		connectionID:     connectionID,
		spec:             spec,
		profile:          profile,
		logger:           cfg.Logger,
		stopOnFirstError: cfg.StopOnFirstError,
		phase:            spec.Initial,
	}
}

// ValidateInbound validates a frame the embedder received, committing it
// to the connection's trace and Phase regardless of outcome — the frame
// already happened; findings report on what it means, they don't undo it.
func (a *Adapter) ValidateInbound(frame Frame) Outcome {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.messages = append(a.messages, validator.InputMessage{Message: frame.Message, RawByteLength: frame.RawByteLength})
	result := validator.Run(a.connectionID, a.spec, a.messages, a.stopOnFirstError, a.profile)
	a.phase = result.FinalPhase

	a.logFindings(result.Findings)

	return Outcome{Trace: result.Trace, Findings: result.Findings, Phase: a.phase, Message: frame.Message}
}

// ValidateOutbound validates a frame the embedder is about to send. If it
// would violate a gating rule, Phase and the trace are left untouched and
// Block is set true; the caller should not actually send the frame.
func (a *Adapter) ValidateOutbound(frame Frame) Outcome {
	a.mu.Lock()
	defer a.mu.Unlock()

	nextPhase, err := a.spec.Step(a.phase, frame.Message)
	if err != nil {
		finding := validator.FindingForProtocolError(err, frame.Message, len(a.messages))
		a.logFindings([]validator.ValidationFinding{finding})
		return Outcome{Findings: []validator.ValidationFinding{finding}, Phase: a.phase, Message: frame.Message, Block: true}
	}

	a.messages = append(a.messages, validator.InputMessage{Message: frame.Message, RawByteLength: frame.RawByteLength})
	result := validator.Run(a.connectionID, a.spec, a.messages, a.stopOnFirstError, a.profile)
	a.phase = nextPhase

	a.logFindings(result.Findings)

	return Outcome{Trace: result.Trace, Findings: result.Findings, Phase: a.phase, Message: frame.Message}
}

// Phase returns the connection's current Phase.
func (a *Adapter) Phase() protocol.Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

func (a *Adapter) logFindings(findings []validator.ValidationFinding) {
	if a.logger == nil {
		return
	}
	for _, f := range findings {
		fields := []zap.Field{
			zap.String("connection", a.connectionID),
			zap.String("lane", f.Lane.String()),
			zap.String("code", f.Code),
			zap.String("subject", f.Subject.String()),
			zap.Int("traceIndex", f.TraceIndex),
		}
		switch f.Severity {
		case validator.Error:
			a.logger.Error("validation finding", fields...)
		case validator.Warning:
			a.logger.Warn("validation finding", fields...)
		default:
			a.logger.Info("validation finding", fields...)
		}
	}
}
