package tether

import (
	"errors"
	"fmt"
)

var (
	// Lifecycle errors.
	ErrClosed       = errors.New("tether: connection closed")
	ErrNotConnected = errors.New("tether: not connected")

	// Argument errors.
	ErrNilClient   = errors.New("tether: nil client handle")
	ErrNilContract = errors.New("tether: nil contract")

	// Call errors.
	ErrCallTimeout = errors.New("tether: call timed out")
)

// RemoteErrorKind distinguishes remote failures at the API boundary.
type RemoteErrorKind string

const (
	RemoteCustom        RemoteErrorKind = "custom"
	RemoteAlreadyExists RemoteErrorKind = "already-exists"
	RemoteNotFound      RemoteErrorKind = "not-found"
	RemoteBusy          RemoteErrorKind = "busy"
	RemoteCancelled     RemoteErrorKind = "cancelled"
	RemoteTimeout       RemoteErrorKind = "timeout"
)

// ProtocolError reports a malformed frame, an unknown message type, or a
// truncated payload. It is absorbed at the dispatch layer and never crashes
// the channel.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "tether: protocol: " + e.Reason
}

// NewProtocolError builds a ProtocolError with a formatted reason.
func NewProtocolError(format string, args ...any) *ProtocolError {
	return &ProtocolError{Reason: fmt.Sprintf(format, args...)}
}

// CorrelationError reports a reply for an unknown or already-fulfilled
// request ID. It is dropped as a non-fatal protocol anomaly: this can
// legitimately happen when a cancellation races a normal completion.
type CorrelationError struct {
	RequestID int64
	Reason    string
}

func (e *CorrelationError) Error() string {
	return fmt.Sprintf("tether: correlation: request %d: %s", e.RequestID, e.Reason)
}

// WorkflowDefinitionError reports a contract validation failure. It is
// fatal to stub construction and reported synchronously at build time.
type WorkflowDefinitionError struct {
	Contract string
	Reason   string
}

func (e *WorkflowDefinitionError) Error() string {
	return fmt.Sprintf("tether: definition: contract %q: %s", e.Contract, e.Reason)
}

// RemoteError is mapped from a Reply's error fields and carries the remote
// failure kind so callers can branch on it without parsing text.
type RemoteError struct {
	Kind    RemoteErrorKind
	Message string
	Details string
}

func (e *RemoteError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("tether: remote (%s): %s: %s", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("tether: remote (%s): %s", e.Kind, e.Message)
}

// Is reports kind equality so errors.Is(err, &RemoteError{Kind: k}) matches
// any remote error of that kind.
func (e *RemoteError) Is(target error) bool {
	var re *RemoteError
	if !errors.As(target, &re) {
		return false
	}
	return re.Kind == e.Kind && (re.Message == "" || re.Message == e.Message)
}

// NonDeterminismError reports that replayed workflow code diverged from its
// recorded history. The execution cannot safely continue and must be
// surfaced as a failed attempt.
type NonDeterminismError struct {
	CallIndex int
	Expected  string
	Got       string
}

func (e *NonDeterminismError) Error() string {
	return fmt.Sprintf("tether: non-determinism at call %d: recorded %q, replayed %q",
		e.CallIndex, e.Expected, e.Got)
}

// CancellationError is raised to a caller whose pending call was cancelled
// before a normal reply arrived.
type CancellationError struct {
	RequestID int64
}

func (e *CancellationError) Error() string {
	return fmt.Sprintf("tether: request %d cancelled", e.RequestID)
}
