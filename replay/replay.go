// Package replay implements the deterministic execution engine. Every
// nondeterministic primitive a workflow touches routes through a Context,
// which either records the outcome as a marker or replays the recorded
// marker, so re-executing the same code against the same history yields
// bit-identical results.
package replay

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.jetify.com/typeid/v2"

	"github.com/xraph/tether"
)

// Marker kinds. Part of the history format; never renamed.
const (
	KindVersion    = "version"
	KindSideEffect = "side-effect"
	KindMutable    = "mutable"
	KindNewID      = "new-id"
	KindRandom     = "random"
	KindSleep      = "sleep"
)

// DefaultVersion is the version reported for code paths that predate any
// recorded version marker.
const DefaultVersion int32 = -1

// Marker is one recorded nondeterministic outcome. Markers carry their own
// CallIndex because mutable-side-effect compaction leaves gaps in the
// sequence.
type Marker struct {
	CallIndex int    `json:"i"`
	Kind      string `json:"k"`
	ID        string `json:"id,omitempty"`
	Value     []byte `json:"v,omitempty"`
}

// EncodeHistory serializes a marker log for transport.
func EncodeHistory(markers []Marker) ([]byte, error) {
	return json.Marshal(markers)
}

// DecodeHistory deserializes a marker log. A nil or empty payload is an
// empty history.
func DecodeHistory(data []byte) ([]Marker, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var markers []Marker
	if err := json.Unmarshal(data, &markers); err != nil {
		return nil, tether.NewProtocolError("decode history: %v", err)
	}
	return markers, nil
}

// Context is the deterministic execution context for one workflow
// invocation. It is owned by the invocation goroutine; callers needing
// cross-goroutine access synchronize externally (the context registry's
// per-context mutex).
type Context struct {
	markers   []Marker
	replayLen int
	pos       int
	callIndex int

	versions map[string]int32
	mutables map[string][]byte

	lastResult []byte
}

// NewContext builds a context over a recorded history. A nil history means
// a fresh execution. An instance started with no history reports
// IsReplaying false even when it is logically a later attempt; that is a
// service contract, not a bug.
func NewContext(history []Marker, lastResult []byte) *Context {
	return &Context{
		markers:    append([]Marker(nil), history...),
		replayLen:  len(history),
		versions:   make(map[string]int32),
		mutables:   make(map[string][]byte),
		lastResult: lastResult,
	}
}

// IsReplaying reports whether the next primitive call will be served from
// recorded history.
func (c *Context) IsReplaying() bool { return c.pos < c.replayLen }

// CallIndex returns the index the next primitive call will occupy.
func (c *Context) CallIndex() int { return c.callIndex }

// Markers returns the full marker log: consumed history plus markers
// recorded this attempt. The returned slice is shared; callers must not
// mutate it.
func (c *Context) Markers() []Marker { return c.markers }

// Drained reports whether all recorded history has been consumed. Leftover
// markers when the workflow function returns mean the code path diverged.
func (c *Context) Drained() bool { return c.pos >= c.replayLen }

// LastCompletionResult returns the previous completed run's result, or nil.
func (c *Context) LastCompletionResult() []byte { return c.lastResult }

// HasLastCompletionResult reports whether a previous run left a result.
func (c *Context) HasLastCompletionResult() bool { return c.lastResult != nil }

// next runs one sequential primitive: replays the marker at the current
// position or records a freshly produced value.
func (c *Context) next(kind, id string, produce func() ([]byte, error)) ([]byte, error) {
	if c.IsReplaying() {
		m := c.markers[c.pos]
		if m.Kind != kind || m.ID != id {
			return nil, &tether.NonDeterminismError{
				CallIndex: c.callIndex,
				Expected:  markerName(m.Kind, m.ID),
				Got:       markerName(kind, id),
			}
		}
		c.pos++
		c.callIndex++
		return m.Value, nil
	}

	value, err := produce()
	if err != nil {
		return nil, err
	}
	c.markers = append(c.markers, Marker{
		CallIndex: c.callIndex,
		Kind:      kind,
		ID:        id,
		Value:     value,
	})
	c.callIndex++
	return value, nil
}

func markerName(kind, id string) string {
	if id == "" {
		return kind
	}
	return kind + ":" + id
}

// SideEffect runs producer exactly once per execution and returns its
// recorded value on every replay.
func (c *Context) SideEffect(producer func() ([]byte, error)) ([]byte, error) {
	return c.next(KindSideEffect, "", producer)
}

// MutableSideEffect re-evaluates producer on every recording-mode call but
// appends a marker only when the produced value differs from the last
// recorded value for id. Compacted calls advance CallIndex without a
// marker.
func (c *Context) MutableSideEffect(id string, producer func() ([]byte, error)) ([]byte, error) {
	if c.IsReplaying() {
		m := c.markers[c.pos]
		if m.Kind == KindMutable && m.ID == id && m.CallIndex == c.callIndex {
			c.pos++
			c.callIndex++
			c.mutables[id] = m.Value
			return m.Value, nil
		}
		// The marker at the cursor belongs to a later call: this call was
		// compacted and the last recorded value for the id still stands.
		if v, ok := c.mutables[id]; ok {
			c.callIndex++
			return v, nil
		}
		return nil, &tether.NonDeterminismError{
			CallIndex: c.callIndex,
			Expected:  markerName(m.Kind, m.ID),
			Got:       markerName(KindMutable, id),
		}
	}

	value, err := producer()
	if err != nil {
		return nil, err
	}
	if prev, ok := c.mutables[id]; ok && bytes.Equal(prev, value) {
		c.callIndex++
		return value, nil
	}
	c.markers = append(c.markers, Marker{
		CallIndex: c.callIndex,
		Kind:      KindMutable,
		ID:        id,
		Value:     value,
	})
	c.mutables[id] = value
	c.callIndex++
	return value, nil
}

// GetVersion evaluates a version gate. The first encounter for changeID in
// an execution records (or replays) a version marker; later encounters
// return the cached value with no new marker and no CallIndex advance.
func (c *Context) GetVersion(changeID string, minSupported, maxSupported int32) (int32, error) {
	if v, ok := c.versions[changeID]; ok {
		return v, nil
	}

	// A gate encountered during replay with no matching marker at the
	// cursor predates this history: the code path ran before the gate
	// existed, so it reports DefaultVersion. No marker is consumed and
	// CallIndex does not advance, mirroring the cached path.
	if c.IsReplaying() {
		if m := c.markers[c.pos]; m.Kind != KindVersion || m.ID != changeID {
			if minSupported > DefaultVersion {
				return 0, fmt.Errorf("tether: version %d for change %q outside supported range [%d, %d]",
					DefaultVersion, changeID, minSupported, maxSupported)
			}
			c.versions[changeID] = DefaultVersion
			return DefaultVersion, nil
		}
	}

	raw, err := c.next(KindVersion, changeID, func() ([]byte, error) {
		return []byte(strconv.FormatInt(int64(maxSupported), 10)), nil
	})
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(string(raw), 10, 32)
	if err != nil {
		return 0, tether.NewProtocolError("version marker for %q: %v", changeID, err)
	}
	version := int32(n)
	if version != DefaultVersion && (version < minSupported || version > maxSupported) {
		return 0, fmt.Errorf("tether: version %d for change %q outside supported range [%d, %d]",
			version, changeID, minSupported, maxSupported)
	}
	c.versions[changeID] = version
	return version, nil
}

// NewID returns a deterministically replayable unique identifier.
func (c *Context) NewID(prefix string) (string, error) {
	raw, err := c.next(KindNewID, "", func() ([]byte, error) {
		tid, gerr := typeid.Generate(prefix)
		if gerr != nil {
			return nil, fmt.Errorf("generate id: %w", gerr)
		}
		return []byte(tid.String()), nil
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Random returns a deterministically replayable random int64.
func (c *Context) Random() (int64, error) {
	raw, err := c.next(KindRandom, "", func() ([]byte, error) {
		var buf [8]byte
		if _, rerr := rand.Read(buf[:]); rerr != nil {
			return nil, rerr
		}
		return buf[:], nil
	})
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, tether.NewProtocolError("random marker has %d bytes", len(raw))
	}
	return int64(binary.LittleEndian.Uint64(raw)), nil
}

// RandomBytes returns n deterministically replayable random bytes.
func (c *Context) RandomBytes(n int) ([]byte, error) {
	return c.next(KindRandom, "", func() ([]byte, error) {
		buf := make([]byte, n)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		return buf, nil
	})
}

// Sleep records a durable-sleep marker. The returned wait flag is true when
// the caller must perform the real correlated sleep call; during replay the
// sleep already happened and the flag is false.
func (c *Context) Sleep(d time.Duration) (wait bool, err error) {
	replaying := c.IsReplaying()
	_, err = c.next(KindSleep, "", func() ([]byte, error) {
		return []byte(strconv.FormatInt(int64(d), 10)), nil
	})
	if err != nil {
		return false, err
	}
	return !replaying, nil
}
