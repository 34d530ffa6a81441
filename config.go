package tether

import "time"

// Config holds runtime configuration shared by the client and worker.
type Config struct {
	// CallTimeout is the default timeout for a correlated call. Zero means
	// wait indefinitely (bounded only by the caller's context).
	CallTimeout time.Duration

	// HandlerConcurrency caps how many pushed inbound requests execute
	// concurrently. Inbound replies are never subject to this cap.
	HandlerConcurrency int

	// MaxFrameSize rejects inbound frames larger than this many bytes.
	MaxFrameSize int

	// SendRate throttles outbound frames per second. Zero disables the
	// limiter.
	SendRate float64

	// SendBurst is the burst size for the outbound limiter.
	SendBurst int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CallTimeout:        30 * time.Second,
		HandlerConcurrency: 64,
		MaxFrameSize:       16 << 20,
		SendRate:           0,
		SendBurst:          1,
	}
}
