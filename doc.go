// Package tether is a client-side runtime for typed workflow and activity
// contracts whose execution is orchestrated by an external coordination
// service reached through a local bridging process.
//
// Tether is a library, not a service. Application code declares workflow and
// activity contracts as plain Go values, builds validated stubs from them,
// and the runtime handles the rest: a self-describing bidirectional message
// protocol with request/reply correlation across the process boundary, a
// deterministic-replay execution model that reproduces nondeterministic
// outcomes bit-for-bit when workflow code is re-executed from recorded
// history, and a contract-to-stub translator wired into the protocol layer.
//
// # Quick Start
//
//	c, err := client.Dial(ctx, "tcp://127.0.0.1:5000",
//	    client.WithLogger(logger),
//	)
//	defer c.Close()
//
//	s, err := c.BuildStub(orderContract)
//	exec, err := s.Execute(ctx, "default", "Run", args, nil)
//
// # Architecture
//
// Tether is layered bottom-up: wire (message envelope and codecs), channel
// (duplex byte-frame transports), dispatch (request/reply correlator),
// registry (live context handles), replay (deterministic execution
// context), stub (contract validation and call surfaces), with client and
// worker as the two user-facing surfaces.
package tether
