package hxwire

import "errors"

// Sentinel errors for engine lifecycle operations. Failures inside a firing
// are never surfaced as errors - they degrade to inline rendering or silent
// no-ops - so these cover only misuse of the engine itself.
var (
	ErrNoDocument   = errors.New("hxwire: engine has no document")
	ErrAlreadyBound = errors.New("hxwire: document already bound, re-scanning is not supported")
	ErrClosed       = errors.New("hxwire: engine closed")
)
