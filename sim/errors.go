package sim

import "errors"

// Errors returned by store and session commands.
var (
	// ErrRunning is returned by edit commands, parameter setters and
	// StartRun while a run is in progress.
	ErrRunning = errors.New("sim: not allowed while running")

	// ErrNotRunning is returned by Tick and EndRun outside of a run.
	ErrNotRunning = errors.New("sim: no run in progress")

	// ErrTooFewBodies is returned when a run is refused for lack of bodies.
	// The session stays in the editing state.
	ErrTooFewBodies = errors.New("sim: at least 2 bodies are needed to run")

	// ErrNoBody indicates an index outside the body collection.
	ErrNoBody = errors.New("sim: no body at index")

	ErrUnknownField = errors.New("sim: unknown field")
)
