package lua

import "errors"

// Errors for Lua state and script plugin operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a hook runs past its deadline.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNoPluginTable is returned when a script does not define the plugin table.
	ErrNoPluginTable = errors.New("script does not define a plugin table")

	// ErrBadRenderResult is returned when a hook returns something that is not a node description.
	ErrBadRenderResult = errors.New("render hook returned an invalid node")
)
