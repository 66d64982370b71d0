package scenario

import "errors"

// ErrInvalidScenario is returned for a scenario that cannot be built.
var ErrInvalidScenario = errors.New("invalid scenario")

// ErrNoNode is returned when a probe path does not name a rendered node.
var ErrNoNode = errors.New("path does not name a node")
