package plugin

import "errors"

// Plugin errors.
var (
	// ErrUnknownCard is returned when no card plugin is registered under a name.
	ErrUnknownCard = errors.New("unknown card")

	// ErrUnknownAtom is returned when no atom plugin is registered under a name.
	ErrUnknownAtom = errors.New("unknown atom")

	// ErrInvalidPlugin is returned when plugin validation fails.
	ErrInvalidPlugin = errors.New("invalid plugin")

	// ErrAlreadyRegistered is returned when a name is registered twice for the same kind.
	ErrAlreadyRegistered = errors.New("plugin already registered")

	// ErrNotEditable is returned when a card without an edit hook is asked to edit.
	ErrNotEditable = errors.New("card has no edit hook")
)
