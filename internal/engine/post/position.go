package post

import "fmt"

// Position identifies a logical location in a post: a section and an
// offset within it. Position is an immutable value type.
//
// Positions are equal when they name the same section and offset. They are
// ordered by the document order of their sections, then by offset.
type Position struct {
	Section Section
	Offset  int
}

// NewPosition creates a position, failing with ErrInvalidOffset when offset
// is outside [0, section.Length()].
func NewPosition(section Section, offset int) (Position, error) {
	if section == nil {
		return Position{}, fmt.Errorf("%w: nil section", ErrInvalidOffset)
	}
	if offset < 0 || offset > section.Length() {
		return Position{}, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidOffset, offset, section.Length())
	}
	return Position{Section: section, Offset: offset}, nil
}

// HeadPosition returns the position at offset 0 of section.
func HeadPosition(section Section) Position {
	return Position{Section: section, Offset: 0}
}

// TailPosition returns the position at the end of section.
func TailPosition(section Section) Position {
	return Position{Section: section, Offset: section.Length()}
}

// IsZero returns true if the position has no section.
func (p Position) IsZero() bool {
	return p.Section == nil
}

// IsHead returns true if the position is at its section's head.
func (p Position) IsHead() bool {
	return p.Section != nil && p.Offset == 0
}

// IsTail returns true if the position is at its section's tail.
func (p Position) IsTail() bool {
	return p.Section != nil && p.Offset == p.Section.Length()
}

// Equal returns true if both positions name the same section and offset.
func (p Position) Equal(other Position) bool {
	return p.Section == other.Section && p.Offset == other.Offset
}

// Compare returns -1 if p precedes other in document order, 1 if it
// follows, and 0 if they are equal. Sections outside any post sort first.
func (p Position) Compare(other Position) int {
	if p.Section != other.Section {
		a, b := sectionIndex(p.Section), sectionIndex(other.Section)
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	if p.Offset < other.Offset {
		return -1
	}
	if p.Offset > other.Offset {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	if p.Section == nil {
		return "Position(nil)"
	}
	return fmt.Sprintf("Position(%d:%d)", sectionIndex(p.Section), p.Offset)
}

func sectionIndex(s Section) int {
	if s == nil || s.Post() == nil {
		return -1
	}
	return s.Post().IndexOf(s)
}
