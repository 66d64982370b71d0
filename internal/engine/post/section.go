package post

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SectionKind identifies the variant of a section.
type SectionKind int

const (
	// KindMarkup is a block of text markers.
	KindMarkup SectionKind = iota
	// KindCard is an opaque block rendered by a card plugin.
	KindCard
)

// String returns the section kind name.
func (k SectionKind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindCard:
		return "card"
	default:
		return "unknown"
	}
}

// Section is a top-level block of a post.
// Implementations are *MarkupSection and *CardSection.
type Section interface {
	// ID returns the section's identity.
	ID() uuid.UUID
	// Kind returns the section variant.
	Kind() SectionKind
	// Length returns the number of addressable offset steps.
	Length() int
	// Post returns the owning post, or nil when detached.
	Post() *Post
	// HeadPosition returns the position at offset 0.
	HeadPosition() Position
	// TailPosition returns the position at offset Length().
	TailPosition() Position

	base() *sectionBase
}

type sectionBase struct {
	id   uuid.UUID
	post *Post
}

func newSectionBase() sectionBase {
	return sectionBase{id: uuid.New()}
}

// ID returns the section's identity.
func (b *sectionBase) ID() uuid.UUID {
	return b.id
}

// Post returns the owning post, or nil when detached.
func (b *sectionBase) Post() *Post {
	return b.post
}

func (b *sectionBase) base() *sectionBase {
	return b
}

// Tag names accepted for markup sections.
var markupSectionTags = map[string]bool{
	"p":          true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"blockquote": true,
	"aside":      true,
	"pull-quote": true,
}

// IsValidSectionTag reports whether tag may be used for a markup section.
func IsValidSectionTag(tag string) bool {
	return markupSectionTags[strings.ToLower(tag)]
}

// MarkupSection is a block of text made of markers.
type MarkupSection struct {
	sectionBase
	tagName string
	markers []*Marker
}

// NewMarkupSection creates a markup section with the given markers.
func NewMarkupSection(tagName string, markers ...*Marker) (*MarkupSection, error) {
	tag := strings.ToLower(tagName)
	if !markupSectionTags[tag] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTagName, tagName)
	}
	s := &MarkupSection{sectionBase: newSectionBase(), tagName: tag}
	for _, m := range markers {
		if err := s.Append(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Kind returns KindMarkup.
func (s *MarkupSection) Kind() SectionKind {
	return KindMarkup
}

// TagName returns the lower-case tag name.
func (s *MarkupSection) TagName() string {
	return s.tagName
}

// Append adds a marker to the end of the section.
func (s *MarkupSection) Append(m *Marker) error {
	if m == nil {
		return fmt.Errorf("append: nil marker")
	}
	if m.section != nil {
		return fmt.Errorf("append marker %s: %w", m.id, ErrAlreadyAttached)
	}
	m.section = s
	s.markers = append(s.markers, m)
	return nil
}

// Markers returns the markers in order.
// The returned slice must not be modified.
func (s *MarkupSection) Markers() []*Marker {
	return s.markers
}

// MarkerAt returns the i-th marker, or nil when out of range.
func (s *MarkupSection) MarkerAt(i int) *Marker {
	if i < 0 || i >= len(s.markers) {
		return nil
	}
	return s.markers[i]
}

// Length returns the sum of the markers' lengths.
func (s *MarkupSection) Length() int {
	total := 0
	for _, m := range s.markers {
		total += m.Length()
	}
	return total
}

// IsBlank returns true if the section has no addressable content.
func (s *MarkupSection) IsBlank() bool {
	return s.Length() == 0
}

// OffsetOfMarker returns the section offset where m starts, or -1 if m is
// not in this section.
func (s *MarkupSection) OffsetOfMarker(m *Marker) int {
	offset := 0
	for _, candidate := range s.markers {
		if candidate == m {
			return offset
		}
		offset += candidate.Length()
	}
	return -1
}

// Text returns the concatenated text of the section; atoms contribute
// their value.
func (s *MarkupSection) Text() string {
	var b strings.Builder
	for _, m := range s.markers {
		b.WriteString(m.Value)
	}
	return b.String()
}

// HeadPosition returns the position at offset 0.
func (s *MarkupSection) HeadPosition() Position {
	return HeadPosition(s)
}

// TailPosition returns the position after the last marker.
func (s *MarkupSection) TailPosition() Position {
	return TailPosition(s)
}

// String returns a short description of the section.
func (s *MarkupSection) String() string {
	return fmt.Sprintf("MarkupSection<%s>(%q)", s.tagName, s.Text())
}

// CardSection is an opaque block rendered by a card plugin.
// It always has length 1.
type CardSection struct {
	sectionBase
	name    string
	payload map[string]any
}

// NewCardSection creates a card section for the named card.
func NewCardSection(name string, payload map[string]any) *CardSection {
	if payload == nil {
		payload = map[string]any{}
	}
	return &CardSection{sectionBase: newSectionBase(), name: name, payload: payload}
}

// Kind returns KindCard.
func (s *CardSection) Kind() SectionKind {
	return KindCard
}

// Name returns the card name.
func (s *CardSection) Name() string {
	return s.name
}

// Payload returns the card payload.
func (s *CardSection) Payload() map[string]any {
	return s.payload
}

// Length returns 1.
func (s *CardSection) Length() int {
	return 1
}

// HeadPosition returns the position on the card's start.
func (s *CardSection) HeadPosition() Position {
	return HeadPosition(s)
}

// TailPosition returns the position on the card's end.
func (s *CardSection) TailPosition() Position {
	return TailPosition(s)
}

// String returns a short description of the section.
func (s *CardSection) String() string {
	return fmt.Sprintf("CardSection(%s)", s.name)
}

// IsCard reports whether s is a card section.
func IsCard(s Section) bool {
	return s != nil && s.Kind() == KindCard
}
