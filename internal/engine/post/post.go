package post

import "fmt"

// Post is the root of the document model: an ordered list of sections.
type Post struct {
	sections []Section
}

// New creates a post owning the given sections.
// Sections already attached to another post cause a panic; use Builder for
// error-returning construction.
func New(sections ...Section) *Post {
	p := &Post{}
	for _, s := range sections {
		if err := p.Append(s); err != nil {
			panic(err)
		}
	}
	return p
}

// Append adds a section to the end of the post.
func (p *Post) Append(s Section) error {
	if s == nil {
		return fmt.Errorf("append: nil section")
	}
	base := s.base()
	if base.post != nil {
		return fmt.Errorf("append section %s: %w", s.ID(), ErrAlreadyAttached)
	}
	base.post = p
	p.sections = append(p.sections, s)
	return nil
}

// Sections returns the sections in document order.
// The returned slice must not be modified.
func (p *Post) Sections() []Section {
	return p.sections
}

// Len returns the number of sections.
func (p *Post) Len() int {
	return len(p.sections)
}

// IsBlank returns true if the post has no sections.
func (p *Post) IsBlank() bool {
	return len(p.sections) == 0
}

// Head returns the first section, or nil for an empty post.
func (p *Post) Head() Section {
	if len(p.sections) == 0 {
		return nil
	}
	return p.sections[0]
}

// Tail returns the last section, or nil for an empty post.
func (p *Post) Tail() Section {
	if len(p.sections) == 0 {
		return nil
	}
	return p.sections[len(p.sections)-1]
}

// SectionAt returns the i-th section, or nil when out of range.
func (p *Post) SectionAt(i int) Section {
	if i < 0 || i >= len(p.sections) {
		return nil
	}
	return p.sections[i]
}

// IndexOf returns the document index of s, or -1 if s is not in the post.
func (p *Post) IndexOf(s Section) int {
	for i, candidate := range p.sections {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Next returns the section after s, or nil.
func (p *Post) Next(s Section) Section {
	i := p.IndexOf(s)
	if i < 0 {
		return nil
	}
	return p.SectionAt(i + 1)
}

// Prev returns the section before s, or nil.
func (p *Post) Prev(s Section) Section {
	i := p.IndexOf(s)
	if i < 0 {
		return nil
	}
	return p.SectionAt(i - 1)
}

// HeadPosition returns the head position of the first section.
func (p *Post) HeadPosition() (Position, error) {
	head := p.Head()
	if head == nil {
		return Position{}, ErrEmptyPost
	}
	return HeadPosition(head), nil
}

// TailPosition returns the tail position of the last section.
func (p *Post) TailPosition() (Position, error) {
	tail := p.Tail()
	if tail == nil {
		return Position{}, ErrEmptyPost
	}
	return TailPosition(tail), nil
}

// Range returns the range covering the whole post.
func (p *Post) Range() (Range, error) {
	head, err := p.HeadPosition()
	if err != nil {
		return Range{}, err
	}
	tail, err := p.TailPosition()
	if err != nil {
		return Range{}, err
	}
	return NewRange(head, tail), nil
}
