package post

import (
	"errors"
	"testing"
)

func buildPost(t *testing.T, fn func(b *Builder) *Post) *Post {
	t.Helper()
	p, err := Build(fn)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return p
}

func TestMarkupSectionLength(t *testing.T) {
	p := buildPost(t, func(b *Builder) *Post {
		return b.Post(b.MarkupSection("p",
			b.Marker("aa"), b.Atom("my-atom", "my-atom", nil), b.Marker("cc", "b")))
	})
	s := p.Head().(*MarkupSection)

	if got := s.Length(); got != 5 {
		t.Errorf("expected length 5 (atom counts 1), got %d", got)
	}
	if got := s.OffsetOfMarker(s.MarkerAt(1)); got != 2 {
		t.Errorf("expected atom at offset 2, got %d", got)
	}
	if got := s.OffsetOfMarker(s.MarkerAt(2)); got != 3 {
		t.Errorf("expected last marker at offset 3, got %d", got)
	}
	other, _ := NewMarker("x")
	if got := s.OffsetOfMarker(other); got != -1 {
		t.Errorf("foreign marker should report -1, got %d", got)
	}
	if s.MarkerAt(1).Section() != s {
		t.Error("marker should point back to its section")
	}
}

func TestBlankSection(t *testing.T) {
	s, err := NewMarkupSection("P")
	if err != nil {
		t.Fatalf("NewMarkupSection failed: %v", err)
	}
	if !s.IsBlank() || s.Length() != 0 {
		t.Error("section without markers should be blank")
	}
	if s.TagName() != "p" {
		t.Errorf("tag name should be lower-cased, got %q", s.TagName())
	}
	if !s.HeadPosition().Equal(s.TailPosition()) {
		t.Error("blank section head and tail should be equal")
	}
}

func TestCardSectionLength(t *testing.T) {
	c := NewCardSection("my-card", nil)
	if c.Length() != 1 {
		t.Errorf("card length should be 1, got %d", c.Length())
	}
	if c.TailPosition().Offset != 1 || c.HeadPosition().Offset != 0 {
		t.Error("card head/tail should be offsets 0 and 1")
	}
	if !IsCard(c) {
		t.Error("IsCard should be true for card sections")
	}
}

func TestBuilderErrors(t *testing.T) {
	_, err := Build(func(b *Builder) *Post {
		return b.Post(b.MarkupSection("div", b.Marker("x")))
	})
	if !errors.Is(err, ErrInvalidTagName) {
		t.Errorf("expected ErrInvalidTagName, got %v", err)
	}

	_, err = Build(func(b *Builder) *Post {
		return b.Post(b.MarkupSection("p", b.Marker("x", "blink")))
	})
	if !errors.Is(err, ErrInvalidMarkup) {
		t.Errorf("expected ErrInvalidMarkup, got %v", err)
	}
}

func TestPostNavigation(t *testing.T) {
	p := buildPost(t, func(b *Builder) *Post {
		return b.Post(b.MarkupSection("p", b.Marker("abc")), b.CardSection("my-card", nil), b.MarkupSection("h2"))
	})
	first, card, last := p.SectionAt(0), p.SectionAt(1), p.SectionAt(2)

	if p.Head() != first || p.Tail() != last {
		t.Error("head/tail mismatch")
	}
	if p.Next(first) != card || p.Prev(last) != card {
		t.Error("next/prev mismatch")
	}
	if p.Prev(first) != nil || p.Next(last) != nil {
		t.Error("no neighbours beyond the ends")
	}
	if first.Post() != p {
		t.Error("section should point back to the post")
	}
	if err := p.Append(card); !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}

	r, err := p.Range()
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if !r.Head.Equal(first.HeadPosition()) || !r.Tail.Equal(last.TailPosition()) {
		t.Errorf("unexpected post range %s", r)
	}
}

func TestEmptyPost(t *testing.T) {
	p := New()
	if !p.IsBlank() || p.Head() != nil {
		t.Error("new post should be blank")
	}
	if _, err := p.HeadPosition(); !errors.Is(err, ErrEmptyPost) {
		t.Errorf("expected ErrEmptyPost, got %v", err)
	}
}
