package post

import (
	"errors"
	"testing"
)

func twoSections(t *testing.T) (*Post, Section, Section) {
	t.Helper()
	p := buildPost(t, func(b *Builder) *Post {
		return b.Post(b.MarkupSection("p", b.Marker("abc")), b.MarkupSection("p", b.Marker("1234")))
	})
	return p, p.Head(), p.Tail()
}

func TestNewPosition(t *testing.T) {
	_, s, _ := twoSections(t)

	tests := []struct {
		offset  int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{3, false},
		{4, true},
	}
	for _, tt := range tests {
		_, err := NewPosition(s, tt.offset)
		if tt.wantErr && !errors.Is(err, ErrInvalidOffset) {
			t.Errorf("offset %d: expected ErrInvalidOffset, got %v", tt.offset, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("offset %d: unexpected error %v", tt.offset, err)
		}
	}

	if _, err := NewPosition(nil, 0); !errors.Is(err, ErrInvalidOffset) {
		t.Errorf("nil section: expected ErrInvalidOffset, got %v", err)
	}
}

func TestPositionEquality(t *testing.T) {
	_, s1, s2 := twoSections(t)

	a := Position{Section: s1, Offset: 1}
	b, _ := NewPosition(s1, 1)
	if !a.Equal(b) || a != b {
		t.Error("structurally equal positions should be equal")
	}
	if a.Equal(Position{Section: s2, Offset: 1}) {
		t.Error("positions in different sections should differ")
	}
	if !HeadPosition(s1).IsHead() || !TailPosition(s2).IsTail() {
		t.Error("head/tail helpers mismatch")
	}
	if TailPosition(s2).Offset != 4 {
		t.Errorf("tail offset should be section length, got %d", TailPosition(s2).Offset)
	}
}

func TestPositionCompare(t *testing.T) {
	_, s1, s2 := twoSections(t)

	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"same", Position{s1, 2}, Position{s1, 2}, 0},
		{"offset before", Position{s1, 1}, Position{s1, 2}, -1},
		{"offset after", Position{s1, 3}, Position{s1, 0}, 1},
		{"section order wins", Position{s1, 3}, Position{s2, 0}, -1},
		{"later section", Position{s2, 0}, Position{s1, 3}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if tt.want < 0 && !tt.a.Before(tt.b) {
				t.Error("Before should agree with Compare")
			}
			if tt.want > 0 && !tt.a.After(tt.b) {
				t.Error("After should agree with Compare")
			}
		})
	}
}

func TestRangeNormalized(t *testing.T) {
	_, s1, s2 := twoSections(t)
	head := HeadPosition(s1)
	tail := TailPosition(s2)

	forward := NewRange(head, tail)
	if forward.Direction() != DirectionForward {
		t.Errorf("expected forward, got %s", forward.Direction())
	}
	if !forward.Normalized().Equal(forward) {
		t.Error("forward range should normalize to itself")
	}

	backward := NewRange(tail, head)
	if backward.Direction() != DirectionBackward {
		t.Errorf("expected backward, got %s", backward.Direction())
	}
	n := backward.Normalized()
	if !n.Head.Equal(head) || !n.Tail.Equal(tail) {
		t.Errorf("normalized backward range = %s", n)
	}
}

func TestRangeCollapsed(t *testing.T) {
	_, s1, _ := twoSections(t)
	p := Position{Section: s1, Offset: 2}

	r := NewCollapsedRange(p)
	if !r.IsCollapsed() || r.Direction() != DirectionNone {
		t.Error("collapsed range should be collapsed with no direction")
	}
	if NewRange(p, Position{Section: s1, Offset: 3}).IsCollapsed() {
		t.Error("distinct endpoints are not collapsed")
	}
	if !(Range{}).IsZero() {
		t.Error("zero range should report IsZero")
	}
}
