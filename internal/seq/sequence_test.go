package seq

import (
	"errors"
	"slices"
	"testing"
)

func TestSequenceInsertShiftsLaterElements(t *testing.T) {
	s := New("a", "c")

	if err := s.InsertAt(1, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.InsertAt(3, "d"); err != nil {
		t.Fatalf("insert at Len() should append: %v", err)
	}
	if err := s.InsertAt(0, "start"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"start", "a", "b", "c", "d"}
	if got := s.Values(); !slices.Equal(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	if s.IndexOf("c") != 3 {
		t.Fatalf("IndexOf(c) = %d, want 3", s.IndexOf("c"))
	}
}

func TestSequenceRemoveAndSet(t *testing.T) {
	s := New(1, 2, 3, 4)

	removed, err := s.RemoveAt(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}

	prev, err := s.Set(2, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != 4 {
		t.Fatalf("previous = %d, want 4", prev)
	}

	if got, want := s.Values(), []int{1, 3, 40}; !slices.Equal(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	if s.Contains(2) {
		t.Fatalf("removed element still reported as contained")
	}
	if s.IndexOf(2) != -1 {
		t.Fatalf("IndexOf(removed) = %d, want -1", s.IndexOf(2))
	}
}

func TestSequenceBounds(t *testing.T) {
	s := New(10, 20)

	checks := []struct {
		name string
		call func() error
	}{
		{"get negative", func() error { _, err := s.Get(-1); return err }},
		{"get at len", func() error { _, err := s.Get(2); return err }},
		{"set at len", func() error { _, err := s.Set(2, 0); return err }},
		{"remove at len", func() error { _, err := s.RemoveAt(2); return err }},
		{"remove negative", func() error { _, err := s.RemoveAt(-1); return err }},
		{"insert past len", func() error { return s.InsertAt(3, 0) }},
		{"insert negative", func() error { return s.InsertAt(-1, 0) }},
	}

	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			err := c.call()
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
			}
			var ie *IndexError
			if !errors.As(err, &ie) || ie.Len != 2 {
				t.Fatalf("expected *IndexError with Len=2, got %#v", err)
			}
		})
	}

	if got, want := s.Values(), []int{10, 20}; !slices.Equal(got, want) {
		t.Fatalf("failed calls mutated sequence: %v", got)
	}
}

func TestSequenceZeroValueAndClone(t *testing.T) {
	var s Sequence[string]
	if !s.IsEmpty() || s.Len() != 0 {
		t.Fatalf("zero value should be empty")
	}
	s.Append("x")

	c := s.Clone()
	c.Append("y")
	if s.Len() != 1 || c.Len() != 2 {
		t.Fatalf("clone shares storage: len(s)=%d len(c)=%d", s.Len(), c.Len())
	}

	var seen []string
	for i, v := range c.All() {
		if i == 1 {
			seen = append(seen, v)
			break
		}
		seen = append(seen, v)
	}
	if !slices.Equal(seen, []string{"x", "y"}) {
		t.Fatalf("All() yielded %v", seen)
	}
}

func TestNewCopiesInput(t *testing.T) {
	in := []int{1, 2}
	s := New(in...)
	in[0] = 99

	if v, _ := s.Get(0); v != 1 {
		t.Fatalf("sequence aliases caller slice: got %d", v)
	}
}
