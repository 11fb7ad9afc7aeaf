package navigation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/edulanding/internal/curriculum"
)

// ErrUnknownSection is returned when selecting an id outside the sequence.
var ErrUnknownSection = errors.New("unknown section")

// Navigator tracks the current position in a fixed, ordered section sequence.
// The current section is always a member of the sequence.
type Navigator struct {
	sequence []curriculum.SectionID
	index    map[curriculum.SectionID]int
	current  int
}

// New creates a Navigator positioned at the first entry of sequence.
func New(sequence []curriculum.SectionID) *Navigator {
	idx := make(map[curriculum.SectionID]int, len(sequence))
	for i, id := range sequence {
		if _, dup := idx[id]; !dup {
			idx[id] = i
		}
	}
	return &Navigator{
		sequence: slices.Clone(sequence),
		index:    idx,
	}
}

// Sequence returns the ordered section ids.
func (n *Navigator) Sequence() []curriculum.SectionID {
	return slices.Clone(n.sequence)
}

// Len returns the length of the sequence.
func (n *Navigator) Len() int {
	return len(n.sequence)
}

// Current returns the current section id, or "" for an empty sequence.
func (n *Navigator) Current() curriculum.SectionID {
	if len(n.sequence) == 0 {
		return ""
	}
	return n.sequence[n.current]
}

// Index returns the zero-based position of the current section.
func (n *Navigator) Index() int {
	return n.current
}

// IndexOf returns the position of id in the sequence, or -1.
func (n *Navigator) IndexOf(id curriculum.SectionID) int {
	i, ok := n.index[id]
	if !ok {
		return -1
	}
	return i
}

// Select makes id the current section. Ids outside the sequence are
// rejected and leave the state unchanged.
func (n *Navigator) Select(id curriculum.SectionID) error {
	i, ok := n.index[id]
	if !ok {
		return fmt.Errorf("select %q: %w", id, ErrUnknownSection)
	}
	n.current = i
	return nil
}

// Advance moves to the next section. It is a no-op on the last section and
// reports whether it moved.
func (n *Navigator) Advance() bool {
	if n.current+1 >= len(n.sequence) {
		return false
	}
	n.current++
	return true
}

// Retreat moves to the previous section. It is a no-op on the first section
// and reports whether it moved.
func (n *Navigator) Retreat() bool {
	if n.current <= 0 {
		return false
	}
	n.current--
	return true
}

// IsFirst reports whether the current section is the first one.
func (n *Navigator) IsFirst() bool {
	return n.current == 0
}

// IsLast reports whether the current section is the last one.
func (n *Navigator) IsLast() bool {
	return n.current == len(n.sequence)-1
}

// ProgressPercent returns (index+1)/len*100. An empty sequence yields 0.
func (n *Navigator) ProgressPercent() float64 {
	return ProgressAt(n.current, len(n.sequence))
}

// ProgressAt returns the linear progress percent for position i of n.
func ProgressAt(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i+1) / float64(n) * 100
}
