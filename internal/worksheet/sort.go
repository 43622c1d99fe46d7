package worksheet

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// sortState tracks the per-key toggle directions. Each key keeps its own
// flag: re-sorting by line does not reset the category direction.
type sortState struct {
	categoryDesc bool
	categorySet  bool
	lineDesc     bool
	lineSet      bool
}

// SortByCategory reorders the display view by category and toggles the
// category direction: first call ascending, next descending, and so on.
// Comparison uses the raw category string with absent as "", which can
// differ from the Uncategorized normalization used at aggregation time;
// that mismatch is inherited behavior and intentional.
func (s *Session) SortByCategory() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	desc := s.sort.categorySet && !s.sort.categoryDesc
	s.sort.categoryDesc = desc
	s.sort.categorySet = true

	s.reorderLocked(func(a, b *Row) bool {
		less := a.Item.Category < b.Item.Category
		if desc {
			less = a.Item.Category > b.Item.Category
		}
		return less
	})

	return s.viewLocked()
}

// SortByLine reorders the display view numerically by line number and
// toggles the line direction independently of the category direction.
// Rows without a line number sort after every numbered row ascending.
func (s *Session) SortByLine() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	desc := s.sort.lineSet && !s.sort.lineDesc
	s.sort.lineDesc = desc
	s.sort.lineSet = true

	s.reorderLocked(func(a, b *Row) bool {
		la, lb := sortableLine(a), sortableLine(b)
		if desc {
			return la > lb
		}
		return la < lb
	})

	return s.viewLocked()
}

// View returns the rows in the current display order without changing
// any sort state.
func (s *Session) View() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// ResetView restores the canonical insertion order and clears the
// toggle flags.
func (s *Session) ResetView() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = s.view[:0]
	for i := range s.rows {
		s.view = append(s.view, s.rows[i].ID)
	}
	s.sort = sortState{}
}

// reorderLocked permutes only the view ordering; the canonical row
// slice never moves, so row handles and insertion order stay intact.
func (s *Session) reorderLocked(less func(a, b *Row) bool) {
	rows := make([]*Row, 0, len(s.view))
	for _, id := range s.view {
		if row := s.rowByIDLocked(id); row != nil {
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i], rows[j])
	})

	s.view = s.view[:0]
	for _, row := range rows {
		s.view = append(s.view, row.ID)
	}
}

func (s *Session) viewLocked() []Row {
	view := make([]Row, 0, len(s.view))
	for _, id := range s.view {
		if row := s.rowByIDLocked(id); row != nil {
			view = append(view, *row)
		}
	}
	return view
}

func (s *Session) rowByIDLocked(id uuid.UUID) *Row {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i]
		}
	}
	return nil
}

// sortableLine maps a missing line number to the largest value so those
// rows land at the end of an ascending sort.
func sortableLine(r *Row) int {
	if r.Item.Line == nil {
		return math.MaxInt
	}
	return *r.Item.Line
}
