// Package worksheet holds the server-side working copy of the proposal
// file a user currently has open: the editable line-item collection, its
// last-fetched baseline, and the display ordering. All mutation of the
// working copy goes through this package; everything else only reads
// snapshots of it.
package worksheet

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"costbook/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoFileSelected = errors.New("no proposal file selected")
	ErrRowNotFound    = errors.New("worksheet row not found")
	ErrStaleLoad      = errors.New("load result belongs to a previous file selection")
)

// Row pairs a line item with the stable handle edits are keyed off.
// Handles survive re-sorting, so an edit always lands on the row the
// user actually touched regardless of the current display order.
type Row struct {
	ID   uuid.UUID       `json:"row_id"`
	Item models.LineItem `json:"item"`
}

// Session owns the working copy for one user's currently selected file.
// Mutations are serialized by the internal mutex, so edits apply in the
// order they arrive and every read after an edit observes it.
type Session struct {
	mu sync.Mutex

	fileName   string
	generation uint64

	rows     []Row               // canonical insertion order
	baseline []models.LineItem   // last fetched/populated state, read-only
	view     []uuid.UUID         // current display order
	sort     sortState
}

func NewSession() *Session {
	return &Session{}
}

// Select marks fileName as the active file and clears any previous
// collection. It returns the new selection generation; the caller tags
// its outstanding fetch with it and hands the result to Complete, which
// drops responses that outlived the selection they were issued for.
func (s *Session) Select(fileName string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fileName = fileName
	s.generation++
	s.replaceLocked(nil)

	return s.generation
}

// Complete installs a fetched or populated collection, provided the
// generation still matches the current selection.
func (s *Session) Complete(generation uint64, items []models.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		slog.Warn("discarding stale worksheet load",
			"file", s.fileName,
			"got_generation", generation,
			"want_generation", s.generation)
		return ErrStaleLoad
	}

	s.replaceLocked(items)

	slog.Info("worksheet loaded",
		"file", s.fileName,
		"rows", len(items))

	return nil
}

// Load replaces the working copy and baseline in one step. It is the
// synchronous form of Select+Complete used when no request can be in
// flight. A nil collection loads an empty worksheet.
func (s *Session) Load(fileName string, items []models.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fileName = fileName
	s.generation++
	s.replaceLocked(items)
}

func (s *Session) replaceLocked(items []models.LineItem) {
	s.rows = make([]Row, 0, len(items))
	s.baseline = make([]models.LineItem, 0, len(items))
	s.view = make([]uuid.UUID, 0, len(items))
	s.sort = sortState{}

	for _, item := range items {
		item.RecalculateTotal()

		id := uuid.New()
		s.rows = append(s.rows, Row{ID: id, Item: item})
		s.baseline = append(s.baseline, item)
		s.view = append(s.view, id)
	}
}

// EditPrice parses rawValue as the new unit price for the row with the
// given handle. A value that does not parse as a number is not an error:
// it normalizes to zero so the editing flow is never interrupted. The
// row's total recomputes from its current quantity before returning.
func (s *Session) EditPrice(rowID uuid.UUID, rawValue string) (Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fileName == "" {
		return Row{}, ErrNoFileSelected
	}

	for i := range s.rows {
		if s.rows[i].ID != rowID {
			continue
		}

		s.rows[i].Item.SetPrice(ParsePrice(rawValue))
		return s.rows[i], nil
	}

	return Row{}, ErrRowNotFound
}

// ParsePrice converts raw user input to a price. Anything unparsable,
// including the empty string, becomes zero.
func ParsePrice(raw string) decimal.Decimal {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return price
}

// TotalCost sums total_price over the working copy in canonical order.
// It deliberately ignores the unit price column: once rows carry
// extended totals, the aggregate is always total_price based.
func (s *Session) TotalCost() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for i := range s.rows {
		total = total.Add(s.rows[i].Item.TotalPrice)
	}
	return total
}

// Items returns a copy of the working copy in canonical insertion
// order, independent of the current view sort. Aggregation and export
// consume this order so totals stay stable across re-sorts.
func (s *Session) Items() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.LineItem, 0, len(s.rows))
	for i := range s.rows {
		items = append(items, s.rows[i].Item)
	}
	return items
}

// Baseline returns the last fetched or populated state, before any
// manual edits.
func (s *Session) Baseline() []models.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	baseline := make([]models.LineItem, len(s.baseline))
	copy(baseline, s.baseline)
	return baseline
}

// FileName returns the currently selected file, or "" when none is.
func (s *Session) FileName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileName
}

// Generation returns the current selection generation.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *Session) IsEmpty() bool {
	return s.Len() == 0
}

// Manager hands out one Session per user. The worksheet is exclusively
// owned by that user's file-viewing session; nothing shares it.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[uuid.UUID]*Session)}
}

// ForUser returns the user's session, creating it on first use.
func (m *Manager) ForUser(userID uuid.UUID) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		session = NewSession()
		m.sessions[userID] = session
	}
	return session
}

// Drop discards a user's session, e.g. on logout.
func (m *Manager) Drop(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
