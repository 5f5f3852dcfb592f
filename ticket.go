package main

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

const MaxSets = 5

var (
	ErrTicketFull  = errors.New("ticket already holds the maximum number of sets")
	ErrBusy        = errors.New("a set is already being generated")
	ErrEmptyTicket = errors.New("ticket has no sets")
	ErrSetNotFound = errors.New("set not found")
)

type NumberSet struct {
	ID        string
	Numbers   [lottoPickCnt]int
	CreatedAt time.Time
}

func newSetID() string {
	return "lotto-" + uuid.NewString()
}

// Label returns the row letter for position i (0 → "A").
func Label(i int) string {
	return string(rune('A' + i))
}

// Ticket is the bounded, insertion-ordered list of sets shown to one user.
type Ticket struct {
	mu   sync.Mutex
	sets []NumberSet
	busy bool
}

func NewTicket() *Ticket {
	return &Ticket{}
}

// Sets returns a copy of the current sets in creation order.
func (t *Ticket) Sets() []NumberSet {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.sets)
}

func (t *Ticket) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sets)
}

func (t *Ticket) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.busy
}

// CanGenerate reports whether the generate action is enabled.
func (t *Ticket) CanGenerate() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.busy && len(t.sets) < MaxSets
}

// BeginGenerate marks the ticket busy. Every successful call must be
// followed by exactly one Commit.
func (t *Ticket) BeginGenerate() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.sets) >= MaxSets {
		return ErrTicketFull
	}
	if t.busy {
		return ErrBusy
	}
	t.busy = true
	return nil
}

// Commit appends s and clears the busy flag.
func (t *Ticket) Commit(s NumberSet) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.busy = false
	if len(t.sets) >= MaxSets {
		return
	}
	t.sets = append(t.sets, s)
}

// Generate runs the whole begin → wait → commit cycle. started, when not
// nil, is called once the ticket is busy. The delay is cosmetic and always
// runs to completion once started.
func (t *Ticket) Generate(gen *Generator, delay time.Duration, started func()) (NumberSet, error) {
	if err := t.BeginGenerate(); err != nil {
		return NumberSet{}, err
	}
	if started != nil {
		started()
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	s := gen.Generate()
	t.Commit(s)
	return s, nil
}

func (t *Ticket) Remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := slices.IndexFunc(t.sets, func(s NumberSet) bool { return s.ID == id })
	if i < 0 {
		return fmt.Errorf("remove %q: %w", id, ErrSetNotFound)
	}
	t.sets = slices.Delete(t.sets, i, i+1)
	return nil
}

// RemoveAt deletes the set at position i, as labelled on screen.
func (t *Ticket) RemoveAt(i int) (NumberSet, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i >= len(t.sets) {
		return NumberSet{}, fmt.Errorf("remove row %d: %w", i, ErrSetNotFound)
	}
	s := t.sets[i]
	t.sets = slices.Delete(t.sets, i, i+1)
	return s, nil
}

func (t *Ticket) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sets = nil
}

// Sessions keeps one ticket per chat.
type Sessions struct {
	mu      sync.Mutex
	tickets map[int64]*Ticket
}

func NewSessions() *Sessions {
	return &Sessions{tickets: make(map[int64]*Ticket)}
}

func (ss *Sessions) Get(chatID int64) *Ticket {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	t, ok := ss.tickets[chatID]
	if !ok {
		t = NewTicket()
		ss.tickets[chatID] = t
	}
	return t
}
