package main

import (
	"errors"
	"sync"
	"testing"
)

func fillTicket(t *testing.T, tk *Ticket, g *Generator, n int) {
	t.Helper()
	for range n {
		if _, err := tk.Generate(g, 0, nil); err != nil {
			t.Fatalf("generate: %v", err)
		}
	}
}

func TestTicketGenerateFromEmpty(t *testing.T) {
	tk := NewTicket()
	s, err := tk.Generate(testGenerator(1), 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sets := tk.Sets()
	if len(sets) != 1 || sets[0].ID != s.ID {
		t.Fatalf("expected the generated set to be stored, got %v", sets)
	}
	if tk.Busy() {
		t.Fatal("ticket should not stay busy")
	}
}

func TestTicketCapacity(t *testing.T) {
	tk := NewTicket()
	g := testGenerator(2)
	fillTicket(t, tk, g, MaxSets)

	_, err := tk.Generate(g, 0, nil)
	if !errors.Is(err, ErrTicketFull) {
		t.Fatalf("expected ErrTicketFull, got %v", err)
	}
	if tk.Len() != MaxSets {
		t.Fatalf("expected %d sets, got %d", MaxSets, tk.Len())
	}
	if tk.CanGenerate() {
		t.Fatal("generate should be disabled when full")
	}
	if tk.Busy() {
		t.Fatal("a refused generate must not set busy")
	}
}

func TestTicketBusy(t *testing.T) {
	tk := NewTicket()
	if err := tk.BeginGenerate(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if tk.CanGenerate() {
		t.Fatal("generate should be disabled while busy")
	}
	if err := tk.BeginGenerate(); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	tk.Commit(testGenerator(1).Generate())
	if !tk.CanGenerate() || tk.Len() != 1 {
		t.Fatalf("expected one set and generate enabled, got len=%d", tk.Len())
	}
}

func TestTicketConcurrentGenerate(t *testing.T) {
	tk := NewTicket()
	g := testGenerator(9)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tk.Generate(g, 0, nil)
		}()
	}
	wg.Wait()

	if n := tk.Len(); n < 1 || n > MaxSets {
		t.Fatalf("ticket length %d out of bounds", n)
	}
}

func TestTicketRemove(t *testing.T) {
	tk := NewTicket()
	fillTicket(t, tk, testGenerator(4), 4)
	before := tk.Sets()

	if err := tk.Remove(before[1].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	after := tk.Sets()
	if len(after) != 3 {
		t.Fatalf("expected 3 sets, got %d", len(after))
	}
	want := []string{before[0].ID, before[2].ID, before[3].ID}
	for i, id := range want {
		if after[i].ID != id {
			t.Fatalf("order changed: want %v, got %v", want, after)
		}
	}

	if err := tk.Remove("lotto-missing"); !errors.Is(err, ErrSetNotFound) {
		t.Fatalf("expected ErrSetNotFound, got %v", err)
	}
	if tk.Len() != 3 {
		t.Fatal("unknown id must not change the ticket")
	}
}

func TestTicketRemoveAt(t *testing.T) {
	tk := NewTicket()
	fillTicket(t, tk, testGenerator(5), 3)
	before := tk.Sets()

	s, err := tk.RemoveAt(0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if s.ID != before[0].ID {
		t.Fatalf("removed %s, want %s", s.ID, before[0].ID)
	}
	if _, err := tk.RemoveAt(2); !errors.Is(err, ErrSetNotFound) {
		t.Fatalf("expected ErrSetNotFound, got %v", err)
	}
}

func TestTicketClear(t *testing.T) {
	for _, n := range []int{0, 1, MaxSets} {
		tk := NewTicket()
		fillTicket(t, tk, testGenerator(6), n)
		tk.Clear()
		if tk.Len() != 0 {
			t.Fatalf("expected empty ticket after clear, got %d", tk.Len())
		}
	}
}

func TestTicketSetsIsCopy(t *testing.T) {
	tk := NewTicket()
	fillTicket(t, tk, testGenerator(8), 1)
	sets := tk.Sets()
	sets[0].ID = "changed"
	if tk.Sets()[0].ID == "changed" {
		t.Fatal("Sets must return a copy")
	}
}

func TestLabel(t *testing.T) {
	for i, want := range []string{"A", "B", "C", "D", "E"} {
		if got := Label(i); got != want {
			t.Fatalf("Label(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestSessions(t *testing.T) {
	ss := NewSessions()
	a := ss.Get(1)
	if ss.Get(1) != a {
		t.Fatal("expected the same ticket for the same chat")
	}
	if ss.Get(2) == a {
		t.Fatal("expected separate tickets per chat")
	}
}

func TestTicketGenerateStarted(t *testing.T) {
	tk := NewTicket()
	var busyDuring bool
	if _, err := tk.Generate(testGenerator(3), 0, func() { busyDuring = tk.Busy() }); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !busyDuring {
		t.Fatal("started callback should run while the ticket is busy")
	}

	for tk.Len() < MaxSets {
		tk.Commit(testGenerator(4).Generate())
	}
	called := false
	if _, err := tk.Generate(testGenerator(5), 0, func() { called = true }); !errors.Is(err, ErrTicketFull) {
		t.Fatalf("expected ErrTicketFull, got %v", err)
	}
	if called {
		t.Fatal("started callback must not run when generate is refused")
	}
}
