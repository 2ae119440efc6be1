package ui

import "testing"

func TestFilterChainPriorityOrder(t *testing.T) {
	chain := NewFilterChain()
	var order []string

	watch := func(tag string) FilterFunc {
		return func(m *Message) bool {
			order = append(order, tag)
			return false
		}
	}

	chain.Install(watch("normal"), FilterNormal)
	chain.Install(watch("first"), FilterFirst)
	chain.Install(watch("low"), FilterLow)
	chain.Install(watch("high"), FilterHigh)

	chain.Run(&Message{Kind: KindMouseMove})

	want := []string{"first", "high", "normal", "low"}
	if len(order) != len(want) {
		t.Fatalf("ran %d filters, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, order[i], want[i])
		}
	}
}

func TestFilterChainEqualPriorityKeepsInstallOrder(t *testing.T) {
	chain := NewFilterChain()
	var order []int

	for i := 0; i < 5; i++ {
		i := i
		chain.Install(FilterFunc(func(m *Message) bool {
			order = append(order, i)
			return false
		}), FilterNormal)
	}

	chain.Run(&Message{})
	for i, got := range order {
		if got != i {
			t.Fatalf("equal-priority filters ran as %v, want install order", order)
		}
	}
}

func TestFilterChainConsumeStopsChain(t *testing.T) {
	chain := NewFilterChain()
	ran := false

	chain.Install(FilterFunc(func(m *Message) bool { return true }), FilterHigh)
	chain.Install(FilterFunc(func(m *Message) bool { ran = true; return false }), FilterNormal)

	if !chain.Run(&Message{}) {
		t.Fatal("Run() = false, want true when a filter consumes")
	}
	if ran {
		t.Error("filter after the consumer still ran")
	}
}

func TestFilterChainRemove(t *testing.T) {
	chain := NewFilterChain()
	calls := 0

	id := chain.Install(FilterFunc(func(m *Message) bool { calls++; return false }), FilterNormal)

	chain.Run(&Message{})
	if !chain.Remove(id) {
		t.Fatal("Remove() = false for an installed filter")
	}
	chain.Run(&Message{})

	if calls != 1 {
		t.Errorf("removed filter ran %d times, want 1", calls)
	}
	if chain.Remove(id) {
		t.Error("Remove() = true for an already-removed filter")
	}
	if chain.Remove(InvalidFilterID) {
		t.Error("Remove(InvalidFilterID) = true")
	}
}

func TestFilterChainInstallNil(t *testing.T) {
	chain := NewFilterChain()
	if id := chain.Install(nil, FilterNormal); id != InvalidFilterID {
		t.Errorf("Install(nil) = %d, want InvalidFilterID", id)
	}
	if chain.Len() != 0 {
		t.Errorf("Len() = %d after nil install, want 0", chain.Len())
	}
}

func TestFilterChainRemoveDuringRun(t *testing.T) {
	chain := NewFilterChain()
	var id FilterID
	calls := 0

	id = chain.Install(FilterFunc(func(m *Message) bool {
		calls++
		chain.Remove(id)
		return false
	}), FilterNormal)

	chain.Run(&Message{})
	chain.Run(&Message{})

	if calls != 1 {
		t.Errorf("self-removing filter ran %d times, want 1", calls)
	}
	if chain.Len() != 0 {
		t.Errorf("Len() = %d after self-removal, want 0", chain.Len())
	}
}

func TestFilterChainLen(t *testing.T) {
	chain := NewFilterChain()
	ids := make([]FilterID, 0, 3)
	for i := 0; i < 3; i++ {
		ids = append(ids, chain.Install(FilterFunc(func(m *Message) bool { return false }), FilterNormal))
	}
	if chain.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", chain.Len())
	}
	chain.Remove(ids[1])
	if chain.Len() != 2 {
		t.Errorf("Len() = %d after one removal, want 2", chain.Len())
	}
}

func BenchmarkFilterChain_Run(b *testing.B) {
	chain := NewFilterChain()
	for i := 0; i < 4; i++ {
		chain.Install(FilterFunc(func(m *Message) bool { return false }), FilterNormal)
	}
	msg := &Message{Kind: KindPrimaryButtonDown, Pos: Point{X: 5, Y: 3}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chain.Run(msg)
	}
}
