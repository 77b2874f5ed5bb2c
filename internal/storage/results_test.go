package storage

import (
	"testing"
	"time"
)

func TestSaveAndRecentResults(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundResult{
		{GameID: "pong", Winner: WinnerLeft, LeftScore: 5, RightScore: 2, Duration: 90 * time.Second},
		{GameID: "pong", Winner: WinnerRight, LeftScore: 4, RightScore: 5, Duration: 2 * time.Minute},
		{GameID: "tictactoe", Winner: WinnerDraw},
	}
	for _, r := range rounds {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%+v) failed: %v", r, err)
		}
	}

	results, err := store.RecentResults("pong", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 pong results, got %d", len(results))
	}

	// Newest first
	if results[0].Winner != WinnerRight || results[0].RightScore != 5 {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 90s", results[1].Duration)
	}
	if results[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	limited, err := store.RecentResults("pong", 1)
	if err != nil {
		t.Fatalf("RecentResults(1) failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d results", len(limited))
	}
}

func TestSaveResultRequiresWinner(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(RoundResult{GameID: "pong"}); err == nil {
		t.Error("result without winner should be rejected")
	}
}

func TestWinCounts(t *testing.T) {
	store := openTestStore(t)

	for _, w := range []string{WinnerX, WinnerO, WinnerX, WinnerDraw, WinnerX} {
		store.SaveResult(RoundResult{GameID: "tictactoe", Winner: w})
	}
	store.SaveResult(RoundResult{GameID: "pong", Winner: WinnerLeft})

	counts, err := store.WinCounts("tictactoe")
	if err != nil {
		t.Fatalf("WinCounts() failed: %v", err)
	}

	want := map[string]int{WinnerX: 3, WinnerO: 1, WinnerDraw: 1}
	if len(counts) != len(want) {
		t.Fatalf("counts = %v, expected %v", counts, want)
	}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("counts[%q] = %d, expected %d", k, counts[k], v)
		}
	}
}
