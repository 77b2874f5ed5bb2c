package storage

import (
	"fmt"
	"time"
)

// Winner labels stored with round results.
const (
	WinnerLeft  = "left"
	WinnerRight = "right"
	WinnerX     = "x"
	WinnerO     = "o"
	WinnerDraw  = "draw"
)

// RoundResult is the outcome of one finished round of a two-sided game.
type RoundResult struct {
	ID         int64
	GameID     string
	Winner     string
	LeftScore  int
	RightScore int
	Duration   time.Duration
	CreatedAt  time.Time
}

// SaveResult records a finished round. Returns the ID of the inserted record.
func (s *Store) SaveResult(r RoundResult) (int64, error) {
	if r.Winner == "" {
		return 0, fmt.Errorf("storage: round result for %s has no winner", r.GameID)
	}

	res, err := s.db.Exec(
		`INSERT INTO round_results (game_id, winner, left_score, right_score, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.Winner, r.LeftScore, r.RightScore, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the latest round results for a game, newest first.
func (s *Store) RecentResults(gameID string, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, winner, left_score, right_score, duration_ms, created_at
		 FROM round_results
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round results: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Winner, &r.LeftScore, &r.RightScore, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// WinCounts returns how many rounds each winner label has taken in a game.
func (s *Store) WinCounts(gameID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT winner, COUNT(*) FROM round_results WHERE game_id = ? GROUP BY winner`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var winner string
		var n int
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[winner] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}
