package i

import "context"

// Record is a single entry of a records board.
type Record struct {
	Member string  // Player that set the record
	Score  float64 // Number of moves, lower is better
}

// RecordStore keeps the best scores per board, lowest first.
type RecordStore interface {
	// Add stores score for member on the board named key. An existing entry is
	// only replaced by a better (lower) score.
	Add(ctx context.Context, key string, score float64, member string) error

	// Top returns up to n of the best records on the board named key.
	Top(ctx context.Context, key string, n int64) ([]Record, error)
}
