package service

import (
	"context"
	"io"
	"log"
	"sort"
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRecords is an in-process RecordStore.
type memoryRecords struct {
	boards map[string]map[string]float64
	sync.Mutex
}

func newMemoryRecords() *memoryRecords {
	return &memoryRecords{boards: make(map[string]map[string]float64)}
}

func (r *memoryRecords) Add(_ context.Context, key string, score float64, member string) error {
	r.Lock()
	defer r.Unlock()
	board, ok := r.boards[key]
	if !ok {
		board = make(map[string]float64)
		r.boards[key] = board
	}
	if old, ok := board[member]; !ok || score < old {
		board[member] = score
	}
	return nil
}

func (r *memoryRecords) Top(_ context.Context, key string, n int64) ([]i.Record, error) {
	r.Lock()
	defer r.Unlock()
	records := make([]i.Record, 0)
	for member, score := range r.boards[key] {
		records = append(records, i.Record{Member: member, Score: score})
	}
	sort.Slice(records, func(a, b int) bool { return records[a].Score < records[b].Score })
	if int64(len(records)) > n {
		records = records[:n]
	}
	return records, nil
}

func newTestManager(t *testing.T, records i.RecordStore) *MazeSessionManager {
	t.Helper()
	gsm, err := NewMazeSessionManager(&Config{
		Records:      records,
		Logger:       log.New(io.Discard, "", 0),
		MaxDimension: 30,
	})
	require.NoError(t, err)
	return gsm
}

func seed(v int64) *int64 {
	return &v
}

// solveSession walks a session's agent along the solution and out of the exit.
func solveSession(t *testing.T, gsm *MazeSessionManager, id, playerID uuid.UUID) int {
	t.Helper()
	ctx := context.Background()

	ok, err := gsm.Move(ctx, id, playerID, maze.South)
	require.NoError(t, err)
	require.True(t, ok)

	path, err := gsm.Solution(id, playerID)
	require.NoError(t, err)
	snap, err := gsm.Snapshot(id, playerID)
	require.NoError(t, err)
	topo := maze.Topology{Width: snap.Width, Height: snap.Height, Circular: snap.Circular}

	for k := len(path) - 2; k >= 0; k-- {
		snap, err := gsm.Snapshot(id, playerID)
		require.NoError(t, err)
		here := snap.Position
		moved := false
		for _, d := range maze.Directions {
			next, inGrid := topo.Neighbor(here, d)
			if !inGrid || next != path[k] || wallAt(snap.Walls[here.Y][here.X], d) {
				continue
			}
			ok, err := gsm.Move(ctx, id, playerID, d)
			require.NoError(t, err)
			require.True(t, ok)
			moved = true
			break
		}
		require.True(t, moved)
	}

	ok, err = gsm.Move(ctx, id, playerID, maze.North)
	require.NoError(t, err)
	require.True(t, ok)
	return len(path) + 1
}

func wallAt(w CellWalls, d maze.Direction) bool {
	switch d {
	case maze.North:
		return w.North
	case maze.East:
		return w.East
	case maze.South:
		return w.South
	}
	return w.West
}

func TestNewMazeSessionManager(t *testing.T) {
	_, err := NewMazeSessionManager(nil)
	assert.Error(t, err)

	gsm, err := NewMazeSessionManager(&Config{Logger: log.New(io.Discard, "", 0)})
	require.NoError(t, err)
	assert.Equal(t, defaultMazeSize, gsm.defaultWidth)
	assert.Equal(t, defaultMaxDimension, gsm.maxDimension)
}

func TestNewSession(t *testing.T) {
	gsm := newTestManager(t, nil)
	player := uuid.New()

	t.Run("defaults", func(t *testing.T) {
		id, err := gsm.NewSession(player, SessionConfig{})
		require.NoError(t, err)

		snap, err := gsm.Snapshot(id, player)
		require.NoError(t, err)
		assert.Equal(t, defaultMazeSize, snap.Width)
		assert.Equal(t, defaultMazeSize, snap.Height)
		assert.Equal(t, maze.AtEntrance.String(), snap.State)
		assert.Equal(t, maze.North.String(), snap.Facing)
		assert.Len(t, snap.Walls, snap.Height)
		assert.False(t, snap.Walls[snap.Height-1][snap.Entrance].South)
		assert.False(t, snap.Walls[0][snap.Exit].North)
	})

	t.Run("seeded", func(t *testing.T) {
		a, err := gsm.NewSession(player, SessionConfig{Width: 6, Height: 4, Circular: true, Seed: seed(11)})
		require.NoError(t, err)
		b, err := gsm.NewSession(player, SessionConfig{Width: 6, Height: 4, Circular: true, Seed: seed(11)})
		require.NoError(t, err)

		sa, err := gsm.Solution(a, player)
		require.NoError(t, err)
		sb, err := gsm.Solution(b, player)
		require.NoError(t, err)
		assert.Equal(t, sa, sb)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := gsm.NewSession(player, SessionConfig{Width: 31, Height: 5})
		assert.ErrorIs(t, err, ErrDimensionTooLarge)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := gsm.NewSession(player, SessionConfig{Width: -2, Height: 5})
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})
}

func TestSessionOwnership(t *testing.T) {
	gsm := newTestManager(t, nil)
	owner := uuid.New()
	id, err := gsm.NewSession(owner, SessionConfig{Width: 4, Height: 4, Seed: seed(1)})
	require.NoError(t, err)

	_, err = gsm.Snapshot(id, uuid.New())
	assert.ErrorIs(t, err, ErrNotSessionOwner)

	_, err = gsm.Move(context.Background(), uuid.New(), owner, maze.South)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, gsm.Close(id, owner))
	_, err = gsm.Snapshot(id, owner)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCompletionIsRecordedOnce(t *testing.T) {
	records := newMemoryRecords()
	gsm := newTestManager(t, records)
	player := uuid.New()
	ctx := context.Background()

	id, err := gsm.NewSession(player, SessionConfig{Width: 7, Height: 5, Seed: seed(21)})
	require.NoError(t, err)

	moves := solveSession(t, gsm, id, player)

	snap, err := gsm.Snapshot(id, player)
	require.NoError(t, err)
	assert.True(t, snap.Completed)
	assert.Equal(t, maze.Outside.String(), snap.State)
	assert.Equal(t, moves, snap.Moves)

	_, err = gsm.Move(ctx, id, player, maze.South)
	assert.ErrorIs(t, err, maze.ErrIllegalTransition)

	top, err := gsm.Records(ctx, 7, 5, false, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, player.String(), top[0].Member)
	assert.Equal(t, float64(moves), top[0].Score)

	// A slower second run keeps the best score.
	require.NoError(t, gsm.Restart(id, player))
	ok, err := gsm.Move(ctx, id, player, maze.South)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = gsm.Move(ctx, id, player, maze.South)
	require.NoError(t, err)
	require.True(t, ok)
	solveSession(t, gsm, id, player)

	top, err = gsm.Records(ctx, 7, 5, false, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, float64(moves), top[0].Score)
}

func TestWalk(t *testing.T) {
	gsm := newTestManager(t, nil)
	player := uuid.New()
	ctx := context.Background()
	id, err := gsm.NewSession(player, SessionConfig{Width: 5, Height: 5, Seed: seed(3)})
	require.NoError(t, err)

	ok, err := gsm.Walk(ctx, id, player, ActionLeft)
	require.NoError(t, err)
	assert.False(t, ok, "cannot turn before entering")

	ok, err = gsm.Walk(ctx, id, player, ActionForward)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gsm.Walk(ctx, id, player, ActionRight)
	require.NoError(t, err)
	assert.True(t, ok)

	snap, err := gsm.Snapshot(id, player)
	require.NoError(t, err)
	assert.Equal(t, maze.East.String(), snap.Facing)
	assert.Equal(t, maze.OnGrid.String(), snap.State)

	_, err = gsm.Walk(ctx, id, player, WalkAction("jump"))
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestTrailAndReset(t *testing.T) {
	gsm := newTestManager(t, nil)
	player := uuid.New()
	id, err := gsm.NewSession(player, SessionConfig{Width: 5, Height: 5, Seed: seed(8)})
	require.NoError(t, err)

	solution, err := gsm.Solution(id, player)
	require.NoError(t, err)

	_, err = gsm.Move(context.Background(), id, player, maze.South)
	require.NoError(t, err)
	trail, err := gsm.Trail(id, player)
	require.NoError(t, err)
	assert.Equal(t, solution[:len(solution)-1], trail)

	require.NoError(t, gsm.ResetTrail(id, player))
	trail, err = gsm.Trail(id, player)
	require.NoError(t, err)
	assert.Equal(t, solution, trail)

	art, err := gsm.Render(id, player, maze.RenderOptions{Agent: true})
	require.NoError(t, err)
	assert.Contains(t, art, "@")
}

func TestRecordsWithoutStore(t *testing.T) {
	gsm := newTestManager(t, nil)
	top, err := gsm.Records(context.Background(), 5, 5, true, 3)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestRecordKey(t *testing.T) {
	assert.Equal(t, "records:5x4:rect", recordKey(5, 4, false))
	assert.Equal(t, "records:5x4:ring", recordKey(5, 4, true))
}
