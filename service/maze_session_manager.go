package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMazeSize     = 10
	defaultMaxDimension = 50

	recordKeyFmt = "records:%dx%d:%s"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrNotSessionOwner   = errors.New("session belongs to another player")
	ErrDimensionTooLarge = errors.New("maze dimension too large")
	ErrUnknownAction     = errors.New("unknown walk action")
)

// WalkAction is a move relative to the walker's facing.
type WalkAction string

const (
	ActionForward WalkAction = "forward"
	ActionLeft    WalkAction = "left"
	ActionRight   WalkAction = "right"
)

// SessionConfig describes the maze to build for a new session.
// Zero dimensions fall back to the manager defaults.
type SessionConfig struct {
	Width    int
	Height   int
	Circular bool
	Seed     *int64
	Mirrored bool
}

type session struct {
	id        uuid.UUID
	playerID  uuid.UUID
	maze      *maze.Maze
	walker    *game.Walker
	createdAt time.Time
	recorded  bool
	sync.Mutex
}

// MazeSessionManager owns the mazes players are walking through.
type MazeSessionManager struct {
	sessions      map[uuid.UUID]*session
	records       i.RecordStore
	logger        *log.Logger
	defaultWidth  int
	defaultHeight int
	maxDimension  int
	sync.RWMutex
}

// Config holds the dependencies and limits of a MazeSessionManager.
type Config struct {
	Records       i.RecordStore // optional, completions are not recorded when nil
	Logger        *log.Logger
	DefaultWidth  int
	DefaultHeight int
	MaxDimension  int
}

// NewMazeSessionManager creates a session manager, filling unset limits with defaults.
func NewMazeSessionManager(c *Config) (*MazeSessionManager, error) {
	if c == nil || c.Logger == nil {
		return nil, errors.New("session manager needs a logger")
	}

	gsm := &MazeSessionManager{
		sessions:      make(map[uuid.UUID]*session),
		records:       c.Records,
		logger:        c.Logger,
		defaultWidth:  c.DefaultWidth,
		defaultHeight: c.DefaultHeight,
		maxDimension:  c.MaxDimension,
	}
	if gsm.defaultWidth <= 0 {
		gsm.defaultWidth = defaultMazeSize
	}
	if gsm.defaultHeight <= 0 {
		gsm.defaultHeight = defaultMazeSize
	}
	if gsm.maxDimension <= 0 {
		gsm.maxDimension = defaultMaxDimension
	}

	return gsm, nil
}

// NewSession generates a maze for playerID and returns the new session ID.
func (g *MazeSessionManager) NewSession(playerID uuid.UUID, c SessionConfig) (uuid.UUID, error) {
	if c.Width == 0 {
		c.Width = g.defaultWidth
	}
	if c.Height == 0 {
		c.Height = g.defaultHeight
	}
	if max(c.Width, c.Height) > g.maxDimension {
		return uuid.Nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, c.Width, c.Height, g.maxDimension)
	}

	var opts []maze.Option
	if c.Seed != nil {
		opts = append(opts, maze.WithSeed(*c.Seed))
	}

	// Mazes are generated one at a time, under the manager lock.
	g.Lock()
	defer g.Unlock()

	m, err := maze.New(c.Width, c.Height, c.Circular, opts...)
	if err != nil {
		g.logger.Printf("%s[ERROR]%s creating maze for player %s: %s", config.LogErrorColor, config.LogColorReset, playerID, err)
		return uuid.Nil, err
	}

	sessionID := uuid.New()
	for {
		if _, ok := g.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}

	g.sessions[sessionID] = &session{
		id:        sessionID,
		playerID:  playerID,
		maze:      m,
		walker:    game.NewWalker(m, c.Mirrored),
		createdAt: time.Now(),
	}

	g.logger.Printf("%s[INFO]%s started %dx%d maze (circular=%v seed=%d) for player %s", config.LogInfoColor, config.LogColorReset, c.Width, c.Height, c.Circular, m.Seed(), playerID)
	return sessionID, nil
}

// Snapshot returns the current state of a session.
func (g *MazeSessionManager) Snapshot(id, playerID uuid.UUID) (*Snapshot, error) {
	s, err := g.lookup(id, playerID)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()
	return s.snapshot(), nil
}

// Move steps the session's agent in an absolute direction.
func (g *MazeSessionManager) Move(ctx context.Context, id, playerID uuid.UUID, d maze.Direction) (bool, error) {
	s, err := g.lookup(id, playerID)
	if err != nil {
		return false, err
	}

	s.Lock()
	defer s.Unlock()
	ok, err := s.walker.Step(d)
	if err != nil {
		return false, err
	}
	if ok {
		g.recordCompletion(ctx, s)
	}
	return ok, nil
}

// Walk applies a move relative to the walker's facing.
func (g *MazeSessionManager) Walk(ctx context.Context, id, playerID uuid.UUID, action WalkAction) (bool, error) {
	s, err := g.lookup(id, playerID)
	if err != nil {
		return false, err
	}

	s.Lock()
	defer s.Unlock()

	var ok bool
	switch action {
	case ActionForward:
		ok, err = s.walker.Forward()
	case ActionLeft:
		ok, err = s.walker.TurnLeft()
	case ActionRight:
		ok, err = s.walker.TurnRight()
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if err != nil {
		return false, err
	}
	if ok && action == ActionForward {
		g.recordCompletion(ctx, s)
	}
	return ok, nil
}

// Solution returns the canonical path of a session's maze, exit first.
func (g *MazeSessionManager) Solution(id, playerID uuid.UUID) ([]maze.Cell, error) {
	s, err := g.lookup(id, playerID)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()
	return slices.Collect(s.maze.Solution()), nil
}

// Trail returns the path between the exit and the agent, exit first.
func (g *MazeSessionManager) Trail(id, playerID uuid.UUID) ([]maze.Cell, error) {
	s, err := g.lookup(id, playerID)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()
	return slices.Collect(s.maze.Trail()), nil
}

// Render draws a session's maze as ASCII art.
func (g *MazeSessionManager) Render(id, playerID uuid.UUID, opts maze.RenderOptions) (string, error) {
	s, err := g.lookup(id, playerID)
	if err != nil {
		return "", err
	}

	s.Lock()
	defer s.Unlock()
	return s.maze.Render(opts), nil
}

// ResetTrail sets the session's trail back to the full solution.
func (g *MazeSessionManager) ResetTrail(id, playerID uuid.UUID) error {
	s, err := g.lookup(id, playerID)
	if err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()
	s.maze.ResetTraversalPath()
	return nil
}

// Restart sends the session's walker back to the entrance of the same maze.
func (g *MazeSessionManager) Restart(id, playerID uuid.UUID) error {
	s, err := g.lookup(id, playerID)
	if err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()
	s.recorded = false
	return s.walker.Reset()
}

// Close drops a session.
func (g *MazeSessionManager) Close(id, playerID uuid.UUID) error {
	if _, err := g.lookup(id, playerID); err != nil {
		return err
	}

	g.Lock()
	defer g.Unlock()
	delete(g.sessions, id)
	g.logger.Printf("%s[INFO]%s closed session %s", config.LogInfoColor, config.LogColorReset, id)
	return nil
}

// Records returns the best completions for mazes of the given shape.
func (g *MazeSessionManager) Records(ctx context.Context, width, height int, circular bool, n int64) ([]i.Record, error) {
	if g.records == nil {
		return []i.Record{}, nil
	}
	return g.records.Top(ctx, recordKey(width, height, circular), n)
}

func (g *MazeSessionManager) lookup(id, playerID uuid.UUID) (*session, error) {
	g.RLock()
	defer g.RUnlock()

	s, ok := g.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.playerID != playerID {
		return nil, ErrNotSessionOwner
	}
	return s, nil
}

// recordCompletion stores the move count of a walk that just left the maze.
// The caller holds the session lock.
func (g *MazeSessionManager) recordCompletion(ctx context.Context, s *session) {
	if s.recorded || !s.walker.Completed() {
		return
	}
	s.recorded = true

	g.logger.Printf("%s[INFO]%s player %s completed session %s in %d moves", config.LogInfoColor, config.LogColorReset, s.playerID, s.id, s.walker.Moves())
	if g.records == nil {
		return
	}

	key := recordKey(s.maze.Width(), s.maze.Height(), s.maze.IsCircular())
	if err := g.records.Add(ctx, key, float64(s.walker.Moves()), s.playerID.String()); err != nil {
		g.logger.Printf("%s[ERROR]%s saving record for player %s: %s", config.LogErrorColor, config.LogColorReset, s.playerID, err)
	}
}

func recordKey(width, height int, circular bool) string {
	shape := "rect"
	if circular {
		shape = "ring"
	}
	return fmt.Sprintf(recordKeyFmt, width, height, shape)
}
