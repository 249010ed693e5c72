package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultRecordsLimit = 10

// SessionManager is the part of the session service the controller uses.
type SessionManager interface {
	NewSession(playerID uuid.UUID, c service.SessionConfig) (uuid.UUID, error)
	Snapshot(id, playerID uuid.UUID) (*service.Snapshot, error)
	Move(ctx context.Context, id, playerID uuid.UUID, d maze.Direction) (bool, error)
	Walk(ctx context.Context, id, playerID uuid.UUID, action service.WalkAction) (bool, error)
	Solution(id, playerID uuid.UUID) ([]maze.Cell, error)
	Trail(id, playerID uuid.UUID) ([]maze.Cell, error)
	Render(id, playerID uuid.UUID, opts maze.RenderOptions) (string, error)
	ResetTrail(id, playerID uuid.UUID) error
	Restart(id, playerID uuid.UUID) error
	Close(id, playerID uuid.UUID) error
	Records(ctx context.Context, width, height int, circular bool, n int64) ([]i.Record, error)
}

var _ SessionManager = &service.MazeSessionManager{}

// MazeController serves maze sessions to authorized players.
type MazeController struct {
	sessions SessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(sm SessionManager) *MazeController {
	return &MazeController{sessions: sm}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.snapshot)
		mazes.DELETE("/:ID", mc.close)
		mazes.POST("/:ID/moves", mc.move)
		mazes.POST("/:ID/walk", mc.walk)
		mazes.POST("/:ID/reset", mc.resetTrail)
		mazes.POST("/:ID/restart", mc.restart)
		mazes.GET("/:ID/solution", mc.solution)
		mazes.GET("/:ID/trail", mc.trail)
		mazes.GET("/:ID/render", mc.render)
	}
	route.GET("/records", mc.records)
}

// create generates a maze for the calling player.
func (mc *MazeController) create(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unknown player"})
		return
	}

	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := mc.sessions.NewSession(playerID, service.SessionConfig{
		Width:    request.Width,
		Height:   request.Height,
		Circular: request.Circular,
		Seed:     request.Seed,
		Mirrored: request.Mirrored,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &CreateResponse{ID: id.String()})
}

// snapshot returns the full state of a session.
func (mc *MazeController) snapshot(ctx *gin.Context) {
	id, playerID, ok := sessionParams(ctx)
	if !ok {
		return
	}

	snap, err := mc.sessions.Snapshot(id, playerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// move steps the agent in an absolute direction.
func (mc *MazeController) move(ctx *gin.Context) {
	id, playerID, ok := sessionParams(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := maze.ParseDirection(request.Direction)
	if err != nil {
		respondError(ctx, err)
		return
	}

	moved, err := mc.sessions.Move(ctx.Request.Context(), id, playerID, d)
	if err != nil {
		respondError(ctx, err)
		return
	}
	mc.respondMove(ctx, id, playerID, moved)
}

// walk applies a move relative to the agent's facing.
func (mc *MazeController) walk(ctx *gin.Context) {
	id, playerID, ok := sessionParams(ctx)
	if !ok {
		return
	}

	var request WalkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	moved, err := mc.sessions.Walk(ctx.Request.Context(), id, playerID, service.WalkAction(request.Action))
	if err != nil {
		respondError(ctx, err)
		return
	}
	mc.respondMove(ctx, id, playerID, moved)
}

func (mc *MazeController) respondMove(ctx *gin.Context, id, playerID uuid.UUID, moved bool) {
	snap, err := mc.sessions.Snapshot(id, playerID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &MoveResponse{
		Moved:     moved,
		Position:  snap.Position,
		State:     snap.State,
		Facing:    snap.Facing,
		Moves:     snap.Moves,
		Completed: snap.Completed,
	})
}

// solution returns the canonical path, exit first.
func (mc *MazeController) solution(ctx *gin.Context) {
	id, playerID, ok := sessionParams(ctx)
	if !ok {
		return
	}

	cells, err := mc.sessions.Solution(id, playerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &PathResponse{Cells: cells})
}

// trail returns the path between the exit and the agent, exit first.
func (mc *MazeController) trail(ctx *gin.Context) {
	id, playerID, ok := sessionParams(ctx)
	if !ok {
		return
	}

	cells, err := mc.sessions.Trail(id, playerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &PathResponse{Cells: cells})
}

// render returns the maze as ASCII art.
func (mc *MazeController) render(ctx *gin.Context) {
	id, playerID, ok := sessionParams(ctx)
	if !ok {
		return
	}

	art, err := mc.sessions.Render(id, playerID, maze.RenderOptions{
		Solution: ctx.Query("solution") == "true",
		Trail:    ctx.Query("trail") == "true",
		Agent:    true,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, "%s", art)
}

// resetTrail sets the trail back to the full solution.
func (mc *MazeController) resetTrail(ctx *gin.Context) {
	id, playerID, ok := sessionParams(ctx)
	if !ok {
		return
	}

	if err := mc.sessions.ResetTrail(id, playerID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// restart puts the agent back at the entrance.
func (mc *MazeController) restart(ctx *gin.Context) {
	id, playerID, ok := sessionParams(ctx)
	if !ok {
		return
	}

	if err := mc.sessions.Restart(id, playerID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// close drops a session.
func (mc *MazeController) close(ctx *gin.Context) {
	id, playerID, ok := sessionParams(ctx)
	if !ok {
		return
	}

	if err := mc.sessions.Close(id, playerID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// records lists the best completions for a maze shape.
func (mc *MazeController) records(ctx *gin.Context) {
	width, errW := strconv.Atoi(ctx.Query("width"))
	height, errH := strconv.Atoi(ctx.Query("height"))
	if errW != nil || errH != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "width and height are required"})
		return
	}
	circular := ctx.Query("circular") == "true"

	limit := int64(defaultRecordsLimit)
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	top, err := mc.sessions.Records(ctx.Request.Context(), width, height, circular, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]RecordResponse, 0, len(top))
	for _, r := range top {
		response = append(response, RecordResponse{PlayerID: r.Member, Moves: int(r.Score)})
	}
	ctx.JSON(http.StatusOK, response)
}

// sessionParams reads the session ID from the path and the player from the token.
// It writes the error response itself when either is missing.
func sessionParams(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unknown player"})
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, uuid.Nil, false
	}
	return id, playerID, true
}

// respondError maps service and maze errors to HTTP statuses.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNotSessionOwner):
		status = http.StatusForbidden
	case errors.Is(err, maze.ErrIllegalTransition):
		status = http.StatusConflict
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrInvalidDirection),
		errors.Is(err, service.ErrDimensionTooLarge),
		errors.Is(err, service.ErrUnknownAction):
		status = http.StatusBadRequest
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
