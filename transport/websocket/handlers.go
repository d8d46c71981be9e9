package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/transport/dto"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errCellRequired   = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	game, err := that.uGame.NewGame(ctx, payload.AiFirst)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to create game: %w", err)
	}

	return gamePayload(game), nil
}

func (that *Server) handleGetGame(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	return gamePayloadOrError(that.uGame.GetGame(ctx, payload.GameID))
}

func (that *Server) handleGameTurn(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	if payload.Cell == nil {
		return ResponsePayload{}, errCellRequired
	}

	return gamePayloadOrError(that.uGame.MakeTurn(ctx, payload.GameID, *payload.Cell))
}

func (that *Server) handleRestartGame(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	return gamePayloadOrError(that.uGame.Restart(ctx, payload.GameID, payload.AiFirst))
}

func (that *Server) handleDeleteGame(ctx context.Context, payload *RequestPayload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	if err := that.uGame.DeleteGame(ctx, payload.GameID); err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Deleted: payload.GameID}, nil
}

func gamePayload(game *entity.Game) ResponsePayload {
	return ResponsePayload{Game: dto.NewGameResponse(game)}
}

func gamePayloadOrError(game *entity.Game, err error) (ResponsePayload, error) {
	if err != nil {
		return ResponsePayload{}, err
	}

	return gamePayload(game), nil
}

// errorPayload - client errors are sent as is, anything else is logged and hidden.
func (that *Server) errorPayload(log *slog.Logger, err error) ResponsePayload {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameNotFound),
		errors.Is(err, errGameIDRequired),
		errors.Is(err, errCellRequired):
		return ResponsePayload{Error: err.Error()}
	default:
		log.Error("failed to process message", "error", err)
		return ResponsePayload{Error: "internal error"}
	}
}
