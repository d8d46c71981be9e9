package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/transport/dto"
)

type gameUseCase interface {
	NewGame(ctx context.Context, aiFirst bool) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	Restart(ctx context.Context, id string, aiFirst bool) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type handlers struct {
	logger *slog.Logger
	uGame  gameUseCase
}

type newGameRequest struct {
	AiFirst bool `json:"ai_first"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errMissingCell = errors.New("cell is required")

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := decodeOptional(r.Body, &req); err != nil {
		that.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	game, err := that.uGame.NewGame(r.Context(), req.AiFirst)
	if err != nil {
		that.writeError(w, r, statusFromError(err), err)
		return
	}

	that.writeJSON(w, http.StatusCreated, dto.NewGameResponse(game))
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, statusFromError(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, dto.NewGameResponse(game))
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	if req.Cell == nil {
		that.writeError(w, r, http.StatusBadRequest, errMissingCell)
		return
	}

	game, err := that.uGame.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, r, statusFromError(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, dto.NewGameResponse(game))
}

func (that *handlers) restartGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := decodeOptional(r.Body, &req); err != nil {
		that.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	game, err := that.uGame.Restart(r.Context(), chi.URLParam(r, "id"), req.AiFirst)
	if err != nil {
		that.writeError(w, r, statusFromError(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, dto.NewGameResponse(game))
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, statusFromError(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeOptional - decodes body into v, an empty body keeps the defaults.
func decodeOptional(body io.Reader, v any) error {
	err := json.NewDecoder(body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotYourTurn), errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	message := err.Error()

	if status >= http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
