package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type mockGameUseCase struct {
	mock.Mock
}

func (m *mockGameUseCase) NewGame(ctx context.Context, aiFirst bool) (*entity.Game, error) {
	args := m.Called(ctx, aiFirst)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameUseCase) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameUseCase) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	args := m.Called(ctx, id, cell)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameUseCase) DeleteGame(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockGameUseCase) Restart(ctx context.Context, id string, aiFirst bool) (*entity.Game, error) {
	args := m.Called(ctx, id, aiFirst)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func newTestServer(t *testing.T) (*httptest.Server, *mockGameUseCase) {
	t.Helper()

	uGame := &mockGameUseCase{}
	t.Cleanup(func() { uGame.AssertExpectations(t) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(NewRouter(logger, uGame))
	t.Cleanup(server.Close)

	return server, uGame
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeGame(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

func TestPing(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestHandlers_CreateGame(t *testing.T) {
	t.Run("Creates a game with the computer first", func(t *testing.T) {
		// Given: a use case that opens with the first cell
		server, uGame := newTestServer(t)
		game := entity.NewGame("g1", true)
		game.Board[0] = entity.AiMark
		game.Turn = entity.PlayerMark
		uGame.On("NewGame", mock.Anything, true).Return(game, nil).Once()

		// When: posting a new game request
		resp := post(t, server.URL+"/games", `{"ai_first":true}`)

		// Then: the created game is returned
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeGame(t, resp)
		assert.Equal(t, "g1", body["id"])
		assert.Equal(t, "X", body["turn"])
		assert.Equal(t, entity.StatusOngoing, body["status"])
		assert.Equal(t, []any{"O", "", "", "", "", "", "", "", ""}, body["board"])
	})

	t.Run("Empty body means the player starts", func(t *testing.T) {
		server, uGame := newTestServer(t)
		uGame.On("NewGame", mock.Anything, false).Return(entity.NewGame("g1", false), nil).Once()

		resp := post(t, server.URL+"/games", "")

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Malformed body", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp := post(t, server.URL+"/games", "{")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandlers_MakeTurn(t *testing.T) {
	t.Run("Returns the game after both moves", func(t *testing.T) {
		// Given: a use case that answers the corner with the center
		server, uGame := newTestServer(t)
		game := entity.NewGame("g1", false)
		game.Board[0] = entity.PlayerMark
		game.Board[4] = entity.AiMark
		uGame.On("MakeTurn", mock.Anything, "g1", 0).Return(game, nil).Once()

		// When: the player posts a turn
		resp := post(t, server.URL+"/games/g1/turns", `{"cell":0}`)

		// Then: both marks are on the board
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeGame(t, resp)
		assert.Equal(t, []any{"X", "", "", "", "O", "", "", "", ""}, body["board"])
		assert.Equal(t, "", body["outcome"])
	})

	t.Run("Finished game reports the outcome", func(t *testing.T) {
		// Given: a use case where the computer completes the diagonal
		server, uGame := newTestServer(t)
		game := entity.NewGame("g1", false)
		game.Board = entity.Board{
			entity.AiMark, entity.PlayerMark, entity.PlayerMark,
			entity.EmptyCell, entity.AiMark, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerMark, entity.AiMark,
		}
		game.Turn = entity.EmptyCell
		uGame.On("MakeTurn", mock.Anything, "g1", 7).Return(game, nil).Once()

		// When: the player posts a turn
		resp := post(t, server.URL+"/games/g1/turns", `{"cell":7}`)

		// Then: the computer win is reported
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeGame(t, resp)
		assert.Equal(t, entity.StatusFinished, body["status"])
		assert.Equal(t, "ai_wins", body["outcome"])
	})

	t.Run("Missing cell", func(t *testing.T) {
		server, _ := newTestServer(t)

		resp := post(t, server.URL+"/games/g1/turns", `{}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	errorCases := []struct {
		err    error
		status int
	}{
		{err: apperror.ErrInvalidMove, status: http.StatusBadRequest},
		{err: apperror.ErrNotYourTurn, status: http.StatusConflict},
		{err: apperror.ErrGameFinished, status: http.StatusConflict},
		{err: apperror.ErrGameNotFound, status: http.StatusNotFound},
		{err: io.ErrUnexpectedEOF, status: http.StatusInternalServerError},
	}

	for _, tc := range errorCases {
		t.Run(fmt.Sprintf("Maps %v to %d", tc.err, tc.status), func(t *testing.T) {
			// Given: a use case failing with the error
			server, uGame := newTestServer(t)
			uGame.On("MakeTurn", mock.Anything, "g1", 3).
				Return(nil, fmt.Errorf("failed to make turn: %w", tc.err)).
				Once()

			// When: the player posts a turn
			resp := post(t, server.URL+"/games/g1/turns", `{"cell":3}`)

			// Then: the status code follows the error
			assert.Equal(t, tc.status, resp.StatusCode)

			var body errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandlers_GetGame(t *testing.T) {
	t.Run("Returns the stored game", func(t *testing.T) {
		server, uGame := newTestServer(t)
		uGame.On("GetGame", mock.Anything, "g1").Return(entity.NewGame("g1", false), nil).Once()

		resp, err := http.Get(server.URL + "/games/g1")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "g1", decodeGame(t, resp)["id"])
	})

	t.Run("Unknown game", func(t *testing.T) {
		server, uGame := newTestServer(t)
		uGame.On("GetGame", mock.Anything, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		resp, err := http.Get(server.URL + "/games/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHandlers_RestartGame(t *testing.T) {
	// Given: a use case that restarts the game with the player first
	server, uGame := newTestServer(t)
	uGame.On("Restart", mock.Anything, "g1", false).Return(entity.NewGame("g1", false), nil).Once()

	// When: posting a restart
	resp := post(t, server.URL+"/games/g1/restart", `{"ai_first":false}`)

	// Then: an empty board is returned
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeGame(t, resp)
	assert.Equal(t, []any{"", "", "", "", "", "", "", "", ""}, body["board"])
}

func TestHandlers_DeleteGame(t *testing.T) {
	t.Run("Deletes the game", func(t *testing.T) {
		// Given: a use case that deletes the game
		server, uGame := newTestServer(t)
		uGame.On("DeleteGame", mock.Anything, "g1").Return(nil).Once()

		// When: sending DELETE
		req, err := http.NewRequest(http.MethodDelete, server.URL+"/games/g1", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: 204 without a body
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Unknown game", func(t *testing.T) {
		server, uGame := newTestServer(t)
		uGame.On("DeleteGame", mock.Anything, "missing").Return(fmt.Errorf("failed to delete game: %w", apperror.ErrGameNotFound)).Once()

		req, err := http.NewRequest(http.MethodDelete, server.URL+"/games/missing", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
