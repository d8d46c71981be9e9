package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	NewGame(ctx context.Context, aiFirst bool) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	Restart(ctx context.Context, id string, aiFirst bool) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type handlerFunc func(ctx context.Context, payload *RequestPayload) (ResponsePayload, error)

type Server struct {
	logger   *slog.Logger
	uGame    gameUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the UI is served from another origin
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameGet] = server.handleGetGame
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameRestart] = server.handleRestartGame
	server.handlers[actionGameDelete] = server.handleDeleteGame

	return server
}

// Handler - returns the http handler serving /ws.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server, it stops when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client one at a time until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
			time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("error reading message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendMessage(conn, actionError, ResponsePayload{Error: "malformed message"}); err != nil {
				return err
			}

			continue
		}

		if err = that.processMessage(ctx, conn, &message); err != nil {
			return err
		}
	}
}

func (that *Server) processMessage(ctx context.Context, conn *websocket.Conn, message *Message) error {
	log := that.logger.With("method", "processMessage", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action")
		return that.sendMessage(conn, message.Action, ResponsePayload{Error: "unknown action"})
	}

	var payload RequestPayload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Warn("failed to unmarshal payload", "error", err)
			return that.sendMessage(conn, message.Action, ResponsePayload{Error: "malformed payload"})
		}
	}

	response, err := handler(ctx, &payload)
	if err != nil {
		return that.sendMessage(conn, message.Action, that.errorPayload(log, err))
	}

	return that.sendMessage(conn, message.Action, response)
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
