package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playforge/tictactoe-web/internal/entity"
	"github.com/playforge/tictactoe-web/internal/game"
	"github.com/playforge/tictactoe-web/internal/repository"
	"github.com/playforge/tictactoe-web/internal/usecase"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	m, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, repository.NewPreferenceRepository(client))
	server := New(logger, manager)

	ts := httptest.NewServer(http.HandlerFunc(server.serveWS))
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func sendAction(t *testing.T, conn *websocket.Conn, action string, payload any) ResponsePayload {
	t.Helper()

	message := Message{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		message.Payload = raw
	}

	require.NoError(t, conn.WriteJSON(message))

	var response Message
	require.NoError(t, conn.ReadJSON(&response))
	require.Equal(t, action, response.Action)

	var responsePayload ResponsePayload
	require.NoError(t, json.Unmarshal(response.Payload, &responsePayload))

	return responsePayload
}

func TestServer_Connect(t *testing.T) {
	conn := dialTestServer(t)

	// When: the client connects
	payload := sendAction(t, conn, ActionConnect, nil)

	// Then: it gets its session and an empty in-progress board
	require.NotEmpty(t, payload.Session)
	require.NotNil(t, payload.Game)
	require.Equal(t, [9]string{}, payload.Game.Board)
	require.Equal(t, game.PlayerX, payload.Game.Turn)
	require.Equal(t, entity.StatusOngoing, payload.Game.Status)
}

func TestServer_GameTurn(t *testing.T) {
	t.Run("Plays a game through to a win", func(t *testing.T) {
		conn := dialTestServer(t)

		// When: X and O trade moves to a top row win for X
		var payload ResponsePayload
		for _, cell := range []int{0, 4, 1, 5, 2} {
			cell := cell
			payload = sendAction(t, conn, ActionGameTurn, TurnPayload{Cell: &cell})
			require.NotNil(t, payload.Game)
		}

		// Then: the final state reports the win
		require.Equal(t, entity.StatusFinished, payload.Game.Status)
		require.Equal(t, game.PlayerX, payload.Game.Winner)
		require.Empty(t, payload.Game.Turn)
	})

	t.Run("Rejected click echoes the unchanged state", func(t *testing.T) {
		conn := dialTestServer(t)

		cell := 0
		before := sendAction(t, conn, ActionGameTurn, TurnPayload{Cell: &cell})

		// When: the same cell is clicked again
		after := sendAction(t, conn, ActionGameTurn, TurnPayload{Cell: &cell})

		// Then: the click is ignored and the state is unchanged
		require.NotNil(t, after.Game)
		assert.Equal(t, *before.Game, *after.Game)
	})
}

func TestServer_GameRestart(t *testing.T) {
	conn := dialTestServer(t)

	cell := 0
	sendAction(t, conn, ActionGameTurn, TurnPayload{Cell: &cell})

	// When: the client restarts
	payload := sendAction(t, conn, ActionGameRestart, nil)

	// Then: the board is empty again with X to move
	require.NotNil(t, payload.Game)
	assert.Equal(t, [9]string{}, payload.Game.Board)
	assert.Equal(t, game.PlayerX, payload.Game.Turn)
	assert.Equal(t, entity.StatusOngoing, payload.Game.Status)
}
