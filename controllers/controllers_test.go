package controllers

import (
	"Gobang/models"
	"Gobang/models/postgres"
	redis_models "Gobang/models/redis"
	"Gobang/services/players"
	"Gobang/services/rooms"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(r *gin.Engine, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", Ping)

	w := serve(router, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func roomsRouter(registry *rooms.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/rooms", ListRooms(registry))
	router.GET("/api/rooms/search", SearchRooms(registry))
	router.GET("/api/rooms/:id", GetRoom(registry))
	return router
}

func TestRoomEndpoints(t *testing.T) {
	registry := rooms.NewRegistry()
	first := registry.CreateRoom("Quiet corner")
	second := registry.CreateRoom("Blitz")
	_, err := registry.Enter(second.ID, "alice")
	require.NoError(t, err)
	_, err = registry.Seat(second.ID, "alice", 1)
	require.NoError(t, err)
	router := roomsRouter(registry)

	t.Run("list is newest first", func(t *testing.T) {
		w := serve(router, "/api/rooms")
		require.Equal(t, http.StatusOK, w.Code)
		var got []models.RoomSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, second.ID, got[0].ID)
		assert.Equal(t, models.Seats{"", "alice"}, got[0].Players)
		assert.Equal(t, first.ID, got[1].ID)
	})

	t.Run("search ignores case", func(t *testing.T) {
		w := serve(router, "/api/rooms/search?q=QUIET")
		require.Equal(t, http.StatusOK, w.Code)
		var got []models.RoomSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, first.ID, got[0].ID)
	})

	t.Run("search without matches is an empty list", func(t *testing.T) {
		w := serve(router, "/api/rooms/search?q=nothing-here")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("get room", func(t *testing.T) {
		w := serve(router, "/api/rooms/"+second.ID)
		require.Equal(t, http.StatusOK, w.Code)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, second.ID, got["id"])
		assert.Equal(t, []interface{}{nil, "alice"}, got["players"])
		assert.Equal(t, "idle", got["status"])
		assert.Nil(t, got["settlementEndTime"])
		assert.Len(t, got["board"], 15)
	})

	t.Run("unknown room", func(t *testing.T) {
		w := serve(router, "/api/rooms/missing")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Room not found"}`, w.Body.String())
	})
}

type onlineSet map[string]bool

func (s onlineSet) Online(playerID string) bool { return s[playerID] }

func TestIdentityIsStickyAcrossRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	online := onlineSet{}
	router := gin.New()
	router.Use(sessions.Sessions("test", cookie.NewStore([]byte("secret"))))
	router.GET("/api/identity", Identity(online))

	w := serve(router, "/api/identity")
	require.Equal(t, http.StatusOK, w.Code)
	var first struct {
		PlayerID string `json:"playerId"`
		Online   bool   `json:"online"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	_, err := uuid.Parse(first.PlayerID)
	require.NoError(t, err)
	assert.False(t, first.Online)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	online[first.PlayerID] = true

	w = serve(router, "/api/identity", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	var second struct {
		PlayerID string `json:"playerId"`
		Online   bool   `json:"online"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.PlayerID, second.PlayerID)
	assert.True(t, second.Online)
}

type fakeHistory struct {
	records   []postgres.MatchRecord
	err       error
	lastLimit int
}

func (h *fakeHistory) Recent(ctx context.Context, limit int) ([]postgres.MatchRecord, error) {
	h.lastLimit = limit
	return h.records, h.err
}

func TestRecentMatches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	winner := "alice"
	history := &fakeHistory{records: []postgres.MatchRecord{
		{ID: 2, RoomID: "r2", BlackID: "alice", WhiteID: "bob", WinnerID: &winner, Reason: "win", Moves: 9},
	}}
	router := gin.New()
	router.GET("/api/matches", RecentMatches(history))

	w := serve(router, "/api/matches?limit=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, history.lastLimit)
	var got []postgres.MatchRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].RoomID)

	w = serve(router, "/api/matches")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, history.lastLimit)

	w = serve(router, "/api/matches?limit=lots")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	history.err = errors.New("connection refused")
	w = serve(router, "/api/matches")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRecentMatchesDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/matches", RecentMatches(nil))

	w := serve(router, "/api/matches")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

type fixedQueue int

func (q fixedQueue) Pending() int { return int(q) }

func TestStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	directory := players.NewDirectory()
	directory.Connect("sock-1", "")
	directory.Connect("sock-2", "")
	registry := rooms.NewRegistry()
	registry.CreateRoom("only")

	router := gin.New()
	router.GET("/api/stats", Stats(directory, registry, fixedQueue(3)))

	w := serve(router, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"players":2,"rooms":1,"pendingCommands":3}`, w.Body.String())
}

type fakeSnapshots struct {
	snapshot *redis_models.LobbySnapshot
	err      error
	count    int
	countErr error
}

func (f *fakeSnapshots) GetLobbySnapshot(ctx context.Context) (*redis_models.LobbySnapshot, error) {
	return f.snapshot, f.err
}

func (f *fakeSnapshots) GetLobbyRoomCount(ctx context.Context) (int, error) {
	return f.count, f.countErr
}

func TestLobbySnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reader := &fakeSnapshots{err: fmt.Errorf("error getting lobby snapshot: %w", redis.Nil)}
	router := gin.New()
	router.GET("/api/lobby/snapshot", LobbySnapshot(reader))

	w := serve(router, "/api/lobby/snapshot")
	assert.Equal(t, http.StatusNotFound, w.Code, "nothing mirrored yet")

	reader.err = nil
	reader.snapshot = &redis_models.LobbySnapshot{
		Rooms:     []models.RoomSummary{{ID: "r1", Name: "Room 1", Status: models.StatusIdle}},
		UpdatedAt: 1700,
	}
	reader.count = 1
	w = serve(router, "/api/lobby/snapshot")
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Rooms     []models.RoomSummary `json:"rooms"`
		UpdatedAt int64                `json:"updatedAt"`
		RoomCount int                  `json:"roomCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Rooms, 1)
	assert.Equal(t, "r1", got.Rooms[0].ID)
	assert.Equal(t, int64(1700), got.UpdatedAt)
	assert.Equal(t, 1, got.RoomCount)

	reader.countErr = errors.New("connection refused")
	w = serve(router, "/api/lobby/snapshot")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	reader.err = errors.New("connection refused")
	w = serve(router, "/api/lobby/snapshot")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLobbySnapshotDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/lobby/snapshot", LobbySnapshot(nil))

	w := serve(router, "/api/lobby/snapshot")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
