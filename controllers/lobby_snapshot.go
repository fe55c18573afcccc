package controllers

import (
	redis_models "Gobang/models/redis"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// LobbySnapshotReader reads back what the lobby mirror stored
type LobbySnapshotReader interface {
	GetLobbySnapshot(ctx context.Context) (*redis_models.LobbySnapshot, error)
	GetLobbyRoomCount(ctx context.Context) (int, error)
}

// @Summary Mirrored lobby
// @Description The room listing as last written to redis, which is what readers outside this server see
// @Tags rooms
// @Produce json
// @Success 200 {object} object{rooms=[]models.RoomSummary,updatedAt=int,roomCount=int}
// @Failure 404 {object} object{error=string}
// @Failure 503 {object} object{error=string}
// @Router /api/lobby/snapshot [get]
func LobbySnapshot(reader LobbySnapshotReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if reader == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Lobby mirror is disabled"})
			return
		}

		snapshot, err := reader.GetLobbySnapshot(c.Request.Context())
		if errors.Is(err, redis.Nil) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No lobby snapshot stored yet"})
			return
		}
		if err != nil {
			log.Errorf("[LOBBY-SNAPSHOT-ERROR] %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading lobby snapshot"})
			return
		}

		count, err := reader.GetLobbyRoomCount(c.Request.Context())
		if err != nil {
			log.Errorf("[LOBBY-SNAPSHOT-ERROR] %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading lobby room count"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"rooms":     snapshot.Rooms,
			"updatedAt": snapshot.UpdatedAt,
			"roomCount": count,
		})
	}
}
