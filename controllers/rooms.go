package controllers

import (
	"Gobang/models"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RoomLister is the read side of the room registry
type RoomLister interface {
	ListRooms() []models.Room
	SearchRooms(keyword string) []models.Room
	Room(roomID string) (models.Room, bool)
}

func summaries(rooms []models.Room) []models.RoomSummary {
	out := make([]models.RoomSummary, 0, len(rooms))
	for i := range rooms {
		out = append(out, rooms[i].Summary())
	}
	return out
}

// @Summary List rooms
// @Description Returns a summary of every open room, newest first
// @Tags rooms
// @Produce json
// @Success 200 {array} models.RoomSummary
// @Router /api/rooms [get]
func ListRooms(registry RoomLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, summaries(registry.ListRooms()))
	}
}

// @Summary Search rooms
// @Description Case-insensitive match on room name or id. An empty query lists every room.
// @Tags rooms
// @Produce json
// @Param q query string false "Keyword"
// @Success 200 {array} models.RoomSummary
// @Router /api/rooms/search [get]
func SearchRooms(registry RoomLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := strings.TrimSpace(c.Query("q"))
		c.JSON(http.StatusOK, summaries(registry.SearchRooms(keyword)))
	}
}

// @Summary Get a room
// @Description Full snapshot of a room: seats, board, draw state and chat
// @Tags rooms
// @Produce json
// @Param id path string true "Room id"
// @Success 200 {object} models.Room
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{id} [get]
func GetRoom(registry RoomLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		room, ok := registry.Room(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusOK, room)
	}
}
