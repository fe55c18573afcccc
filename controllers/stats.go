package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlayerDirectory is what the REST side reads about connected players
type PlayerDirectory interface {
	OnlineChecker
	Count() int
}

// CommandQueue reports how many socket commands wait to be processed
type CommandQueue interface {
	Pending() int
}

// @Summary Server counters
// @Description Connected players, open rooms and socket commands waiting in the queue
// @Tags test
// @Produce json
// @Success 200 {object} object{players=int,rooms=int,pendingCommands=int}
// @Router /api/stats [get]
func Stats(directory PlayerDirectory, registry RoomLister, commands CommandQueue) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"players":         directory.Count(),
			"rooms":           len(registry.ListRooms()),
			"pendingCommands": commands.Pending(),
		})
	}
}
