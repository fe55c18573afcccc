package controllers

import (
	"Gobang/models/postgres"
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// MatchHistory is the read side of the match store
type MatchHistory interface {
	Recent(ctx context.Context, limit int) ([]postgres.MatchRecord, error)
}

// @Summary Recent matches
// @Description Finished games, newest first. limit defaults to 20 and is capped at 100.
// @Tags matches
// @Produce json
// @Param limit query int false "How many records"
// @Success 200 {array} postgres.MatchRecord
// @Failure 400 {object} object{error=string}
// @Failure 503 {object} object{error=string}
// @Router /api/matches [get]
func RecentMatches(history MatchHistory) gin.HandlerFunc {
	return func(c *gin.Context) {
		if history == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Match history is disabled"})
			return
		}

		limit := 0
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
				return
			}
			limit = n
		}

		records, err := history.Recent(c.Request.Context(), limit)
		if err != nil {
			log.Errorf("[MATCHES-ERROR] %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying match history"})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}
