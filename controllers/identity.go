package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session key holding the browser's player id
const PlayerIDKey = "PlayerID"

// OnlineChecker tells whether a player id currently has a live socket
type OnlineChecker interface {
	Online(playerID string) bool
}

// @Summary Get the player id of this browser
// @Description Returns the player id kept in the cookie session, creating one on first use.
// @Description Clients send it back as `auth.playerId` when opening the socket to keep their id.
// @Tags identity
// @Produce json
// @Success 200 {object} object{playerId=string,online=bool}
// @Failure 500 {object} object{error=string}
// @Router /api/identity [get]
func Identity(directory OnlineChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		playerID, _ := session.Get(PlayerIDKey).(string)
		if _, err := uuid.Parse(playerID); err != nil {
			playerID = uuid.NewString()
			session.Set(PlayerIDKey, playerID)
			if err := session.Save(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"playerId": playerID,
			"online":   directory.Online(playerID),
		})
	}
}
