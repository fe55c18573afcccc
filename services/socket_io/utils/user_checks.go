package socketio_utils

import (
	"github.com/zishang520/socket.io/v2/socket"
)

// Function that reads the player id a client asks to keep, sent in the handshake as
// `auth: { playerId }`. It returns "" when the client did not send one.
func RequestedPlayerID(client *socket.Socket) string {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		return ""
	}
	playerID, _ := authData["playerId"].(string)
	return playerID
}
