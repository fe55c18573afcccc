package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format string every time, potentially confusing the key format.
 */

import "fmt"

const lobbyPrefix = "lobby"

func FormatLobbyRoomsKey() string {
	return fmt.Sprintf("%s:rooms", lobbyPrefix)
}

func FormatLobbyRoomCountKey() string {
	return fmt.Sprintf("%s:rooms:count", lobbyPrefix)
}
