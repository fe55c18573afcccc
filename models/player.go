package models

/*
 * 'Player' is a connected participant. The id is stable across reconnects when
 * the client presents it again in the handshake; the socket id changes.
 */
type Player struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	SocketID string `json:"-"`
}
