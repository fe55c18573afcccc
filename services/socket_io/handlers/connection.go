package handlers

import (
	"Gobang/services/session"

	log "github.com/sirupsen/logrus"
)

// Submitter queues a command for the session processor
type Submitter interface {
	Submit(env session.Envelope) bool
}

// Function to handle every gameplay event of a client. The arguments are parsed into a
// command and queued; malformed events are dropped without telling the client.
func HandleCommand(processor Submitter, playerID string, event string) func(args ...interface{}) {
	return func(args ...interface{}) {
		cmd, err := ParseCommand(event, args)
		if err != nil {
			log.Debugf("[EVENT-ERROR] %s from player %s dropped: %v", event, playerID, err)
			return
		}
		if !processor.Submit(session.Envelope{PlayerID: playerID, Command: cmd}) {
			log.Warnf("[EVENT-ERROR] %s from player %s arrived after shutdown", event, playerID)
		}
	}
}

// Function to handle socket.io client disconnections. Leaving the room, forgetting the
// player and dropping the connection all happen in order on the processor.
func HandleDisconnect(processor Submitter, playerID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		reason := ""
		if len(args) > 0 {
			reason, _ = args[0].(string)
		}
		log.Infof("[DISCONNECT] Player %s disconnecting, reason: %q", playerID, reason)
		processor.Submit(session.Envelope{PlayerID: playerID, Command: session.Disconnect{}})
	}
}
