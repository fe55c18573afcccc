package handlers

import (
	"Gobang/services/session"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	envelopes []session.Envelope
	closed    bool
}

func (f *fakeSubmitter) Submit(env session.Envelope) bool {
	if f.closed {
		return false
	}
	f.envelopes = append(f.envelopes, env)
	return true
}

func TestHandleCommandQueuesParsedCommand(t *testing.T) {
	sub := &fakeSubmitter{}

	HandleCommand(sub, "p1", EventMove)(float64(3), float64(4))
	HandleCommand(sub, "p1", EventMove)("oops")
	HandleCommand(sub, "p1", EventSit)(float64(0))

	require.Len(t, sub.envelopes, 2)
	assert.Equal(t, session.Envelope{PlayerID: "p1", Command: session.Move{X: 3, Y: 4}}, sub.envelopes[0])
	assert.Equal(t, session.Envelope{PlayerID: "p1", Command: session.Sit{Seat: 0}}, sub.envelopes[1])

	sub.closed = true
	HandleCommand(sub, "p1", EventStand)()
	assert.Len(t, sub.envelopes, 2)
}

func TestHandleDisconnect(t *testing.T) {
	sub := &fakeSubmitter{}
	HandleDisconnect(sub, "p1")("transport close")
	require.Len(t, sub.envelopes, 1)
	assert.Equal(t, session.Disconnect{}, sub.envelopes[0].Command)
}
