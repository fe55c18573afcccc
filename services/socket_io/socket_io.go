package socket_io

import (
	"Gobang/services/players"
	"Gobang/services/session"
	"Gobang/services/socket_io/handlers"
	socketio_types "Gobang/services/socket_io/types"
	socketio_utils "Gobang/services/socket_io/utils"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts socket.io on the router. Every connection gets a player identity
// and its events are queued on the processor.
func (sio *MySocketServer) Start(router *gin.Engine, processor handlers.Submitter, directory *players.Directory, corsOrigins []string) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(false)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      CorsOrigin(corsOrigins),
		Credentials: true,
	})

	// KEY: initialise the map, otherwise it panics
	if sio.PlayerConnections == nil {
		sio.PlayerConnections = make(map[string]*socket.Socket)
	}
	server := (*socketio_types.SocketServer)(sio)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		requested := socketio_utils.RequestedPlayerID(client)
		player := directory.Connect(string(client.Id()), requested)
		server.AddConnection(player.ID, client)

		log.Infof("[CONNECT] Socket %s is player %s (%s), %d connections",
			client.Id(), player.ID, player.Nickname, server.ConnectionCount())

		if !processor.Submit(session.Envelope{PlayerID: player.ID, Command: session.Connect{}}) {
			log.Warnf("[CONNECT-ERROR] Processor stopped, dropping socket %s", client.Id())
			server.RemoveConnection(player.ID)
			directory.Remove(player.ID)
			client.Disconnect(true)
			return
		}

		for _, event := range handlers.InboundEvents {
			client.On(event, handlers.HandleCommand(processor, player.ID, event))
		}

		// NOTE: will remove the connection from the map once processed
		client.On("disconnect", handlers.HandleDisconnect(processor, player.ID))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	log.Info("Socket server started")
}

// CorsOrigin turns the configured origins into the engine.io form. A "*" entry
// reflects the caller's origin so that credentialed polling requests still work.
func CorsOrigin(origins []string) any {
	allowed := make([]any, 0, len(origins))
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
		allowed = append(allowed, origin)
	}
	if len(allowed) == 0 {
		return true
	}
	return allowed
}

// Close disconnects every client
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
