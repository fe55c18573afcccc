package routes

import (
	"Gobang/controllers"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RoutesOptions carries what the REST controllers read from. History and Lobby
// are nil when postgres or redis are not configured.
type RoutesOptions struct {
	Rooms     controllers.RoomLister
	Directory controllers.PlayerDirectory
	Commands  controllers.CommandQueue
	History   controllers.MatchHistory
	Lobby     controllers.LobbySnapshotReader
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, opts RoutesOptions) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/ping", controllers.Ping)

	api := router.Group("/api")
	{
		api.GET("/identity", controllers.Identity(opts.Directory))
		api.GET("/stats", controllers.Stats(opts.Directory, opts.Rooms, opts.Commands))

		api.GET("/rooms", controllers.ListRooms(opts.Rooms))
		api.GET("/rooms/search", controllers.SearchRooms(opts.Rooms))
		api.GET("/rooms/:id", controllers.GetRoom(opts.Rooms))
		api.GET("/lobby/snapshot", controllers.LobbySnapshot(opts.Lobby))

		api.GET("/matches", controllers.RecentMatches(opts.History))
	}
}
