package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListReservations(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	PatchReservationDiscount(c *ginext.Context)
	ToggleReservationPayment(c *ginext.Context)
	DeleteReservation(c *ginext.Context)
	GetSummary(c *ginext.Context)
	GetTimeSeries(c *ginext.Context)
	CreateClient(c *ginext.Context)
	UpdateClient(c *ginext.Context)
	DeleteClient(c *ginext.Context)
	GetClient(c *ginext.Context)
	ListClients(c *ginext.Context)
	CreateRoom(c *ginext.Context)
	GetRoom(c *ginext.Context)
	ListRooms(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.GET("/reservations", h.ListReservations)
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/summary", h.GetSummary)
		api.GET("/reservations/timeseries", h.GetTimeSeries)
		api.GET("/reservations/:id", h.GetReservation)
		api.PUT("/reservations/:id", h.UpdateReservation)
		api.PATCH("/reservations/:id/discount", h.PatchReservationDiscount)
		api.POST("/reservations/:id/payment", h.ToggleReservationPayment)
		api.DELETE("/reservations/:id", h.DeleteReservation)

		// Clients
		api.GET("/clients", h.ListClients)
		api.POST("/clients", h.CreateClient)
		api.GET("/clients/:id", h.GetClient)
		api.PUT("/clients/:id", h.UpdateClient)
		api.DELETE("/clients/:id", h.DeleteClient)

		// Rooms
		api.GET("/rooms", h.ListRooms)
		api.POST("/rooms", h.CreateRoom)
		api.GET("/rooms/:id", h.GetRoom)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
