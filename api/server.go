package api

import (
	db "github.com/banachtech/fxsmile/db/sqlc"
	"github.com/gin-gonic/gin"
)

var DefaultPairs = []string{"AUDUSD", "EURGBP", "EURJPY", "EURUSD", "GBPUSD", "NZDUSD", "USDCAD", "USDCHF", "USDJPY"}

// Server serves HTTP requests for our vol smile service.
type Server struct {
	store  db.Store
	router *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store) *Server {
	server := &Server{store: store}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	router.POST("/register", server.register)

	authRoutes := router.Group("/v1").Use(server.authentication)
	authRoutes.POST("/smile", server.smile)
	authRoutes.POST("/quotes", server.insertQuote)
	authRoutes.POST("/update", server.update)
	authRoutes.POST("/hedgecost", server.hedgeCost)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
