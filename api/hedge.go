package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/banachtech/fxsmile/hedge"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var (
	hedgeLimiters   = make(map[string]*rate.Limiter)
	hedgeLimitersMu sync.Mutex
)

func getHedgeLimiter(userID string) *rate.Limiter {
	hedgeLimitersMu.Lock()
	defer hedgeLimitersMu.Unlock()
	limiter, ok := hedgeLimiters[userID]
	if !ok {
		// Create a new rate limiter for the user if it doesn't exist
		limiter = rate.NewLimiter(rate.Every(time.Second), 2)
		hedgeLimiters[userID] = limiter
	}
	return limiter
}

type hedgeRequest struct {
	Vol          float64 `json:"vol"`
	Lambda       float64 `json:"lambda"`
	SpreadClient float64 `json:"spread_client"`
	SpreadDealer float64 `json:"spread_dealer"`
	DeltaLimit   float64 `json:"delta_limit"`
	FullHedge    *bool   `json:"full_hedge"`
	Steps        int     `json:"steps"`
	Runs         int     `json:"runs"`
	Seed         uint64  `json:"seed"`
}

func (server *Server) hedgeCost(c *gin.Context) {
	prefix, exists := c.Get("prefix")
	if !exists {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": "Authentication Error"})
		return
	}

	limiter := getHedgeLimiter(prefix.(string))

	// Check if the user has exceeded the rate limit
	if !limiter.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"status": http.StatusTooManyRequests, "msg": "Too Many Requests"})
		return
	}

	var req hedgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	sim := hedge.NewFlowSim()
	if req.Vol > 0 {
		sim.Vol = req.Vol
	}
	if req.Lambda > 0 {
		sim.Lambda = req.Lambda
		sim.TimeStep = 0.1 / req.Lambda
	}
	if req.SpreadClient > 0 {
		sim.SpreadClient = req.SpreadClient
	}
	if req.SpreadDealer > 0 {
		sim.SpreadDealer = req.SpreadDealer
	}
	if req.DeltaLimit > 0 {
		sim.DeltaLimit = req.DeltaLimit
	}
	if req.FullHedge != nil {
		sim.FullHedge = *req.FullHedge
	}
	if req.Steps > 0 {
		sim.Steps = req.Steps
	}
	if req.Runs > 0 {
		sim.Runs = req.Runs
	}
	sim.Seed = req.Seed

	// bound the work one request can ask for
	if sim.Steps > 10000 {
		sim.Steps = 10000
	}
	if sim.Runs > 100000 {
		sim.Runs = 100000
	}

	result := sim.Run()
	c.JSON(http.StatusOK, gin.H{"params": sim, "result": result})
}
