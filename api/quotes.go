package api

import (
	"fmt"
	"net/http"
	"time"

	db "github.com/banachtech/fxsmile/db/sqlc"
	"github.com/banachtech/fxsmile/smile"
	"github.com/banachtech/fxsmile/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type quoteRequest struct {
	Pair string  `json:"pair" binding:"required"`
	Date string  `json:"date"`
	Spot float64 `json:"spot" binding:"required"`
	ATM  float64 `json:"atm" binding:"required"`
	RR25 float64 `json:"rr25"`
	RR10 float64 `json:"rr10"`
	BF25 float64 `json:"bf25"`
	BF10 float64 `json:"bf10"`
	Texp float64 `json:"texp" binding:"required"`
}

func (server *Server) insertQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if !slices.Contains(DefaultPairs, req.Pair) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": fmt.Sprintf("unsupported pair %v", req.Pair)})
		return
	}

	// reject quotes that do not define a buildable curve
	q := smile.Quotes{Spot: req.Spot, ATM: req.ATM, RR25: req.RR25, RR10: req.RR10, BF25: req.BF25, BF10: req.BF10, Texp: req.Texp}
	if _, err := smile.Build(q, 1.0); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(util.Layout)
	} else if _, err := time.Parse(util.Layout, date); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	row, err := server.store.InsertQuote(c, db.InsertQuoteParams{
		Date: date,
		Pair: req.Pair,
		Spot: req.Spot,
		Atm:  req.ATM,
		Rr25: req.RR25,
		Rr10: req.RR10,
		Bf25: req.BF25,
		Bf10: req.BF10,
		Texp: req.Texp,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, row)
}
