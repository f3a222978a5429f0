package api

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/banachtech/fxsmile/data"
	"github.com/banachtech/fxsmile/smile"
	"github.com/banachtech/fxsmile/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type smileRequest struct {
	Pair       string        `json:"pair" binding:"required"`
	ExtrapFact float64       `json:"extrap_fact" binding:"required"`
	Texp       float64       `json:"texp"`
	Expiry     string        `json:"expiry"`
	Samples    int           `json:"samples"`
	Quotes     *smile.Quotes `json:"quotes"`
}

func (server *Server) smile(c *gin.Context) {
	var req smileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if !slices.Contains(DefaultPairs, req.Pair) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": fmt.Sprintf("unsupported pair %v", req.Pair)})
		return
	}

	var q smile.Quotes
	if req.Quotes != nil {
		q = *req.Quotes
	} else {
		var err error
		q, err = data.LatestQuotes(c, server.store, req.Pair)
		if err != nil {
			if err == sql.ErrNoRows {
				c.AbortWithStatusJSON(http.StatusNotFound, errorResponse(err))
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
			return
		}
	}

	// explicit year fraction wins over an expiry date
	if req.Texp > 0 {
		q.Texp = req.Texp
	} else if req.Expiry != "" {
		expiry, err := time.Parse(util.Layout, req.Expiry)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		now, _ := time.Parse(util.Layout, time.Now().Format(util.Layout))
		texp := util.YearFrac(now, expiry)
		if texp <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": "expiry must be a future date"})
			return
		}
		q.Texp = texp
	}

	model, err := smile.Build(q, req.ExtrapFact)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	samples := req.Samples
	if samples == 0 {
		samples = 33
	}
	if samples < 2 {
		samples = 2
	}
	if samples > 200 {
		samples = 200
	}

	lo, hi := model.Bounds()
	curve := make([]gin.H, samples)
	for i := 0; i < samples; i++ {
		x := lo + (hi-lo)*float64(i)/float64(samples-1)
		curve[i] = gin.H{"strike": x, "vol": model.Volatility(x)}
	}

	c.JSON(http.StatusOK, gin.H{
		"pair":    req.Pair,
		"quotes":  q,
		"bounds":  gin.H{"lo": lo, "hi": hi},
		"anchors": q.Anchors(),
		"curve":   curve,
	})
}
