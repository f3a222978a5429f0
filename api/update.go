package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/banachtech/fxsmile/data"
	"github.com/banachtech/fxsmile/util"
	"github.com/gin-gonic/gin"
)

// update rolls every stored pair to the live spot, writing a fresh quote row
// per pair dated today. The vol quotes carry over unchanged.
func (server *Server) update(c *gin.Context) {
	pairs, err := server.store.ListPairs(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	rolled, err := data.Roll(c, server.store, pairs)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"msg":     fmt.Sprintf("quotes rolled at %s", time.Now().Format(util.Layout)),
		"updated": len(rolled),
		"quotes":  rolled,
	})
}
