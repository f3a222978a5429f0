package api

import (
	"fmt"
	"net/http"
	"time"

	db "github.com/banachtech/fxsmile/db/sqlc"
	"github.com/banachtech/fxsmile/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Email string `json:"email"`
}

func (server *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": "Error JSON binding, please check your JSON input"})
		return
	}
	if req.Email == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "msg": "Please enter a valid email"})
		return
	}

	prefix, apiKey, err := util.GenerateKey()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "msg": fmt.Sprintf("Failed generate api key: %s", err)})
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(apiKey), 14)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "msg": fmt.Sprintf("Failed generate api key: %s", err)})
		return
	}

	now := time.Now()
	user, err := server.store.CreateUser(c, db.CreateUserParams{
		EmailAddress: req.Email,
		Prefix:       prefix,
		Token:        string(hashed),
		GeneratedAt:  now.Format(Layout2),
		ExpiredAt:    now.AddDate(0, 6, 0).Format(Layout2),
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	// the key is shown once, only its hash is stored
	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"email":   user.EmailAddress,
		"api_key": apiKey,
		"expires": user.ExpiredAt,
		"msg":     "registered successfully",
	})
}
