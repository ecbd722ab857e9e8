package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	customerservice "github.com/hotspotlabs/netpass/internal/customer/service"
)

func (s *Server) GetSubscriptionStatus(c *gin.Context) {
	email, err := customerservice.NormalizeEmail(c.Query("email"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	status, err := s.subscriptionSvc.GetStatus(c.Request.Context(), email)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": status})
}

func (s *Server) ListTransactions(c *gin.Context) {
	email, err := customerservice.NormalizeEmail(c.Query("email"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	history, err := s.ledgerSvc.History(c.Request.Context(), email)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": history})
}
