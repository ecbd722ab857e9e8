package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	customerservice "github.com/hotspotlabs/netpass/internal/customer/service"
	gatewaydomain "github.com/hotspotlabs/netpass/internal/gateway/domain"
	paymentdomain "github.com/hotspotlabs/netpass/internal/payment/domain"
)

func (s *Server) InitializePayment(c *gin.Context) {
	var req struct {
		Email  string `json:"email"`
		Amount int64  `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	email, err := customerservice.NormalizeEmail(req.Email)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if req.Amount <= 0 {
		AbortWithError(c, invalidRequestError())
		return
	}

	auth, err := s.gateway.Initialize(c.Request.Context(), gatewaydomain.InitializeRequest{
		Email:  email,
		Amount: req.Amount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": auth})
}

// VerifyPayment is the return-URL flow: the portal asks the gateway for the
// charge outcome and, when it succeeded, applies it through the same
// reconciliation path the webhook uses. Whichever of the two arrives first
// wins; the other becomes a no-op.
func (s *Server) VerifyPayment(c *gin.Context) {
	reference := strings.TrimSpace(c.Param("reference"))
	if reference == "" {
		AbortWithError(c, invalidRequestError())
		return
	}

	record, err := s.gateway.Verify(c.Request.Context(), reference)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if record.Succeeded() {
		event := &paymentdomain.Event{
			Provider:  "paystack",
			Reference: record.Reference,
			Kind:      paymentdomain.EventKindChargeSucceeded,
			Email:     record.CustomerEmail,
			Amount:    record.Amount,
			PaidAt:    record.PaidAt,
		}
		if err := s.reconciler.ProcessEvent(c.Request.Context(), event); err != nil &&
			!errors.Is(err, paymentdomain.ErrEventAlreadyProcessed) {
			AbortWithError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": record})
}

func (s *Server) CreateTransfer(c *gin.Context) {
	var req struct {
		Recipient string `json:"recipient"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(req.Recipient) == "" || req.Amount <= 0 {
		AbortWithError(c, invalidRequestError())
		return
	}

	transfer, err := s.gateway.Transfer(c.Request.Context(), gatewaydomain.TransferRequest{
		Recipient: strings.TrimSpace(req.Recipient),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Reason:    req.Reason,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": transfer})
}
