package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	paymentdomain "github.com/hotspotlabs/netpass/internal/payment/domain"
	"go.uber.org/zap"
)

// HandlePaystackWebhook acknowledges every delivery the gateway could act on
// a rejection for: only an unparseable body or a bad signature are refused.
// Semantic failures are acknowledged so the gateway does not retry forever;
// incomplete reconciliations are left unprocessed and repaired by the
// gateway's own redelivery.
func (s *Server) HandlePaystackWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, paymentdomain.ErrInvalidPayload)
		return
	}

	err = s.webhookSvc.IngestWebhook(c.Request.Context(), payload, c.Request.Header)
	switch {
	case err == nil,
		errors.Is(err, paymentdomain.ErrEventAlreadyProcessed):
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, paymentdomain.ErrInvalidPayload),
		errors.Is(err, paymentdomain.ErrInvalidSignature):
		AbortWithError(c, err)
	default:
		s.log.Warn("webhook acknowledged with processing error", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
