package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/hotspotlabs/netpass/internal/customer/domain"
	gatewaydomain "github.com/hotspotlabs/netpass/internal/gateway/domain"
	ledgerdomain "github.com/hotspotlabs/netpass/internal/ledger/domain"
	paymentdomain "github.com/hotspotlabs/netpass/internal/payment/domain"
	subscriptiondomain "github.com/hotspotlabs/netpass/internal/subscription/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware converts the last gin error into a JSON response
// once the handler chain has finished, unless a body was already written.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error { return ErrInvalidRequest }

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, paymentdomain.ErrInvalidSignature):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "invalid signature",
		}
	case errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		if _, ok := gatewaydomain.AsGatewayError(err); ok {
			return http.StatusBadGateway, errorPayload{
				Type:    "gateway_error",
				Message: "payment gateway error",
			}
		}
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, customerdomain.ErrInvalidEmail) ||
		errors.Is(err, ledgerdomain.ErrInvalidTransaction) ||
		errors.Is(err, ledgerdomain.ErrInvalidWindow) ||
		errors.Is(err, subscriptiondomain.ErrInvalidRequest) ||
		errors.Is(err, subscriptiondomain.ErrInvalidWindow) ||
		errors.Is(err, paymentdomain.ErrInvalidPayload) ||
		errors.Is(err, paymentdomain.ErrInvalidEvent) ||
		errors.Is(err, paymentdomain.ErrInvalidEmail) ||
		errors.Is(err, paymentdomain.ErrInvalidAmount)
}
