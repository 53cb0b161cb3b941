package handlers

import (
	"errors"
	"net/http"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/backend"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"
	"github.com/UnicloudAfrica/uniclo-sub012/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidEntity  = pkg.NewDomainErrorSimple("INVALID_ENTITY", "Unknown entity kind or empty id", http.StatusBadRequest)
)

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapSessionError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_FAILED", "Stage requirements not met: "+string(validationErr.Stage), err, http.StatusUnprocessableEntity).WithDetails(validationErr.Fields)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Order session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownOrderContext):
		return pkg.NewDomainErrorSimple("UNKNOWN_ORDER_CONTEXT", "Unknown order context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Service profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTooManyProfiles), errors.Is(err, usecase.ErrTooFewProfiles):
		return pkg.NewDomainError("PROFILE_LIMIT", "Service profile limit reached", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrProfilesLocked):
		return pkg.NewDomainErrorSimple("PROFILES_LOCKED", "Service profiles cannot change after the services stage", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnresolvableProduct), errors.Is(err, usecase.ErrNoProfilesToSubmit):
		return pkg.NewDomainError("ORDER_NOT_SUBMITTABLE", "Order cannot be submitted", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidOrderResponse):
		return pkg.NewDomainError("INVALID_ORDER_RESPONSE", "Order service returned an unusable response", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrNoOrderSummary), errors.Is(err, usecase.ErrOrderSummaryNotFound):
		return pkg.NewDomainErrorSimple("ORDER_SUMMARY_NOT_FOUND", "No order has been created for this session", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayOptionNotFound):
		return pkg.NewDomainErrorSimple("GATEWAY_OPTION_NOT_FOUND", "Payment gateway option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotFound), errors.Is(err, usecase.ErrPaymentReferenceMissing):
		return pkg.NewDomainError("PAYMENT_STATUS_UNAVAILABLE", "Payment status cannot be checked for this gateway", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrCredentialsLocked):
		return pkg.NewDomainErrorSimple("CREDENTIALS_LOCKED", "Credentials are available once provisioning completes", http.StatusLocked)
	case errors.Is(err, usecase.ErrCredentialAlreadyDisclosed):
		return pkg.NewDomainErrorSimple("CREDENTIAL_ALREADY_DISCLOSED", "Credential has already been shown", http.StatusGone)
	case errors.Is(err, usecase.ErrCredentialNotShown):
		return pkg.NewDomainErrorSimple("CREDENTIAL_NOT_SHOWN", "Credential has not been shown yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrCredentialNotFound), errors.Is(err, usecase.ErrCredentialUnavailable):
		return pkg.NewDomainErrorSimple("CREDENTIAL_NOT_FOUND", "No credential for this profile", http.StatusNotFound)
	case errors.As(err, &apiErr):
		return pkg.NewDomainError("BACKEND_ERROR", "Upstream service error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapProvisioningError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEventBusMissing), errors.Is(err, usecase.ErrReconcilerStopped):
		return pkg.NewDomainError("PROVISIONING_UNAVAILABLE", "Provisioning updates are unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
