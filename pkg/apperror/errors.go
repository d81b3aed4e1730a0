package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a generic malformed-input error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrAmountOutOfBounds() *AppError {
	return New("VAL_002", "Deal amount is outside the offer's bounds", http.StatusBadRequest)
}

func ErrFiatNotAccepted() *AppError {
	return New("VAL_003", "Offer does not accept this fiat currency", http.StatusBadRequest)
}

func ErrUnknownCurrency(code string) *AppError {
	return New("VAL_004", fmt.Sprintf("Unsupported currency %s", code), http.StatusBadRequest)
}

// ---- Deal state machine guards (DEAL) ----

func ErrNotFound(entity string) *AppError {
	return New("DEAL_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrOfferNotOpen() *AppError {
	return New("DEAL_002", "Offer is not open for new deals", http.StatusConflict)
}

func ErrDealTimeExpired() *AppError {
	return New("DEAL_003", "Deal time expired", http.StatusConflict)
}

func ErrDealBlocked() *AppError {
	return New("DEAL_004", "Deal is currently blocked", http.StatusConflict)
}

func ErrIllegalTransition(from, to string) *AppError {
	return New("DEAL_005", fmt.Sprintf("Deal cannot move from %s to %s", from, to), http.StatusConflict)
}

func ErrNotConfirmed() *AppError {
	return New("DEAL_006", "Counterparty has not confirmed payment", http.StatusConflict)
}

func ErrUnauthorizedActor() *AppError {
	return New("DEAL_007", "Actor is not a party to this deal", http.StatusForbidden)
}

func ErrForceCompleteNotBlocked() *AppError {
	return New("DEAL_008", "Force-complete is only permitted on a blocked deal", http.StatusConflict)
}

func ErrNoPayoutSide() *AppError {
	return New("DEAL_009", "Offer type implies no outbound crypto payout", http.StatusConflict)
}

func ErrMissingDestination() *AppError {
	return New("DEAL_010", "Counterparty payout destination not set", http.StatusConflict)
}

// ---- Funds (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient available balance", http.StatusPaymentRequired)
}

// ---- Compliance (AML) ----

func ErrComplianceHold() *AppError {
	return New("AML_001", "Settlement is blocked pending compliance review", http.StatusUnavailableForLegalReasons)
}

func ErrCaseNotOpen() *AppError {
	return New("AML_002", "Compliance case is not open", http.StatusConflict)
}

func ErrNoRejectedCase() *AppError {
	return New("AML_003", "No rejected case eligible for resubmission", http.StatusConflict)
}

func ErrCaseAlreadyOpen() *AppError {
	return New("AML_004", "A compliance review is already in progress", http.StatusConflict)
}

// ---- External services (EXT) ----

// ErrBroadcastFailed marks a failed chain submission: fatal to the attempt,
// the deal stays pending and may be retried.
func ErrBroadcastFailed(err error) *AppError {
	return Wrap("EXT_001", "Transaction broadcast failed, retry later", http.StatusBadGateway, err)
}

func ErrChainUnavailable(err error) *AppError {
	return Wrap("EXT_002", "Chain service unavailable", http.StatusBadGateway, err)
}

// ---- System (SYS) ----

// InternalError wraps an unexpected error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrKeyVaultFailure(err error) *AppError {
	return Wrap("SYS_002", "Key vault failure", http.StatusInternalServerError, err)
}
