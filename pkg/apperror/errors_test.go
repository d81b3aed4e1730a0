package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	e := New("DEAL_003", "Deal time expired", http.StatusConflict)
	assert.Equal(t, "[DEAL_003] Deal time expired", e.Error())

	wrapped := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, errors.New("pg down"))
	assert.Equal(t, "[SYS_001] Internal server error: pg down", wrapped.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("broken pipe")
	e := ErrBroadcastFailed(fmt.Errorf("sendrawtransaction: %w", cause))
	assert.ErrorIs(t, e, cause)
}

func TestErrorCodesAndStatuses(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{Validation("bad input"), "VAL_001", http.StatusBadRequest},
		{ErrAmountOutOfBounds(), "VAL_002", http.StatusBadRequest},
		{ErrOfferNotOpen(), "DEAL_002", http.StatusConflict},
		{ErrDealTimeExpired(), "DEAL_003", http.StatusConflict},
		{ErrDealBlocked(), "DEAL_004", http.StatusConflict},
		{ErrForceCompleteNotBlocked(), "DEAL_008", http.StatusConflict},
		{ErrInsufficientFunds(), "PAY_001", http.StatusPaymentRequired},
		{ErrComplianceHold(), "AML_001", http.StatusUnavailableForLegalReasons},
		{ErrBroadcastFailed(errors.New("x")), "EXT_001", http.StatusBadGateway},
		{InternalError(errors.New("x")), "SYS_001", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.code, tc.err.Code)
		require.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestDistinctRejectionMessages(t *testing.T) {
	// The expired and blocked confirmations must surface distinct,
	// user-visible messages.
	assert.NotEqual(t, ErrDealTimeExpired().Message, ErrDealBlocked().Message)
}
