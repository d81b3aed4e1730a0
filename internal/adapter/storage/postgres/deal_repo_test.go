package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dealColumnNames() []string {
	return []string{"id", "offer_id", "counterparty_id", "referrer_id", "amount", "fiat_currency", "markup_percent",
		"counterparty_details", "client_confirmed", "settlement_tx_id", "referral_fee", "status",
		"created_at", "updated_at"}
}

func newTestDeal() *domain.Deal {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Deal{
		ID:             5,
		OfferID:        2,
		CounterpartyID: 42,
		Amount:         decimal.RequireFromString("50"),
		FiatCurrency:   "USD",
		MarkupPercent:  decimal.RequireFromString("5"),
		Status:         domain.DealStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func dealRow(d *domain.Deal) *pgxmock.Rows {
	var referral *string
	if d.ReferralFee != nil {
		s := d.ReferralFee.String()
		referral = &s
	}
	return pgxmock.NewRows(dealColumnNames()).AddRow(
		d.ID, d.OfferID, d.CounterpartyID, d.ReferrerID, d.Amount.String(), d.FiatCurrency, d.MarkupPercent.String(),
		d.CounterpartyDetails, d.ClientConfirmed, d.SettlementTxID, referral, d.Status,
		d.CreatedAt, d.UpdatedAt,
	)
}

func TestDealRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	d := newTestDeal()
	mock.ExpectQuery(`SELECT .+ FROM deals WHERE id = \$1`).
		WithArgs(d.ID).
		WillReturnRows(dealRow(d))

	repo := NewDealRepo(mock)
	got, err := repo.GetByID(context.Background(), d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, d.CounterpartyID, got.CounterpartyID)
	assert.True(t, got.Amount.Equal(d.Amount))
	assert.Equal(t, domain.DealStatusPending, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_UpdateStatusIf_CASWins(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE deals SET status = \$3, updated_at = now\(\) WHERE id = \$1 AND status = \$2`).
		WithArgs(int64(5), domain.DealStatusPending, domain.DealStatusExpired).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewDealRepo(mock)
	changed, err := repo.UpdateStatusIf(context.Background(), nil, 5,
		domain.DealStatusPending, domain.DealStatusExpired)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_UpdateStatusIf_CASLoses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// Row already moved on: zero rows affected, no transition.
	mock.ExpectExec(`UPDATE deals SET status = \$3, updated_at = now\(\) WHERE id = \$1 AND status = \$2`).
		WithArgs(int64(5), domain.DealStatusPending, domain.DealStatusExpired).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewDealRepo(mock)
	changed, err := repo.UpdateStatusIf(context.Background(), nil, 5,
		domain.DealStatusPending, domain.DealStatusExpired)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_SetClientConfirmed_OnlyWhilePending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE deals SET client_confirmed = TRUE, updated_at = now\(\)`).
		WithArgs(int64(5), domain.DealStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewDealRepo(mock)
	confirmed, err := repo.SetClientConfirmed(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, confirmed, "confirmation must not apply to a non-pending deal")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_Complete_WithReferralFee(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	fee := "0.105"
	mock.ExpectExec(`UPDATE deals SET status = \$3, settlement_tx_id = \$4, referral_fee = \$5`).
		WithArgs(int64(5), domain.DealStatusBlocked, domain.DealStatusCompleted, "txabc", &fee).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewDealRepo(mock)
	changed, err := repo.Complete(context.Background(), nil, 5,
		domain.DealStatusBlocked, "txabc", decimal.RequireFromString("0.105"))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_HeldAsCounterparty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(d.amount \* \(1 \+ d.markup_percent / 100\)\), 0\)::text`).
		WithArgs(int64(42), domain.DealStatusPending, domain.OfferDirectionSell, "BTC").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow("52.5"))

	repo := NewDealRepo(mock)
	held, err := repo.HeldAsCounterparty(context.Background(), 42, "BTC")
	require.NoError(t, err)
	assert.True(t, held.Equal(decimal.RequireFromString("52.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealRepo_ListExpirable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	d := newTestDeal()
	cutoff := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM deals\s+WHERE status = \$1 AND client_confirmed = FALSE AND created_at < \$2`).
		WithArgs(domain.DealStatusPending, cutoff).
		WillReturnRows(dealRow(d))

	repo := NewDealRepo(mock)
	deals, err := repo.ListExpirable(context.Background(), cutoff)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, d.ID, deals[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
