package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports/mocks"
	"github.com/RuslanName/P2PBot-sub000/internal/lock"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dealTestDeps struct {
	svc            ports.DealService
	dealRepo       *mocks.MockDealRepository
	offerRepo      *mocks.MockOfferRepository
	walletRepo     *mocks.MockWalletRepository
	balanceSvc     *mocks.MockBalanceService
	reservationSvc *mocks.MockReservationService
	complianceSvc  *mocks.MockComplianceService
	settlementSvc  *mocks.MockSettlementService
	notifier       *mocks.MockNotifier
	transactor     *mocks.MockDBTransactor
	ctrl           *gomock.Controller
}

func setupDealService(t *testing.T) *dealTestDeps {
	ctrl := gomock.NewController(t)
	d := &dealTestDeps{
		dealRepo:       mocks.NewMockDealRepository(ctrl),
		offerRepo:      mocks.NewMockOfferRepository(ctrl),
		walletRepo:     mocks.NewMockWalletRepository(ctrl),
		balanceSvc:     mocks.NewMockBalanceService(ctrl),
		reservationSvc: mocks.NewMockReservationService(ctrl),
		complianceSvc:  mocks.NewMockComplianceService(ctrl),
		settlementSvc:  mocks.NewMockSettlementService(ctrl),
		notifier:       mocks.NewMockNotifier(ctrl),
		transactor:     mocks.NewMockDBTransactor(ctrl),
		ctrl:           ctrl,
	}
	d.svc = NewDealService(
		d.transactor, d.dealRepo, d.offerRepo, d.walletRepo,
		d.balanceSvc, d.reservationSvc, d.complianceSvc, d.settlementSvc,
		d.notifier, lock.NewArena(), 15*time.Minute, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func openSellOffer() *domain.Offer {
	return &domain.Offer{
		ID:             2,
		IssuerID:       7,
		Direction:      domain.OfferDirectionSell,
		Currency:       "BTC",
		FiatCurrencies: []string{"USD"},
		MinDealAmount:  dec("0.001"),
		MaxDealAmount:  dec("1"),
		MarkupPercent:  dec("5"),
		Status:         domain.OfferStatusOpen,
	}
}

func pendingDeal() *domain.Deal {
	return &domain.Deal{
		ID:             5,
		OfferID:        2,
		CounterpartyID: 42,
		Amount:         dec("0.5"),
		FiatCurrency:   "USD",
		MarkupPercent:  dec("5"),
		Status:         domain.DealStatusPending,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

// ==================== Create Tests ====================

func TestDealService_Create_Success(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer()
	req := ports.CreateDealRequest{
		OfferID:        offer.ID,
		CounterpartyID: 42,
		Amount:         dec("0.5"),
		FiatCurrency:   "USD",
	}

	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)
	d.complianceSvc.EXPECT().Evaluate(ctx, int64(42)).Return(false, nil)
	// Sell offer: the counterparty is the eventual payer.
	d.walletRepo.EXPECT().GetByOwner(ctx, int64(42), "BTC").
		Return(&domain.Wallet{ID: 9, OwnerID: 42, Currency: "BTC"}, nil)
	d.balanceSvc.EXPECT().GetBalance(ctx, int64(42), "BTC", true).
		Return(domain.Balance{Confirmed: dec("2"), Unconfirmed: dec("0.1")}, nil)
	d.reservationSvc.EXPECT().HeldAmount(ctx, int64(42), "BTC").Return(dec("0.3"), nil)
	d.transactor.EXPECT().Begin(ctx).Return(&mockTx{}, nil)
	d.dealRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, deal *domain.Deal) error {
			deal.ID = 5
			return nil
		})
	d.complianceSvc.EXPECT().RecordDealInitiated(ctx, int64(42)).Return(nil)
	d.notifier.EXPECT().Notify(ctx, offer.IssuerID, gomock.Any()).Return(nil)

	deal, err := d.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deal.ID)
	assert.Equal(t, domain.DealStatusPending, deal.Status)
	assert.True(t, deal.MarkupPercent.Equal(dec("5")), "markup is copied from the offer at creation")
}

func TestDealService_Create_OfferNotOpen(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer()
	offer.Status = domain.OfferStatusClosed
	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)

	_, err := d.svc.Create(ctx, ports.CreateDealRequest{OfferID: offer.ID, CounterpartyID: 42, Amount: dec("0.5"), FiatCurrency: "USD"})
	assertAppError(t, err, "DEAL_002")
}

func TestDealService_Create_AmountOutOfBounds(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer()
	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)

	_, err := d.svc.Create(ctx, ports.CreateDealRequest{OfferID: offer.ID, CounterpartyID: 42, Amount: dec("2"), FiatCurrency: "USD"})
	assertAppError(t, err, "VAL_002")
}

func TestDealService_Create_FiatNotAccepted(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer()
	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)

	_, err := d.svc.Create(ctx, ports.CreateDealRequest{OfferID: offer.ID, CounterpartyID: 42, Amount: dec("0.5"), FiatCurrency: "EUR"})
	assertAppError(t, err, "VAL_003")
}

func TestDealService_Create_ComplianceBlocked(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer()
	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)
	d.complianceSvc.EXPECT().Evaluate(ctx, int64(42)).Return(true, nil)

	_, err := d.svc.Create(ctx, ports.CreateDealRequest{OfferID: offer.ID, CounterpartyID: 42, Amount: dec("0.5"), FiatCurrency: "USD"})
	assertAppError(t, err, "AML_001")
}

func TestDealService_Create_InsufficientAvailable(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer()
	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)
	d.complianceSvc.EXPECT().Evaluate(ctx, int64(42)).Return(false, nil)
	d.walletRepo.EXPECT().GetByOwner(ctx, int64(42), "BTC").
		Return(&domain.Wallet{ID: 9, OwnerID: 42, Currency: "BTC"}, nil)
	// Confirmed 1, unconfirmed 0.2, held 0.3: available 0.5 < gross 0.525.
	d.balanceSvc.EXPECT().GetBalance(ctx, int64(42), "BTC", true).
		Return(domain.Balance{Confirmed: dec("1"), Unconfirmed: dec("0.2")}, nil)
	d.reservationSvc.EXPECT().HeldAmount(ctx, int64(42), "BTC").Return(dec("0.3"), nil)

	_, err := d.svc.Create(ctx, ports.CreateDealRequest{OfferID: offer.ID, CounterpartyID: 42, Amount: dec("0.5"), FiatCurrency: "USD"})
	assertAppError(t, err, "PAY_001")
}

func TestDealService_Create_BuyOfferChecksIssuerBalance(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer()
	offer.Direction = domain.OfferDirectionBuy
	offer.PaymentDetails = []string{"bank account 123"}

	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)
	d.complianceSvc.EXPECT().Evaluate(ctx, int64(42)).Return(false, nil)
	// Buy offer: the issuer pays out, so admission gates the issuer's wallet.
	d.walletRepo.EXPECT().GetByOwner(ctx, offer.IssuerID, "BTC").
		Return(&domain.Wallet{ID: 11, OwnerID: offer.IssuerID, Currency: "BTC"}, nil)
	d.balanceSvc.EXPECT().GetBalance(ctx, offer.IssuerID, "BTC", true).
		Return(domain.Balance{Confirmed: dec("0.1")}, nil)
	d.reservationSvc.EXPECT().HeldAmount(ctx, offer.IssuerID, "BTC").Return(decimal.Zero, nil)

	_, err := d.svc.Create(ctx, ports.CreateDealRequest{OfferID: offer.ID, CounterpartyID: 42, Amount: dec("0.5"), FiatCurrency: "USD"})
	assertAppError(t, err, "PAY_001")
}

// ==================== CounterpartyConfirm Tests ====================

func TestDealService_CounterpartyConfirm_Success(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.dealRepo.EXPECT().SetClientConfirmed(ctx, deal.ID).Return(true, nil)
	d.offerRepo.EXPECT().GetByID(ctx, deal.OfferID).Return(openSellOffer(), nil)
	d.notifier.EXPECT().Notify(ctx, int64(7), gomock.Any()).Return(nil)

	got, err := d.svc.CounterpartyConfirm(ctx, deal.ID, 42)
	require.NoError(t, err)
	assert.True(t, got.ClientConfirmed)
}

func TestDealService_CounterpartyConfirm_Idempotent(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.ClientConfirmed = true
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	got, err := d.svc.CounterpartyConfirm(ctx, deal.ID, 42)
	require.NoError(t, err)
	assert.True(t, got.ClientConfirmed)
}

func TestDealService_CounterpartyConfirm_WrongActor(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	_, err := d.svc.CounterpartyConfirm(ctx, deal.ID, 999)
	assertAppError(t, err, "DEAL_007")
}

func TestDealService_CounterpartyConfirm_Blocked(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.Status = domain.DealStatusBlocked
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	_, err := d.svc.CounterpartyConfirm(ctx, deal.ID, 42)
	assertAppError(t, err, "DEAL_004")
}

func TestDealService_CounterpartyConfirm_PastDeadlineExpiresInFlight(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.CreatedAt = time.Now().Add(-16 * time.Minute)
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.dealRepo.EXPECT().ExpireIfUnconfirmed(ctx, deal.ID, gomock.Any()).Return(true, nil)

	_, err := d.svc.CounterpartyConfirm(ctx, deal.ID, 42)
	assertAppError(t, err, "DEAL_003")
}

// ==================== IssuerAcknowledge Tests ====================

func TestDealService_IssuerAcknowledge_Success(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.ClientConfirmed = true
	deal.ReferrerID = 3
	offer := openSellOffer()

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil).Times(2)
	d.offerRepo.EXPECT().GetByID(ctx, deal.OfferID).Return(offer, nil)
	d.walletRepo.EXPECT().GetByOwner(ctx, deal.CounterpartyID, "BTC").
		Return(&domain.Wallet{ID: 11, OwnerID: deal.CounterpartyID, Currency: "BTC"}, nil)
	d.settlementSvc.EXPECT().Settle(ctx, ports.SettlementRequest{Deal: deal, Offer: offer, ReferrerID: 3}).
		Return(&ports.SettlementResult{TxID: "txabc", ReferralFee: dec("0.00105")}, nil)
	d.dealRepo.EXPECT().Complete(ctx, nil, deal.ID, domain.DealStatusPending, "txabc", dec("0.00105")).
		Return(true, nil)
	d.notifier.EXPECT().Notify(ctx, deal.CounterpartyID, gomock.Any()).Return(nil)

	got, err := d.svc.IssuerAcknowledge(ctx, deal.ID, offer.IssuerID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusCompleted, got.Status)
	require.NotNil(t, got.SettlementTxID)
	assert.Equal(t, "txabc", *got.SettlementTxID)
	require.NotNil(t, got.ReferralFee)
	assert.True(t, got.ReferralFee.Equal(dec("0.00105")))
}

func TestDealService_IssuerAcknowledge_NotConfirmed(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.offerRepo.EXPECT().GetByID(ctx, deal.OfferID).Return(openSellOffer(), nil)

	_, err := d.svc.IssuerAcknowledge(ctx, deal.ID, 7)
	assertAppError(t, err, "DEAL_006")
}

func TestDealService_IssuerAcknowledge_SettlementFailureStaysPending(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.ClientConfirmed = true
	offer := openSellOffer()

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil).Times(2)
	d.offerRepo.EXPECT().GetByID(ctx, deal.OfferID).Return(offer, nil)
	d.walletRepo.EXPECT().GetByOwner(ctx, deal.CounterpartyID, "BTC").
		Return(&domain.Wallet{ID: 11, OwnerID: deal.CounterpartyID, Currency: "BTC"}, nil)
	d.settlementSvc.EXPECT().Settle(ctx, gomock.Any()).
		Return(nil, apperror.ErrBroadcastFailed(errors.New("node down")))
	// No Complete expectation: the deal must not move.

	_, err := d.svc.IssuerAcknowledge(ctx, deal.ID, offer.IssuerID)
	assertAppError(t, err, "EXT_001")
	assert.Equal(t, domain.DealStatusPending, deal.Status)
}

func TestDealService_IssuerAcknowledge_WrongActor(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.ClientConfirmed = true
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.offerRepo.EXPECT().GetByID(ctx, deal.OfferID).Return(openSellOffer(), nil)

	_, err := d.svc.IssuerAcknowledge(ctx, deal.ID, 999)
	assertAppError(t, err, "DEAL_007")
}

// ==================== Cancel Tests ====================

func TestDealService_Cancel_ByCounterparty(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	offer := openSellOffer()
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.offerRepo.EXPECT().GetByID(ctx, deal.OfferID).Return(offer, nil)
	d.dealRepo.EXPECT().UpdateStatusIf(ctx, nil, deal.ID, domain.DealStatusPending, domain.DealStatusCancelled).
		Return(true, nil)
	d.notifier.EXPECT().Notify(ctx, offer.IssuerID, gomock.Any()).Return(nil)

	got, err := d.svc.Cancel(ctx, deal.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusCancelled, got.Status)
}

func TestDealService_Cancel_AfterConfirmRejected(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.ClientConfirmed = true
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.offerRepo.EXPECT().GetByID(ctx, deal.OfferID).Return(openSellOffer(), nil)

	_, err := d.svc.Cancel(ctx, deal.ID, 42)
	assertAppError(t, err, "VAL_001")
}

func TestDealService_Cancel_StrangerRejected(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.offerRepo.EXPECT().GetByID(ctx, deal.OfferID).Return(openSellOffer(), nil)

	_, err := d.svc.Cancel(ctx, deal.ID, 999)
	assertAppError(t, err, "DEAL_007")
}

// ==================== Admin Tests ====================

func TestDealService_AdminBlockUnblock(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)
	d.dealRepo.EXPECT().UpdateStatusIf(ctx, nil, deal.ID, domain.DealStatusPending, domain.DealStatusBlocked).
		Return(true, nil)
	d.notifier.EXPECT().Notify(ctx, deal.CounterpartyID, gomock.Any()).Return(nil)

	blocked, err := d.svc.AdminBlock(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusBlocked, blocked.Status)

	back := pendingDeal()
	back.Status = domain.DealStatusBlocked
	d.dealRepo.EXPECT().GetByID(ctx, back.ID).Return(back, nil)
	d.dealRepo.EXPECT().UpdateStatusIf(ctx, nil, back.ID, domain.DealStatusBlocked, domain.DealStatusPending).
		Return(true, nil)
	d.notifier.EXPECT().Notify(ctx, back.CounterpartyID, gomock.Any()).Return(nil)

	unblocked, err := d.svc.AdminUnblock(ctx, back.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusPending, unblocked.Status)
}

func TestDealService_AdminBlock_TerminalRejected(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.Status = domain.DealStatusCompleted
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	_, err := d.svc.AdminBlock(ctx, deal.ID)
	assertAppError(t, err, "DEAL_005")
}

func TestDealService_AdminBlockIssuer_Cascade(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.offerRepo.EXPECT().UpdateStatusByIssuer(ctx, tx, int64(7), domain.OfferStatusOpen, domain.OfferStatusBlocked).
		Return(int64(2), nil)
	d.dealRepo.EXPECT().UpdateStatusByIssuer(ctx, tx, int64(7), domain.DealStatusPending, domain.DealStatusBlocked).
		Return(int64(3), nil)
	d.notifier.EXPECT().Notify(ctx, int64(7), gomock.Any()).Return(nil)

	require.NoError(t, d.svc.AdminBlockIssuer(ctx, 7))
}

func TestDealService_AdminBlockIssuer_DealCascadeFailureRollsBack(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.offerRepo.EXPECT().UpdateStatusByIssuer(ctx, tx, int64(7), domain.OfferStatusOpen, domain.OfferStatusBlocked).
		Return(int64(2), nil)
	d.dealRepo.EXPECT().UpdateStatusByIssuer(ctx, tx, int64(7), domain.DealStatusPending, domain.DealStatusBlocked).
		Return(int64(0), errors.New("write failed"))

	err := d.svc.AdminBlockIssuer(ctx, 7)
	assertAppError(t, err, "SYS_001")
}

func TestDealService_AdminForceComplete_OnlyFromBlocked(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.ClientConfirmed = true
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	_, err := d.svc.AdminForceComplete(ctx, deal.ID)
	assertAppError(t, err, "DEAL_008")
}

func TestDealService_AdminForceComplete_Success(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.Status = domain.DealStatusBlocked
	deal.ClientConfirmed = true
	offer := openSellOffer()

	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil).Times(2)
	d.offerRepo.EXPECT().GetByID(ctx, deal.OfferID).Return(offer, nil)
	d.walletRepo.EXPECT().GetByOwner(ctx, deal.CounterpartyID, "BTC").
		Return(&domain.Wallet{ID: 11, OwnerID: deal.CounterpartyID, Currency: "BTC"}, nil)
	d.settlementSvc.EXPECT().Settle(ctx, gomock.Any()).
		Return(&ports.SettlementResult{TxID: "txforce", ReferralFee: decimal.Zero}, nil)
	d.dealRepo.EXPECT().Complete(ctx, nil, deal.ID, domain.DealStatusBlocked, "txforce", decimal.Zero).
		Return(true, nil)
	d.notifier.EXPECT().Notify(ctx, deal.CounterpartyID, gomock.Any()).Return(nil)

	got, err := d.svc.AdminForceComplete(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealStatusCompleted, got.Status)
	assert.Nil(t, got.ReferralFee)
}

func TestDealService_AdminForceComplete_Unconfirmed(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	deal := pendingDeal()
	deal.Status = domain.DealStatusBlocked
	d.dealRepo.EXPECT().GetByID(ctx, deal.ID).Return(deal, nil)

	_, err := d.svc.AdminForceComplete(ctx, deal.ID)
	assertAppError(t, err, "DEAL_006")
}

// ==================== Expire Tests ====================

func TestDealService_Expire_ConditionalWrite(t *testing.T) {
	d := setupDealService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.dealRepo.EXPECT().ExpireIfUnconfirmed(ctx, int64(5), gomock.Any()).Return(true, nil)

	expired, err := d.svc.Expire(ctx, 5)
	require.NoError(t, err)
	assert.True(t, expired)

	// Second attempt loses the conditional write: already handled.
	d.dealRepo.EXPECT().ExpireIfUnconfirmed(ctx, int64(5), gomock.Any()).Return(false, nil)
	expired, err = d.svc.Expire(ctx, 5)
	require.NoError(t, err)
	assert.False(t, expired)
}

// ==================== Helper ====================

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
