package service

import (
	"context"
	"testing"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type offerTestDeps struct {
	svc       ports.OfferService
	offerRepo *mocks.MockOfferRepository
	prices    *mocks.MockPriceOracle
	ctrl      *gomock.Controller
}

func setupOfferService(t *testing.T) *offerTestDeps {
	ctrl := gomock.NewController(t)
	d := &offerTestDeps{
		offerRepo: mocks.NewMockOfferRepository(ctrl),
		prices:    mocks.NewMockPriceOracle(ctrl),
		ctrl:      ctrl,
	}
	currencies := domain.CurrencyRegistry{
		"BTC": {Code: "BTC", Family: domain.FamilyUTXO, BaseDivisor: 1e8},
	}
	d.svc = NewOfferService(d.offerRepo, d.prices, currencies, zerolog.Nop())
	return d
}

func TestOfferService_Create_Success(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := &domain.Offer{
		IssuerID:       7,
		Direction:      domain.OfferDirectionBuy,
		Currency:       "BTC",
		FiatCurrencies: []string{"USD", "EUR"},
		PaymentDetails: []string{"bank 1", "bank 2"},
		MinDealAmount:  dec("0.001"),
		MaxDealAmount:  dec("1"),
		MarkupPercent:  dec("3"),
	}
	d.offerRepo.EXPECT().Create(ctx, offer).
		DoAndReturn(func(_ context.Context, o *domain.Offer) error {
			o.ID = 2
			return nil
		})

	got, err := d.svc.Create(ctx, offer)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
	assert.Equal(t, domain.OfferStatusOpen, got.Status)
}

func TestOfferService_Create_UnknownCurrency(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	offer := openSellOffer()
	offer.Currency = "DOGE"

	_, err := d.svc.Create(context.Background(), offer)
	assertAppError(t, err, "VAL_004")
}

func TestOfferService_Create_DetailParityEnforced(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	offer := openSellOffer()
	offer.Direction = domain.OfferDirectionBuy
	// Two fiat currencies, one payment detail.
	offer.FiatCurrencies = []string{"USD", "EUR"}
	offer.PaymentDetails = []string{"bank 1"}

	_, err := d.svc.Create(context.Background(), offer)
	assertAppError(t, err, "VAL_001")
}

func TestOfferService_Edit_Success(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	current := openSellOffer()
	d.offerRepo.EXPECT().GetByID(ctx, current.ID).Return(current, nil)
	d.offerRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	edit := openSellOffer()
	edit.MarkupPercent = dec("7")
	got, err := d.svc.Edit(ctx, current.IssuerID, edit)
	require.NoError(t, err)
	assert.True(t, got.MarkupPercent.Equal(dec("7")))
}

func TestOfferService_Edit_NotOwner(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	current := openSellOffer()
	d.offerRepo.EXPECT().GetByID(ctx, current.ID).Return(current, nil)

	_, err := d.svc.Edit(ctx, 999, openSellOffer())
	assertAppError(t, err, "DEAL_007")
}

func TestOfferService_Edit_ClosedOffer(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	current := openSellOffer()
	current.Status = domain.OfferStatusClosed
	d.offerRepo.EXPECT().GetByID(ctx, current.ID).Return(current, nil)

	_, err := d.svc.Edit(ctx, current.IssuerID, openSellOffer())
	assertAppError(t, err, "DEAL_002")
}

func TestOfferService_Close_Success(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer()
	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)
	d.offerRepo.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Offer) error {
			assert.Equal(t, domain.OfferStatusClosed, o.Status)
			return nil
		})

	require.NoError(t, d.svc.Close(ctx, offer.IssuerID, offer.ID))
}

func TestOfferService_Quote_AppliesMarkup(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer() // markup 5
	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)
	d.prices.EXPECT().Price(ctx, "BTC", "USD").Return(dec("40000"), nil)

	quote, err := d.svc.Quote(ctx, offer.ID, "USD")
	require.NoError(t, err)
	assert.True(t, quote.Equal(dec("42000")))
}

func TestOfferService_Quote_FiatNotAccepted(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer()
	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)

	_, err := d.svc.Quote(ctx, offer.ID, "JPY")
	assertAppError(t, err, "VAL_003")
}

func TestOfferService_Quote_OracleDown(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	offer := openSellOffer()
	d.offerRepo.EXPECT().GetByID(ctx, offer.ID).Return(offer, nil)
	d.prices.EXPECT().Price(ctx, "BTC", "USD").Return(dec("0"), assert.AnError)

	_, err := d.svc.Quote(ctx, offer.ID, "USD")
	assertAppError(t, err, "EXT_002")
}
