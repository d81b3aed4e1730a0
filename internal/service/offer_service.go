package service

import (
	"context"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type offerService struct {
	offerRepo  ports.OfferRepository
	prices     ports.PriceOracle
	currencies domain.CurrencyRegistry
	log        zerolog.Logger
}

// NewOfferService creates the offer book.
func NewOfferService(
	offerRepo ports.OfferRepository,
	prices ports.PriceOracle,
	currencies domain.CurrencyRegistry,
	log zerolog.Logger,
) ports.OfferService {
	return &offerService{
		offerRepo:  offerRepo,
		prices:     prices,
		currencies: currencies,
		log:        log.With().Str("component", "offer_service").Logger(),
	}
}

func (s *offerService) Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	if _, ok := s.currencies.Get(offer.Currency); !ok {
		return nil, apperror.ErrUnknownCurrency(offer.Currency)
	}
	if err := offer.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	now := time.Now()
	offer.Status = domain.OfferStatusOpen
	offer.CreatedAt = now
	offer.UpdatedAt = now
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, apperror.InternalError(err)
	}

	s.log.Info().
		Int64("offer_id", offer.ID).
		Int64("issuer_id", offer.IssuerID).
		Str("direction", string(offer.Direction)).
		Str("currency", offer.Currency).
		Msg("offer created")
	return offer, nil
}

func (s *offerService) Get(ctx context.Context, id int64) (*domain.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if offer == nil {
		return nil, apperror.ErrNotFound("offer")
	}
	return offer, nil
}

// Edit mutates an open offer in place. Markup changes never propagate to
// existing deals, which carry their own copy of the percentage.
func (s *offerService) Edit(ctx context.Context, issuerID int64, offer *domain.Offer) (*domain.Offer, error) {
	current, err := s.Get(ctx, offer.ID)
	if err != nil {
		return nil, err
	}
	if current.IssuerID != issuerID {
		return nil, apperror.ErrUnauthorizedActor()
	}
	if !current.IsOpen() {
		return nil, apperror.ErrOfferNotOpen()
	}

	current.FiatCurrencies = offer.FiatCurrencies
	current.PaymentDetails = offer.PaymentDetails
	current.MinDealAmount = offer.MinDealAmount
	current.MaxDealAmount = offer.MaxDealAmount
	current.MarkupPercent = offer.MarkupPercent
	if err := current.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	current.UpdatedAt = time.Now()

	if err := s.offerRepo.Update(ctx, current); err != nil {
		return nil, apperror.InternalError(err)
	}
	return current, nil
}

func (s *offerService) Close(ctx context.Context, issuerID, offerID int64) error {
	offer, err := s.Get(ctx, offerID)
	if err != nil {
		return err
	}
	if offer.IssuerID != issuerID {
		return apperror.ErrUnauthorizedActor()
	}
	if !offer.IsOpen() {
		return apperror.ErrOfferNotOpen()
	}

	offer.Status = domain.OfferStatusClosed
	offer.UpdatedAt = time.Now()
	if err := s.offerRepo.Update(ctx, offer); err != nil {
		return apperror.InternalError(err)
	}
	s.log.Info().Int64("offer_id", offerID).Msg("offer closed")
	return nil
}

func (s *offerService) ListOpen(ctx context.Context, direction domain.OfferDirection, currency, fiat string) ([]domain.Offer, error) {
	offers, err := s.offerRepo.ListOpen(ctx, direction, currency, fiat)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return offers, nil
}

// Quote returns the offer's effective fiat price per crypto unit: the market
// price marked up by the offer's percentage.
func (s *offerService) Quote(ctx context.Context, offerID int64, fiat string) (decimal.Decimal, error) {
	offer, err := s.Get(ctx, offerID)
	if err != nil {
		return decimal.Zero, err
	}
	if _, accepted := offer.PaymentDetailFor(fiat); !accepted {
		return decimal.Zero, apperror.ErrFiatNotAccepted()
	}

	market, err := s.prices.Price(ctx, offer.Currency, fiat)
	if err != nil {
		return decimal.Zero, apperror.ErrChainUnavailable(err)
	}
	return domain.GrossAmount(market, offer.MarkupPercent), nil
}
