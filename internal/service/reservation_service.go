package service

import (
	"context"

	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"

	"github.com/shopspring/decimal"
)

// reservationService derives held amounts from pending deal rows. There is no
// reservation table to reconcile: a deal leaving PENDING releases its hold by
// definition.
type reservationService struct {
	dealRepo ports.DealRepository
}

// NewReservationService creates the reservation ledger.
func NewReservationService(dealRepo ports.DealRepository) ports.ReservationService {
	return &reservationService{dealRepo: dealRepo}
}

// HeldAmount sums everything the user has promised to open deals in the
// currency, on either side of the book, at gross (marked-up) amounts.
func (s *reservationService) HeldAmount(ctx context.Context, userID int64, currency string) (decimal.Decimal, error) {
	asCounterparty, err := s.dealRepo.HeldAsCounterparty(ctx, userID, currency)
	if err != nil {
		return decimal.Zero, apperror.InternalError(err)
	}
	asIssuer, err := s.dealRepo.HeldAsIssuer(ctx, userID, currency)
	if err != nil {
		return decimal.Zero, apperror.InternalError(err)
	}
	return asCounterparty.Add(asIssuer), nil
}
