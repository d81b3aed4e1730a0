package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"

	"github.com/rs/zerolog"
)

// Sweeper periodically expires stale deals and auto-rejects unresolved
// compliance cases. Both passes use conditional writes, so running next to
// live transitions is safe and each row is processed at most once.
type Sweeper struct {
	dealRepo ports.DealRepository
	dealSvc  ports.DealService
	caseRepo ports.ComplianceRepository
	notifier ports.Notifier
	interval time.Duration
	dealTTL  time.Duration
	caseTTL  time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewSweeper creates the expiry sweeper.
func NewSweeper(
	dealRepo ports.DealRepository,
	dealSvc ports.DealService,
	caseRepo ports.ComplianceRepository,
	notifier ports.Notifier,
	interval, dealTTL, caseTTL time.Duration,
	log zerolog.Logger,
) *Sweeper {
	return &Sweeper{
		dealRepo: dealRepo,
		dealSvc:  dealSvc,
		caseRepo: caseRepo,
		notifier: notifier,
		interval: interval,
		dealTTL:  dealTTL,
		caseTTL:  caseTTL,
		now:      time.Now,
		log:      log.With().Str("component", "sweeper").Logger(),
	}
}

// Run sweeps on the configured interval until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs a single pass over expirable deals and stale open cases.
func (s *Sweeper) Sweep(ctx context.Context) {
	s.sweepDeals(ctx)
	s.sweepCases(ctx)
}

func (s *Sweeper) sweepDeals(ctx context.Context) {
	cutoff := s.now().Add(-s.dealTTL)
	deals, err := s.dealRepo.ListExpirable(ctx, cutoff)
	if err != nil {
		s.log.Error().Err(err).Msg("list expirable deals failed")
		return
	}

	for _, deal := range deals {
		expired, err := s.dealSvc.Expire(ctx, deal.ID)
		if err != nil {
			s.log.Error().Err(err).Int64("deal_id", deal.ID).Msg("expire failed")
			continue
		}
		if !expired {
			// Confirmed or otherwise transitioned since the list pass.
			continue
		}
		s.log.Info().Int64("deal_id", deal.ID).Msg("deal expired")
		if err := s.notifier.Notify(ctx, deal.CounterpartyID,
			fmt.Sprintf("Deal #%d expired: payment was not confirmed in time", deal.ID)); err != nil {
			s.log.Warn().Err(err).Int64("deal_id", deal.ID).Msg("expiry notification failed")
		}
	}
}

func (s *Sweeper) sweepCases(ctx context.Context) {
	cutoff := s.now().Add(-s.caseTTL)
	cases, err := s.caseRepo.ListExpirable(ctx, cutoff)
	if err != nil {
		s.log.Error().Err(err).Msg("list expirable cases failed")
		return
	}

	for _, c := range cases {
		rejected, err := s.caseRepo.UpdateStatusIf(ctx, c.ID, domain.CaseStatusOpen, domain.CaseStatusRejected)
		if err != nil {
			s.log.Error().Err(err).Int64("case_id", c.ID).Msg("auto-reject failed")
			continue
		}
		if !rejected {
			continue
		}
		s.log.Info().Int64("case_id", c.ID).Int64("user_id", c.UserID).Msg("compliance case auto-rejected")
		if err := s.notifier.Notify(ctx, c.UserID,
			"Your compliance review expired without resolution and was rejected. You may resubmit evidence.",
			"submit_evidence"); err != nil {
			s.log.Warn().Err(err).Int64("case_id", c.ID).Msg("case notification failed")
		}
	}
}
