package service

import (
	"context"
	"fmt"
	"time"

	"github.com/RuslanName/P2PBot-sub000/config"
	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"
	"github.com/RuslanName/P2PBot-sub000/pkg/metrics"

	"github.com/rs/zerolog"
)

// complianceService is the AML gate. Rolling activity counters live in the
// window store; cases live in Postgres. A counter-store outage degrades to
// zero counts rather than blocking deal flow, a decision the logs record.
type complianceService struct {
	caseRepo ports.ComplianceRepository
	window   ports.ActivityWindow
	notifier ports.Notifier
	cfg      config.ComplianceConfig
	now      func() time.Time
	log      zerolog.Logger
}

// NewComplianceService creates the compliance gate.
func NewComplianceService(
	caseRepo ports.ComplianceRepository,
	window ports.ActivityWindow,
	notifier ports.Notifier,
	cfg config.ComplianceConfig,
	log zerolog.Logger,
) ports.ComplianceService {
	return &complianceService{
		caseRepo: caseRepo,
		window:   window,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With().Str("component", "compliance_service").Logger(),
	}
}

// Evaluate reports whether the user is blocked from settling. A threshold
// firing right now opens a case as a side effect.
func (s *complianceService) Evaluate(ctx context.Context, userID int64) (bool, error) {
	return s.evaluate(ctx, userID, "")
}

// EvaluateDestination counts the destination toward the distinct-address rule
// before deciding, so the address that crosses the threshold is itself caught.
func (s *complianceService) EvaluateDestination(ctx context.Context, userID int64, destination string) (bool, error) {
	return s.evaluate(ctx, userID, destination)
}

func (s *complianceService) evaluate(ctx context.Context, userID int64, destination string) (bool, error) {
	exempt, err := s.caseRepo.HasCompletedByUser(ctx, userID)
	if err != nil {
		return false, apperror.InternalError(err)
	}
	if exempt {
		return false, nil
	}

	open, err := s.caseRepo.GetOpenByUser(ctx, userID)
	if err != nil {
		return false, apperror.InternalError(err)
	}
	if open != nil {
		return true, nil
	}

	if destination != "" {
		if err := s.window.RecordDestination(ctx, userID, destination, s.now()); err != nil {
			s.log.Warn().Err(err).Int64("user_id", userID).Msg("destination counter write failed")
		}
	}

	rule := s.firedRule(ctx, userID)
	if rule == "" {
		return false, nil
	}
	if err := s.openCase(ctx, userID, rule); err != nil {
		return false, err
	}
	return true, nil
}

// firedRule checks every rolling-window rule and names the first that fires.
// Counter reads that fail are treated as zero: the store being down must not
// freeze the exchange.
func (s *complianceService) firedRule(ctx context.Context, userID int64) string {
	now := s.now()

	deals, err := s.window.DealCounts(ctx, userID, now)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("deal counter read failed")
	}
	if w, ok := deals.Exceeds(s.cfg.DealsPerHour, s.cfg.DealsPerDay, s.cfg.DealsPerWeek); ok {
		return "deals_per_" + w
	}

	transfers, err := s.window.TransferCounts(ctx, userID, now)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("transfer counter read failed")
	}
	if w, ok := transfers.Exceeds(s.cfg.TransfersPerHour, s.cfg.TransfersPerDay, s.cfg.TransfersPerWeek); ok {
		return "transfers_per_" + w
	}

	dests, err := s.window.DestinationCounts(ctx, userID, now)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("destination counter read failed")
	}
	if w, ok := dests.Exceeds(s.cfg.DestinationsPerHour, s.cfg.DestinationsPerDay, s.cfg.DestinationsPerWeek); ok {
		return "destinations_per_" + w
	}
	return ""
}

func (s *complianceService) openCase(ctx context.Context, userID int64, rule string) error {
	now := s.now()
	c := &domain.ComplianceCase{
		UserID:    userID,
		Reason:    fmt.Sprintf("automatic trigger: %s threshold exceeded", rule),
		Status:    domain.CaseStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.caseRepo.Create(ctx, c); err != nil {
		return apperror.InternalError(err)
	}

	metrics.ComplianceCasesOpened.WithLabelValues(rule).Inc()
	s.log.Info().Int64("user_id", userID).Int64("case_id", c.ID).Str("rule", rule).Msg("compliance case opened")

	if err := s.notifier.Notify(ctx, userID,
		"Your account is under compliance review. Settlements are paused until it completes.",
		"submit_evidence"); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("case-opened notification failed")
	}
	return nil
}

// RecordDealInitiated bumps the rolling deal counters.
func (s *complianceService) RecordDealInitiated(ctx context.Context, userID int64) error {
	if err := s.window.RecordDeal(ctx, userID, s.now()); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("deal counter write failed")
	}
	return nil
}

// RecordTransferSettled bumps the settled-transfer counters and the
// distinct-destination set.
func (s *complianceService) RecordTransferSettled(ctx context.Context, userID int64, destination string) error {
	now := s.now()
	if err := s.window.RecordTransfer(ctx, userID, now); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("transfer counter write failed")
	}
	if err := s.window.RecordDestination(ctx, userID, destination, now); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("destination counter write failed")
	}
	return nil
}

// Resolve closes an open case. Approval marks it completed, which exempts the
// user from automatic triggers permanently.
func (s *complianceService) Resolve(ctx context.Context, caseID int64, approve bool) error {
	c, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return apperror.InternalError(err)
	}
	if c == nil {
		return apperror.ErrNotFound("compliance case")
	}

	to := domain.CaseStatusRejected
	outcome := "Your compliance review was rejected. You may resubmit with additional evidence."
	if approve {
		to = domain.CaseStatusCompleted
		outcome = "Your compliance review completed successfully."
	}

	changed, err := s.caseRepo.UpdateStatusIf(ctx, caseID, domain.CaseStatusOpen, to)
	if err != nil {
		return apperror.InternalError(err)
	}
	if !changed {
		return apperror.ErrCaseNotOpen()
	}

	s.log.Info().Int64("case_id", caseID).Bool("approved", approve).Msg("compliance case resolved")
	if err := s.notifier.Notify(ctx, c.UserID, outcome); err != nil {
		s.log.Warn().Err(err).Int64("user_id", c.UserID).Msg("case-resolved notification failed")
	}
	return nil
}

// Resubmit opens a fresh case carrying new evidence. Only a user whose last
// review was rejected may resubmit; history is never mutated.
func (s *complianceService) Resubmit(ctx context.Context, userID int64, evidence []string) (*domain.ComplianceCase, error) {
	open, err := s.caseRepo.GetOpenByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if open != nil {
		return nil, apperror.ErrCaseAlreadyOpen()
	}

	rejected, err := s.caseRepo.HasRejectedByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !rejected {
		return nil, apperror.ErrNoRejectedCase()
	}

	now := s.now()
	c := &domain.ComplianceCase{
		UserID:    userID,
		Reason:    "evidence resubmission",
		Evidence:  evidence,
		Status:    domain.CaseStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.caseRepo.Create(ctx, c); err != nil {
		return nil, apperror.InternalError(err)
	}
	s.log.Info().Int64("user_id", userID).Int64("case_id", c.ID).Msg("compliance case resubmitted")
	return c, nil
}
