package service

import (
	"context"
	"testing"
	"time"

	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type sweeperTestDeps struct {
	sw       *Sweeper
	dealRepo *mocks.MockDealRepository
	dealSvc  *mocks.MockDealService
	caseRepo *mocks.MockComplianceRepository
	notifier *mocks.MockNotifier
	ctrl     *gomock.Controller
}

func setupSweeper(t *testing.T) *sweeperTestDeps {
	ctrl := gomock.NewController(t)
	d := &sweeperTestDeps{
		dealRepo: mocks.NewMockDealRepository(ctrl),
		dealSvc:  mocks.NewMockDealService(ctrl),
		caseRepo: mocks.NewMockComplianceRepository(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		ctrl:     ctrl,
	}
	d.sw = NewSweeper(d.dealRepo, d.dealSvc, d.caseRepo, d.notifier,
		time.Minute, 15*time.Minute, time.Hour, zerolog.Nop())
	return d
}

func TestSweeper_Sweep_ExpiresStaleDeals(t *testing.T) {
	d := setupSweeper(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	stale := domain.Deal{ID: 5, CounterpartyID: 42, Status: domain.DealStatusPending}

	d.dealRepo.EXPECT().ListExpirable(ctx, gomock.Any()).Return([]domain.Deal{stale}, nil)
	d.dealSvc.EXPECT().Expire(ctx, int64(5)).Return(true, nil)
	d.notifier.EXPECT().Notify(ctx, int64(42), gomock.Any()).Return(nil)
	d.caseRepo.EXPECT().ListExpirable(ctx, gomock.Any()).Return(nil, nil)

	d.sw.Sweep(ctx)
}

func TestSweeper_Sweep_SkipsDealConfirmedAfterList(t *testing.T) {
	d := setupSweeper(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	raced := domain.Deal{ID: 5, CounterpartyID: 42, Status: domain.DealStatusPending}

	d.dealRepo.EXPECT().ListExpirable(ctx, gomock.Any()).Return([]domain.Deal{raced}, nil)
	// Conditional write lost: the deal confirmed between list and expire.
	d.dealSvc.EXPECT().Expire(ctx, int64(5)).Return(false, nil)
	// No notification for a deal that did not expire.
	d.caseRepo.EXPECT().ListExpirable(ctx, gomock.Any()).Return(nil, nil)

	d.sw.Sweep(ctx)
}

func TestSweeper_Sweep_AutoRejectsStaleCases(t *testing.T) {
	d := setupSweeper(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.dealRepo.EXPECT().ListExpirable(ctx, gomock.Any()).Return(nil, nil)

	stale := domain.ComplianceCase{ID: 7, UserID: 42, Status: domain.CaseStatusOpen}
	d.caseRepo.EXPECT().ListExpirable(ctx, gomock.Any()).Return([]domain.ComplianceCase{stale}, nil)
	d.caseRepo.EXPECT().UpdateStatusIf(ctx, int64(7), domain.CaseStatusOpen, domain.CaseStatusRejected).
		Return(true, nil)
	d.notifier.EXPECT().Notify(ctx, int64(42), gomock.Any(), "submit_evidence").Return(nil)

	d.sw.Sweep(ctx)
}

func TestSweeper_Sweep_CutoffsUseConfiguredTTLs(t *testing.T) {
	d := setupSweeper(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	now := time.Now()

	d.dealRepo.EXPECT().ListExpirable(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) ([]domain.Deal, error) {
			assert.WithinDuration(t, now.Add(-15*time.Minute), cutoff, time.Second)
			return nil, nil
		})
	d.caseRepo.EXPECT().ListExpirable(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) ([]domain.ComplianceCase, error) {
			assert.WithinDuration(t, now.Add(-time.Hour), cutoff, time.Second)
			return nil, nil
		})

	d.sw.Sweep(ctx)
}

func TestSweeper_Run_StopsOnContextCancel(t *testing.T) {
	d := setupSweeper(t)
	defer d.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		d.sw.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop on context cancellation")
	}
}
