package service

import (
	"context"
	"testing"

	"github.com/RuslanName/P2PBot-sub000/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationService_HeldAmount_SumsBothSides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealRepo := mocks.NewMockDealRepository(ctrl)
	svc := NewReservationService(dealRepo)

	ctx := context.Background()
	dealRepo.EXPECT().HeldAsCounterparty(ctx, int64(42), "BTC").Return(dec("0.525"), nil)
	dealRepo.EXPECT().HeldAsIssuer(ctx, int64(42), "BTC").Return(dec("0.21"), nil)

	held, err := svc.HeldAmount(ctx, 42, "BTC")
	require.NoError(t, err)
	assert.True(t, held.Equal(dec("0.735")))
}

func TestReservationService_HeldAmount_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealRepo := mocks.NewMockDealRepository(ctrl)
	svc := NewReservationService(dealRepo)

	ctx := context.Background()
	dealRepo.EXPECT().HeldAsCounterparty(ctx, int64(42), "BTC").Return(dec("0"), assert.AnError)

	_, err := svc.HeldAmount(ctx, 42, "BTC")
	assert.Error(t, err)
}
