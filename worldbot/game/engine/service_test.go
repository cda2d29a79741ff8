package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
	"github.com/worlddominion/worldbot/worldbot/database/repositories/mock"
	"github.com/worlddominion/worldbot/worldbot/game/quota"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

type serviceMocks struct {
	nations *mock.MockNationRepository
	players *mock.MockPlayerRepository
	txs     *mock.MockTransactionRepository
	wars    *mock.MockWarRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		nations: mock.NewMockNationRepository(ctrl),
		players: mock.NewMockPlayerRepository(ctrl),
		txs:     mock.NewMockTransactionRepository(ctrl),
		wars:    mock.NewMockWarRepository(ctrl),
	}
	svc := NewService(m.nations, m.players, m.txs, m.wars, quota.NewTracker(m.txs), rules.Default())
	return svc, m
}

func serviceActor(role string) *models.Player {
	return &models.Player{
		ID:        7,
		DiscordID: "100200300",
		Username:  "tester",
		Role:      role,
		NationID:  1,
	}
}

func TestServiceProduce_AppendsLedgerWithActor(t *testing.T) {
	svc, m := newTestService(t)

	n := testNation()
	n.Resources["energy"] = 1000

	m.players.EXPECT().GetByDiscordID(gomock.Any(), "100200300").Return(serviceActor("economy_minister"), nil)
	m.txs.EXPECT().GetSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(n, nil)
	m.nations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	var logged *models.Transaction
	m.txs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *models.Transaction) error {
			logged = tx
			return nil
		})

	out := svc.Produce(context.Background(), "100200300", "food", 100)
	require.False(t, out.Rejected(), "rejection: %+v", out.Rejection)

	require.NotNil(t, logged)
	assert.Equal(t, int64(7), logged.PlayerID)
	assert.Equal(t, models.TransactionProduce, logged.Type)
}

func TestServiceProduce_UnregisteredActor(t *testing.T) {
	svc, m := newTestService(t)

	m.players.EXPECT().GetByDiscordID(gomock.Any(), "100200300").Return(nil, repositories.ErrNotFound)

	out := svc.Produce(context.Background(), "100200300", "food", 100)
	require.True(t, out.Rejected())
	assert.Equal(t, RejectNotFound, out.Rejection.Code)
	assert.Contains(t, out.Rejection.Reason, "not registered")
}

func TestServiceProduce_NoNation(t *testing.T) {
	svc, m := newTestService(t)

	actor := serviceActor("recruit")
	actor.NationID = 0
	m.players.EXPECT().GetByDiscordID(gomock.Any(), "100200300").Return(actor, nil)

	out := svc.Produce(context.Background(), "100200300", "food", 100)
	require.True(t, out.Rejected())
	assert.Equal(t, RejectValidation, out.Rejection.Code)
}

func TestServiceTax_RetriesOnVersionConflict(t *testing.T) {
	svc, m := newTestService(t)

	m.players.EXPECT().GetByDiscordID(gomock.Any(), "100200300").Return(serviceActor("chief"), nil)
	m.nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testNation(), nil).Times(2)
	m.nations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repositories.ErrVersionConflict)
	m.nations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	out := svc.Tax(context.Background(), "100200300", 10)
	assert.False(t, out.Rejected(), "rejection: %+v", out.Rejection)
}

func TestServiceTax_GivesUpAfterRetries(t *testing.T) {
	svc, m := newTestService(t)

	m.players.EXPECT().GetByDiscordID(gomock.Any(), "100200300").Return(serviceActor("chief"), nil)
	m.nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testNation(), nil).Times(writeRetries)
	m.nations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repositories.ErrVersionConflict).Times(writeRetries)

	out := svc.Tax(context.Background(), "100200300", 10)
	require.True(t, out.Rejected())
	assert.Equal(t, RejectStore, out.Rejection.Code)
}

func TestServiceTrade_CompensatesHalfAppliedSwap(t *testing.T) {
	svc, m := newTestService(t)

	alpha := testNation()
	alpha.Resources["food"] = 500
	beta := testNation()
	beta.ID = 2
	beta.Name = "Beta"

	m.players.EXPECT().GetByDiscordID(gomock.Any(), "100200300").Return(serviceActor("chief"), nil)
	m.txs.EXPECT().GetSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.nations.EXPECT().GetByName(gomock.Any(), "Beta").Return(beta, nil)
	m.nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(alpha, nil)
	m.nations.EXPECT().GetByID(gomock.Any(), int64(2)).Return(beta, nil)

	// Initiator leg lands, counterparty leg fails hard.
	m.nations.EXPECT().Update(gomock.Any(), idMatches(1)).Return(nil)
	m.nations.EXPECT().Update(gomock.Any(), idMatches(2)).Return(errors.New("disk full"))

	// The compensating write must put the initiator's resources back.
	m.nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(alpha.Clone(), nil)
	var restored *models.Nation
	m.nations.EXPECT().Update(gomock.Any(), idMatches(1)).DoAndReturn(
		func(_ context.Context, n *models.Nation) error {
			restored = n
			return nil
		})

	out := svc.Trade(context.Background(), "100200300", "Beta", "food", 100, "metal", 10)
	require.True(t, out.Rejected())
	assert.Equal(t, RejectStore, out.Rejection.Code)

	require.NotNil(t, restored)
	assert.Equal(t, int64(500), restored.Resource("food"))
}

func TestServiceWork_WritesBalanceAndCooldown(t *testing.T) {
	svc, m := newTestService(t)

	m.players.EXPECT().GetByDiscordID(gomock.Any(), "100200300").Return(serviceActor("citizen"), nil)
	m.txs.EXPECT().GetSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(testNation(), nil)
	m.nations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	// Citizen salary 20, 15% withheld, net 17.
	m.players.EXPECT().
		UpdateAfterWork(gomock.Any(), int64(7), int64(17), gomock.AssignableToTypeOf(time.Time{})).
		Return(nil)
	m.txs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	out := svc.Work(context.Background(), "100200300")
	require.False(t, out.Rejected(), "rejection: %+v", out.Rejection)
	assert.Equal(t, int64(17), out.Applied.Player.Balance)
}

func TestServiceWork_CompensatesTreasuryOnPlayerWriteFailure(t *testing.T) {
	svc, m := newTestService(t)

	n := testNation()

	m.players.EXPECT().GetByDiscordID(gomock.Any(), "100200300").Return(serviceActor("citizen"), nil)
	m.txs.EXPECT().GetSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(n, nil)
	m.nations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.players.EXPECT().
		UpdateAfterWork(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("deadlock detected"))

	// Compensating leg: treasury back to the pre-work snapshot.
	m.nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(n.Clone(), nil)
	var restored *models.Nation
	m.nations.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, nn *models.Nation) error {
			restored = nn
			return nil
		})

	out := svc.Work(context.Background(), "100200300")
	require.True(t, out.Rejected())
	assert.Equal(t, RejectStore, out.Rejection.Code)

	require.NotNil(t, restored)
	assert.Equal(t, int64(5000), restored.Resource("money"))
}

func TestServiceProduce_LedgerFailureIsNotFatal(t *testing.T) {
	svc, m := newTestService(t)

	n := testNation()
	n.Resources["energy"] = 1000

	m.players.EXPECT().GetByDiscordID(gomock.Any(), "100200300").Return(serviceActor("chief"), nil)
	m.txs.EXPECT().GetSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(n, nil)
	m.nations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.txs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("log table full"))

	out := svc.Produce(context.Background(), "100200300", "food", 50)
	assert.False(t, out.Rejected(), "rejection: %+v", out.Rejection)
}

// idMatches matches a *models.Nation by primary key.
type idMatcher int64

func idMatches(id int64) gomock.Matcher { return idMatcher(id) }

func (m idMatcher) Matches(x any) bool {
	n, ok := x.(*models.Nation)
	return ok && n.ID == int64(m)
}

func (m idMatcher) String() string {
	return fmt.Sprintf("nation with ID %d", int64(m))
}
