package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/database/repositories/mock"
	"github.com/worlddominion/worldbot/worldbot/game/engine"
	"github.com/worlddominion/worldbot/worldbot/game/quota"
	"github.com/worlddominion/worldbot/worldbot/game/rules"
)

func tickFixture(id int64, money int64) *models.Nation {
	n := models.NewNation("Nation", 1)
	n.ID = id
	n.Resources["money"] = money
	return n
}

func newTestScheduler(t *testing.T) (*Scheduler, *mock.MockNationRepository, *mock.MockTransactionRepository, *mock.MockEventRepository) {
	ctrl := gomock.NewController(t)
	nations := mock.NewMockNationRepository(ctrl)
	players := mock.NewMockPlayerRepository(ctrl)
	txs := mock.NewMockTransactionRepository(ctrl)
	events := mock.NewMockEventRepository(ctrl)
	wars := mock.NewMockWarRepository(ctrl)

	r := rules.Default()
	eng := engine.NewService(nations, players, txs, wars, quota.NewTracker(txs), r)
	return New(eng, nations, events, txs, r), nations, txs, events
}

func TestRunTick_TicksEveryNation(t *testing.T) {
	s, nations, txs, _ := newTestScheduler(t)

	all := []*models.Nation{tickFixture(1, 10000), tickFixture(2, 500)}
	nations.EXPECT().GetAll(gomock.Any()).Return(all, nil)
	nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(tickFixture(1, 10000), nil)
	nations.EXPECT().GetByID(gomock.Any(), int64(2)).Return(tickFixture(2, 500), nil)
	nations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	txs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.NoError(t, s.RunTick(context.Background()))
}

func TestRunTick_NoNationsIsANoop(t *testing.T) {
	s, nations, _, _ := newTestScheduler(t)

	nations.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
	assert.NoError(t, s.RunTick(context.Background()))
}

func TestRunTick_ListFailure(t *testing.T) {
	s, nations, _, _ := newTestScheduler(t)

	nations.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("connection refused"))
	assert.Error(t, s.RunTick(context.Background()))
}

func TestRunTick_RefusesConcurrentPass(t *testing.T) {
	s, _, _, _ := newTestScheduler(t)

	require.True(t, s.ticking.CompareAndSwap(false, true))
	defer s.ticking.Store(false)

	assert.Error(t, s.RunTick(context.Background()))
}

func TestRunRandomEvent_RecordsTheEvent(t *testing.T) {
	s, nations, _, events := newTestScheduler(t)

	n := tickFixture(1, 10000)
	nations.EXPECT().GetAll(gomock.Any()).Return([]*models.Nation{n}, nil)
	nations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(tickFixture(1, 10000), nil)
	nations.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	var recorded *models.GameEvent
	events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev *models.GameEvent) error {
			recorded = ev
			return nil
		})

	s.runRandomEvent(context.Background())

	require.NotNil(t, recorded)
	assert.Equal(t, int64(1), recorded.NationID)
	assert.NotEmpty(t, recorded.Type)
	assert.NotEmpty(t, recorded.Description)
}

func TestRunRandomEvent_EmptyWorldIsANoop(t *testing.T) {
	s, nations, _, _ := newTestScheduler(t)

	nations.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
	s.runRandomEvent(context.Background())
}
