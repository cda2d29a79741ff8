package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/worlddominion/worldbot/worldbot/database/models"
	"github.com/worlddominion/worldbot/worldbot/database/repositories"
	"github.com/worlddominion/worldbot/worldbot/database/repositories/mock"
)

func searchFixtures() []*models.Nation {
	return []*models.Nation{
		{ID: 1, Name: "Atlantis"},
		{ID: 2, Name: "Avalon"},
		{ID: 3, Name: "Byzantium"},
	}
}

func TestResolve_ExactMatchSkipsFuzzy(t *testing.T) {
	ctrl := gomock.NewController(t)
	nations := mock.NewMockNationRepository(ctrl)
	svc := NewNationSearchService(nations)

	want := &models.Nation{ID: 1, Name: "Atlantis"}
	nations.EXPECT().GetByName(gomock.Any(), "Atlantis").Return(want, nil)

	got, err := svc.Resolve(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve_FuzzyFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	nations := mock.NewMockNationRepository(ctrl)
	svc := NewNationSearchService(nations)

	nations.EXPECT().GetByName(gomock.Any(), "atlntis").Return(nil, repositories.ErrNotFound)
	nations.EXPECT().GetAll(gomock.Any()).Return(searchFixtures(), nil)

	got, err := svc.Resolve(context.Background(), "atlntis")
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", got.Name)
}

func TestResolve_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	nations := mock.NewMockNationRepository(ctrl)
	svc := NewNationSearchService(nations)

	nations.EXPECT().GetByName(gomock.Any(), "zzzz").Return(nil, repositories.ErrNotFound)
	nations.EXPECT().GetAll(gomock.Any()).Return(searchFixtures(), nil)

	_, err := svc.Resolve(context.Background(), "zzzz")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestResolve_StoreErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	nations := mock.NewMockNationRepository(ctrl)
	svc := NewNationSearchService(nations)

	boom := errors.New("connection refused")
	nations.EXPECT().GetByName(gomock.Any(), "Atlantis").Return(nil, boom)

	_, err := svc.Resolve(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, boom)
}

func TestSuggest_EmptyPartialListsFirstNations(t *testing.T) {
	ctrl := gomock.NewController(t)
	nations := mock.NewMockNationRepository(ctrl)
	svc := NewNationSearchService(nations)

	nations.EXPECT().GetAll(gomock.Any()).Return(searchFixtures(), nil)

	names, err := svc.Suggest(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Atlantis", "Avalon"}, names)
}

func TestSuggest_RanksAndLimits(t *testing.T) {
	ctrl := gomock.NewController(t)
	nations := mock.NewMockNationRepository(ctrl)
	svc := NewNationSearchService(nations)

	nations.EXPECT().GetAll(gomock.Any()).Return(searchFixtures(), nil).Times(2)

	names, err := svc.Suggest(context.Background(), "av", 25)
	require.NoError(t, err)
	assert.Contains(t, names, "Avalon")
	assert.NotContains(t, names, "Byzantium")

	names, err = svc.Suggest(context.Background(), "a", 2)
	require.NoError(t, err)
	assert.Len(t, names, 2)
}
