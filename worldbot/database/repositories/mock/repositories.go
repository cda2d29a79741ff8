package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"

	models "github.com/worlddominion/worldbot/worldbot/database/models"
	repositories "github.com/worlddominion/worldbot/worldbot/database/repositories"
)

// MockNationRepository is a mock of NationRepository interface.
type MockNationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockNationRepositoryMockRecorder
	isgomock struct{}
}

// MockNationRepositoryMockRecorder is the mock recorder for MockNationRepository.
type MockNationRepositoryMockRecorder struct {
	mock *MockNationRepository
}

// NewMockNationRepository creates a new mock instance.
func NewMockNationRepository(ctrl *gomock.Controller) *MockNationRepository {
	mock := &MockNationRepository{ctrl: ctrl}
	mock.recorder = &MockNationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNationRepository) EXPECT() *MockNationRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockNationRepository) Create(ctx context.Context, nation *models.Nation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, nation)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockNationRepositoryMockRecorder) Create(ctx, nation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockNationRepository)(nil).Create), ctx, nation)
}

// GetByID mocks base method.
func (m *MockNationRepository) GetByID(ctx context.Context, id int64) (*models.Nation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Nation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockNationRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockNationRepository)(nil).GetByID), ctx, id)
}

// GetByName mocks base method.
func (m *MockNationRepository) GetByName(ctx context.Context, name string) (*models.Nation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByName", ctx, name)
	ret0, _ := ret[0].(*models.Nation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByName indicates an expected call of GetByName.
func (mr *MockNationRepositoryMockRecorder) GetByName(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByName", reflect.TypeOf((*MockNationRepository)(nil).GetByName), ctx, name)
}

// GetAll mocks base method.
func (m *MockNationRepository) GetAll(ctx context.Context) ([]*models.Nation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx)
	ret0, _ := ret[0].([]*models.Nation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockNationRepositoryMockRecorder) GetAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockNationRepository)(nil).GetAll), ctx)
}

// GetUnlocked mocks base method.
func (m *MockNationRepository) GetUnlocked(ctx context.Context) ([]*models.Nation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnlocked", ctx)
	ret0, _ := ret[0].([]*models.Nation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUnlocked indicates an expected call of GetUnlocked.
func (mr *MockNationRepositoryMockRecorder) GetUnlocked(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnlocked", reflect.TypeOf((*MockNationRepository)(nil).GetUnlocked), ctx)
}

// Update mocks base method.
func (m *MockNationRepository) Update(ctx context.Context, nation *models.Nation) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, nation)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockNationRepositoryMockRecorder) Update(ctx, nation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockNationRepository)(nil).Update), ctx, nation)
}

// SetLocked mocks base method.
func (m *MockNationRepository) SetLocked(ctx context.Context, id int64, locked bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetLocked", ctx, id, locked)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetLocked indicates an expected call of SetLocked.
func (mr *MockNationRepositoryMockRecorder) SetLocked(ctx, id, locked any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetLocked", reflect.TypeOf((*MockNationRepository)(nil).SetLocked), ctx, id, locked)
}

// Delete mocks base method.
func (m *MockNationRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockNationRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockNationRepository)(nil).Delete), ctx, id)
}

// MockPlayerRepository is a mock of PlayerRepository interface.
type MockPlayerRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPlayerRepositoryMockRecorder
	isgomock struct{}
}

// MockPlayerRepositoryMockRecorder is the mock recorder for MockPlayerRepository.
type MockPlayerRepositoryMockRecorder struct {
	mock *MockPlayerRepository
}

// NewMockPlayerRepository creates a new mock instance.
func NewMockPlayerRepository(ctrl *gomock.Controller) *MockPlayerRepository {
	mock := &MockPlayerRepository{ctrl: ctrl}
	mock.recorder = &MockPlayerRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPlayerRepository) EXPECT() *MockPlayerRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, player)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockPlayerRepositoryMockRecorder) Create(ctx, player any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPlayerRepository)(nil).Create), ctx, player)
}

// GetByDiscordID mocks base method.
func (m *MockPlayerRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.Player, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByDiscordID", ctx, discordID)
	ret0, _ := ret[0].(*models.Player)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByDiscordID indicates an expected call of GetByDiscordID.
func (mr *MockPlayerRepositoryMockRecorder) GetByDiscordID(ctx, discordID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByDiscordID", reflect.TypeOf((*MockPlayerRepository)(nil).GetByDiscordID), ctx, discordID)
}

// GetByID mocks base method.
func (m *MockPlayerRepository) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Player)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockPlayerRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPlayerRepository)(nil).GetByID), ctx, id)
}

// GetByNation mocks base method.
func (m *MockPlayerRepository) GetByNation(ctx context.Context, nationID int64) ([]*models.Player, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByNation", ctx, nationID)
	ret0, _ := ret[0].([]*models.Player)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByNation indicates an expected call of GetByNation.
func (mr *MockPlayerRepositoryMockRecorder) GetByNation(ctx, nationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByNation", reflect.TypeOf((*MockPlayerRepository)(nil).GetByNation), ctx, nationID)
}

// Update mocks base method.
func (m *MockPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, player)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockPlayerRepositoryMockRecorder) Update(ctx, player any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockPlayerRepository)(nil).Update), ctx, player)
}

// UpdateAfterWork mocks base method.
func (m *MockPlayerRepository) UpdateAfterWork(ctx context.Context, id, balance int64, workedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateAfterWork", ctx, id, balance, workedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateAfterWork indicates an expected call of UpdateAfterWork.
func (mr *MockPlayerRepositoryMockRecorder) UpdateAfterWork(ctx, id, balance, workedAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateAfterWork", reflect.TypeOf((*MockPlayerRepository)(nil).UpdateAfterWork), ctx, id, balance, workedAt)
}

// ClearNation mocks base method.
func (m *MockPlayerRepository) ClearNation(ctx context.Context, nationID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearNation", ctx, nationID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearNation indicates an expected call of ClearNation.
func (mr *MockPlayerRepositoryMockRecorder) ClearNation(ctx, nationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearNation", reflect.TypeOf((*MockPlayerRepository)(nil).ClearNation), ctx, nationID)
}

// MockTransactionRepository is a mock of TransactionRepository interface.
type MockTransactionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionRepositoryMockRecorder
	isgomock struct{}
}

// MockTransactionRepositoryMockRecorder is the mock recorder for MockTransactionRepository.
type MockTransactionRepositoryMockRecorder struct {
	mock *MockTransactionRepository
}

// NewMockTransactionRepository creates a new mock instance.
func NewMockTransactionRepository(ctrl *gomock.Controller) *MockTransactionRepository {
	mock := &MockTransactionRepository{ctrl: ctrl}
	mock.recorder = &MockTransactionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionRepository) EXPECT() *MockTransactionRepositoryMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockTransactionRepository) Append(ctx context.Context, tx *models.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", ctx, tx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Append indicates an expected call of Append.
func (mr *MockTransactionRepositoryMockRecorder) Append(ctx, tx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockTransactionRepository)(nil).Append), ctx, tx)
}

// GetSince mocks base method.
func (m *MockTransactionRepository) GetSince(ctx context.Context, since time.Time, filter repositories.TransactionFilter) ([]*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSince", ctx, since, filter)
	ret0, _ := ret[0].([]*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSince indicates an expected call of GetSince.
func (mr *MockTransactionRepositoryMockRecorder) GetSince(ctx, since, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSince", reflect.TypeOf((*MockTransactionRepository)(nil).GetSince), ctx, since, filter)
}

// GetBetween mocks base method.
func (m *MockTransactionRepository) GetBetween(ctx context.Context, from, to time.Time) ([]*models.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBetween", ctx, from, to)
	ret0, _ := ret[0].([]*models.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBetween indicates an expected call of GetBetween.
func (mr *MockTransactionRepositoryMockRecorder) GetBetween(ctx, from, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBetween", reflect.TypeOf((*MockTransactionRepository)(nil).GetBetween), ctx, from, to)
}

// MockEventRepository is a mock of EventRepository interface.
type MockEventRepository struct {
	ctrl     *gomock.Controller
	recorder *MockEventRepositoryMockRecorder
	isgomock struct{}
}

// MockEventRepositoryMockRecorder is the mock recorder for MockEventRepository.
type MockEventRepositoryMockRecorder struct {
	mock *MockEventRepository
}

// NewMockEventRepository creates a new mock instance.
func NewMockEventRepository(ctrl *gomock.Controller) *MockEventRepository {
	mock := &MockEventRepository{ctrl: ctrl}
	mock.recorder = &MockEventRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventRepository) EXPECT() *MockEventRepositoryMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockEventRepository) Append(ctx context.Context, event *models.GameEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Append indicates an expected call of Append.
func (mr *MockEventRepositoryMockRecorder) Append(ctx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockEventRepository)(nil).Append), ctx, event)
}

// GetRecent mocks base method.
func (m *MockEventRepository) GetRecent(ctx context.Context, nationID int64, limit int) ([]*models.GameEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecent", ctx, nationID, limit)
	ret0, _ := ret[0].([]*models.GameEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecent indicates an expected call of GetRecent.
func (mr *MockEventRepositoryMockRecorder) GetRecent(ctx, nationID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecent", reflect.TypeOf((*MockEventRepository)(nil).GetRecent), ctx, nationID, limit)
}

// MockWarRepository is a mock of WarRepository interface.
type MockWarRepository struct {
	ctrl     *gomock.Controller
	recorder *MockWarRepositoryMockRecorder
	isgomock struct{}
}

// MockWarRepositoryMockRecorder is the mock recorder for MockWarRepository.
type MockWarRepositoryMockRecorder struct {
	mock *MockWarRepository
}

// NewMockWarRepository creates a new mock instance.
func NewMockWarRepository(ctrl *gomock.Controller) *MockWarRepository {
	mock := &MockWarRepository{ctrl: ctrl}
	mock.recorder = &MockWarRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWarRepository) EXPECT() *MockWarRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockWarRepository) Create(ctx context.Context, war *models.War) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, war)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockWarRepositoryMockRecorder) Create(ctx, war any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockWarRepository)(nil).Create), ctx, war)
}

// End mocks base method.
func (m *MockWarRepository) End(ctx context.Context, id int64, winner string, damage int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "End", ctx, id, winner, damage)
	ret0, _ := ret[0].(error)
	return ret0
}

// End indicates an expected call of End.
func (mr *MockWarRepositoryMockRecorder) End(ctx, id, winner, damage any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "End", reflect.TypeOf((*MockWarRepository)(nil).End), ctx, id, winner, damage)
}

// GetActiveByNation mocks base method.
func (m *MockWarRepository) GetActiveByNation(ctx context.Context, nationID int64) ([]*models.War, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveByNation", ctx, nationID)
	ret0, _ := ret[0].([]*models.War)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveByNation indicates an expected call of GetActiveByNation.
func (mr *MockWarRepositoryMockRecorder) GetActiveByNation(ctx, nationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveByNation", reflect.TypeOf((*MockWarRepository)(nil).GetActiveByNation), ctx, nationID)
}
