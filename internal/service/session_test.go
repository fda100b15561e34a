package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkotov/go-chat-bridge/internal/adapter"
	"github.com/mkotov/go-chat-bridge/internal/bridge"
	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/mkotov/go-chat-bridge/internal/mock"
	"github.com/mkotov/go-chat-bridge/models"
)

// newTestSessionService wires the service to a synchronous bridge so every
// scheduled task completes before Schedule returns and its result is already
// buffered on the channel.
func newTestSessionService(t *testing.T, ctrl *gomock.Controller) (SessionService, *mock.MockBridgeAdapter, *mock.MockConversationCache, *bridge.Bridge) {
	t.Helper()
	mockAdapter := mock.NewMockBridgeAdapter(ctrl)
	mockCache := mock.NewMockConversationCache(ctrl)
	tasks := bridge.New(bridge.SyncExecutor{}, logger.Nop())

	svc := NewSessionService(mockAdapter, mockCache, tasks, logger.Nop())
	return svc, mockAdapter, mockCache, tasks
}

func nextResult(t *testing.T, tasks *bridge.Bridge) bridge.Result {
	t.Helper()
	select {
	case res := <-tasks.Results():
		return res
	default:
		t.Fatal("no result buffered")
		return bridge.Result{}
	}
}

func TestSessionService_Connect_ObtainsTokenWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	mockAdapter.EXPECT().Ping(gomock.Any(), creds.BaseURL, "", "pw").Return(200, nil)
	mockAdapter.EXPECT().ObtainToken(gomock.Any(), creds.BaseURL, "pw").Return("tok-1", nil)

	taskID := svc.Connect(context.Background(), creds)

	res := nextResult(t, tasks)
	require.NoError(t, res.Err)
	assert.Equal(t, taskID, res.TaskID)

	update, ok := res.Value.(ConnectUpdate)
	require.True(t, ok)
	require.NoError(t, update.Err)
	assert.Equal(t, 200, update.Status)
	assert.Equal(t, "tok-1", update.Token)
}

func TestSessionService_Connect_SkipsExchangeWithStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw", Token: "stored"}

	mockAdapter.EXPECT().Ping(gomock.Any(), creds.BaseURL, "stored", "pw").Return(200, nil)

	svc.Connect(context.Background(), creds)

	update := nextResult(t, tasks).Value.(ConnectUpdate)
	require.NoError(t, update.Err)
	assert.Empty(t, update.Token)
}

func TestSessionService_Connect_TokenExchangeFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	mockAdapter.EXPECT().Ping(gomock.Any(), creds.BaseURL, "", "pw").Return(200, nil)
	mockAdapter.EXPECT().ObtainToken(gomock.Any(), creds.BaseURL, "pw").Return("", adapter.ErrAuth)

	svc.Connect(context.Background(), creds)

	update := nextResult(t, tasks).Value.(ConnectUpdate)
	require.NoError(t, update.Err)
	assert.Equal(t, 200, update.Status)
	assert.Empty(t, update.Token)
}

func TestSessionService_Connect_PingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://nowhere.local", Password: "pw"}

	mockAdapter.EXPECT().Ping(gomock.Any(), creds.BaseURL, "", "pw").Return(0, adapter.ErrConnectivity)

	svc.Connect(context.Background(), creds)

	update := nextResult(t, tasks).Value.(ConnectUpdate)
	require.Error(t, update.Err)
	assert.ErrorIs(t, update.Err, adapter.ErrConnectivity)
}

func TestSessionService_LoadConversations_ProvisionalThenReconciled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	cached := []models.Conversation{{ID: "c1", Name: "Old Name"}}
	fetched := []models.Conversation{{ID: "c1", Name: "New Name"}, {ID: "c2", Name: "Fresh"}}
	raws := []json.RawMessage{json.RawMessage(`{"guid":"c1"}`), json.RawMessage(`{"guid":"c2"}`)}

	gomock.InOrder(
		mockCache.EXPECT().ListCached(gomock.Any(), cachedListLimit).Return(cached, nil),
		mockAdapter.EXPECT().Conversations(gomock.Any(), creds.BaseURL, "pw").Return(fetched, raws, nil),
		mockCache.EXPECT().UpsertBatch(gomock.Any(), fetched, raws).Return(nil),
		mockCache.EXPECT().ListCached(gomock.Any(), cachedListLimit).Return(fetched, nil),
	)

	svc.LoadConversations(context.Background(), creds)

	provisional := nextResult(t, tasks).Value.(ConversationsUpdate)
	assert.True(t, provisional.Provisional)
	assert.Equal(t, cached, provisional.Conversations)

	reconciled := nextResult(t, tasks).Value.(ConversationsUpdate)
	assert.False(t, reconciled.Provisional)
	require.NoError(t, reconciled.Err)
	assert.Equal(t, fetched, reconciled.Conversations)
}

func TestSessionService_LoadConversations_EmptyCacheSkipsProvisional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	fetched := []models.Conversation{{ID: "c1", Name: "A"}}
	raws := []json.RawMessage{json.RawMessage(`{"guid":"c1"}`)}

	mockCache.EXPECT().ListCached(gomock.Any(), cachedListLimit).Return(nil, nil)
	mockAdapter.EXPECT().Conversations(gomock.Any(), creds.BaseURL, "pw").Return(fetched, raws, nil)
	mockCache.EXPECT().UpsertBatch(gomock.Any(), fetched, raws).Return(nil)
	mockCache.EXPECT().ListCached(gomock.Any(), cachedListLimit).Return(fetched, nil)

	svc.LoadConversations(context.Background(), creds)

	update := nextResult(t, tasks).Value.(ConversationsUpdate)
	assert.False(t, update.Provisional)
	assert.Equal(t, fetched, update.Conversations)

	select {
	case extra := <-tasks.Results():
		t.Fatalf("unexpected extra result: %+v", extra)
	default:
	}
}

func TestSessionService_LoadConversations_FetchFailureKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	cached := []models.Conversation{{ID: "c1", Name: "Kept"}}

	mockCache.EXPECT().ListCached(gomock.Any(), cachedListLimit).Return(cached, nil)
	mockAdapter.EXPECT().Conversations(gomock.Any(), creds.BaseURL, "pw").
		Return(nil, nil, adapter.ErrTransport)

	svc.LoadConversations(context.Background(), creds)

	provisional := nextResult(t, tasks).Value.(ConversationsUpdate)
	assert.True(t, provisional.Provisional)

	failed := nextResult(t, tasks).Value.(ConversationsUpdate)
	require.Error(t, failed.Err)
	assert.ErrorIs(t, failed.Err, adapter.ErrTransport)
	assert.Empty(t, failed.Conversations)
}

func TestSessionService_LoadConversations_CacheWriteFailureSurfacesFetchedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	fetched := []models.Conversation{{ID: "c1", Name: "A"}}
	raws := []json.RawMessage{json.RawMessage(`{"guid":"c1"}`)}
	writeErr := errors.New("disk full")

	mockCache.EXPECT().ListCached(gomock.Any(), cachedListLimit).Return(nil, nil)
	mockAdapter.EXPECT().Conversations(gomock.Any(), creds.BaseURL, "pw").Return(fetched, raws, nil)
	mockCache.EXPECT().UpsertBatch(gomock.Any(), fetched, raws).Return(writeErr)

	svc.LoadConversations(context.Background(), creds)

	update := nextResult(t, tasks).Value.(ConversationsUpdate)
	require.NoError(t, update.Err)
	require.Error(t, update.StorageErr)
	assert.ErrorIs(t, update.StorageErr, writeErr)
	assert.Equal(t, fetched, update.Conversations)
}

func TestSessionService_LoadConversations_CacheReadFailureStillFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	fetched := []models.Conversation{{ID: "c1", Name: "A"}}
	raws := []json.RawMessage{json.RawMessage(`{"guid":"c1"}`)}

	mockCache.EXPECT().ListCached(gomock.Any(), cachedListLimit).Return(nil, errors.New("cache locked"))
	mockAdapter.EXPECT().Conversations(gomock.Any(), creds.BaseURL, "pw").Return(fetched, raws, nil)
	mockCache.EXPECT().UpsertBatch(gomock.Any(), fetched, raws).Return(nil)
	mockCache.EXPECT().ListCached(gomock.Any(), cachedListLimit).Return(fetched, nil)

	svc.LoadConversations(context.Background(), creds)

	update := nextResult(t, tasks).Value.(ConversationsUpdate)
	assert.False(t, update.Provisional)
	assert.Equal(t, fetched, update.Conversations)
}

func TestSessionService_LoadContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	contacts := []models.ContactEntry{{Label: "Alice", Address: "+15551234567"}}
	mockAdapter.EXPECT().Contacts(gomock.Any(), creds.BaseURL, "pw").Return(contacts, nil)

	svc.LoadContacts(context.Background(), creds)

	update := nextResult(t, tasks).Value.(ContactsUpdate)
	require.NoError(t, update.Err)
	assert.Equal(t, contacts, update.Contacts)
}

func TestSessionService_LoadContacts_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	mockAdapter.EXPECT().Contacts(gomock.Any(), creds.BaseURL, "pw").Return(nil, adapter.ErrDecode)

	svc.LoadContacts(context.Background(), creds)

	update := nextResult(t, tasks).Value.(ContactsUpdate)
	assert.ErrorIs(t, update.Err, adapter.ErrDecode)
}

func TestSessionService_CreateConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}
	addresses := []string{"+15551234567"}

	created := models.Conversation{ID: "new-guid", Name: "Alice"}
	reconciled := []models.Conversation{created}

	gomock.InOrder(
		mockAdapter.EXPECT().CreateChat(gomock.Any(), creds.BaseURL, "pw", addresses, "hello").Return(created, nil),
		mockCache.EXPECT().UpsertBatch(gomock.Any(), []models.Conversation{created}, nil).Return(nil),
		mockCache.EXPECT().ListCached(gomock.Any(), cachedListLimit).Return(reconciled, nil),
	)

	svc.CreateConversation(context.Background(), creds, addresses, "hello")

	list := nextResult(t, tasks).Value.(ConversationsUpdate)
	assert.Equal(t, reconciled, list.Conversations)
	assert.False(t, list.Provisional)

	update := nextResult(t, tasks).Value.(ChatCreatedUpdate)
	require.NoError(t, update.Err)
	require.NoError(t, update.StorageErr)
	assert.Equal(t, created, update.Conversation)
}

func TestSessionService_CreateConversation_CacheWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	created := models.Conversation{ID: "new-guid", Name: "Alice"}
	writeErr := errors.New("disk full")

	mockAdapter.EXPECT().CreateChat(gomock.Any(), creds.BaseURL, "pw", []string{"+1555"}, "hi").Return(created, nil)
	mockCache.EXPECT().UpsertBatch(gomock.Any(), []models.Conversation{created}, nil).Return(writeErr)

	svc.CreateConversation(context.Background(), creds, []string{"+1555"}, "hi")

	update := nextResult(t, tasks).Value.(ChatCreatedUpdate)
	require.NoError(t, update.Err)
	assert.ErrorIs(t, update.StorageErr, writeErr)
	assert.Equal(t, created, update.Conversation)
}

func TestSessionService_CreateConversation_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, tasks := newTestSessionService(t, ctrl)
	creds := models.SessionCredentials{BaseURL: "https://bridge.local", Password: "pw"}

	mockAdapter.EXPECT().CreateChat(gomock.Any(), creds.BaseURL, "pw", []string{"+1555"}, "hi").
		Return(models.Conversation{}, adapter.ErrCreation)

	svc.CreateConversation(context.Background(), creds, []string{"+1555"}, "hi")

	update := nextResult(t, tasks).Value.(ChatCreatedUpdate)
	assert.ErrorIs(t, update.Err, adapter.ErrCreation)
}
