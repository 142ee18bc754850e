package supabase

import (
	"errors"
	"testing"
	"time"

	"clementus360/task-coach/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store unavailable")

// failingStore simulates a full store outage.
type failingStore struct{}

func (failingStore) GetProfile(string) (*types.UserProfile, error) { return nil, errStoreDown }
func (failingStore) GetTasks(string) ([]types.Task, error)         { return nil, errStoreDown }
func (failingStore) GetStatistics(string) (types.UserStatistics, error) {
	return types.UserStatistics{}, errStoreDown
}
func (failingStore) GetRecentActivity(string, int) ([]types.ActivityEntry, error) {
	return nil, errStoreDown
}
func (failingStore) GetConversationHistory(string, int) ([]types.ConversationTurn, error) {
	return nil, errStoreDown
}
func (failingStore) SaveConversationTurn(types.ConversationTurn) error { return errStoreDown }
func (failingStore) TrackActivity(types.ActivityEntry) error           { return errStoreDown }
func (failingStore) CreateTask(types.Task) (types.Task, error)         { return types.Task{}, errStoreDown }
func (failingStore) CompleteTask(string, string) error                 { return errStoreDown }

// stubStore returns canned records and remembers requested limits.
type stubStore struct {
	failingStore
	activityLimit int
	historyLimit  int
}

func (s *stubStore) GetProfile(userID string) (*types.UserProfile, error) {
	return &types.UserProfile{UserID: userID, FullName: "Ada Lovelace"}, nil
}

func (s *stubStore) GetTasks(userID string) ([]types.Task, error) {
	return []types.Task{{UserID: userID, Title: "write tests"}}, nil
}

func (s *stubStore) GetStatistics(userID string) (types.UserStatistics, error) {
	return types.UserStatistics{UserID: userID, CurrentStreakDays: 3, TasksCompletedTotal: 12}, nil
}

func (s *stubStore) GetRecentActivity(userID string, limit int) ([]types.ActivityEntry, error) {
	s.activityLimit = limit
	return []types.ActivityEntry{{UserID: userID, Description: "did a thing", CreatedAt: time.Now()}}, nil
}

func (s *stubStore) GetConversationHistory(userID string, limit int) ([]types.ConversationTurn, error) {
	s.historyLimit = limit
	return []types.ConversationTurn{{UserID: userID, Message: "hi", Response: "hello"}}, nil
}

func TestRetrieveContextDefaultsOnTotalOutage(t *testing.T) {
	rc := RetrieveContext(failingStore{}, "user-1")

	assert.Nil(t, rc.Profile)
	assert.Empty(t, rc.Tasks)
	assert.Equal(t, types.UserStatistics{UserID: "user-1"}, rc.Stats)
	assert.Empty(t, rc.Activity)
	assert.Empty(t, rc.History)
}

func TestRetrieveContextJoinsAllReads(t *testing.T) {
	store := &stubStore{}

	rc := RetrieveContext(store, "user-1")

	require.NotNil(t, rc.Profile)
	assert.Equal(t, "Ada Lovelace", rc.Profile.FullName)
	require.Len(t, rc.Tasks, 1)
	assert.Equal(t, 3, rc.Stats.CurrentStreakDays)
	require.Len(t, rc.Activity, 1)
	require.Len(t, rc.History, 1)

	assert.Equal(t, 10, store.activityLimit)
	assert.Equal(t, 5, store.historyLimit)
}
