package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgpt/internal/api"
	"tripgpt/internal/prefs"
)

// fakeAPI scripts the controller's view of the service.
type fakeAPI struct {
	generate func(*api.GeneratePlanRequest) (*api.TravelPlan, error)
	chat     func(int64, string) (*api.TravelPlan, error)
	list     func() ([]*api.TravelPlan, error)
	get      func(int64) (*api.TravelPlan, error)
	delete   func(int64) error
}

func (f *fakeAPI) GeneratePlan(_ context.Context, request *api.GeneratePlanRequest) (*api.TravelPlan, error) {
	return f.generate(request)
}

func (f *fakeAPI) Chat(_ context.Context, planID int64, message string) (*api.TravelPlan, error) {
	return f.chat(planID, message)
}

func (f *fakeAPI) ListPlans(_ context.Context) ([]*api.TravelPlan, error) {
	return f.list()
}

func (f *fakeAPI) GetPlan(_ context.Context, planID int64) (*api.TravelPlan, error) {
	return f.get(planID)
}

func (f *fakeAPI) DeletePlan(_ context.Context, planID int64) error {
	return f.delete(planID)
}

func planWithHistory(id int64, turns ...api.ConversationMessage) *api.TravelPlan {
	return &api.TravelPlan{
		ID:                  id,
		Title:               "Trip to Paris",
		Destination:         "Paris",
		DurationDays:        5,
		ConversationHistory: turns,
		CreatedAt:           time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSendMessageEmptyIsNoOp(t *testing.T) {
	called := false
	controller := NewController(&fakeAPI{
		generate: func(*api.GeneratePlanRequest) (*api.TravelPlan, error) {
			called = true
			return nil, nil
		},
	}, prefs.NewMemory())

	require.NoError(t, controller.SendMessage(context.Background(), ""))
	assert.False(t, called)
	assert.Empty(t, controller.Conversation())
	assert.Equal(t, StateIdle, controller.State())
}

func TestSendMessageGeneratesNewTrip(t *testing.T) {
	store := prefs.NewMemory()
	var request *api.GeneratePlanRequest
	plan := planWithHistory(42,
		api.ConversationMessage{Role: api.RoleUser, Content: "Plan a 5 day romantic trip to Paris with $2,000"},
		api.ConversationMessage{Role: api.RoleAssistant, Content: "# Day 1\nLouvre"},
	)
	controller := NewController(&fakeAPI{
		generate: func(r *api.GeneratePlanRequest) (*api.TravelPlan, error) {
			request = r
			return plan, nil
		},
	}, store)

	err := controller.SendMessage(context.Background(), "Plan a 5 day romantic trip to Paris with $2,000")
	require.NoError(t, err)

	require.NotNil(t, request)
	assert.Equal(t, "Paris", request.Destination)
	assert.Equal(t, 5, request.Duration)
	assert.Equal(t, 2, request.GroupSize)
	require.NotNil(t, request.Budget)
	assert.Equal(t, 2000.0, *request.Budget)

	require.NotNil(t, controller.Trip())
	assert.Equal(t, int64(42), controller.Trip().ID)

	// The transcript is rebuilt from the server's history.
	turns := controller.Conversation()
	require.Len(t, turns, 2)
	assert.True(t, turns[0].IsUser)
	assert.Equal(t, "# Day 1\nLouvre", turns[1].Message)

	// The new plan leads the recent list and becomes the last active trip.
	recent := controller.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, int64(42), recent[0].ID)
	assert.Equal(t, int64(42), prefs.LastActiveTrip(store))
	assert.Equal(t, StateIdle, controller.State())
}

func TestSendMessageFollowUpUsesFreshPlan(t *testing.T) {
	fresh := planWithHistory(7,
		api.ConversationMessage{Role: api.RoleUser, Content: "3 days in Rome"},
		api.ConversationMessage{Role: api.RoleUser, Content: "add a food tour"},
		api.ConversationMessage{Role: api.RoleAssistant, Content: "Updated itinerary"},
	)
	fake := &fakeAPI{
		chat: func(int64, string) (*api.TravelPlan, error) {
			// The chat response carries stale history on purpose.
			return planWithHistory(7), nil
		},
		get: func(int64) (*api.TravelPlan, error) { return fresh, nil },
	}
	controller := NewController(fake, prefs.NewMemory())
	require.NoError(t, controller.LoadTrip(context.Background(), 7))

	require.NoError(t, controller.SendMessage(context.Background(), "add a food tour"))

	turns := controller.Conversation()
	require.Len(t, turns, 3)
	assert.Equal(t, "Updated itinerary", turns[2].Message)
	assert.Same(t, fresh, controller.Trip())
}

func TestSendMessageWhileSendingIsNoOp(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls atomic.Int64
	controller := NewController(&fakeAPI{
		generate: func(*api.GeneratePlanRequest) (*api.TravelPlan, error) {
			calls.Add(1)
			close(started)
			<-release
			return planWithHistory(1,
				api.ConversationMessage{Role: api.RoleUser, Content: "3 days in Rome"},
				api.ConversationMessage{Role: api.RoleAssistant, Content: "# Day 1"},
			), nil
		},
	}, prefs.NewMemory())

	done := make(chan error)
	go func() { done <- controller.SendMessage(context.Background(), "3 days in Rome") }()
	<-started

	// A second send while the first is in flight must not reach the server
	// or touch the transcript.
	require.NoError(t, controller.SendMessage(context.Background(), "another trip"))
	assert.Equal(t, int64(1), calls.Load())
	turns := controller.Conversation()
	require.Len(t, turns, 1)
	assert.Equal(t, "3 days in Rome", turns[0].Message)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateIdle, controller.State())
	assert.Len(t, controller.Conversation(), 2)
}

func TestSendMessageFailureAddsSyntheticTurn(t *testing.T) {
	fake := &fakeAPI{
		chat: func(int64, string) (*api.TravelPlan, error) {
			return nil, &api.Error{Kind: api.KindRequestFailed, StatusCode: 500}
		},
		get: func(planID int64) (*api.TravelPlan, error) { return planWithHistory(planID), nil },
	}
	controller := NewController(fake, prefs.NewMemory())
	require.NoError(t, controller.LoadTrip(context.Background(), 9))

	err := controller.SendMessage(context.Background(), "anything")
	require.Error(t, err)

	turns := controller.Conversation()
	require.NotEmpty(t, turns)
	last := turns[len(turns)-1]
	assert.False(t, last.IsUser)
	assert.Equal(t, failureReply, last.Message)
	assert.Equal(t, StateIdle, controller.State())
}

func TestDeleteTripFailureLeavesStateIntact(t *testing.T) {
	store := prefs.NewMemory()
	require.NoError(t, prefs.SetPinnedPlans(store, []int64{3}))
	fake := &fakeAPI{
		list: func() ([]*api.TravelPlan, error) {
			return []*api.TravelPlan{planWithHistory(3), planWithHistory(4)}, nil
		},
		delete: func(int64) error {
			return &api.Error{Kind: api.KindRequestFailed, StatusCode: 500}
		},
	}
	controller := NewController(fake, store)
	require.NoError(t, controller.Refresh(context.Background()))

	err := controller.DeleteTrip(context.Background(), 3)
	require.Error(t, err)
	assert.Len(t, controller.Recent(), 2)
	assert.True(t, controller.IsPinned(3))
	assert.Equal(t, []int64{3}, prefs.PinnedPlans(store))
}

func TestDeleteActiveTripClearsEverything(t *testing.T) {
	store := prefs.NewMemory()
	require.NoError(t, prefs.SetPinnedPlans(store, []int64{5}))
	fake := &fakeAPI{
		list: func() ([]*api.TravelPlan, error) {
			return []*api.TravelPlan{planWithHistory(5), planWithHistory(6)}, nil
		},
		get:    func(planID int64) (*api.TravelPlan, error) { return planWithHistory(planID), nil },
		delete: func(int64) error { return nil },
	}
	controller := NewController(fake, store)
	require.NoError(t, controller.Refresh(context.Background()))
	require.NoError(t, controller.LoadTrip(context.Background(), 5))

	require.NoError(t, controller.DeleteTrip(context.Background(), 5))

	assert.Nil(t, controller.Trip())
	assert.Empty(t, controller.Conversation())
	assert.False(t, controller.IsPinned(5))
	recent := controller.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, int64(6), recent[0].ID)
	assert.Equal(t, int64(0), prefs.LastActiveTrip(store))
}

func TestTogglePinIsIdempotentAndPersists(t *testing.T) {
	store := prefs.NewMemory()
	controller := NewController(&fakeAPI{}, store)

	controller.TogglePin(11)
	assert.True(t, controller.IsPinned(11))
	assert.Equal(t, []int64{11}, prefs.PinnedPlans(store))

	controller.TogglePin(11)
	assert.False(t, controller.IsPinned(11))
	assert.Empty(t, prefs.PinnedPlans(store))
}

func TestLoadTripNotFoundDegrades(t *testing.T) {
	store := prefs.NewMemory()
	require.NoError(t, prefs.SetLastActiveTrip(store, 99))
	fake := &fakeAPI{
		get: func(int64) (*api.TravelPlan, error) {
			return nil, &api.Error{Kind: api.KindNotFound, StatusCode: 404}
		},
	}
	controller := NewController(fake, store)

	err := controller.LoadTrip(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Nil(t, controller.Trip())
	assert.Equal(t, int64(0), prefs.LastActiveTrip(store))

	// Restore treats the stale pointer as a clean empty state.
	require.NoError(t, prefs.SetLastActiveTrip(store, 99))
	require.NoError(t, controller.Restore(context.Background()))
	assert.Nil(t, controller.Trip())
}

func TestSupersededLoadIsDropped(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	stale := planWithHistory(1)
	fake := &fakeAPI{
		get: func(planID int64) (*api.TravelPlan, error) {
			if planID == 1 {
				close(started)
				<-release
				return stale, nil
			}
			return planWithHistory(planID), nil
		},
	}
	controller := NewController(fake, prefs.NewMemory())

	done := make(chan error)
	go func() { done <- controller.LoadTrip(context.Background(), 1) }()
	<-started

	// A new-trip reset fences off the in-flight load.
	controller.StartNewTrip()
	close(release)
	require.NoError(t, <-done)

	assert.Nil(t, controller.Trip(), "a superseded load must not resurrect its trip")
}

func TestDecodeTurnsFallsBackToContent(t *testing.T) {
	plan := &api.TravelPlan{ID: 1, Content: "# Itinerary"}
	turns := decodeTurns(plan)
	require.Len(t, turns, 1)
	assert.False(t, turns[0].IsUser)
	assert.Equal(t, "# Itinerary", turns[0].Message)
}
