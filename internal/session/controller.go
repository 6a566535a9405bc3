package session

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/scylladb/go-set/i64set"

	"tripgpt/internal/api"
	"tripgpt/internal/debug"
	"tripgpt/internal/prefs"
)

var log = debug.GetLogger()

// failureReply is appended to the transcript when a send fails, so the
// exchange stays visible instead of silently vanishing.
const failureReply = "Sorry, I encountered an error processing your request. Please try again."

// State is the controller's send state. Only one message may be in flight.
type State int

const (
	StateIdle State = iota
	StateSending
)

// ChatTurn is one rendered line of the transcript.
type ChatTurn struct {
	Message   string
	IsUser    bool
	Timestamp time.Time
}

// PlanAPI is the slice of the service client the controller needs.
type PlanAPI interface {
	GeneratePlan(ctx context.Context, request *api.GeneratePlanRequest) (*api.TravelPlan, error)
	Chat(ctx context.Context, planID int64, message string) (*api.TravelPlan, error)
	ListPlans(ctx context.Context) ([]*api.TravelPlan, error)
	GetPlan(ctx context.Context, planID int64) (*api.TravelPlan, error)
	DeletePlan(ctx context.Context, planID int64) error
}

// Controller owns the planner's working state: the active trip, its
// transcript, the recent-plans list and the pin set. The server copy of a
// plan is authoritative; after every successful chat the controller re-fetches
// the plan and rebuilds the transcript from it.
type Controller struct {
	api   PlanAPI
	prefs prefs.Store

	mu           sync.Mutex
	state        State
	trip         *api.TravelPlan
	conversation []ChatTurn
	recent       []*api.TravelPlan
	pins         *i64set.Set
	loadToken    string
}

// NewController creates a controller with the pin set hydrated from the
// preference store.
func NewController(planAPI PlanAPI, store prefs.Store) *Controller {
	return &Controller{
		api:   planAPI,
		prefs: store,
		pins:  i64set.New(prefs.PinnedPlans(store)...),
	}
}

// State returns the current send state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Trip returns the active trip, or nil when planning a new one.
func (c *Controller) Trip() *api.TravelPlan {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trip
}

// Conversation returns a copy of the transcript.
func (c *Controller) Conversation() []ChatTurn {
	c.mu.Lock()
	defer c.mu.Unlock()
	turns := make([]ChatTurn, len(c.conversation))
	copy(turns, c.conversation)
	return turns
}

// Recent returns the recent-plans list, most recent first.
func (c *Controller) Recent() []*api.TravelPlan {
	c.mu.Lock()
	defer c.mu.Unlock()
	plans := make([]*api.TravelPlan, len(c.recent))
	copy(plans, c.recent)
	return plans
}

// PinnedIDs returns the pinned plan ids in ascending order.
func (c *Controller) PinnedIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := c.pins.List()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Pins returns a copy of the pin set.
func (c *Controller) Pins() *i64set.Set {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pins.Copy()
}

// IsPinned reports whether the plan is pinned.
func (c *Controller) IsPinned(planID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pins.Has(planID)
}

// Refresh reloads the recent-plans list from the server.
func (c *Controller) Refresh(ctx context.Context) error {
	plans, err := c.api.ListPlans(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent = plans
	return nil
}

// LoadTrip makes the given plan the active trip. Loads are fenced: if a
// newer load or StartNewTrip begins before this one completes, the stale
// result is dropped. A plan deleted elsewhere surfaces its NotFound error and
// leaves the controller on the empty state.
func (c *Controller) LoadTrip(ctx context.Context, planID int64) error {
	c.mu.Lock()
	token := uuid.NewString()
	c.loadToken = token
	c.mu.Unlock()

	plan, err := c.api.GetPlan(ctx, planID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loadToken != token {
		log.Debug("dropping superseded load", "plan_id", planID)
		return nil
	}
	if err != nil {
		if api.IsNotFound(err) {
			c.trip = nil
			c.conversation = nil
			if removeErr := prefs.ClearLastActiveTrip(c.prefs); removeErr != nil {
				log.Warn("clearing last active trip", "error", removeErr)
			}
		}
		return err
	}
	c.trip = plan
	c.conversation = decodeTurns(plan)
	if err := prefs.SetLastActiveTrip(c.prefs, plan.ID); err != nil {
		log.Warn("persisting last active trip", "error", err)
	}
	return nil
}

// StartNewTrip resets to the empty planning state. Any in-flight load is
// fenced off so its completion cannot resurrect the old trip.
func (c *Controller) StartNewTrip() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadToken = uuid.NewString()
	c.trip = nil
	c.conversation = nil
	if err := prefs.ClearLastActiveTrip(c.prefs); err != nil {
		log.Warn("clearing last active trip", "error", err)
	}
}

// Restore reloads the last active trip, if one is persisted. A trip that no
// longer exists clears the persisted id and leaves the empty state without
// error.
func (c *Controller) Restore(ctx context.Context) error {
	planID := prefs.LastActiveTrip(c.prefs)
	if planID == 0 {
		return nil
	}
	if err := c.LoadTrip(ctx, planID); err != nil {
		if api.IsNotFound(err) {
			return nil
		}
		return err
	}
	return nil
}

// SendMessage sends one message. With an active trip it is a follow-up chat;
// without one it parses the prompt and generates a new plan. Empty messages
// and sends while another is in flight are no-ops. On failure the transcript
// gets a synthetic assistant turn and the error is returned for display.
func (c *Controller) SendMessage(ctx context.Context, message string) error {
	message = strings.TrimSpace(message)
	c.mu.Lock()
	if c.state == StateSending || message == "" {
		c.mu.Unlock()
		return nil
	}
	c.state = StateSending
	c.conversation = append(c.conversation, ChatTurn{Message: message, IsUser: true, Timestamp: time.Now()})
	trip := c.trip
	c.mu.Unlock()

	var err error
	if trip != nil {
		err = c.sendFollowUp(ctx, trip.ID, message)
	} else {
		err = c.generate(ctx, message)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle
	if err != nil {
		c.conversation = append(c.conversation, ChatTurn{Message: failureReply, Timestamp: time.Now()})
	}
	return err
}

func (c *Controller) sendFollowUp(ctx context.Context, planID int64, message string) error {
	if _, err := c.api.Chat(ctx, planID, message); err != nil {
		return err
	}
	// The chat response is not authoritative; re-fetch and rebuild the
	// transcript from the server copy.
	plan, err := c.api.GetPlan(ctx, planID)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trip = plan
	c.conversation = decodeTurns(plan)
	for i, recent := range c.recent {
		if recent.ID == plan.ID {
			c.recent[i] = plan
		}
	}
	return nil
}

func (c *Controller) generate(ctx context.Context, message string) error {
	plan, err := c.api.GeneratePlan(ctx, ParsePrompt(message))
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trip = plan
	c.conversation = decodeTurns(plan)
	c.recent = append([]*api.TravelPlan{plan}, c.recent...)
	if err := prefs.SetLastActiveTrip(c.prefs, plan.ID); err != nil {
		log.Warn("persisting last active trip", "error", err)
	}
	return nil
}

// DeleteTrip deletes a plan server-first: local collections are only touched
// once the server confirms, so a failed delete leaves everything intact.
func (c *Controller) DeleteTrip(ctx context.Context, planID int64) error {
	if err := c.api.DeletePlan(ctx, planID); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.recent[:0]
	for _, plan := range c.recent {
		if plan.ID != planID {
			kept = append(kept, plan)
		}
	}
	c.recent = kept
	if c.pins.Has(planID) {
		c.pins.Remove(planID)
		c.persistPins()
	}
	if c.trip != nil && c.trip.ID == planID {
		c.loadToken = uuid.NewString()
		c.trip = nil
		c.conversation = nil
		if err := prefs.ClearLastActiveTrip(c.prefs); err != nil {
			log.Warn("clearing last active trip", "error", err)
		}
	}
	return nil
}

// TogglePin flips a plan's pinned state and persists the set.
func (c *Controller) TogglePin(planID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pins.Has(planID) {
		c.pins.Remove(planID)
	} else {
		c.pins.Add(planID)
	}
	c.persistPins()
}

// persistPins writes the pin set through the preference store. Callers hold
// the lock.
func (c *Controller) persistPins() {
	ids := c.pins.List()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if err := prefs.SetPinnedPlans(c.prefs, ids); err != nil {
		log.Warn("persisting pinned plans", "error", err)
	}
}

// decodeTurns rebuilds the transcript from a plan's conversation history.
// Plans created before history tracking fall back to a single assistant turn
// carrying the itinerary.
func decodeTurns(plan *api.TravelPlan) []ChatTurn {
	if len(plan.ConversationHistory) > 0 {
		turns := make([]ChatTurn, 0, len(plan.ConversationHistory))
		for _, message := range plan.ConversationHistory {
			turns = append(turns, ChatTurn{
				Message:   message.Content,
				IsUser:    message.Role == api.RoleUser,
				Timestamp: plan.CreatedAt,
			})
		}
		return turns
	}
	if plan.Content != "" {
		return []ChatTurn{{Message: plan.Content, Timestamp: plan.CreatedAt}}
	}
	return nil
}
