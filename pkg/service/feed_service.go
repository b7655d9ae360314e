// Package service composes the feed, playback, caption, learner state and tutor
// components into the single facade used by the HTTP layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/umputun/eduflow/pkg/assistant"
	"github.com/umputun/eduflow/pkg/caption"
	"github.com/umputun/eduflow/pkg/domain"
	"github.com/umputun/eduflow/pkg/feed"
	"github.com/umputun/eduflow/pkg/interaction"
	"github.com/umputun/eduflow/pkg/notify"
	"github.com/umputun/eduflow/pkg/player"
)

// ErrUnknownItem is returned for item ids not present in the feed
var ErrUnknownItem = errors.New("unknown item")

// Params configure FeedService
type Params struct {
	Items               []domain.FeedItem // the built-in sample feed if empty
	Transition          feed.Options      // Sink is owned by the service and ignored
	Tolerance           float64
	WheelSpeed          float64
	VisibilityThreshold float64
	KV                  interaction.KV
	DefaultTheme        domain.Theme
	Answerer            assistant.Answerer
}

// FeedService is the application facade. The active slide's visibility drives playback:
// slide offsets reported by the feed controller become viewport fractions of the
// matching media elements.
type FeedService struct {
	controller *feed.Controller
	gestures   *feed.GestureInterpreter
	viewport   *player.Viewport
	slots      []*slot
	index      map[string]int
	store      *interaction.Store
	notices    *notify.Buffer
	chats      *assistant.Manager
}

// slot is the playback state of a single feed item
type slot struct {
	item    domain.FeedItem
	element *player.Headless
	player  *player.Player
	track   caption.Track
}

// PlaybackState is what the client needs to render an item's media
type PlaybackState struct {
	ItemID string `json:"item_id"`
	player.ElementState
	Captions string `json:"captions"` // subtitle resource
}

// New makes the service with the first item active and playing
func New(params Params) (*FeedService, error) {
	items := params.Items
	if len(items) == 0 {
		log.Printf("[INFO] no feed items configured, using built-in sample feed")
		items = feed.SampleItems()
	}

	s := &FeedService{
		gestures: feed.NewGestureInterpreter(params.Tolerance, params.WheelSpeed),
		viewport: player.NewViewport(params.VisibilityThreshold),
		index:    make(map[string]int, len(items)),
		notices:  notify.NewBuffer(notify.DefaultCapacity),
	}
	s.store = interaction.NewStore(params.KV, s.notices, params.DefaultTheme)
	s.chats = assistant.NewManager(params.Answerer)

	for i, item := range items {
		if _, dup := s.index[item.ID]; dup {
			return nil, fmt.Errorf("duplicate feed item id %q", item.ID)
		}
		s.index[item.ID] = i
		s.slots = append(s.slots, newSlot(item, s.viewport))
	}

	opts := params.Transition
	opts.Sink = s
	controller, err := feed.NewController(items, opts)
	if err != nil {
		return nil, fmt.Errorf("make feed controller: %w", err)
	}
	s.controller = controller
	controller.Start()
	log.Printf("[INFO] feed started with %d items", len(items))
	return s, nil
}

func newSlot(item domain.FeedItem, viewport *player.Viewport) *slot {
	if item.Captions != "" {
		if _, err := caption.Parse(item.Captions); err != nil {
			log.Printf("[WARN] captions of %s are not valid cues, used as is: %v", item.ID, err)
		}
	}
	sl := &slot{
		item:    item,
		element: player.NewHeadless(item.VideoURL),
		player:  player.New(viewport),
		track:   caption.Build(item.Captions),
	}
	// a fresh player never fails to attach
	_ = sl.player.Attach(sl.element)
	return sl
}

// MoveSlide converts a slide offset into the visible fraction of its element
func (s *FeedService) MoveSlide(index int, yPercent float64) {
	if index < 0 || index >= len(s.slots) {
		return
	}
	s.viewport.Update(s.slots[index].element, 1-math.Abs(yPercent)/100)
}

// Items returns the feed in order
func (s *FeedService) Items() []domain.FeedItem { return s.controller.Items() }

// Item returns a feed item by id
func (s *FeedService) Item(id string) (domain.FeedItem, error) {
	sl, err := s.slot(id)
	if err != nil {
		return domain.FeedItem{}, err
	}
	return sl.item, nil
}

// State returns the feed navigation state
func (s *FeedService) State() feed.State { return s.controller.State() }

// Activate starts a transition to index, false if ignored
func (s *FeedService) Activate(index int) bool { return s.controller.Activate(index) }

// Next moves forward, false if ignored
func (s *FeedService) Next() bool { return s.controller.Next() }

// Prev moves back, false if ignored
func (s *FeedService) Prev() bool { return s.controller.Prev() }

// Gesture feeds a raw gesture and navigates when it resolves into an intent
func (s *FeedService) Gesture(g feed.Gesture) (intent feed.Intent, moved bool) {
	intent = s.gestures.Feed(g)
	if intent == feed.IntentNone {
		return intent, false
	}
	return intent, s.controller.Handle(intent)
}

// Wait blocks until the running transition, if any, is done
func (s *FeedService) Wait() { s.controller.Wait() }

// Playback returns the media state of an item
func (s *FeedService) Playback(id string) (PlaybackState, error) {
	sl, err := s.slot(id)
	if err != nil {
		return PlaybackState{}, err
	}
	return PlaybackState{ItemID: id, ElementState: sl.element.State(), Captions: sl.track.Resource}, nil
}

// CycleRate advances the playback rate of an item
func (s *FeedService) CycleRate(id string) (float64, error) {
	sl, err := s.slot(id)
	if err != nil {
		return 0, err
	}
	return sl.player.CycleRate(), nil
}

// Replay rewinds an item to the beginning
func (s *FeedService) Replay(id string) error {
	sl, err := s.slot(id)
	if err != nil {
		return err
	}
	sl.player.Replay()
	return nil
}

// Captions returns the subtitle track of an item
func (s *FeedService) Captions(id string) (caption.Track, error) {
	sl, err := s.slot(id)
	if err != nil {
		return caption.Track{}, err
	}
	return sl.track, nil
}

// Interaction returns liked/saved flags of an item
func (s *FeedService) Interaction(ctx context.Context, id string) (domain.InteractionRecord, error) {
	if _, err := s.slot(id); err != nil {
		return domain.InteractionRecord{}, err
	}
	return s.store.Get(ctx, id)
}

// ToggleLike flips the liked flag
func (s *FeedService) ToggleLike(ctx context.Context, id string) (domain.InteractionRecord, error) {
	if _, err := s.slot(id); err != nil {
		return domain.InteractionRecord{}, err
	}
	return s.store.ToggleLiked(ctx, id)
}

// ToggleSave flips the saved flag, saving queues a notification
func (s *FeedService) ToggleSave(ctx context.Context, id string) (domain.InteractionRecord, error) {
	if _, err := s.slot(id); err != nil {
		return domain.InteractionRecord{}, err
	}
	return s.store.ToggleSaved(ctx, id)
}

// Notifications drains pending user notifications
func (s *FeedService) Notifications() []string { return s.notices.Drain() }

// Theme returns the current theme
func (s *FeedService) Theme(ctx context.Context) (domain.Theme, error) { return s.store.Theme(ctx) }

// ToggleTheme flips the theme
func (s *FeedService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	return s.store.ToggleTheme(ctx)
}

// OpenChat opens a tutor session for an item
func (s *FeedService) OpenChat(id string) (*assistant.Session, error) {
	sl, err := s.slot(id)
	if err != nil {
		return nil, err
	}
	return s.chats.Open(id, sl.item.Subject), nil
}

// Chat returns an open tutor session
func (s *FeedService) Chat(sessionID string) (*assistant.Session, error) {
	return s.chats.Get(sessionID)
}

// CloseChat discards a tutor session
func (s *FeedService) CloseChat(sessionID string) error {
	return s.chats.Close(sessionID)
}

// Close stops transitions and detaches all players
func (s *FeedService) Close() {
	s.controller.Close()
	for _, sl := range s.slots {
		sl.player.Detach()
	}
}

func (s *FeedService) slot(id string) (*slot, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	return s.slots[i], nil
}
