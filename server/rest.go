package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-pkgz/rest"

	"github.com/umputun/eduflow/pkg/domain"
	"github.com/umputun/eduflow/pkg/feed"
	"github.com/umputun/eduflow/pkg/service"
)

// itemView is a feed item as rendered by clients
type itemView struct {
	domain.FeedItem
	ScoreBand string `json:"score_band"`
}

// stateView is the feed state with playback of every item
type stateView struct {
	feed.State
	Playback []service.PlaybackState `json:"playback"`
}

// gestureRequest is a raw wheel, touch or pointer movement
type gestureRequest struct {
	Kind   feed.GestureKind `json:"kind"`
	DeltaY float64          `json:"delta_y"`
}

// feedHandler returns the feed items in order
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	items := s.engine.Items()
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView{FeedItem: item, ScoreBand: domain.ScoreBand(item.AIScore)})
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"items": views})
}

// feedStateHandler returns the navigation state and per-item playback
func (s *Server) feedStateHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.stateView()
	if err != nil {
		log.Printf("[ERROR] failed to get feed state: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, view)
}

// activateHandler starts a transition to the requested index
func (s *Server) activateHandler(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid index"), http.StatusBadRequest)
		return
	}
	s.renderNavigation(w, r, s.engine.Activate(index))
}

func (s *Server) nextHandler(w http.ResponseWriter, r *http.Request) {
	s.renderNavigation(w, r, s.engine.Next())
}

func (s *Server) prevHandler(w http.ResponseWriter, r *http.Request) {
	s.renderNavigation(w, r, s.engine.Prev())
}

// gestureHandler feeds a raw movement to the gesture interpreter
func (s *Server) gestureHandler(w http.ResponseWriter, r *http.Request) {
	var req gestureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid gesture: %w", err), http.StatusBadRequest)
		return
	}
	switch req.Kind {
	case feed.GestureWheel, feed.GestureTouch, feed.GesturePointer:
	default:
		RenderError(w, r, fmt.Errorf("unknown gesture kind %q", req.Kind), http.StatusBadRequest)
		return
	}

	intent, moved := s.engine.Gesture(feed.Gesture{Kind: req.Kind, DeltaY: req.DeltaY})
	RenderJSON(w, r, http.StatusOK, rest.JSON{"intent": intent.String(), "accepted": moved, "state": s.engine.State()})
}

// interactionHandler returns liked and saved flags of an item
func (s *Server) interactionHandler(w http.ResponseWriter, r *http.Request) {
	rec, err := s.engine.Interaction(r.Context(), r.PathValue("id"))
	if err != nil {
		s.renderItemError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, rec)
}

// likeHandler toggles the liked flag
func (s *Server) likeHandler(w http.ResponseWriter, r *http.Request) {
	rec, err := s.engine.ToggleLike(r.Context(), r.PathValue("id"))
	if err != nil {
		s.renderItemError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, rec)
}

// saveHandler toggles the saved flag, the response carries pending notifications
func (s *Server) saveHandler(w http.ResponseWriter, r *http.Request) {
	rec, err := s.engine.ToggleSave(r.Context(), r.PathValue("id"))
	if err != nil {
		s.renderItemError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{
		"liked":         rec.Liked,
		"saved":         rec.Saved,
		"notifications": s.engine.Notifications(),
	})
}

// captionsHandler returns the subtitle track of an item
func (s *Server) captionsHandler(w http.ResponseWriter, r *http.Request) {
	track, err := s.engine.Captions(r.PathValue("id"))
	if err != nil {
		s.renderItemError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, track)
}

// rateHandler cycles the playback rate of an item
func (s *Server) rateHandler(w http.ResponseWriter, r *http.Request) {
	rate, err := s.engine.CycleRate(r.PathValue("id"))
	if err != nil {
		s.renderItemError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"rate": rate})
}

// replayHandler rewinds an item
func (s *Server) replayHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.engine.Replay(id); err != nil {
		s.renderItemError(w, r, err)
		return
	}
	st, err := s.engine.Playback(id)
	if err != nil {
		s.renderItemError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, st)
}

// themeHandler returns the current theme
func (s *Server) themeHandler(w http.ResponseWriter, r *http.Request) {
	theme, err := s.engine.Theme(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get theme: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"theme": theme})
}

// toggleThemeHandler flips the theme
func (s *Server) toggleThemeHandler(w http.ResponseWriter, r *http.Request) {
	theme, err := s.engine.ToggleTheme(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to toggle theme: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, rest.JSON{"theme": theme})
}

func (s *Server) renderNavigation(w http.ResponseWriter, r *http.Request, accepted bool) {
	RenderJSON(w, r, http.StatusOK, rest.JSON{"accepted": accepted, "state": s.engine.State()})
}

// renderItemError maps unknown items to 404, everything else to 500
func (s *Server) renderItemError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrUnknownItem) {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}
	log.Printf("[ERROR] item request %s failed: %v", r.URL.Path, err)
	RenderError(w, r, err, http.StatusInternalServerError)
}

func (s *Server) stateView() (stateView, error) {
	view := stateView{State: s.engine.State()}
	for _, item := range s.engine.Items() {
		st, err := s.engine.Playback(item.ID)
		if err != nil {
			return stateView{}, fmt.Errorf("playback of %s: %w", item.ID, err)
		}
		view.Playback = append(view.Playback, st)
	}
	return view, nil
}
