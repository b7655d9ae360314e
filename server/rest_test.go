package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/eduflow/pkg/caption"
	"github.com/umputun/eduflow/pkg/domain"
	"github.com/umputun/eduflow/pkg/feed"
	"github.com/umputun/eduflow/pkg/player"
	"github.com/umputun/eduflow/pkg/service"
	"github.com/umputun/eduflow/server/mocks"
)

var testItems = []domain.FeedItem{
	{ID: "v1", Title: "Newton's Laws in 60 seconds", Subject: "Physics", AIScore: 86},
	{ID: "v2", Title: "Spanish: 5 phrases for travel", Subject: "Languages", AIScore: 55},
}

func itemErr(id string) error {
	if id == "v1" || id == "v2" {
		return nil
	}
	return fmt.Errorf("%w: %s", service.ErrUnknownItem, id)
}

func serve(t *testing.T, engine Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := New(testConfig(":8080"), engine, "test", false)
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestServer_feedHandler(t *testing.T) {
	engine := &mocks.EngineMock{ItemsFunc: func() []domain.FeedItem { return testItems }}
	w := serve(t, engine, "GET", "/api/v1/feed", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Items []itemView `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Items, 2)
	assert.Equal(t, "v1", res.Items[0].ID)
	assert.Equal(t, "excellent", res.Items[0].ScoreBand)
	assert.Equal(t, "fair", res.Items[1].ScoreBand)
}

func TestServer_feedStateHandler(t *testing.T) {
	engine := &mocks.EngineMock{
		ItemsFunc: func() []domain.FeedItem { return testItems },
		StateFunc: func() feed.State { return feed.State{ActiveIndex: 1, Offsets: []float64{-100, 0}} },
		PlaybackFunc: func(id string) (service.PlaybackState, error) {
			return service.PlaybackState{ItemID: id, ElementState: player.ElementState{Playing: id == "v2", Rate: 1}}, nil
		},
	}
	w := serve(t, engine, "GET", "/api/v1/feed/state", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res stateView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1, res.ActiveIndex)
	require.Len(t, res.Playback, 2)
	assert.False(t, res.Playback[0].Playing)
	assert.True(t, res.Playback[1].Playing)

	engine.PlaybackFunc = func(string) (service.PlaybackState, error) { return service.PlaybackState{}, errors.New("broken") }
	w = serve(t, engine, "GET", "/api/v1/feed/state", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_navigation(t *testing.T) {
	engine := &mocks.EngineMock{
		ActivateFunc: func(index int) bool { return index == 1 },
		NextFunc:     func() bool { return true },
		PrevFunc:     func() bool { return false },
		StateFunc:    func() feed.State { return feed.State{ActiveIndex: 0, Transitioning: true} },
	}

	w := serve(t, engine, "POST", "/api/v1/feed/activate/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, true, res["accepted"])
	require.Len(t, engine.ActivateCalls(), 1)
	assert.Equal(t, 1, engine.ActivateCalls()[0].Index)

	w = serve(t, engine, "POST", "/api/v1/feed/activate/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["accepted"])

	w = serve(t, engine, "POST", "/api/v1/feed/activate/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, engine, "POST", "/api/v1/feed/next", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["accepted"])

	w = serve(t, engine, "POST", "/api/v1/feed/prev", "")
	require.Equal(t, http.StatusOK, w.Code)
	res = decode(t, w)
	assert.Equal(t, false, res["accepted"])
	state, ok := res["state"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, state["transitioning"])
}

func TestServer_gestureHandler(t *testing.T) {
	engine := &mocks.EngineMock{
		GestureFunc: func(g feed.Gesture) (feed.Intent, bool) {
			if g.DeltaY < 0 {
				return feed.IntentNext, true
			}
			return feed.IntentNone, false
		},
		StateFunc: func() feed.State { return feed.State{} },
	}

	w := serve(t, engine, "POST", "/api/v1/feed/gesture", `{"kind":"touch","delta_y":-40}`)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, feed.IntentNext.String(), res["intent"])
	assert.Equal(t, true, res["accepted"])
	require.Len(t, engine.GestureCalls(), 1)
	assert.Equal(t, feed.Gesture{Kind: feed.GestureTouch, DeltaY: -40}, engine.GestureCalls()[0].G)

	w = serve(t, engine, "POST", "/api/v1/feed/gesture", `{"kind":"keyboard","delta_y":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, engine, "POST", "/api/v1/feed/gesture", `{bad`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, engine.GestureCalls(), 1)
}

func TestServer_interactionHandlers(t *testing.T) {
	liked := map[string]bool{}
	engine := &mocks.EngineMock{
		InteractionFunc: func(_ context.Context, id string) (domain.InteractionRecord, error) {
			return domain.InteractionRecord{Liked: liked[id]}, itemErr(id)
		},
		ToggleLikeFunc: func(_ context.Context, id string) (domain.InteractionRecord, error) {
			if err := itemErr(id); err != nil {
				return domain.InteractionRecord{}, err
			}
			liked[id] = !liked[id]
			return domain.InteractionRecord{Liked: liked[id]}, nil
		},
		ToggleSaveFunc: func(_ context.Context, id string) (domain.InteractionRecord, error) {
			if id == "v2" {
				return domain.InteractionRecord{}, errors.New("db locked")
			}
			return domain.InteractionRecord{Saved: true}, itemErr(id)
		},
		NotificationsFunc: func() []string { return []string{"Video saved"} },
	}

	w := serve(t, engine, "POST", "/api/v1/items/v1/like", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["liked"])

	w = serve(t, engine, "GET", "/api/v1/items/v1/interaction", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"liked": true, "saved": false}, decode(t, w))

	w = serve(t, engine, "POST", "/api/v1/items/v1/save", "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, true, res["saved"])
	assert.Equal(t, []any{"Video saved"}, res["notifications"])

	w = serve(t, engine, "POST", "/api/v1/items/nope/like", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = serve(t, engine, "GET", "/api/v1/items/nope/interaction", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = serve(t, engine, "POST", "/api/v1/items/v2/save", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_playbackHandlers(t *testing.T) {
	engine := &mocks.EngineMock{
		CaptionsFunc: func(id string) (caption.Track, error) {
			if err := itemErr(id); err != nil {
				return caption.Track{}, err
			}
			return caption.Build(""), nil
		},
		CycleRateFunc: func(id string) (float64, error) { return 1.5, itemErr(id) },
		ReplayFunc:    func(id string) error { return itemErr(id) },
		PlaybackFunc: func(id string) (service.PlaybackState, error) {
			return service.PlaybackState{ItemID: id, ElementState: player.ElementState{Playing: true, Rate: 1.5}}, nil
		},
	}

	w := serve(t, engine, "GET", "/api/v1/items/v1/captions", "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, caption.DefaultCues, res["cues"])
	assert.True(t, strings.HasPrefix(res["resource"].(string), "data:text/vtt;charset=utf-8,"))

	w = serve(t, engine, "POST", "/api/v1/items/v1/rate", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 1.5, decode(t, w)["rate"], 0.001)

	w = serve(t, engine, "POST", "/api/v1/items/v1/replay", "")
	require.Equal(t, http.StatusOK, w.Code)
	res = decode(t, w)
	assert.Equal(t, "v1", res["item_id"])
	assert.InDelta(t, 0, res["position"], 0.001)
	require.Len(t, engine.ReplayCalls(), 1)

	for _, path := range []string{"/api/v1/items/x/rate", "/api/v1/items/x/replay"} {
		w = serve(t, engine, "POST", path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
	w = serve(t, engine, "GET", "/api/v1/items/x/captions", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_themeHandlers(t *testing.T) {
	theme := domain.ThemeLight
	engine := &mocks.EngineMock{
		ThemeFunc: func(context.Context) (domain.Theme, error) { return theme, nil },
		ToggleThemeFunc: func(context.Context) (domain.Theme, error) {
			theme = theme.Toggle()
			return theme, nil
		},
	}

	w := serve(t, engine, "GET", "/api/v1/theme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "light", decode(t, w)["theme"])

	w = serve(t, engine, "POST", "/api/v1/theme/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dark", decode(t, w)["theme"])

	engine.ThemeFunc = func(context.Context) (domain.Theme, error) { return domain.ThemeLight, errors.New("db down") }
	w = serve(t, engine, "GET", "/api/v1/theme", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_routesWithRealEngine(t *testing.T) {
	engine := newRealEngine(t)
	srv := New(testConfig(":8080"), engine, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/feed/activate/2", "application/json", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	engine.Wait()

	resp, err = http.Get(ts.URL + "/api/v1/feed/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	var st stateView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, 2, st.ActiveIndex)
	var playing []string
	for _, p := range st.Playback {
		if p.Playing {
			playing = append(playing, p.ItemID)
		}
	}
	assert.Equal(t, []string{"v3"}, playing)
}
