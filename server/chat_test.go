package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/eduflow/pkg/assistant"
	amocks "github.com/umputun/eduflow/pkg/assistant/mocks"
	"github.com/umputun/eduflow/pkg/domain"
	"github.com/umputun/eduflow/pkg/feed"
	"github.com/umputun/eduflow/pkg/repository"
	"github.com/umputun/eduflow/pkg/service"
	"github.com/umputun/eduflow/server/mocks"
)

func newRealEngine(t *testing.T) *service.FeedService {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{
		DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1, ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	answerer := &amocks.AnswererMock{AnswerFunc: func(_ context.Context, question, subject string) domain.Answer {
		return domain.Answer{Text: "about " + question,
			Sources: []domain.Citation{{Title: "Wikipedia", URL: "https://en.wikipedia.org/wiki/" + subject}}}
	}}
	svc, err := service.New(service.Params{
		Transition: feed.Options{Animator: feed.StepAnimator{Steps: 5}},
		KV:         repos.KV,
		Answerer:   answerer,
	})
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func TestServer_chatFlow(t *testing.T) {
	srv := New(testConfig(":8080"), newRealEngine(t), "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/items/v1/chat", "application/json", http.NoBody)
	require.NoError(t, err)
	var opened chatView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&opened))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Physics", opened.Subject)
	require.Len(t, opened.Messages, 1)
	assert.Equal(t, assistant.Greeting("Physics"), opened.Messages[0].Text)

	resp, err = http.Post(ts.URL+"/api/v1/chat/"+opened.SessionID+"/messages", "application/json",
		strings.NewReader(`{"text":"what is inertia"}`))
	require.NoError(t, err)
	var updated chatView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, updated.Messages, 3)
	assert.Equal(t, domain.RoleUser, updated.Messages[1].Role)
	assert.Equal(t, "about what is inertia", updated.Messages[2].Text)
	assert.Equal(t, []domain.Citation{{Title: "Wikipedia", URL: "https://en.wikipedia.org/wiki/Physics"}}, updated.Messages[2].Sources)

	resp, err = http.Post(ts.URL+"/api/v1/chat/"+opened.SessionID+"/messages", "application/json",
		strings.NewReader(`{"text":"   "}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/v1/chat/" + opened.SessionID)
	require.NoError(t, err)
	var fetched chatView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	resp.Body.Close()
	assert.Len(t, fetched.Messages, 3)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/chat/"+opened.SessionID, http.NoBody)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/v1/chat/" + opened.SessionID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/v1/items/nope/chat", "application/json", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_sendMessageBusy(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	var once sync.Once
	manager := assistant.NewManager(&amocks.AnswererMock{AnswerFunc: func(context.Context, string, string) domain.Answer {
		once.Do(func() { close(entered) })
		<-release
		return domain.Answer{Text: "done"}
	}})
	sess := manager.Open("v1", "Physics")

	engine := &mocks.EngineMock{
		ChatFunc: func(sid string) (*assistant.Session, error) {
			if sid != sess.ID {
				return nil, assistant.ErrNotFound
			}
			return sess, nil
		},
	}
	srv := New(testConfig(":8080"), engine, "test", false)

	first := make(chan int, 1)
	go func() {
		req := httptest.NewRequest("POST", "/api/v1/chat/"+sess.ID+"/messages", strings.NewReader(`{"text":"first"}`))
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		first <- w.Code
	}()
	<-entered

	req := httptest.NewRequest("POST", "/api/v1/chat/"+sess.ID+"/messages", strings.NewReader(`{"text":"second"}`))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	close(release)
	assert.Equal(t, http.StatusOK, <-first)

	req = httptest.NewRequest("POST", "/api/v1/chat/unknown/messages", strings.NewReader(`{"text":"x"}`))
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest("POST", "/api/v1/chat/"+sess.ID+"/messages", strings.NewReader(`{bad`))
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
