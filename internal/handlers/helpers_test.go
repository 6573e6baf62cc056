// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rocketreading/internal/handlers"
	"rocketreading/internal/service"
	svc_mocks "rocketreading/internal/service/mocks"
)

type mockScheduler = svc_mocks.SchedulerService
type mockMastery = svc_mocks.MasteryService

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newMockedRouter(t *testing.T) (http.Handler, *svc_mocks.SchedulerService, *svc_mocks.MasteryService) {
	t.Helper()
	scheduler := svc_mocks.NewSchedulerService(t)
	mastery := svc_mocks.NewMasteryService(t)
	r := handlers.NewRouter(handlers.RouterDeps{
		Scheduler: scheduler,
		Mastery:   mastery,
		Store:     stubPinger{},
		Logger:    testLogger,
	})
	return r, scheduler, mastery
}

func newRouter(scheduler service.SchedulerService, mastery service.MasteryService, store handlers.Pinger) http.Handler {
	return handlers.NewRouter(handlers.RouterDeps{
		Scheduler: scheduler,
		Mastery:   mastery,
		Store:     store,
		Logger:    testLogger,
	})
}

// newJSONRequest marshals body unless it is already a string.
func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(data)
		}
	}
	req := httptest.NewRequest(method, target, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
