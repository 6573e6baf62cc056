// internal/handlers/api_integration_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"rocketreading/internal/config"
	"rocketreading/internal/model"
	"rocketreading/internal/repository"
	"rocketreading/internal/service"
)

// APISuite drives the real services over an in-memory SQLite store.
type APISuite struct {
	suite.Suite
	store  *repository.Store
	router http.Handler
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(s.T().Name(), "/", "_")),
	}
	store, err := repository.Open(context.Background(), cfg, testLogger)
	s.Require().NoError(err)
	s.store = store
	s.router = newRouter(
		service.NewSchedulerService(store, model.SessionModeCoPlay),
		service.NewMasteryService(store),
		store,
	)
}

func (s *APISuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *APISuite) do(method, path string, body interface{}) (int, []byte) {
	rec := serve(s.router, newJSONRequest(s.T(), method, path, body))
	return rec.Code, rec.Body.Bytes()
}

func (s *APISuite) TestSeedReviewAndComplete() {
	code, body := s.do(http.MethodPost, "/api/v1/profiles/kid1/items/seed", `{"world":1}`)
	s.Require().Equal(http.StatusOK, code, string(body))
	s.JSONEq(`{"items":13,"states_created":13}`, string(body))

	code, body = s.do(http.MethodGet, "/api/v1/profiles/kid1/items/due", nil)
	s.Require().Equal(http.StatusOK, code)
	var due []model.Item
	s.Require().NoError(json.Unmarshal(body, &due))
	s.Len(due, 13)
	s.Equal("letter_a", due[0].ID)
	s.Equal("/aaa/", due[0].Metadata.Data().Sound)

	for _, it := range due {
		for i := 0; i < 10; i++ {
			code, body = s.do(http.MethodPost, "/api/v1/profiles/kid1/items/"+it.ID+"/reviews",
				model.LogReviewRequest{Rating: "correct", ResponseData: model.ResponseData{RawResponse: it.Content}})
			s.Require().Equal(http.StatusOK, code, string(body))
		}
	}

	code, body = s.do(http.MethodGet, "/api/v1/profiles/kid1/worlds/1/progress", nil)
	s.Require().Equal(http.StatusOK, code)
	var progress model.Progress
	s.Require().NoError(json.Unmarshal(body, &progress))
	s.Equal(13, progress.ItemsMastered)
	s.InDelta(1.0, progress.OverallAccuracy, 1e-9)

	code, body = s.do(http.MethodGet, "/api/v1/profiles/kid1/worlds/1/complete", nil)
	s.Require().Equal(http.StatusOK, code)
	s.JSONEq(`{"complete":true}`, string(body))

	code, body = s.do(http.MethodGet, "/api/v1/profiles/kid1/items/letter_m/reviews/last", nil)
	s.Require().Equal(http.StatusOK, code)
	var last model.Review
	s.Require().NoError(json.Unmarshal(body, &last))
	s.Equal(model.RatingCorrect, last.Rating)
	s.Equal("m", last.ResponseData.Data().RawResponse)
}

func (s *APISuite) TestReviewBeforeSeedIsNotFound() {
	code, body := s.do(http.MethodPost, "/api/v1/profiles/kid1/items/letter_m/reviews", `{"rating":"correct"}`)
	s.Equal(http.StatusNotFound, code, string(body))

	code, _ = s.do(http.MethodGet, "/api/v1/profiles/kid1/items/letter_m/reviews/last", nil)
	s.Equal(http.StatusNoContent, code)
}

func (s *APISuite) TestStateMachineOverHTTP() {
	code, _ := s.do(http.MethodPost, "/api/v1/profiles/kid1/items/seed", `{"world":1}`)
	s.Require().Equal(http.StatusOK, code)

	var state model.ItemState
	for i := 0; i < 3; i++ {
		_, body := s.do(http.MethodPost, "/api/v1/profiles/kid1/items/letter_a/reviews", `{"rating":"correct"}`)
		s.Require().NoError(json.Unmarshal(body, &state))
	}
	s.Equal(1, state.IntervalDays)
	s.Equal(model.StatusMaturing, state.Status)

	_, body := s.do(http.MethodPost, "/api/v1/profiles/kid1/items/letter_a/reviews", `{"rating":"incorrect"}`)
	s.Require().NoError(json.Unmarshal(body, &state))
	s.Equal(0, state.IntervalDays)
	s.Equal(1, state.ErrorCount)
	s.Equal(model.StatusLearning, state.Status)

	code, body = s.do(http.MethodGet, "/api/v1/profiles/kid1/items/letter_a/state", nil)
	s.Require().Equal(http.StatusOK, code)
	var stored model.ItemState
	s.Require().NoError(json.Unmarshal(body, &stored))
	s.Equal(state.ErrorCount, stored.ErrorCount)
	s.Equal(state.Status, stored.Status)
}

func (s *APISuite) TestClosedStore() {
	require.NoError(s.T(), s.store.Close())

	code, body := s.do(http.MethodGet, "/api/v1/profiles/kid1/items/due", nil)
	s.Equal(http.StatusServiceUnavailable, code, string(body))
	code, _ = s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusServiceUnavailable, code)
}
