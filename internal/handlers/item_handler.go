// internal/handlers/item_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"rocketreading/internal/curriculum"
	"rocketreading/internal/middleware"
	"rocketreading/internal/model"
	"rocketreading/internal/service"
	"rocketreading/internal/webutil"
)

// ItemHandler serves the scheduling operations of one profile.
type ItemHandler struct {
	service service.SchedulerService
	now     func() time.Time
}

func NewItemHandler(s service.SchedulerService) *ItemHandler {
	return &ItemHandler{service: s, now: time.Now}
}

// SeedItems seeds the items in the body, or a built-in world when "world" is set.
func (h *ItemHandler) SeedItems(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SeedItemsRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	items := req.Items
	if req.World != nil {
		if len(items) > 0 {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_BODY", "send either items or world, not both", "world", model.ErrInvalidInput))
			return
		}
		items, err = curriculum.World(*req.World)
		if err != nil {
			webutil.HandleError(w, logger, model.NewAppError("UNKNOWN_WORLD", err.Error(), "world", err))
			return
		}
	}
	if len(items) == 0 {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_BODY", "items or world is required", "items", model.ErrInvalidInput))
		return
	}

	created, err := h.service.SeedItems(r.Context(), profileID, items)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.SeedItemsResponse{Items: len(items), StatesCreated: created})
}

func (h *ItemHandler) GetAllItems(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	items, err := h.service.GetAllItems(r.Context(), profileID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, items)
}

// GetDueItems honours ?as_of=RFC3339 and defaults to the current time.
func (h *ItemHandler) GetDueItems(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	asOf, err := webutil.ParseTimeQuery(r, "as_of", h.now())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	items, err := h.service.GetDueItems(r.Context(), profileID, asOf)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) GetItemState(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	key, err := itemKey(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := h.service.GetItemState(r.Context(), key)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state)
}

func (h *ItemHandler) UpdateItemState(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	key, err := itemKey(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateItemStateRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	state := &model.ItemState{ProfileID: key.ProfileID, ItemID: key.ItemID, LastSeen: h.now().UTC()}
	req.Apply(state)
	if err := h.service.UpdateItemState(r.Context(), state); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state)
}

// LogReview records one attempt and returns the updated state.
func (h *ItemHandler) LogReview(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	key, err := itemKey(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.LogReviewRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	rating, err := model.ParseRating(req.Rating)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := h.service.LogReview(r.Context(), key.ProfileID, key.ItemID, rating, req.ResponseData)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state)
}

// GetLastReview answers 204 when the pair has no reviews yet.
func (h *ItemHandler) GetLastReview(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	key, err := itemKey(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	review, err := h.service.GetLastReview(r.Context(), key)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if review == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, review)
}

func itemKey(r *http.Request) (model.ItemStateKey, error) {
	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		return model.ItemStateKey{}, err
	}
	key := model.ItemStateKey{ProfileID: profileID, ItemID: chi.URLParam(r, "item_id")}
	if err := key.Validate(); err != nil {
		return model.ItemStateKey{}, model.NewAppError("INVALID_ITEM_ID", "item_id must be 1 to 64 characters", "item_id", err)
	}
	return key, nil
}
