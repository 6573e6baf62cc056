// internal/handlers/progress_handler.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rocketreading/internal/middleware"
	"rocketreading/internal/model"
	"rocketreading/internal/service"
	"rocketreading/internal/webutil"
)

// ProgressHandler serves mastery queries for built-in worlds and ad hoc sets.
type ProgressHandler struct {
	service service.MasteryService
}

func NewProgressHandler(s service.MasteryService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

func (h *ProgressHandler) GetWorldProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	profileID, world, err := worldParams(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.GetWorldProgress(r.Context(), profileID, world)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress)
}

func (h *ProgressHandler) CheckWorldComplete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	profileID, world, err := worldParams(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	complete, err := h.service.CheckWorldComplete(r.Context(), profileID, world)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.CompletionResponse{Complete: complete})
}

func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	profileID, req, err := curriculumSet(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.GetProgress(r.Context(), profileID, req.ItemIDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress)
}

func (h *ProgressHandler) CheckCurriculumComplete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	profileID, req, err := curriculumSet(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	complete, err := h.service.CheckCurriculumComplete(r.Context(), profileID, req.ItemIDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.CompletionResponse{Complete: complete})
}

func worldParams(r *http.Request) (string, int, error) {
	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		return "", 0, err
	}
	world, err := webutil.ParseIntParam(chi.URLParam(r, "world"), "world")
	if err != nil {
		return "", 0, err
	}
	return profileID, world, nil
}

func curriculumSet(r *http.Request) (string, model.CurriculumSetRequest, error) {
	var req model.CurriculumSetRequest
	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		return "", req, err
	}
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		return "", req, err
	}
	return profileID, req, nil
}
