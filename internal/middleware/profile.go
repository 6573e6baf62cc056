// internal/middleware/profile.go
package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rocketreading/internal/model"
	"rocketreading/internal/webutil"
)

type profileCtxKey struct{}

// ProfileContext reads the {profile_id} route parameter, rejects blank or
// oversized values, and stores it in the context. The request logger gains a
// profile_id attribute.
func ProfileContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		profileID := chi.URLParam(r, "profile_id")
		if err := model.ValidateProfileID(profileID); err != nil {
			logger.Warn("Rejected request with invalid profile_id", "profile_id", profileID)
			appErr := model.NewAppError("INVALID_PROFILE_ID", "profile_id must be 1 to 64 characters", "profile_id", err)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), profileCtxKey{}, profileID)
		ctx = WithLogger(ctx, logger.With("profile_id", profileID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetProfileIDFromContext returns the profile id set by ProfileContext.
func GetProfileIDFromContext(ctx context.Context) (string, error) {
	profileID, ok := ctx.Value(profileCtxKey{}).(string)
	if !ok || profileID == "" {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "profile is missing from request context", "", model.ErrInternalServer)
	}
	return profileID, nil
}
