package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
	"github.com/KasumiMercury/primind-travel-reminders/internal/service/reminder"
)

type RefreshRequester interface {
	Request(trigger string) bool
}

type PreferenceHandler struct {
	store     domain.PreferenceStore
	refresher RefreshRequester
}

// NewPreferenceHandler returns the preferences endpoints. When refresher is
// non-nil a saved change requests a new pass.
func NewPreferenceHandler(store domain.PreferenceStore, refresher RefreshRequester) *PreferenceHandler {
	return &PreferenceHandler{
		store:     store,
		refresher: refresher,
	}
}

func (h *PreferenceHandler) HandleGet(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetPreferences(c.Request.Context()))
}

// HandlePut replaces the stored record. Omitted categories are enabled.
func (h *PreferenceHandler) HandlePut(c *gin.Context) {
	ctx := c.Request.Context()

	prefs := domain.DefaultPreferences()
	if err := c.ShouldBindJSON(&prefs); err != nil {
		slog.WarnContext(ctx, "invalid preferences body",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	h.store.SavePreferences(ctx, prefs)

	slog.InfoContext(ctx, "notification preferences updated",
		slog.Bool("trips", prefs.Trips),
		slog.Bool("tasks", prefs.Tasks),
		slog.Bool("leads", prefs.Leads),
	)

	if h.refresher != nil {
		h.refresher.Request(reminder.TriggerPreferences)
	}

	c.JSON(http.StatusOK, prefs)
}
