package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-travel-reminders/internal/domain"
)

type DeviceRequest struct {
	Token string `json:"token" binding:"required"`
}

type DeviceHandler struct {
	devices domain.DeviceRepository
}

func NewDeviceHandler(devices domain.DeviceRepository) *DeviceHandler {
	return &DeviceHandler{devices: devices}
}

func (h *DeviceHandler) HandleRegister(c *gin.Context) {
	ctx := c.Request.Context()

	var req DeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.devices.AddToken(ctx, req.Token); err != nil {
		if errors.Is(err, domain.ErrDeviceTokenEmpty) {
			respondError(c, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		slog.ErrorContext(ctx, "failed to register device",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to register device")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DeviceHandler) HandleUnregister(c *gin.Context) {
	ctx := c.Request.Context()

	var req DeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.devices.RemoveTokens(ctx, req.Token); err != nil {
		slog.ErrorContext(ctx, "failed to unregister device",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to unregister device")
		return
	}

	c.Status(http.StatusNoContent)
}
