package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/bobrandy13/LeetcodeBot/services"
)

type SystemHandler struct {
	diagnostics   *services.DiagnosticsService
	applicationID string
}

func NewSystemHandler(diagnostics *services.DiagnosticsService, applicationID string) *SystemHandler {
	return &SystemHandler{
		diagnostics:   diagnostics,
		applicationID: applicationID,
	}
}

// Home is a hello page to check the bot is up.
func (h *SystemHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("👋 " + h.applicationID))
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.diagnostics.Ping(ctx); err != nil {
		log.Printf("Health: store ping failed: %v", err)
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "store connection failed",
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "leetcode-bot",
	})
}

// DebugKV reports store connectivity and a summary of the key space.
func (h *SystemHandler) DebugKV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	report := h.diagnostics.KVReport(ctx)
	if report.WriteTest != "success" {
		respondWithJSON(w, http.StatusInternalServerError, report)
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

// InviteQR renders the bot invite link as a PNG QR code.
func (h *SystemHandler) InviteQR(w http.ResponseWriter, r *http.Request) {
	if h.applicationID == "" {
		respondWithError(w, http.StatusNotFound, "Application id is not configured")
		return
	}

	png, err := qrcode.Encode(inviteURL(h.applicationID), qrcode.Medium, 256)
	if err != nil {
		log.Printf("InviteQR: encoding invite url: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Could not generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(png)
}
