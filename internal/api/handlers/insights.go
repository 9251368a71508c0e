package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"net/http"
	"strings"

	// Image formats accepted by the receipt and image-understanding routes.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rs/zerolog"

	"github.com/zhaosongzhu/financial-app-backend/internal/ai"
	"github.com/zhaosongzhu/financial-app-backend/internal/api/middleware"
	"github.com/zhaosongzhu/financial-app-backend/internal/archive"
	"github.com/zhaosongzhu/financial-app-backend/internal/auth"
)

// InsightsHandler handles the routes that forward prompts and images to the
// inference service. Model output is returned to the caller verbatim; the
// gateway never parses it.
type InsightsHandler struct {
	gen      ai.Generator
	archiver archive.Archiver
	log      zerolog.Logger
}

// NewInsightsHandler creates a new insights handler. The archiver may be nil
// when no receipt bucket is configured; scanned images are then not retained.
func NewInsightsHandler(gen ai.Generator, archiver archive.Archiver, log zerolog.Logger) *InsightsHandler {
	return &InsightsHandler{
		gen:      gen,
		archiver: archiver,
		log:      log,
	}
}

// Generate handles POST /generate
func (h *InsightsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if h.gen == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "AI inference client is not initialized")
		return
	}

	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		middleware.WriteError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	text, err := h.gen.GenerateText(r.Context(), req.Prompt)
	if err != nil {
		h.log.Error().Err(err).Msg("Text generation failed")
		middleware.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"response": text})
}

// ScanReceipt handles POST /receipt
func (h *InsightsHandler) ScanReceipt(w http.ResponseWriter, r *http.Request) {
	h.understandImage(w, r, true)
}

// UnderstandImage handles POST /understand-image
func (h *InsightsHandler) UnderstandImage(w http.ResponseWriter, r *http.Request) {
	h.understandImage(w, r, false)
}

func (h *InsightsHandler) understandImage(w http.ResponseWriter, r *http.Request, receipt bool) {
	if h.gen == nil {
		middleware.WriteError(w, http.StatusInternalServerError, "AI inference client is not initialized")
		return
	}

	var req struct {
		Prompt    string `json:"prompt"`
		ImageData string `json:"image_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prompt := ai.ReceiptPrompt()
	if !receipt {
		prompt = strings.TrimSpace(req.Prompt)
		if prompt == "" {
			middleware.WriteError(w, http.StatusBadRequest, "prompt is required")
			return
		}
	}

	if req.ImageData == "" {
		middleware.WriteError(w, http.StatusBadRequest, "image_data is required")
		return
	}

	imageBytes, mimeType, err := decodeImage(req.ImageData)
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if receipt && h.archiver != nil {
		if identity, ok := auth.IdentityFromContext(r.Context()); ok {
			uri, err := h.archiver.ArchiveReceipt(r.Context(), identity.UID, imageBytes, mimeType)
			if err != nil {
				// Archival is best effort; the scan still proceeds.
				h.log.Error().Err(err).Str("user_id", identity.UID).Msg("Failed to archive receipt image")
			} else {
				h.log.Info().Str("user_id", identity.UID).Str("gcs_uri", uri).Msg("Receipt image archived")
			}
		}
	}

	text, err := h.gen.GenerateWithImage(r.Context(), prompt, imageBytes, mimeType)
	if err != nil {
		h.log.Error().Err(err).Msg("Image understanding failed")
		middleware.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"response": text})
}

// decodeImage decodes a base64 payload and confirms it is a parseable image,
// returning the raw bytes and detected MIME type. The inference service is
// never called for payloads that fail here.
func decodeImage(data string) ([]byte, string, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image data: %w", err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("invalid image data: %w", err)
	}

	return raw, "image/" + format, nil
}
