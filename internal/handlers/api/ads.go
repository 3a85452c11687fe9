package api

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"genderdecoder/internal/coder"
	"genderdecoder/internal/config"
	"genderdecoder/internal/db"
	"genderdecoder/internal/logger"
	"genderdecoder/internal/metrics"
	"genderdecoder/internal/models"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// JobAdStore persists analysed job ads.
type JobAdStore interface {
	CreateJobAd(ctx context.Context, ad *models.JobAd) error
	GetJobAdByID(ctx context.Context, id uuid.UUID) (*models.JobAd, error)
	ListRecentJobAds(ctx context.Context, limit int) ([]models.JobAd, error)
}

// AdHandler handles stored job ads via JSON API.
type AdHandler struct {
	store JobAdStore
	coder *coder.Coder
	yaml  *config.YAMLConfig
}

// NewAdHandler creates a new API ad handler.
func NewAdHandler(store JobAdStore, c *coder.Coder, yamlCfg *config.YAMLConfig) *AdHandler {
	return &AdHandler{store: store, coder: c, yaml: yamlCfg}
}

// Create analyses and stores an ad.
func (h *AdHandler) Create(c fiber.Ctx) error {
	req, err := parseAdRequest(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result := h.coder.Analyse(req.Text)
	ad := models.NewJobAd(result, h.coder.Version())
	if err := h.store.CreateJobAd(c.Context(), ad); err != nil {
		logger.C(c.Context()).Error().Err(err).Msg("failed to store job ad")
		return jsonError(c, fiber.StatusInternalServerError, "failed to store job ad")
	}
	metrics.RecordAnalysis(string(result.Coding), metrics.SourceAPI)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   h.response(ad),
	})
}

// Get returns a stored ad by ID.
func (h *AdHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid job ad id")
	}

	ad, err := h.store.GetJobAdByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrJobAdNotFound) {
			return jsonError(c, fiber.StatusNotFound, "job ad not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch job ad")
	}

	return jsonSuccess(c, h.response(ad))
}

// List returns the most recently stored ads.
func (h *AdHandler) List(c fiber.Ctx) error {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return jsonError(c, fiber.StatusBadRequest, "limit must be a positive integer")
		}
		limit = min(n, maxListLimit)
	}

	ads, err := h.store.ListRecentJobAds(c.Context(), limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch job ads")
	}

	out := make([]models.JobAdResponse, 0, len(ads))
	for i := range ads {
		out = append(out, h.response(&ads[i]))
	}
	return jsonSuccess(c, out)
}

func (h *AdHandler) response(ad *models.JobAd) models.JobAdResponse {
	return models.JobAdResponse{
		JobAd:       ad,
		Explanation: h.yaml.Explain(coder.Coding(ad.Coding)),
	}
}
