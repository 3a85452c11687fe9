package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"genderdecoder/internal/coder"
	"genderdecoder/internal/config"
	"genderdecoder/internal/db"
	"genderdecoder/internal/logger"
	"genderdecoder/internal/metrics"
	"genderdecoder/internal/models"
	"genderdecoder/internal/validation"
)

// AdHandler serves the job ad form and results pages.
type AdHandler struct {
	store JobAdStore
	coder *coder.Coder
	cfg   *config.Config
	yaml  *config.YAMLConfig
}

// NewAdHandler creates a new ad handler.
func NewAdHandler(store JobAdStore, c *coder.Coder, cfg *config.Config, yamlCfg *config.YAMLConfig) *AdHandler {
	return &AdHandler{store: store, coder: c, cfg: cfg, yaml: yamlCfg}
}

// Index renders the home page with the ad text form.
func (h *AdHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title": "Decode a job ad",
		"Error": "",
		"Text":  "",
	}, h.cfg))
}

// Create analyses the submitted ad, stores it and redirects to its results.
func (h *AdHandler) Create(c fiber.Ctx) error {
	text := c.FormValue("text")

	if err := validation.ValidateAdText(text); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("index", MergeBranding(fiber.Map{
			"Title": "Decode a job ad",
			"Error": err.Error(),
			"Text":  text,
		}, h.cfg))
	}

	result := h.coder.Analyse(text)
	ad := models.NewJobAd(result, h.coder.Version())
	if err := h.store.CreateJobAd(c.Context(), ad); err != nil {
		logger.C(c.Context()).Error().Err(err).Msg("failed to store job ad")
		return fiber.NewError(fiber.StatusInternalServerError, "Could not save your job ad, please try again.")
	}
	metrics.RecordAnalysis(string(result.Coding), metrics.SourceForm)

	return c.Redirect().Status(fiber.StatusSeeOther).To("/results/" + ad.ID.String())
}

// Show renders the results page for a stored ad.
func (h *AdHandler) Show(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "That result does not exist.")
	}

	ad, err := h.store.GetJobAdByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrJobAdNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "That result does not exist.")
		}
		return err
	}

	return c.Render("results", MergeBranding(fiber.Map{
		"Title":          "Results",
		"Ad":             ad,
		"Explanation":    h.yaml.Explain(coder.Coding(ad.Coding)),
		"MasculineWords": ad.MasculineWords(),
		"FeminineWords":  ad.FeminineWords(),
		"Stale":          ad.IsStale(h.coder.Version()),
	}, h.cfg))
}

// About renders the about page.
func (h *AdHandler) About(c fiber.Ctx) error {
	return c.Render("about", MergeBranding(fiber.Map{
		"Title":           "About",
		"StrongThreshold": coder.StrongThreshold,
	}, h.cfg))
}

// Lexicons renders both word lists.
func (h *AdHandler) Lexicons(c fiber.Ctx) error {
	return c.Render("lexicons", MergeBranding(fiber.Map{
		"Title":    "Word lists",
		"Lexicons": models.NewLexiconsResponse(h.coder),
	}, h.cfg))
}
