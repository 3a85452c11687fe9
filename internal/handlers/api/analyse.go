package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"genderdecoder/internal/coder"
	"genderdecoder/internal/config"
	"genderdecoder/internal/metrics"
	"genderdecoder/internal/models"
	"genderdecoder/internal/validation"
)

// AnalyseHandler scores text without storing it.
type AnalyseHandler struct {
	coder *coder.Coder
	yaml  *config.YAMLConfig
}

// NewAnalyseHandler creates a new API analyse handler.
func NewAnalyseHandler(c *coder.Coder, yamlCfg *config.YAMLConfig) *AnalyseHandler {
	return &AnalyseHandler{coder: c, yaml: yamlCfg}
}

// Analyse scores the text in the request body.
func (h *AnalyseHandler) Analyse(c fiber.Ctx) error {
	req, err := parseAdRequest(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result := h.coder.Analyse(req.Text)
	metrics.RecordAnalysis(string(result.Coding), metrics.SourceAPI)

	return jsonSuccess(c, models.NewAnalysisResponse(result, h.yaml.Explain(result.Coding)))
}

// Lexicons returns both word lists.
func (h *AnalyseHandler) Lexicons(c fiber.Ctx) error {
	return jsonSuccess(c, models.NewLexiconsResponse(h.coder))
}

var errInvalidBody = errors.New("invalid request body")

// parseAdRequest decodes and validates a JSON ad request body.
func parseAdRequest(c fiber.Ctx) (validation.AdRequest, error) {
	var req validation.AdRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return req, errInvalidBody
	}
	if err := validation.ValidateAdRequest(req); err != nil {
		return req, err
	}
	return req, nil
}
