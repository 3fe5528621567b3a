// Package server exposes the execution service over HTTP. It is thin glue:
// request binding, dispatch and the response envelope, no execution logic.
package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"codelab/internal/analysis"
	"codelab/internal/executor"
	"codelab/internal/executor/report"
	"codelab/internal/executor/value"
	"codelab/pkg/utils/response"
)

// ExecuteRequest is the body of POST /api/v1/execute.
type ExecuteRequest struct {
	Code         string           `json:"code"`
	Language     string           `json:"language" binding:"required"`
	FunctionName string           `json:"function_name"`
	Tests        []value.TestCase `json:"test_cases" binding:"required"`
	Attempt      int              `json:"attempt"`
}

// ExecuteResponse wraps the report with submission metadata. Persistence
// of submissions lives outside this service; callers store this summary.
type ExecuteResponse struct {
	Language   string                 `json:"language"`
	Attempt    int                    `json:"attempt,omitempty"`
	DurationMs int64                  `json:"duration_ms"`
	Report     report.ExecutionReport `json:"report"`
}

// ValidateRequest is the body of POST /api/v1/validate.
type ValidateRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language" binding:"required"`
}

// ScoreRequest is the body of POST /api/v1/score.
type ScoreRequest struct {
	analysis.Submission
}

// ScoreResponse adds the rating label to the raw analysis.
type ScoreResponse struct {
	analysis.SubmissionAnalysis
	Efficiency string `json:"efficiency"`
}

// ExecutorController handles execution HTTP endpoints.
type ExecutorController struct {
	svc    executor.Service
	scorer *analysis.Scorer
}

// NewExecutorController creates a new ExecutorController.
func NewExecutorController(svc executor.Service, scorer *analysis.Scorer) *ExecutorController {
	if scorer == nil {
		scorer = analysis.NewScorer(analysis.DefaultWeights())
	}
	return &ExecutorController{svc: svc, scorer: scorer}
}

// Execute runs a submission against its test cases.
func (h *ExecutorController) Execute(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request parameters")
		return
	}
	if strings.TrimSpace(req.Language) == "" {
		response.BadRequest(c, "language is required")
		return
	}

	start := time.Now()
	rep := h.svc.Execute(c.Request.Context(), executor.Request{
		Code:         req.Code,
		Language:     req.Language,
		FunctionName: req.FunctionName,
		Tests:        req.Tests,
	})

	response.Success(c, ExecuteResponse{
		Language:   req.Language,
		Attempt:    req.Attempt,
		DurationMs: time.Since(start).Milliseconds(),
		Report:     rep,
	})
}

// Validate performs a syntax-only pre-check.
func (h *ExecutorController) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request parameters")
		return
	}
	response.Success(c, h.svc.ValidateSyntax(c.Request.Context(), req.Code, req.Language))
}

// Score computes the weighted performance analysis for one submission.
func (h *ExecutorController) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request parameters")
		return
	}
	result := h.scorer.Analyze(req.Submission)
	response.Success(c, ScoreResponse{
		SubmissionAnalysis: result,
		Efficiency:         analysis.EfficiencyLabel(result.EfficiencyScore),
	})
}

// Health reports service liveness.
func (h *ExecutorController) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
