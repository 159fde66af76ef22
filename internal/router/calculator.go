package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nbogalheiro/npi-calculator/internal/apperr"
	"github.com/nbogalheiro/npi-calculator/internal/calc"
	"github.com/nbogalheiro/npi-calculator/internal/domain"
	"github.com/nbogalheiro/npi-calculator/internal/dto"
	"github.com/nbogalheiro/npi-calculator/internal/export"
	"github.com/nbogalheiro/npi-calculator/internal/storage"
	"github.com/nbogalheiro/npi-calculator/pkg/pagination"
)

type CalculatorRouter struct {
	e      *echo.Echo
	storer storage.Storer
	reader storage.Reader
}

func NewCalculatorRouter(e *echo.Echo, storer storage.Storer, reader storage.Reader) *CalculatorRouter {
	return &CalculatorRouter{
		e:      e,
		storer: storer,
		reader: reader,
	}
}

func (r *CalculatorRouter) Bind() {
	r.e.POST("/calculate", r.calculateHandler)
	r.e.GET("/results", r.resultsHandler)
	r.e.GET("/results/csv", r.resultsCSVHandler)
}

// calculateHandler evaluates the submitted RPN expression and persists the
// (expression, result) pair on success. Evaluation failures propagate to the
// global error handler untouched so each kind keeps its own status; nothing
// is stored for a failed evaluation.
func (r *CalculatorRouter) calculateHandler(c echo.Context) error {
	var req dto.CalculateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	result, err := calc.EvaluateString(req.Expression)
	if err != nil {
		return err
	}

	calculation := domain.Calculation{
		ID:         uuid.New(),
		Expression: req.Expression,
		Result:     result,
		CreatedAt:  time.Now(),
	}
	if _, err := r.storer.Save(c.Request().Context(), calculation); err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}

	slog.Info("Calculation stored", "expression", calculation.Expression, "result", calculation.Result)

	return c.JSON(http.StatusOK, dto.NewCalculationResponse(calculation))
}

func (r *CalculatorRouter) resultsHandler(c echo.Context) error {
	var req pagination.OffsetRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	if err := req.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	results, err := r.reader.List(c.Request().Context(), req.Page, req.Size)
	if err != nil {
		return fmt.Errorf("failed to list calculations: %w", err)
	}

	return c.JSON(http.StatusOK, results)
}

func (r *CalculatorRouter) resultsCSVHandler(c echo.Context) error {
	calculations, err := r.reader.ListAll(c.Request().Context())
	if err != nil {
		return fmt.Errorf("failed to list calculations: %w", err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.CSVFilename))
	c.Response().WriteHeader(http.StatusOK)

	return export.WriteCSV(c.Response(), calculations)
}
