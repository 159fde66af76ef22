package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nbogalheiro/npi-calculator/internal/calc"
)

// GlobalErrorHandler maps typed errors to user-facing responses. Every
// evaluator failure kind keeps its identity on the wire via the "kind" field;
// none is downgraded to a default result.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ee *calc.EvalError
		if errors.As(err, &ee) {
			status := http.StatusBadRequest
			if ee.Kind == calc.DivisionByZero {
				status = http.StatusUnprocessableEntity
			}
			_ = c.JSON(status, map[string]string{"error": ee.Error(), "kind": ee.Kind.String()})
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
