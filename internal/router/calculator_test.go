package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbogalheiro/npi-calculator/internal/apperr"
	"github.com/nbogalheiro/npi-calculator/internal/router"
	"github.com/nbogalheiro/npi-calculator/internal/storage/in_mem"
)

func newTestServer() (*echo.Echo, *in_mem.Store) {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	store := in_mem.NewStore()
	r := router.NewCalculatorRouter(e, store, store)
	r.Bind()

	return e, store
}

func postCalculate(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCalculateHandler(t *testing.T) {
	e, store := newTestServer()

	rec := postCalculate(e, `{"expression": "5 1 2 + 4 * + 3 -"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID         string  `json:"id"`
		Expression string  `json:"expression"`
		Result     float64 `json:"result"`
		CreatedAt  string  `json:"createdAt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "5 1 2 + 4 * + 3 -", resp.Expression)
	assert.Equal(t, 14.0, resp.Result)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.CreatedAt)

	all, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 14.0, all[0].Result)
}

func TestCalculateHandler_SameExpressionTwice(t *testing.T) {
	e, store := newTestServer()

	first := postCalculate(e, `{"expression": "3 4 +"}`)
	second := postCalculate(e, `{"expression": "3 4 +"}`)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	all, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, all[0].Result, all[1].Result)
	assert.NotEqual(t, all[0].ID, all[1].ID)
}

func TestCalculateHandler_EvaluationFailures(t *testing.T) {
	cases := []struct {
		name       string
		expression string
		wantStatus int
		wantKind   string
	}{
		{"invalid token", "1 x +", http.StatusBadRequest, "invalid_token"},
		{"insufficient operands", "1 +", http.StatusBadRequest, "insufficient_operands"},
		{"division by zero", "4 0 /", http.StatusUnprocessableEntity, "division_by_zero"},
		{"leftover operands", "1 2", http.StatusBadRequest, "malformed_expression"},
		{"empty expression", "", http.StatusBadRequest, "malformed_expression"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, store := newTestServer()

			body, err := json.Marshal(map[string]string{"expression": tc.expression})
			require.NoError(t, err)

			rec := postCalculate(e, string(body))
			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantKind, resp["kind"])
			assert.NotEmpty(t, resp["error"])

			// Failed evaluations must never be persisted.
			all, err := store.ListAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestCalculateHandler_InvalidTokenNamesOffender(t *testing.T) {
	e, _ := newTestServer()

	rec := postCalculate(e, `{"expression": "1 x +"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], `"x"`)
}

func TestCalculateHandler_MalformedBody(t *testing.T) {
	e, _ := newTestServer()

	rec := postCalculate(e, `{"expression": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResultsHandler(t *testing.T) {
	e, _ := newTestServer()

	for _, expr := range []string{"1 1 +", "2 2 +", "3 3 +"} {
		body, _ := json.Marshal(map[string]string{"expression": expr})
		rec := postCalculate(e, string(body))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/results?page=1&size=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Items []struct {
			Expression string  `json:"expression"`
			Result     float64 `json:"result"`
		} `json:"items"`
		Total   int64 `json:"total"`
		HasMore bool  `json:"has_more"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))

	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "3 3 +", page.Items[0].Expression)
	assert.True(t, page.HasMore)
}

func TestResultsHandler_DefaultsApplied(t *testing.T) {
	e, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/results", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResultsCSVHandler(t *testing.T) {
	e, _ := newTestServer()

	for _, expr := range []string{"3 4 +", "8 2 /"} {
		body, _ := json.Marshal(map[string]string{"expression": expr})
		rec := postCalculate(e, string(body))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/results/csv", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, `attachment; filename="history.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,expression,result,created_at", lines[0])
	assert.Contains(t, lines[1], "3 4 +")
	assert.Contains(t, lines[2], "8 2 /")
}

func TestResultsCSVHandler_EmptyHistory(t *testing.T) {
	e, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/results/csv", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "id,expression,result,created_at\n", rec.Body.String())
}
