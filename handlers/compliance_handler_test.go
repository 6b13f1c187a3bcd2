package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"labelguard-backend/handlers"
	"labelguard-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComplianceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewComplianceHandler(service.NewComplianceService())
	r := gin.New()
	r.POST("/api/compliance/evaluate", h.Evaluate)
	r.GET("/api/compliance/schema", h.Schema)
	r.GET("/api/compliance/samples", h.Samples)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestComplianceEvaluate_WithRecord(t *testing.T) {
	r := newComplianceRouter()

	w := postJSON(t, r, "/api/compliance/evaluate",
		`{"record": {"제품명": "스파클링 레몬에이드", "내용량": "500ml"}}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Results []struct {
				ID      string `json:"id"`
				Verdict string `json:"verdict"`
			} `json:"results"`
			Summary struct {
				Total   int    `json:"total"`
				Overall string `json:"overall"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Results)
	assert.Equal(t, len(resp.Data.Results), resp.Data.Summary.Total)

	for _, res := range resp.Data.Results {
		if res.ID == "LBL-01" {
			assert.Equal(t, "pass", res.Verdict)
		}
	}
}

func TestComplianceEvaluate_WithPastedText(t *testing.T) {
	r := newComplianceRouter()

	w := postJSON(t, r, "/api/compliance/evaluate",
		`{"text": "제품명: 울트라 에너지부스트\n내용량: 250ml"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestComplianceEvaluate_EmptyBodyRejected(t *testing.T) {
	r := newComplianceRouter()

	w := postJSON(t, r, "/api/compliance/evaluate", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "EMPTY_LABEL")
}

func TestComplianceSchemaAndSamples(t *testing.T) {
	r := newComplianceRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/compliance/schema", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "식품등의 표시기준")
	assert.Contains(t, w.Body.String(), "LBL-01")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/compliance/samples", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "탄산음료")
}
