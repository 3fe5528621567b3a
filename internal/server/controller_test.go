package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"codelab/internal/executor"
	"codelab/internal/executor/report"
	"codelab/internal/server"
)

type fakeService struct {
	lastExecute  executor.Request
	executeRep   report.ExecutionReport
	lastValidate string
	validateRes  executor.ValidationResult
}

func (f *fakeService) Execute(_ context.Context, req executor.Request) report.ExecutionReport {
	f.lastExecute = req
	return f.executeRep
}

func (f *fakeService) ValidateSyntax(_ context.Context, code, language string) executor.ValidationResult {
	f.lastValidate = language
	return f.validateRes
}

func newTestRouter(svc executor.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return server.NewRouter(server.NewExecutorController(svc, nil))
}

func TestExecuteEndpoint(t *testing.T) {
	svc := &fakeService{executeRep: report.ExecutionReport{
		Passed: true, PassedCount: 1, TotalCount: 1,
	}}
	router := newTestRouter(svc)

	body := `{"code": "def solution(x):\n    return x", "language": "python", "function_name": "solution", "test_cases": [{"input": 1, "expected": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/execute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if svc.lastExecute.Language != "python" || len(svc.lastExecute.Tests) != 1 {
		t.Errorf("request = %+v", svc.lastExecute)
	}

	var envelope struct {
		Code int                    `json:"code"`
		Data server.ExecuteResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Data.Report.Passed || envelope.Data.Language != "python" {
		t.Errorf("data = %+v", envelope.Data)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("request ID header missing")
	}
}

func TestExecuteEndpointRejectsBadBody(t *testing.T) {
	router := newTestRouter(&fakeService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/execute", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	svc := &fakeService{validateRes: executor.ValidationResult{Valid: false, Error: "SyntaxError"}}
	router := newTestRouter(svc)

	body := `{"code": "def broken(:", "language": "python"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.lastValidate != "python" {
		t.Errorf("validate language = %q", svc.lastValidate)
	}
	var envelope struct {
		Data executor.ValidationResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Valid || envelope.Data.Error != "SyntaxError" {
		t.Errorf("data = %+v", envelope.Data)
	}
}

func TestScoreEndpoint(t *testing.T) {
	router := newTestRouter(&fakeService{})

	body := `{"solved": true, "user_complexity": "O(n)", "expected_complexity": "O(n)", "time_taken_minutes": 5, "difficulty": "easy", "attempts": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	var envelope struct {
		Data server.ScoreResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.OverallScore != 1.0 || envelope.Data.Efficiency != "optimal" {
		t.Errorf("data = %+v", envelope.Data)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&fakeService{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
