package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"or-caseflow-backend/internal/api/handlers"
	"or-caseflow-backend/internal/database/models"
	apperrors "or-caseflow-backend/internal/errors"
	"or-caseflow-backend/internal/mocks"
	"or-caseflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LifecycleHandlerTestSuite defines the test suite for LifecycleHandler
type LifecycleHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockLifecycleSv *mocks.MockLifecycleServiceInterface
	handler         *handlers.LifecycleHandler
	router          *gin.Engine
}

func (suite *LifecycleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLifecycleSv = mocks.NewMockLifecycleServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLifecycleHandler(suite.mockLifecycleSv)

	suite.router = gin.New()
	suite.router.POST("/lifecycle/monitor", suite.handler.ApplyMonitor)
	suite.router.POST("/lifecycle/cases/:uid/returning", suite.handler.MarkReturning)
	suite.router.PATCH("/lifecycle/cases/:uid", suite.handler.PatchCase)
	suite.router.POST("/lifecycle/sweep", suite.handler.Sweep)
	suite.router.GET("/lifecycle/cases/:uid/events", suite.handler.GetEvents)
}

func (suite *LifecycleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LifecycleHandlerTestSuite) jsonRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LifecycleHandlerTestSuite) TestApplyMonitor_Success() {
	observations := []service.StatusObservation{{HN: "65000001", Status: "กำลังผ่าตัด"}}
	suite.mockLifecycleSv.EXPECT().ApplySignals(observations).Return(1, nil)

	w := suite.jsonRequest(http.MethodPost, "/lifecycle/monitor",
		handlers.MonitorRequest{Observations: observations})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]int
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 1, got["applied"])
}

func (suite *LifecycleHandlerTestSuite) TestApplyMonitor_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/lifecycle/monitor", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *LifecycleHandlerTestSuite) TestMarkReturning_Success() {
	record := &models.CaseRecord{CaseUID: "abc123", State: models.CaseStateReturning}
	suite.mockLifecycleSv.EXPECT().MarkReturning("abc123").Return(record, nil)

	w := suite.jsonRequest(http.MethodPost, "/lifecycle/cases/abc123/returning", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *LifecycleHandlerTestSuite) TestMarkReturning_MissingEndTime() {
	suite.mockLifecycleSv.EXPECT().MarkReturning("abc123").
		Return(nil, apperrors.ErrReturningWithoutEndTime)

	w := suite.jsonRequest(http.MethodPost, "/lifecycle/cases/abc123/returning", nil)
	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *LifecycleHandlerTestSuite) TestMarkReturning_NotFound() {
	suite.mockLifecycleSv.EXPECT().MarkReturning("missing").Return(nil, apperrors.ErrCaseNotFound)

	w := suite.jsonRequest(http.MethodPost, "/lifecycle/cases/missing/returning", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *LifecycleHandlerTestSuite) TestPatchCase_Success() {
	record := &models.CaseRecord{CaseUID: "abc123", Scrub: "พว.มะลิ"}
	suite.mockLifecycleSv.EXPECT().Patch("abc123", gomock.Any()).Return(record, nil)

	scrub := "พว.มะลิ"
	w := suite.jsonRequest(http.MethodPatch, "/lifecycle/cases/abc123",
		service.PatchCaseRequest{Scrub: &scrub})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *LifecycleHandlerTestSuite) TestPatchCase_BackwardTransition() {
	suite.mockLifecycleSv.EXPECT().Patch("abc123", gomock.Any()).
		Return(nil, apperrors.ErrBackwardTransition)

	state := models.CaseStateScheduled
	w := suite.jsonRequest(http.MethodPatch, "/lifecycle/cases/abc123",
		service.PatchCaseRequest{State: &state})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *LifecycleHandlerTestSuite) TestSweep_Success() {
	result := &service.SweepResult{Checked: 2, Returned: []string{"abc123"}}
	suite.mockLifecycleSv.EXPECT().SweepReturning().Return(result, nil)

	w := suite.jsonRequest(http.MethodPost, "/lifecycle/sweep", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.SweepResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 2, got.Checked)
}

func (suite *LifecycleHandlerTestSuite) TestGetEvents_Success() {
	events := []models.CaseEvent{{CaseUID: "abc123", Event: "returned_to_ward"}}
	suite.mockLifecycleSv.EXPECT().Events("abc123").Return(events, nil)

	w := suite.jsonRequest(http.MethodGet, "/lifecycle/cases/abc123/events", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestLifecycleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleHandlerTestSuite))
}
