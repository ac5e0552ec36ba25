package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"or-caseflow-backend/internal/api/handlers"
	apperrors "or-caseflow-backend/internal/errors"
	"or-caseflow-backend/internal/mocks"
	"or-caseflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BoardHandlerTestSuite defines the test suite for BoardHandler
type BoardHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBoardSv *mocks.MockBoardServiceInterface
	handler     *handlers.BoardHandler
	router      *gin.Engine
}

func (suite *BoardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBoardSv = mocks.NewMockBoardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBoardHandler(suite.mockBoardSv)

	suite.router = gin.New()
	suite.router.GET("/board", suite.handler.GetBoard)
	suite.router.POST("/board/cases", suite.handler.CreateCase)
	suite.router.GET("/board/cases/:id", suite.handler.GetCase)
	suite.router.PUT("/board/cases/:id", suite.handler.UpdateCase)
	suite.router.DELETE("/board/cases/:id", suite.handler.DeleteCase)
	suite.router.POST("/board/clear", suite.handler.ClearDay)
	suite.router.GET("/board/rooms", suite.handler.ListRooms)
	suite.router.PUT("/board/rooms", suite.handler.ReplaceRooms)
	suite.router.GET("/board/seq", suite.handler.GetSeq)
}

func (suite *BoardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BoardHandlerTestSuite) jsonRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
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

func (suite *BoardHandlerTestSuite) TestGetBoard_Success() {
	board := &service.BoardResponse{
		Date: "2025-09-01",
		Seq:  12,
		Rooms: []service.RoomCasesResponse{
			{Room: "OR1", Owner: "นพ.สุริยา คุณาชน", Cases: []service.CaseResponse{}},
		},
	}
	suite.mockBoardSv.EXPECT().ListBoard("2025-09-01").Return(board, nil)

	w := suite.jsonRequest(http.MethodGet, "/board?date=2025-09-01", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.BoardResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(12), got.Seq)
	assert.Len(suite.T(), got.Rooms, 1)
}

func (suite *BoardHandlerTestSuite) TestGetBoard_MissingDate() {
	w := suite.jsonRequest(http.MethodGet, "/board", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BoardHandlerTestSuite) TestGetBoard_BadDate() {
	suite.mockBoardSv.EXPECT().ListBoard("bogus").Return(nil, apperrors.ErrInvalidDateFormat)

	w := suite.jsonRequest(http.MethodGet, "/board?date=bogus", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BoardHandlerTestSuite) TestCreateCase_Success() {
	resp := &service.CaseResponse{ID: uuid.New(), HN: "65000001", ORRoom: "OR1"}
	suite.mockBoardSv.EXPECT().CreateCase(gomock.Any()).Return(resp, nil)

	w := suite.jsonRequest(http.MethodPost, "/board/cases", service.CreateCaseRequest{
		Date: "2025-09-01",
		HN:   "65000001",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.CaseResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "65000001", got.HN)
}

func (suite *BoardHandlerTestSuite) TestCreateCase_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/board/cases", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BoardHandlerTestSuite) TestGetCase_NotFound() {
	id := uuid.New()
	suite.mockBoardSv.EXPECT().GetCase(id).Return(nil, apperrors.ErrCaseNotFound)

	w := suite.jsonRequest(http.MethodGet, "/board/cases/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *BoardHandlerTestSuite) TestGetCase_BadID() {
	w := suite.jsonRequest(http.MethodGet, "/board/cases/not-a-uuid", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *BoardHandlerTestSuite) TestUpdateCase_VersionConflict() {
	id := uuid.New()
	suite.mockBoardSv.EXPECT().UpdateCase(id, gomock.Any()).Return(nil, apperrors.ErrVersionConflict)

	w := suite.jsonRequest(http.MethodPut, "/board/cases/"+id.String(), service.UpdateCaseRequest{Version: 1})
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *BoardHandlerTestSuite) TestUpdateCase_Success() {
	id := uuid.New()
	resp := &service.CaseResponse{ID: id, Version: 2}
	suite.mockBoardSv.EXPECT().UpdateCase(id, gomock.Any()).Return(resp, nil)

	w := suite.jsonRequest(http.MethodPut, "/board/cases/"+id.String(), service.UpdateCaseRequest{Version: 1})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BoardHandlerTestSuite) TestDeleteCase_Success() {
	id := uuid.New()
	suite.mockBoardSv.EXPECT().DeleteCase(id).Return(nil)

	w := suite.jsonRequest(http.MethodDelete, "/board/cases/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *BoardHandlerTestSuite) TestClearDay_Success() {
	resp := &service.ClearDayResponse{Date: "2025-09-01", Removed: 3}
	suite.mockBoardSv.EXPECT().ClearDay("2025-09-01").Return(resp, nil)

	w := suite.jsonRequest(http.MethodPost, "/board/clear?date=2025-09-01", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ClearDayResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(3), got.Removed)
}

func (suite *BoardHandlerTestSuite) TestListRooms_Success() {
	suite.mockBoardSv.EXPECT().ListRooms().Return([]string{"OR1", "OR2"}, nil)

	w := suite.jsonRequest(http.MethodGet, "/board/rooms", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string][]string
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), []string{"OR1", "OR2"}, got["rooms"])
}

func (suite *BoardHandlerTestSuite) TestReplaceRooms_Success() {
	suite.mockBoardSv.EXPECT().ReplaceRooms([]string{"OR1", "OR9"}).Return([]string{"OR1", "OR9"}, nil)

	w := suite.jsonRequest(http.MethodPut, "/board/rooms", handlers.ReplaceRoomsRequest{Rooms: []string{"OR1", "OR9"}})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *BoardHandlerTestSuite) TestGetSeq_Success() {
	suite.mockBoardSv.EXPECT().Seq().Return(int64(42), nil)

	w := suite.jsonRequest(http.MethodGet, "/board/seq", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]int64
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(42), got["seq"])
}

func TestBoardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BoardHandlerTestSuite))
}
