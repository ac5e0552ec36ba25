package service_test

import (
	"errors"
	"testing"
	"time"

	"or-caseflow-backend/internal/database/models"
	apperrors "or-caseflow-backend/internal/errors"
	"or-caseflow-backend/internal/mocks"
	"or-caseflow-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LifecycleServiceTestSuite tests the LifecycleService
type LifecycleServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *mocks.MockCaseRecordRepositoryInterface
	mockEvents *mocks.MockCaseEventRepositoryInterface
	svc        *service.LifecycleService
}

func (suite *LifecycleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCaseRecordRepositoryInterface(suite.ctrl)
	suite.mockEvents = mocks.NewMockCaseEventRepositoryInterface(suite.ctrl)
	suite.svc = service.NewLifecycleService(suite.mockRepo, suite.mockEvents, 3*time.Minute)
}

func (suite *LifecycleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func completeRecord() *models.CaseRecord {
	return &models.CaseRecord{
		CaseUID:    "abc123",
		ORRoom:     "OR1",
		Date:       "2025-09-01",
		HN:         "65000001",
		TimeStart:  "09:00",
		TimeEnd:    "11:30",
		Scrub:      "พว.สมศรี",
		Operations: models.StringList{"Appendectomy"},
		State:      models.CaseStateOperationEnded,
		Version:    2,
	}
}

func (suite *LifecycleServiceTestSuite) TestApplySignalsOperationStarted() {
	record := &models.CaseRecord{HN: "65000001", State: models.CaseStateScheduled}
	suite.mockRepo.EXPECT().GetLatestByHN("65000001").Return(record, nil)

	var saved *models.CaseRecord
	suite.mockRepo.EXPECT().Update(gomock.Any(), 0).DoAndReturn(
		func(r *models.CaseRecord, _ int) error {
			saved = r
			return nil
		})

	applied, err := suite.svc.ApplySignals([]service.StatusObservation{
		{HN: "65000001", Status: "กำลังผ่าตัด"},
	})

	suite.NoError(err)
	suite.Equal(1, applied)
	suite.Equal(models.CaseStateOperationStarted, saved.State)
	suite.NotEmpty(saved.TimeStart)
	suite.Equal(1, saved.Version)
}

func (suite *LifecycleServiceTestSuite) TestApplySignalsKeepsExistingStartTime() {
	record := &models.CaseRecord{HN: "65000001", TimeStart: "08:30", State: models.CaseStateScheduled}
	suite.mockRepo.EXPECT().GetLatestByHN("65000001").Return(record, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 0).Return(nil)

	_, err := suite.svc.ApplySignals([]service.StatusObservation{
		{HN: "65000001", Status: "กำลังผ่าตัด"},
	})

	suite.NoError(err)
	suite.Equal("08:30", record.TimeStart)
}

func (suite *LifecycleServiceTestSuite) TestApplySignalsDedupesRepeatedStatus() {
	record := &models.CaseRecord{HN: "65000001", State: models.CaseStateScheduled}
	suite.mockRepo.EXPECT().GetLatestByHN("65000001").Return(record, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 0).Return(nil).Times(1)

	obs := []service.StatusObservation{{HN: "65000001", Status: "กำลังผ่าตัด"}}
	applied, err := suite.svc.ApplySignals(obs)
	suite.NoError(err)
	suite.Equal(1, applied)

	applied, err = suite.svc.ApplySignals(obs)
	suite.NoError(err)
	suite.Equal(0, applied)
}

func (suite *LifecycleServiceTestSuite) TestApplySignalsPrunesDepartedPatients() {
	record := &models.CaseRecord{HN: "65000001", State: models.CaseStateScheduled}
	suite.mockRepo.EXPECT().GetLatestByHN("65000001").Return(record, nil).Times(2)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 0).Return(nil).Times(1)

	obs := []service.StatusObservation{{HN: "65000001", Status: "กำลังผ่าตัด"}}
	_, err := suite.svc.ApplySignals(obs)
	suite.NoError(err)

	// The patient drops off the tracking board; the dedupe entry goes with it.
	_, err = suite.svc.ApplySignals(nil)
	suite.NoError(err)

	// The same status is resolved anew instead of being suppressed forever.
	applied, err := suite.svc.ApplySignals(obs)
	suite.NoError(err)
	suite.Equal(0, applied)
}

func (suite *LifecycleServiceTestSuite) TestApplySignalsUnknownStatusIgnored() {
	applied, err := suite.svc.ApplySignals([]service.StatusObservation{
		{HN: "65000001", Status: "รอผ่าตัด"},
	})
	suite.NoError(err)
	suite.Equal(0, applied)
}

func (suite *LifecycleServiceTestSuite) TestApplySignalsUnknownHNSkipped() {
	suite.mockRepo.EXPECT().GetLatestByHN("99999999").Return(nil, gorm.ErrRecordNotFound)

	applied, err := suite.svc.ApplySignals([]service.StatusObservation{
		{HN: "99999999", Status: "กำลังผ่าตัด"},
	})
	suite.NoError(err)
	suite.Equal(0, applied)
}

func (suite *LifecycleServiceTestSuite) TestApplySignalsOperationEndedGuard() {
	// An end signal must not drag a returning case backwards.
	record := &models.CaseRecord{HN: "65000001", TimeEnd: "11:00", State: models.CaseStateReturning}
	suite.mockRepo.EXPECT().GetLatestByHN("65000001").Return(record, nil)

	applied, err := suite.svc.ApplySignals([]service.StatusObservation{
		{HN: "65000001", Status: "กำลังพักฟื้น"},
	})
	suite.NoError(err)
	suite.Equal(0, applied)
	suite.Equal(models.CaseStateReturning, record.State)
}

func (suite *LifecycleServiceTestSuite) TestApplySignalsReturningRequiresEndTime() {
	record := &models.CaseRecord{HN: "65000001", State: models.CaseStateOperationEnded}
	suite.mockRepo.EXPECT().GetLatestByHN("65000001").Return(record, nil)

	applied, err := suite.svc.ApplySignals([]service.StatusObservation{
		{HN: "65000001", Status: "กำลังส่งกลับตึก"},
	})
	suite.NoError(err)
	suite.Equal(0, applied)
	suite.Empty(record.ReturningStartedAt)
}

func (suite *LifecycleServiceTestSuite) TestApplySignalsReturningStartsClock() {
	record := &models.CaseRecord{HN: "65000001", TimeEnd: "11:00", State: models.CaseStateOperationEnded, Version: 3}
	suite.mockRepo.EXPECT().GetLatestByHN("65000001").Return(record, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 3).Return(nil)

	applied, err := suite.svc.ApplySignals([]service.StatusObservation{
		{HN: "65000001", Status: "กำลังส่งกลับตึก"},
	})
	suite.NoError(err)
	suite.Equal(1, applied)
	suite.Equal(models.CaseStateReturning, record.State)
	suite.NotEmpty(record.ReturningStartedAt)
	suite.False(record.PostopCompleted)
	suite.Equal(4, record.Version)
}

func (suite *LifecycleServiceTestSuite) TestMarkReturningWithoutEndTime() {
	record := &models.CaseRecord{CaseUID: "abc123", State: models.CaseStateOperationEnded}
	suite.mockRepo.EXPECT().GetByCaseUID("abc123").Return(record, nil)

	_, err := suite.svc.MarkReturning("abc123")
	suite.True(errors.Is(err, apperrors.ErrReturningWithoutEndTime))
}

func (suite *LifecycleServiceTestSuite) TestMarkReturningSuccess() {
	record := completeRecord()
	suite.mockRepo.EXPECT().GetByCaseUID("abc123").Return(record, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 2).Return(nil)

	got, err := suite.svc.MarkReturning("abc123")
	suite.NoError(err)
	suite.Equal(models.CaseStateReturning, got.State)
	suite.NotEmpty(got.ReturningStartedAt)
	suite.Empty(got.ReturnedToWardAt)
	suite.Equal(3, got.Version)
}

func (suite *LifecycleServiceTestSuite) TestMarkReturningNotFound() {
	suite.mockRepo.EXPECT().GetByCaseUID("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.MarkReturning("missing")
	suite.True(errors.Is(err, apperrors.ErrCaseNotFound))
}

func (suite *LifecycleServiceTestSuite) TestPatchRejectsBackwardTransition() {
	record := completeRecord()
	suite.mockRepo.EXPECT().GetByCaseUID("abc123").Return(record, nil)

	scheduled := models.CaseStateScheduled
	_, err := suite.svc.Patch("abc123", &service.PatchCaseRequest{State: &scheduled})
	suite.True(errors.Is(err, apperrors.ErrBackwardTransition))
}

func (suite *LifecycleServiceTestSuite) TestPatchRejectsUnknownState() {
	record := completeRecord()
	suite.mockRepo.EXPECT().GetByCaseUID("abc123").Return(record, nil)

	bogus := models.CaseState("resting")
	_, err := suite.svc.Patch("abc123", &service.PatchCaseRequest{State: &bogus})
	suite.True(errors.Is(err, apperrors.ErrInvalidState))
}

func (suite *LifecycleServiceTestSuite) TestPatchAppliesFieldsAndBumpsVersion() {
	record := completeRecord()
	suite.mockRepo.EXPECT().GetByCaseUID("abc123").Return(record, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 2).Return(nil)

	scrub := "พว.มะลิ"
	ward := "ศัลยกรรมหญิง"
	got, err := suite.svc.Patch("abc123", &service.PatchCaseRequest{Scrub: &scrub, Ward: &ward})

	suite.NoError(err)
	suite.Equal("พว.มะลิ", got.Scrub)
	suite.Equal("ศัลยกรรมหญิง", got.Ward)
	suite.Equal(3, got.Version)
}

func (suite *LifecycleServiceTestSuite) TestPatchAutoStartsReturningClock() {
	record := completeRecord()
	suite.mockRepo.EXPECT().GetByCaseUID("abc123").Return(record, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 2).Return(nil)

	returning := models.CaseStateReturning
	got, err := suite.svc.Patch("abc123", &service.PatchCaseRequest{State: &returning})

	suite.NoError(err)
	suite.NotEmpty(got.ReturningStartedAt)
}

func (suite *LifecycleServiceTestSuite) TestPatchRejectsReturningWithoutEndTime() {
	record := completeRecord()
	record.TimeEnd = ""
	suite.mockRepo.EXPECT().GetByCaseUID("abc123").Return(record, nil)

	returning := models.CaseStateReturning
	_, err := suite.svc.Patch("abc123", &service.PatchCaseRequest{State: &returning})
	suite.True(errors.Is(err, apperrors.ErrReturningWithoutEndTime))
}

func (suite *LifecycleServiceTestSuite) TestPatchClearingEndTimeCannotKeepReturning() {
	record := completeRecord()
	record.State = models.CaseStateReturning
	record.ReturningStartedAt = "2025-09-01T12:00:00"
	suite.mockRepo.EXPECT().GetByCaseUID("abc123").Return(record, nil)

	empty := ""
	_, err := suite.svc.Patch("abc123", &service.PatchCaseRequest{TimeEnd: &empty})
	suite.True(errors.Is(err, apperrors.ErrReturningWithoutEndTime))
}

func (suite *LifecycleServiceTestSuite) TestPatchReturningWithEndTimeInSamePatch() {
	record := completeRecord()
	record.TimeEnd = ""
	suite.mockRepo.EXPECT().GetByCaseUID("abc123").Return(record, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 2).Return(nil)

	returning := models.CaseStateReturning
	end := "11:30"
	got, err := suite.svc.Patch("abc123", &service.PatchCaseRequest{State: &returning, TimeEnd: &end})

	suite.NoError(err)
	suite.Equal(models.CaseStateReturning, got.State)
	suite.NotEmpty(got.ReturningStartedAt)
}

func (suite *LifecycleServiceTestSuite) TestPatchMarkReturningDelegates() {
	record := completeRecord()
	suite.mockRepo.EXPECT().GetByCaseUID("abc123").Return(record, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 2).Return(nil)

	got, err := suite.svc.Patch("abc123", &service.PatchCaseRequest{MarkReturning: true})
	suite.NoError(err)
	suite.Equal(models.CaseStateReturning, got.State)
}

func (suite *LifecycleServiceTestSuite) TestSweepReturnsCompleteCase() {
	record := completeRecord()
	record.State = models.CaseStateReturning
	record.ReturningStartedAt = time.Now().Add(-10 * time.Minute).Format("2006-01-02T15:04:05")

	suite.mockRepo.EXPECT().GetByState(models.CaseStateReturning).Return([]models.CaseRecord{*record}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 2).Return(nil)

	var event *models.CaseEvent
	suite.mockEvents.EXPECT().Append(gomock.Any()).DoAndReturn(
		func(e *models.CaseEvent) error {
			event = e
			return nil
		})

	result, err := suite.svc.SweepReturning()

	suite.NoError(err)
	suite.Equal(1, result.Checked)
	suite.Equal([]string{"abc123"}, result.Returned)
	suite.Equal("returned_to_ward", event.Event)
	suite.Equal("65000001", event.HN)
}

func (suite *LifecycleServiceTestSuite) TestSweepParksIncompleteCase() {
	record := completeRecord()
	record.Scrub = ""
	record.Assist1 = ""
	record.State = models.CaseStateReturning
	record.ReturningStartedAt = time.Now().Add(-10 * time.Minute).Format("2006-01-02T15:04:05")

	var saved *models.CaseRecord
	suite.mockRepo.EXPECT().GetByState(models.CaseStateReturning).Return([]models.CaseRecord{*record}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any(), 2).DoAndReturn(
		func(r *models.CaseRecord, _ int) error {
			saved = r
			return nil
		})

	result, err := suite.svc.SweepReturning()

	suite.NoError(err)
	suite.Equal([]string{"abc123"}, result.Incomplete)
	suite.Empty(result.Returned)
	suite.Equal(models.CaseStatePostopPending, saved.State)
	suite.False(saved.PostopCompleted)
	suite.NotEmpty(saved.ReturnedToWardAt)
}

func (suite *LifecycleServiceTestSuite) TestSweepHonorsGracePeriod() {
	record := completeRecord()
	record.State = models.CaseStateReturning
	record.ReturningStartedAt = time.Now().Add(-time.Minute).Format("2006-01-02T15:04:05")

	suite.mockRepo.EXPECT().GetByState(models.CaseStateReturning).Return([]models.CaseRecord{*record}, nil)

	result, err := suite.svc.SweepReturning()
	suite.NoError(err)
	suite.Empty(result.Returned)
	suite.Empty(result.Incomplete)
}

func (suite *LifecycleServiceTestSuite) TestSweepSkipsCaseWithoutClock() {
	record := completeRecord()
	record.State = models.CaseStateReturning
	record.ReturningStartedAt = ""

	suite.mockRepo.EXPECT().GetByState(models.CaseStateReturning).Return([]models.CaseRecord{*record}, nil)

	result, err := suite.svc.SweepReturning()
	suite.NoError(err)
	suite.Equal(1, result.Checked)
	suite.Empty(result.Returned)
}

func TestLifecycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleServiceTestSuite))
}

func TestIsComplete(t *testing.T) {
	base := func() *models.CaseRecord {
		return &models.CaseRecord{
			TimeStart:  "09:00",
			TimeEnd:    "11:30",
			Scrub:      "พว.สมศรี",
			Operations: models.StringList{"Appendectomy"},
		}
	}

	t.Run("complete", func(t *testing.T) {
		if !service.IsComplete(base()) {
			t.Fatal("expected complete")
		}
	})
	t.Run("missing end time", func(t *testing.T) {
		r := base()
		r.TimeEnd = ""
		if service.IsComplete(r) {
			t.Fatal("expected incomplete")
		}
	})
	t.Run("end before start", func(t *testing.T) {
		r := base()
		r.TimeEnd = "08:00"
		if service.IsComplete(r) {
			t.Fatal("expected incomplete")
		}
	})
	t.Run("no team", func(t *testing.T) {
		r := base()
		r.Scrub = ""
		if service.IsComplete(r) {
			t.Fatal("expected incomplete")
		}
	})
	t.Run("assist counts as team", func(t *testing.T) {
		r := base()
		r.Scrub = ""
		r.Assist2 = "นพ.ประเสริฐ"
		if !service.IsComplete(r) {
			t.Fatal("expected complete")
		}
	})
	t.Run("no procedure documentation", func(t *testing.T) {
		r := base()
		r.Operations = nil
		if service.IsComplete(r) {
			t.Fatal("expected incomplete")
		}
	})
	t.Run("diagnosis alone suffices", func(t *testing.T) {
		r := base()
		r.Operations = nil
		r.Diagnoses = models.StringList{"Acute appendicitis"}
		if !service.IsComplete(r) {
			t.Fatal("expected complete")
		}
	})
	t.Run("unparsable time", func(t *testing.T) {
		r := base()
		r.TimeEnd = "TF"
		if service.IsComplete(r) {
			t.Fatal("expected incomplete")
		}
	})
}
