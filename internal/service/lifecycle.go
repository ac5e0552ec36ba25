package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"or-caseflow-backend/internal/database/models"
	apperrors "or-caseflow-backend/internal/errors"
	"or-caseflow-backend/internal/logger"
	"or-caseflow-backend/internal/repository"

	"gorm.io/gorm"
)

// Signal is a progress event observed for a patient, keyed by HN rather than
// by case, so the service resolves it to the patient's latest case itself.
type Signal string

const (
	SignalOperationStarted Signal = "operation_started"
	SignalOperationEnded   Signal = "operation_ended"
	SignalReturning        Signal = "returning"
)

// DefaultSignalMap maps the tracking-board status strings to signals
var DefaultSignalMap = map[string]Signal{
	"กำลังผ่าตัด":     SignalOperationStarted,
	"กำลังพักฟื้น":    SignalOperationEnded,
	"กำลังส่งกลับตึก": SignalReturning,
}

const isoLayout = "2006-01-02T15:04:05"

// StatusObservation is one row read off the tracking board
type StatusObservation struct {
	HN     string `json:"hn" validate:"required"`
	Status string `json:"status" validate:"required"`
	// Timestamp is when the tracking board reported the status. Informational:
	// signals apply in arrival order.
	Timestamp string `json:"timestamp,omitempty"`
}

// PatchCaseRequest carries a partial external update. Only the listed fields
// are patchable; everything else on the record is owned by the board.
type PatchCaseRequest struct {
	Assist1            *string           `json:"assist1,omitempty"`
	Assist2            *string           `json:"assist2,omitempty"`
	Scrub              *string           `json:"scrub,omitempty"`
	Circulate          *string           `json:"circulate,omitempty"`
	TimeStart          *string           `json:"time_start,omitempty"`
	TimeEnd            *string           `json:"time_end,omitempty"`
	Ward               *string           `json:"ward,omitempty"`
	Doctor             *string           `json:"doctor,omitempty"`
	State              *models.CaseState `json:"state,omitempty"`
	ReturningStartedAt *string           `json:"returning_started_at,omitempty"`
	ReturnedToWardAt   *string           `json:"returned_to_ward_at,omitempty"`
	PostopCompleted    *bool             `json:"postop_completed,omitempty"`
	MarkReturning      bool              `json:"mark_returning,omitempty"`
}

// SweepResult reports one sweep pass over returning cases
type SweepResult struct {
	Checked    int      `json:"checked"`
	Returned   []string `json:"returned"`
	Incomplete []string `json:"incomplete"`
}

// LifecycleService drives the case state machine from external signals
type LifecycleService struct {
	repo      repository.CaseRecordRepositoryInterface
	events    repository.CaseEventRepositoryInterface
	grace     time.Duration
	signalMap map[string]Signal
	now       func() time.Time

	mu             sync.Mutex
	lastStatusByHN map[string]string
}

// NewLifecycleService creates a new lifecycle service. grace is how long a
// case must sit in returning_to_ward before the sweep settles it.
func NewLifecycleService(repo repository.CaseRecordRepositoryInterface, events repository.CaseEventRepositoryInterface, grace time.Duration) *LifecycleService {
	return &LifecycleService{
		repo:           repo,
		events:         events,
		grace:          grace,
		signalMap:      DefaultSignalMap,
		now:            time.Now,
		lastStatusByHN: make(map[string]string),
	}
}

func (s *LifecycleService) nowISO() string {
	return s.now().Format(isoLayout)
}

func parseISO(value string) (time.Time, error) {
	text := strings.TrimSuffix(strings.TrimSpace(value), "Z")
	if t, err := time.Parse(isoLayout, text); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// minutesOfDay parses "HH:MM" into minutes since midnight
func minutesOfDay(hhmm string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, apperrors.ErrInvalidTimeFormat
	}
	hh, err1 := strconv.Atoi(parts[0])
	mm, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, apperrors.ErrInvalidTimeFormat
	}
	return hh*60 + mm, nil
}

// IsComplete reports whether a case has everything the ward handoff needs:
// both operation times in order, at least one nurse, and at least one
// diagnosis or operation.
func IsComplete(record *models.CaseRecord) bool {
	if strings.TrimSpace(record.TimeStart) == "" || strings.TrimSpace(record.TimeEnd) == "" {
		return false
	}
	start, err1 := minutesOfDay(record.TimeStart)
	end, err2 := minutesOfDay(record.TimeEnd)
	if err1 != nil || err2 != nil || end < start {
		return false
	}
	if strings.TrimSpace(record.Scrub) == "" && strings.TrimSpace(record.Circulate) == "" &&
		strings.TrimSpace(record.Assist1) == "" && strings.TrimSpace(record.Assist2) == "" {
		return false
	}
	if len(record.Operations) == 0 && len(record.Diagnoses) == 0 {
		return false
	}
	return true
}

// operationStartedFrom lists the states a start signal may advance from
var operationStartedFrom = map[models.CaseState]bool{
	models.CaseStateScheduled:      true,
	models.CaseStateOperationEnded: true,
	models.CaseStatePostopPending:  true,
	models.CaseState(""):           true,
}

// operationEndedFrom lists the states an end signal may advance from
var operationEndedFrom = map[models.CaseState]bool{
	models.CaseStateOperationStarted: true,
	models.CaseStateScheduled:        true,
	models.CaseState(""):             true,
}

// ApplySignals folds a batch of tracking-board observations into case state.
// Repeated statuses per HN are deduped against the last applied one, so a
// board that keeps reporting the same status does not churn versions.
func (s *LifecycleService) ApplySignals(observations []StatusObservation) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	observed := make(map[string]bool, len(observations))
	for _, obs := range observations {
		hn := strings.TrimSpace(obs.HN)
		status := strings.TrimSpace(obs.Status)
		if hn == "" || status == "" {
			continue
		}
		observed[hn] = true
		if s.lastStatusByHN[hn] == status {
			continue
		}

		signal, ok := s.signalMap[status]
		if !ok {
			s.lastStatusByHN[hn] = status
			continue
		}

		record, err := s.repo.GetLatestByHN(hn)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.lastStatusByHN[hn] = status
				continue
			}
			return applied, fmt.Errorf("failed to resolve case for hn %s: %w", hn, err)
		}

		changed := false
		switch signal {
		case SignalOperationStarted:
			if record.TimeStart == "" {
				record.TimeStart = s.now().Format("15:04")
				changed = true
			}
			if record.State != models.CaseStateOperationStarted && operationStartedFrom[record.State] {
				record.State = models.CaseStateOperationStarted
				changed = true
			}
		case SignalOperationEnded:
			if record.TimeEnd == "" {
				record.TimeEnd = s.now().Format("15:04")
				changed = true
			}
			if record.State != models.CaseStateOperationEnded && operationEndedFrom[record.State] {
				record.State = models.CaseStateOperationEnded
				changed = true
			}
		case SignalReturning:
			// A return without a recorded end time is noise; wait for it.
			if record.TimeEnd == "" {
				s.lastStatusByHN[hn] = status
				continue
			}
			if record.State != models.CaseStateReturning {
				record.State = models.CaseStateReturning
				record.ReturningStartedAt = s.nowISO()
				record.PostopCompleted = false
				record.ReturnedToWardAt = ""
				changed = true
			}
		}

		s.lastStatusByHN[hn] = status
		if !changed {
			continue
		}

		expected := record.Version
		record.Version = expected + 1
		if err := s.repo.Update(record, expected); err != nil {
			if errors.Is(err, apperrors.ErrVersionConflict) {
				logger.New().WithField("hn", hn).Warn("Signal lost to concurrent edit, will retry next scan")
				delete(s.lastStatusByHN, hn)
				continue
			}
			return applied, fmt.Errorf("failed to apply signal for hn %s: %w", hn, err)
		}
		applied++
	}

	// Patients that left the tracking board take their dedupe entry with them,
	// so the cache stays bounded by the board size.
	for hn := range s.lastStatusByHN {
		if !observed[hn] {
			delete(s.lastStatusByHN, hn)
		}
	}
	return applied, nil
}

// MarkReturning moves a case into returning_to_ward and starts the grace
// clock. A case without a recorded operation end time cannot return.
func (s *LifecycleService) MarkReturning(caseUID string) (*models.CaseRecord, error) {
	record, err := s.repo.GetByCaseUID(caseUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}
	if strings.TrimSpace(record.TimeEnd) == "" {
		return nil, apperrors.ErrReturningWithoutEndTime
	}

	record.State = models.CaseStateReturning
	record.ReturningStartedAt = s.nowISO()
	record.PostopCompleted = false
	record.ReturnedToWardAt = ""

	expected := record.Version
	record.Version = expected + 1
	if err := s.repo.Update(record, expected); err != nil {
		return nil, err
	}
	return record, nil
}

// Patch applies a partial external update. The state may only move forward
// through the lifecycle; mark_returning delegates to the returning rules.
func (s *LifecycleService) Patch(caseUID string, req *PatchCaseRequest) (*models.CaseRecord, error) {
	if req.MarkReturning {
		return s.MarkReturning(caseUID)
	}

	record, err := s.repo.GetByCaseUID(caseUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}

	if req.Assist1 != nil {
		record.Assist1 = *req.Assist1
	}
	if req.Assist2 != nil {
		record.Assist2 = *req.Assist2
	}
	if req.Scrub != nil {
		record.Scrub = *req.Scrub
	}
	if req.Circulate != nil {
		record.Circulate = *req.Circulate
	}
	if req.TimeStart != nil {
		record.TimeStart = *req.TimeStart
	}
	if req.TimeEnd != nil {
		record.TimeEnd = *req.TimeEnd
	}
	if req.Ward != nil {
		record.Ward = *req.Ward
	}
	if req.Doctor != nil {
		record.Doctor = *req.Doctor
	}
	if req.State != nil {
		next := *req.State
		if !next.IsValid() {
			return nil, apperrors.ErrInvalidState
		}
		if next.Rank() < record.State.Rank() {
			return nil, apperrors.ErrBackwardTransition
		}
		record.State = next
	}
	if req.ReturningStartedAt != nil {
		record.ReturningStartedAt = *req.ReturningStartedAt
	}
	if req.ReturnedToWardAt != nil {
		record.ReturnedToWardAt = *req.ReturnedToWardAt
	}
	if req.PostopCompleted != nil {
		record.PostopCompleted = *req.PostopCompleted
	}

	// A case cannot sit in returning_to_ward without a recorded operation end,
	// no matter how the patch arrives at that state.
	if record.State == models.CaseStateReturning && strings.TrimSpace(record.TimeEnd) == "" {
		return nil, apperrors.ErrReturningWithoutEndTime
	}

	// A case pushed into returning without a timestamp gets the clock started
	// here, so the sweep can settle it.
	if record.State == models.CaseStateReturning && record.ReturningStartedAt == "" {
		record.ReturningStartedAt = s.nowISO()
	}

	expected := record.Version
	record.Version = expected + 1
	if err := s.repo.Update(record, expected); err != nil {
		return nil, err
	}
	return record, nil
}

// SweepReturning settles cases that have sat in returning_to_ward past the
// grace period. Complete cases are confirmed back on the ward with an audit
// event; incomplete ones are parked in postop_pending for follow-up.
func (s *LifecycleService) SweepReturning() (*SweepResult, error) {
	records, err := s.repo.GetByState(models.CaseStateReturning)
	if err != nil {
		return nil, fmt.Errorf("failed to load returning cases: %w", err)
	}

	result := &SweepResult{Checked: len(records)}
	for i := range records {
		record := &records[i]
		if record.ReturningStartedAt == "" || record.TimeEnd == "" {
			continue
		}
		startedAt, err := parseISO(record.ReturningStartedAt)
		if err != nil {
			logger.New().WithField("case_uid", record.CaseUID).Warn("Unparsable returning timestamp, skipping")
			continue
		}
		if s.now().Sub(startedAt) < s.grace {
			continue
		}

		if IsComplete(record) {
			record.PostopCompleted = true
			record.State = models.CaseStateReturned
			record.ReturnedToWardAt = s.nowISO()
		} else {
			record.PostopCompleted = false
			record.State = models.CaseStatePostopPending
			record.ReturnedToWardAt = s.nowISO()
		}

		expected := record.Version
		record.Version = expected + 1
		if err := s.repo.Update(record, expected); err != nil {
			if errors.Is(err, apperrors.ErrVersionConflict) {
				logger.New().WithField("case_uid", record.CaseUID).Warn("Returning case edited during sweep, will settle next pass")
				continue
			}
			return result, fmt.Errorf("failed to settle case %s: %w", record.CaseUID, err)
		}

		if record.State == models.CaseStateReturned {
			details, _ := json.Marshal(map[string]interface{}{
				"hn":         record.HN,
				"or":         record.ORRoom,
				"time_start": record.TimeStart,
				"time_end":   record.TimeEnd,
				"assist1":    record.Assist1,
				"assist2":    record.Assist2,
				"scrub":      record.Scrub,
				"circulate":  record.Circulate,
				"diags":      record.Diagnoses,
				"ops":        record.Operations,
			})
			event := &models.CaseEvent{
				CaseUID: record.CaseUID,
				HN:      record.HN,
				Event:   "returned_to_ward",
				Details: details,
			}
			if err := s.events.Append(event); err != nil {
				logger.New().WithField("case_uid", record.CaseUID).Errorf("Failed to append ward-return event: %v", err)
			}
			result.Returned = append(result.Returned, record.CaseUID)
		} else {
			result.Incomplete = append(result.Incomplete, record.CaseUID)
		}
	}
	return result, nil
}

// Events returns the audit trail of one case, oldest first
func (s *LifecycleService) Events(caseUID string) ([]models.CaseEvent, error) {
	return s.events.GetByCaseUID(caseUID)
}
