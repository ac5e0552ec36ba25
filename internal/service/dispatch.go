package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"or-caseflow-backend/internal/database/models"
	apperrors "or-caseflow-backend/internal/errors"
	"or-caseflow-backend/internal/logger"
	"or-caseflow-backend/internal/repository"
)

// systemUser is the actor recorded when the service finishes a pickup itself
const systemUser = "ระบบ"

// PickupPayload is one patient transport job as the runner board expects it
type PickupPayload struct {
	PickupID   string `json:"pickup_id"`
	Date       string `json:"date"`
	HN         string `json:"hn"`
	Name       string `json:"name"`
	WardFrom   string `json:"ward_from"`
	ORTo       string `json:"or_to"`
	CallTime   string `json:"call_time"`
	DueTime    string `json:"due_time"`
	Status     string `json:"status"`
	Assignee   string `json:"assignee"`
	AckTime    string `json:"ack_time"`
	StartTime  string `json:"start_time"`
	ArriveTime string `json:"arrive_time"`
	Note       string `json:"note"`
}

// PickupStatus is a runner-side pickup row as reported by /runner/list
type PickupStatus struct {
	PickupID   string `json:"pickup_id"`
	Status     string `json:"status"`
	Assignee   string `json:"assignee"`
	AckTime    string `json:"ack_time"`
	ArriveTime string `json:"arrive_time"`
}

// PushResult reports one push of a day's pickups to the runner
type PushResult struct {
	Pushed   int      `json:"pushed"`
	Skipped  int      `json:"skipped"`
	FailedHN []string `json:"failed_hn,omitempty"`
}

// DispatchService mirrors the board's cases onto the porter runner board and
// auto-finishes pickups whose cases are documented completely.
type DispatchService struct {
	repo         repository.CaseRecordRepositoryInterface
	baseURL      string
	enabled      bool
	httpClient   *http.Client
	healthClient *http.Client
	now          func() time.Time

	mu           sync.Mutex
	finishedSent map[string]bool
}

// NewDispatchService creates a new dispatch service
func NewDispatchService(repo repository.CaseRecordRepositoryInterface, baseURL string, enabled bool, timeout time.Duration) *DispatchService {
	return &DispatchService{
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		healthClient: &http.Client{
			Timeout: 800 * time.Millisecond,
		},
		now:          time.Now,
		finishedSent: make(map[string]bool),
	}
}

// PickupID builds the runner-side identity of a case's transport job
func PickupID(date, hn, room string) string {
	return fmt.Sprintf("%s:%s:%s", date, hn, room)
}

// coerceClock keeps only concrete HH:MM values for the runner board
func coerceClock(value string) string {
	text := strings.TrimSpace(value)
	if text == "" || strings.EqualFold(text, "TF") {
		return ""
	}
	if _, err := minutesOfDay(text); err != nil {
		return ""
	}
	return text
}

// BuildPayload maps a case to its transport job. Cases without an HN or a
// room cannot be dispatched and yield nil.
func (s *DispatchService) BuildPayload(record *models.CaseRecord) *PickupPayload {
	hn := strings.TrimSpace(record.HN)
	room := strings.TrimSpace(record.ORRoom)
	if hn == "" || room == "" {
		return nil
	}
	start := coerceClock(record.TimeStart)
	if start == "" {
		start = coerceClock(record.ScheduledTime)
	}
	return &PickupPayload{
		PickupID:  PickupID(record.Date, hn, room),
		Date:      record.Date,
		HN:        hn,
		Name:      record.PatientName,
		WardFrom:  record.Ward,
		ORTo:      room,
		CallTime:  s.now().Format("15:04"),
		Status:    "waiting",
		StartTime: start,
		Note:      record.Doctor,
	}
}

// Health checks whether the runner board is reachable
func (s *DispatchService) Health(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := s.healthClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (s *DispatchService) postJSON(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode runner request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrRunnerUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s returned %d", apperrors.ErrRunnerRejected, path, resp.StatusCode)
	}
	return nil
}

// PushDay sends every dispatchable case of a day to the runner board
func (s *DispatchService) PushDay(ctx context.Context, date string) (*PushResult, error) {
	records, err := s.repo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load cases: %w", err)
	}

	result := &PushResult{}
	for i := range records {
		payload := s.BuildPayload(&records[i])
		if payload == nil {
			result.Skipped++
			continue
		}
		if err := s.postJSON(ctx, "/runner/update", payload); err != nil {
			logger.New().WithField("hn", payload.HN).Warnf("Failed to push pickup: %v", err)
			result.FailedHN = append(result.FailedHN, payload.HN)
			continue
		}
		result.Pushed++
	}
	return result, nil
}

// StatusMap pulls the runner's view of a day, keyed by pickup id. The runner
// may answer with a plain array or wrap it in a list key.
func (s *DispatchService) StatusMap(ctx context.Context, date string) (map[string]PickupStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.baseURL+"/runner/list?date="+url.QueryEscape(date), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRunnerUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read runner response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: list returned %d", apperrors.ErrRunnerRejected, resp.StatusCode)
	}

	rows := parsePickupList(body)
	statuses := make(map[string]PickupStatus, len(rows))
	for _, row := range rows {
		if row.PickupID != "" {
			statuses[row.PickupID] = row
		}
	}
	return statuses, nil
}

// parsePickupList accepts either a bare array or a wrapper object with one of
// the usual list keys.
func parsePickupList(body []byte) []PickupStatus {
	var rows []PickupStatus
	if err := json.Unmarshal(body, &rows); err == nil {
		return rows
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil
	}
	for _, key := range []string{"items", "data", "rows", "list"} {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &rows); err == nil {
			return rows
		}
	}
	return nil
}

type pickupAction struct {
	PickupID string `json:"pickup_id"`
	User     string `json:"user"`
}

// Ack marks a pickup as accepted by a porter
func (s *DispatchService) Ack(ctx context.Context, pickupID, user string) error {
	if strings.TrimSpace(pickupID) == "" {
		return apperrors.ErrMissingPickupID
	}
	return s.postJSON(ctx, "/runner/ack", pickupAction{PickupID: pickupID, User: user})
}

// Arrive marks a porter as arrived at the ward
func (s *DispatchService) Arrive(ctx context.Context, pickupID, user string) error {
	if strings.TrimSpace(pickupID) == "" {
		return apperrors.ErrMissingPickupID
	}
	return s.postJSON(ctx, "/runner/arrive", pickupAction{PickupID: pickupID, User: user})
}

// Finish closes a pickup on the runner board
func (s *DispatchService) Finish(ctx context.Context, pickupID, user string) error {
	if strings.TrimSpace(pickupID) == "" {
		return apperrors.ErrMissingPickupID
	}
	return s.postJSON(ctx, "/runner/finish", pickupAction{PickupID: pickupID, User: user})
}

// autoFinish closes pickups whose cases are documented completely. The
// sent-set keeps each pickup finished at most once per process lifetime;
// pickups the runner already shows as finished are dropped from it so a
// re-opened pickup can be finished again.
func (s *DispatchService) autoFinish(ctx context.Context, records []models.CaseRecord, statuses map[string]PickupStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	finished := 0
	for i := range records {
		record := &records[i]
		payload := s.BuildPayload(record)
		if payload == nil || !IsComplete(record) {
			continue
		}
		id := payload.PickupID
		if status, ok := statuses[id]; ok && status.Status == "finished" {
			delete(s.finishedSent, id)
			continue
		}
		if s.finishedSent[id] {
			continue
		}
		if err := s.Finish(ctx, id, systemUser); err != nil {
			logger.New().WithField("pickup_id", id).Warnf("Auto-finish failed: %v", err)
			continue
		}
		s.finishedSent[id] = true
		finished++
	}
	return finished
}

// prune drops sent-set entries that no longer belong to the day's pickups
func (s *DispatchService) prune(records []models.CaseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	valid := make(map[string]bool, len(records))
	for i := range records {
		if payload := s.BuildPayload(&records[i]); payload != nil {
			valid[payload.PickupID] = true
		}
	}
	if len(valid) == 0 {
		s.finishedSent = make(map[string]bool)
		return
	}
	for id := range s.finishedSent {
		if !valid[id] {
			delete(s.finishedSent, id)
		}
	}
}

// Cycle runs one synchronization pass for a day: prune stale bookkeeping,
// check runner health, push pickups, pull statuses, auto-finish.
func (s *DispatchService) Cycle(ctx context.Context, date string) error {
	if !s.enabled {
		return nil
	}

	records, err := s.repo.GetByDate(date)
	if err != nil {
		return fmt.Errorf("failed to load cases: %w", err)
	}
	s.prune(records)
	if len(records) == 0 {
		return nil
	}

	if !s.Health(ctx) {
		return apperrors.ErrRunnerUnavailable
	}

	result, err := s.PushDay(ctx, date)
	if err != nil {
		return err
	}
	if len(result.FailedHN) > 0 {
		logger.New().WithField("failed", result.FailedHN).Warn("Some pickups failed to push")
	}

	statuses, err := s.StatusMap(ctx, date)
	if err != nil {
		logger.New().Warnf("Failed to pull runner statuses: %v", err)
		statuses = nil
	}
	s.autoFinish(ctx, records, statuses)
	return nil
}

// Enabled reports whether runner synchronization is switched on
func (s *DispatchService) Enabled() bool {
	return s.enabled
}
