package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"or-caseflow-backend/internal/database/models"
	apperrors "or-caseflow-backend/internal/errors"
	"or-caseflow-backend/internal/logger"
	"or-caseflow-backend/internal/repository"
	"or-caseflow-backend/internal/roster"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardService handles business logic for the coordination board
type BoardService struct {
	repo      repository.CaseRecordRepositoryInterface
	roomRepo  repository.RoomRepositoryInterface
	roster    *roster.Roster
	validator *validator.Validate
}

// NewBoardService creates a new board service
func NewBoardService(repo repository.CaseRecordRepositoryInterface, roomRepo repository.RoomRepositoryInterface, rost *roster.Roster, validator *validator.Validate) *BoardService {
	return &BoardService{
		repo:      repo,
		roomRepo:  roomRepo,
		roster:    rost,
		validator: validator,
	}
}

// CreateCaseRequest represents the request to register a case
type CreateCaseRequest struct {
	Date          string   `json:"date" validate:"required,len=10"`
	HN            string   `json:"hn" validate:"required,max=20"`
	PatientName   string   `json:"patient_name" validate:"max=200"`
	Age           string   `json:"age" validate:"max=10"`
	Department    string   `json:"department" validate:"max=100"`
	Doctor        string   `json:"doctor" validate:"max=200"`
	Diagnoses     []string `json:"diagnoses,omitempty"`
	Operations    []string `json:"operations,omitempty"`
	Ward          string   `json:"ward" validate:"max=100"`
	ORRoom        string   `json:"or_room" validate:"max=10"`
	ScheduledTime string   `json:"scheduled_time" validate:"max=8"`
	Queue         int      `json:"queue" validate:"min=0,max=9"`
	Urgency       string   `json:"urgency,omitempty"`
	Period        string   `json:"period,omitempty"`
	CaseSize      string   `json:"case_size,omitempty"`
	Assist1       string   `json:"assist1" validate:"max=200"`
	Assist2       string   `json:"assist2" validate:"max=200"`
	Scrub         string   `json:"scrub" validate:"max=200"`
	Circulate     string   `json:"circulate" validate:"max=200"`
}

// UpdateCaseRequest represents the request to edit a case. Version carries
// the version the client last saw; a stale version is rejected.
type UpdateCaseRequest struct {
	Version       int       `json:"version" validate:"min=0"`
	Date          *string   `json:"date,omitempty"`
	HN            *string   `json:"hn,omitempty"`
	PatientName   *string   `json:"patient_name,omitempty"`
	Age           *string   `json:"age,omitempty"`
	Department    *string   `json:"department,omitempty"`
	Doctor        *string   `json:"doctor,omitempty"`
	Diagnoses     *[]string `json:"diagnoses,omitempty"`
	Operations    *[]string `json:"operations,omitempty"`
	Ward          *string   `json:"ward,omitempty"`
	ORRoom        *string   `json:"or_room,omitempty"`
	ScheduledTime *string   `json:"scheduled_time,omitempty"`
	Queue         *int      `json:"queue,omitempty"`
	Urgency       *string   `json:"urgency,omitempty"`
	Period        *string   `json:"period,omitempty"`
	CaseSize      *string   `json:"case_size,omitempty"`
	Assist1       *string   `json:"assist1,omitempty"`
	Assist2       *string   `json:"assist2,omitempty"`
	Scrub         *string   `json:"scrub,omitempty"`
	Circulate     *string   `json:"circulate,omitempty"`
	TimeStart     *string   `json:"time_start,omitempty"`
	TimeEnd       *string   `json:"time_end,omitempty"`
}

// CaseResponse represents a case as the board presents it
type CaseResponse struct {
	ID                 uuid.UUID        `json:"id"`
	CaseUID            string           `json:"case_uid"`
	UID                string           `json:"uid"`
	ORRoom             string           `json:"or_room"`
	EffectiveRoom      string           `json:"effective_room"`
	Date               string           `json:"date"`
	ScheduledTime      string           `json:"scheduled_time"`
	Queue              int              `json:"queue"`
	Urgency            models.Urgency   `json:"urgency"`
	Period             models.Period    `json:"period"`
	HN                 string           `json:"hn"`
	PatientName        string           `json:"patient_name"`
	Age                string           `json:"age"`
	Department         string           `json:"department"`
	Doctor             string           `json:"doctor"`
	Diagnoses          []string         `json:"diagnoses"`
	Operations         []string         `json:"operations"`
	Ward               string           `json:"ward"`
	CaseSize           models.CaseSize  `json:"case_size,omitempty"`
	Assist1            string           `json:"assist1"`
	Assist2            string           `json:"assist2"`
	Scrub              string           `json:"scrub"`
	Circulate          string           `json:"circulate"`
	TimeStart          string           `json:"time_start"`
	TimeEnd            string           `json:"time_end"`
	ReturningStartedAt string           `json:"returning_started_at,omitempty"`
	ReturnedToWardAt   string           `json:"returned_to_ward_at,omitempty"`
	State              models.CaseState `json:"state"`
	PostopCompleted    bool             `json:"postop_completed"`
	Version            int              `json:"version"`
}

// RoomCasesResponse is one room column of the board
type RoomCasesResponse struct {
	Room      string         `json:"room"`
	Owner     string         `json:"owner"`
	PlanLabel string         `json:"plan_label"`
	Cases     []CaseResponse `json:"cases"`
}

// BoardResponse is the full board of one day
type BoardResponse struct {
	Date  string              `json:"date"`
	Seq   int64               `json:"seq"`
	Total int                 `json:"total"`
	Rooms []RoomCasesResponse `json:"rooms"`
}

// ClearDayResponse reports a cleared day together with the removed records,
// so the caller can undo via RestoreDay.
type ClearDayResponse struct {
	Date     string              `json:"date"`
	Removed  int64               `json:"removed"`
	Snapshot []models.CaseRecord `json:"snapshot"`
}

// normalizeClock coerces assorted time inputs to "HH:MM", or "TF" when the
// value has no usable time.
func normalizeClock(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" || strings.EqualFold(text, "TF") {
		return roster.TimeFollows
	}
	parts := strings.Split(text, ":")
	if len(parts) >= 2 {
		hh, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		mm, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 == nil && err2 == nil && hh >= 0 && hh <= 23 && mm >= 0 && mm <= 59 {
			return fmt.Sprintf("%02d:%02d", hh, mm)
		}
	}
	return roster.TimeFollows
}

func parseDay(date string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDateFormat
	}
	return d, nil
}

func (s *BoardService) toResponse(record *models.CaseRecord, day time.Time) CaseResponse {
	texts := append(append([]string{}, record.Operations...), record.Diagnoses...)
	effective := s.roster.EffectiveRoom(day, record.ORRoom, record.Doctor, texts)
	return CaseResponse{
		ID:                 record.ID,
		CaseUID:            record.CaseUID,
		UID:                record.UID(),
		ORRoom:             record.ORRoom,
		EffectiveRoom:      effective,
		Date:               record.Date,
		ScheduledTime:      record.ScheduledTime,
		Queue:              record.Queue,
		Urgency:            record.Urgency,
		Period:             record.Period,
		HN:                 record.HN,
		PatientName:        record.PatientName,
		Age:                record.Age,
		Department:         record.Department,
		Doctor:             record.Doctor,
		Diagnoses:          record.Diagnoses,
		Operations:         record.Operations,
		Ward:               record.Ward,
		CaseSize:           record.CaseSize,
		Assist1:            record.Assist1,
		Assist2:            record.Assist2,
		Scrub:              record.Scrub,
		Circulate:          record.Circulate,
		TimeStart:          record.TimeStart,
		TimeEnd:            record.TimeEnd,
		ReturningStartedAt: record.ReturningStartedAt,
		ReturnedToWardAt:   record.ReturnedToWardAt,
		State:              record.State,
		PostopCompleted:    record.PostopCompleted,
		Version:            record.Version,
	}
}

// CreateCase registers a new case. When no room is given the roster resolves
// one from the doctor, date and time; an unresolvable case stays unassigned.
func (s *BoardService) CreateCase(req *CreateCaseRequest) (*CaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	scheduled := normalizeClock(req.ScheduledTime)
	doctor := s.roster.NormalizeDoctor(req.Doctor)

	urgency := models.UrgencyElective
	if req.Urgency != "" {
		urgency = models.Urgency(req.Urgency)
		if !urgency.IsValid() {
			return nil, apperrors.ErrInvalidUrgency
		}
	}
	period := models.PeriodInHours
	if req.Period != "" {
		period = models.Period(req.Period)
		if !period.IsValid() {
			return nil, apperrors.ErrInvalidPeriod
		}
	}
	var caseSize models.CaseSize
	if req.CaseSize != "" {
		caseSize = models.CaseSize(req.CaseSize)
		if !caseSize.IsValid() {
			return nil, apperrors.ErrInvalidState
		}
	}

	room := ""
	if strings.TrimSpace(req.ORRoom) != "" {
		normalized, ok := models.NormalizeRoomName(req.ORRoom)
		if !ok {
			return nil, apperrors.ErrInvalidRoomName
		}
		room = normalized
	} else {
		room = s.roster.PickRoom(day, scheduled, doctor)
	}

	record := &models.CaseRecord{
		ORRoom:        room,
		Date:          req.Date,
		ScheduledTime: scheduled,
		Queue:         req.Queue,
		Urgency:       urgency,
		Period:        period,
		HN:            strings.TrimSpace(req.HN),
		PatientName:   req.PatientName,
		Age:           req.Age,
		Department:    req.Department,
		Doctor:        doctor,
		Diagnoses:     models.StringList(req.Diagnoses),
		Operations:    models.StringList(req.Operations),
		Ward:          req.Ward,
		CaseSize:      caseSize,
		Assist1:       req.Assist1,
		Assist2:       req.Assist2,
		Scrub:         req.Scrub,
		Circulate:     req.Circulate,
		State:         models.CaseStateScheduled,
	}

	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	resp := s.toResponse(record, day)
	return &resp, nil
}

// UpdateCase edits a case. The request carries the version the client last
// saw; when the stored record moved on the update is rejected with a
// conflict so the client can reload.
func (s *BoardService) UpdateCase(id uuid.UUID, req *UpdateCaseRequest) (*CaseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}
	if record.Version != req.Version {
		return nil, apperrors.ErrVersionConflict
	}

	if req.Date != nil {
		if _, err := parseDay(*req.Date); err != nil {
			return nil, err
		}
		record.Date = *req.Date
	}
	if req.HN != nil {
		record.HN = strings.TrimSpace(*req.HN)
	}
	if req.PatientName != nil {
		record.PatientName = *req.PatientName
	}
	if req.Age != nil {
		record.Age = *req.Age
	}
	if req.Department != nil {
		record.Department = *req.Department
	}
	if req.Doctor != nil {
		record.Doctor = s.roster.NormalizeDoctor(*req.Doctor)
	}
	if req.Diagnoses != nil {
		record.Diagnoses = models.StringList(*req.Diagnoses)
	}
	if req.Operations != nil {
		record.Operations = models.StringList(*req.Operations)
	}
	if req.Ward != nil {
		record.Ward = *req.Ward
	}
	if req.ORRoom != nil {
		if strings.TrimSpace(*req.ORRoom) == "" {
			record.ORRoom = ""
		} else {
			normalized, ok := models.NormalizeRoomName(*req.ORRoom)
			if !ok {
				return nil, apperrors.ErrInvalidRoomName
			}
			record.ORRoom = normalized
		}
	}
	if req.ScheduledTime != nil {
		record.ScheduledTime = normalizeClock(*req.ScheduledTime)
	}
	if req.Queue != nil {
		if *req.Queue < 0 || *req.Queue > 9 {
			return nil, apperrors.NewValidationError("queue", "must be between 0 and 9")
		}
		record.Queue = *req.Queue
	}
	if req.Urgency != nil {
		urgency := models.Urgency(*req.Urgency)
		if !urgency.IsValid() {
			return nil, apperrors.ErrInvalidUrgency
		}
		record.Urgency = urgency
	}
	if req.Period != nil {
		period := models.Period(*req.Period)
		if !period.IsValid() {
			return nil, apperrors.ErrInvalidPeriod
		}
		record.Period = period
	}
	if req.CaseSize != nil {
		caseSize := models.CaseSize(*req.CaseSize)
		if *req.CaseSize != "" && !caseSize.IsValid() {
			return nil, apperrors.NewValidationError("case_size", "must be minor or major")
		}
		record.CaseSize = caseSize
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

	expected := record.Version
	record.Version = expected + 1
	if err := s.repo.Update(record, expected); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, err
	}

	day, _ := record.ParseDate()
	resp := s.toResponse(record, day)
	return &resp, nil
}

// DeleteCase removes a case from the board
func (s *BoardService) DeleteCase(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCaseNotFound
		}
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}

// GetCase retrieves one case by ID
func (s *BoardService) GetCase(id uuid.UUID) (*CaseResponse, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}
	day, _ := record.ParseDate()
	resp := s.toResponse(record, day)
	return &resp, nil
}

// ListBoard builds the room-grouped board view of one day. Cases are bucketed
// by their effective room (owner overrides applied), rooms keep their board
// order, and each column is sorted into queue/time order.
func (s *BoardService) ListBoard(date string) (*BoardResponse, error) {
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load cases: %w", err)
	}
	configured, err := s.roomRepo.GetNames()
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	buckets := make(map[string][]models.CaseRecord)
	for i := range records {
		record := &records[i]
		texts := append(append([]string{}, record.Operations...), record.Diagnoses...)
		room := s.roster.EffectiveRoom(day, record.ORRoom, record.Doctor, texts)

		// An owner override moves the case for real: the stored room is
		// corrected in place so every consumer sees the same assignment.
		// A concurrent edit wins; the next listing corrects again.
		if room != "" && room != record.ORRoom {
			expected := record.Version
			record.ORRoom = room
			record.Version = expected + 1
			if err := s.repo.Update(record, expected); err != nil {
				if !errors.Is(err, apperrors.ErrVersionConflict) {
					return nil, fmt.Errorf("failed to correct room for case %s: %w", record.CaseUID, err)
				}
				logger.New().WithField("case_uid", record.CaseUID).
					Warn("Room correction lost to concurrent edit, will retry next listing")
			}
		}

		if room == "" {
			room = "-"
		}
		buckets[room] = append(buckets[room], *record)
	}

	seq, err := s.repo.Seq()
	if err != nil {
		return nil, fmt.Errorf("failed to read board counter: %w", err)
	}

	roomNames := make([]string, 0, len(buckets)+len(configured))
	seen := make(map[string]bool)
	for _, name := range configured {
		roomNames = append(roomNames, name)
		seen[name] = true
	}
	for name := range buckets {
		if !seen[name] {
			roomNames = append(roomNames, name)
		}
	}
	sort.SliceStable(roomNames, func(i, j int) bool {
		ci, ni := roomSortKey(roomNames[i], configured)
		cj, nj := roomSortKey(roomNames[j], configured)
		if ci != cj {
			return ci < cj
		}
		if ni != nj {
			return ni < nj
		}
		return roomNames[i] < roomNames[j]
	})

	rooms := make([]RoomCasesResponse, 0, len(roomNames))
	for _, name := range roomNames {
		ordered := OrderCases(buckets[name])
		cases := make([]CaseResponse, 0, len(ordered))
		fallbackDoctor := ""
		for i := range ordered {
			if fallbackDoctor == "" {
				fallbackDoctor = ordered[i].Doctor
			}
			cases = append(cases, s.toResponse(&ordered[i], day))
		}
		owner := "-"
		planLabel := ""
		if name != "-" {
			owner = s.roster.ResolveOwner(name, day, fallbackDoctor)
			planLabel = s.roster.PlanLabel(day, name)
		}
		rooms = append(rooms, RoomCasesResponse{
			Room:      name,
			Owner:     owner,
			PlanLabel: planLabel,
			Cases:     cases,
		})
	}

	return &BoardResponse{
		Date:  date,
		Seq:   seq,
		Total: len(records),
		Rooms: rooms,
	}, nil
}

// ClearDay removes every case of one day and hands back the removed records
// as an undo snapshot.
func (s *BoardService) ClearDay(date string) (*ClearDayResponse, error) {
	if _, err := parseDay(date); err != nil {
		return nil, err
	}
	snapshot, err := s.repo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot day: %w", err)
	}
	removed, err := s.repo.DeleteByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to clear day: %w", err)
	}
	return &ClearDayResponse{Date: date, Removed: removed, Snapshot: snapshot}, nil
}

// RestoreDay puts a previously cleared day back from its snapshot
func (s *BoardService) RestoreDay(date string, snapshot []models.CaseRecord) error {
	if _, err := parseDay(date); err != nil {
		return err
	}
	if len(snapshot) == 0 {
		return apperrors.ErrEmptySnapshot
	}
	if err := s.repo.ReplaceDate(date, snapshot); err != nil {
		return fmt.Errorf("failed to restore day: %w", err)
	}
	return nil
}

// ListRooms returns the configured room names in board order
func (s *BoardService) ListRooms() ([]string, error) {
	return s.roomRepo.GetNames()
}

// ReplaceRooms swaps the room list and returns what was stored after
// normalization.
func (s *BoardService) ReplaceRooms(names []string) ([]string, error) {
	return s.roomRepo.Replace(names)
}

// Seq reads the board change counter for cheap client polling
func (s *BoardService) Seq() (int64, error) {
	return s.repo.Seq()
}

// NextQueuePosition returns the next queue slot for a new case that shares a
// room, doctor and date with existing cases.
func (s *BoardService) NextQueuePosition(date, room, doctor string) (int, error) {
	if _, err := parseDay(date); err != nil {
		return 0, err
	}
	records, err := s.repo.GetByDate(date)
	if err != nil {
		return 0, fmt.Errorf("failed to load cases: %w", err)
	}
	normalized := s.roster.NormalizeDoctor(doctor)
	count := 0
	for _, record := range records {
		if record.ORRoom == room && s.roster.NormalizeDoctor(record.Doctor) == normalized {
			count++
		}
	}
	return count + 1, nil
}
