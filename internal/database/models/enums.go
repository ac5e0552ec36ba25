package models

// CaseState defines the lifecycle states of a surgical case
type CaseState string

const (
	CaseStateScheduled        CaseState = "scheduled"
	CaseStateOperationStarted CaseState = "operation_started"
	CaseStateOperationEnded   CaseState = "operation_ended"
	CaseStateReturning        CaseState = "returning_to_ward"
	CaseStateReturned         CaseState = "returned_to_ward"
	CaseStatePostopPending    CaseState = "postop_pending"
)

// caseStateRank orders states for backward-transition checks. Returning,
// returned and postop_pending share the post-operative tier.
var caseStateRank = map[CaseState]int{
	CaseStateScheduled:        0,
	CaseStateOperationStarted: 1,
	CaseStateOperationEnded:   2,
	CaseStateReturning:        3,
	CaseStatePostopPending:    3,
	CaseStateReturned:         4,
}

// IsValid checks if the CaseState is valid
func (s CaseState) IsValid() bool {
	switch s {
	case CaseStateScheduled, CaseStateOperationStarted, CaseStateOperationEnded,
		CaseStateReturning, CaseStateReturned, CaseStatePostopPending:
		return true
	}
	return false
}

// Rank returns the ordering tier of the state. Unknown states rank lowest.
func (s CaseState) Rank() int {
	return caseStateRank[s]
}

// Urgency defines whether a case was booked in advance or added as an emergency
type Urgency string

const (
	UrgencyElective  Urgency = "elective"
	UrgencyEmergency Urgency = "emergency"
)

// IsValid checks if the Urgency is valid
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyElective, UrgencyEmergency:
		return true
	}
	return false
}

// Period defines whether a case falls inside or outside regular working hours
type Period string

const (
	PeriodInHours  Period = "in"
	PeriodOffHours Period = "off"
)

// IsValid checks if the Period is valid
func (p Period) IsValid() bool {
	switch p {
	case PeriodInHours, PeriodOffHours:
		return true
	}
	return false
}

// CaseSize defines the magnitude classification of a procedure
type CaseSize string

const (
	CaseSizeMinor CaseSize = "minor"
	CaseSizeMajor CaseSize = "major"
)

// IsValid checks if the CaseSize is valid
func (c CaseSize) IsValid() bool {
	switch c {
	case CaseSizeMinor, CaseSizeMajor:
		return true
	}
	return false
}
