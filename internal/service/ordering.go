package service

import (
	"sort"
	"strconv"
	"strings"

	"or-caseflow-backend/internal/database/models"
)

// timeSortKey converts "HH:MM" to a sortable triple. "TF" and unparsable
// values sort after every concrete time.
func timeSortKey(hhmm string) (int, int, int) {
	if hhmm == "" || hhmm == "TF" {
		return 1, 99, 99
	}
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 1, 99, 99
	}
	hh, err1 := strconv.Atoi(parts[0])
	mm, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 1, 99, 99
	}
	return 0, hh, mm
}

// caseLess is the board ordering: cases with an explicit queue number come
// first in queue order, the rest follow by scheduled time with flexible-time
// cases last, ties broken by patient HN.
func caseLess(a, b *models.CaseRecord) bool {
	aq, bq := 1, 1
	aqv, bqv := 0, 0
	if a.Queue > 0 {
		aq, aqv = 0, a.Queue
	}
	if b.Queue > 0 {
		bq, bqv = 0, b.Queue
	}
	if aq != bq {
		return aq < bq
	}
	if aqv != bqv {
		return aqv < bqv
	}

	atf, ah, am := timeSortKey(a.ScheduledTime)
	btf, bh, bm := timeSortKey(b.ScheduledTime)
	if atf != btf {
		return atf < btf
	}
	if ah != bh {
		return ah < bh
	}
	if am != bm {
		return am < bm
	}
	return a.HN < b.HN
}

// OrderCases sorts a copy of the records into board order
func OrderCases(records []models.CaseRecord) []models.CaseRecord {
	out := make([]models.CaseRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return caseLess(&out[i], &out[j])
	})
	return out
}

// roomSortKey orders room buckets: configured rooms keep their board
// position, unknown rooms follow by their number, the unassigned bucket last.
func roomSortKey(room string, configured []string) (int, int) {
	for i, name := range configured {
		if name == room {
			return 0, i
		}
	}
	if strings.TrimSpace(room) == "-" || room == "" {
		return 2, 999
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, room)
	num := 999
	if digits != "" {
		if n, err := strconv.Atoi(digits); err == nil {
			num = n
		}
	}
	return 1, num
}
