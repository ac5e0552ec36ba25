// Package roster resolves which operating room a case belongs to, based on
// the hospital's weekly assignment plan, the doctor service groups and the
// per-weekday owner overrides.
package roster

import (
	"strings"
	"time"
)

// Rule time-of-day markers
const (
	WhenAllDay    = "ALLDAY"
	WhenMorning   = "AM"
	WhenAfternoon = "PM"
)

// ClosedToken marks a room as closed in a plan rule. "CLOSE" is accepted too.
const ClosedToken = "CLOSED"

// Period classifies a scheduled time for plan matching
type Period string

const (
	PeriodAny       Period = "ANY"
	PeriodMorning   Period = "AM"
	PeriodAfternoon Period = "PM"
)

// TimeFollows is the scheduled-time marker for "to follow" cases with no
// fixed start time.
const TimeFollows = "TF"

// Roster is an immutable view over a Config with precomputed lookups
type Roster struct {
	cfg          Config
	aliases      map[string]string
	groupMembers map[string]map[string]bool
}

// New builds a Roster from a Config
func New(cfg Config) *Roster {
	r := &Roster{
		cfg:          cfg,
		aliases:      make(map[string]string, len(cfg.Aliases)),
		groupMembers: make(map[string]map[string]bool, len(cfg.Groups)),
	}
	for alias, canonical := range cfg.Aliases {
		r.aliases[collapseSpaces(alias)] = collapseSpaces(canonical)
	}
	for token, members := range cfg.Groups {
		set := make(map[string]bool, len(members))
		for _, m := range members {
			set[r.NormalizeDoctor(m)] = true
		}
		r.groupMembers[token] = set
	}
	return r
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isClosed(token string) bool {
	return token == ClosedToken || token == "CLOSE"
}

// NormalizeDoctor collapses whitespace and maps known spelling variants to
// the canonical doctor name.
func (r *Roster) NormalizeDoctor(name string) string {
	s := collapseSpaces(name)
	if canonical, ok := r.aliases[s]; ok {
		return canonical
	}
	return s
}

// WeekOfMonth returns the 1-based week of the month for a date, with weeks
// starting on Monday and week 1 being the week containing the 1st.
func WeekOfMonth(d time.Time) int {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	firstWeekday := (int(first.Weekday()) + 6) % 7 // Monday = 0
	return ((d.Day() + firstWeekday - 1) / 7) + 1
}

// PeriodOf classifies a scheduled time string. "TF" and anything unparsable
// match both halves of the day.
func PeriodOf(timeStr string) Period {
	if timeStr == TimeFollows {
		return PeriodAny
	}
	hh, _, ok := strings.Cut(timeStr, ":")
	if !ok {
		return PeriodAny
	}
	hour := 0
	for _, c := range hh {
		if c < '0' || c > '9' {
			return PeriodAny
		}
		hour = hour*10 + int(c-'0')
	}
	if hh == "" {
		return PeriodAny
	}
	if hour < 12 {
		return PeriodMorning
	}
	return PeriodAfternoon
}

func (r *Roster) isGroup(token string) bool {
	_, ok := r.cfg.Groups[token]
	return ok
}

// matchDoctor reports whether a plan token (a name or a group) covers the
// given doctor. Closed markers never match.
func (r *Roster) matchDoctor(token, doctor string) bool {
	if token == "" || isClosed(token) {
		return false
	}
	if r.isGroup(token) {
		return r.groupMembers[token][r.NormalizeDoctor(doctor)]
	}
	return r.NormalizeDoctor(token) == r.NormalizeDoctor(doctor)
}

// ServiceToken returns the group token of the doctor's home service, or ""
func (r *Roster) ServiceToken(doctor string) string {
	normalized := r.NormalizeDoctor(doctor)
	for _, token := range orderedGroupTokens {
		if r.groupMembers[token][normalized] {
			return token
		}
	}
	// tokens outside the well-known set
	for token, members := range r.groupMembers {
		if members[normalized] {
			return token
		}
	}
	return ""
}

// orderedGroupTokens keeps service-token lookup deterministic
var orderedGroupTokens = []string{
	GroupSurgery, GroupOrthopedics, GroupUrology, GroupENT,
	GroupObGyn, GroupOphthalmology, GroupMaxillofacial,
}

func ruleWeeks(rule Rule) []int {
	if len(rule.Weeks) == 0 {
		return []int{1, 2, 3, 4, 5}
	}
	return rule.Weeks
}

func ruleWhen(rule Rule) string {
	if rule.When == "" {
		return WhenAllDay
	}
	return strings.ToUpper(rule.When)
}

func weekIn(week int, weeks []int) bool {
	for _, w := range weeks {
		if w == week {
			return true
		}
	}
	return false
}

func ruleClosed(rule Rule) bool {
	for _, tok := range rule.Doctors {
		if isClosed(tok) {
			return true
		}
	}
	return false
}

// ruleMatchesService reports whether a rule names the service group itself
// or any doctor belonging to it.
func (r *Roster) ruleMatchesService(rule Rule, serviceToken string) bool {
	if serviceToken == "" {
		return false
	}
	members := r.groupMembers[serviceToken]
	for _, token := range rule.Doctors {
		if token == "" || isClosed(token) {
			continue
		}
		if token == serviceToken {
			return true
		}
		if members[r.NormalizeDoctor(token)] {
			return true
		}
	}
	return false
}

// PickRoom resolves the room for a doctor on a given date and scheduled time.
// Matching relaxes in stages: exact week and period, then week only for
// flexible-time cases, then any explicit mention of the doctor, and finally
// the doctor's home service. Closed rooms never match. Returns "" when the
// plan has no answer.
func (r *Roster) PickRoom(date time.Time, timeStr, doctor string) string {
	if doctor == "" {
		return ""
	}
	plans := r.cfg.Weekdays[date.Weekday()]
	if len(plans) == 0 {
		return ""
	}

	week := WeekOfMonth(date)
	period := PeriodOf(timeStr)

	for _, plan := range plans {
		for _, rule := range plan.Rules {
			when := ruleWhen(rule)
			if !weekIn(week, ruleWeeks(rule)) {
				continue
			}
			if when != WhenAllDay && period != PeriodAny && string(period) != when {
				continue
			}
			for _, tok := range rule.Doctors {
				if r.matchDoctor(tok, doctor) {
					return plan.Room
				}
			}
		}
	}

	if period == PeriodAny {
		for _, plan := range plans {
			for _, rule := range plan.Rules {
				if !weekIn(week, ruleWeeks(rule)) || ruleClosed(rule) {
					continue
				}
				for _, tok := range rule.Doctors {
					if r.matchDoctor(tok, doctor) {
						return plan.Room
					}
				}
			}
		}
	}

	for _, plan := range plans {
		for _, rule := range plan.Rules {
			if ruleClosed(rule) {
				continue
			}
			for _, tok := range rule.Doctors {
				if r.isGroup(tok) {
					continue
				}
				if r.matchDoctor(tok, doctor) {
					return plan.Room
				}
			}
		}
	}

	serviceToken := r.ServiceToken(doctor)
	if serviceToken != "" {
		for _, plan := range plans {
			for _, rule := range plan.Rules {
				when := ruleWhen(rule)
				if !weekIn(week, ruleWeeks(rule)) {
					continue
				}
				if when != WhenAllDay && period != PeriodAny && string(period) != when {
					continue
				}
				if r.ruleMatchesService(rule, serviceToken) {
					return plan.Room
				}
			}
		}
		for _, plan := range plans {
			for _, rule := range plan.Rules {
				if r.ruleMatchesService(rule, serviceToken) {
					return plan.Room
				}
			}
		}
	}

	return ""
}

// ResolveOwner returns the display owner of a room on a date. An owner
// override for that weekday wins over the fallback; otherwise the normalized
// fallback name is used, or "-" when there is none.
func (r *Roster) ResolveOwner(room string, date time.Time, fallback string) string {
	roomKey := strings.TrimSpace(room)
	if roomKey != "" {
		for _, ov := range r.cfg.Overrides {
			if ov.Weekday == date.Weekday() && ov.Room == roomKey {
				return r.NormalizeDoctor(ov.Doctor)
			}
		}
	}
	if name := r.NormalizeDoctor(fallback); name != "" {
		return name
	}
	return "-"
}

// ownerVariants collects the canonical name plus every alias mapping to it
func (r *Roster) ownerVariants(canonical string) []string {
	target := collapseSpaces(canonical)
	variants := []string{target}
	for alias, mapped := range r.cfg.Aliases {
		if collapseSpaces(mapped) == target {
			variants = append(variants, alias)
		}
	}
	return variants
}

// InferDoctor returns the normalized doctor name, falling back to scanning
// free text (operations, diagnoses) for mentions of an override owner.
func (r *Roster) InferDoctor(doctor string, texts []string) string {
	if who := r.NormalizeDoctor(doctor); who != "" {
		return who
	}
	blob := strings.Join(texts, " ")
	if blob == "" {
		return ""
	}
	for _, ov := range r.cfg.Overrides {
		for _, variant := range r.ownerVariants(ov.Doctor) {
			if variant != "" && strings.Contains(blob, variant) {
				return r.NormalizeDoctor(ov.Doctor)
			}
		}
	}
	return ""
}

// EffectiveRoom applies the owner overrides to a case: when the case date has
// an override and the case's doctor is that owner, the case moves to the
// owner's room. Otherwise the stored room stands.
func (r *Roster) EffectiveRoom(date time.Time, room, doctor string, texts []string) string {
	who := r.InferDoctor(doctor, texts)
	if who != "" {
		for _, ov := range r.cfg.Overrides {
			if ov.Weekday == date.Weekday() && r.NormalizeDoctor(ov.Doctor) == who {
				return ov.Room
			}
		}
	}
	return room
}

func (r *Roster) describeToken(token string) string {
	if token == "" {
		return ""
	}
	if label, ok := r.cfg.GroupLabels[token]; ok {
		return label
	}
	if members, ok := r.cfg.Groups[token]; ok && len(members) > 0 {
		return members[0]
	}
	return r.NormalizeDoctor(token)
}

// PlanLabel renders the day's plan for a room as a human-readable header,
// e.g. "เช้า: นพ.ก • บ่าย: นพ.ข". Empty when the plan has nothing for the room.
func (r *Roster) PlanLabel(date time.Time, room string) string {
	if room == "" || room == "-" {
		return ""
	}
	var rules []Rule
	for _, plan := range r.cfg.Weekdays[date.Weekday()] {
		if plan.Room == room {
			rules = plan.Rules
			break
		}
	}
	if len(rules) == 0 {
		return ""
	}

	week := WeekOfMonth(date)
	filtered := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if weekIn(week, ruleWeeks(rule)) {
			filtered = append(filtered, rule)
		}
	}
	if len(filtered) == 0 {
		filtered = rules
	}

	labels := make([]string, 0, len(filtered))
	for _, rule := range filtered {
		parts := make([]string, 0, len(rule.Doctors))
		for _, tok := range rule.Doctors {
			if desc := r.describeToken(tok); desc != "" {
				parts = append(parts, desc)
			}
		}
		label := strings.Join(parts, ", ")
		switch ruleWhen(rule) {
		case WhenMorning:
			if label != "" {
				label = "เช้า: " + label
			} else {
				label = "เช้า"
			}
		case WhenAfternoon:
			if label != "" {
				label = "บ่าย: " + label
			} else {
				label = "บ่าย"
			}
		}
		if label != "" {
			labels = append(labels, label)
		}
	}
	return strings.Join(labels, " • ")
}

// Rooms lists every room that appears in the weekly plan, in plan order per
// weekday, deduplicated.
func (r *Roster) Rooms() []string {
	seen := make(map[string]bool)
	out := []string{}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		for _, plan := range r.cfg.Weekdays[wd] {
			if !seen[plan.Room] {
				seen[plan.Room] = true
				out = append(out, plan.Room)
			}
		}
	}
	return out
}
