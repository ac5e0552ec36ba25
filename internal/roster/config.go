package roster

import (
	"os"
	"time"

	apperrors "or-caseflow-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

// Rule assigns one or more doctors (or a service-group token, or the CLOSED
// marker) to a room for part of a day on selected weeks of the month.
type Rule struct {
	Doctors []string `yaml:"doctors"`
	When    string   `yaml:"when"`  // ALLDAY, AM or PM
	Weeks   []int    `yaml:"weeks"` // 1-based week of month; empty means every week
}

// RoomPlan is the ordered rule list for one room on one weekday
type RoomPlan struct {
	Room  string `yaml:"room"`
	Rules []Rule `yaml:"rules"`
}

// OwnerOverride forces a room to a fixed owner on one weekday, regardless of
// what the weekly plan says.
type OwnerOverride struct {
	Weekday time.Weekday `yaml:"weekday"`
	Room    string       `yaml:"room"`
	Doctor  string       `yaml:"doctor"`
}

// Config is the full assignment roster: the weekly plan, the service groups,
// spelling aliases and the per-weekday owner overrides.
type Config struct {
	Weekdays    map[time.Weekday][]RoomPlan `yaml:"weekdays"`
	Groups      map[string][]string         `yaml:"groups"`
	GroupLabels map[string]string           `yaml:"group_labels"`
	Aliases     map[string]string           `yaml:"aliases"`
	Overrides   []OwnerOverride             `yaml:"overrides"`
}

// LoadFile reads a roster configuration from a YAML file. A missing file is
// not an error: the embedded default roster is returned instead.
func LoadFile(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(Default()), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.ErrRosterFileInvalid
	}
	if len(cfg.Weekdays) == 0 {
		return nil, apperrors.ErrRosterFileInvalid
	}
	return New(cfg), nil
}
