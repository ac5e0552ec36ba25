package roster

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

// 2025-09-01 is a Monday, 2025-09-03 a Wednesday, 2025-09-04 a Thursday.

func TestNormalizeDoctor(t *testing.T) {
	r := New(Default())

	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "นพ.สุริยา คุณาชน", r.NormalizeDoctor("  นพ.สุริยา   คุณาชน "))
	})

	t.Run("resolves aliases", func(t *testing.T) {
		assert.Equal(t, "นพ.สุริยา คุณาชน", r.NormalizeDoctor("นพ.สุริยา"))
		assert.Equal(t, "นพ.สุริยา คุณาชน", r.NormalizeDoctor("นพ.สุริยะ คุณาชน"))
	})

	t.Run("unknown names pass through", func(t *testing.T) {
		assert.Equal(t, "นพ.ไม่มีจริง", r.NormalizeDoctor("นพ.ไม่มีจริง"))
	})
}

func TestWeekOfMonth(t *testing.T) {
	assert.Equal(t, 1, WeekOfMonth(day("2025-09-01")))
	assert.Equal(t, 2, WeekOfMonth(day("2025-09-08")))
	assert.Equal(t, 5, WeekOfMonth(day("2025-09-29")))
	// October 2025 starts on a Wednesday
	assert.Equal(t, 1, WeekOfMonth(day("2025-10-01")))
	assert.Equal(t, 2, WeekOfMonth(day("2025-10-06")))
}

func TestPeriodOf(t *testing.T) {
	assert.Equal(t, PeriodAny, PeriodOf("TF"))
	assert.Equal(t, PeriodAny, PeriodOf(""))
	assert.Equal(t, PeriodAny, PeriodOf("later"))
	assert.Equal(t, PeriodMorning, PeriodOf("08:00"))
	assert.Equal(t, PeriodMorning, PeriodOf("11:59"))
	assert.Equal(t, PeriodAfternoon, PeriodOf("12:00"))
	assert.Equal(t, PeriodAfternoon, PeriodOf("13:30"))
}

func TestPickRoom(t *testing.T) {
	r := New(Default())

	t.Run("explicit week match", func(t *testing.T) {
		// Monday week 1: OR1 belongs to the first surgeon of the rotation
		assert.Equal(t, "OR1", r.PickRoom(day("2025-09-01"), "09:00", "นพ.สุริยา คุณาชน"))
		// Monday week 2: same room, next surgeon in the rotation
		assert.Equal(t, "OR1", r.PickRoom(day("2025-09-08"), "09:00", "พญ.รัฐพร ตั้งเพียร"))
	})

	t.Run("alias resolves before matching", func(t *testing.T) {
		assert.Equal(t, "OR1", r.PickRoom(day("2025-09-01"), "09:00", "นพ.สุริยา"))
	})

	t.Run("group token matches members", func(t *testing.T) {
		assert.Equal(t, "OR5", r.PickRoom(day("2025-09-01"), "10:00", "พญ.ขวัญตา ทุนประเทือง"))
	})

	t.Run("flexible time matches either half of the day", func(t *testing.T) {
		// Tuesday OR3 is split AM/PM; TF cases match the AM rule too
		assert.Equal(t, "OR3", r.PickRoom(day("2025-09-02"), "TF", "พญ.สุภาภรณ์ พิณพาทย์"))
	})

	t.Run("explicit name wins even outside its period", func(t *testing.T) {
		// Tuesday OR3 AM owner, asked for an afternoon slot: falls through to
		// the explicit-name stage
		assert.Equal(t, "OR3", r.PickRoom(day("2025-09-02"), "14:00", "พญ.สุภาภรณ์ พิณพาทย์"))
	})

	t.Run("service fallback picks a room staffed by the home group", func(t *testing.T) {
		// Thursday has no rule naming this orthopedist, but OR2 is orthopedics
		assert.Equal(t, "OR2", r.PickRoom(day("2025-09-04"), "10:00", "นพ.อภิชาติ ลักษณะ"))
	})

	t.Run("no match yields empty", func(t *testing.T) {
		// The urology service has no Monday rooms
		assert.Equal(t, "", r.PickRoom(day("2025-09-01"), "09:00", "พญ.สายฝน บรรณจิตร์"))
		assert.Equal(t, "", r.PickRoom(day("2025-09-01"), "09:00", ""))
	})

	t.Run("closed rooms never match", func(t *testing.T) {
		// Wednesday OR3 is closed; nothing may resolve there
		for _, doc := range []string{"นพ.สุริยา คุณาชน", "พญ.รัฐพร ตั้งเพียร", "นพ.วิษณุ ผูกพันธ์"} {
			assert.NotEqual(t, "OR3", r.PickRoom(day("2025-09-03"), "09:00", doc))
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first := r.PickRoom(day("2025-09-04"), "10:00", "นพ.อภิชาติ ลักษณะ")
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, r.PickRoom(day("2025-09-04"), "10:00", "นพ.อภิชาติ ลักษณะ"))
		}
	})
}

func TestResolveOwner(t *testing.T) {
	r := New(Default())

	t.Run("wednesday override wins", func(t *testing.T) {
		assert.Equal(t, "นพ.สุริยา คุณาชน", r.ResolveOwner("OR1", day("2025-09-03"), "นพ.ใครก็ได้"))
		assert.Equal(t, "พญ.รัฐพร ตั้งเพียร", r.ResolveOwner("OR6", day("2025-09-03"), ""))
	})

	t.Run("fallback on other days", func(t *testing.T) {
		assert.Equal(t, "นพ.วิษณุ ผูกพันธ์", r.ResolveOwner("OR1", day("2025-09-01"), "นพ.วิษณุ"))
	})

	t.Run("dash when nothing known", func(t *testing.T) {
		assert.Equal(t, "-", r.ResolveOwner("OR2", day("2025-09-01"), ""))
	})
}

func TestInferDoctorAndEffectiveRoom(t *testing.T) {
	r := New(Default())

	t.Run("doctor field preferred", func(t *testing.T) {
		assert.Equal(t, "พญ.รัฐพร ตั้งเพียร", r.InferDoctor("พญ.รัฐพร", nil))
	})

	t.Run("owner mention in free text", func(t *testing.T) {
		texts := []string{"Appendectomy", "consult นพ.สุริยา คุณาชน"}
		assert.Equal(t, "นพ.สุริยา คุณาชน", r.InferDoctor("", texts))
	})

	t.Run("alias mention in free text", func(t *testing.T) {
		texts := []string{"follow-up พญ.รัฐพร"}
		assert.Equal(t, "พญ.รัฐพร ตั้งเพียร", r.InferDoctor("", texts))
	})

	t.Run("no mention yields empty", func(t *testing.T) {
		assert.Equal(t, "", r.InferDoctor("", []string{"hernia repair"}))
	})

	t.Run("override doctor with irregular spacing still matches", func(t *testing.T) {
		cfg := Default()
		cfg.Overrides = []OwnerOverride{
			{Weekday: time.Wednesday, Room: "OR1", Doctor: "นพ.สุริยา   คุณาชน"},
		}
		sloppy := New(cfg)
		texts := []string{"consult นพ.สุริยา คุณาชน"}
		assert.Equal(t, "นพ.สุริยา คุณาชน", sloppy.InferDoctor("", texts))
	})

	t.Run("override moves the case on its weekday", func(t *testing.T) {
		got := r.EffectiveRoom(day("2025-09-03"), "OR2", "พญ.รัฐพร ตั้งเพียร", nil)
		assert.Equal(t, "OR6", got)
	})

	t.Run("other weekdays keep the stored room", func(t *testing.T) {
		got := r.EffectiveRoom(day("2025-09-01"), "OR2", "พญ.รัฐพร ตั้งเพียร", nil)
		assert.Equal(t, "OR2", got)
	})
}

func TestPlanLabel(t *testing.T) {
	r := New(Default())

	t.Run("split day", func(t *testing.T) {
		got := r.PlanLabel(day("2025-09-02"), "OR3")
		assert.Equal(t, "เช้า: พญ.สุภาภรณ์ พิณพาทย์ • บ่าย: ทพญ.อรุณนภา คิสารัง", got)
	})

	t.Run("group room", func(t *testing.T) {
		assert.Equal(t, "ทีมสูติ-นรีเวช", r.PlanLabel(day("2025-09-01"), "OR5"))
	})

	t.Run("closed room", func(t *testing.T) {
		assert.Equal(t, "ปิดห้อง", r.PlanLabel(day("2025-09-03"), "OR3"))
	})

	t.Run("week-dependent rotation", func(t *testing.T) {
		assert.Equal(t, "นพ.สุริยา คุณาชน", r.PlanLabel(day("2025-09-01"), "OR1"))
		assert.Equal(t, "พญ.รัฐพร ตั้งเพียร", r.PlanLabel(day("2025-09-08"), "OR1"))
	})

	t.Run("unknown room", func(t *testing.T) {
		assert.Equal(t, "", r.PlanLabel(day("2025-09-01"), "OR9"))
		assert.Equal(t, "", r.PlanLabel(day("2025-09-01"), "-"))
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		r, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "OR1", r.PickRoom(day("2025-09-01"), "09:00", "นพ.สุริยา คุณาชน"))
	})

	t.Run("custom file overrides the plan", func(t *testing.T) {
		content := `
weekdays:
  1:
    - room: OR1
      rules:
        - doctors: ["Dr. Smith"]
          when: ALLDAY
          weeks: [1, 2, 3, 4, 5]
groups: {}
aliases: {}
`
		path := filepath.Join(t.TempDir(), "roster.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		r, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "OR1", r.PickRoom(day("2025-09-01"), "09:00", "Dr. Smith"))
		assert.Equal(t, "", r.PickRoom(day("2025-09-02"), "09:00", "Dr. Smith"))
	})

	t.Run("invalid yaml is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.yaml")
		require.NoError(t, os.WriteFile(path, []byte("weekdays: ["), 0o644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
