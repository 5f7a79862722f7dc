package inspection

import (
	"testing"
	"time"

	"asset-inspector/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func TestDecide(t *testing.T) {
	today := date(2025, 6, 15)

	cases := []struct {
		name      string
		nextDate  *time.Time
		last      *LastEntry
		permitted bool
		reason    string
	}{
		{
			name:      "no history, no schedule",
			nextDate:  nil,
			last:      nil,
			permitted: true,
			reason:    ReasonFirstInspection,
		},
		{
			name:      "no history in cycle, future schedule",
			nextDate:  datePtr(date(2025, 9, 1)),
			last:      nil,
			permitted: true,
			reason:    ReasonFirstInspection,
		},
		{
			name:      "normal entry today, next date in future",
			nextDate:  datePtr(date(2025, 12, 12)),
			last:      &LastEntry{Outcome: models.OutcomeNormal, Date: today},
			permitted: false,
			reason:    ReasonAlreadyInspected,
		},
		{
			name:      "missing outcome is always re-inspectable",
			nextDate:  datePtr(date(2025, 12, 12)),
			last:      &LastEntry{Outcome: models.OutcomeMissing, Date: today},
			permitted: true,
			reason:    ReasonReinspectAbnormal,
		},
		{
			name:      "location mismatch is always re-inspectable",
			nextDate:  datePtr(date(2025, 12, 12)),
			last:      &LastEntry{Outcome: models.OutcomeLocationMismatch, Date: date(2025, 6, 1)},
			permitted: true,
			reason:    ReasonReinspectAbnormal,
		},
		{
			name:      "status abnormal is always re-inspectable",
			nextDate:  datePtr(date(2025, 12, 12)),
			last:      &LastEntry{Outcome: models.OutcomeStatusAbnormal, Date: date(2025, 6, 10)},
			permitted: true,
			reason:    ReasonReinspectAbnormal,
		},
		{
			name:      "cycle elapsed on the scheduled day",
			nextDate:  datePtr(date(2025, 6, 15)),
			last:      &LastEntry{Outcome: models.OutcomeNormal, Date: date(2025, 6, 1)},
			permitted: true,
			reason:    ReasonCycleElapsed,
		},
		{
			name:      "cycle elapsed past the scheduled day",
			nextDate:  datePtr(date(2025, 5, 1)),
			last:      &LastEntry{Outcome: models.OutcomeNormal, Date: date(2025, 6, 1)},
			permitted: true,
			reason:    ReasonCycleElapsed,
		},
		{
			name:      "normal entry, no schedule at all",
			nextDate:  nil,
			last:      &LastEntry{Outcome: models.OutcomeNormal, Date: today},
			permitted: false,
			reason:    ReasonAlreadyInspected,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Decide(today, tc.nextDate, tc.last)
			if v.Permitted != tc.permitted {
				t.Errorf("expected permitted=%v, got %v", tc.permitted, v.Permitted)
			}
			if v.Reason != tc.reason {
				t.Errorf("expected reason %q, got %q", tc.reason, v.Reason)
			}
		})
	}
}

func TestDecide_TimeOfDayIgnored(t *testing.T) {
	// срок сравнивается по датам: в день next_inspection_date допуск
	// открыт с утра, даже если в поле записан полдень
	today := time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)
	next := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	v := Decide(today, &next, &LastEntry{Outcome: models.OutcomeNormal, Date: date(2025, 1, 10)})
	if !v.Permitted {
		t.Errorf("expected permitted on the scheduled day, got blocked (%s)", v.Reason)
	}
	if v.Reason != ReasonCycleElapsed {
		t.Errorf("expected reason %q, got %q", ReasonCycleElapsed, v.Reason)
	}
}
