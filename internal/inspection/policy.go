package inspection

import (
	"time"

	"asset-inspector/internal/models"
)

// Причины вердикта, уходят клиенту сканера как есть.
const (
	ReasonFirstInspection   = "first_inspection"   // в текущем цикле записей нет
	ReasonReinspectAbnormal = "reinspect_abnormal" // прошлый результат не "normal" — можно перепроверять
	ReasonCycleElapsed      = "cycle_elapsed"      // срок очередной инвентаризации наступил
	ReasonAlreadyInspected  = "already_inspected"  // в цикле уже есть "normal", срок не наступил
)

type Verdict struct {
	Permitted bool
	Reason    string
}

// LastEntry — последняя запись журнала по активу в текущем цикле.
type LastEntry struct {
	Outcome models.InspectionOutcome
	Date    time.Time
}

// Decide — правило допуска к инвентаризации. Бизнес-правило менялось
// несколько раз, поэтому оно вынесено в одну чистую функцию: today и
// состояние подаются снаружи, ни БД, ни часов внутри нет.
//
// Инвентаризация разрешена, если выполняется любое из:
//  - записей в текущем цикле нет;
//  - последняя запись есть, но её результат не "normal";
//  - назначенная дата следующей инвентаризации уже наступила.
//
// Запрещена только когда в цикле есть запись "normal" и срок следующей
// инвентаризации ещё не пришёл.
func Decide(today time.Time, nextDate *time.Time, last *LastEntry) Verdict {
	if last == nil {
		return Verdict{Permitted: true, Reason: ReasonFirstInspection}
	}
	if last.Outcome != models.OutcomeNormal {
		return Verdict{Permitted: true, Reason: ReasonReinspectAbnormal}
	}
	if nextDate != nil && !dateOnly(today).Before(dateOnly(*nextDate)) {
		return Verdict{Permitted: true, Reason: ReasonCycleElapsed}
	}
	return Verdict{Permitted: false, Reason: ReasonAlreadyInspected}
}

// сравниваем даты, а не моменты времени
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
