package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"scholax_backend/internals/features/school/attendance/dto"
	attendanceModel "scholax_backend/internals/features/school/attendance/model"
)

// TruncateToDay drops the time-of-day component, keeping the date in UTC
// so the per-day uniqueness key is stable across server timezones.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthRange parses "YYYY-MM" into the half-open interval
// [first of month, first of next month).
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01", month, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Invalid month %q, expected YYYY-MM", month))
	}
	return start, start.AddDate(0, 1, 0), nil
}

func percentage(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*10000) / 100
}

// ComputeSummary folds raw attendance rows into per-subject counters plus
// the overall figures. Zero rows yields 0 percent, never NaN.
func ComputeSummary(rows []attendanceModel.AttendanceModel) dto.AttendanceSummary {
	type counter struct{ present, total int }
	bySubject := map[string]*counter{}

	summary := dto.AttendanceSummary{Subjects: []dto.SubjectSummary{}}
	for _, r := range rows {
		c, ok := bySubject[r.AttendanceSubject]
		if !ok {
			c = &counter{}
			bySubject[r.AttendanceSubject] = c
		}
		c.total++
		summary.OverallTotal++
		if r.AttendanceStatus == attendanceModel.StatusPresent {
			c.present++
			summary.OverallPresent++
		}
	}

	subjects := make([]string, 0, len(bySubject))
	for s := range bySubject {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	for _, s := range subjects {
		c := bySubject[s]
		summary.Subjects = append(summary.Subjects, dto.SubjectSummary{
			Subject:    s,
			Present:    c.present,
			Total:      c.total,
			Percentage: percentage(c.present, c.total),
		})
	}
	summary.OverallPercentage = percentage(summary.OverallPresent, summary.OverallTotal)
	return summary
}
