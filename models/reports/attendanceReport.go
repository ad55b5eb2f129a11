package reports

import (
	"context"
	"strings"
	"time"
)

// AttendanceReport projects attendance records whose check-in falls within
// [from, to] (inclusive days in loc). Records without a check-in cannot be
// windowed and are skipped. agentId filters exactly when non-blank.
func AttendanceReport(ctx context.Context, src Source, loc *time.Location, from time.Time, to time.Time, agentId string) ([]AttendanceReportRow, error) {

	start, end := dayWindow(from, to, loc)
	agentId = strings.TrimSpace(agentId)

	records, err := src.AllAttendance(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]AttendanceReportRow, 0, len(records))
	for _, r := range records {
		if r.CheckInTime.IsZero() {
			continue
		}
		if !inWindow(r.CheckInTime, start, end) {
			continue
		}
		if agentId != "" && agentId != r.AgentId {
			continue
		}

		checkIn := r.CheckInTime.In(loc)
		var checkOut *time.Time
		var minutes *int64
		if r.CheckOutTime != nil {
			out := r.CheckOutTime.In(loc)
			checkOut = &out
			m := int64(out.Sub(checkIn) / time.Minute)
			minutes = &m
		}

		rows = append(rows, AttendanceReportRow{
			AgentId:              r.AgentId,
			AgentName:            r.AgentName,
			Date:                 DateOf(r.CheckInTime, loc),
			CheckInTime:          checkIn,
			CheckOutTime:         checkOut,
			TotalDurationMinutes: minutes,
			Status:               r.Status,
		})
	}
	return rows, nil
}
