package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"scholax_backend/internals/features/school/attendance/dto"
	attendanceModel "scholax_backend/internals/features/school/attendance/model"
	studentModel "scholax_backend/internals/features/school/students/model"
	teacherModel "scholax_backend/internals/features/school/teachers/model"
)

// ParseMarkDate accepts a plain date or a full timestamp and truncates
// either to midnight UTC.
func ParseMarkDate(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return TruncateToDay(t), nil
	}
	return time.Time{}, fiber.NewError(fiber.StatusBadRequest,
		fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", raw))
}

// Mark writes one attendance row per student for the class and day. The
// teacher must be assigned the subject for that class. Re-marking an
// already recorded day updates status and teacher in place; one bad record
// never aborts the rest.
func Mark(db *gorm.DB, teacherID uuid.UUID, req dto.MarkAttendanceRequest) (*dto.MarkResults, error) {
	day, err := ParseMarkDate(req.Date)
	if err != nil {
		return nil, err
	}

	var assigned int64
	if err := db.Model(&teacherModel.TeacherAssignmentModel{}).
		Where("assignment_teacher_id = ? AND assignment_batch = ? AND assignment_section = ? AND assignment_subject = ?",
			teacherID, req.Batch, req.Section, req.Subject).
		Count(&assigned).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check assignment")
	}
	if assigned == 0 {
		return nil, fiber.NewError(fiber.StatusForbidden, "You are not assigned this subject for this section")
	}

	// One roster query, then membership checks in memory.
	var roster []studentModel.StudentModel
	if err := db.Select("student_id").
		Where("student_batch = ? AND student_section = ?", req.Batch, req.Section).
		Find(&roster).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class roster")
	}
	inClass := make(map[uuid.UUID]struct{}, len(roster))
	for _, s := range roster {
		inClass[s.StudentID] = struct{}{}
	}

	results := &dto.MarkResults{Errors: []string{}}
	for _, rec := range req.Records {
		studentID, perr := uuid.Parse(rec.StudentID)
		if perr != nil {
			results.Failed++
			results.Errors = append(results.Errors, fmt.Sprintf("Invalid student id %s", rec.StudentID))
			continue
		}
		if _, ok := inClass[studentID]; !ok {
			results.Failed++
			results.Errors = append(results.Errors,
				fmt.Sprintf("Student %s is not in %s section %s", rec.StudentID, req.Batch, req.Section))
			continue
		}
		if !attendanceModel.IsValidStatus(rec.Status) {
			results.Failed++
			results.Errors = append(results.Errors,
				fmt.Sprintf("Invalid status %q for %s", rec.Status, rec.StudentID))
			continue
		}

		row := attendanceModel.AttendanceModel{
			AttendanceStudentID: studentID,
			AttendanceTeacherID: teacherID,
			AttendanceSubject:   req.Subject,
			AttendanceDate:      day,
			AttendanceStatus:    rec.Status,
			AttendanceBatch:     req.Batch,
			AttendanceSection:   req.Section,
		}
		cerr := db.Create(&row).Error
		switch {
		case cerr == nil:
			results.Marked++
		case errors.Is(cerr, gorm.ErrDuplicatedKey):
			uerr := db.Model(&attendanceModel.AttendanceModel{}).
				Where("attendance_student_id = ? AND attendance_subject = ? AND attendance_date = ?",
					studentID, req.Subject, day).
				Updates(map[string]any{
					"attendance_status":     rec.Status,
					"attendance_teacher_id": teacherID,
				}).Error
			if uerr != nil {
				results.Failed++
				results.Errors = append(results.Errors,
					fmt.Sprintf("Failed to update attendance for %s", rec.StudentID))
				continue
			}
			results.Updated++
		default:
			results.Failed++
			results.Errors = append(results.Errors,
				fmt.Sprintf("Failed to save attendance for %s", rec.StudentID))
		}
	}
	return results, nil
}
