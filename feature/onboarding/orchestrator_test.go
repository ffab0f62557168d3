package onboarding_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"school-onboarding/core/database"
	"school-onboarding/core/workbook"
	"school-onboarding/feature/onboarding"
	"school-onboarding/feature/onboarding/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// sheetOrder mirrors the workbook layout produced by the export tooling.
var sheetOrder = []string{
	"schools", "grades", "sections", "subjects", "teachers", "students",
	"teacher_subjects", "teacher_grade_section", "timeslots", "timetable",
	"attendance", "homework", "class_diary", "fees_summary", "installments",
	"salary_structure", "salary_payslips",
}

// defaultSheets builds a small but complete onboarding workbook: one school,
// two grades, three sections, two teachers, three students and one row or
// two in every dependent sheet.
func defaultSheets() map[string][][]any {
	return map[string][][]any{
		"schools": {
			{"school_name", "address", "primary_phone_number", "email", "established_year", "principal_head_name", "is_active"},
			{"Sunrise Public School", "12 Lake Road", "9000000000", "office@sunrise.test", 1995, "R. Iyer", 1},
		},
		"grades": {
			{"grade_name", "description", "tuition_fee", "admission_fee"},
			{"Grade 1", "First grade", "1500.50", "300.00"},
			{"Grade 2", nil, "1600.00", "300.00"},
		},
		"sections": {
			{"grade_name", "section_name", "capacity"},
			{"Grade 1", "A", 30},
			{"Grade 1", "B", 30},
			{"Grade 2", "A", 25},
		},
		"subjects": {
			{"subject_id_hint", "subject_name"},
			{1, "Mathematics"},
			{2, "English"},
		},
		"teachers": {
			{"teacher_id_hint", "email", "first_name", "last_name", "gender", "date_of_birth", "mobile_number"},
			{1, "alice@sunrise.test", "Alice", "Rao", "F", "1988-06-15", "9811111111"},
			{2, "bob@sunrise.test", "Bob", "Nair", "M", "1985-02-20", "9822222222"},
		},
		"students": {
			{"student_id_hint", "email", "first_name", "grade_name", "section_name", "mobile_number", "guardian_name"},
			{1, "s1@sunrise.test", "Kiran", "Grade 1", "A", "9001110001", "P. Kumar"},
			{2, "s2@sunrise.test", "Meera", "Grade 1", "B", "9001110002", "S. Devi"},
			{3, "s3@sunrise.test", "Ravi", "Grade 2", "A", "9001110003", "V. Menon"},
		},
		"teacher_subjects": {
			{"teacher_id_hint", "subject_id_hint"},
			{1, 1},
			{2, 2},
		},
		"teacher_grade_section": {
			{"teacher_id_hint", "grade_name", "section_name"},
			{1, "Grade 1", "A"},
			{2, "Grade 2", "A"},
		},
		"timeslots": {
			{"day_of_week", "period_number", "start_time", "end_time"},
			{"Monday", 1, "09:00", "09:45"},
			{"Monday", 2, "09:45", "10:30"},
			{"Tuesday", 1, "09:00", "09:45"},
		},
		"timetable": {
			{"grade_name", "section_name", "day_of_week", "period_number", "subject_name", "teacher_email", "room_number"},
			{"Grade 1", "A", "Monday", 1, "Mathematics", "alice@sunrise.test", "101"},
			{"Grade 1", "A", "Monday", 2, nil, nil, nil}, // free period
		},
		"attendance": {
			{"student_id_hint", "date", "status"},
			{1, "2024-01-10", "P"},
			{2, "2024-01-10", "A"},
		},
		"homework": {
			{"teacher_email", "grade_name", "section_name", "subject_name", "title", "more_details", "assigned_date", "due_date", "status"},
			{"alice@sunrise.test", "Grade 1", "A", "Mathematics", "Fractions worksheet", "Q1 to Q10", "2024-01-10", "2024-01-12", "assigned"},
		},
		"class_diary": {
			{"teacher_email", "grade_name", "section_name", "subject_name", "date", "title", "description"},
			{"alice@sunrise.test", "Grade 1", "A", "Mathematics", "2024-01-10", "Introduction", "Covered chapter 1"},
		},
		"fees_summary": {
			{"student_id_hint", "total_fee", "concession", "net_payable", "amount_paid"},
			{1, "18000.00", "1000.00", "17000.00", "8500.00"},
			{2, "18000.00", "0.00", "18000.00", "18000.00"},
		},
		"installments": {
			{"student_id_hint", "installment_no", "amount", "due_date", "paid_date", "paid_status"},
			{1, 1, "8500.00", "2024-04-01", "2024-03-28", "paid"},
			{1, 2, "8500.00", "2024-10-01", nil, "due"},
		},
		"salary_structure": {
			{"teacher_email", "basic_pay", "allowances", "deductions"},
			{"alice@sunrise.test", "52000.00", "6000.00", "2400.00"},
			{"bob@sunrise.test", "48000.00", "5000.00", "2200.00"},
		},
		"salary_payslips": {
			{"teacher_email", "year", "month", "basic_pay", "allowances", "deductions", "net_pay"},
			{"alice@sunrise.test", 2024, 1, "52000.00", "6000.00", "2400.00", "55600.00"},
		},
	}
}

func writeTestWorkbook(t *testing.T, sheets map[string][][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for _, name := range sheetOrder {
		rows, ok := sheets[name]
		if !ok {
			continue
		}
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("failed to create sheet %s: %v", name, err)
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("failed to write row: %v", err)
			}
		}
	}
	f.DeleteSheet("Sheet1")

	path := filepath.Join(t.TempDir(), "onboarding.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func runLoad(t *testing.T, db *gorm.DB, path string) (*onboarding.Report, error) {
	t.Helper()

	source, err := workbook.Open(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer source.Close()

	return onboarding.NewOrchestrator(db, source, zap.NewNop()).Run(context.Background())
}

func TestLoadPass(t *testing.T) {
	db := setupTestDB(t)
	path := writeTestWorkbook(t, defaultSheets())

	report, err := runLoad(t, db, path)
	assert.NoError(t, err)
	assert.Len(t, report.Sheets, 17)
	assert.Equal(t, 0, report.TotalFailed())

	inserted := map[onboarding.Entity]int{
		onboarding.EntitySchool:              1,
		onboarding.EntityGrade:               2,
		onboarding.EntitySection:             3,
		onboarding.EntitySubject:             2,
		onboarding.EntityTeacher:             2,
		onboarding.EntityStudent:             3,
		onboarding.EntityTeacherSubject:      2,
		onboarding.EntityTeacherGradeSection: 2,
		onboarding.EntityTimeslot:            3,
		onboarding.EntityTimetable:           2,
		onboarding.EntityAttendance:          2,
		onboarding.EntityHomework:            1,
		onboarding.EntityClassDiary:          1,
		onboarding.EntityFeesSummary:         2,
		onboarding.EntityInstallment:         2,
		onboarding.EntitySalaryStructure:     2,
		onboarding.EntityPayslip:             1,
	}
	for entity, want := range inserted {
		sr := report.Sheet(entity)
		assert.NotNil(t, sr, "missing sheet report for %s", entity)
		assert.Equal(t, want, sr.Inserted, "inserted count for %s", entity)
		assert.Equal(t, 0, sr.Updated, "updated count for %s", entity)
	}

	// Foreign keys are generated ids, not source hints.
	var student models.Student
	assert.NoError(t, db.Where("email = ?", "s1@sunrise.test").First(&student).Error)
	assert.NotZero(t, student.GradeID)
	assert.NotZero(t, student.SectionID)

	var grade models.Grade
	assert.NoError(t, db.First(&grade, student.GradeID).Error)
	assert.Equal(t, "Grade 1", grade.GradeName)
}

func TestLoadPassIdempotent(t *testing.T) {
	db := setupTestDB(t)
	path := writeTestWorkbook(t, defaultSheets())

	_, err := runLoad(t, db, path)
	assert.NoError(t, err)

	// Second pass over identical input: the natural keys all resolve to the
	// already-stored rows and no sheet performs a single write.
	report, err := runLoad(t, db, path)
	assert.NoError(t, err)
	assert.Equal(t, 0, report.TotalFailed())
	for _, sr := range report.Sheets {
		assert.Equal(t, 0, sr.Inserted, "second pass inserted rows into %s", sr.Sheet)
		assert.Equal(t, 0, sr.Updated, "second pass updated rows in %s", sr.Sheet)
		assert.NotZero(t, sr.Unchanged, "second pass saw no rows in %s", sr.Sheet)
	}

	var students int64
	db.Model(&models.Student{}).Count(&students)
	assert.Equal(t, int64(3), students)
}

func TestLoadPassAppliesUpdates(t *testing.T) {
	db := setupTestDB(t)

	_, err := runLoad(t, db, writeTestWorkbook(t, defaultSheets()))
	assert.NoError(t, err)

	var before models.Student
	assert.NoError(t, db.Where("email = ?", "s1@sunrise.test").First(&before).Error)

	sheets := defaultSheets()
	sheets["students"][1][5] = "9999999999" // mobile_number of s1

	report, err := runLoad(t, db, writeTestWorkbook(t, sheets))
	assert.NoError(t, err)

	sr := report.Sheet(onboarding.EntityStudent)
	assert.Equal(t, 0, sr.Inserted)
	assert.Equal(t, 1, sr.Updated)
	assert.Equal(t, 2, sr.Unchanged)

	var after models.Student
	assert.NoError(t, db.Where("email = ?", "s1@sunrise.test").First(&after).Error)
	assert.Equal(t, before.StudentID, after.StudentID, "update must keep the generated id")
	assert.NotNil(t, after.MobileNumber)
	assert.Equal(t, "9999999999", *after.MobileNumber)
}

func TestLoadPassNullableTimetableReferences(t *testing.T) {
	db := setupTestDB(t)

	report, err := runLoad(t, db, writeTestWorkbook(t, defaultSheets()))
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Sheet(onboarding.EntityTimetable).Updated)

	var entries []models.TimetableEntry
	assert.NoError(t, db.Order("timetable_id").Find(&entries).Error)
	assert.Len(t, entries, 2)

	assert.NotNil(t, entries[0].SubjectID)
	assert.NotNil(t, entries[0].TeacherID)

	// The free period keeps null subject and teacher rather than failing.
	assert.Nil(t, entries[1].SubjectID)
	assert.Nil(t, entries[1].TeacherID)
}

func TestLoadPassMalformedRowIsolation(t *testing.T) {
	db := setupTestDB(t)

	sheets := defaultSheets()
	sheets["students"] = [][]any{
		{"student_id_hint", "email", "first_name", "grade_name", "section_name", "mobile_number", "guardian_name"},
		{1, "s1@sunrise.test", "Kiran", "Grade 1", "A", "9001110001", "P. Kumar"},
		{4, nil, "Nameless", "Grade 1", "A", "9001110004", "T. Kumar"}, // no email
		{2, "s2@sunrise.test", "Meera", "Grade 1", "B", "9001110002", "S. Devi"},
		{3, "s3@sunrise.test", "Ravi", "Grade 2", "A", "9001110003", "V. Menon"},
	}

	report, err := runLoad(t, db, writeTestWorkbook(t, sheets))
	assert.NoError(t, err, "row-level failures must not abort the pass")

	sr := report.Sheet(onboarding.EntityStudent)
	assert.Equal(t, 3, sr.Inserted)
	assert.Len(t, sr.Failed, 1)
	assert.Equal(t, 2, sr.Failed[0].Row)
	assert.Contains(t, sr.Failed[0].Reason, "email")

	// Rows after the malformed one still loaded.
	var students int64
	db.Model(&models.Student{}).Count(&students)
	assert.Equal(t, int64(3), students)
}

func TestLoadPassUnresolvedReferenceIsolation(t *testing.T) {
	db := setupTestDB(t)

	sheets := defaultSheets()
	sheets["sections"] = append(sheets["sections"],
		[]any{"Grade 9", "A", 20}) // no such grade
	sheets["attendance"] = append(sheets["attendance"],
		[]any{99, "2024-01-10", "P"}) // no such student hint

	report, err := runLoad(t, db, writeTestWorkbook(t, sheets))
	assert.NoError(t, err)

	sections := report.Sheet(onboarding.EntitySection)
	assert.Equal(t, 3, sections.Inserted)
	assert.Len(t, sections.Failed, 1)
	assert.Contains(t, sections.Failed[0].Reason, "unresolved reference")

	attendance := report.Sheet(onboarding.EntityAttendance)
	assert.Equal(t, 2, attendance.Inserted)
	assert.Len(t, attendance.Failed, 1)
	assert.Equal(t, 3, attendance.Failed[0].Row)
	assert.Contains(t, attendance.Failed[0].Reason, "unresolved reference")
}

func TestLoadPassDuplicateKeyWithinSheet(t *testing.T) {
	db := setupTestDB(t)

	sheets := defaultSheets()
	sheets["grades"] = append(sheets["grades"],
		[]any{"Grade 1", "First grade, revised", "1500.50", "300.00"})

	report, err := runLoad(t, db, writeTestWorkbook(t, sheets))
	assert.NoError(t, err)

	// The later duplicate wins: it lands as an update on the row the first
	// occurrence inserted.
	sr := report.Sheet(onboarding.EntityGrade)
	assert.Equal(t, 2, sr.Inserted)
	assert.Equal(t, 1, sr.Updated)

	var grades int64
	db.Model(&models.Grade{}).Count(&grades)
	assert.Equal(t, int64(2), grades)

	var grade models.Grade
	assert.NoError(t, db.Where("grade_name = ?", "Grade 1").First(&grade).Error)
	assert.NotNil(t, grade.Description)
	assert.Equal(t, "First grade, revised", *grade.Description)
}

func TestLoadPassMissingSheetAborts(t *testing.T) {
	db := setupTestDB(t)

	sheets := defaultSheets()
	delete(sheets, "installments")

	report, err := runLoad(t, db, writeTestWorkbook(t, sheets))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, workbook.ErrSheetNotFound))

	// The partial report covers every sheet processed before the abort, and
	// their writes stay committed.
	assert.NotNil(t, report)
	assert.Len(t, report.Sheets, 14)

	var students int64
	db.Model(&models.Student{}).Count(&students)
	assert.Equal(t, int64(3), students)

	var installments int64
	db.Model(&models.Installment{}).Count(&installments)
	assert.Equal(t, int64(0), installments)
}
