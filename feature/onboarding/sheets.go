package onboarding

import (
	"fmt"

	"school-onboarding/core/workbook"
)

// rowPlan is one sheet row made ready for the upsert engine: every foreign
// key already resolved to a generated id, every value coerced to its stored
// type. Aliases are extra keys (hint ids from the source workbook) that
// should map to the same record.
type rowPlan struct {
	Fields  map[string]any
	Aliases []Key
}

// sheetSpec binds a sheet to its entity and row builder. The slice order of
// loadOrder is the fixed topological order of the dependency DAG; every
// sheet is required.
type sheetSpec struct {
	Entity Entity
	Sheet  string
	build  func(o *Orchestrator, row workbook.Row) (*rowPlan, error)
}

var loadOrder = []sheetSpec{
	{EntitySchool, "schools", (*Orchestrator).buildSchool},
	{EntityGrade, "grades", (*Orchestrator).buildGrade},
	{EntitySection, "sections", (*Orchestrator).buildSection},
	{EntitySubject, "subjects", (*Orchestrator).buildSubject},
	{EntityTeacher, "teachers", (*Orchestrator).buildTeacher},
	{EntityStudent, "students", (*Orchestrator).buildStudent},
	{EntityTeacherSubject, "teacher_subjects", (*Orchestrator).buildTeacherSubject},
	{EntityTeacherGradeSection, "teacher_grade_section", (*Orchestrator).buildTeacherGradeSection},
	{EntityTimeslot, "timeslots", (*Orchestrator).buildTimeslot},
	{EntityTimetable, "timetable", (*Orchestrator).buildTimetable},
	{EntityAttendance, "attendance", (*Orchestrator).buildAttendance},
	{EntityHomework, "homework", (*Orchestrator).buildHomework},
	{EntityClassDiary, "class_diary", (*Orchestrator).buildClassDiary},
	{EntityFeesSummary, "fees_summary", (*Orchestrator).buildFeesSummary},
	{EntityInstallment, "installments", (*Orchestrator).buildInstallment},
	{EntitySalaryStructure, "salary_structure", (*Orchestrator).buildSalaryStructure},
	{EntityPayslip, "salary_payslips", (*Orchestrator).buildPayslip},
}

// hintKey spells the source workbook's numeric hint ids as alias keys. The
// unit separator in KeyOf keeps them from colliding with real natural keys.
func hintKey(hint int64) Key {
	return KeyOf("hint", hint)
}

// --- cell helpers ---------------------------------------------------------

func mandatory(row workbook.Row, col string) (string, error) {
	s, ok := row.String(col)
	if !ok || s == "" {
		return "", &MalformedRowError{Field: col}
	}
	return s, nil
}

func mandatoryInt(row workbook.Row, col string) (int64, error) {
	if !row.Has(col) {
		return 0, &MalformedRowError{Field: col}
	}
	n, ok := row.Int(col)
	if !ok {
		return 0, &MalformedRowError{Field: col, Detail: "not an integer"}
	}
	return n, nil
}

func mandatoryDate(row workbook.Row, col string) (any, error) {
	if !row.Has(col) {
		return nil, &MalformedRowError{Field: col}
	}
	t, ok := row.Date(col)
	if !ok {
		return nil, &MalformedRowError{Field: col, Detail: "not a date"}
	}
	return t, nil
}

// optString returns the cell value or nil; the null is written through so an
// update can clear a previously set column.
func optString(row workbook.Row, col string) any {
	if s, ok := row.String(col); ok {
		return s
	}
	return nil
}

func optInt(row workbook.Row, col string) (any, error) {
	if !row.Has(col) {
		return nil, nil
	}
	n, ok := row.Int(col)
	if !ok {
		return nil, &MalformedRowError{Field: col, Detail: "not an integer"}
	}
	return n, nil
}

func optDecimal(row workbook.Row, col string) (any, error) {
	if !row.Has(col) {
		return nil, nil
	}
	d, ok := row.Decimal(col)
	if !ok {
		return nil, &MalformedRowError{Field: col, Detail: "not a decimal"}
	}
	return d, nil
}

func optDate(row workbook.Row, col string) (any, error) {
	if !row.Has(col) {
		return nil, nil
	}
	t, ok := row.Date(col)
	if !ok {
		return nil, &MalformedRowError{Field: col, Detail: "not a date"}
	}
	return t, nil
}

func optBool(row workbook.Row, col string, fallback bool) any {
	if b, ok := row.Bool(col); ok {
		return b
	}
	return fallback
}

// --- reference helpers ----------------------------------------------------

// schoolRef returns the id of the onboarded school. Grades, subjects and
// teachers attach to the school of the first schools-sheet row.
func (o *Orchestrator) schoolRef() (int64, error) {
	if !o.hasSchool {
		return 0, &UnresolvedReferenceError{Entity: EntitySchool, Key: ""}
	}
	return o.schoolID, nil
}

func (o *Orchestrator) gradeRef(row workbook.Row) (int64, error) {
	schoolID, err := o.schoolRef()
	if err != nil {
		return 0, err
	}
	name, err := mandatory(row, "grade_name")
	if err != nil {
		return 0, err
	}
	return o.resolver.Resolve(EntityGrade, KeyOf(schoolID, name))
}

func (o *Orchestrator) sectionRef(row workbook.Row, gradeID int64) (int64, error) {
	name, err := mandatory(row, "section_name")
	if err != nil {
		return 0, err
	}
	return o.resolver.Resolve(EntitySection, KeyOf(gradeID, name))
}

func (o *Orchestrator) teacherRef(row workbook.Row) (int64, error) {
	schoolID, err := o.schoolRef()
	if err != nil {
		return 0, err
	}
	email, err := mandatory(row, "teacher_email")
	if err != nil {
		return 0, err
	}
	return o.resolver.Resolve(EntityTeacher, KeyOf(schoolID, email))
}

func (o *Orchestrator) subjectRef(row workbook.Row) (int64, error) {
	schoolID, err := o.schoolRef()
	if err != nil {
		return 0, err
	}
	name, err := mandatory(row, "subject_name")
	if err != nil {
		return 0, err
	}
	return o.resolver.Resolve(EntitySubject, KeyOf(schoolID, name))
}

func (o *Orchestrator) studentByHint(row workbook.Row) (int64, error) {
	hint, err := mandatoryInt(row, "student_id_hint")
	if err != nil {
		return 0, err
	}
	return o.resolver.Resolve(EntityStudent, hintKey(hint))
}

// --- row builders, one per sheet ------------------------------------------

func (o *Orchestrator) buildSchool(row workbook.Row) (*rowPlan, error) {
	name, err := mandatory(row, "school_name")
	if err != nil {
		return nil, err
	}
	year, err := optInt(row, "established_year")
	if err != nil {
		return nil, err
	}
	staff, err := optInt(row, "number_of_staff")
	if err != nil {
		return nil, err
	}
	return &rowPlan{Fields: map[string]any{
		"school_name":            name,
		"profile_pic_location":   optString(row, "profile_pic_location"),
		"address":                optString(row, "address"),
		"primary_phone_number":   optString(row, "primary_phone_number"),
		"secondary_phone_number": optString(row, "secondary_phone_number"),
		"email":                  optString(row, "email"),
		"established_year":       year,
		"medium_of_instruction":  optString(row, "medium_of_instruction"),
		"principal_head_name":    optString(row, "principal_head_name"),
		"administrative_contact": optString(row, "administrative_contact"),
		"number_of_staff":        staff,
		"is_active":              optBool(row, "is_active", true),
	}}, nil
}

func (o *Orchestrator) buildGrade(row workbook.Row) (*rowPlan, error) {
	schoolID, err := o.schoolRef()
	if err != nil {
		return nil, err
	}
	name, err := mandatory(row, "grade_name")
	if err != nil {
		return nil, err
	}
	fields := map[string]any{
		"school_id":                schoolID,
		"grade_name":               name,
		"description":              optString(row, "description"),
		"payment_methods_accepted": optString(row, "payment_methods_accepted"),
	}
	for _, col := range []string{
		"tuition_fee", "admission_fee", "development_fee", "activity_fee",
		"lab_fee", "transportation_fee", "late_fee_penalty",
		"annual_event_fee", "examination_fee", "other_fee",
	} {
		d, err := optDecimal(row, col)
		if err != nil {
			return nil, err
		}
		fields[col] = d
	}
	return &rowPlan{Fields: fields}, nil
}

func (o *Orchestrator) buildSection(row workbook.Row) (*rowPlan, error) {
	gradeID, err := o.gradeRef(row)
	if err != nil {
		return nil, err
	}
	name, err := mandatory(row, "section_name")
	if err != nil {
		return nil, err
	}
	capacity, err := optInt(row, "capacity")
	if err != nil {
		return nil, err
	}
	return &rowPlan{Fields: map[string]any{
		"grade_id":     gradeID,
		"section_name": name,
		"capacity":     capacity,
	}}, nil
}

func (o *Orchestrator) buildSubject(row workbook.Row) (*rowPlan, error) {
	schoolID, err := o.schoolRef()
	if err != nil {
		return nil, err
	}
	name, err := mandatory(row, "subject_name")
	if err != nil {
		return nil, err
	}
	plan := &rowPlan{Fields: map[string]any{
		"school_id":    schoolID,
		"subject_name": name,
	}}
	if hint, ok := row.Int("subject_id_hint"); ok {
		plan.Aliases = append(plan.Aliases, hintKey(hint))
	}
	return plan, nil
}

func (o *Orchestrator) buildTeacher(row workbook.Row) (*rowPlan, error) {
	schoolID, err := o.schoolRef()
	if err != nil {
		return nil, err
	}
	email, err := mandatory(row, "email")
	if err != nil {
		return nil, err
	}
	dob, err := optDate(row, "date_of_birth")
	if err != nil {
		return nil, err
	}
	plan := &rowPlan{Fields: map[string]any{
		"school_id":             schoolID,
		"email":                 email,
		"first_name":            optString(row, "first_name"),
		"middle_name":           optString(row, "middle_name"),
		"last_name":             optString(row, "last_name"),
		"profile_pic_location":  optString(row, "profile_pic_location"),
		"gender":                optString(row, "gender"),
		"date_of_birth":         dob,
		"mobile_number":         optString(row, "mobile_number"),
		"communication_address": optString(row, "communication_address"),
		"languages_known":       optString(row, "languages_known"),
		"is_active":             true,
	}}
	if hint, ok := row.Int("teacher_id_hint"); ok {
		plan.Aliases = append(plan.Aliases, hintKey(hint))
	}
	return plan, nil
}

func (o *Orchestrator) buildStudent(row workbook.Row) (*rowPlan, error) {
	schoolID, err := o.schoolRef()
	if err != nil {
		return nil, err
	}
	gradeID, err := o.gradeRef(row)
	if err != nil {
		return nil, err
	}
	sectionID, err := o.sectionRef(row, gradeID)
	if err != nil {
		return nil, err
	}
	email, err := mandatory(row, "email")
	if err != nil {
		return nil, err
	}
	dob, err := optDate(row, "date_of_birth")
	if err != nil {
		return nil, err
	}
	plan := &rowPlan{Fields: map[string]any{
		"school_id":             schoolID,
		"grade_id":              gradeID,
		"section_id":            sectionID,
		"email":                 email,
		"first_name":            optString(row, "first_name"),
		"middle_name":           optString(row, "middle_name"),
		"last_name":             optString(row, "last_name"),
		"profile_pic_location":  optString(row, "profile_pic_location"),
		"gender":                optString(row, "gender"),
		"date_of_birth":         dob,
		"mobile_number":         optString(row, "mobile_number"),
		"communication_address": optString(row, "communication_address"),
		"languages_known":       optString(row, "languages_known"),
		"guardian_name":         optString(row, "guardian_name"),
		"guardian_mobile":       optString(row, "guardian_mobile"),
	}}
	if hint, ok := row.Int("student_id_hint"); ok {
		plan.Aliases = append(plan.Aliases, hintKey(hint))
	}
	return plan, nil
}

func (o *Orchestrator) buildTeacherSubject(row workbook.Row) (*rowPlan, error) {
	teacherHint, err := mandatoryInt(row, "teacher_id_hint")
	if err != nil {
		return nil, err
	}
	teacherID, err := o.resolver.Resolve(EntityTeacher, hintKey(teacherHint))
	if err != nil {
		return nil, err
	}
	subjectHint, err := mandatoryInt(row, "subject_id_hint")
	if err != nil {
		return nil, err
	}
	subjectID, err := o.resolver.Resolve(EntitySubject, hintKey(subjectHint))
	if err != nil {
		return nil, err
	}
	return &rowPlan{Fields: map[string]any{
		"teacher_id": teacherID,
		"subject_id": subjectID,
	}}, nil
}

func (o *Orchestrator) buildTeacherGradeSection(row workbook.Row) (*rowPlan, error) {
	teacherHint, err := mandatoryInt(row, "teacher_id_hint")
	if err != nil {
		return nil, err
	}
	teacherID, err := o.resolver.Resolve(EntityTeacher, hintKey(teacherHint))
	if err != nil {
		return nil, err
	}
	gradeID, err := o.gradeRef(row)
	if err != nil {
		return nil, err
	}
	sectionID, err := o.sectionRef(row, gradeID)
	if err != nil {
		return nil, err
	}
	return &rowPlan{Fields: map[string]any{
		"teacher_id": teacherID,
		"grade_id":   gradeID,
		"section_id": sectionID,
	}}, nil
}

func (o *Orchestrator) buildTimeslot(row workbook.Row) (*rowPlan, error) {
	day, err := mandatory(row, "day_of_week")
	if err != nil {
		return nil, err
	}
	period, err := mandatoryInt(row, "period_number")
	if err != nil {
		return nil, err
	}
	return &rowPlan{Fields: map[string]any{
		"day_of_week":   day,
		"period_number": period,
		"start_time":    optString(row, "start_time"),
		"end_time":      optString(row, "end_time"),
	}}, nil
}

func (o *Orchestrator) buildTimetable(row workbook.Row) (*rowPlan, error) {
	gradeID, err := o.gradeRef(row)
	if err != nil {
		return nil, err
	}
	sectionID, err := o.sectionRef(row, gradeID)
	if err != nil {
		return nil, err
	}
	day, err := mandatory(row, "day_of_week")
	if err != nil {
		return nil, err
	}
	period, err := mandatoryInt(row, "period_number")
	if err != nil {
		return nil, err
	}
	timeslotID, err := o.resolver.Resolve(EntityTimeslot, KeyOf(day, period))
	if err != nil {
		return nil, err
	}

	// Free and lunch periods have no subject or teacher; those foreign keys
	// stay null rather than failing the row.
	var subjectKey, teacherKey *Key
	if name, ok := row.String("subject_name"); ok {
		schoolID, err := o.schoolRef()
		if err != nil {
			return nil, err
		}
		subjectKey = OptionalKey(true, schoolID, name)
	}
	if email, ok := row.String("teacher_email"); ok {
		schoolID, err := o.schoolRef()
		if err != nil {
			return nil, err
		}
		teacherKey = OptionalKey(true, schoolID, email)
	}
	subjectID, err := o.resolver.ResolveOptional(EntitySubject, subjectKey)
	if err != nil {
		return nil, err
	}
	teacherID, err := o.resolver.ResolveOptional(EntityTeacher, teacherKey)
	if err != nil {
		return nil, err
	}

	return &rowPlan{Fields: map[string]any{
		"grade_id":    gradeID,
		"section_id":  sectionID,
		"timeslot_id": timeslotID,
		"subject_id":  subjectID,
		"teacher_id":  teacherID,
		"room_number": optString(row, "room_number"),
		"is_active":   true,
	}}, nil
}

func (o *Orchestrator) buildAttendance(row workbook.Row) (*rowPlan, error) {
	studentID, err := o.studentByHint(row)
	if err != nil {
		return nil, err
	}
	date, err := mandatoryDate(row, "date")
	if err != nil {
		return nil, err
	}
	status, err := mandatory(row, "status")
	if err != nil {
		return nil, err
	}
	return &rowPlan{Fields: map[string]any{
		"student_id":      studentID,
		"attendance_date": date,
		"status":          status,
	}}, nil
}

func (o *Orchestrator) buildHomework(row workbook.Row) (*rowPlan, error) {
	teacherID, err := o.teacherRef(row)
	if err != nil {
		return nil, err
	}
	gradeID, err := o.gradeRef(row)
	if err != nil {
		return nil, err
	}
	sectionID, err := o.sectionRef(row, gradeID)
	if err != nil {
		return nil, err
	}
	subjectID, err := o.subjectRef(row)
	if err != nil {
		return nil, err
	}
	title, err := mandatory(row, "title")
	if err != nil {
		return nil, err
	}
	assigned, err := mandatoryDate(row, "assigned_date")
	if err != nil {
		return nil, err
	}
	due, err := optDate(row, "due_date")
	if err != nil {
		return nil, err
	}
	return &rowPlan{Fields: map[string]any{
		"teacher_id":    teacherID,
		"grade_id":      gradeID,
		"section_id":    sectionID,
		"subject_id":    subjectID,
		"title":         title,
		"more_details":  optString(row, "more_details"),
		"assigned_date": assigned,
		"due_date":      due,
		"status":        optString(row, "status"),
	}}, nil
}

func (o *Orchestrator) buildClassDiary(row workbook.Row) (*rowPlan, error) {
	teacherID, err := o.teacherRef(row)
	if err != nil {
		return nil, err
	}
	gradeID, err := o.gradeRef(row)
	if err != nil {
		return nil, err
	}
	sectionID, err := o.sectionRef(row, gradeID)
	if err != nil {
		return nil, err
	}
	subjectID, err := o.subjectRef(row)
	if err != nil {
		return nil, err
	}
	date, err := mandatoryDate(row, "date")
	if err != nil {
		return nil, err
	}
	title, err := mandatory(row, "title")
	if err != nil {
		return nil, err
	}
	return &rowPlan{Fields: map[string]any{
		"teacher_id":  teacherID,
		"grade_id":    gradeID,
		"section_id":  sectionID,
		"subject_id":  subjectID,
		"entry_date":  date,
		"title":       title,
		"description": optString(row, "description"),
	}}, nil
}

func (o *Orchestrator) buildFeesSummary(row workbook.Row) (*rowPlan, error) {
	studentID, err := o.studentByHint(row)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{"student_id": studentID}
	for _, col := range []string{"total_fee", "concession", "net_payable", "amount_paid"} {
		d, err := optDecimal(row, col)
		if err != nil {
			return nil, err
		}
		fields[col] = d
	}
	return &rowPlan{Fields: fields}, nil
}

func (o *Orchestrator) buildInstallment(row workbook.Row) (*rowPlan, error) {
	studentID, err := o.studentByHint(row)
	if err != nil {
		return nil, err
	}
	feeID, err := o.resolver.Resolve(EntityFeesSummary, KeyOf(studentID))
	if err != nil {
		return nil, err
	}
	no, err := mandatoryInt(row, "installment_no")
	if err != nil {
		return nil, err
	}
	amount, err := optDecimal(row, "amount")
	if err != nil {
		return nil, err
	}
	due, err := optDate(row, "due_date")
	if err != nil {
		return nil, err
	}
	paid, err := optDate(row, "paid_date")
	if err != nil {
		return nil, err
	}
	return &rowPlan{Fields: map[string]any{
		"fee_id":         feeID,
		"installment_no": no,
		"amount":         amount,
		"due_date":       due,
		"paid_date":      paid,
		"paid_status":    optString(row, "paid_status"),
	}}, nil
}

func (o *Orchestrator) buildSalaryStructure(row workbook.Row) (*rowPlan, error) {
	teacherID, err := o.teacherRef(row)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{"teacher_id": teacherID}
	for _, col := range []string{"basic_pay", "allowances", "deductions"} {
		d, err := optDecimal(row, col)
		if err != nil {
			return nil, err
		}
		fields[col] = d
	}
	return &rowPlan{Fields: fields}, nil
}

func (o *Orchestrator) buildPayslip(row workbook.Row) (*rowPlan, error) {
	teacherID, err := o.teacherRef(row)
	if err != nil {
		return nil, err
	}
	year, err := mandatoryInt(row, "year")
	if err != nil {
		return nil, err
	}
	month, err := mandatoryInt(row, "month")
	if err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, &MalformedRowError{Field: "month", Detail: fmt.Sprintf("out of range: %d", month)}
	}
	fields := map[string]any{
		"teacher_id": teacherID,
		"year":       year,
		"month":      month,
	}
	for _, col := range []string{"basic_pay", "allowances", "deductions", "net_pay"} {
		d, err := optDecimal(row, col)
		if err != nil {
			return nil, err
		}
		fields[col] = d
	}
	return &rowPlan{Fields: fields}, nil
}
