package onboarding

// Entity identifies one of the loadable record types.
type Entity string

const (
	EntitySchool              Entity = "school"
	EntityGrade               Entity = "grade"
	EntitySection             Entity = "section"
	EntitySubject             Entity = "subject"
	EntityTeacher             Entity = "teacher"
	EntityStudent             Entity = "student"
	EntityTeacherSubject      Entity = "teacher_subject"
	EntityTeacherGradeSection Entity = "teacher_grade_section"
	EntityTimeslot            Entity = "timeslot"
	EntityTimetable           Entity = "timetable"
	EntityAttendance          Entity = "attendance"
	EntityHomework            Entity = "homework"
	EntityClassDiary          Entity = "class_diary"
	EntityFeesSummary         Entity = "fees_summary"
	EntityInstallment         Entity = "installment"
	EntitySalaryStructure     Entity = "salary_structure"
	EntityPayslip             Entity = "payslip"
)

// EntityMeta describes how an entity maps onto its table: where the
// generated identifier lives and which columns form the natural key.
type EntityMeta struct {
	Entity     Entity
	Table      string
	IDColumn   string
	KeyColumns []string
}

// entityMeta is the fixed table/key layout of the onboarding schema. The
// schema itself is external; this only names what the loader needs to touch.
var entityMeta = map[Entity]EntityMeta{
	EntitySchool: {
		Entity: EntitySchool, Table: "ss_t_schools",
		IDColumn: "school_id", KeyColumns: []string{"school_name"},
	},
	EntityGrade: {
		Entity: EntityGrade, Table: "ss_t_grades",
		IDColumn: "grade_id", KeyColumns: []string{"school_id", "grade_name"},
	},
	EntitySection: {
		Entity: EntitySection, Table: "ss_t_sections",
		IDColumn: "section_id", KeyColumns: []string{"grade_id", "section_name"},
	},
	EntitySubject: {
		Entity: EntitySubject, Table: "ss_t_subjects",
		IDColumn: "subject_id", KeyColumns: []string{"school_id", "subject_name"},
	},
	EntityTeacher: {
		Entity: EntityTeacher, Table: "ss_t_teachers",
		IDColumn: "teacher_id", KeyColumns: []string{"school_id", "email"},
	},
	EntityStudent: {
		Entity: EntityStudent, Table: "ss_t_students",
		IDColumn: "student_id", KeyColumns: []string{"email"},
	},
	EntityTeacherSubject: {
		Entity: EntityTeacherSubject, Table: "ss_t_teacher_subject",
		IDColumn: "id", KeyColumns: []string{"teacher_id", "subject_id"},
	},
	EntityTeacherGradeSection: {
		Entity: EntityTeacherGradeSection, Table: "ss_t_teacher_grade_section",
		IDColumn: "id", KeyColumns: []string{"teacher_id", "grade_id", "section_id"},
	},
	EntityTimeslot: {
		Entity: EntityTimeslot, Table: "ss_t_timeslots",
		IDColumn: "timeslot_id", KeyColumns: []string{"day_of_week", "period_number"},
	},
	EntityTimetable: {
		Entity: EntityTimetable, Table: "ss_t_timetable",
		IDColumn: "timetable_id", KeyColumns: []string{"grade_id", "section_id", "timeslot_id"},
	},
	EntityAttendance: {
		Entity: EntityAttendance, Table: "ss_t_attendance",
		IDColumn: "attendance_id", KeyColumns: []string{"student_id", "attendance_date"},
	},
	EntityHomework: {
		Entity: EntityHomework, Table: "ss_t_homework_details",
		IDColumn: "homework_id", KeyColumns: []string{"teacher_id", "grade_id", "section_id", "subject_id", "title", "assigned_date"},
	},
	EntityClassDiary: {
		Entity: EntityClassDiary, Table: "ss_t_class_diary",
		IDColumn: "diary_id", KeyColumns: []string{"teacher_id", "grade_id", "section_id", "subject_id", "entry_date", "title"},
	},
	EntityFeesSummary: {
		Entity: EntityFeesSummary, Table: "ss_t_fees_summary",
		IDColumn: "fee_id", KeyColumns: []string{"student_id"},
	},
	EntityInstallment: {
		Entity: EntityInstallment, Table: "ss_t_installments",
		IDColumn: "installment_id", KeyColumns: []string{"fee_id", "installment_no"},
	},
	EntitySalaryStructure: {
		Entity: EntitySalaryStructure, Table: "ss_t_teacher_salary_structure",
		IDColumn: "structure_id", KeyColumns: []string{"teacher_id"},
	},
	EntityPayslip: {
		Entity: EntityPayslip, Table: "ss_t_teacher_salary_payslip",
		IDColumn: "payslip_id", KeyColumns: []string{"teacher_id", "year", "month"},
	},
}

// Meta returns the table mapping for an entity.
func Meta(e Entity) EntityMeta {
	return entityMeta[e]
}
