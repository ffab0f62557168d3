package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// School is the root of the onboarding dependency graph.
type School struct {
	SchoolID              int64   `gorm:"column:school_id;primaryKey;autoIncrement"`
	SchoolName            string  `gorm:"column:school_name;size:200;uniqueIndex"`
	ProfilePicLocation    *string `gorm:"column:profile_pic_location;size:255"`
	Address               *string `gorm:"column:address;size:255"`
	PrimaryPhoneNumber    *string `gorm:"column:primary_phone_number;size:20"`
	SecondaryPhoneNumber  *string `gorm:"column:secondary_phone_number;size:20"`
	Email                 *string `gorm:"column:email;size:120"`
	EstablishedYear       *int64  `gorm:"column:established_year"`
	MediumOfInstruction   *string `gorm:"column:medium_of_instruction;size:60"`
	PrincipalHeadName     *string `gorm:"column:principal_head_name;size:120"`
	AdministrativeContact *string `gorm:"column:administrative_contact;size:120"`
	NumberOfStaff         *int64  `gorm:"column:number_of_staff"`
	IsActive              bool    `gorm:"column:is_active"`
}

func (School) TableName() string { return "ss_t_schools" }

// Grade carries the fee schedule of one grade within a school.
type Grade struct {
	GradeID                int64            `gorm:"column:grade_id;primaryKey;autoIncrement"`
	SchoolID               int64            `gorm:"column:school_id;uniqueIndex:uq_grade"`
	GradeName              string           `gorm:"column:grade_name;size:60;uniqueIndex:uq_grade"`
	Description            *string          `gorm:"column:description;size:255"`
	TuitionFee             *decimal.Decimal `gorm:"column:tuition_fee;type:decimal(12,2)"`
	AdmissionFee           *decimal.Decimal `gorm:"column:admission_fee;type:decimal(12,2)"`
	DevelopmentFee         *decimal.Decimal `gorm:"column:development_fee;type:decimal(12,2)"`
	ActivityFee            *decimal.Decimal `gorm:"column:activity_fee;type:decimal(12,2)"`
	LabFee                 *decimal.Decimal `gorm:"column:lab_fee;type:decimal(12,2)"`
	TransportationFee      *decimal.Decimal `gorm:"column:transportation_fee;type:decimal(12,2)"`
	LateFeePenalty         *decimal.Decimal `gorm:"column:late_fee_penalty;type:decimal(12,2)"`
	AnnualEventFee         *decimal.Decimal `gorm:"column:annual_event_fee;type:decimal(12,2)"`
	ExaminationFee         *decimal.Decimal `gorm:"column:examination_fee;type:decimal(12,2)"`
	OtherFee               *decimal.Decimal `gorm:"column:other_fee;type:decimal(12,2)"`
	PaymentMethodsAccepted *string          `gorm:"column:payment_methods_accepted;size:255"`
}

func (Grade) TableName() string { return "ss_t_grades" }

// Section is one class section within a grade.
type Section struct {
	SectionID   int64   `gorm:"column:section_id;primaryKey;autoIncrement"`
	GradeID     int64   `gorm:"column:grade_id;uniqueIndex:uq_section"`
	SectionName string  `gorm:"column:section_name;size:30;uniqueIndex:uq_section"`
	Capacity    *int64  `gorm:"column:capacity"`
}

func (Section) TableName() string { return "ss_t_sections" }

type Subject struct {
	SubjectID   int64  `gorm:"column:subject_id;primaryKey;autoIncrement"`
	SchoolID    int64  `gorm:"column:school_id;uniqueIndex:uq_subject"`
	SubjectName string `gorm:"column:subject_name;size:100;uniqueIndex:uq_subject"`
}

func (Subject) TableName() string { return "ss_t_subjects" }

type Teacher struct {
	TeacherID            int64      `gorm:"column:teacher_id;primaryKey;autoIncrement"`
	SchoolID             int64      `gorm:"column:school_id;uniqueIndex:uq_teacher"`
	Email                string     `gorm:"column:email;size:120;uniqueIndex:uq_teacher"`
	FirstName            *string    `gorm:"column:first_name;size:60"`
	MiddleName           *string    `gorm:"column:middle_name;size:60"`
	LastName             *string    `gorm:"column:last_name;size:60"`
	ProfilePicLocation   *string    `gorm:"column:profile_pic_location;size:255"`
	Gender               *string    `gorm:"column:gender;size:12"`
	DateOfBirth          *time.Time `gorm:"column:date_of_birth"`
	MobileNumber         *string    `gorm:"column:mobile_number;size:20"`
	CommunicationAddress *string    `gorm:"column:communication_address;size:255"`
	LanguagesKnown       *string    `gorm:"column:languages_known;size:255"`
	IsActive             bool       `gorm:"column:is_active"`
}

func (Teacher) TableName() string { return "ss_t_teachers" }

type Student struct {
	StudentID            int64      `gorm:"column:student_id;primaryKey;autoIncrement"`
	SchoolID             int64      `gorm:"column:school_id"`
	GradeID              int64      `gorm:"column:grade_id"`
	SectionID            int64      `gorm:"column:section_id"`
	Email                string     `gorm:"column:email;size:120;uniqueIndex"`
	FirstName            *string    `gorm:"column:first_name;size:60"`
	MiddleName           *string    `gorm:"column:middle_name;size:60"`
	LastName             *string    `gorm:"column:last_name;size:60"`
	ProfilePicLocation   *string    `gorm:"column:profile_pic_location;size:255"`
	Gender               *string    `gorm:"column:gender;size:12"`
	DateOfBirth          *time.Time `gorm:"column:date_of_birth"`
	MobileNumber         *string    `gorm:"column:mobile_number;size:20"`
	CommunicationAddress *string    `gorm:"column:communication_address;size:255"`
	LanguagesKnown       *string    `gorm:"column:languages_known;size:255"`
	GuardianName         *string    `gorm:"column:guardian_name;size:120"`
	GuardianMobile       *string    `gorm:"column:guardian_mobile;size:20"`
}

func (Student) TableName() string { return "ss_t_students" }

type TeacherSubject struct {
	ID        int64 `gorm:"column:id;primaryKey;autoIncrement"`
	TeacherID int64 `gorm:"column:teacher_id;uniqueIndex:uq_teacher_subject"`
	SubjectID int64 `gorm:"column:subject_id;uniqueIndex:uq_teacher_subject"`
}

func (TeacherSubject) TableName() string { return "ss_t_teacher_subject" }

type TeacherGradeSection struct {
	ID        int64 `gorm:"column:id;primaryKey;autoIncrement"`
	TeacherID int64 `gorm:"column:teacher_id;uniqueIndex:uq_tgs"`
	GradeID   int64 `gorm:"column:grade_id;uniqueIndex:uq_tgs"`
	SectionID int64 `gorm:"column:section_id;uniqueIndex:uq_tgs"`
}

func (TeacherGradeSection) TableName() string { return "ss_t_teacher_grade_section" }

type Timeslot struct {
	TimeslotID   int64   `gorm:"column:timeslot_id;primaryKey;autoIncrement"`
	DayOfWeek    string  `gorm:"column:day_of_week;size:12;uniqueIndex:uq_timeslot"`
	PeriodNumber int64   `gorm:"column:period_number;uniqueIndex:uq_timeslot"`
	StartTime    *string `gorm:"column:start_time;size:8"`
	EndTime      *string `gorm:"column:end_time;size:8"`
}

func (Timeslot) TableName() string { return "ss_t_timeslots" }

// TimetableEntry has nullable subject and teacher references: free and lunch
// periods carry neither.
type TimetableEntry struct {
	TimetableID int64   `gorm:"column:timetable_id;primaryKey;autoIncrement"`
	GradeID     int64   `gorm:"column:grade_id;uniqueIndex:uq_timetable"`
	SectionID   int64   `gorm:"column:section_id;uniqueIndex:uq_timetable"`
	TimeslotID  int64   `gorm:"column:timeslot_id;uniqueIndex:uq_timetable"`
	SubjectID   *int64  `gorm:"column:subject_id"`
	TeacherID   *int64  `gorm:"column:teacher_id"`
	RoomNumber  *string `gorm:"column:room_number;size:20"`
	IsActive    bool    `gorm:"column:is_active"`
}

func (TimetableEntry) TableName() string { return "ss_t_timetable" }

type AttendanceRecord struct {
	AttendanceID   int64     `gorm:"column:attendance_id;primaryKey;autoIncrement"`
	StudentID      int64     `gorm:"column:student_id;uniqueIndex:uq_attendance"`
	AttendanceDate time.Time `gorm:"column:attendance_date;uniqueIndex:uq_attendance"`
	Status         string    `gorm:"column:status;size:12"`
}

func (AttendanceRecord) TableName() string { return "ss_t_attendance" }

type Homework struct {
	HomeworkID   int64      `gorm:"column:homework_id;primaryKey;autoIncrement"`
	TeacherID    int64      `gorm:"column:teacher_id"`
	GradeID      int64      `gorm:"column:grade_id"`
	SectionID    int64      `gorm:"column:section_id"`
	SubjectID    int64      `gorm:"column:subject_id"`
	Title        string     `gorm:"column:title;size:200"`
	MoreDetails  *string    `gorm:"column:more_details;size:1000"`
	AssignedDate time.Time  `gorm:"column:assigned_date"`
	DueDate      *time.Time `gorm:"column:due_date"`
	Status       *string    `gorm:"column:status;size:20"`
}

func (Homework) TableName() string { return "ss_t_homework_details" }

type ClassDiaryEntry struct {
	DiaryID     int64     `gorm:"column:diary_id;primaryKey;autoIncrement"`
	TeacherID   int64     `gorm:"column:teacher_id"`
	GradeID     int64     `gorm:"column:grade_id"`
	SectionID   int64     `gorm:"column:section_id"`
	SubjectID   int64     `gorm:"column:subject_id"`
	EntryDate   time.Time `gorm:"column:entry_date"`
	Title       string    `gorm:"column:title;size:200"`
	Description *string   `gorm:"column:description;size:1000"`
}

func (ClassDiaryEntry) TableName() string { return "ss_t_class_diary" }

type FeesSummary struct {
	FeeID      int64            `gorm:"column:fee_id;primaryKey;autoIncrement"`
	StudentID  int64            `gorm:"column:student_id;uniqueIndex"`
	TotalFee   *decimal.Decimal `gorm:"column:total_fee;type:decimal(12,2)"`
	Concession *decimal.Decimal `gorm:"column:concession;type:decimal(12,2)"`
	NetPayable *decimal.Decimal `gorm:"column:net_payable;type:decimal(12,2)"`
	AmountPaid *decimal.Decimal `gorm:"column:amount_paid;type:decimal(12,2)"`
}

func (FeesSummary) TableName() string { return "ss_t_fees_summary" }

type Installment struct {
	InstallmentID int64            `gorm:"column:installment_id;primaryKey;autoIncrement"`
	FeeID         int64            `gorm:"column:fee_id;uniqueIndex:uq_installment"`
	InstallmentNo int64            `gorm:"column:installment_no;uniqueIndex:uq_installment"`
	Amount        *decimal.Decimal `gorm:"column:amount;type:decimal(12,2)"`
	DueDate       *time.Time       `gorm:"column:due_date"`
	PaidDate      *time.Time       `gorm:"column:paid_date"`
	PaidStatus    *string          `gorm:"column:paid_status;size:12"`
}

func (Installment) TableName() string { return "ss_t_installments" }

type SalaryStructure struct {
	StructureID int64            `gorm:"column:structure_id;primaryKey;autoIncrement"`
	TeacherID   int64            `gorm:"column:teacher_id;uniqueIndex"`
	BasicPay    *decimal.Decimal `gorm:"column:basic_pay;type:decimal(12,2)"`
	Allowances  *decimal.Decimal `gorm:"column:allowances;type:decimal(12,2)"`
	Deductions  *decimal.Decimal `gorm:"column:deductions;type:decimal(12,2)"`
}

func (SalaryStructure) TableName() string { return "ss_t_teacher_salary_structure" }

type Payslip struct {
	PayslipID  int64            `gorm:"column:payslip_id;primaryKey;autoIncrement"`
	TeacherID  int64            `gorm:"column:teacher_id;uniqueIndex:uq_payslip"`
	Year       int64            `gorm:"column:year;uniqueIndex:uq_payslip"`
	Month      int64            `gorm:"column:month;uniqueIndex:uq_payslip"`
	BasicPay   *decimal.Decimal `gorm:"column:basic_pay;type:decimal(12,2)"`
	Allowances *decimal.Decimal `gorm:"column:allowances;type:decimal(12,2)"`
	Deductions *decimal.Decimal `gorm:"column:deductions;type:decimal(12,2)"`
	NetPay     *decimal.Decimal `gorm:"column:net_pay;type:decimal(12,2)"`
}

func (Payslip) TableName() string { return "ss_t_teacher_salary_payslip" }

// All lists every table model in dependency order, for migrations in test
// setups and tooling.
func All() []any {
	return []any{
		&School{}, &Grade{}, &Section{}, &Subject{}, &Teacher{}, &Student{},
		&TeacherSubject{}, &TeacherGradeSection{}, &Timeslot{},
		&TimetableEntry{}, &AttendanceRecord{}, &Homework{},
		&ClassDiaryEntry{}, &FeesSummary{}, &Installment{},
		&SalaryStructure{}, &Payslip{},
	}
}

// Migrate creates the onboarding tables. The production schema is managed
// externally; this exists for test databases and local scratch setups.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
