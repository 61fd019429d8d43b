package school

import "time"

// 学员状态
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)

// 教练状态
type InstructorStatus string

const (
	InstructorActive   InstructorStatus = "active"
	InstructorInactive InstructorStatus = "inactive"
)

// 车辆状态
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInService   VehicleStatus = "in-service"
	VehicleMaintenance VehicleStatus = "maintenance"
)

// 考勤状态
type AttendanceStatus string

const (
	AttendanceAttended AttendanceStatus = "attended"
	AttendanceMissed   AttendanceStatus = "missed"
	AttendancePending  AttendanceStatus = "pending"
)

// 缴费状态
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// 缴费方式
type PaymentMethod string

const (
	MethodCard PaymentMethod = "card"
	MethodCash PaymentMethod = "cash"
	MethodBank PaymentMethod = "bank"
)

// 课程状态
type ScheduleStatus string

const (
	ScheduleScheduled ScheduleStatus = "scheduled"
	ScheduleCompleted ScheduleStatus = "completed"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// Audience 通知面向的角色（比用户角色多一个 all）。
type Audience string

const (
	AudienceAdmin      Audience = "admin"
	AudienceInstructor Audience = "instructor"
	AudienceStudent    Audience = "student"
	AudienceAll        Audience = "all"
)

// Student 学员档案。
// 实体间引用（如 AssignedInstructorID）只是提示性字符串，不做外键校验，
// 由展示层自行按 id 反查。
type Student struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Email                string        `json:"email"`
	Phone                string        `json:"phone"`
	PackageName          string        `json:"packageName"`
	TotalSessions        int           `json:"totalSessions"`
	CompletedSessions    int           `json:"completedSessions"` // 预期 <= TotalSessions，未强制
	AssignedInstructorID string        `json:"assignedInstructorId,omitempty"`
	Status               StudentStatus `json:"status"`
	CreatedAt            time.Time     `json:"createdAt"`
}

func (s *Student) EntityID() string      { return s.ID }
func (s *Student) SetEntityID(id string) { s.ID = id }

// Instructor 教练档案。
type Instructor struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Status          InstructorStatus `json:"status"`
	AssignedClasses int              `json:"assignedClasses"`
	CreatedAt       time.Time        `json:"createdAt"`
}

func (i *Instructor) EntityID() string      { return i.ID }
func (i *Instructor) SetEntityID(id string) { i.ID = id }

// Vehicle 教练车。
type Vehicle struct {
	ID                   string        `json:"id"`
	Model                string        `json:"model"`
	PlateNumber          string        `json:"plateNumber"`
	Capacity             int           `json:"capacity"`
	AssignedInstructorID string        `json:"assignedInstructorId,omitempty"`
	Status               VehicleStatus `json:"status"`
	CreatedAt            time.Time     `json:"createdAt"`
}

func (v *Vehicle) EntityID() string      { return v.ID }
func (v *Vehicle) SetEntityID(id string) { v.ID = id }

// AttendanceRecord 单次课程的考勤记录。
type AttendanceRecord struct {
	ID           string           `json:"id"`
	StudentID    string           `json:"studentId"`
	InstructorID string           `json:"instructorId"`
	ClassID      string           `json:"classId"`
	Timestamp    time.Time        `json:"timestamp"`
	Status       AttendanceStatus `json:"status"`
}

func (a *AttendanceRecord) EntityID() string      { return a.ID }
func (a *AttendanceRecord) SetEntityID(id string) { a.ID = id }

// Payment 缴费记录（金额为非负整数单位）。
type Payment struct {
	ID        string        `json:"id"`
	StudentID string        `json:"studentId"`
	Amount    int64         `json:"amount"`
	Status    PaymentStatus `json:"status"`
	Method    PaymentMethod `json:"method"`
	Timestamp time.Time     `json:"timestamp"`
	Notes     string        `json:"notes,omitempty"`
}

func (p *Payment) EntityID() string      { return p.ID }
func (p *Payment) SetEntityID(id string) { p.ID = id }

// ClassSchedule 排课记录。预期 EndTime > StartTime，未强制。
type ClassSchedule struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	StudentID    string         `json:"studentId"`
	InstructorID string         `json:"instructorId"`
	VehicleID    string         `json:"vehicleId,omitempty"`
	StartTime    time.Time      `json:"startTime"`
	EndTime      time.Time      `json:"endTime"`
	Location     string         `json:"location"`
	Status       ScheduleStatus `json:"status"`
}

func (c *ClassSchedule) EntityID() string      { return c.ID }
func (c *ClassSchedule) SetEntityID(id string) { c.ID = id }

// NotificationItem 面向某类角色（或全员）的站内通知。
type NotificationItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Role      Audience  `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

func (n *NotificationItem) EntityID() string      { return n.ID }
func (n *NotificationItem) SetEntityID(id string) { n.ID = id }
