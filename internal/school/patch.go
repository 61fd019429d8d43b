package school

import "time"

// 每个实体一个显式补丁结构：字段全部可选（指针），
// Apply 按"补丁覆盖、其余保留"的优先级逐字段合并。

// StudentPatch Student 的部分更新。
type StudentPatch struct {
	Name                 *string
	Email                *string
	Phone                *string
	PackageName          *string
	TotalSessions        *int
	CompletedSessions    *int
	AssignedInstructorID *string
	Status               *StudentStatus
}

func (p StudentPatch) Apply(s *Student) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.PackageName != nil {
		s.PackageName = *p.PackageName
	}
	if p.TotalSessions != nil {
		s.TotalSessions = *p.TotalSessions
	}
	if p.CompletedSessions != nil {
		s.CompletedSessions = *p.CompletedSessions
	}
	if p.AssignedInstructorID != nil {
		s.AssignedInstructorID = *p.AssignedInstructorID
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}

// InstructorPatch Instructor 的部分更新。
type InstructorPatch struct {
	Name            *string
	Email           *string
	Phone           *string
	Status          *InstructorStatus
	AssignedClasses *int
}

func (p InstructorPatch) Apply(i *Instructor) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Email != nil {
		i.Email = *p.Email
	}
	if p.Phone != nil {
		i.Phone = *p.Phone
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
	if p.AssignedClasses != nil {
		i.AssignedClasses = *p.AssignedClasses
	}
}

// VehiclePatch Vehicle 的部分更新。
type VehiclePatch struct {
	Model                *string
	PlateNumber          *string
	Capacity             *int
	AssignedInstructorID *string
	Status               *VehicleStatus
}

func (p VehiclePatch) Apply(v *Vehicle) {
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.PlateNumber != nil {
		v.PlateNumber = *p.PlateNumber
	}
	if p.Capacity != nil {
		v.Capacity = *p.Capacity
	}
	if p.AssignedInstructorID != nil {
		v.AssignedInstructorID = *p.AssignedInstructorID
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
}

// AttendancePatch AttendanceRecord 的部分更新。
type AttendancePatch struct {
	StudentID    *string
	InstructorID *string
	ClassID      *string
	Timestamp    *time.Time
	Status       *AttendanceStatus
}

func (p AttendancePatch) Apply(a *AttendanceRecord) {
	if p.StudentID != nil {
		a.StudentID = *p.StudentID
	}
	if p.InstructorID != nil {
		a.InstructorID = *p.InstructorID
	}
	if p.ClassID != nil {
		a.ClassID = *p.ClassID
	}
	if p.Timestamp != nil {
		a.Timestamp = *p.Timestamp
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
}

// PaymentPatch Payment 的部分更新。
type PaymentPatch struct {
	StudentID *string
	Amount    *int64
	Status    *PaymentStatus
	Method    *PaymentMethod
	Timestamp *time.Time
	Notes     *string
}

func (p PaymentPatch) Apply(pay *Payment) {
	if p.StudentID != nil {
		pay.StudentID = *p.StudentID
	}
	if p.Amount != nil {
		pay.Amount = *p.Amount
	}
	if p.Status != nil {
		pay.Status = *p.Status
	}
	if p.Method != nil {
		pay.Method = *p.Method
	}
	if p.Timestamp != nil {
		pay.Timestamp = *p.Timestamp
	}
	if p.Notes != nil {
		pay.Notes = *p.Notes
	}
}

// SchedulePatch ClassSchedule 的部分更新。
type SchedulePatch struct {
	Title        *string
	StudentID    *string
	InstructorID *string
	VehicleID    *string
	StartTime    *time.Time
	EndTime      *time.Time
	Location     *string
	Status       *ScheduleStatus
}

func (p SchedulePatch) Apply(c *ClassSchedule) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.StudentID != nil {
		c.StudentID = *p.StudentID
	}
	if p.InstructorID != nil {
		c.InstructorID = *p.InstructorID
	}
	if p.VehicleID != nil {
		c.VehicleID = *p.VehicleID
	}
	if p.StartTime != nil {
		c.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		c.EndTime = *p.EndTime
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}

// NotificationPatch NotificationItem 的部分更新（常见用法：置已读）。
type NotificationPatch struct {
	Title     *string
	Message   *string
	Read      *bool
	Role      *Audience
	Timestamp *time.Time
}

func (p NotificationPatch) Apply(n *NotificationItem) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Message != nil {
		n.Message = *p.Message
	}
	if p.Read != nil {
		n.Read = *p.Read
	}
	if p.Role != nil {
		n.Role = *p.Role
	}
	if p.Timestamp != nil {
		n.Timestamp = *p.Timestamp
	}
}
