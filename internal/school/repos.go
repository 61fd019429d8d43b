package school

import (
	"context"

	"github.com/SmartDriveSchool/SmartDriveSchool/internal/collection"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/logger"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/store"
)

// Repos 七个领域集合仓储的集中装配，共享同一个 store 实例。
type Repos struct {
	Students      *collection.Collection[Student, *Student]
	Instructors   *collection.Collection[Instructor, *Instructor]
	Vehicles      *collection.Collection[Vehicle, *Vehicle]
	Attendance    *collection.Collection[AttendanceRecord, *AttendanceRecord]
	Payments      *collection.Collection[Payment, *Payment]
	Schedules     *collection.Collection[ClassSchedule, *ClassSchedule]
	Notifications *collection.Collection[NotificationItem, *NotificationItem]
}

// NewRepos 基于一个已打开的 store 装配全部领域仓储。
func NewRepos(st *store.Store, log logger.Logger) *Repos {
	return &Repos{
		Students:      collection.New[Student, *Student](st, store.KeyStudents, log),
		Instructors:   collection.New[Instructor, *Instructor](st, store.KeyInstructors, log),
		Vehicles:      collection.New[Vehicle, *Vehicle](st, store.KeyVehicles, log),
		Attendance:    collection.New[AttendanceRecord, *AttendanceRecord](st, store.KeyAttendance, log),
		Payments:      collection.New[Payment, *Payment](st, store.KeyPayments, log),
		Schedules:     collection.New[ClassSchedule, *ClassSchedule](st, store.KeySchedules, log),
		Notifications: collection.New[NotificationItem, *NotificationItem](st, store.KeyNotifications, log),
	}
}

// EnsureCollections 显式初始化：为七个集合 key 各写入一个空数组（若缺失）。
func EnsureCollections(ctx context.Context, st *store.Store) error {
	for _, key := range store.CollectionKeys() {
		if err := st.EnsureKey(ctx, key, []byte("[]")); err != nil {
			return err
		}
	}
	return nil
}
