package store

// 持久化布局：每个实体集合一个 JSON 数组，外加一个会话快照对象。
const (
	KeyUsers         = "users"
	KeyStudents      = "students"
	KeyInstructors   = "instructors"
	KeyVehicles      = "vehicles"
	KeyAttendance    = "attendance"
	KeyPayments      = "payments"
	KeySchedules     = "schedules"
	KeyNotifications = "notifications"
	KeySession       = "session"
)

// CollectionKeys 七个领域集合的 key（不含 users / session，二者由认证侧维护）。
func CollectionKeys() []string {
	return []string{
		KeyStudents,
		KeyInstructors,
		KeyVehicles,
		KeyAttendance,
		KeyPayments,
		KeySchedules,
		KeyNotifications,
	}
}
