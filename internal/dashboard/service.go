package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/latency"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/logger"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/store"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/school"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

const kpisDelay = 250 * time.Millisecond

// KPIs 运营看板的汇总指标。
type KPIs struct {
	ActiveStudents    int   `json:"activeStudents"`
	ActiveInstructors int   `json:"activeInstructors"`
	AvailableVehicles int   `json:"availableVehicles"`
	ClassesToday      int   `json:"classesToday"`
	Revenue           int64 `json:"revenue"`
}

// Service 只读聚合，无自身状态；每次调用都基于 store 的最新快照，
// 不缓存、无副作用。
type Service struct {
	st  *store.Store
	log logger.Logger
}

func NewService(st *store.Store, log logger.Logger) *Service {
	return &Service{st: st, log: log}
}

// Kpis 读取五个集合并汇总计数/求和。
func (s *Service) Kpis(ctx context.Context) (*KPIs, error) {
	if s == nil || s.st == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	span, ctx := opentracing.StartSpanFromContext(ctx, "dashboard.Kpis")
	ext.Component.Set(span, "localstore")
	defer span.Finish()

	if err := latency.Wait(ctx, kpisDelay); err != nil {
		return nil, err
	}

	students, err := readList[school.Student](ctx, s.st, store.KeyStudents)
	if err != nil {
		return nil, err
	}
	instructors, err := readList[school.Instructor](ctx, s.st, store.KeyInstructors)
	if err != nil {
		return nil, err
	}
	vehicles, err := readList[school.Vehicle](ctx, s.st, store.KeyVehicles)
	if err != nil {
		return nil, err
	}
	schedules, err := readList[school.ClassSchedule](ctx, s.st, store.KeySchedules)
	if err != nil {
		return nil, err
	}
	payments, err := readList[school.Payment](ctx, s.st, store.KeyPayments)
	if err != nil {
		return nil, err
	}

	k := &KPIs{}
	for _, st := range students {
		if st.Status == school.StudentActive {
			k.ActiveStudents++
		}
	}
	for _, in := range instructors {
		if in.Status == school.InstructorActive {
			k.ActiveInstructors++
		}
	}
	for _, v := range vehicles {
		if v.Status == school.VehicleAvailable {
			k.AvailableVehicles++
		}
	}
	now := time.Now()
	for _, c := range schedules {
		if sameLocalDay(c.StartTime, now) {
			k.ClassesToday++
		}
	}
	for _, p := range payments {
		if p.Status == school.PaymentCompleted {
			k.Revenue += p.Amount
		}
	}

	if s.log != nil {
		s.log.WithFields(map[string]interface{}{
			"activeStudents":    k.ActiveStudents,
			"activeInstructors": k.ActiveInstructors,
			"availableVehicles": k.AvailableVehicles,
			"classesToday":      k.ClassesToday,
			"revenue":           k.Revenue,
		}).Debug("kpis computed")
	}
	return k, nil
}

// sameLocalDay 本地时区下是否为同一个自然日（年/月/日相同）。
func sameLocalDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}

func readList[T any](ctx context.Context, st *store.Store, key string) ([]T, error) {
	raw, err := st.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return items, nil
}
