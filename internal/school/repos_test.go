package school

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/store"
)

func newTestRepos(t *testing.T) (*Repos, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "school.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := EnsureCollections(context.Background(), st); err != nil {
		t.Fatalf("EnsureCollections: %v", err)
	}
	return NewRepos(st, nil), st
}

func TestEnsureCollectionsWritesEmptyArrays(t *testing.T) {
	_, st := newTestRepos(t)

	for _, key := range store.CollectionKeys() {
		v, err := st.Read(context.Background(), key)
		if err != nil {
			t.Fatalf("Read %s: %v", key, err)
		}
		if string(v) != "[]" {
			t.Fatalf("key %s not initialized to empty array: %q", key, v)
		}
	}
}

func TestStudentLifecycle(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	created, err := repos.Students.Create(ctx, Student{
		Name:          "Nina Novice",
		Email:         "nina@example.com",
		Phone:         "555-0101",
		PackageName:   "standard-20",
		TotalSessions: 20,
		Status:        StudentActive,
		CreatedAt:     time.Now(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done := 5
	inactive := StudentInactive
	updated, err := repos.Students.Update(ctx, created.ID, StudentPatch{
		CompletedSessions: &done,
		Status:            &inactive,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.CompletedSessions != 5 || updated.Status != StudentInactive {
		t.Fatalf("patch not applied: %+v", updated)
	}
	// 未打补丁的字段保持原值
	if updated.Name != "Nina Novice" || updated.TotalSessions != 20 {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}

	if err := repos.Students.Remove(ctx, created.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	got, err := repos.Students.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected student gone after remove")
	}
}

func TestSchedulePersistedLayout(t *testing.T) {
	repos, st := newTestRepos(t)
	ctx := context.Background()

	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	_, err := repos.Schedules.Create(ctx, ClassSchedule{
		Title:        "Parallel parking",
		StudentID:    "s-1",
		InstructorID: "i-1",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Location:     "Lot B",
		Status:       ScheduleScheduled,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	raw, err := st.Read(ctx, store.KeySchedules)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// 落盘字段名保持 camelCase 布局
	for _, want := range []string{`"startTime"`, `"endTime"`, `"studentId"`, `"instructorId"`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("persisted layout missing %s: %s", want, raw)
		}
	}
	// 可选字段缺省时不落盘
	if strings.Contains(string(raw), `"vehicleId"`) {
		t.Fatalf("empty vehicleId should be omitted: %s", raw)
	}
}

func TestNotificationMarkRead(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	created, err := repos.Notifications.Create(ctx, NotificationItem{
		Title:     "Schedule change",
		Message:   "Sunday class moved to 10:00",
		Role:      AudienceAll,
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	read := true
	updated, err := repos.Notifications.Update(ctx, created.ID, NotificationPatch{Read: &read})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Read {
		t.Fatalf("expected notification marked read")
	}
	if updated.Title != "Schedule change" {
		t.Fatalf("title lost on patch: %s", updated.Title)
	}
}
