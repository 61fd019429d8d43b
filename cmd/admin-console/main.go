package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/config"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/logger"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/store"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/tracing"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/dashboard"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/school"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/user"
)

var (
	configPath = flag.String("config", "configs/admin-console.json", "配置文件路径")
	consulKey  = flag.String("consul-key", "", "从 Consul KV 加载配置（优先于 -config）")
)

func main() {
	flag.Parse()

	// 加载配置（文件或 Consul KV）
	var cfg *config.Config
	var err error
	if *consulKey != "" {
		base := config.GetConfig()
		cfg, err = config.LoadConfigFromConsulKV(base.Consul.Host, base.Consul.Port, *consulKey)
	} else {
		cfg, err = config.LoadConfig(*configPath)
	}
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 初始化链路追踪
	tracer, closer, err := tracing.InitTracer(
		cfg.App.Name,
		cfg.Jaeger.Endpoint,
		cfg.Jaeger.Sampler,
	)
	if err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}
	_ = tracer

	// 打开本地存储并做显式初始化（种子账号 + 空集合）
	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	if err := user.EnsureSeeds(ctx, st); err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	if err := school.EnsureCollections(ctx, st); err != nil {
		log.Fatalf("failed to init collections: %v", err)
	}

	repos := school.NewRepos(st, log)
	authSvc := user.NewService(user.NewRepo(st), cfg.Auth, log)
	dash := dashboard.NewService(st, log)

	if cur, err := authSvc.Current(ctx); err == nil && cur != nil {
		log.Infof("current session: %s (%s)", cur.Email, cur.Role)
	}

	if students, err := repos.Students.List(ctx); err == nil {
		log.Infof("students on file: %d", len(students))
	}

	k, err := dash.Kpis(ctx)
	if err != nil {
		log.Fatalf("failed to compute kpis: %v", err)
	}
	log.WithFields(map[string]interface{}{
		"activeStudents":    k.ActiveStudents,
		"activeInstructors": k.ActiveInstructors,
		"availableVehicles": k.AvailableVehicles,
		"classesToday":      k.ClassesToday,
		"revenue":           k.Revenue,
	}).Info("dashboard snapshot")
}
