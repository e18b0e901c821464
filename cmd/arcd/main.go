package main

import (
	"context"
	"net/http"
	"os"

	"arctraders-backend/lib/catalog"
	"arctraders-backend/lib/configutil"
	configsqlite "arctraders-backend/lib/configutil/sqlite"
	"arctraders-backend/lib/serviceutil"
	"arctraders-backend/lib/telemetry"
	"arctraders-backend/services/trades"
	tradesdb "arctraders-backend/services/trades/db"
	"arctraders-backend/services/trades/server"
)

type Config struct {
	Port     int                 `json:"port"`
	Database configsqlite.Struct `json:"database"`
	Catalog  string              `json:"catalog"`
	Trades   trades.Options      `json:"trades"`
}

func main() {
	telemetry.InitSlog(os.Getenv("VERBOSE") != "")
	ctx := serviceutil.SignalContext()

	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	if config.Port == 0 {
		config.Port = 8458
	}

	db, err := config.Database.OpenDB(tradesdb.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}

	store, err := catalog.Load(config.Catalog)
	if err != nil {
		serviceutil.Fatal("failed to load catalog", err)
	}

	err = telemetry.SetupFromEnv(ctx, "arcd")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer telemetry.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	mux := http.NewServeMux()
	server.New(trades.NewService(db, store, config.Trades)).Register(mux)
	go serviceutil.StartHttpServer(config.Port, mux)

	<-ctx.Done()
}
