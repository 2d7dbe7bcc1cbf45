// Command prune re-applies the retention policy to every module whose
// history exceeds versions.max. It is intended to be invoked by an external
// cron job after the limit has been lowered or evictions have failed.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/moduleversion/internal/app"
	"github.com/heartmarshall/moduleversion/pkg/ctxutil"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: $CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	ctx = ctxutil.WithActor(ctx, "cron:prune")
	ctx, _ = ctxutil.EnsureRequestID(ctx)

	rt, err := app.Bootstrap(ctx, *configPath)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	os.Exit(run(ctx, rt))
}

func run(ctx context.Context, rt *app.Runtime) int {
	defer rt.Close()

	code := 0
	res, err := rt.Service.PruneAll(ctx)
	if err != nil {
		rt.Logger.Error("prune failed",
			slog.String("error", err.Error()),
			slog.Int("modules", res.Modules),
			slog.Int64("evicted", res.Evicted),
		)
		code = 1
	}

	if err := rt.FlushMetrics(); err != nil {
		rt.Logger.Warn("flush metrics", slog.String("error", err.Error()))
	}

	return code
}
