// Command restore puts a stored module version back onto its live module
// and marks it current.
//
// Usage:
//
//	restore --module=5 --version=12
//
// Exit codes: 0 = success, 1 = error, 2 = unknown version.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/user"
	"time"

	"github.com/heartmarshall/moduleversion/internal/app"
	"github.com/heartmarshall/moduleversion/internal/domain"
	"github.com/heartmarshall/moduleversion/internal/service/version"
	"github.com/heartmarshall/moduleversion/pkg/ctxutil"
)

func main() {
	moduleID := flag.Int64("module", 0, "id of the live module")
	versionID := flag.Int64("version", 0, "id of the version to restore")
	list := flag.Bool("list", false, "list the versions of --module instead of restoring")
	configPath := flag.String("config", "", "path to config.yaml (default: $CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	if *moduleID <= 0 || (!*list && *versionID <= 0) {
		fmt.Fprintln(os.Stderr, "Usage: restore --module=5 --version=12")
		fmt.Fprintln(os.Stderr, "       restore --module=5 --list")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	actor := "cli"
	if u, err := user.Current(); err == nil {
		actor = "cli:" + u.Username
	}
	ctx = ctxutil.WithActor(ctx, actor)
	ctx, _ = ctxutil.EnsureRequestID(ctx)

	rt, err := app.Bootstrap(ctx, *configPath)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if *list {
		os.Exit(listVersions(ctx, rt, *moduleID))
	}
	os.Exit(restore(ctx, rt, version.RestoreInput{VersionID: *versionID, ModuleID: *moduleID}))
}

func restore(ctx context.Context, rt *app.Runtime, input version.RestoreInput) int {
	defer rt.Close()

	mod, err := rt.Service.Restore(ctx, input)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Printf("No version %d found for module %d.\n", input.VersionID, input.ModuleID)
		return 2
	case err != nil:
		rt.Logger.Error("restore failed", slog.String("error", err.Error()))
		return 1
	}

	fmt.Printf("Module %d restored to version %d (%q).\n", mod.ID, input.VersionID, mod.Title)
	return 0
}

func listVersions(ctx context.Context, rt *app.Runtime, moduleID int64) int {
	defer rt.Close()

	versions, err := rt.Service.ListVersions(ctx, moduleID)
	if err != nil {
		rt.Logger.Error("list versions failed", slog.String("error", err.Error()))
		return 1
	}
	if len(versions) == 0 {
		fmt.Printf("Module %d has no versions.\n", moduleID)
		return 0
	}

	for _, v := range versions {
		marker := " "
		if v.Current {
			marker = "*"
		}
		fmt.Printf("%s %6d  %s  %s\n", marker, v.ID, v.ChangedAt.Format(time.DateTime), v.Title)
	}
	return 0
}
