package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MinecraftItemIcon_Go/internal/database"
)

// Stopper is the part of the HTTP server needed for shutdown
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server Stopper
	DBPool database.Pool // nil with the embedded catalogue
}

// GracefulShutdown stops the HTTP server, letting in-flight requests finish,
// and then closes the database pool. Errors are logged and do not stop the
// sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
