// routes_serve.go - Server-Start und Lifecycle-Management
// Enthaelt: Serve() - Hauptfunktion zum Starten des HTTP-Servers
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/archai3d/grag/envconfig"
	"github.com/archai3d/grag/logutil"
	"github.com/archai3d/grag/preset"
	"github.com/archai3d/grag/version"
)

// Serve startet den HTTP-Server auf dem uebergebenen Listener
func Serve(ln net.Listener) error {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
	slog.Info("server config", "env", envconfig.Values())

	s := &Server{
		addr:    ln.Addr(),
		catalog: preset.Load(envconfig.Presets()),
	}

	http.Handle("/", s.GenerateRoutes())

	ctx, done := context.WithCancel(context.Background())

	slog.Info(fmt.Sprintf("Listening on %s (version %s)", ln.Addr(), version.Version))
	srvr := &http.Server{
		// http.DefaultServeMux liefert net/http/pprof gratis mit
		Handler: nil,
	}

	// Auf ctrl+c reagieren und den Server sauber schliessen
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		srvr.Close()
		done()
	}()

	err := srvr.Serve(ln)
	// Wenn der Server vom Signal-Handler geschlossen wurde, auf den Context
	// warten statt sofort mit Fehler auszusteigen
	if !slices.Contains([]error{http.ErrServerClosed}, err) {
		return err
	}
	<-ctx.Done()
	return nil
}
