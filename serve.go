package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/net/netutil"

	"github.com/delta/pon-sentimen-dashboard/classifier"
	"github.com/delta/pon-sentimen-dashboard/httpapi"
	"github.com/delta/pon-sentimen-dashboard/models"
	"github.com/delta/pon-sentimen-dashboard/session"
	"github.com/delta/pon-sentimen-dashboard/socketapi"
	"github.com/delta/pon-sentimen-dashboard/utils"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard, the prediction page and the JSON API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	config := utils.GetConfiguration()
	l := utils.Logger.WithFields(logrus.Fields{
		"module": "main",
		"method": "runServe",
	})

	if err := models.Migrate(); err != nil {
		return err
	}
	defer utils.CloseDB()

	// A missing dataset or model is reported per request with 503
	if _, err := models.LoadDataset(); err != nil {
		l.Errorf("Dataset not loaded: %+v", err)
	}
	if err := classifier.Init(config); err != nil {
		l.Errorf("Model not loaded: %+v", err)
	}

	if err := session.Init(config); err != nil {
		return err
	}
	socketapi.Init(config)
	httpapi.Init(config)

	listener, err := net.Listen("tcp", config.ServerPort)
	if err != nil {
		return err
	}
	if config.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, config.MaxConnections)
	}

	server := &http.Server{
		Handler:           httpapi.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		l.Infof("Serving on %s (stage %s, max connections %d)", config.ServerPort, config.Stage, config.MaxConnections)
		errs <- server.Serve(listener)
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	l.Infof("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Errorf("Failed to shut down cleanly: %+v", err)
		return err
	}

	l.Infof("Server stopped")
	return nil
}
