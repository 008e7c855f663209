package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ttpr0/go-citymap/parser"
	"github.com/ttpr0/go-citymap/routing"
	"golang.org/x/exp/slog"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var log_level string
	root := &cobra.Command{
		Use:           "citymap",
		Short:         "Plan routes that pick up a friend on the way",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return SetupLogging(cmd.ErrOrStderr(), log_level)
		},
	}
	root.PersistentFlags().StringVar(&log_level, "log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(NewServeCommand(), NewPlanCommand(), NewDumpCommand())
	return root
}

//**********************************************************
// serve
//**********************************************************

func NewServeCommand() *cobra.Command {
	var config_file string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the configured cities and serve the planning api",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := ReadConfig(config_file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("log-level") {
				if err := SetupLogging(cmd.ErrOrStderr(), config.LogLevel); err != nil {
					return err
				}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			manager, err := NewCityManager(ctx, config)
			if err != nil {
				return err
			}
			return Serve(ctx, fmt.Sprintf(":%d", config.Server.Port), NewRouter(manager))
		},
	}
	cmd.Flags().StringVar(&config_file, "config", "./config.yaml", "config file")
	return cmd
}

// Runs the server until ctx is done.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		slog.Info("listening on " + addr)
		errs <- server.ListenAndServe()
	}()
	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		slog.Info("shutting down server")
		shutdown_ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdown_ctx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

//**********************************************************
// plan
//**********************************************************

func NewPlanCommand() *cobra.Command {
	var city_file string
	var start, destination int32
	var parallel bool
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a single route for a city file or csv directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			city, err := parser.ReadCity(city_file)
			if err != nil {
				return err
			}
			g, err := city.BuildGraph()
			if err != nil {
				return err
			}
			options := []routing.PlannerOption{}
			if parallel {
				options = append(options, routing.WithParallelSweeps())
			}
			plan, err := routing.NewPlanner(g, options...).Plan(start, destination)
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(plan)
		},
	}
	cmd.Flags().StringVar(&city_file, "city", "", "city file or csv directory")
	cmd.Flags().Int32Var(&start, "start", 0, "start location")
	cmd.Flags().Int32Var(&destination, "destination", 0, "destination location")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "run both sweeps concurrently")
	cmd.MarkFlagRequired("city")
	return cmd
}

//**********************************************************
// dump
//**********************************************************

func NewDumpCommand() *cobra.Command {
	var city_file string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print adjacency and pickup annotations of a city",
		RunE: func(cmd *cobra.Command, args []string) error {
			city, err := parser.ReadCity(city_file)
			if err != nil {
				return err
			}
			g, err := city.BuildGraph()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), g.String())
			return err
		},
	}
	cmd.Flags().StringVar(&city_file, "city", "", "city file or csv directory")
	cmd.MarkFlagRequired("city")
	return cmd
}
