package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agrotrack/internal/logger"
	"agrotrack/internal/repository"
	"agrotrack/internal/repository/db"
	"agrotrack/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultWatcherTick = 1 * time.Hour

func main() {
	// .env overlay is optional; absence is not an error
	_ = godotenv.Load()

	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// wire dependencies
	repos := repository.NewRepository(conn)
	engine, err := service.NewService(ctx, repos, log, service.Options{
		AlertThresholdHours: viper.GetFloat64("alerts.threshold_hours"),
	})
	if err != nil {
		log.Fatalw("failed to load farm aggregate", "err", err)
	}

	go engine.Run(ctx, watcherTick())

	log.Infow("engine running", "tick", watcherTick().String())
	waitForShutdown(cancel, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetEnvPrefix("agrotrack")
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "agrotrack.db")
		dbPath = "agrotrack.db"
	}
	return db.InitDB(dbPath)
}

func watcherTick() time.Duration {
	if secs := viper.GetInt("watcher.tick_seconds"); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultWatcherTick
}

// waitForShutdown blocks on termination signals and stops the watcher loop.
func waitForShutdown(cancel context.CancelFunc, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down...")
	cancel()
}
