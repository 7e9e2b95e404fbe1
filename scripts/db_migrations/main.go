package main

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	logging.SetupLogging()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("db.Ping")
		return
	}

	if err := storage.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("storage.Migrate")
		return
	}
}
