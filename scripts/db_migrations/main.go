package main

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/shared-ledger/internal/config"
	"github.com/carson-networks/shared-ledger/internal/logging"
	"github.com/carson-networks/shared-ledger/migrations"
)

func main() {
	logging.SetupLogging()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	result, err := migrations.Up(db)
	if err != nil {
		logrus.WithError(err).Fatal("migrations.Up")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")
}
