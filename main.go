package main

import (
	"errors"
	"log"
	"net/http"

	"itradebook/src/api"
	"itradebook/src/config"
	"itradebook/src/utils"
	aws_handler "itradebook/src/utils/aws"
	"itradebook/src/worker"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}

	if err := resolveDatabasePassword(cfg); err != nil {
		log.Println(err, "Error while resolving database credentials")
		return
	}

	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

// resolveDatabasePassword swaps the configured secret id for the actual
// credential. Passwords never live in the settings file when a secret id
// is present.
func resolveDatabasePassword(cfg *config.Config) error {
	if cfg.Databases.SQL.PasswordSecretID == "" {
		return nil
	}
	awsHandler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
	if err != nil {
		return err
	}
	password, err := awsHandler.SecretManager.GetSecretValue(cfg.Databases.SQL.PasswordSecretID)
	if err != nil {
		return err
	}
	cfg.Databases.SQL.Password = password
	return nil
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)
	logger := utils.NewLogger(logrus.InfoLevel, false, "")

	serviceType := cfg.Service.Type
	port := cfg.Service.Port
	if port == "" {
		port = "8000"
	}

	var httpServer *http.Server
	if serviceType == config.API {
		server, err := api.NewServer(cfg, logger)
		if err != nil {
			return nil, err
		}
		httpServer = api.NewHTTPServer(server, port)
	} else {
		server, err := worker.NewServer(cfg, logger)
		if err != nil {
			return nil, err
		}
		httpServer = worker.NewHTTPServer(server, port)
	}

	go func() {
		logger.WithField("port", port).Info("Starting server")

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("An error raised while setting up server")
			errC <- err
		}
	}()
	return errC, nil
}
