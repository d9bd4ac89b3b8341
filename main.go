package main

import (
	"net/http"

	"healthd/config"
	"healthd/registry"
	"healthd/sentry"
	"healthd/web"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const Name = "healthd"
const Version = "0.1.0"

func main() {
	// a .env file feeds the same environment the config defaults read from
	godotenv.Load()

	config := config.New()
	config.Sentry.Release = Version

	if err := sentry.Init(config.Sentry); err != nil {
		log.WithError(err).Fatal("Unable to initialize Sentry alerting")
	}

	if err := registry.Register(config.Registry, Name, config.Web.Listen); err != nil {
		log.WithError(err).Error("Self registration failed, serving anyway")
	}

	log.WithField("port", config.Web.Listen).Info("listening")
	log.Fatal(http.ListenAndServe(config.Web.Listen, web.NewHandler()))
}
