package sentry

type Config struct {
	DSN     string
	Env     string
	Release string
	Level   string
}
