package api

import (
	"time"
)

type Configuration struct {
	Env                 string
	AppName             string
	AppVersion          string
	Port                string
	RequestLoggingLevel string
	DefaultTimeout      time.Duration
	CorsAllowedOrigins  []string
	EnablePrometheus    bool
}
