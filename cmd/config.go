package cmd

import "time"

// Config carries all environment-driven settings of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AmqpURL enables the RabbitMQ event publisher when non-empty;
	// otherwise events are written to the structured log.
	AmqpURL      string
	AmqpExchange string

	// StaleOrderMaxAge is how long an order may stay Pending before the
	// sweep job cancels it.
	StaleOrderMaxAge time.Duration
}
