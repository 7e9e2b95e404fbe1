package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	OperatorWorkers int

	AMQPURL      string
	AMQPExchange string

	LogLevel logrus.Level
}

// ProcessEnvironmentVariables reads the configuration from the environment,
// after loading a .env file from the working directory when one exists.
func ProcessEnvironmentVariables() (*Config, error) {
	// Variables already present in the environment win over the .env file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		OperatorWorkers:  1,
		AMQPExchange:     "finance-tracker",
		LogLevel:         logrus.InfoLevel,
	}

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.HTTPPort, "HTTP_PORT")
	overrideString(&env.AMQPURL, "AMQP_URL")
	overrideString(&env.AMQPExchange, "AMQP_EXCHANGE")

	if workers := os.Getenv("OPERATOR_WORKERS"); len(workers) != 0 {
		n, err := strconv.Atoi(workers)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: must be a positive integer", workers)
		}
		env.OperatorWorkers = n
	}

	if level := os.Getenv("LOG_LEVEL"); len(level) != 0 {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		env.LogLevel = parsed
	}

	if port, err := strconv.Atoi(env.HTTPPort); err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid HTTP_PORT %q: must be between 1 and 65535", env.HTTPPort)
	}

	if len(env.AMQPURL) != 0 {
		parsed, err := url.Parse(env.AMQPURL)
		if err != nil || (parsed.Scheme != "amqp" && parsed.Scheme != "amqps") {
			return nil, fmt.Errorf("invalid AMQP_URL: scheme must be amqp or amqps")
		}
		if len(env.AMQPExchange) == 0 {
			return nil, fmt.Errorf("AMQP_EXCHANGE cannot be empty when AMQP_URL is set")
		}
	}

	return &env, nil
}

// PostgresDSN returns the lib/pq connection URL.
func (c *Config) PostgresDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}
