package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Env holds settings read from TRADECALC_* environment variables. LogLevel
// is debug|info|warn|error, LogFormat text|json and JournalType is empty
// (off), csv or sqlite.
type Env struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
	JournalType string `envconfig:"JOURNAL_TYPE" default:""`
	JournalDB   string `envconfig:"JOURNAL_DB" default:"./tradecalc.sqlite"`
	JournalCSV  string `envconfig:"JOURNAL_CSV" default:"./tradecalc.csv"`
}

// LoadEnv reads a .env file when one exists, then the environment.
func LoadEnv(files ...string) (*Env, error) {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load(files...)

	env := &Env{}
	if err := envconfig.Process("tradecalc", env); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return env, nil
}
