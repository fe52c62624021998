package main

// Config is read from the environment (and an optional .env file) before
// flags are parsed. Flags override it.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	Output   string `env:"BRNCHECK_OUTPUT" envDefault:"text"` // text or json
	Grouped  bool   `env:"BRNCHECK_GROUPED" envDefault:"true"`
}

const (
	outputText = "text"
	outputJSON = "json"
)
