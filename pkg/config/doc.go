// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct-tag parsing:
//
//   - Load parses the process environment and caches the result per type, so
//     every caller of Load for the same struct sees the same value.
//   - MustLoad panics instead of returning an error.
//   - Parse decodes from an explicit map and skips the cache, which keeps
//     commands testable without touching the process environment.
//   - LoadEnv loads additional .env files. Existing variables win.
//   - ResetCache clears cached values between tests.
//
// # Usage
//
//	type Config struct {
//	    AppEnv   string  `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string  `env:"LOG_LEVEL" envDefault:"info"`
//	    Issuer   brn.BRN `env:"ISSUER_BRN"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Field types implementing encoding.TextUnmarshaler, such as brn.BRN and
// brn.NullBRN, are decoded through UnmarshalText. Their errors stay in the
// chain next to ErrParsingConfig.
//
// # Error Handling
//
//   - ErrParsingConfig: the environment could not be decoded into the struct.
//   - ErrConfigNotLoaded: the cache lost the value between parse and read.
//   - ErrNilPointer: a nil pointer was passed to Load or Parse.
//   - ErrLoadingEnvFile: LoadEnv could not read a file.
package config
