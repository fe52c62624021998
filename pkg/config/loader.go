package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed value per configuration type.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// Load parses environment variables into v. Each configuration type is parsed
// once; later calls for the same type copy the cached value.
//
// The default .env file is loaded on first use if present. Variables already
// set in the process environment take precedence over the file.
//
// Types implementing encoding.TextUnmarshaler are decoded through it, so a
// brn.BRN field is validated while the configuration loads:
//
//	type IssuerConfig struct {
//		IssuerBRN brn.BRN `env:"ISSUER_BRN,required"`
//		Grouped   bool    `env:"ISSUER_GROUPED" envDefault:"true"`
//	}
//
//	var cfg IssuerConfig
//	if err := config.Load(&cfg); err != nil {
//		// errors.Is(err, config.ErrParsingConfig) and, for a bad number,
//		// errors.Is(err, brn.ErrChecksumMismatch) both hold.
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = parsingError(parseErr)
			// allow a retry once the environment is fixed
			globalCache.mu.Lock()
			delete(globalCache.onces, typeName)
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = *v
		globalCache.mu.Unlock()
	})

	if err != nil {
		return err
	}

	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse decodes v from environ instead of the process environment and
// bypasses the cache. Commands use it to keep configuration testable.
func Parse[T any](v *T, environ map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, env.Options{Environment: environ}); err != nil {
		return parsingError(err)
	}
	return nil
}

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it loads ".env".
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
	globalCache.mu.Unlock()
}

// fieldErrors exposes the causes wrapped in env.ParseError, which has no
// Unwrap method, so errors from UnmarshalText stay reachable via errors.Is.
type fieldErrors struct {
	err    error
	causes []error
}

func (e *fieldErrors) Error() string { return e.err.Error() }

func (e *fieldErrors) Unwrap() []error {
	return append([]error{e.err}, e.causes...)
}

func parsingError(err error) error {
	fe := &fieldErrors{err: err}
	var agg env.AggregateError
	if errors.As(err, &agg) {
		for _, e := range agg.Errors {
			var pe env.ParseError
			if errors.As(e, &pe) && pe.Err != nil {
				fe.causes = append(fe.causes, pe.Err)
			}
		}
	}
	return errors.Join(ErrParsingConfig, fe)
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
