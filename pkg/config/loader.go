package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

func loadDefaultEnv() {
	defaultEnvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
}

// Load fills v from the environment. Unlike a cache-backed loader it parses
// on every call, so values set after start-up are picked up.
func Load[T any](v *T) error {
	return LoadWithPrefix(v, "")
}

// LoadWithPrefix is Load with every env tag prefixed, e.g. "CONTACTS_".
func LoadWithPrefix[T any](v *T, prefix string) error {
	loadDefaultEnv()
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given env files into the process environment. Later
// files override earlier ones; variables already set are overridden too.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
