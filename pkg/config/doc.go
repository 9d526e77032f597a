// Package config loads environment-backed configuration structs.
//
// A .env file in the working directory is read once per process, then
// struct fields are filled from their `env` tags:
//
//	type Config struct {
//		LogLevel slog.Level       `env:"LOG_LEVEL" envDefault:"info"`
//		Policy   validator.Policy `env:"POLICY" envDefault:"harvest-all"`
//	}
//
//	var cfg Config
//	if err := config.LoadWithPrefix(&cfg, "CONTACTS_"); err != nil {
//		// handle
//	}
package config
