package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*loader)

type loader struct {
	files    []string
	optional bool
	prefix   string
	environ  map[string]string
}

// WithEnvFiles reads the given .env files. Values already present in the
// process environment win over file values, matching godotenv.Load.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, files...)
	}
}

// WithOptionalEnvFiles is WithEnvFiles that silently skips missing files.
func WithOptionalEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, files...)
		l.optional = true
	}
}

// WithPrefix makes every env tag resolve as prefix+tag.
func WithPrefix(prefix string) Option {
	return func(l *loader) { l.prefix = prefix }
}

// WithEnvironment replaces the process environment with vars. Meant for tests.
func WithEnvironment(vars map[string]string) Option {
	return func(l *loader) {
		l.environ = make(map[string]string, len(vars))
		for k, v := range vars {
			l.environ[k] = v
		}
	}
}

// Load parses environment variables into v according to its `env` tags.
//
//	type Config struct {
//		APIURL string `env:"TAKAFUL_API_URL,required"`
//		Lang   string `env:"TAKAFUL_LANG" envDefault:"ar"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithOptionalEnvFiles(".env"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	vars := l.environ
	if vars == nil {
		vars = processEnv()
	}

	for _, file := range l.files {
		fileVars, err := godotenv.Read(file)
		if err != nil {
			if l.optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		for k, val := range fileVars {
			if _, set := vars[k]; !set {
				vars[k] = val
			}
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      l.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func processEnv() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		k, val, ok := strings.Cut(kv, "=")
		if ok {
			vars[k] = val
		}
	}
	return vars
}
