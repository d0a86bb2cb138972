package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultFileName         = ".env"
	defaultOverrideFileName = ".local.env"
)

// EnvLoader serves settings from the environment. Values from the files it loaded never replace
// variables that were already set when it was created.
type EnvLoader struct {
	logger logger
}

type logger interface {
	Infof(format string, a ...any)
	Debugf(format string, a ...any)
	Errorf(format string, a ...any)
}

// NewEnvFile loads <folder>/.env, then <folder>/.local.env, then <folder>/.<APP_ENV>.env, each
// overriding the previous one.
func NewEnvFile(configFolder string, logger logger) Config {
	conf := &EnvLoader{logger: logger}
	conf.read(configFolder)

	return conf
}

func (e *EnvLoader) read(folder string) {
	initialEnv := make(map[string]bool)

	for _, envVar := range os.Environ() {
		key, _, _ := strings.Cut(envVar, "=")
		initialEnv[key] = true
	}

	envMap := make(map[string]string)

	e.loadFile(filepath.Join(folder, defaultFileName), envMap)
	e.loadFile(filepath.Join(folder, defaultOverrideFileName), envMap)

	if appEnv := os.Getenv("APP_ENV"); appEnv != "" {
		e.loadFile(filepath.Join(folder, fmt.Sprintf(".%s.env", appEnv)), envMap)
	}

	for key, value := range envMap {
		if !initialEnv[key] {
			os.Setenv(key, value)
		}
	}
}

func (e *EnvLoader) loadFile(path string, envMap map[string]string) {
	content, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			e.logger.Errorf("failed to load config from file: %v, err: %v", path, err)
		}

		return
	}

	for k, v := range content {
		envMap[k] = v
	}

	e.logger.Infof("loaded config from file: %v", path)
}

func (*EnvLoader) Get(key string) string {
	return os.Getenv(key)
}

func (*EnvLoader) GetOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultValue
}
