// Package config loads optional file-based settings. Environment variables
// always win; the file only fills in values the environment leaves unset.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the service's environment settings in YAML form.
type File struct {
	Port        string `yaml:"port"`
	UseHttp2    bool   `yaml:"useHttp2"`
	CorsOrigins string `yaml:"corsOrigins"`
	StorageType string `yaml:"storageType"`
	DatabaseURL string `yaml:"databaseUrl"`
}

type FileLoader struct {
	reader io.Reader
}

func NewFileLoader(reader io.Reader) *FileLoader {
	return &FileLoader{
		reader: reader,
	}
}

func (fl *FileLoader) Load() (*File, error) {
	decoder := yaml.NewDecoder(fl.reader)
	var f File
	if err := decoder.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Apply exports the file's settings into the process environment, skipping
// any variable that is already set.
func (f *File) Apply() error {
	settings := map[string]string{
		"PORT":         f.Port,
		"CORS_ORIGINS": f.CorsOrigins,
		"STORAGE_TYPE": f.StorageType,
		"DATABASE_URL": f.DatabaseURL,
	}
	if f.UseHttp2 {
		settings["USE_HTTP2"] = "true"
	}

	for key, value := range settings {
		if value == "" || os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}

// ApplyFileFromEnv loads the YAML config named by CONFIG_PATH, if any, and
// applies it to the environment. A missing CONFIG_PATH is not an error.
func ApplyFileFromEnv() error {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := NewFileLoader(file).Load()
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg.Apply()
}
