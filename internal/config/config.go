// internal/config/config.go
//
// This package handles configuration and the .taskgen directory structure.
// Every project that uses the generator gets a .taskgen/ folder created in
// its root, holding the config file, logs and exported documents.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// TaskgenDir is the name of the directory we create in each project.
	TaskgenDir = ".taskgen"

	defaultServerHost     = "127.0.0.1"
	defaultServerPort     = 5000
	defaultClientTimeoutS = 10
)

const defaultProjectConfigYAML = `# taskgen project configuration
version: 1

# Generation service endpoint. The client talks to it; taskgen-server
# binds to it.
server:
  host: 127.0.0.1
  port: 5000

client:
  # Base URL override. Leave empty to derive from server host/port.
  base_url: ""
  timeout_seconds: 10

export:
  # Directory for exported markdown and PDF documents, relative to the
  # project root unless absolute.
  dir: .taskgen/exports
`

// ServerConfig holds the generation-service bind address.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ClientConfig holds the TUI's service-client settings.
type ClientConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ExportConfig holds export destinations.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// ProjectConfig models .taskgen/config.yaml.
type ProjectConfig struct {
	Version int          `yaml:"version"`
	Server  ServerConfig `yaml:"server"`
	Client  ClientConfig `yaml:"client"`
	Export  ExportConfig `yaml:"export"`
}

// Config holds the runtime configuration for the task generator.
type Config struct {
	// ProjectDir is the directory where the user ran taskgen from.
	ProjectDir string

	// TaskgenProjectDir is ProjectDir/.taskgen.
	TaskgenProjectDir string

	Project ProjectConfig
}

// InitTaskgenDir creates the .taskgen directory structure in the given
// project directory. Called on startup by both binaries.
//
// Structure created:
// .taskgen/
// ├── logs/      <- session logbook
// └── exports/   <- exported markdown / PDF documents
func InitTaskgenDir(projectDir string) error {
	taskgenDir := filepath.Join(projectDir, TaskgenDir)
	dirs := []string{
		filepath.Join(taskgenDir, "logs"),
		filepath.Join(taskgenDir, "exports"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensureProjectConfig(filepath.Join(taskgenDir, "config.yaml"))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

// NewConfig creates a Config populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:        projectDir,
		TaskgenProjectDir: filepath.Join(projectDir, TaskgenDir),
		Project:           defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.TaskgenProjectDir, "logs")
}

// ExportDir returns the directory exported documents are written to.
func (c *Config) ExportDir() string {
	dir := strings.TrimSpace(c.Project.Export.Dir)
	if dir == "" {
		dir = filepath.Join(TaskgenDir, "exports")
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.ProjectDir, dir)
}

// ProjectConfigPath returns the on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.TaskgenProjectDir, "config.yaml")
}

// ServiceBaseURL returns the generation-service URL the client should use:
// the explicit base_url when set, otherwise one derived from the server
// host and port.
func (c *Config) ServiceBaseURL() string {
	if url := strings.TrimSpace(c.Project.Client.BaseURL); url != "" {
		return strings.TrimRight(url, "/")
	}
	return fmt.Sprintf("http://%s:%d", c.Project.Server.Host, c.Project.Server.Port)
}

// ClientTimeout returns the bounded wait for service calls.
func (c *Config) ClientTimeout() time.Duration {
	return time.Duration(c.Project.Client.TimeoutSeconds) * time.Second
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Project = parsed
	return nil
}

// Save persists the current project configuration back to disk.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.MkdirAll(c.TaskgenProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure dir: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", c.ProjectConfigPath(), err)
	}
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Server:  ServerConfig{Host: defaultServerHost, Port: defaultServerPort},
		Client:  ClientConfig{TimeoutSeconds: defaultClientTimeoutS},
		Export:  ExportConfig{Dir: filepath.Join(TaskgenDir, "exports")},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Server.Host = strings.TrimSpace(pc.Server.Host)
	if pc.Server.Host == "" {
		pc.Server.Host = defaultServerHost
	}
	if pc.Server.Port <= 0 || pc.Server.Port > 65535 {
		pc.Server.Port = defaultServerPort
	}
	pc.Client.BaseURL = strings.TrimSpace(pc.Client.BaseURL)
	if pc.Client.TimeoutSeconds <= 0 {
		pc.Client.TimeoutSeconds = defaultClientTimeoutS
	}
	pc.Export.Dir = strings.TrimSpace(pc.Export.Dir)
	if pc.Export.Dir == "" {
		pc.Export.Dir = filepath.Join(TaskgenDir, "exports")
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	return nil
}
