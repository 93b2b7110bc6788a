package config

import (
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/html"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "markup.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 8080

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultNamespace prefixes every metric name.
	DefaultNamespace = "markup"

	// DefaultMetricsPath serves the Prometheus handler.
	DefaultMetricsPath = "/metrics"

	// DefaultTracerName names the OpenTelemetry tracer.
	DefaultTracerName = "markup-preview"
)

// Config represents the complete markup.yaml configuration.
type Config struct {
	// Renderer extends the attribute rendering rules.
	Renderer RendererConfig `yaml:"renderer,omitempty"`

	// Forms contains form helper settings.
	Forms FormsConfig `yaml:"forms,omitempty"`

	// Server contains preview server settings.
	Server ServerConfig `yaml:"server,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `yaml:"metrics,omitempty"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `yaml:"tracing,omitempty"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RendererConfig lists attribute names added to the built-in sets.
type RendererConfig struct {
	// BooleanAttributes render as a bare name when true.
	BooleanAttributes []string `yaml:"booleanAttributes,omitempty"`

	// DataAttributes expand mapping values into prefix-key attributes.
	DataAttributes []string `yaml:"dataAttributes,omitempty"`
}

// FormsConfig contains form helper settings.
type FormsConfig struct {
	// MethodParam names the hidden method override input.
	MethodParam string `yaml:"methodParam,omitempty"`

	// CSRFParam names the hidden CSRF input.
	CSRFParam string `yaml:"csrfParam,omitempty"`
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `yaml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `yaml:"port,omitempty"`

	// ReadTimeout bounds reading a request (e.g., "5s").
	ReadTimeout string `yaml:"readTimeout,omitempty"`

	// ShutdownTimeout bounds graceful shutdown (e.g., "10s").
	ShutdownTimeout string `yaml:"shutdownTimeout,omitempty"`

	// MaxBodyBytes limits request documents.
	MaxBodyBytes int64 `yaml:"maxBodyBytes,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled controls the metrics middleware and endpoint.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace,omitempty"`

	// Path is the URL path of the metrics endpoint.
	Path string `yaml:"path,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled controls the tracing middleware.
	Enabled bool `yaml:"enabled,omitempty"`

	// TracerName names the tracer spans are created with.
	TracerName string `yaml:"tracerName,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level,omitempty"`

	// Format is text or json.
	Format string `yaml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads markup.yaml from the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName), os.Getenv)
}

// LoadFile reads configuration from path. ${VAR} and ${VAR:-default}
// references are replaced through getenv before parsing.
func LoadFile(path string, getenv func(string) string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("M020").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'markup serve' without --config to use the defaults")
		}
		return nil, errors.New("M020").Wrap(err)
	}

	cfg, err := Parse(interpolateEnv(data, getenv))
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes a configuration document and applies defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("M021").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that the file is valid YAML").
			Wrap(err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("M021").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("M020").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "5s"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}

	if c.Forms.MethodParam == "" {
		c.Forms.MethodParam = html.DefaultMethodParam
	}
	if c.Forms.CSRFParam == "" {
		c.Forms.CSRFParam = "_csrf"
	}

	if c.Metrics.Enabled == nil {
		enabled := true
		c.Metrics.Enabled = &enabled
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}

	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

var attributeName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		problems = append(problems, "server.port must be between 0 and 65535")
	}
	for field, value := range map[string]string{
		"server.readTimeout":     c.Server.ReadTimeout,
		"server.shutdownTimeout": c.Server.ShutdownTimeout,
	} {
		if d, err := time.ParseDuration(value); err != nil || d < 0 {
			problems = append(problems, field+" must be a duration such as \"5s\"")
		}
	}
	if c.Server.MaxBodyBytes < 0 {
		problems = append(problems, "server.maxBodyBytes must not be negative")
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}
	for _, name := range append(append([]string(nil), c.Renderer.BooleanAttributes...), c.Renderer.DataAttributes...) {
		if !attributeName.MatchString(name) {
			problems = append(problems, "renderer: invalid attribute name "+strconv.Quote(name))
		}
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		problems = append(problems, "log.level must be debug, info, warn or error")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		problems = append(problems, "log.format must be text or json")
	}

	if len(problems) == 0 {
		return nil
	}
	slices.Sort(problems)
	return errors.New("M022").WithDetail(strings.Join(problems, "; "))
}

// ServerAddress returns the host:port the preview server listens on.
func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ReadTimeout returns the parsed read timeout.
func (c *Config) ReadTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ReadTimeout)
	return d
}

// ShutdownTimeout returns the parsed shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ShutdownTimeout)
	return d
}

// MetricsEnabled reports whether metrics are collected.
func (c *Config) MetricsEnabled() bool {
	return c.Metrics.Enabled == nil || *c.Metrics.Enabled
}

// LogLevel returns the configured slog level, info when unparsable.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewRenderer builds the attribute renderer the configuration describes.
func (c *Config) NewRenderer() *html.Renderer {
	return html.NewRenderer(html.RendererConfig{
		BooleanAttributes: c.Renderer.BooleanAttributes,
		DataAttributes:    c.Renderer.DataAttributes,
	})
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the directory holding
// markup.yaml.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("M020").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the nearest markup.yaml above the working
// directory, or the defaults when there is none.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}
	return Load(root)
}

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// interpolateEnv replaces ${VAR} and ${VAR:-default}.
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		value := getenv(string(parts[1]))
		if value == "" && len(parts[2]) > 0 {
			value = string(parts[2])
		}
		return []byte(value)
	})
}
