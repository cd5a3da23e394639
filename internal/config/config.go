// Package config loads escala settings from a YAML file, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/escala-go/pkg/escala"
	"github.com/ukaji3/escala-go/pkg/escala/output"
	"github.com/ukaji3/escala-go/pkg/escala/parser"
)

type Config struct {
	Server     Server     `yaml:"server"`
	Extraction Extraction `yaml:"extraction"`
	Output     Output     `yaml:"output"`
	Log        Log        `yaml:"log"`
}

type Server struct {
	Addr string `yaml:"addr"`

	// MaxUploadMB caps the accepted workbook size.
	MaxUploadMB int64 `yaml:"max_upload_mb"`
}

type Extraction struct {
	Sheet            string `yaml:"sheet"`
	FleetPrefixes    string `yaml:"fleet_prefixes"`
	HeaderLookback   int    `yaml:"header_lookback"`
	InferNames       bool   `yaml:"infer_names"`
	DegenerateBlocks string `yaml:"degenerate_blocks"`
	LabelPrecedence  string `yaml:"label_precedence"`
	RespectPrintArea bool   `yaml:"respect_print_area"`
}

type Output struct {
	Turno      string `yaml:"turno"`
	FilePrefix string `yaml:"file_prefix"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	p := parser.DefaultBlockParams()
	return &Config{
		Server: Server{
			Addr:        ":8080",
			MaxUploadMB: 20,
		},
		Extraction: Extraction{
			FleetPrefixes:    p.FleetPrefixes,
			HeaderLookback:   p.HeaderLookback,
			InferNames:       p.InferNames,
			DegenerateBlocks: string(p.Degenerate),
			LabelPrecedence:  string(p.Precedence),
		},
		Output: Output{
			Turno:      output.TurnoNoturno,
			FilePrefix: output.FilePrefix,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads .env (if present), then the YAML file at path (if non-empty),
// then applies ESCALA_* environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.Server.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("invalid max_upload_mb %d: must be positive", cfg.Server.MaxUploadMB)
	}
	if _, err := cfg.BlockParams(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	if v := os.Getenv("ESCALA_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("ESCALA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ESCALA_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("ESCALA_SHEET"); v != "" {
		cfg.Extraction.Sheet = v
	}
	if v := os.Getenv("ESCALA_TURNO"); v != "" {
		cfg.Output.Turno = v
	}
	if v := os.Getenv("ESCALA_MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ESCALA_MAX_UPLOAD_MB %q: %w", v, err)
		}
		cfg.Server.MaxUploadMB = n
	}
	return nil
}

// BlockParams converts the extraction section into parser parameters.
func (cfg *Config) BlockParams() (parser.BlockParams, error) {
	p := parser.DefaultBlockParams()
	e := cfg.Extraction

	if e.FleetPrefixes != "" {
		p.FleetPrefixes = e.FleetPrefixes
	}
	p.HeaderLookback = e.HeaderLookback
	p.InferNames = e.InferNames
	if e.DegenerateBlocks != "" {
		p.Degenerate = parser.DegeneratePolicy(strings.ToLower(e.DegenerateBlocks))
	}
	if e.LabelPrecedence != "" {
		p.Precedence = parser.LabelPrecedence(strings.ToLower(e.LabelPrecedence))
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	if _, err := parser.NewMatchers(p.FleetPrefixes); err != nil {
		return p, err
	}
	return p, nil
}

// Options builds library options from the configuration.
func (cfg *Config) Options(logger *slog.Logger) (escala.Options, error) {
	p, err := cfg.BlockParams()
	if err != nil {
		return escala.Options{}, err
	}
	respect := cfg.Extraction.RespectPrintArea
	return escala.Options{
		Sheet:            cfg.Extraction.Sheet,
		Params:           &p,
		RespectPrintArea: &respect,
		Logger:           logger,
	}, nil
}

// Logger builds the slog logger described by the log section.
func (cfg *Config) Logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
