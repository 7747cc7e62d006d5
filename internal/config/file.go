package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// StructuredFileConfig is the on-disk layout of the optional config file.
// The same tags serve JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		HashKey       string   `json:"hash_key" yaml:"hash_key"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Redis struct {
			Address  string   `json:"address" yaml:"address"`
			Password string   `json:"password" yaml:"password"`
			DB       int      `json:"db" yaml:"db"`
			TTL      Duration `json:"ttl" yaml:"ttl"`
		} `json:"redis,omitempty" yaml:"redis,omitempty"`

		Images struct {
			MaxSide        int   `json:"max_side" yaml:"max_side"`
			MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes"`
		} `json:"images,omitempty" yaml:"images,omitempty"`

		Local struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"local,omitempty" yaml:"local,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins" yaml:"cors_origins"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval" yaml:"refresh_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a JSON or YAML config file, chosen by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
			HashKey:       f.App.HashKey,
			Version:       f.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
			Redis: Redis{
				Address:  f.Storage.Redis.Address,
				Password: f.Storage.Redis.Password,
				DB:       f.Storage.Redis.DB,
				TTL:      time.Duration(f.Storage.Redis.TTL),
			},
			Images: Images{
				MaxSide:        f.Storage.Images.MaxSide,
				MaxUploadBytes: f.Storage.Images.MaxUploadBytes,
			},
			Local: LocalDB{DSN: f.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			CORSOrigins:    f.Server.CORSOrigins,
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{RefreshInterval: time.Duration(f.Workers.RefreshInterval)},
	}
}

// Duration is a wrapper around time.Duration that unmarshals from strings
// like "1h" or "30s" in both JSON and YAML, and from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.set(v)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) set(v interface{}) error {
	switch value := v.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}
