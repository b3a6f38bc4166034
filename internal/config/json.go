package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Metrics struct {
		Address string `json:"address"`
	} `json:"metrics,omitempty"`

	Routes struct {
		Auth     jsonGroup `json:"auth"`
		Workouts jsonGroup `json:"workouts"`
	} `json:"routes,omitempty"`

	CORS struct {
		AllowedOrigins   []string `json:"allowed_origins"`
		AllowCredentials *bool    `json:"allow_credentials"`
		AllowedMethods   []string `json:"allowed_methods"`
		AllowedHeaders   []string `json:"allowed_headers"`
		ExposedHeaders   []string `json:"exposed_headers"`
		MaxAge           Duration `json:"max_age"`
	} `json:"cors,omitempty"`
}

type jsonGroup struct {
	Prefix   string `json:"prefix"`
	Upstream string `json:"upstream"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Metrics: Metrics{
			Address: jsonCfg.Metrics.Address,
		},
		Routes: Routes{
			Auth:     Group(jsonCfg.Routes.Auth),
			Workouts: Group(jsonCfg.Routes.Workouts),
		},
		CORS: CORS{
			AllowedOrigins:   jsonCfg.CORS.AllowedOrigins,
			AllowCredentials: jsonCfg.CORS.AllowCredentials,
			AllowedMethods:   jsonCfg.CORS.AllowedMethods,
			AllowedHeaders:   jsonCfg.CORS.AllowedHeaders,
			ExposedHeaders:   jsonCfg.CORS.ExposedHeaders,
			MaxAge:           time.Duration(jsonCfg.CORS.MaxAge),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
