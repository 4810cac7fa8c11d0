package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		Username             string   `json:"username"`
		Password             string   `json:"password"`
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenAudience        string   `json:"token_audience"`
		TokenDuration        Duration `json:"token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Session struct {
			DSN string `json:"dsn"`
		} `json:"session,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		RateLimit       int      `json:"rate_limit"`
		RateLimitWindow Duration `json:"rate_limit_window"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		TreasuryBaseURL string   `json:"treasury_base_url"`
		ServerURL       string   `json:"server_url"`
		RequestTimeout  Duration `json:"request_timeout"`
		RetryCount      int      `json:"retry_count"`
		RetryBaseDelay  Duration `json:"retry_base_delay"`
		RetryStep       Duration `json:"retry_step"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncStartDelay          Duration `json:"sync_start_delay"`
		SyncMaxAttempts         int      `json:"sync_max_attempts"`
		SyncRetryDelay          Duration `json:"sync_retry_delay"`
		SyncPageSize            int      `json:"sync_page_size"`
		SyncAllowEmpty          bool     `json:"sync_allow_empty"`
		SessionCheckInterval    Duration `json:"session_check_interval"`
		SessionRefreshThreshold Duration `json:"session_refresh_threshold"`
	} `json:"workers,omitempty"`

	Telemetry struct {
		Enabled     bool   `json:"enabled"`
		Endpoint    string `json:"endpoint"`
		ServiceName string `json:"service_name"`
		Insecure    bool   `json:"insecure"`
	} `json:"telemetry,omitempty"`
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
			Environment: jsonCfg.App.Environment,
			Version:     jsonCfg.App.Version,
		},
		Auth: Auth{
			Username:             jsonCfg.Auth.Username,
			Password:             jsonCfg.Auth.Password,
			TokenSignKey:         jsonCfg.Auth.TokenSignKey,
			TokenIssuer:          jsonCfg.Auth.TokenIssuer,
			TokenAudience:        jsonCfg.Auth.TokenAudience,
			TokenDuration:        time.Duration(jsonCfg.Auth.TokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.Auth.RefreshTokenDuration),
		},
		Storage: Storage{
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			Session: Session{DSN: jsonCfg.Storage.Session.DSN},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:       jsonCfg.Server.RateLimit,
			RateLimitWindow: time.Duration(jsonCfg.Server.RateLimitWindow),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			TreasuryBaseURL: jsonCfg.Adapter.TreasuryBaseURL,
			ServerURL:       jsonCfg.Adapter.ServerURL,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:      jsonCfg.Adapter.RetryCount,
			RetryBaseDelay:  time.Duration(jsonCfg.Adapter.RetryBaseDelay),
			RetryStep:       time.Duration(jsonCfg.Adapter.RetryStep),
		},
		Workers: Workers{
			SyncStartDelay:          time.Duration(jsonCfg.Workers.SyncStartDelay),
			SyncMaxAttempts:         jsonCfg.Workers.SyncMaxAttempts,
			SyncRetryDelay:          time.Duration(jsonCfg.Workers.SyncRetryDelay),
			SyncPageSize:            jsonCfg.Workers.SyncPageSize,
			SyncAllowEmpty:          jsonCfg.Workers.SyncAllowEmpty,
			SessionCheckInterval:    time.Duration(jsonCfg.Workers.SessionCheckInterval),
			SessionRefreshThreshold: time.Duration(jsonCfg.Workers.SessionRefreshThreshold),
		},
		Telemetry: Telemetry{
			Enabled:     jsonCfg.Telemetry.Enabled,
			Endpoint:    jsonCfg.Telemetry.Endpoint,
			ServiceName: jsonCfg.Telemetry.ServiceName,
			Insecure:    jsonCfg.Telemetry.Insecure,
		},
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
