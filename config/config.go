package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/backtester/strategies"
	"gopkg.in/yaml.v3"
)

// Config represents a complete backtest run configuration
type Config struct {
	Data       DataConfig       `json:"data" yaml:"data"`
	Backtest   BacktestConfig   `json:"backtest" yaml:"backtest"`
	Strategies []StrategyConfig `json:"strategies" yaml:"strategies"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// DataConfig says where candles come from
type DataConfig struct {
	Source   string `json:"source" yaml:"source"` // "binance" or "csv"
	Symbol   string `json:"symbol" yaml:"symbol"`
	Interval string `json:"interval,omitempty" yaml:"interval,omitempty"`
	Limit    int    `json:"limit,omitempty" yaml:"limit,omitempty"`
	CSVPath  string `json:"csv_path,omitempty" yaml:"csv_path,omitempty"`
}

// BacktestConfig contains engine parameters
type BacktestConfig struct {
	PositionSize float64 `json:"position_size" yaml:"position_size"`
}

// StrategyConfig names one strategy to run plus its optional parameters.
// When the parameter block is nil the strategy defaults apply.
type StrategyConfig struct {
	Name   string                   `json:"name" yaml:"name"`
	MACD   *strategies.MACDConfig   `json:"macd,omitempty" yaml:"macd,omitempty"`
	RSIEMA *strategies.RSIEMAConfig `json:"rsi_ema,omitempty" yaml:"rsi_ema,omitempty"`
}

// Build constructs the configured strategy.
func (sc StrategyConfig) Build() (strategies.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(sc.Name)) {
	case "macd", "macd-cross":
		if sc.MACD != nil {
			return strategies.NewMACD(sc.MACD), nil
		}
		return strategies.NewMACD(strategies.MACDConfigDefaults()), nil

	case "rsi-ema", "rsiema":
		if sc.RSIEMA != nil {
			return strategies.NewRSIEMA(sc.RSIEMA), nil
		}
		return strategies.NewRSIEMA(strategies.RSIEMAConfigDefaults()), nil

	default:
		return strategies.ByName(sc.Name)
	}
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	RunsFile   string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Data.Source {
	case "binance":
		if c.Data.Symbol == "" {
			return fmt.Errorf("data.symbol is required for binance source")
		}
	case "csv":
		if c.Data.CSVPath == "" {
			return fmt.Errorf("data.csv_path is required for csv source")
		}
	default:
		return fmt.Errorf("data.source must be 'binance' or 'csv'")
	}

	if c.Backtest.PositionSize < 0 {
		return fmt.Errorf("backtest.position_size must not be negative")
	}

	if len(c.Strategies) == 0 {
		return fmt.Errorf("at least one strategy is required")
	}
	for i, sc := range c.Strategies {
		if _, err := sc.Build(); err != nil {
			return fmt.Errorf("strategies[%d]: %w", i, err)
		}
	}

	switch c.Journal.Type {
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.RunsFile == "" {
			return fmt.Errorf("journal trades_file and runs_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	case "none", "":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Source:   "binance",
			Symbol:   "BTCUSDT",
			Interval: "1m",
			Limit:    1000,
		},
		Backtest: BacktestConfig{
			PositionSize: 1.0,
		},
		Strategies: []StrategyConfig{
			{Name: "macd"},
			{Name: "rsi-ema"},
		},
		Journal: JournalConfig{
			Type:       "csv",
			TradesFile: "./trades.csv",
			RunsFile:   "./runs.csv",
		},
	}
}
