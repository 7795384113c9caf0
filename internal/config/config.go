package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Telegram    Telegram
	Google      Google
	Schedule    Schedule
	ChartsDir   string `env:"CHARTS_DIR" envDefault:"charts" validate:"required"`
	Currency    string `env:"CURRENCY" envDefault:"rub."`
	Timezone    string `env:"TIMEZONE" envDefault:"Local" validate:"required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	MetricsAddr string `env:"METRICS_ADDR"`
}

type Telegram struct {
	Token   string `env:"API_TOKEN,required,notEmpty"`
	Timeout int    `env:"TIMEOUT" envDefault:"60" validate:"gt=0"`
	Debug   bool   `env:"TG_DEBUG"`
}

type Google struct {
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:"credentials.json"`
	SpreadsheetID   string `env:"SPREADSHEET_ID"`
	SpreadsheetName string `env:"SPREADSHEET_NAME" envDefault:"FinancialRecords"`
	IncomeSheet     string `env:"INCOME_SHEET" envDefault:"Income" validate:"required"`
	ExpenseSheet    string `env:"EXPENSE_SHEET" envDefault:"Expenses" validate:"required"`
	SummarySheet    string `env:"SUMMARY_SHEET" envDefault:"Balance" validate:"required"`
}

type Schedule struct {
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5m" validate:"gt=0"`
	DailyHour       int           `env:"DAILY_HOUR" envDefault:"20" validate:"min=0,max=23"`
	WeeklyDay       string        `env:"WEEKLY_DAY" envDefault:"sunday" validate:"oneof=monday tuesday wednesday thursday friday saturday sunday"`
	WeeklyHour      int           `env:"WEEKLY_HOUR" envDefault:"20" validate:"min=0,max=23"`
	MonthlyHour     int           `env:"MONTHLY_HOUR" envDefault:"10" validate:"min=0,max=23"`
	YearlyInterval  time.Duration `env:"YEARLY_INTERVAL" envDefault:"24h" validate:"gt=0"`
	PushCooldown    time.Duration `env:"PUSH_COOLDOWN" envDefault:"60s" validate:"min=0"`
}

// Load parses the environment and validates the result. A missing bot token is an error.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config couldn't parse environment: %w", err)
	}
	cfg.Schedule.WeeklyDay = strings.ToLower(cfg.Schedule.WeeklyDay)
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config is invalid: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config couldn't load timezone %s: %w", c.Timezone, err)
	}
	return loc, nil
}

func (s *Schedule) Weekday() time.Weekday {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s.WeeklyDay) {
			return d
		}
	}
	return time.Sunday
}
