package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultHoursPerDay = 24

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Solver    SolverConfig    `yaml:"solver"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// SolverConfig は CP-SAT ソルバーの実行予算に関する設定です。
type SolverConfig struct {
	MaxTime    time.Duration `yaml:"-"`
	MaxTimeRaw string        `yaml:"max_time"`
	NumWorkers int           `yaml:"num_workers"`
}

// SchedulerConfig はスケジュール生成に関する設定です。
type SchedulerConfig struct {
	HoursPerDay int               `yaml:"hours_per_day"`
	Constraints ConstraintsConfig `yaml:"constraints"`
}

// ConstraintsConfig は制約グループごとの有効・無効トグルです。
// 省略されたトグルは有効として扱います。
type ConstraintsConfig struct {
	Availability        *bool `yaml:"availability"`
	WorkIndicator       *bool `yaml:"work_indicator"`
	Transition          *bool `yaml:"transition"`
	ConsecutiveDaysOff  *bool `yaml:"consecutive_days_off"`
	Hours               *bool `yaml:"hours"`
	Workload            *bool `yaml:"workload"`
	Manager             *bool `yaml:"manager"`
	OneSkillPerTimeslot *bool `yaml:"one_skill_per_timeslot"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}
	if err := c.Solver.validateAndNormalize(); err != nil {
		return err
	}
	return c.Scheduler.validateAndNormalize()
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (s *SolverConfig) validateAndNormalize() error {
	maxTime, err := parseDurationAllowEmpty(s.MaxTimeRaw)
	if err != nil {
		return fmt.Errorf("config: solver.max_time: %w", err)
	}
	if maxTime < 0 {
		return fmt.Errorf("config: solver.max_time must not be negative")
	}
	s.MaxTime = maxTime

	if s.NumWorkers < 0 {
		return fmt.Errorf("config: solver.num_workers must not be negative")
	}

	return nil
}

func (s *SchedulerConfig) validateAndNormalize() error {
	if s.HoursPerDay == 0 {
		s.HoursPerDay = defaultHoursPerDay
	}
	if s.HoursPerDay < 1 || s.HoursPerDay > 24 {
		return fmt.Errorf("config: scheduler.hours_per_day must be within [1, 24]")
	}
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// Enabled はトグル値を解決します。nil（未指定）は有効扱いです。
func Enabled(toggle *bool) bool {
	if toggle == nil {
		return true
	}
	return *toggle
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
