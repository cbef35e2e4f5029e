package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/urfave/cli/v3"
)

const (
	BackendGCS = "gcs"
	BackendS3  = "s3"
)

type Config struct {
	App
	Storage
	Warehouse
	PostgreSQL
	HTTP
}

type App struct {
	StagingDirectory string
	ReportsDirectory string
	LoadConcurrency  int
	ScanInterval     time.Duration // zero disables staging directory polling
	Schedule         string        // cron expression, empty disables
}

type Storage struct {
	Backend         string
	Bucket          string
	CredentialsFile string
	Endpoint        string
	AccessKey       string
	SecretKey       string
	UseSSL          bool
}

type Warehouse struct {
	ProjectID       string
	DatasetID       string
	Location        string
	CredentialsFile string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	credentials := cmd.String("gcp-credentials-file")

	return &Config{
		App: App{
			StagingDirectory: cmd.String("staging-dir"),
			ReportsDirectory: cmd.String("reports-dir"),
			LoadConcurrency:  int(cmd.Int("load-concurrency")),
			ScanInterval:     cmd.Duration("scan-interval"),
			Schedule:         cmd.String("schedule"),
		},
		Storage: Storage{
			Backend:         cmd.String("storage-backend"),
			Bucket:          cmd.String("bucket"),
			CredentialsFile: credentials,
			Endpoint:        cmd.String("s3-endpoint"),
			AccessKey:       cmd.String("s3-access-key"),
			SecretKey:       cmd.String("s3-secret-key"),
			UseSSL:          cmd.Bool("s3-use-ssl"),
		},
		Warehouse: Warehouse{
			ProjectID:       cmd.String("project"),
			DatasetID:       cmd.String("dataset"),
			Location:        cmd.String("location"),
			CredentialsFile: credentials,
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}

// HistoryEnabled reports whether runs are recorded in PostgreSQL. Without a host they are only logged.
func (c *Config) HistoryEnabled() bool {
	return c.PostgreSQL.Host != ""
}

type ErrInvalidField struct {
	Name   string
	Reason string
}

func (e *ErrInvalidField) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
}

// Validate checks the whole configuration once at startup and reports every problem.
func (c *Config) Validate() error {
	var errs []error

	required := []struct{ name, value string }{
		{"staging-dir", c.StagingDirectory},
		{"reports-dir", c.ReportsDirectory},
		{"bucket", c.Bucket},
		{"project", c.ProjectID},
		{"dataset", c.DatasetID},
	}
	if c.HistoryEnabled() {
		required = append(required, []struct{ name, value string }{
			{"pg-port", c.PostgreSQL.Port},
			{"pg-username", c.Username},
			{"pg-dbname", c.DBName},
		}...)
	}
	for _, req := range required {
		if req.value == "" {
			errs = append(errs, &ErrInvalidField{Name: req.name, Reason: "is required"})
		}
	}

	switch c.Backend {
	case BackendGCS:
	case BackendS3:
		if c.Endpoint == "" || c.AccessKey == "" || c.SecretKey == "" {
			errs = append(errs, &ErrInvalidField{
				Name:   "storage-backend",
				Reason: "s3 backend requires s3-endpoint, s3-access-key and s3-secret-key",
			})
		}
	default:
		errs = append(errs, &ErrInvalidField{
			Name:   "storage-backend",
			Reason: fmt.Sprintf("must be %q or %q, got %q", BackendGCS, BackendS3, c.Backend),
		})
	}

	if c.LoadConcurrency < 1 {
		errs = append(errs, &ErrInvalidField{Name: "load-concurrency", Reason: "must be at least 1"})
	}

	if c.ScanInterval < 0 {
		errs = append(errs, &ErrInvalidField{Name: "scan-interval", Reason: "must not be negative"})
	}

	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			errs = append(errs, &ErrInvalidField{Name: "schedule", Reason: err.Error()})
		}
	}

	return errors.Join(errs...)
}

// ValidateServe adds the checks only the long running service needs.
func (c *Config) ValidateServe() error {
	if !c.HistoryEnabled() {
		return &ErrInvalidField{Name: "pg-host", Reason: "is required to serve the runs api"}
	}

	return nil
}
