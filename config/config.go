// Package config reads the wb configuration from the environment.
package config

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/etnz/workbook"
	"github.com/ilyakaznacheev/cleanenv"
)

// Currency is an ISO 4217 currency code, validated when read.
type Currency string

// SetValue implements cleanenv.Setter.
func (c *Currency) SetValue(s string) error {
	s = strings.ToUpper(strings.TrimSpace(s))
	if err := workbook.ValidateCurrency(s); err != nil {
		return err
	}
	*c = Currency(s)
	return nil
}

func (c Currency) String() string { return string(c) }

type Config struct {
	DataDir          string   `env:"WB_DATA_DIR" env-default:"." env-description:"directory holding the data files"`
	TasksFile        string   `env:"WB_TASKS_FILE" env-default:"tasks.json" env-description:"tasks file"`
	ContactsFile     string   `env:"WB_CONTACTS_FILE" env-default:"contacts.json" env-description:"contacts file"`
	UsersFile        string   `env:"WB_USERS_FILE" env-default:"users.json" env-description:"users file"`
	AccountsFile     string   `env:"WB_ACCOUNTS_FILE" env-default:"accounts.json" env-description:"bank accounts file"`
	TransactionsFile string   `env:"WB_TRANSACTIONS_FILE" env-default:"transactions.json" env-description:"transactions file"`
	Currency         Currency `env:"WB_CURRENCY" env-default:"EUR" env-description:"currency of new bank accounts"`
}

// Load reads the configuration from the environment, applying defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// Path resolves a file name relative to the data directory. Absolute names
// are returned unchanged.
func (c Config) Path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.DataDir, file)
}

// Usage returns a function printing the environment variables to w.
func Usage(w io.Writer) func() {
	header := "Environment variables:"
	return cleanenv.FUsage(w, &Config{}, &header)
}
