package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/Vizzilnt/Protracker1/internal/auth"
	"github.com/Vizzilnt/Protracker1/internal/email"
	"github.com/Vizzilnt/Protracker1/internal/logger"
	"github.com/Vizzilnt/Protracker1/internal/service"
	"github.com/Vizzilnt/Protracker1/internal/store"
)

var userConfigFilePath string

func setupViper() error {
	viper.SetConfigName("protracker")
	viper.SetConfigType("yaml")

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error getting user home directory: %w", err)
		}
		if runtime.GOOS == "windows" {
			configHome = filepath.Join(homeDir, "AppData", "Roaming")
		} else {
			configHome = filepath.Join(homeDir, ".config")
		}
	}

	userConfigFilePath = filepath.Join(configHome, "protracker", "protracker.yml")
	viper.SetConfigFile(userConfigFilePath)

	if err := os.MkdirAll(filepath.Dir(userConfigFilePath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	dataHome := filepath.Join(filepath.Dir(userConfigFilePath), "data")
	viper.SetDefault("data_folder", dataHome)
	viper.SetDefault("log_development", true)
	viper.SetDefault("smtp.host", "")
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("smtp.from", "")
	viper.SetDefault("smtp.password", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			if err := viper.WriteConfigAs(userConfigFilePath); err != nil {
				return fmt.Errorf("error creating config file: %w", err)
			}
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

func newSender() email.Sender {
	host := viper.GetString("smtp.host")
	if host == "" {
		return email.LogSender{}
	}
	return email.SMTPSender{
		Host:     host,
		Port:     viper.GetInt("smtp.port"),
		From:     viper.GetString("smtp.from"),
		Password: viper.GetString("smtp.password"),
	}
}

func main() {
	if err := setupViper(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(viper.GetBool("log_development")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	storage := store.NewStorage(viper.GetString("data_folder"))
	app := &App{
		storage: storage,
		tasks:   service.NewTasks(storage),
		planner: service.NewPlanner(storage),
		auth:    auth.NewService(storage, newSender()),
	}

	if err := SetupCommands(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
