// Package config provides configuration management for the onboarding loader.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP upload surface settings (port, API key, upload limit)
//   - Database: MySQL connection details (or a raw DSN)
//   - Storage: S3/MinIO credentials and bucket for remote workbooks
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Name)
package config
