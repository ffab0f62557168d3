package server

// Config holds configuration for the HTTP server exposed by the serve command.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// UploadLimitMB caps the size of uploaded workbook files.
	UploadLimitMB int `mapstructure:"upload_limit_mb" default:"32"`
}
