package database

// Config holds configuration for the MySQL connection.
type Config struct {
	// Host is the database server hostname.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database server port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database username.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database (schema) name. For the sqlite driver this is the
	// database file path (or ":memory:").
	Name string `mapstructure:"name" default:"schooldb"`
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// DSN, when set, overrides the individual connection fields.
	DSN string `mapstructure:"dsn" default:""`
	// TimeoutSeconds is the connection and I/O timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
