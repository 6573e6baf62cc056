// internal/config/constants.go
package config

const (
	AppName    = "rocketreading"
	AppVersion = "0.3.0"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	DefaultDatabaseDriver = DriverSQLite
	DefaultDatabaseURL    = "file:rocketreading.db?_foreign_keys=on"
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultSessionMode    = "co_play"
	DefaultWorld          = 1
)
