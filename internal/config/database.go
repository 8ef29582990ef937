// internal/config/database.go
package config

import "fmt"

// DSN builds the Postgres connection string. Timestamps are normalized to UTC
// so review and cache timestamps compare cleanly across instances.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}
