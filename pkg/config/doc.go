// Package config loads the site configuration.
//
// Values start from Default, are overlaid by an optional YAML file and then by
// HOMEPAGE_* environment variables, where a double underscore separates
// sections:
//
//	HOMEPAGE_SERVER__ADDR=:9000
//	HOMEPAGE_LOG__LEVEL=debug
//	HOMEPAGE_LOG__SENTRY__DSN=https://key@sentry.example/1
//
// Load validates the result and wraps problems in ErrInvalid.
package config
