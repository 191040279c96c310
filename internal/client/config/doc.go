// Package config loads runtime configuration for the gophsocial client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config (see parseJson).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Every key is optional. Delays accept "1500ms" style strings or integer
// nanoseconds:
//
//	{
//	  "storage_backend": "redis",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_prefix": "gophsocial:",
//	  "login_delay": "1s",
//	  "register_delay": "1500ms",
//	  "post_delay": "1s",
//	  "feed_delay": "500ms",
//	  "demo_user_name": "Amr Mahmoud",
//	  "log_level": "debug"
//	}
//
// The package does not read environment variables.
package config
