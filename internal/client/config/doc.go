// Package config loads runtime configuration for the CareerForge CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. A .env file in the working directory, if present, then environment
//     variables prefixed with CAREERFORGE_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the CareerForge API
//	-s string   path of the local state database
//	-i int      KYC poll interval (seconds)
//	-l string   log level (debug, info, warn, error)
//	-e string   directory kits are exported to
//
// # File schema
//
// Intervals use timex.Duration, so they can be strings like "4s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "https://careerforgethronos-ai.up.railway.app",
//	  "state_path": "/home/me/.config/careerforge/state.db",
//	  "poll_interval": "4s",
//	  "log_level": "info",
//	  "export_dir": "kits",
//	  "s3": {"bucket": "kits", "region": "eu-central-1"}
//	}
//
// # Environment
//
//	CAREERFORGE_API_URL, CAREERFORGE_STATE_PATH, CAREERFORGE_POLL_INTERVAL,
//	CAREERFORGE_LOG_LEVEL, CAREERFORGE_EXPORT_DIR,
//	CAREERFORGE_S3_BUCKET, CAREERFORGE_S3_PREFIX, CAREERFORGE_S3_REGION,
//	CAREERFORGE_S3_ENDPOINT, CAREERFORGE_S3_ACCESS_KEY, CAREERFORGE_S3_SECRET_KEY
package config
