// Package config provides configuration management for envserve.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded with godotenv). Defaults come from the
// `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: listen address, serving root, root document, browsing, source
//   - Storage: S3/MinIO credentials and bucket settings (source=s3)
//   - Log: Logging level and format
//   - Vite: values injected into the root document
//     (VITE_FIREBASE_API_KEY, VITE_FIREBASE_PROJECT_ID, VITE_FIREBASE_APP_ID)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Addr())
package config
