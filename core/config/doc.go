// Package config provides configuration management for the launcher.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file in the user configuration directory (see Dir), outside the
// served tree. Every key is prefixed with LAUNCHER, so log.level is read from
// LAUNCHER_LOG_LEVEL.
//
// Only ambient settings live here. The port and the serving root are fixed by
// the server package and the executable location respectively.
//
// # Usage
//
//	dir, _ := config.Dir()
//	cfg, err := config.LoadConfig(dir)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Log.Level)
package config
