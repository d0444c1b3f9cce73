// Package config provides configuration management for the demo server.
//
// Configuration is loaded from environment variables using the env
// package. Listen ports come from the optional .nsm-ports.json file
// written by the nsm tool, overlaid onto hardcoded defaults. All
// values have sensible defaults for development use.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ports, _ := config.LoadPorts(cfg.PortsFile)
//	fmt.Printf("HTTP server will listen on %s\n", ports.Addr())
package config
