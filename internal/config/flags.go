package config

import (
	"flag"
	"os"
)

// ParseFlags reads the command-line flags of the client binary and returns
// them as a *StructuredConfig suitable for merging with other sources.
//
// Supported flags:
//
//	-a  game-server base URL (default https://lichess.org)
//	-t  personal access token
//	-r  request timeout for non-streaming calls
//	-p  poll interval of the watch screen
//	-n  number of ongoing games fetched per refresh
//	-l  log level (debug, info, warn, error)
//	-c  path to a JSON configuration file
//
// Unknown flags terminate the process with a usage message, matching the
// behaviour of the standard flag package.
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("go-simul", flag.ExitOnError)
	fs.StringVar(&cfg.API.Address, "a", "", "game-server base URL")
	fs.StringVar(&cfg.API.Token, "t", "", "personal access token")
	fs.DurationVar(&cfg.API.RequestTimeout, "r", 0, "request timeout for non-streaming calls")
	fs.DurationVar(&cfg.Watch.PollInterval, "p", 0, "poll interval of the watch screen")
	fs.IntVar(&cfg.Watch.GameCount, "n", 0, "number of ongoing games fetched per refresh")
	fs.StringVar(&cfg.Log.Level, "l", "", "log level: debug, info, warn or error")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON configuration file")

	// ExitOnError makes Parse terminate the process itself.
	_ = fs.Parse(args)

	return cfg
}
