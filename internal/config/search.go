package config

import (
	"errors"
	"fmt"
	"os"
)

// CaseInsensitiveEnv enables case-insensitive matching when set to any value,
// including the empty string. A fourth positional argument overrides it.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// ErrInsufficientArguments is returned when the query or filename is missing.
var ErrInsufficientArguments = errors.New("not enough arguments")

// SearchConfig holds the parameters of a single search run.
type SearchConfig struct {
	Query           string
	Filename        string
	CaseInsensitive bool
}

// BuildSearchConfig assembles a SearchConfig from positional arguments, where
// args[0] is the program name. lookupEnv has the signature of os.LookupEnv.
//
// When args[3] is present it decides case sensitivity on its own, and only the
// exact string "true" enables case-insensitive matching ("TRUE" and "1" do not).
func BuildSearchConfig(args []string, lookupEnv func(string) (string, bool)) (*SearchConfig, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("%w: got %d, need a query and a filename", ErrInsufficientArguments, max(len(args)-1, 0))
	}

	cfg := &SearchConfig{
		Query:    args[1],
		Filename: args[2],
	}

	if len(args) > 3 {
		cfg.CaseInsensitive = args[3] == "true"
	} else {
		_, cfg.CaseInsensitive = lookupEnv(CaseInsensitiveEnv)
	}

	return cfg, nil
}

// SearchConfigFromOS is BuildSearchConfig against the process environment.
func SearchConfigFromOS(args []string) (*SearchConfig, error) {
	return BuildSearchConfig(args, os.LookupEnv)
}
