package types

import "errors"

// Config holds the parameters for opening a store.
type Config struct {
	// DataDir is the directory holding the backing document. Created on
	// first use if absent.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// ErrDataDirEmpty is returned by Validate when no data directory is set.
var ErrDataDirEmpty = errors.New("data dir must not be empty")

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
