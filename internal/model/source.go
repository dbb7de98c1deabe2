// Package model defines the data structures shared by the checker layers.
package model

// Path represents a file system path.
type Path string

// Pair is one opener/closer entry of a syntax file.
type Pair struct {
	Opener string `json:"opener" yaml:"opener"`
	Closer string `json:"closer" yaml:"closer"`
}

// SyntaxConfig is the decoded content of a syntax file.
type SyntaxConfig struct {
	// Pairs maps each opening keyword to its closing keyword.
	Pairs map[string]string `json:"pairs" yaml:"pairs" toml:"pairs"`
}
