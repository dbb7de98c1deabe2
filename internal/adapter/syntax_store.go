package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

// ErrNoPairs is returned for syntax files without a pairs mapping.
var ErrNoPairs = errors.New("syntax file defines no pairs")

// SyntaxStore loads the keyword pairs a run checks for.
type SyntaxStore interface {
	Load(ctx context.Context, path m.Path) (m.SyntaxConfig, error)
}

// LocalSyntaxStore reads syntax files from disk. Files ending in .toml are
// decoded as TOML; everything else (JSON, YAML) goes through the YAML
// decoder, which accepts JSON documents as well. Both decoders reject
// duplicate keys.
type LocalSyntaxStore struct{}

// NewLocalSyntaxStore constructs a LocalSyntaxStore.
func NewLocalSyntaxStore() *LocalSyntaxStore {
	return &LocalSyntaxStore{}
}

// Load reads and decodes the syntax file at path.
func (s *LocalSyntaxStore) Load(ctx context.Context, path m.Path) (m.SyntaxConfig, error) {
	if err := ctx.Err(); err != nil {
		return m.SyntaxConfig{}, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.SyntaxConfig{}, fmt.Errorf("read syntax file: %w", err)
	}

	cfg, err := DecodeSyntax(data, strings.ToLower(filepath.Ext(string(path))))
	if err != nil {
		return m.SyntaxConfig{}, fmt.Errorf("decode syntax file %s: %w", path, err)
	}

	return cfg, nil
}

// DecodeSyntax decodes a syntax document. ext selects the format and
// includes the leading dot.
func DecodeSyntax(data []byte, ext string) (m.SyntaxConfig, error) {
	var cfg m.SyntaxConfig

	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return m.SyntaxConfig{}, err
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&cfg); err != nil {
			if errors.Is(err, io.EOF) {
				return m.SyntaxConfig{}, ErrNoPairs
			}

			return m.SyntaxConfig{}, err
		}
	}

	if len(cfg.Pairs) == 0 {
		return m.SyntaxConfig{}, ErrNoPairs
	}

	return cfg, nil
}
