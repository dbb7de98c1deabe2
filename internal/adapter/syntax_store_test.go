package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

func TestLocalSyntaxStore_Load(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contents string
		want     map[string]string
	}{
		{
			name:     "json",
			file:     "syntax.json",
			contents: `{"pairs": {"OPDI_PARALLEL": "OPDI_END_PARALLEL", "OPDI_FOR": "OPDI_END_FOR"}}`,
			want:     map[string]string{"OPDI_PARALLEL": "OPDI_END_PARALLEL", "OPDI_FOR": "OPDI_END_FOR"},
		},
		{
			name:     "yaml",
			file:     "syntax.yaml",
			contents: "pairs:\n  BEGIN: END\n",
			want:     map[string]string{"BEGIN": "END"},
		},
		{
			name:     "toml",
			file:     "syntax.toml",
			contents: "[pairs]\nBEGIN = \"END\"\n",
			want:     map[string]string{"BEGIN": "END"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeTestFile(t, path, tt.contents)

			cfg, err := NewLocalSyntaxStore().Load(context.Background(), m.Path(path))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Pairs)
		})
	}
}

func TestLocalSyntaxStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		contents string
	}{
		{"missing pairs", "syntax.json", `{"other": {}}`},
		{"empty file", "syntax.yaml", ""},
		{"duplicate yaml key", "syntax.yaml", "pairs:\n  BEGIN: END\n  BEGIN: STOP\n"},
		{"duplicate json key", "syntax.json", `{"pairs": {"BEGIN": "END", "BEGIN": "STOP"}}`},
		{"duplicate toml key", "syntax.toml", "[pairs]\nBEGIN = \"END\"\nBEGIN = \"STOP\"\n"},
		{"malformed", "syntax.json", `{"pairs": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeTestFile(t, path, tt.contents)

			_, err := NewLocalSyntaxStore().Load(context.Background(), m.Path(path))
			require.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLocalSyntaxStore().Load(context.Background(), m.Path(filepath.Join(t.TempDir(), "none.json")))
		require.Error(t, err)
	})
}

func TestDecodeSyntax_NoPairs(t *testing.T) {
	_, err := DecodeSyntax([]byte("pairs: {}\n"), ".yaml")
	require.ErrorIs(t, err, ErrNoPairs)
}
