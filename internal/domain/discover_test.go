package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pragmacheck.dev/pkg/pragmacheck/internal/adapter"
	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

func newDiscoverWorkflow() *workflow {
	return &workflow{SourceFSAdapter: adapter.NewLocalSourceFSAdapter()}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"a.cpp",
		"b.hpp",
		"readme.md",
		"gen_c.cpp",
		filepath.Join("sub", "d.cpp"),
		filepath.Join("sub", "deeper", "e.hpp"),
		filepath.Join(".git", "f.cpp"),
	} {
		writeFile(t, filepath.Join(root, name), "")
	}

	p := func(name string) m.Path {
		return m.Path(filepath.Join(root, name))
	}

	tests := []struct {
		name string
		args CheckArgs
		want []m.Path
	}{
		{
			name: "top level only",
			args: CheckArgs{Paths: []m.Path{m.Path(root)}, Patterns: []string{"*.hpp", "*.cpp"}},
			want: []m.Path{p("a.cpp"), p("b.hpp"), p("gen_c.cpp")},
		},
		{
			name: "recursive flag",
			args: CheckArgs{Paths: []m.Path{m.Path(root)}, Patterns: []string{"*.cpp"}, Recursive: true},
			want: []m.Path{p("a.cpp"), p("gen_c.cpp"), p("sub/d.cpp")},
		},
		{
			name: "recursive suffix",
			args: CheckArgs{Paths: []m.Path{m.Path(root + "/sub/...")}, Patterns: []string{"*.hpp", "*.cpp"}},
			want: []m.Path{p("sub/d.cpp"), p("sub/deeper/e.hpp")},
		},
		{
			name: "no patterns match every file",
			args: CheckArgs{Paths: []m.Path{m.Path(root)}},
			want: []m.Path{p("a.cpp"), p("b.hpp"), p("gen_c.cpp"), p("readme.md")},
		},
		{
			name: "excludes",
			args: CheckArgs{Paths: []m.Path{m.Path(root)}, Patterns: []string{"*.cpp"}, Exclude: []string{`/gen_[^/]*$`}},
			want: []m.Path{p("a.cpp")},
		},
		{
			name: "explicit file bypasses patterns and excludes",
			args: CheckArgs{Paths: []m.Path{p("readme.md")}, Patterns: []string{"*.cpp"}, Exclude: []string{"readme"}},
			want: []m.Path{p("readme.md")},
		},
		{
			name: "duplicates are removed",
			args: CheckArgs{Paths: []m.Path{p("a.cpp"), m.Path(root), p("./a.cpp")}, Patterns: []string{"*.cpp"}},
			want: []m.Path{p("a.cpp"), p("gen_c.cpp")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newDiscoverWorkflow().discover(context.Background(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscover_VendorDirectories(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	writeFile(t, filepath.Join(src, "main.cpp"), "")
	writeFile(t, filepath.Join(src, "vendor", "bad.cpp"), "OPDI_PARALLEL\n")
	writeFile(t, filepath.Join(src, "node_modules", "x.hpp"), "")

	got, err := newDiscoverWorkflow().discover(context.Background(), CheckArgs{
		Paths:    []m.Path{m.Path(src + "/...")},
		Patterns: []string{"*.hpp", "*.cpp"},
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(src, "main.cpp")),
		m.Path(filepath.Join(src, "node_modules", "x.hpp")),
		m.Path(filepath.Join(src, "vendor", "bad.cpp")),
	}, got)
}

func TestDiscover_Errors(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		args    CheckArgs
		wantCfg bool
	}{
		{"missing path", CheckArgs{Paths: []m.Path{m.Path(filepath.Join(root, "nope"))}}, false},
		{"bad glob", CheckArgs{Paths: []m.Path{m.Path(root)}, Patterns: []string{"[*.cpp"}}, true},
		{"bad exclude", CheckArgs{Paths: []m.Path{m.Path(root)}, Exclude: []string{"(unclosed"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newDiscoverWorkflow().discover(context.Background(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.wantCfg, errors.Is(err, ErrConfig))
		})
	}
}

func TestSplitRecursive(t *testing.T) {
	tests := []struct {
		in            m.Path
		recursive     bool
		wantRoot      m.Path
		wantRecursive bool
	}{
		{"src", false, "src", false},
		{"src", true, "src", true},
		{"src/...", false, "src", true},
		{"./...", false, ".", true},
		{"...", false, ".", true},
		{"/...", false, "/", true},
		{"src...", false, "src...", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			root, recursive := splitRecursive(tt.in, tt.recursive)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantRecursive, recursive)
		})
	}
}
