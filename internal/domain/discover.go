package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

const recursiveSuffix = "..."

// discover expands the requested paths into the sorted, de-duplicated list
// of files to check. Explicit files are always kept; files found in
// directories must match one of the patterns and none of the excludes.
func (w *workflow) discover(ctx context.Context, args CheckArgs) ([]m.Path, error) {
	for _, pattern := range args.Patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("%w: invalid file pattern %q: %w", ErrConfig, pattern, err)
		}
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	seen := make(map[m.Path]struct{})

	var files []m.Path

	add := func(path m.Path) {
		path = m.Path(filepath.Clean(string(path)))
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, requested := range paths {
		root, recursive := splitRecursive(requested, args.Recursive)

		info, err := w.FileInfo(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("invalid path %s: %w", requested, err)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = w.Walk(ctx, root, recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			if !matchesAny(filepath.Base(path), args.Patterns) || excluded(path, excludes) {
				return nil
			}

			add(m.Path(path))

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i] < files[j]
	})

	return files, nil
}

// splitRecursive turns "dir/..." into ("dir", true).
func splitRecursive(path m.Path, recursive bool) (m.Path, bool) {
	p := string(path)
	if p != recursiveSuffix && !strings.HasSuffix(p, "/"+recursiveSuffix) {
		return path, recursive
	}

	root := strings.TrimSuffix(strings.TrimSuffix(p, recursiveSuffix), "/")
	if root == "" {
		if strings.HasPrefix(p, "/") {
			root = "/"
		} else {
			root = "."
		}
	}

	return m.Path(root), true
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid exclude pattern %q: %w", ErrConfig, pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func matchesAny(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}

	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

func excluded(path string, excludes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)

	for _, re := range excludes {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}
