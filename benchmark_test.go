// SPDX-License-Identifier: MIT
// Copyright (c) 2026 globtrail contributors
// Source: github.com/globtrail/globtrail

package globtrail

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

const (
	benchGroupCount = 37
	benchFileCount  = 512
)

var (
	benchMatchSink bool
	benchPathSink  string
	benchCountSink int
)

func BenchmarkCompile(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := Compile("assets/group_*/tex_[0-9][0-9][0-9].paa")
		if err != nil {
			b.Fatal(err)
		}
		if p == nil {
			b.Fatal("nil pattern")
		}
	}
}

func BenchmarkPatternMatches(b *testing.B) {
	p, err := Compile("group_*/tex_[0-9][0-9][0-9].paa")
	if err != nil {
		b.Fatal(err)
	}

	names := benchmarkNames(benchFileCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchMatchSink = p.Matches(names[i%len(names)])
	}
}

func BenchmarkPatternMatchesRecursive(b *testing.B) {
	p, err := Compile("assets/**/*.paa")
	if err != nil {
		b.Fatal(err)
	}

	paths := benchmarkPaths(benchFileCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchMatchSink = p.MatchesPath(paths[i%len(paths)])
	}
}

func BenchmarkGlobWildcard(b *testing.B) {
	root := b.TempDir()
	prepareBenchTree(b, root)
	chdir(b, root)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		paths, err := Glob("assets/group_007/*.paa")
		if err != nil {
			b.Fatal(err)
		}

		count := 0
		for {
			p, ok := paths.Next()
			if !ok {
				break
			}
			benchPathSink = p
			count++
		}
		benchCountSink = count
	}
}

func BenchmarkGlobRecursive(b *testing.B) {
	root := b.TempDir()
	prepareBenchTree(b, root)
	chdir(b, root)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		paths, err := Glob("assets/**/*.paa")
		if err != nil {
			b.Fatal(err)
		}

		count := 0
		for {
			p, ok := paths.Next()
			if !ok {
				break
			}
			benchPathSink = p
			count++
		}
		benchCountSink = count
	}
}

func benchmarkNames(count int) []string {
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		names = append(names, fmt.Sprintf("group_%03d/tex_%03d.paa", i%benchGroupCount, i%1000))
	}
	return names
}

func benchmarkPaths(count int) []string {
	paths := make([]string, 0, count)
	for i := 0; i < count; i++ {
		paths = append(paths, fmt.Sprintf("assets/group_%03d/textures/tex_%05d.paa", i%benchGroupCount, i))
	}
	return paths
}

// prepareBenchTree builds a fixed-shape fixture tree under root for the
// Glob benchmarks: a handful of groups, each holding both matching (.paa)
// and non-matching (.txt) files, so the traversal does real filtering
// work rather than walking an empty directory.
func prepareBenchTree(b *testing.B, root string) {
	b.Helper()

	for g := 0; g < benchGroupCount; g++ {
		dir := filepath.Join(root, "assets", fmt.Sprintf("group_%03d", g))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.Fatal(err)
		}

		for f := 0; f < 8; f++ {
			name := fmt.Sprintf("tex_%03d.paa", f)
			if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
				b.Fatal(err)
			}
			other := fmt.Sprintf("note_%03d.txt", f)
			if err := os.WriteFile(filepath.Join(dir, other), nil, 0o644); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// chdir switches the process working directory to dir for the duration of
// the benchmark and restores it on cleanup. Glob resolves relative
// patterns against the working directory, the same way filepath.Glob
// does, so benchmarks that want a relative pattern need this.
func chdir(b *testing.B, dir string) {
	b.Helper()

	prev, err := os.Getwd()
	if err != nil {
		b.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		b.Fatal(err)
	}

	b.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}
