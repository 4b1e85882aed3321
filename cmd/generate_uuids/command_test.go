package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/camuuid/generator"
	"github.com/viant/camuuid/internal/clock"
	"github.com/viant/camuuid/record"
)

var testDate = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read %s: %v", dir, err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	out := new(bytes.Buffer)

	code := run([]string{"5", "hornet", dir}, out, out, generator.WithClock(clock.Fixed(testDate)))
	assert.Equal(t, 0, code, out.String())
	assert.Equal(t, []string{"hornet_2026_05_04.txt"}, dirNames(t, dir))

	data, err := os.ReadFile(filepath.Join(dir, "hornet_2026_05_04.txt"))
	assert.NoError(t, err)
	ids := record.ParseLines(data)
	assert.Len(t, ids, 5)
	assert.Empty(t, record.Duplicates(ids))
	assert.True(t, strings.HasSuffix(string(data), "\n"))
	assert.Contains(t, out.String(), "Generating 5 new UUIDs for hornet")
	assert.Contains(t, out.String(), "Wrote 5 UUIDs to")
}

func TestRun_Rejects(t *testing.T) {
	testCases := []struct {
		description string
		args        func(dir string) []string
		expectUsage bool
		expectText  string
	}{
		{description: "no arguments", args: func(string) []string { return nil }, expectUsage: true},
		{description: "too many arguments", args: func(dir string) []string { return []string{"1", "coati", dir, "extra"} }, expectUsage: true},
		{description: "non numeric count", args: func(dir string) []string { return []string{"five", "coati", dir} }, expectUsage: true, expectText: "not a number"},
		{description: "negative count", args: func(dir string) []string { return []string{"-3", "coati", dir} }, expectUsage: true},
		{description: "negative count after separator", args: func(dir string) []string { return []string{"--", "-3", "coati", dir} }, expectUsage: true, expectText: "must be positive"},
		{description: "count beyond 32 bits", args: func(dir string) []string { return []string{"99999999999999", "hyrax", dir} }, expectUsage: true, expectText: "out of range"},
		{description: "zero count", args: func(dir string) []string { return []string{"0", "coati", dir} }, expectUsage: true, expectText: "must be positive"},
		{description: "unknown category", args: func(dir string) []string { return []string{"2", "wasp", dir} }, expectUsage: true, expectText: "wasp"},
		{description: "missing directory", args: func(dir string) []string { return []string{"2", "coati", filepath.Join(dir, "missing")} }, expectText: "does not exist"},
		{description: "unknown flag", args: func(dir string) []string { return []string{"--bogus", "2", "coati", dir} }, expectUsage: true},
	}

	for _, testCase := range testCases {
		dir := t.TempDir()
		out := new(bytes.Buffer)
		code := run(testCase.args(dir), out, out, generator.WithClock(clock.Fixed(testDate)))
		assert.Equal(t, 1, code, testCase.description)
		assert.Empty(t, dirNames(t, dir), testCase.description)
		assert.Equal(t, testCase.expectUsage, strings.Contains(out.String(), "Usage:"), testCase.description)
		if testCase.expectText != "" {
			assert.Contains(t, out.String(), testCase.expectText, testCase.description)
		}
	}
}

func TestRun_Collision(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "bumblebee_2020_01_01.txt")
	assert.NoError(t, os.WriteFile(existing, []byte("fixed-id\n"), 0o644))

	out := new(bytes.Buffer)
	code := run([]string{"1", "bumblebee", dir}, out, out,
		generator.WithClock(clock.Fixed(testDate)),
		generator.WithIDFunc(func() string { return "fixed-id" }))
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "UUID collisions were detected")
	assert.Equal(t, []string{"bumblebee_2020_01_01.txt"}, dirNames(t, dir))
}

func TestRun_SelfDuplicate(t *testing.T) {
	dir := t.TempDir()
	out := new(bytes.Buffer)
	code := run([]string{"2", "hyrax", dir}, out, out,
		generator.WithIDFunc(func() string { return "same" }))
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Failed to generate enough unique UUIDs")
	assert.Empty(t, dirNames(t, dir))
}

func TestRun_AllCategories(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "hyrax_2020_01_01.txt"), []byte("shared\n"), 0o644))
	idFunc := generator.WithIDFunc(func() string { return "shared" })

	out := new(bytes.Buffer)
	code := run([]string{"--all-categories", "1", "coati", dir}, out, out, generator.WithClock(clock.Fixed(testDate)), idFunc)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Reading")

	out.Reset()
	code = run([]string{"1", "coati", dir}, out, out, generator.WithClock(clock.Fixed(testDate)), idFunc)
	assert.Equal(t, 0, code, out.String())
	assert.Contains(t, dirNames(t, dir), "coati_2026_05_04.txt")
}

func TestRun_DefaultDirectory(t *testing.T) {
	work := t.TempDir()
	assert.NoError(t, os.Mkdir(filepath.Join(work, generator.DefaultDirectory), 0o755))
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	assert.NoError(t, os.Chdir(work))
	defer func() { _ = os.Chdir(cwd) }()

	out := new(bytes.Buffer)
	code := run([]string{"3", "bagheera"}, out, out, generator.WithClock(clock.Fixed(testDate)))
	assert.Equal(t, 0, code, out.String())
	assert.Equal(t, []string{"bagheera_2026_05_04.txt"}, dirNames(t, filepath.Join(work, generator.DefaultDirectory)))
}

func TestRun_TraceFile(t *testing.T) {
	dir := t.TempDir()
	traceFile := filepath.Join(t.TempDir(), "trace.json")
	out := new(bytes.Buffer)

	code := run([]string{"--trace-file", traceFile, "2", "coati", dir}, out, out, generator.WithClock(clock.Fixed(testDate)))
	assert.Equal(t, 0, code, out.String())

	data, err := os.ReadFile(traceFile)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "check.collision")
	assert.Contains(t, string(data), `"Name":"generate"`)
}
