package deps

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeStub(t *testing.T, path, script string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

func TestCheckBinaries(t *testing.T) {
	present := filepath.Join(t.TempDir(), "present")
	writeStub(t, present, "#!/bin/sh\nexit 0\n")
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary to be unavailable with detail, got %#v", results[1])
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected blank requirement status: %#v", results[2])
	}
}

func TestResolveFFprobePath(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "ffprobe")
	writeStub(t, stub, "#!/bin/sh\nexit 0\n")

	if got := ResolveFFprobePath(stub); got != stub {
		t.Fatalf("explicit path: got %q", got)
	}
	if !IsExecutable(stub) || IsExecutable(dir) {
		t.Fatal("unexpected IsExecutable result")
	}

	t.Setenv("PATH", dir)
	if got := ResolveFFprobePath(""); got != stub {
		t.Fatalf("PATH lookup: got %q, want %q", got, stub)
	}
	if got := ResolveFFprobePath("missing-probe"); got != "missing-probe" {
		t.Fatalf("unresolved name should pass through, got %q", got)
	}
}

func TestFFprobeVersion(t *testing.T) {
	stub := filepath.Join(t.TempDir(), "ffprobe")
	writeStub(t, stub, "#!/bin/sh\necho 'ffprobe version 7.1 Copyright (c) 2007-2024'\necho 'built with gcc'\n")

	version, err := FFprobeVersion(context.Background(), stub)
	if err != nil {
		t.Fatalf("FFprobeVersion: %v", err)
	}
	if version != "ffprobe version 7.1 Copyright (c) 2007-2024" {
		t.Fatalf("unexpected version %q", version)
	}

	if _, err := FFprobeVersion(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing binary")
	}
}
