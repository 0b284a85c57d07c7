package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"atmosprobe/internal/testsupport"
)

const stubProbeJSON = `{"streams":[
 {"index":0,"codec_type":"video","codec_name":"hevc"},
 {"index":1,"codec_type":"audio","codec_name":"eac3","profile":"Dolby Digital Plus + Dolby Atmos","channels":6,"channel_layout":"5.1(side)","sample_rate":"48000","bit_rate":"768000","tags":{"language":"eng"},"disposition":{"default":1}},
 {"index":2,"codec_type":"audio","codec_name":"truehd","channels":8,"channel_layout":"7.1","tags":{"language":"eng","title":"TrueHD Atmos 7.1"}}
],"format":{"format_name":"matroska,webm","size":"5","duration":"5400.000000","tags":{"TITLE":"Test Feature","DATE":"2021-03-04"}}}`

type cliTestEnv struct {
	configPath string
	mediaDir   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("ATMOSPROBE_FFPROBE", "")

	cfg := testsupport.NewConfig(t,
		testsupport.WithWorkers(2),
		testsupport.WithFFprobeStub(stubProbeJSON))
	mediaDir := filepath.Join(testsupport.BaseDir(cfg), "media")
	testsupport.WriteMediaTree(t, mediaDir, "movie.mkv", "show.m2ts", "readme.txt")

	return &cliTestEnv{
		configPath: testsupport.WriteConfigFile(t, cfg),
		mediaDir:   mediaDir,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
