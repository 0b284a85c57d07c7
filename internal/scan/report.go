package scan

import (
	"time"

	"atmosprobe/internal/media/atmos"
	"atmosprobe/internal/media/audio"
)

// StreamReport is one classified audio stream.
type StreamReport struct {
	audio.Track
	Layout audio.Layout `json:"layout"`
	Label  string       `json:"label"`
}

// FileReport is the outcome of inspecting one file.
type FileReport struct {
	Path      string           `json:"path"`
	Size      int64            `json:"size"`
	Cached    bool             `json:"cached"`
	Streams   []StreamReport   `json:"streams"`
	Selection *audio.Selection `json:"selection,omitempty"`
	Metadata  *audio.Metadata  `json:"metadata,omitempty"`
	Err       error            `json:"-"`
	Error     string           `json:"error,omitempty"`
}

// Failed reports whether the file could not be inspected.
func (r FileReport) Failed() bool {
	return r.Err != nil
}

// Report collects the results of one scan run.
type Report struct {
	RunID    string       `json:"run_id"`
	Started  time.Time    `json:"started"`
	Finished time.Time    `json:"finished"`
	Files    []FileReport `json:"files"`
}

// Summary aggregates stream classifications across a report.
type Summary struct {
	Files        int `json:"files"`
	Failed       int `json:"failed"`
	Cached       int `json:"cached"`
	Streams      int `json:"streams"`
	Atmos        int `json:"atmos"`
	Undetermined int `json:"undetermined"`
}

// Summary counts files and stream classifications.
func (r Report) Summary() Summary {
	var sum Summary
	sum.Files = len(r.Files)
	for _, file := range r.Files {
		if file.Failed() {
			sum.Failed++
			continue
		}
		if file.Cached {
			sum.Cached++
		}
		for _, stream := range file.Streams {
			sum.Streams++
			switch stream.Classification.Presence {
			case atmos.PresencePresent:
				sum.Atmos++
			case atmos.PresenceUndetermined:
				sum.Undetermined++
			}
		}
	}
	return sum
}

// Duration returns how long the run took.
func (r Report) Duration() time.Duration {
	if r.Finished.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.Started)
}
