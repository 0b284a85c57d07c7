// Package scan walks media paths, inspects each file with ffprobe, and
// classifies every audio stream.
//
// A Scanner fans files out to a bounded worker pool and returns reports in
// input order. Each run carries a run identifier that tags log lines and
// probe cache rows. Per-file failures are recorded on the FileReport and do
// not abort the run; context cancellation does.
//
// Use Lock to serialize scans that share a probe cache.
package scan
