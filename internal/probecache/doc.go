// Package probecache stores raw ffprobe output in SQLite keyed by file path.
//
// Entries carry the file size and modification time observed when the probe
// ran; Lookup treats any mismatch as a miss. Classification is never cached,
// only the probe payload it is computed from.
package probecache
