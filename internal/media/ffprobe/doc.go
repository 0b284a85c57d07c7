// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Besides the raw stream fields, Stream exposes CodecID and ProfileValue,
// which translate ffprobe's textual codec and profile names into the codec
// registry values the Atmos classifier consumes.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video/subtitle stream properties
//   - Format: container-level metadata (duration, size, bitrate, tags)
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns parsed Result
//   - Parse: decodes a previously captured ffprobe JSON payload
package ffprobe
