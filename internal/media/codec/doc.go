// Package codec mirrors the slice of the libavcodec codec registry that the
// audio pipeline encounters.
//
// Codec identifiers are opaque tokens: their numeric values match AVCodecID so
// that identifiers read from ffprobe output, cached reports, and any future
// cgo binding agree, but callers must only compare them by equality. Profile
// values follow the same rule and are only meaningful alongside the codec they
// were reported for.
//
// Key types:
//   - ID: codec identifier (AVCodecID)
//   - Profile: codec-specific profile value (AV_PROFILE_*)
//
// Primary entry points:
//   - Lookup: resolve a short codec name ("eac3", "truehd") to an ID
//   - ParseProfile: resolve a reported profile name or number for a codec
package codec
