// Package audio annotates, ranks, and plans layouts for the audio tracks of a
// probed container.
//
// This package depends only on internal/media/ffprobe, internal/media/codec
// and internal/media/atmos.
//
// The selection algorithm filters to English-language tracks (falling back to
// first available if none found), then ranks candidates by:
//  1. Channel count (8ch > 6ch > 4ch > 2ch)
//  2. Lossless codecs over lossy (TrueHD, DTS-HD MA, FLAC, PCM)
//
// Atmos is not a ranking input. It decides the Layout of the chosen track:
// LayoutObjectBed only when the classifier reports Atmos present, which today
// means an E-AC3 stream with the DDP Atmos profile. Keyword matches on titles
// or profile names are surfaced as SpatialHint and never promote a track to
// LayoutObjectBed.
//
// Key types:
//   - Track: per-stream annotation including the Atmos classification
//   - Selection: which audio streams to keep/remove and the chosen Layout
//   - Metadata: container tags plus the primary track's technical properties
//
// Primary entry points:
//   - Analyze: annotate every audio stream
//   - Select: analyze streams and return the primary track selection
//   - PlanLayout / Describe: per-track layout strategy and display label
//   - NewMetadata: per-file summary built from a Result and the primary track
package audio
