package audio

import (
	"testing"

	"atmosprobe/internal/media/atmos"
	"atmosprobe/internal/media/ffprobe"
)

func TestNewMetadataFromPrimaryTrack(t *testing.T) {
	result := ffprobe.Result{
		Streams: []ffprobe.Stream{
			{Index: 0, CodecType: "video", CodecName: "hevc"},
			{Index: 1, CodecType: "audio", CodecName: "eac3", Profile: "Dolby Digital Plus + Dolby Atmos",
				Channels: 6, SampleRate: "48000", BitRate: "768000", Tags: map[string]string{"language": "eng"}},
			{Index: 2, CodecType: "audio", CodecName: "ac3", Channels: 2, SampleRate: "48000"},
		},
		Format: ffprobe.Format{
			Duration: "5400.25",
			BitRate:  "20000000",
			Tags: map[string]string{
				"TITLE":        "Feature Presentation",
				"ARTIST":       "Studio Orchestra",
				"ALBUM_ARTIST": "Various",
				"DATE":         "2019-05-01",
				"track":        "3/12",
				"disc":         "1",
				"GENRE":        "Drama",
			},
		},
	}
	sel := Select(result.AudioStreams())
	meta := NewMetadata(result, &sel.Primary)

	if meta.Title != "Feature Presentation" || meta.Artist != "Studio Orchestra" || meta.AlbumArtist != "Various" {
		t.Fatalf("unexpected descriptive tags %+v", meta)
	}
	if meta.Year != 2019 || meta.TrackNumber != 3 || meta.DiscNumber != 1 || meta.Genre != "Drama" {
		t.Fatalf("unexpected numbering tags %+v", meta)
	}
	if meta.DurationSeconds != 5400.25 {
		t.Fatalf("unexpected duration %v", meta.DurationSeconds)
	}
	if meta.Codec != "E-AC3" || meta.Channels != 6 || meta.SampleRate != 48000 {
		t.Fatalf("unexpected technical fields %+v", meta)
	}
	// The container rate covers video too, so only the stream rate counts.
	if meta.BitRate != 768000 {
		t.Fatalf("expected stream bitrate, got %d", meta.BitRate)
	}
	if meta.Atmos != atmos.PresencePresent || !meta.HasAtmos {
		t.Fatalf("expected atmos on primary, got %v", meta.Atmos)
	}
	if meta.AudioStreams != 2 || meta.VideoStreams != 1 {
		t.Fatalf("unexpected stream counts %d/%d", meta.AudioStreams, meta.VideoStreams)
	}
}

func TestNewMetadataAudioOnlyFallsBackToContainer(t *testing.T) {
	result := ffprobe.Result{
		Streams: []ffprobe.Stream{
			{Index: 0, CodecType: "audio", CodecName: "truehd", Channels: 8, SampleRate: "48000",
				BitsPerRawSample: "24", Duration: "61.5"},
		},
		Format: ffprobe.Format{Duration: "N/A", BitRate: "4500000", Tags: map[string]string{"year": "N/A"}},
	}
	tracks := Analyze(result.Streams)
	meta := NewMetadata(result, &tracks[0])

	if meta.BitRate != 4500000 {
		t.Fatalf("expected container bitrate, got %d", meta.BitRate)
	}
	if meta.DurationSeconds != 61.5 {
		t.Fatalf("expected stream duration, got %v", meta.DurationSeconds)
	}
	if meta.BitDepth != 24 || meta.Year != 0 {
		t.Fatalf("unexpected depth/year %d/%d", meta.BitDepth, meta.Year)
	}
	if meta.Atmos != atmos.PresenceUndetermined || meta.HasAtmos {
		t.Fatalf("truehd must stay undetermined, got %v", meta.Atmos)
	}
}

func TestNewMetadataWithoutAudio(t *testing.T) {
	result := ffprobe.Result{
		Streams: []ffprobe.Stream{{Index: 0, CodecType: "video"}},
		Format:  ffprobe.Format{Duration: "12", Tags: map[string]string{"title": "Silent"}},
	}
	meta := NewMetadata(result, nil)
	if meta.Title != "Silent" || meta.DurationSeconds != 12 {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if meta.Codec != "" || meta.Channels != 0 || meta.Atmos != atmos.PresenceAbsent {
		t.Fatalf("expected empty technical fields, got %+v", meta)
	}
}

func TestLeadingNumber(t *testing.T) {
	tests := map[string]int{
		"3":     3,
		"03/12": 3,
		"12":    12,
		"":      0,
		"/5":    0,
		"A1":    0,
	}
	for input, want := range tests {
		if got := leadingNumber(input); got != want {
			t.Fatalf("leadingNumber(%q) = %d, want %d", input, got, want)
		}
	}
}
