package audio

import (
	"testing"

	"atmosprobe/internal/media/atmos"
	"atmosprobe/internal/media/ffprobe"
)

func TestSelectPrefersHighestChannelCount(t *testing.T) {
	streams := []ffprobe.Stream{
		{Index: 0, CodecType: "video"},
		{
			Index:       1,
			CodecType:   "audio",
			CodecName:   "truehd",
			CodecLong:   "TrueHD",
			Profile:     "Dolby TrueHD + Dolby Atmos",
			Channels:    8,
			Tags:        map[string]string{"language": "eng", "title": "Dolby TrueHD Atmos 7.1"},
			Disposition: map[string]int{"default": 1},
		},
		{
			Index:     2,
			CodecType: "audio",
			CodecName: "dts",
			CodecLong: "DCA (DTS Coherent Acoustics)",
			Profile:   "DTS-HD MA",
			Channels:  6,
			Tags:      map[string]string{"language": "eng", "title": "DTS-HD MA 5.1"},
		},
		{
			Index:     3,
			CodecType: "audio",
			CodecName: "ac3",
			Channels:  2,
			Tags:      map[string]string{"language": "eng", "title": "Stereo"},
		},
	}

	sel := Select(streams)
	if sel.PrimaryIndex != 1 {
		t.Fatalf("expected 8-channel lossless track (index 1) to be selected, got %d", sel.PrimaryIndex)
	}
	if len(sel.KeepIndices) != 1 || sel.KeepIndices[0] != 1 {
		t.Fatalf("expected only primary to be kept, got %v", sel.KeepIndices)
	}
	if !sel.Changed(3) {
		t.Fatal("expected selection to remove at least one audio track")
	}
	// TrueHD presence cannot be decided from codec and profile.
	if sel.Primary.Classification.Presence != atmos.PresenceUndetermined {
		t.Fatalf("expected undetermined presence, got %v", sel.Primary.Classification.Presence)
	}
	if sel.Layout != LayoutMultichannel {
		t.Fatalf("expected multichannel layout for truehd, got %q", sel.Layout)
	}
}

func TestSelectPrefersLosslessOverLossy(t *testing.T) {
	streams := []ffprobe.Stream{
		{
			Index:     1,
			CodecType: "audio",
			CodecName: "dts",
			CodecLong: "DTS-HD Master Audio",
			Channels:  6,
			Tags:      map[string]string{"language": "eng"},
		},
		{
			Index:     2,
			CodecType: "audio",
			CodecName: "ac3",
			Channels:  6,
			Tags:      map[string]string{"language": "eng"},
		},
	}

	sel := Select(streams)
	if sel.PrimaryIndex != 1 {
		t.Fatalf("expected lossless DTS-HD MA (index 1) over lossy AC3, got %d", sel.PrimaryIndex)
	}
	if len(sel.RemovedIndices) != 1 || sel.RemovedIndices[0] != 2 {
		t.Fatalf("expected index 2 removed, got %v", sel.RemovedIndices)
	}
}

func TestSelectFallsBackWhenNoEnglish(t *testing.T) {
	streams := []ffprobe.Stream{
		{
			Index:     0,
			CodecType: "audio",
			CodecName: "dts",
			Channels:  6,
			Tags:      map[string]string{"language": "jpn"},
		},
		{
			Index:     1,
			CodecType: "audio",
			CodecName: "ac3",
			Channels:  2,
			Tags:      map[string]string{"language": "fra"},
		},
	}

	sel := Select(streams)
	if sel.PrimaryIndex != 0 {
		t.Fatalf("expected first audio stream to be primary fallback, got %d", sel.PrimaryIndex)
	}
	if len(sel.KeepIndices) != 1 || sel.KeepIndices[0] != 0 {
		t.Fatalf("expected only primary to be kept, got %v", sel.KeepIndices)
	}
}

func TestSelectEAC3AtmosUsesObjectBed(t *testing.T) {
	streams := []ffprobe.Stream{
		{
			Index:         0,
			CodecType:     "audio",
			CodecName:     "eac3",
			Profile:       "Dolby Digital Plus + Dolby Atmos",
			Channels:      6,
			ChannelLayout: "5.1(side)",
			Tags:          map[string]string{"language": "en"},
		},
	}

	sel := Select(streams)
	if !sel.Primary.Classification.HasAtmos() {
		t.Fatalf("expected atmos present, got %+v", sel.Primary.Classification)
	}
	if sel.Layout != LayoutObjectBed {
		t.Fatalf("expected object-bed layout, got %q", sel.Layout)
	}
	if got := Describe(sel.Primary); got != "E-AC3 5.1 Atmos" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestSelectNoAudio(t *testing.T) {
	sel := Select([]ffprobe.Stream{{Index: 0, CodecType: "video"}})
	if sel.PrimaryIndex != -1 || sel.Layout != LayoutNone {
		t.Fatalf("expected empty selection, got %+v", sel)
	}
	if sel.PrimaryLabel() != "" {
		t.Fatal("expected empty label")
	}
	if sel.Changed(0) {
		t.Fatal("expected no change for zero audio streams")
	}
}
