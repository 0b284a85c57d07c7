package audio

import (
	"testing"

	"atmosprobe/internal/media/ffprobe"
)

func TestPlanLayoutAndDescribe(t *testing.T) {
	tests := []struct {
		name       string
		stream     ffprobe.Stream
		wantLayout Layout
		wantLabel  string
	}{
		{
			name:       "eac3 atmos profile",
			stream:     ffprobe.Stream{CodecType: "audio", CodecName: "eac3", Profile: "30", Channels: 6},
			wantLayout: LayoutObjectBed,
			wantLabel:  "E-AC3 5.1 Atmos",
		},
		{
			name:       "eac3 without atmos profile",
			stream:     ffprobe.Stream{CodecType: "audio", CodecName: "eac3", Channels: 6, ChannelLayout: "5.1(side)"},
			wantLayout: LayoutMultichannel,
			wantLabel:  "E-AC3 5.1",
		},
		{
			name:       "eac3 atmos title without profile is only a hint",
			stream:     ffprobe.Stream{CodecType: "audio", CodecName: "eac3", Channels: 6, Tags: map[string]string{"title": "Atmos"}},
			wantLayout: LayoutMultichannel,
			wantLabel:  "E-AC3 5.1",
		},
		{
			name:       "truehd atmos profile stays undetermined",
			stream:     ffprobe.Stream{CodecType: "audio", CodecName: "truehd", Profile: "Dolby TrueHD + Dolby Atmos", Channels: 8},
			wantLayout: LayoutMultichannel,
			wantLabel:  "TrueHD 7.1 (Atmos?)",
		},
		{
			name:       "truehd without hint",
			stream:     ffprobe.Stream{CodecType: "audio", CodecName: "truehd", Channels: 8, ChannelLayout: "7.1"},
			wantLayout: LayoutMultichannel,
			wantLabel:  "TrueHD 7.1",
		},
		{
			name:       "stereo aac",
			stream:     ffprobe.Stream{CodecType: "audio", CodecName: "aac", Profile: "30", Channels: 2},
			wantLayout: LayoutStereo,
			wantLabel:  "AAC stereo",
		},
		{
			name:       "dts-hd ma",
			stream:     ffprobe.Stream{CodecType: "audio", CodecName: "dts", Profile: "DTS-HD MA", Channels: 6},
			wantLayout: LayoutMultichannel,
			wantLabel:  "DTS-HD MA 5.1",
		},
		{
			name:       "unregistered codec",
			stream:     ffprobe.Stream{CodecType: "audio", CodecName: "ac4", Channels: 3},
			wantLayout: LayoutMultichannel,
			wantLabel:  "AC4 3ch",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracks := Analyze([]ffprobe.Stream{tt.stream})
			if len(tracks) != 1 {
				t.Fatalf("expected one track, got %d", len(tracks))
			}
			if got := PlanLayout(tracks[0]); got != tt.wantLayout {
				t.Fatalf("PlanLayout = %q, want %q", got, tt.wantLayout)
			}
			if got := Describe(tracks[0]); got != tt.wantLabel {
				t.Fatalf("Describe = %q, want %q", got, tt.wantLabel)
			}
		})
	}
}

func TestAnalyzeChannelLayoutFallback(t *testing.T) {
	tests := []struct {
		layout string
		want   int
	}{
		{"7.1(wide)", 8},
		{"stereo", 2},
		{"mono", 1},
		{"quad", 4},
		{"3.1.2", 6},
		{"5.1(side)", 6},
		{"5.1.2", 8},
		{"5.1.4", 10},
		{"7.1.2", 10},
		{"7.1.4", 12},
		{"downmix", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			tracks := Analyze([]ffprobe.Stream{{CodecType: "audio", CodecName: "flac", ChannelLayout: tt.layout}})
			if len(tracks) != 1 {
				t.Fatalf("expected one track, got %d", len(tracks))
			}
			if tracks[0].Channels != tt.want {
				t.Fatalf("channels = %d, want %d", tracks[0].Channels, tt.want)
			}
			if !tracks[0].Lossless {
				t.Fatal("expected flac to be lossless")
			}
		})
	}
}

func TestAnalyzePrefersReportedChannels(t *testing.T) {
	tracks := Analyze([]ffprobe.Stream{{CodecType: "audio", CodecName: "truehd", Channels: 8, ChannelLayout: "5.1"}})
	if tracks[0].Channels != 8 {
		t.Fatalf("expected reported channel count to win, got %d", tracks[0].Channels)
	}
}

func TestIsEnglish(t *testing.T) {
	tests := map[string]bool{
		"eng":     true,
		"en":      true,
		"en-us":   true,
		"english": true,
		"jpn":     false,
		"fra":     false,
		"":        false,
	}
	for input, want := range tests {
		if got := isEnglish(input); got != want {
			t.Fatalf("isEnglish(%q) = %v, want %v", input, got, want)
		}
	}
}
