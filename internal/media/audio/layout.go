package audio

import (
	"fmt"
	"strings"

	"atmosprobe/internal/media/atmos"
	"atmosprobe/internal/media/codec"
	"atmosprobe/internal/media/ffprobe"
)

// Layout is the channel-layout strategy downstream processing should apply to
// a track.
type Layout string

const (
	LayoutNone Layout = ""
	// LayoutObjectBed keeps the channel bed and routes object metadata to an
	// Atmos-aware path. Only chosen when Atmos presence is positively known.
	LayoutObjectBed    Layout = "object-bed"
	LayoutMultichannel Layout = "multichannel"
	LayoutStereo       Layout = "stereo"
)

// PlanLayout picks the layout strategy for a track. An undetermined TrueHD
// stream is treated like any other multichannel stream.
func PlanLayout(track Track) Layout {
	if track.Classification.HasAtmos() {
		return LayoutObjectBed
	}
	if track.Channels > 2 {
		return LayoutMultichannel
	}
	return LayoutStereo
}

// Describe builds a short label such as "E-AC3 5.1 Atmos" or "TrueHD 7.1".
// "Atmos" is only appended when the classifier confirmed it.
func Describe(track Track) string {
	parts := []string{codecLabel(track.Stream)}
	if layout := formatChannelLayout(track.Stream); layout != "" {
		parts = append(parts, layout)
	}
	switch track.Classification.Presence {
	case atmos.PresencePresent:
		parts = append(parts, "Atmos")
	case atmos.PresenceUndetermined:
		if track.SpatialHint == "atmos" {
			parts = append(parts, "(Atmos?)")
		}
	}
	return strings.Join(parts, " ")
}

func codecLabel(s ffprobe.Stream) string {
	id := s.CodecID()
	if id == codec.None {
		if s.CodecName == "" {
			return "unknown"
		}
		return strings.ToUpper(s.CodecName)
	}
	if strings.EqualFold(s.CodecName, "dts") {
		profile := strings.ToLower(s.Profile)
		if strings.Contains(profile, "ma") {
			return "DTS-HD MA"
		}
		if strings.Contains(profile, "hd") {
			return "DTS-HD"
		}
	}
	return id.DisplayName()
}

func formatChannelLayout(s ffprobe.Stream) string {
	layout := strings.TrimSpace(s.ChannelLayout)
	if layout == "" {
		switch s.Channels {
		case 1:
			return "mono"
		case 2:
			return "stereo"
		case 6:
			return "5.1"
		case 8:
			return "7.1"
		case 0:
			return ""
		default:
			return fmt.Sprintf("%dch", s.Channels)
		}
	}
	switch strings.ToLower(layout) {
	case "5.1(side)", "5.1":
		return "5.1"
	case "7.1(wide)", "7.1":
		return "7.1"
	default:
		return layout
	}
}
