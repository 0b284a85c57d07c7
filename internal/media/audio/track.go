package audio

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"atmosprobe/internal/media/atmos"
	"atmosprobe/internal/media/ffprobe"
)

// Track is an audio stream annotated with the metadata used for ranking and
// Atmos reporting.
type Track struct {
	Stream         ffprobe.Stream       `json:"-"`
	Index          int                  `json:"index"`
	Order          int                  `json:"order"`
	Language       string               `json:"language,omitempty"`
	Title          string               `json:"title,omitempty"`
	Channels       int                  `json:"channels"`
	English        bool                 `json:"english"`
	Lossless       bool                 `json:"lossless"`
	DefaultFlagged bool                 `json:"default"`
	Classification atmos.Classification `json:"classification"`
	// SpatialHint names an immersive-audio keyword found in codec, profile,
	// or title text. It is advisory and never overrides Classification.
	SpatialHint string `json:"spatial_hint,omitempty"`
}

// Analyze annotates every audio stream, preserving container order.
func Analyze(streams []ffprobe.Stream) []Track {
	result := make([]Track, 0)
	order := 0
	for _, stream := range streams {
		if !stream.IsAudio() {
			continue
		}
		track := Track{
			Stream:         stream,
			Index:          stream.Index,
			Order:          order,
			Language:       normalizeLanguage(stream),
			Title:          stream.Tag("title", "TITLE", "handler_name", "HANDLER_NAME"),
			Channels:       channelCount(stream),
			DefaultFlagged: stream.Disposition != nil && stream.Disposition["default"] == 1,
			Classification: atmos.Classify(stream.CodecID(), stream.ProfileValue()),
		}
		track.English = isEnglish(track.Language)
		track.Lossless = detectLossless(stream)
		track.SpatialHint = detectSpatial(stream, strings.ToLower(track.Title))
		result = append(result, track)
		order++
	}
	return result
}

var englishBase, _ = language.English.Base()

func isEnglish(lang string) bool {
	if lang == "" {
		return false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return strings.HasPrefix(lang, "en")
	}
	base, _ := tag.Base()
	return base == englishBase
}

func normalizeLanguage(stream ffprobe.Stream) string {
	return strings.ToLower(stream.Tag("language", "LANGUAGE", "Language", "language_ietf", "LANG"))
}

func channelCount(stream ffprobe.Stream) int {
	if stream.Channels > 0 {
		return stream.Channels
	}
	layout := strings.ToLower(strings.TrimSpace(stream.ChannelLayout))
	switch {
	case layout == "":
		return 0
	case layout == "mono":
		return 1
	case layout == "stereo":
		return 2
	case layout == "quad":
		return 4
	}
	// Dotted layouts sum every group, so "5.1.2" counts its height pair and
	// "5.1(side)" counts as 6.
	if !strings.Contains(layout, ".") {
		return 0
	}
	total := 0
	for _, part := range strings.Split(layout, ".") {
		if cut := strings.IndexByte(part, '('); cut >= 0 {
			part = part[:cut]
		}
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && n > 0 {
			total += n
		}
	}
	return total
}

var spatialKeywords = []string{
	"atmos",
	"dts:x",
	"dtsx",
	"dts-x",
	"auro-3d",
	"imax enhanced",
}

func detectSpatial(stream ffprobe.Stream, normalizedTitle string) string {
	combined := strings.ToLower(strings.Join([]string{
		stream.CodecLong,
		stream.Profile,
		stream.CodecName,
		normalizedTitle,
	}, " "))
	for _, keyword := range spatialKeywords {
		if strings.Contains(combined, keyword) {
			return keyword
		}
	}
	return ""
}

func detectLossless(stream ffprobe.Stream) bool {
	if stream.CodecID().Lossless() {
		return true
	}
	long := strings.ToLower(stream.CodecLong)
	if strings.Contains(long, "lossless") {
		return true
	}
	if strings.Contains(long, "master audio") || strings.Contains(long, "dts-hd ma") {
		return true
	}
	profile := strings.ToLower(stream.Profile)
	return strings.HasPrefix(profile, "dts-hd ma")
}
