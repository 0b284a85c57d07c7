package audio

import (
	"strconv"
	"strings"
	"unicode"

	"atmosprobe/internal/media/atmos"
	"atmosprobe/internal/media/ffprobe"
)

// Metadata summarises one container: its descriptive tags plus the technical
// properties of the primary audio track. Technical fields are zero when the
// container has no audio.
type Metadata struct {
	Title       string `json:"title,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Album       string `json:"album,omitempty"`
	AlbumArtist string `json:"album_artist,omitempty"`
	Year        int    `json:"year,omitempty"`
	TrackNumber int    `json:"track_number,omitempty"`
	DiscNumber  int    `json:"disc_number,omitempty"`
	Genre       string `json:"genre,omitempty"`

	DurationSeconds float64        `json:"duration_seconds"`
	Codec           string         `json:"codec,omitempty"`
	BitRate         int64          `json:"bit_rate"`
	SampleRate      int            `json:"sample_rate"`
	BitDepth        int            `json:"bit_depth,omitempty"`
	Channels        int            `json:"channels"`
	Atmos           atmos.Presence `json:"atmos"`
	HasAtmos        bool           `json:"has_atmos"`
	AudioStreams    int            `json:"audio_streams"`
	VideoStreams    int            `json:"video_streams"`
}

// NewMetadata builds the record from a parsed inspection and the primary
// track. primary may be nil.
func NewMetadata(result ffprobe.Result, primary *Track) Metadata {
	format := result.Format
	meta := Metadata{
		Title:           format.Tag("title"),
		Artist:          format.Tag("artist"),
		Album:           format.Tag("album"),
		AlbumArtist:     format.Tag("album_artist", "albumartist", "album artist"),
		Year:            leadingYear(format.Tag("date", "year", "date_released", "originaldate")),
		TrackNumber:     leadingNumber(format.Tag("track", "tracknumber", "part_number")),
		DiscNumber:      leadingNumber(format.Tag("disc", "discnumber")),
		Genre:           format.Tag("genre"),
		DurationSeconds: result.DurationSeconds(),
		AudioStreams:    result.AudioStreamCount(),
		VideoStreams:    result.VideoStreamCount(),
	}
	if primary == nil {
		return meta
	}

	stream := primary.Stream
	meta.Codec = codecLabel(stream)
	meta.SampleRate = stream.SampleRateHz()
	meta.BitDepth = stream.BitDepth()
	meta.Channels = primary.Channels
	meta.Atmos = primary.Classification.Presence
	meta.HasAtmos = primary.Classification.HasAtmos()
	meta.BitRate = stream.BitRateBPS()
	if meta.BitRate == 0 && meta.AudioStreams == 1 && meta.VideoStreams == 0 {
		// Audio-only files often carry the rate on the container alone.
		meta.BitRate = result.BitRate()
	}
	if meta.DurationSeconds == 0 {
		if seconds, err := strconv.ParseFloat(strings.TrimSpace(stream.Duration), 64); err == nil && seconds > 0 {
			meta.DurationSeconds = seconds
		}
	}
	return meta
}

// leadingNumber parses values such as "3", "03" or "3/12".
func leadingNumber(value string) int {
	end := strings.IndexFunc(value, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == 0 {
		return 0
	}
	if end > 0 {
		value = value[:end]
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// leadingYear accepts a bare year or an ISO date such as "2019-05-01".
func leadingYear(value string) int {
	if len(value) < 4 {
		return 0
	}
	year := leadingNumber(value[:4])
	if year < 1000 {
		return 0
	}
	return year
}
