package audio

import (
	"sort"
	"strconv"
	"strings"

	"atmosprobe/internal/media/ffprobe"
)

// Selection describes the primary audio track chosen from a container and the
// layout the downstream pipeline should use for it.
type Selection struct {
	Primary        Track  `json:"primary"`
	PrimaryIndex   int    `json:"primary_index"`
	KeepIndices    []int  `json:"keep_indices"`
	RemovedIndices []int  `json:"removed_indices"`
	Layout         Layout `json:"layout"`
}

// PrimaryLabel returns a human-readable summary of the selected primary stream.
func (s Selection) PrimaryLabel() string {
	if s.PrimaryIndex < 0 {
		return ""
	}
	return formatStreamSummary(s.Primary.Stream)
}

// Changed reports whether the selection removes any audio streams compared to the source.
func (s Selection) Changed(totalAudio int) bool {
	if totalAudio <= 0 {
		return false
	}
	return len(s.KeepIndices) < totalAudio || len(s.RemovedIndices) > 0
}

// Select returns the single primary English track (falling back to the first
// audio stream) ranked by channel count, then lossless source, then the
// default disposition. Atmos does not affect ranking; it only drives the
// Layout of the chosen track.
func Select(streams []ffprobe.Stream) Selection {
	tracks := Analyze(streams)
	if len(tracks) == 0 {
		return Selection{PrimaryIndex: -1, Layout: LayoutNone}
	}

	english := make([]Track, 0, len(tracks))
	for _, track := range tracks {
		if track.English {
			english = append(english, track)
		}
	}
	if len(english) == 0 {
		// No English audio found; fall back to the first available audio stream.
		english = []Track{tracks[0]}
	}

	primary := choosePrimary(english)
	selection := Selection{
		Primary:      primary,
		PrimaryIndex: primary.Index,
		KeepIndices:  []int{primary.Index},
		Layout:       PlanLayout(primary),
	}

	removed := make([]int, 0)
	for _, track := range tracks {
		if track.Index == primary.Index {
			continue
		}
		removed = append(removed, track.Index)
	}
	sort.Ints(removed)
	selection.RemovedIndices = removed
	return selection
}

func choosePrimary(tracks []Track) Track {
	best := tracks[0]
	bestScore := scorePrimary(best)
	for i := 1; i < len(tracks); i++ {
		score := scorePrimary(tracks[i])
		if score > bestScore {
			best = tracks[i]
			bestScore = score
		}
	}
	return best
}

func scorePrimary(track Track) float64 {
	score := 0.0

	switch {
	case track.Channels >= 8:
		score += 1000
	case track.Channels >= 6:
		score += 800
	case track.Channels >= 4:
		score += 600
	case track.Channels >= 2:
		score += 400
	default:
		score += 200
	}

	if track.Lossless {
		score += 100
	} else {
		score += 50
	}

	if track.DefaultFlagged {
		score += 5
	}

	// Prefer earlier tracks when scores tie.
	score -= float64(track.Order) * 0.1

	return score
}

func formatStreamSummary(stream ffprobe.Stream) string {
	parts := make([]string, 0, 4)
	if lang := stream.Tag("language", "LANGUAGE"); lang != "" {
		parts = append(parts, strings.ToLower(lang))
	}
	codecLabel := stream.CodecLong
	if codecLabel == "" {
		codecLabel = stream.CodecName
	}
	if codecLabel != "" {
		parts = append(parts, codecLabel)
	}
	if stream.Channels > 0 {
		parts = append(parts, strconv.Itoa(stream.Channels)+"ch")
	}
	if title := stream.Tag("title"); title != "" {
		parts = append(parts, title)
	}
	if len(parts) == 0 {
		return "audio"
	}
	return strings.Join(parts, " | ")
}
