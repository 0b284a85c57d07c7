package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"atmosprobe/internal/media/audio"
	"atmosprobe/internal/scan"
)

func printFileReport(out io.Writer, file scan.FileReport, colorize bool) {
	fmt.Fprintf(out, "%s\n", file.Path)
	if file.Failed() {
		fmt.Fprintf(out, "  error: %s\n", file.Error)
		return
	}
	if file.Metadata != nil {
		for _, line := range metadataLines(*file.Metadata) {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
	if len(file.Streams) == 0 {
		fmt.Fprintln(out, "  no audio streams")
		return
	}

	primary := -1
	if file.Selection != nil {
		primary = file.Selection.PrimaryIndex
	}
	rows := make([][]string, 0, len(file.Streams))
	for _, stream := range file.Streams {
		mark := ""
		if stream.Index == primary {
			mark = "*"
		}
		lang := stream.Language
		if lang == "" {
			lang = "-"
		}
		rows = append(rows, []string{
			mark,
			strconv.Itoa(stream.Index),
			lang,
			stream.Label,
			stream.Classification.Family.String(),
			presenceLabel(stream.Classification.Presence, colorize),
			string(stream.Layout),
			stream.Title,
		})
	}
	headers := []string{"", "Index", "Lang", "Stream", "Family", "Atmos", "Layout", "Title"}
	fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignRight}, colorize))
	if sel := file.Selection; sel != nil && sel.PrimaryIndex >= 0 {
		fmt.Fprintf(out, "  Primary: #%d %s (%s)\n", sel.PrimaryIndex, sel.PrimaryLabel(), sel.Layout)
		if sel.Changed(len(file.Streams)) {
			fmt.Fprintf(out, "  Drop:    %s\n", joinInts(sel.RemovedIndices))
		}
	}
	if file.Cached {
		fmt.Fprintln(out, "  (from cache)")
	}
}

func metadataLines(meta audio.Metadata) []string {
	var lines []string
	tags := make([]string, 0, 4)
	for _, tag := range []struct{ label, value string }{
		{"Title", meta.Title},
		{"Artist", meta.Artist},
		{"Album", meta.Album},
		{"Album artist", meta.AlbumArtist},
		{"Genre", meta.Genre},
	} {
		if tag.value != "" {
			tags = append(tags, tag.label+": "+tag.value)
		}
	}
	if meta.Year > 0 {
		tags = append(tags, "Year: "+strconv.Itoa(meta.Year))
	}
	if meta.TrackNumber > 0 {
		tags = append(tags, "Track: "+strconv.Itoa(meta.TrackNumber))
	}
	if meta.DiscNumber > 0 {
		tags = append(tags, "Disc: "+strconv.Itoa(meta.DiscNumber))
	}
	if len(tags) > 0 {
		lines = append(lines, strings.Join(tags, "  "))
	}

	tech := make([]string, 0, 6)
	if meta.DurationSeconds > 0 {
		tech = append(tech, time.Duration(meta.DurationSeconds*float64(time.Second)).Round(time.Second).String())
	}
	if meta.Codec != "" {
		tech = append(tech, meta.Codec)
	}
	if meta.BitRate > 0 {
		tech = append(tech, humanize.SIWithDigits(float64(meta.BitRate), 0, "bps"))
	}
	if meta.SampleRate > 0 {
		tech = append(tech, humanize.SIWithDigits(float64(meta.SampleRate), 1, "Hz"))
	}
	if meta.BitDepth > 0 {
		tech = append(tech, strconv.Itoa(meta.BitDepth)+"-bit")
	}
	if meta.Channels > 0 {
		tech = append(tech, strconv.Itoa(meta.Channels)+"ch")
	}
	if len(tech) > 0 {
		lines = append(lines, strings.Join(tech, "  "))
	}
	return lines
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "#" + strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func scanRows(files []scan.FileReport) [][]string {
	rows := make([][]string, 0, len(files))
	for _, file := range files {
		name := filepath.Base(file.Path)
		if file.Failed() {
			rows = append(rows, []string{name, "-", "-", "-", "error: " + file.Error})
			continue
		}
		atmosCount := 0
		for _, s := range file.Streams {
			if s.Classification.HasAtmos() {
				atmosCount++
			}
		}
		primary := "-"
		if file.Selection != nil && file.Selection.PrimaryIndex >= 0 {
			primary = fmt.Sprintf("#%d %s", file.Selection.PrimaryIndex, labelFor(file, file.Selection.PrimaryIndex))
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(len(file.Streams)),
			strconv.Itoa(atmosCount),
			yesNo(file.Cached),
			primary,
		})
	}
	return rows
}

func labelFor(file scan.FileReport, index int) string {
	for _, s := range file.Streams {
		if s.Index == index {
			return s.Label
		}
	}
	return ""
}

func printSummary(out io.Writer, sum scan.Summary) {
	fmt.Fprintf(out, "Files: %d (failed %d, cached %d)  Audio streams: %d  Atmos: %d  Undetermined: %d\n",
		sum.Files, sum.Failed, sum.Cached, sum.Streams, sum.Atmos, sum.Undetermined)
}
