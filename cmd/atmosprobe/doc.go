// Package main hosts the atmosprobe CLI entrypoint and command graph.
//
// The Cobra command tree classifies codec/profile pairs directly, inspects
// media files through ffprobe, scans libraries with the probe cache, and
// manages configuration. Configuration and logging are resolved lazily so
// commands like "config init" and "classify" run without a config file.
//
// Keep this package lean: add behaviour to the internal packages first, then
// surface it here.
package main
