// Package preflight provides readiness checks for the binaries and
// filesystem paths atmosprobe depends on.
//
// The CLI "check" command runs RunAll and renders each Result. The scan
// command calls CheckFFprobe before spending time walking a library.
//
// Each check is gated by its config toggle; disabled features are skipped.
package preflight
