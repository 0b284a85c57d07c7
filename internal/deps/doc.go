// Package deps reports whether the external binaries atmosprobe shells out to
// are installed.
package deps
