// Package testsupport builds temp-dir configurations, ffprobe stand-ins, and
// media fixtures shared by package tests.
package testsupport
