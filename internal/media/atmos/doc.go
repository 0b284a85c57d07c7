// Package atmos classifies an audio stream's codec family and decides whether
// its reported profile signals Dolby Atmos.
//
// Two families can carry Atmos: E-AC3 (Dolby Digital Plus) and TrueHD. Only
// E-AC3 signals it through the profile value (the DDP Atmos profile, 30). For
// TrueHD, Atmos presence cannot be decided from codec and profile alone; it
// would need bitstream inspection, which this package does not do. Callers
// must not read CarriesAtmos == false on a TrueHD stream as "no Atmos"; use
// Detect, which reports PresenceUndetermined for that family.
//
// Everything here is a pure function over plain values and is safe for
// concurrent use.
package atmos
