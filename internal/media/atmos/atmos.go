package atmos

import "atmosprobe/internal/media/codec"

// Family is a codec family relevant to Atmos detection.
type Family int

const (
	FamilyOther Family = iota
	FamilyEAC3
	FamilyTrueHD
)

func (f Family) String() string {
	switch f {
	case FamilyEAC3:
		return "eac3"
	case FamilyTrueHD:
		return "truehd"
	default:
		return "other"
	}
}

// CanCarryAtmos reports whether streams of this family may carry Atmos.
func (f Family) CanCarryAtmos() bool {
	return f == FamilyEAC3 || f == FamilyTrueHD
}

// Presence is the outcome of Detect.
type Presence int

const (
	PresenceAbsent Presence = iota
	PresencePresent
	// PresenceUndetermined means the family can carry Atmos but the profile
	// does not say whether this stream does.
	PresenceUndetermined
)

func (p Presence) String() string {
	switch p {
	case PresencePresent:
		return "present"
	case PresenceUndetermined:
		return "undetermined"
	default:
		return "absent"
	}
}

// EAC3CodecID returns the canonical E-AC3 (Dolby Digital Plus) identifier.
func EAC3CodecID() codec.ID {
	return codec.EAC3
}

// TrueHDCodecID returns the canonical TrueHD identifier.
func TrueHDCodecID() codec.ID {
	return codec.TrueHD
}

// EAC3AtmosProfile returns the E-AC3 profile value that signals Atmos
// (AV_PROFILE_EAC3_DDP_ATMOS).
func EAC3AtmosProfile() codec.Profile {
	return codec.ProfileEAC3DDPAtmos
}

// IsEAC3 reports whether id is the E-AC3 identifier.
func IsEAC3(id codec.ID) bool {
	return id == codec.EAC3
}

// IsTrueHD reports whether id is the TrueHD identifier.
func IsTrueHD(id codec.ID) bool {
	return id == codec.TrueHD
}

// FamilyOf maps a codec identifier to its family.
func FamilyOf(id codec.ID) Family {
	switch {
	case IsEAC3(id):
		return FamilyEAC3
	case IsTrueHD(id):
		return FamilyTrueHD
	default:
		return FamilyOther
	}
}

// CanCarryAtmos reports whether the codec's family may carry Atmos.
func CanCarryAtmos(id codec.ID) bool {
	return FamilyOf(id).CanCarryAtmos()
}

// CarriesAtmos reports whether a stream with this codec and profile carries
// Atmos. Only E-AC3 profiles are consulted; TrueHD always yields false here
// because its profile is not a reliable signal.
func CarriesAtmos(id codec.ID, profile codec.Profile) bool {
	if !IsEAC3(id) {
		return false
	}
	return profile == EAC3AtmosProfile()
}

// Detect is the tri-state form of CarriesAtmos.
func Detect(id codec.ID, profile codec.Profile) Presence {
	switch FamilyOf(id) {
	case FamilyEAC3:
		if CarriesAtmos(id, profile) {
			return PresencePresent
		}
		return PresenceAbsent
	case FamilyTrueHD:
		return PresenceUndetermined
	default:
		return PresenceAbsent
	}
}

// Classification bundles the per-stream answers.
type Classification struct {
	Codec    codec.ID      `json:"codec"`
	Profile  codec.Profile `json:"profile"`
	Family   Family        `json:"family"`
	Capable  bool          `json:"atmos_capable"`
	Presence Presence      `json:"atmos"`
}

// Classify runs every predicate for one stream.
func Classify(id codec.ID, profile codec.Profile) Classification {
	family := FamilyOf(id)
	return Classification{
		Codec:    id,
		Profile:  profile,
		Family:   family,
		Capable:  family.CanCarryAtmos(),
		Presence: Detect(id, profile),
	}
}

// HasAtmos reports whether the classification positively identified Atmos.
func (c Classification) HasAtmos() bool {
	return c.Presence == PresencePresent
}

func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Family) UnmarshalText(text []byte) error {
	switch string(text) {
	case "eac3":
		*f = FamilyEAC3
	case "truehd":
		*f = FamilyTrueHD
	default:
		*f = FamilyOther
	}
	return nil
}

func (p Presence) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Presence) UnmarshalText(text []byte) error {
	switch string(text) {
	case "present":
		*p = PresencePresent
	case "undetermined":
		*p = PresenceUndetermined
	default:
		*p = PresenceAbsent
	}
	return nil
}
