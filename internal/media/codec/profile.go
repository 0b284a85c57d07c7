package codec

import (
	"strconv"
	"strings"
)

// Profile is a codec-specific profile value. The same number means different
// things for different codecs, so a Profile is only interpreted together with
// the ID it was reported for.
type Profile int

// ProfileUnknown mirrors AV_PROFILE_UNKNOWN.
const ProfileUnknown Profile = -99

// Profile values as defined by libavcodec.
const (
	ProfileAACMain  Profile = 0
	ProfileAACLow   Profile = 1
	ProfileAACSSR   Profile = 2
	ProfileAACLTP   Profile = 3
	ProfileAACHE    Profile = 4
	ProfileAACLD    Profile = 22
	ProfileAACHEv2  Profile = 28
	ProfileAACELD   Profile = 38
	ProfileAACXHE   Profile = 42
	ProfileDTS      Profile = 20
	ProfileDTSES    Profile = 30
	ProfileDTS9624  Profile = 40
	ProfileDTSHDHRA Profile = 50
	ProfileDTSHDMA  Profile = 60
	ProfileDTSHDMAX Profile = 61
	ProfileDTSIMAX  Profile = 62
	ProfileDTSExpr  Profile = 70

	ProfileEAC3DDPAtmos Profile = 30
	ProfileTrueHDAtmos  Profile = 30
)

type profileName struct {
	profile Profile
	name    string
}

var profileNames = map[ID][]profileName{
	AAC: {
		{ProfileAACMain, "Main"},
		{ProfileAACLow, "LC"},
		{ProfileAACSSR, "SSR"},
		{ProfileAACLTP, "LTP"},
		{ProfileAACHE, "HE-AAC"},
		{ProfileAACHEv2, "HE-AACv2"},
		{ProfileAACLD, "LD"},
		{ProfileAACELD, "ELD"},
		{ProfileAACXHE, "xHE-AAC"},
	},
	DTS: {
		{ProfileDTS, "DTS"},
		{ProfileDTSES, "DTS-ES"},
		{ProfileDTS9624, "DTS 96/24"},
		{ProfileDTSHDHRA, "DTS-HD HRA"},
		{ProfileDTSHDMA, "DTS-HD MA"},
		{ProfileDTSHDMAX, "DTS-HD MA + DTS:X"},
		{ProfileDTSIMAX, "DTS-HD MA + DTS:X IMAX"},
		{ProfileDTSExpr, "DTS Express"},
	},
	EAC3: {
		{ProfileEAC3DDPAtmos, "Dolby Digital Plus + Dolby Atmos"},
	},
	TrueHD: {
		{ProfileTrueHDAtmos, "Dolby TrueHD + Dolby Atmos"},
	},
}

// ParseProfile resolves a profile as reported for codec id. Integer strings
// pass through unchanged; names are matched case-insensitively against the
// codec's profile table. Empty, "unknown", or unrecognised names yield
// ProfileUnknown.
func ParseProfile(id ID, value string) Profile {
	value = strings.TrimSpace(value)
	if value == "" {
		return ProfileUnknown
	}
	if n, err := strconv.Atoi(value); err == nil {
		return Profile(n)
	}
	for _, entry := range profileNames[id] {
		if strings.EqualFold(entry.name, value) {
			return entry.profile
		}
	}
	return ProfileUnknown
}

// Name returns the profile's name within codec id, or the decimal value when
// the codec has no name for it.
func (p Profile) Name(id ID) string {
	if p == ProfileUnknown {
		return "unknown"
	}
	for _, entry := range profileNames[id] {
		if entry.profile == p {
			return entry.name
		}
	}
	return strconv.Itoa(int(p))
}
