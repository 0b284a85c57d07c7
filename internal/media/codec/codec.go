package codec

import (
	"strconv"
	"strings"
)

// ID identifies a codec. Values mirror libavcodec's AVCodecID.
type ID int32

// Audio codec identifiers.
const (
	None ID = 0

	PCMS16LE  ID = 0x10000
	PCMS16BE  ID = 0x10001
	PCMS32LE  ID = 0x10008
	PCMS24LE  ID = 0x1000c
	PCMS24BE  ID = 0x1000d
	PCMBluray ID = 0x10018

	MP2    ID = 0x15000
	MP3    ID = 0x15001
	AAC    ID = 0x15002
	AC3    ID = 0x15003
	DTS    ID = 0x15004
	Vorbis ID = 0x15005
	FLAC   ID = 0x1500c
	ALAC   ID = 0x15010
	MLP    ID = 0x1501d
	EAC3   ID = 0x15028
	TrueHD ID = 0x1502c
	Opus   ID = 0x1503c
)

type descriptor struct {
	id       ID
	name     string // libavcodec short name
	display  string
	lossless bool
}

var descriptors = []descriptor{
	{PCMS16LE, "pcm_s16le", "PCM", true},
	{PCMS16BE, "pcm_s16be", "PCM", true},
	{PCMS32LE, "pcm_s32le", "PCM", true},
	{PCMS24LE, "pcm_s24le", "PCM", true},
	{PCMS24BE, "pcm_s24be", "PCM", true},
	{PCMBluray, "pcm_bluray", "LPCM", true},
	{MP2, "mp2", "MP2", false},
	{MP3, "mp3", "MP3", false},
	{AAC, "aac", "AAC", false},
	{AC3, "ac3", "AC3", false},
	{DTS, "dts", "DTS", false},
	{Vorbis, "vorbis", "Vorbis", false},
	{FLAC, "flac", "FLAC", true},
	{ALAC, "alac", "ALAC", true},
	{MLP, "mlp", "MLP", true},
	{EAC3, "eac3", "E-AC3", false},
	{TrueHD, "truehd", "TrueHD", true},
	{Opus, "opus", "Opus", false},
}

var (
	byID   map[ID]*descriptor
	byName map[string]*descriptor
)

func init() {
	byID = make(map[ID]*descriptor, len(descriptors))
	byName = make(map[string]*descriptor, len(descriptors))
	for i := range descriptors {
		d := &descriptors[i]
		byID[d.id] = d
		byName[d.name] = d
	}
}

// Lookup resolves a libavcodec short codec name. Matching ignores case and
// surrounding whitespace. Unknown names return None and false.
func Lookup(name string) (ID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, false
	}
	if d, ok := byName[name]; ok {
		return d.id, true
	}
	return None, false
}

// Known reports whether the registry has a descriptor for id.
func Known(id ID) bool {
	_, ok := byID[id]
	return ok
}

// All returns every registered identifier in registry order.
func All() []ID {
	ids := make([]ID, 0, len(descriptors))
	for _, d := range descriptors {
		ids = append(ids, d.id)
	}
	return ids
}

// Name returns the libavcodec short name, or "none"/"unknown" when the
// identifier is not registered.
func (id ID) Name() string {
	if id == None {
		return "none"
	}
	if d, ok := byID[id]; ok {
		return d.name
	}
	return "unknown"
}

// DisplayName returns a human-facing codec label such as "E-AC3".
func (id ID) DisplayName() string {
	if d, ok := byID[id]; ok {
		return d.display
	}
	return strings.ToUpper(id.Name())
}

// Lossless reports whether the codec is a lossless coding scheme.
func (id ID) Lossless() bool {
	if d, ok := byID[id]; ok {
		return d.lossless
	}
	return false
}

func (id ID) String() string {
	if d, ok := byID[id]; ok {
		return d.name
	}
	return "codec(" + strconv.FormatInt(int64(id), 10) + ")"
}
