package codec

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   ID
		wantOK bool
	}{
		{"eac3", "eac3", EAC3, true},
		{"truehd", "truehd", TrueHD, true},
		{"case and whitespace", "  TrueHD ", TrueHD, true},
		{"ac3 is not eac3", "ac3", AC3, true},
		{"unknown", "ac4", None, false},
		{"empty", "", None, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("Lookup(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRegistryIdentifiersAreUnique(t *testing.T) {
	seen := make(map[ID]string)
	for _, id := range All() {
		if prev, ok := seen[id]; ok {
			t.Fatalf("identifier %d registered for both %s and %s", id, prev, id.Name())
		}
		seen[id] = id.Name()
		if got, ok := Lookup(id.Name()); !ok || got != id {
			t.Fatalf("Lookup(%q) = %v, %v; want %v", id.Name(), got, ok, id)
		}
	}
}

func TestIDNames(t *testing.T) {
	if EAC3.DisplayName() != "E-AC3" {
		t.Fatalf("unexpected display name %q", EAC3.DisplayName())
	}
	if None.Name() != "none" {
		t.Fatalf("unexpected name for None: %q", None.Name())
	}
	if ID(12345).Name() != "unknown" {
		t.Fatalf("unexpected name for unregistered id: %q", ID(12345).Name())
	}
	if ID(12345).String() != "codec(12345)" {
		t.Fatalf("unexpected string for unregistered id: %q", ID(12345).String())
	}
	if !TrueHD.Lossless() || EAC3.Lossless() {
		t.Fatal("expected TrueHD lossless and E-AC3 lossy")
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name  string
		id    ID
		value string
		want  Profile
	}{
		{"eac3 atmos name", EAC3, "Dolby Digital Plus + Dolby Atmos", ProfileEAC3DDPAtmos},
		{"eac3 atmos lower case", EAC3, "dolby digital plus + dolby atmos", 30},
		{"truehd atmos name", TrueHD, "Dolby TrueHD + Dolby Atmos", ProfileTrueHDAtmos},
		{"numeric passthrough", EAC3, "30", 30},
		{"negative numeric", AC3, "-99", ProfileUnknown},
		{"dts ma", DTS, "DTS-HD MA", ProfileDTSHDMA},
		{"aac lc", AAC, "LC", ProfileAACLow},
		{"name from another codec", EAC3, "DTS-HD MA", ProfileUnknown},
		{"empty", EAC3, "", ProfileUnknown},
		{"unknown literal", EAC3, "unknown", ProfileUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseProfile(tt.id, tt.value); got != tt.want {
				t.Fatalf("ParseProfile(%v, %q) = %d, want %d", tt.id, tt.value, got, tt.want)
			}
		})
	}
}

func TestProfileName(t *testing.T) {
	if got := Profile(30).Name(EAC3); got != "Dolby Digital Plus + Dolby Atmos" {
		t.Fatalf("unexpected eac3 profile name %q", got)
	}
	if got := Profile(30).Name(DTS); got != "DTS-ES" {
		t.Fatalf("unexpected dts profile name %q", got)
	}
	if got := Profile(7).Name(EAC3); got != "7" {
		t.Fatalf("expected numeric fallback, got %q", got)
	}
	if got := ProfileUnknown.Name(EAC3); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
}
