package avatar

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		data string
		want func() Settings
	}{
		{
			name: "malformed json",
			data: `{not json`,
			want: Defaults,
		},
		{
			name: "null",
			data: `null`,
			want: Defaults,
		},
		{
			name: "partial fields fall back one by one",
			data: `{"top":"hat","eyes":42,"name":""}`,
			want: func() Settings {
				s := Defaults()
				s.Top = "hat"
				return s
			},
		},
		{
			name: "legacy accessories key",
			data: `{"accessories":"sunglasses"}`,
			want: func() Settings {
				s := Defaults()
				s.Accessory = "sunglasses"
				return s
			},
		},
		{
			name: "accessory wins over legacy key",
			data: `{"accessory":"round","accessories":["kurt"]}`,
			want: func() Settings {
				s := Defaults()
				s.Accessory = "round"
				return s
			},
		},
		{
			name: "legacy list values",
			data: `{"accessories":["kurt"],"mouth":["sad"]}`,
			want: func() Settings {
				s := Defaults()
				s.Accessory = "kurt"
				s.Mouth = "sad"
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := Decode([]byte(tt.data)), tt.want(); got != want {
				t.Errorf("Decode(%s) = %+v, want %+v", tt.data, got, want)
			}
		})
	}
}

func TestEncodeDecodeKeepsSelection(t *testing.T) {
	s := Defaults()
	s.Top = "shortFlat"
	s.SkinColor = "#8D5524"
	s.Name = "Dra. Ortiz"

	data, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := Decode(data); got != s {
		t.Errorf("Decode = %+v, want %+v", got, s)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		top   string
		hat   bool
		hair  bool
		label string
	}{
		{"bigHair", false, true, "Color de pelo"},
		{"winterHat02", true, false, "Color sombrero"},
		{"Turban", true, false, "Color sombrero"},
		{"hijab", true, false, "Color sombrero"},
		{"noHair", false, false, "Color (no aplica)"},
		{"eyepatch", false, false, "Color (no aplica)"},
	}
	for _, tt := range tests {
		t.Run(tt.top, func(t *testing.T) {
			if got := IsHatLike(tt.top); got != tt.hat {
				t.Errorf("IsHatLike = %v, want %v", got, tt.hat)
			}
			if got := IsHairLike(tt.top); got != tt.hair {
				t.Errorf("IsHairLike = %v, want %v", got, tt.hair)
			}
			if got := HairColorLabel(tt.top); got != tt.label {
				t.Errorf("HairColorLabel = %q, want %q", got, tt.label)
			}
			if got := HairColorApplies(tt.top); got != (tt.hat || tt.hair) {
				t.Errorf("HairColorApplies = %v, want %v", got, tt.hat || tt.hair)
			}
		})
	}
	if FacialHairColorApplies("blank") {
		t.Error("FacialHairColorApplies(blank) = true, want false")
	}
	if !FacialHairColorApplies("beardLight") {
		t.Error("FacialHairColorApplies(beardLight) = false, want true")
	}
}

func TestOptions(t *testing.T) {
	check := func(t *testing.T, s Settings, seed string, want map[string]string) {
		t.Helper()
		v := Options(s, seed)
		for key, w := range want {
			if got := v.Get(key); got != w {
				t.Errorf("%s = %q, want %q", key, got, w)
			}
		}
	}

	s := Defaults()
	check(t, s, "", map[string]string{
		"seed":                  DoctorSeed,
		"top":                   "bigHair",
		"hairColor":             "000000",
		"hatColor":              "",
		"facialHairProbability": "0",
		"skinColor":             "F9D3B4",
		"clothing":              "blazerAndShirt",
		"clothesColor":          "ffffff",
		"eyebrows":              "default",
	})

	s.Top = "hat"
	s.HairColor = "#c93305"
	s.FacialHair = "beardMedium"
	check(t, s, "x", map[string]string{
		"seed":                  "x",
		"hatColor":              "c93305",
		"hairColor":             "",
		"facialHairProbability": "100",
	})

	s.Top = "noHair"
	check(t, s, "", map[string]string{
		"hatColor":  "",
		"hairColor": "",
	})
}

func TestURL(t *testing.T) {
	u := URL("", Defaults())
	for _, want := range []string{DefaultRenderURL + "?", "top=bigHair"} {
		if !strings.Contains(u, want) {
			t.Errorf("URL = %q, want it to contain %q", u, want)
		}
	}
	if u := URL("http://localhost/svg", Defaults()); !strings.HasPrefix(u, "http://localhost/svg?") {
		t.Errorf("URL = %q, want the custom endpoint", u)
	}
}

func TestPortrait(t *testing.T) {
	contains := func(t *testing.T, s Settings, parts ...string) {
		t.Helper()
		p := Portrait(s)
		for _, part := range parts {
			if !strings.Contains(p, part) {
				t.Errorf("Portrait missing %q:\n%s", part, p)
			}
		}
	}

	s := Defaults()
	contains(t, s, "●", "‿")

	s.FacialHair = "moustacheFancy"
	s.Accessory = "sunglasses"
	contains(t, s, "═══", "▀▀-▀▀")

	// Unknown values still render.
	if Portrait(Settings{Eyes: "???", Mouth: "???"}) == "" {
		t.Error("expected a portrait for unknown values")
	}
}

func TestPatientIsStable(t *testing.T) {
	if Patient("N1-C2") != Patient("N1-C2") {
		t.Error("expected the same patient for the same id")
	}
	if got := Patient("N1-C2").Name; got != "N1-C2" {
		t.Errorf("Name = %q, want N1-C2", got)
	}
}
