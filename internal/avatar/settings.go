package avatar

import (
	"encoding/json"
	"strings"
)

// Settings is the player's appearance and display name.
type Settings struct {
	Top             string `json:"top"`
	HairColor       string `json:"hairColor"`
	FacialHair      string `json:"facialHair"`
	FacialHairColor string `json:"facialHairColor"`
	SkinColor       string `json:"skinColor"`
	Accessory       string `json:"accessory"`
	Eyes            string `json:"eyes"`
	Mouth           string `json:"mouth"`
	Name            string `json:"name"`
}

// DefaultName is shown when the player never picked a name.
const DefaultName = "chapatin"

// Defaults returns the appearance used when nothing valid is stored.
func Defaults() Settings {
	return Settings{
		Top:             "bigHair",
		HairColor:       "#000000",
		FacialHair:      "blank",
		FacialHairColor: "#2c1b18",
		SkinColor:       "#F9D3B4",
		Accessory:       "blank",
		Eyes:            "default",
		Mouth:           "smile",
		Name:            DefaultName,
	}
}

// WithDefaults fills every empty field from Defaults.
func (s Settings) WithDefaults() Settings {
	d := Defaults()
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&s.Top, d.Top)
	fill(&s.HairColor, d.HairColor)
	fill(&s.FacialHair, d.FacialHair)
	fill(&s.FacialHairColor, d.FacialHairColor)
	fill(&s.SkinColor, d.SkinColor)
	fill(&s.Accessory, d.Accessory)
	fill(&s.Eyes, d.Eyes)
	fill(&s.Mouth, d.Mouth)
	fill(&s.Name, d.Name)
	return s
}

// Decode reads stored settings. Malformed documents yield Defaults and
// fields that are missing or not strings fall back one by one. The legacy
// "accessories" key is honored when "accessory" is absent.
func Decode(data []byte) Settings {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return Defaults()
	}

	str := func(key string) string {
		switch v := raw[key].(type) {
		case string:
			return v
		case []any:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok {
					return s
				}
			}
		}
		return ""
	}

	s := Settings{
		Top:             str("top"),
		HairColor:       str("hairColor"),
		FacialHair:      str("facialHair"),
		FacialHairColor: str("facialHairColor"),
		SkinColor:       str("skinColor"),
		Accessory:       str("accessory"),
		Eyes:            str("eyes"),
		Mouth:           str("mouth"),
		Name:            str("name"),
	}
	if s.Accessory == "" {
		s.Accessory = str("accessories")
	}
	return s.WithDefaults()
}

// Encode serializes the settings for storage.
func (s Settings) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// Hex strips a leading '#' from a color value.
func Hex(color string) string {
	return strings.TrimPrefix(color, "#")
}
