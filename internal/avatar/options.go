package avatar

import (
	"net/url"
	"strconv"
)

// DefaultRenderURL renders avatars as SVG over HTTP.
const DefaultRenderURL = "https://api.dicebear.com/9.x/avataaars/svg"

// DoctorSeed keeps every random part of the doctor avatar stable.
const DoctorSeed = "doctor1"

// Options returns the avatar generator options for s. Hair color is sent as
// hairColor for hairstyles and as hatColor for hats; other tops get neither.
func Options(s Settings, seed string) url.Values {
	s = s.WithDefaults()
	if seed == "" {
		seed = DoctorSeed
	}

	facialHairProbability := 100
	if !FacialHairColorApplies(s.FacialHair) {
		facialHairProbability = 0
	}

	v := url.Values{}
	v.Set("seed", seed)
	v.Set("top", s.Top)
	v.Set("eyes", s.Eyes)
	v.Set("mouth", s.Mouth)
	v.Set("accessories", s.Accessory)
	v.Set("eyebrows", "default")
	v.Set("facialHair", s.FacialHair)
	v.Set("facialHairColor", Hex(s.FacialHairColor))
	v.Set("facialHairProbability", strconv.Itoa(facialHairProbability))
	v.Set("clothing", "blazerAndShirt")
	v.Set("clothesColor", "ffffff")
	v.Set("skinColor", Hex(s.SkinColor))
	switch {
	case IsHairLike(s.Top):
		v.Set("hairColor", Hex(s.HairColor))
	case IsHatLike(s.Top):
		v.Set("hatColor", Hex(s.HairColor))
	}
	return v
}

// URL returns the render URL for s. An empty base uses DefaultRenderURL.
func URL(base string, s Settings) string {
	if base == "" {
		base = DefaultRenderURL
	}
	return base + "?" + Options(s, DoctorSeed).Encode()
}
