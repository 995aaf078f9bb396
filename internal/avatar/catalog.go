package avatar

import "slices"

// Catalog holds the selectable values of every appearance option. Color
// lists hold bare hex values without '#'.
type Catalog struct {
	Top             []string
	HairColor       []string
	FacialHair      []string
	FacialHairColor []string
	SkinColor       []string
	Accessories     []string
	Eyes            []string
	Mouth           []string
}

// FallbackCatalog is used whenever the remote schema is unavailable or a
// property carries no enumeration.
func FallbackCatalog() Catalog {
	return Catalog{
		Top: []string{
			"bigHair", "bob", "bun", "curly", "curvy", "dreads", "dreads01", "dreads02", "frida",
			"frizzle", "fro", "froBand", "hat", "hijab", "longButNotTooLong", "miaWallace",
			"shaggy", "shaggyMullet", "shavedSides", "shortCurly", "shortFlat", "shortRound",
			"shortWaved", "sides", "straight01", "straight02", "straightAndStrand", "theCaesar",
			"theCaesarAndSidePart", "turban", "winterHat1", "winterHat02", "winterHat03", "winterHat04", "noHair",
		},
		HairColor: []string{
			"000000", "2c1b18", "4a312c", "724133", "a55728", "b58143",
			"c93305", "d6b370", "e8e1e1", "ecdcbf", "f59797",
		},
		FacialHair: []string{"blank", "beardLight", "beardMedium", "moustacheFancy", "moustacheMagnum"},
		FacialHairColor: []string{
			"2c1b18", "000000", "4a312c", "724133", "a55728", "b58143",
			"c93305", "d6b370", "e8e1e1", "ecdcbf",
		},
		SkinColor:   []string{"F9D3B4", "EAC393", "D0A17F", "A67449", "8D5524", "F2D3B1", "C58C85"},
		Accessories: []string{"blank", "eyepatch", "kurt", "prescription01", "prescription02", "round", "sunglasses", "wayfarers"},
		Eyes:        []string{"closed", "cry", "default", "eyeRoll", "happy", "hearts", "side", "squint", "surprised", "wink", "winkWacky", "xDizzy"},
		Mouth:       []string{"concerned", "default", "disbelief", "eating", "grimace", "sad", "screamOpen", "serious", "smile", "tongue", "twinkle", "vomit"},
	}
}

// schemaKeys maps catalog lists to avatar schema property names.
func (c *Catalog) schemaKeys() map[string]*[]string {
	return map[string]*[]string{
		"top":             &c.Top,
		"hairColor":       &c.HairColor,
		"facialHair":      &c.FacialHair,
		"facialHairColor": &c.FacialHairColor,
		"skinColor":       &c.SkinColor,
		"accessories":     &c.Accessories,
		"eyes":            &c.Eyes,
		"mouth":           &c.Mouth,
	}
}

// merge builds a catalog from schema enumerations, keeping the fallback for
// every property that has none.
func merge(enums map[string][]string) Catalog {
	cat := FallbackCatalog()
	for key, dst := range cat.schemaKeys() {
		values := enums[key]
		if len(values) == 0 {
			continue
		}
		values = slices.Clone(values)
		switch key {
		case "hairColor", "facialHairColor", "skinColor":
			for i, v := range values {
				values[i] = Hex(v)
			}
		}
		*dst = values
	}
	return cat
}
