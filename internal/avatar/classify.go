package avatar

import (
	"regexp"
	"slices"
)

var hatLike = regexp.MustCompile(`(?i)hat|turban|hijab`)

// hairOnly lists the tops that are plain hairstyles.
var hairOnly = []string{
	"bigHair", "bob", "bun", "curly", "curvy", "dreads", "dreads01", "dreads02", "frida",
	"frizzle", "fro", "froBand", "longButNotTooLong", "miaWallace", "shaggy", "shaggyMullet",
	"shavedSides", "shortCurly", "shortFlat", "shortRound", "shortWaved", "sides",
	"straight01", "straight02", "straightAndStrand", "theCaesar", "theCaesarAndSidePart",
}

// IsHatLike reports whether top is a hat, turban or hijab.
func IsHatLike(top string) bool {
	return hatLike.MatchString(top)
}

// IsHairLike reports whether top is a plain hairstyle.
func IsHairLike(top string) bool {
	return slices.Contains(hairOnly, top)
}

// HairColorLabel names what the hair color applies to for top.
func HairColorLabel(top string) string {
	switch {
	case IsHatLike(top):
		return "Color sombrero"
	case IsHairLike(top):
		return "Color de pelo"
	default:
		return "Color (no aplica)"
	}
}

// HairColorApplies reports whether the hair color has any visible effect.
func HairColorApplies(top string) bool {
	return IsHatLike(top) || IsHairLike(top)
}

// FacialHairColorApplies reports whether the facial hair color is used.
func FacialHairColorApplies(facialHair string) bool {
	return facialHair != "blank"
}
