package avatar

import (
	"hash/fnv"
	"strings"

	"charm.land/lipgloss/v2"
)

var eyeGlyphs = map[string]string{
	"closed":    "-   -",
	"cry":       "╥   ╥",
	"default":   "●   ●",
	"eyeRoll":   "◔   ◔",
	"happy":     "^   ^",
	"hearts":    "♥   ♥",
	"side":      "◐   ◐",
	"squint":    "≖   ≖",
	"surprised": "○   ○",
	"wink":      "●   -",
	"winkWacky": "◉   -",
	"xDizzy":    "x   x",
}

var mouthGlyphs = map[string]string{
	"concerned":  "︵",
	"default":    "─",
	"disbelief":  "○",
	"eating":     "ω",
	"grimace":    "▭",
	"sad":        "︵",
	"screamOpen": "O",
	"serious":    "─",
	"smile":      "‿",
	"tongue":     "ᴗ",
	"twinkle":    "◡",
	"vomit":      "﹏",
}

// topRow draws the hair or hat line, seven cells wide.
func topRow(top string) string {
	switch {
	case top == "noHair":
		return "       "
	case IsHatLike(top):
		return " ▄███▄ "
	case strings.HasPrefix(top, "long"), top == "bigHair", top == "curvy", top == "miaWallace", top == "straight01", top == "straight02":
		return "▟█████▙"
	case strings.HasPrefix(top, "dreads"), top == "fro", top == "froBand", top == "curly", top == "frizzle":
		return "▒▓▓▓▓▓▒"
	default:
		return " ▄▄▄▄▄ "
	}
}

func accessoryRow(accessory, eyes string) string {
	switch accessory {
	case "eyepatch":
		return "■   " + eyes[strings.LastIndex(eyes, " ")+1:]
	case "sunglasses", "wayfarers":
		return "▀▀-▀▀"
	case "round", "kurt", "prescription01", "prescription02":
		return "(" + eyes[:strings.Index(eyes, " ")] + ")(" + eyes[strings.LastIndex(eyes, " ")+1:] + ")"
	}
	return eyes
}

// Portrait renders a small colored face for the terminal.
func Portrait(s Settings) string {
	s = s.WithDefaults()

	skin := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + Hex(s.SkinColor)))
	hair := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + Hex(s.HairColor)))
	beard := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + Hex(s.FacialHairColor)))
	coat := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))

	eyes, ok := eyeGlyphs[s.Eyes]
	if !ok {
		eyes = eyeGlyphs["default"]
	}
	mouth, ok := mouthGlyphs[s.Mouth]
	if !ok {
		mouth = mouthGlyphs["smile"]
	}

	face := accessoryRow(s.Accessory, eyes)
	lines := []string{
		hair.Render(topRow(s.Top)),
		skin.Render("│") + skin.Render(center(face, 5)) + skin.Render("│"),
		skin.Render("│") + skin.Render(center(mouth, 5)) + skin.Render("│"),
	}
	if FacialHairColorApplies(s.FacialHair) {
		pattern := " ░░░░░ "
		if strings.HasPrefix(s.FacialHair, "moustache") {
			pattern = "  ═══  "
		}
		lines = append(lines, beard.Render(pattern))
	} else {
		lines = append(lines, skin.Render(" ╰───╯ "))
	}
	lines = append(lines, coat.Render("╱▔▔┼▔▔╲"))
	return strings.Join(lines, "\n")
}

func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Patient derives a stable appearance for a patient from its identifier.
func Patient(id string) Settings {
	cat := FallbackCatalog()
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	n := int(h.Sum32())

	pick := func(list []string, salt int) string {
		return list[(n/(salt+1))%len(list)]
	}
	return Settings{
		Top:             pick(cat.Top, 0),
		HairColor:       "#" + pick(cat.HairColor, 1),
		FacialHair:      pick(cat.FacialHair, 2),
		FacialHairColor: "#" + pick(cat.FacialHairColor, 3),
		SkinColor:       "#" + pick(cat.SkinColor, 4),
		Accessory:       "blank",
		Eyes:            pick([]string{"cry", "squint", "side", "closed", "surprised"}, 5),
		Mouth:           pick([]string{"concerned", "sad", "grimace", "serious", "disbelief"}, 6),
		Name:            id,
	}
}
