package personalize

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/prefs"
	"github.com/clinicaortiz/clinica/internal/router"
	"github.com/clinicaortiz/clinica/internal/screen"
	"github.com/clinicaortiz/clinica/internal/ui/components"
	"github.com/clinicaortiz/clinica/internal/ui/layout"
)

// SaveDelay debounces autosave after the last change.
const SaveDelay = 250 * time.Millisecond

// NameMaxLen bounds the player name.
const NameMaxLen = 24

// CatalogSource provides the selectable appearance options.
type CatalogSource interface {
	Catalog(ctx context.Context) avatar.Catalog
}

// Deps are the collaborators of the personalize screen.
type Deps struct {
	Prefs   *prefs.Prefs
	Catalog CatalogSource
	Logger  *zap.Logger
}

// Field indexes, in focus order.
const (
	fieldName = iota
	fieldTop
	fieldHairColor
	fieldFacialHair
	fieldFacialHairColor
	fieldAccessory
	fieldEyes
	fieldMouth
	fieldSkinColor
	fieldExit
	fieldCount
)

// PersonalizeScreen edits the avatar and player name with autosave.
type PersonalizeScreen struct {
	deps      Deps
	settings  avatar.Settings
	catalog   avatar.Catalog
	loading   bool
	name      components.TextInput
	selectors map[int]*components.Selector
	exit      components.Button
	focus     int

	saveSeq int
	dirty   bool
	saveErr error
}

var (
	_ screen.Screen          = (*PersonalizeScreen)(nil)
	_ screen.KeyHintProvider = (*PersonalizeScreen)(nil)
	_ screen.EscapeHandler   = (*PersonalizeScreen)(nil)
)

// New creates a PersonalizeScreen over the stored settings. The fallback
// catalog is used until the remote one arrives.
func New(deps Deps) *PersonalizeScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	s := &PersonalizeScreen{
		deps:     deps,
		settings: avatar.Defaults(),
		catalog:  avatar.FallbackCatalog(),
		loading:  deps.Catalog != nil,
	}
	if deps.Prefs != nil {
		s.settings = deps.Prefs.Avatar(context.Background())
	}

	s.name = components.NewTextInput("Nombre", avatar.DefaultName, NameMaxLen)
	s.name.SetValue(s.settings.Name)
	s.exit = components.NewButton("Salir", false, s.leave)
	s.buildSelectors()
	return s
}

func (s *PersonalizeScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.name.Init()}
	if s.deps.Catalog != nil {
		src := s.deps.Catalog
		cmds = append(cmds, func() tea.Msg {
			return catalogMsg{Catalog: src.Catalog(context.Background())}
		})
	}
	return tea.Batch(cmds...)
}

func (s *PersonalizeScreen) Title() string {
	return "Personalizar"
}

// CapturesEscape keeps Esc so a pending change is saved before leaving.
func (s *PersonalizeScreen) CapturesEscape() bool {
	return true
}

func (s *PersonalizeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Campo"},
		{Key: "←→", Description: "Cambiar"},
	}
	if s.focus != fieldName {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Restablecer"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Salir"})
}

// Settings returns the settings being edited.
func (s *PersonalizeScreen) Settings() avatar.Settings {
	return s.settings
}

func (s *PersonalizeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		s.catalog = msg.Catalog
		s.loading = false
		s.buildSelectors()
		return s, nil

	case saveMsg:
		if msg.Seq == s.saveSeq {
			s.save()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == fieldName {
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PersonalizeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc":
		return s, s.leave()
	case "up", "shift+tab":
		return s, s.moveFocus(-1)
	case "down", "tab":
		return s, s.moveFocus(1)
	case "r":
		if s.focus != fieldName {
			s.reset()
			return s, nil
		}
	}

	switch s.focus {
	case fieldName:
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		if name := s.name.Value(); name != s.settings.Name && name != "" {
			s.settings.Name = name
			return s, tea.Batch(cmd, s.changed())
		}
		return s, cmd
	case fieldExit:
		var cmd tea.Cmd
		s.exit, cmd = s.exit.Update(msg)
		return s, cmd
	}

	sel, ok := s.selectors[s.focus]
	if !ok {
		return s, nil
	}
	updated, changed := sel.Update(msg)
	if !changed {
		return s, nil
	}
	*sel = updated
	s.apply(s.focus, sel.Value())
	return s, s.changed()
}

// moveFocus steps the focus, skipping disabled selectors.
func (s *PersonalizeScreen) moveFocus(delta int) tea.Cmd {
	next := s.focus
	for range fieldCount {
		next = (next + delta + fieldCount) % fieldCount
		if sel, ok := s.selectors[next]; !ok || !sel.Disabled {
			break
		}
	}
	s.focus = next
	s.exit.Active = next == fieldExit
	if next == fieldName {
		return s.name.Focus()
	}
	s.name.Blur()
	return nil
}

// apply writes a selector value into the settings.
func (s *PersonalizeScreen) apply(field int, v string) {
	switch field {
	case fieldTop:
		s.settings.Top = v
	case fieldHairColor:
		s.settings.HairColor = v
	case fieldFacialHair:
		s.settings.FacialHair = v
	case fieldFacialHairColor:
		s.settings.FacialHairColor = v
	case fieldAccessory:
		s.settings.Accessory = v
	case fieldEyes:
		s.settings.Eyes = v
	case fieldMouth:
		s.settings.Mouth = v
	case fieldSkinColor:
		s.settings.SkinColor = v
	}
	s.refreshApplicability()
}

// changed marks the settings dirty and schedules a debounced save. Only the
// latest change's timer saves.
func (s *PersonalizeScreen) changed() tea.Cmd {
	s.dirty = true
	s.saveSeq++
	seq := s.saveSeq
	return tea.Tick(SaveDelay, func(time.Time) tea.Msg {
		return saveMsg{Seq: seq}
	})
}

func (s *PersonalizeScreen) save() {
	if !s.dirty || s.deps.Prefs == nil {
		return
	}
	s.dirty = false
	s.saveErr = s.deps.Prefs.SaveAvatar(context.Background(), s.settings)
	if s.saveErr != nil {
		s.deps.Logger.Warn("save avatar settings", zap.Error(s.saveErr))
	}
}

// reset restores the defaults and forgets the stored settings.
func (s *PersonalizeScreen) reset() {
	s.settings = avatar.Defaults()
	s.name.SetValue(s.settings.Name)
	s.saveSeq++ // cancels a pending save
	s.dirty = false
	s.saveErr = nil
	if s.deps.Prefs != nil {
		if err := s.deps.Prefs.ResetAvatar(context.Background()); err != nil {
			s.saveErr = err
			s.deps.Logger.Warn("reset avatar settings", zap.Error(err))
		}
	}
	s.buildSelectors()
}

// leave saves pending changes and returns to the previous screen.
func (s *PersonalizeScreen) leave() tea.Cmd {
	s.save()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func withHash(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = "#" + avatar.Hex(v)
	}
	return out
}

func (s *PersonalizeScreen) buildSelectors() {
	c := s.catalog
	st := s.settings
	sel := func(label string, options []string, value string) *components.Selector {
		x := components.NewSelector(label, options, value)
		return &x
	}

	s.selectors = map[int]*components.Selector{
		fieldTop:             sel("Peinado", c.Top, st.Top),
		fieldHairColor:       sel(avatar.HairColorLabel(st.Top), withHash(c.HairColor), st.HairColor),
		fieldFacialHair:      sel("Vello facial", c.FacialHair, st.FacialHair),
		fieldFacialHairColor: sel("Color vello facial", withHash(c.FacialHairColor), st.FacialHairColor),
		fieldAccessory:       sel("Accesorio", c.Accessories, st.Accessory),
		fieldEyes:            sel("Ojos", c.Eyes, st.Eyes),
		fieldMouth:           sel("Boca", c.Mouth, st.Mouth),
		fieldSkinColor:       sel("Color de piel", withHash(c.SkinColor), st.SkinColor),
	}
	s.refreshApplicability()
}

// refreshApplicability disables the color selectors that have no effect.
func (s *PersonalizeScreen) refreshApplicability() {
	hair := s.selectors[fieldHairColor]
	hair.Label = avatar.HairColorLabel(s.settings.Top)
	hair.Disabled = !avatar.HairColorApplies(s.settings.Top)

	s.selectors[fieldFacialHairColor].Disabled = !avatar.FacialHairColorApplies(s.settings.FacialHair)
}
