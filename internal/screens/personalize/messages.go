package personalize

import "github.com/clinicaortiz/clinica/internal/avatar"

// catalogMsg delivers the option catalog.
type catalogMsg struct {
	Catalog avatar.Catalog
}

// saveMsg fires when the autosave debounce for change Seq elapses.
type saveMsg struct {
	Seq int
}
