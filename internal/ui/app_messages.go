package ui

// Unset is the selection sentinel meaning no choice has been made.
const Unset = "0"

// Field identifies one of the picker's two selectors.
type Field int

const (
	FieldRegion Field = iota
	FieldLocality
)

func (f Field) String() string {
	if f == FieldLocality {
		return "city"
	}
	return "uf"
}

// RegionsLoadedMsg carries the result of the one-shot region fetch.
type RegionsLoadedMsg struct {
	Codes []string
	Err   error
}

// LocalitiesLoadedMsg carries the localities fetched for Region.
// Responses are applied in arrival order, whatever Region they belong to.
type LocalitiesLoadedMsg struct {
	Region string
	Names  []string
	Err    error
}

// OpenSelectorMsg asks the app to show a SelectorModal for Field.
type OpenSelectorMsg struct {
	Field       Field
	Placeholder string
	Options     []string
	Current     string
}

// SelectionMsg reports a raw value chosen in a SelectorModal.
type SelectionMsg struct {
	Field Field
	Value any
}

// DismissModalMsg closes the top overlay without a selection.
type DismissModalMsg struct{}

// NavigateMsg asks the app to open Route with Params.
type NavigateMsg struct {
	Route  AppMode
	Params map[string]string
}

// BackMsg pops the current screen.
type BackMsg struct{}

// ToggleHelpMsg shows or hides the key help bar.
type ToggleHelpMsg struct{}
