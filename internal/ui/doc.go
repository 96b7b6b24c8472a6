// Package ui is the ecoleta terminal front end built on Bubble Tea.
//
// Core abstractions:
//   - View: a screen or modal with its own init, update and view (Elm-style)
//   - ViewStack: route-based navigation (push on navigate, pop on back)
//   - OverlayStack: modal views that receive input before the screen below
//   - FocusManager: Tab order across the controls of a screen
//   - KeybindRegistry: global bindings filtered by route
//
// HomeView is the location picker; PointsView receives its selection.
package ui
