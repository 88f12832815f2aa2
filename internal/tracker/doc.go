// Package tracker holds the dashboard state: tasks, projects, the active tab
// and the settings values, plus the static reference data and mock figures
// the panels display.
package tracker
