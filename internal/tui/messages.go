package tui

import "github.com/MKhiriev/gumi-collection/models"

type authDoneMsg struct {
	session models.Session
}

type authFailedMsg struct {
	err error
}

// listLoadedMsg follows Load and LoadMore. The list itself is read back from
// the session service.
type listLoadedMsg struct {
	more bool
	err  error
}

type facetsLoadedMsg struct {
	facets models.FilterFacets
	err    error
}

// pollMsg re-reads the session list so background refreshes become visible.
type pollMsg struct{}

type itemSavedMsg struct {
	err error
}

type toggledMsg struct {
	err error
}

type importDoneMsg struct {
	result models.ImportResult
	err    error
}

type fileWrittenMsg struct {
	path string
	err  error
}

type clearedMsg struct {
	deleted int64
	err     error
}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type statsLoadedMsg struct {
	bundle models.StatsBundle
	err    error
}

type signedOutMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
