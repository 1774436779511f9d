package tui

import "github.com/MKhiriev/go-custody/models"

type overviewLoadedMsg struct {
	overview models.CustodyOverview
	journal  []models.JournalEntry
	err      error
}

type increasedMsg struct {
	counter uint32
	err     error
}

type withdrawnMsg struct {
	payload models.BucketPayload
	err     error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
