// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-custody/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(row("application", "go-custody"))
	b.WriteString(row("version", valueOrNA(info.BuildVersion())))
	b.WriteString(row("date", valueOrNA(info.BuildDate())))
	b.WriteString(row("commit", valueOrNA(info.BuildCommit())))

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
