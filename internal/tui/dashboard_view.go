package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-custody/models"
)

const dashboardHotKeys = "r: refresh │ i: increase │ w: withdraw │ c: copy │ v: version │ q: quit"

func (m dashboardModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.build))
	}

	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...\n\n")
	}

	b.WriteString(titleStyle.Render("Balances"))
	b.WriteString("\n")
	b.WriteString(row("supply", fmt.Sprintf("%d %s", m.overview.Balance, m.overview.Resources.Supply.Symbol)))
	b.WriteString(row("fees", fmt.Sprintf("%d", m.overview.Fees)))
	b.WriteString(row("counter", fmt.Sprintf("%d", m.overview.Counter)))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Resources"))
	b.WriteString("\n")
	b.WriteString(resourceRow("supply", m.overview.Resources.Supply))
	b.WriteString(resourceRow("fee", m.overview.Resources.Fee))
	b.WriteString(resourceRow("collection", m.overview.Resources.NonFungible))
	b.WriteString(resourceRow("confidential", m.overview.Resources.Confidential))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Recent operations"))
	b.WriteString("\n")
	if len(m.journal) == 0 {
		b.WriteString("-\n")
	}
	for _, entry := range m.journal {
		b.WriteString(fmt.Sprintf("%s  %-22s %6d  %s\n",
			entry.CreatedAt.Format("01-02 15:04:05"), entry.Operation, entry.Amount, fitText(entry.Detail, 32)))
	}

	if m.withdrawing {
		b.WriteString("\nWithdraw (fee is paid automatically): ")
		b.WriteString(m.amountInput.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	page := renderPage("CUSTODY DASHBOARD", strings.TrimRight(b.String(), "\n"), dashboardHotKeys)
	if m.errMsg != "" {
		page = lipgloss.JoinVertical(lipgloss.Left, page, "", errorOverlayModel{message: m.errMsg}.View())
	}
	return appStyle.Render(page)
}

func row(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}

func resourceRow(label string, r models.ResourceIdentity) string {
	if r.Address == "" {
		return row(label, "-")
	}
	return row(label, fmt.Sprintf("%s (%s)", fitText(string(r.Address), 40), r.Kind))
}

func renderPayloadJSON(p models.BucketPayload) string {
	raw, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return string(raw)
}
