package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-custody/internal/service"
	"github.com/MKhiriev/go-custody/models"
)

const (
	journalPreview = 8
	statusTTL      = 3 * time.Second
)

type dashboardModel struct {
	ctx     context.Context
	custody service.ClientCustodyService
	build   models.AppBuildInfo

	spinner spinner.Model
	loading bool

	overview models.CustodyOverview
	journal  []models.JournalEntry
	lastOut  *models.BucketPayload

	withdrawing bool
	amountInput textinput.Model

	status        string
	errMsg        string
	showBuildInfo bool

	// copyToClipboard is swapped in tests; the system clipboard is not
	// available on headless runners.
	copyToClipboard func(string) error
}

func newDashboardModel(ctx context.Context, custody service.ClientCustodyService, build models.AppBuildInfo) dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "amount"
	input.CharLimit = 19

	return dashboardModel{
		ctx:             ctx,
		custody:         custody,
		build:           build,
		spinner:         sp,
		loading:         true,
		amountInput:     input,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case overviewLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.overview = msg.overview
		m.journal = msg.journal
		return m, nil
	case increasedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.overview.Counter = msg.counter
		return m.withStatus("Counter is now " + strconv.FormatUint(uint64(msg.counter), 10))
	case withdrawnMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.lastOut = &msg.payload
		m.errMsg = ""
		m.loading = true
		next, statusCmd := m.withStatus("Withdrew " + strconv.FormatInt(int64(msg.payload.Amount), 10))
		return next, tea.Batch(statusCmd, m.spinner.Tick, m.cmdLoad())
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard: " + msg.err.Error()
			return m, nil
		}
		return m.withStatus("Copied " + msg.what)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.withdrawing {
		var cmd tea.Cmd
		m.amountInput, cmd = m.amountInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.errMsg != "" && (key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc)) {
		m.errMsg = ""
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}
	if m.withdrawing {
		return m.updateWithdrawInput(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(msg, keys.increase):
		return m, m.cmdIncrease()
	case key.Matches(msg, keys.withdraw):
		m.withdrawing = true
		m.amountInput.SetValue("")
		return m, m.amountInput.Focus()
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy()
	}

	return m, nil
}

func (m dashboardModel) updateWithdrawInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.withdrawing = false
		m.amountInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		amount, err := strconv.ParseInt(strings.TrimSpace(m.amountInput.Value()), 10, 64)
		if err != nil || amount < 0 {
			m.errMsg = "Amount must be a non-negative integer"
			return m, nil
		}
		m.withdrawing = false
		m.amountInput.Blur()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdWithdraw(models.Amount(amount)))
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	return m, cmd
}

func (m dashboardModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx, custody := m.ctx, m.custody
	return func() tea.Msg {
		overview, err := custody.Overview(ctx)
		if err != nil {
			return overviewLoadedMsg{err: err}
		}
		journal, err := custody.Journal(ctx, models.JournalFilter{Limit: journalPreview})
		return overviewLoadedMsg{overview: overview, journal: journal, err: err}
	}
}

func (m dashboardModel) cmdIncrease() tea.Cmd {
	ctx, custody := m.ctx, m.custody
	return func() tea.Msg {
		counter, err := custody.Increase(ctx)
		return increasedMsg{counter: counter, err: err}
	}
}

func (m dashboardModel) cmdWithdraw(amount models.Amount) tea.Cmd {
	ctx, custody := m.ctx, m.custody
	return func() tea.Msg {
		payload, err := custody.Withdraw(ctx, amount)
		return withdrawnMsg{payload: payload, err: err}
	}
}

// cmdCopy copies the last withdrawn bucket as JSON, or the supply resource
// address when nothing was withdrawn yet.
func (m dashboardModel) cmdCopy() tea.Cmd {
	what, text := "supply address", string(m.overview.Resources.Supply.Address)
	if m.lastOut != nil {
		what, text = "last withdrawal", renderPayloadJSON(*m.lastOut)
	}
	if text == "" {
		return nil
	}

	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{what: what, err: copyFn(text)}
	}
}
