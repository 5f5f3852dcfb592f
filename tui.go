package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type generatedMsg struct{ set NumberSet }

type exportedMsg struct {
	path string
	err  error
}

type TUIDeps struct {
	Gen      *Generator
	Exporter *Exporter
	Locale   *Locale
	Delay    time.Duration
}

type tuiModel struct {
	theme Theme
	deps  TUIDeps

	ticket  *Ticket
	cursor  int
	issueNo string
	notice  string
}

func RunTUI(deps TUIDeps) error {
	p := tea.NewProgram(newTUIModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newTUIModel(deps TUIDeps) tuiModel {
	return tuiModel{
		theme:   DefaultTheme(),
		deps:    deps,
		ticket:  NewTicket(),
		issueNo: deps.Gen.IssueNumber(),
	}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		m.ticket.Commit(msg.set)
		m.issueNo = m.deps.Gen.IssueNumber()
		m.cursor = m.ticket.Len() - 1
		log.Debugf("generated %s %v", msg.set.ID, msg.set.Numbers)
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			log.Errorf("이미지 다운로드 실패: %v", msg.err)
			m.notice = m.deps.Locale.Notice(msg.err)
			return m, nil
		}
		log.Infof("exported %s", msg.path)
		m.notice = m.deps.Locale.T(msgSaved, msg.path)
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "g", " ":
			return m.generate()

		case "s":
			return m.export()

		case "d", "x", "delete":
			if _, err := m.ticket.RemoveAt(m.cursor); err == nil {
				m.cursor = min(m.cursor, max(m.ticket.Len()-1, 0))
			}
			return m, nil

		case "c":
			m.ticket.Clear()
			m.cursor = 0
			m.notice = m.deps.Locale.T(msgCleared)
			return m, nil

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.cursor < m.ticket.Len()-1 {
				m.cursor++
			}
			return m, nil
		}
	}
	return m, nil
}

// generate disables the trigger and schedules the commit after the delay.
func (m tuiModel) generate() (tea.Model, tea.Cmd) {
	if err := m.ticket.BeginGenerate(); err != nil {
		m.notice = m.deps.Locale.Notice(err)
		return m, nil
	}
	gen := m.deps.Gen
	return m, tea.Tick(m.deps.Delay, func(time.Time) tea.Msg {
		return generatedMsg{set: gen.Generate()}
	})
}

func (m tuiModel) export() (tea.Model, tea.Cmd) {
	sets := m.ticket.Sets()
	if len(sets) == 0 {
		m.notice = m.deps.Locale.Notice(ErrEmptyTicket)
		return m, nil
	}
	exp := m.deps.Exporter
	return m, func() tea.Msg {
		path, err := exp.Save(sets, "")
		return exportedMsg{path: path, err: err}
	}
}

func (m tuiModel) View() string {
	loc := m.deps.Locale
	t := m.theme
	sets := m.ticket.Sets()

	var buttons []string
	genLabel := loc.T(msgGenerateBtn, len(sets), MaxSets)
	if m.ticket.Busy() {
		genLabel = loc.T(msgGenerating)
	}
	if m.ticket.CanGenerate() {
		buttons = append(buttons, t.Button.Render(genLabel))
	} else {
		buttons = append(buttons, t.Disabled.Render(genLabel))
	}
	if len(sets) > 0 {
		buttons = append(buttons, t.Button.Render(loc.T(msgExportBtn)), t.Button.Render(loc.T(msgClearBtn)))
	}

	var card strings.Builder
	card.WriteString(t.Title.Render("LOTTO 6/45"))
	card.WriteByte('\n')
	card.WriteString(t.Subtitle.Render(loc.Date(time.Now())))
	card.WriteString("\n\n")
	if len(sets) == 0 {
		card.WriteString(t.Help.Render(loc.T(msgEmptyHint)))
	}
	for i, s := range sets {
		badges := make([]string, 0, len(s.Numbers)+1)
		badges = append(badges, t.Label.Render(Label(i)))
		for _, n := range s.Numbers {
			badges = append(badges, t.Badge(n))
		}
		row := strings.Join(badges, " ")
		if i == m.cursor {
			row = t.Selected.Render(row)
		} else {
			row = t.Row.Render(row)
		}
		card.WriteString(row)
		card.WriteByte('\n')
	}
	if len(sets) > 0 {
		card.WriteString("\n")
		card.WriteString(t.Subtitle.Render(loc.T(msgIssueNo)))
		card.WriteByte('\n')
		card.WriteString(t.Mono.Render("#" + m.issueNo))
		card.WriteString("\n\n")
		card.WriteString(t.Help.Render("⚡ " + loc.T(msgDisclaimer)))
		card.WriteByte('\n')
		card.WriteString(t.Help.Render(loc.T(msgGoodLuck) + " 🍀"))
		card.WriteByte('\n')
		card.WriteString(t.Help.Render(copyrightLine))
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		t.Card.Render(card.String()),
	}
	if len(sets) == 0 {
		parts = append(parts, t.Help.Render("⚡ "+loc.T(msgDisclaimer)+"\n"+loc.T(msgGoodLuck)+" 🍀"))
	}
	if m.notice != "" {
		parts = append(parts, t.Notice.Render(m.notice))
	}
	parts = append(parts, t.Help.Render(loc.T(msgHelpKeys)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
