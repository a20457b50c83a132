package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/ghost-esp-control/internal/menu"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	rootTitle             = "Ghost ESP"
	terminalTitle         = "Terminal"
	defaultViewportHeight = 16
	defaultViewportWidth  = 60
	modalChromeRows       = 5 // border, title, blank, buttons
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text is already styled; use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	var body []styledLine
	switch m.nav.Current {
	case menu.ViewTerminal:
		body = m.terminalLines()
	case menu.ViewTextInput:
		body = m.inputLines()
	case menu.ViewModal:
		body = m.modalLines()
	default:
		body = m.listLines()
	}

	lines := make([]styledLine, 0, len(body)+4)
	lines = append(lines, m.headerLine())
	lines = append(lines, body...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	footer := m.footerLines()
	lines = limitHeight(lines, m.height-1-len(footer), m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottom := applyWidth(append([]styledLine{statusLine}, footer...), m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

// headerLine shows the title of the active view and the link state.
func (m *Model) headerLine() styledLine {
	title := rootTitle
	switch m.nav.Current {
	case menu.ViewTerminal:
		title = terminalTitle
		if h := m.terminal.Header(); h != "" {
			title = fmt.Sprintf("%s: %s", terminalTitle, h)
		}
	case menu.ViewTextInput:
		title = m.prompt
	case menu.ViewModal:
		title = ""
	default:
		if lvl := m.currentLevel(); lvl != nil && lvl.Title != "" {
			title = lvl.Title
		}
	}
	linkStyle, linkText := styles.LinkDown, "○ offline"
	if m.link.Connected() {
		linkStyle, linkText = styles.LinkUp, "● online"
	}
	link := linkText
	if linkStyle != nil {
		link = linkStyle.Render(linkText)
	}
	text := title
	if styles.Header != nil {
		text = styles.Header.Render(title)
	}
	if text != "" {
		text += "  "
	}
	return styledLine{text: text + link, raw: true}
}

func (m *Model) listLines() []styledLine {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	m.syncViewport(current)
	start := 0
	items := current.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(items) > maxItems {
		start = current.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(items) {
			start = len(items) - maxItems
			if start < 0 {
				start = 0
			}
			current.ViewportOffset = start
		}
		items = items[start : start+maxItems]
	}
	lines := make([]styledLine, 0, len(items))
	if len(current.Items) == 0 {
		return append(lines, styledLine{text: "(no entries)", style: styles.Info})
	}
	for i, item := range items {
		lines = append(lines, m.buildItemLine(item.Label, start+i, current.Cursor, m.width))
	}
	return lines
}

// buildItemLine constructs a single styledLine for a menu row. When width is
// known the text is padded so the highlight spans the full line.
func (m *Model) buildItemLine(label string, idx, cursor, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - ansi.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) terminalLines() []styledLine {
	lines := make([]styledLine, 0, 2)
	if path := m.capturePath(); path != "" {
		lines = append(lines, styledLine{text: "capture: " + path, style: styles.Capture})
	}
	if m.terminal.Len() == 0 {
		return append(lines, styledLine{text: "waiting for output…", style: styles.Info})
	}
	for _, row := range strings.Split(m.viewport.View(), "\n") {
		lines = append(lines, styledLine{text: row, style: styles.TerminalBody})
	}
	return lines
}

func (m *Model) inputLines() []styledLine {
	return []styledLine{
		{},
		{text: m.input.View(), raw: true},
	}
}

func (m *Model) modalLines() []styledLine {
	if m.modal == nil {
		return nil
	}
	title := m.modal.header
	if styles.ModalTitle != nil {
		title = styles.ModalTitle.Render(title)
	}
	body := m.viewport.View()
	if styles.ModalBody != nil {
		body = styles.ModalBody.Render(body)
	}
	buttons := "[enter] OK"
	if m.modal.kind == modalConfirm {
		buttons = "[enter] OK   [esc] Cancel"
	}
	if styles.ModalButton != nil {
		buttons = styles.ModalButton.Render(buttons)
	}
	box := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", buttons)
	if styles.ModalFrame != nil {
		box = styles.ModalFrame.Render(box)
	}
	rows := strings.Split(box, "\n")
	lines := make([]styledLine, len(rows))
	for i, row := range rows {
		lines[i] = styledLine{text: row, raw: true}
	}
	return lines
}

func (m *Model) footerLines() []styledLine {
	if !m.showFooter {
		return nil
	}
	var keys help.KeyMap = m.keys
	switch m.nav.Current {
	case menu.ViewTextInput:
		keys = inputKeyMap{k: m.keys}
	case menu.ViewTerminal:
		keys = terminalKeyMap{k: m.keys}
	case menu.ViewModal:
		keys = modalKeyMap{}
	}
	m.help.Width = m.width
	return []styledLine{{}, {text: m.help.View(keys), raw: true}}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.layout()
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

// layout sizes the shared viewport used by the terminal and modal views.
func (m *Model) layout() {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultViewportWidth
	}
	if height <= 0 {
		height = defaultViewportHeight + 3
	}
	used := 3 // header, capture path, status
	if m.showFooter {
		used += 2
	}
	m.viewport.Width = width
	m.viewport.Height = max(1, height-used)
	if m.nav.Current == menu.ViewModal {
		m.viewport.Height = max(1, height-used-modalChromeRows)
		m.viewport.Width = max(1, width-4)
	}
	if m.nav.Current == menu.ViewTerminal {
		m.refreshTerminal()
	}
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // header, status
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
