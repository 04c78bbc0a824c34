package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// listRowOffset is the terminal row where the option list begins: everything
// above it is the select-box line.
const listRowOffset = 1

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.selectBoxLine())

	st := m.snapshot
	if st.Open {
		m.viewport.SetHeight(m.maxVisibleItems())
		start, end := m.viewport.Visible(len(st.Options))
		if len(st.Options) == 0 {
			msg := "(no entries)"
			if m.filter != "" {
				msg = fmt.Sprintf("No matches for %q", m.filter)
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			for idx := start; idx < end; idx++ {
				lines = append(lines, m.buildItemLine(st.Options[idx].Label, idx == st.FocusedIndex))
			}
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  space open  esc close  ctrl+c quit", style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + filter prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := []styledLine{statusLine}
	if st.Open {
		bottomLines = append(bottomLines, styledLine{text: m.filterPrompt()})
	} else {
		bottomLines = append(bottomLines, styledLine{})
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// selectBoxLine renders the collapsed widget: the committed value's label or
// the placeholder, with an open/closed indicator.
func (m *Model) selectBoxLine() styledLine {
	st := m.snapshot
	indicator := "▸"
	if st.Open {
		indicator = "▾"
	}
	label := ""
	for _, opt := range m.full {
		if opt.Value == st.Value && st.Value != "" {
			label = opt.Label
			break
		}
	}
	if label == "" && st.Value != "" {
		// Committed value with no matching option: show it raw rather than
		// pretending nothing is selected.
		label = st.Value
	}
	if label != "" {
		return styledLine{
			text:          indicator + " " + label,
			style:         styles.SelectedValue,
			prefixStyle:   styles.Header,
			highlightFrom: 1,
		}
	}
	return styledLine{
		text:          indicator + " " + m.placeholder,
		style:         styles.Placeholder,
		prefixStyle:   styles.Header,
		highlightFrom: 1,
	}
}

// buildItemLine constructs a single styledLine for an option row. The text
// is padded so the focused item's background spans the full width.
func (m *Model) buildItemLine(label string, focused bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if focused {
		indicatorStyle = styles.FocusedItemIndicator
		lineStyle = styles.FocusedItem
	}
	fullText := indicator + " " + label
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// maxVisibleItems returns how many option rows fit below the select box and
// above the bottom bar. -1 means unbounded (no height information yet).
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // select box + bottom bar
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
		text := line.text
		if lipgloss.Width(text) > width {
			text = truncate.StringWithTail(text, uint(width-1), "…")
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
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
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
