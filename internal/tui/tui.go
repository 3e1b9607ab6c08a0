// Package tui is the editor surface: it renders the annotated token spans,
// lets the user pick a rendering per token, and writes every change back
// through the session's mutation entry point.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"jimaku/internal/annotate"
	"jimaku/internal/clipboard"
	"jimaku/internal/kana"
	"jimaku/internal/session"
	"jimaku/internal/token"
	"jimaku/internal/tokenize"
	"jimaku/internal/tui/bigkanji"
)

type mode int

const (
	modeView mode = iota // navigating token spans
	modeEdit             // editing the raw text in the textarea
	modePick             // choosing a rendering for the focused token
)

// sessionMsg carries the result of an annotation pass.
type sessionMsg struct {
	sess *session.Session
	err  error
}

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// pickerOption is one entry of the rendering picker.
type pickerOption struct {
	label string
	sel   token.Selection
}

// Model is the Bubble Tea model of the editor.
type Model struct {
	tk  *tokenize.Tokenizer
	an  *annotate.Annotator
	log *slog.Logger

	sess   *session.Session
	cursor int

	mode  mode
	input textarea.Model

	picker    []pickerOption
	pickerIdx int

	filePath string
	loading  bool
	status   string
	err      error

	width  int
	height int
	ready  bool
}

// New creates an editor over text. filePath may be empty; it is where ctrl+s
// writes the reconstructed text. An empty text starts the editor in input
// mode.
func New(tk *tokenize.Tokenizer, an *annotate.Annotator, log *slog.Logger, filePath, text string) Model {
	if log == nil {
		log = slog.Default()
	}
	ta := textarea.New()
	ta.Placeholder = "Paste or type Japanese subtitle text..."
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(6)

	m := Model{
		tk:       tk,
		an:       an,
		log:      log,
		input:    ta,
		filePath: filePath,
	}
	if strings.TrimSpace(text) == "" {
		m.mode = modeEdit
		m.input.Focus()
	} else {
		m.loading = true
		m.input.SetValue(text)
	}
	return m
}

// Init kicks off the annotation pass when the editor was given text.
func (m Model) Init() tea.Cmd {
	if m.loading {
		return tea.Batch(textarea.Blink, m.annotateCmd(m.input.Value()))
	}
	return textarea.Blink
}

// annotateCmd tokenizes and annotates text off the update loop.
func (m Model) annotateCmd(text string) tea.Cmd {
	tk, an := m.tk, m.an
	return func() tea.Msg {
		toks, err := tk.Tokenize(text)
		if err != nil {
			return sessionMsg{err: fmt.Errorf("tokenize: %w", err)}
		}
		anns, err := an.AnnotateAll(context.Background(), toks)
		if err != nil {
			return sessionMsg{err: err}
		}
		sess, err := session.New(text, anns)
		if err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{sess: sess}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if w := msg.Width - 8; w > 20 {
			m.input.SetWidth(w)
		}
		return m, nil

	case sessionMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.mode = modeEdit
			m.input.Focus()
			return m, nil
		}
		m.sess = msg.sess
		m.cursor = 0
		m.err = nil
		m.mode = modeView
		m.input.Blur()
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modePick:
			return m.updatePick(msg)
		default:
			return m.updateView(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.sess != nil {
			m.mode = modeView
			m.input.Blur()
		}
		return m, nil
	case "ctrl+d":
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			m.err = fmt.Errorf("nothing to analyze")
			return m, nil
		}
		m.loading = true
		m.err = nil
		return m, m.annotateCmd(text)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h", "shift+tab":
		m.moveCursor(-1)
		return m, nil
	case "right", "l", "tab":
		m.moveCursor(1)
		return m, nil
	case "home":
		m.cursor = 0
		return m, nil
	case "end":
		if m.sess != nil && m.sess.Len() > 0 {
			m.cursor = m.sess.Len() - 1
		}
		return m, nil
	case "enter", " ":
		m.openPicker()
		return m, nil
	case "o":
		m.applySelection(token.Original())
		return m, nil
	case "p":
		m.applySelection(token.Phonetic())
		return m, nil
	case "r":
		if m.sess != nil {
			m.sess.ResetSelections()
			m.status = "Selections reset"
			return m, clearStatusAfter(2 * time.Second)
		}
		return m, nil
	case "e":
		if m.sess != nil {
			m.input.SetValue(m.sess.Source())
		}
		m.mode = modeEdit
		m.input.Focus()
		return m, textarea.Blink
	case "y":
		if m.sess != nil {
			if err := clipboard.Write(m.sess.Render()); err != nil {
				m.err = fmt.Errorf("clipboard: %w", err)
				return m, nil
			}
			m.status = "Copied!"
			return m, clearStatusAfter(2 * time.Second)
		}
		return m, nil
	case "ctrl+s":
		return m.save()
	}
	return m, nil
}

func (m Model) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeView
		return m, nil
	case "up", "k":
		if m.pickerIdx > 0 {
			m.pickerIdx--
		}
		return m, nil
	case "down", "j":
		if m.pickerIdx < len(m.picker)-1 {
			m.pickerIdx++
		}
		return m, nil
	case "enter", " ":
		m.mode = modeView
		m.applySelection(m.picker[m.pickerIdx].sel)
		return m, nil
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.sess == nil || m.sess.Len() == 0 {
		return
	}
	m.cursor = (m.cursor + delta + m.sess.Len()) % m.sess.Len()
	m.err = nil
}

// applySelection routes a selection change through the session, surfacing
// rejections without mutating anything.
func (m *Model) applySelection(sel token.Selection) {
	if m.sess == nil {
		return
	}
	if err := m.sess.Select(m.cursor, sel); err != nil {
		m.err = err
		m.log.Debug("selection rejected", "index", m.cursor, "selection", sel.String(), "error", err)
		return
	}
	m.err = nil
}

// openPicker builds the rendering choices for the focused token.
func (m *Model) openPicker() {
	if m.sess == nil || m.sess.Len() == 0 {
		return
	}
	ann, err := m.sess.Token(m.cursor)
	if err != nil {
		m.err = err
		return
	}
	opts := []pickerOption{{label: ann.Token.Surface + "  (original)", sel: token.Original()}}
	if ann.HasPhonetic() {
		opts = append(opts, pickerOption{label: ann.Phonetic + "  (phonetic)", sel: token.Phonetic()})
	}
	for i, c := range ann.Candidates {
		opts = append(opts, pickerOption{label: c.Text, sel: token.CandidateAt(i)})
	}
	if len(opts) == 1 {
		m.status = "No alternatives for this token"
		return
	}
	m.picker = opts
	m.pickerIdx = 0
	for i, opt := range opts {
		if opt.sel == ann.Selection {
			m.pickerIdx = i
			break
		}
	}
	m.mode = modePick
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if m.sess == nil {
		return m, nil
	}
	if m.filePath == "" {
		m.err = fmt.Errorf("no file to save to; start the editor with a file argument")
		return m, nil
	}
	if err := os.WriteFile(m.filePath, []byte(m.sess.Render()), 0644); err != nil {
		m.err = fmt.Errorf("save: %w", err)
		return m, nil
	}
	m.err = nil
	m.status = "Saved " + m.filePath
	return m, clearStatusAfter(2 * time.Second)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	header := titleStyle.Render("  字幕 jimaku  ") + "  " +
		subtitleStyle.Render("Selective Subtitle Translator")
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(loadingStyle.Render("  Analyzing text..."))
		b.WriteString("\n")
	case m.mode == modeEdit:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case m.sess != nil:
		b.WriteString(m.renderText())
		b.WriteString("\n")
		if m.mode == modePick {
			b.WriteString(m.renderPicker())
			b.WriteString("\n")
		} else {
			b.WriteString(m.renderInspector())
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("  " + m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  " + m.helpLine()))
	return b.String()
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeEdit:
		parts := []string{"ctrl+d: analyze"}
		if m.sess != nil {
			parts = append(parts, "esc: back")
		}
		parts = append(parts, "ctrl+c: quit")
		return strings.Join(parts, " • ")
	case modePick:
		return "↑/↓: choose • enter: apply • esc: cancel"
	default:
		parts := []string{"←/→: navigate", "enter: pick", "o: original", "p: phonetic"}
		parts = append(parts, "e: edit text", "y: copy", "r: reset")
		if m.filePath != "" {
			parts = append(parts, "ctrl+s: save")
		}
		parts = append(parts, "q: quit")
		return strings.Join(parts, " • ")
	}
}

// renderText draws the reconstructed text as styled token spans, wrapping at
// token boundaries.
func (m Model) renderText() string {
	width := 72
	if m.ready && m.width-8 < width {
		width = m.width - 8
	}
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	lineWidth := 0
	emit := func(cell string, styled string) {
		w := runewidth.StringWidth(cell)
		if lineWidth > 0 && lineWidth+w > width {
			b.WriteString("\n")
			lineWidth = 0
		}
		b.WriteString(styled)
		if i := strings.LastIndexByte(cell, '\n'); i >= 0 {
			lineWidth = runewidth.StringWidth(cell[i+1:])
		} else {
			lineWidth += w
		}
	}

	if p := m.sess.Prefix(); p != "" {
		emit(p, separatorStyle.Render(p))
	}
	for i, ann := range m.sess.Tokens() {
		text := ann.SelectedText()
		emit(text, m.spanStyle(i, ann).Render(text))
		if sep := m.sess.Separator(i); sep != "" {
			emit(sep, separatorStyle.Render(sep))
		}
	}
	return textBoxStyle.Width(width + 4).Render(b.String())
}

func (m Model) spanStyle(i int, ann token.Annotated) lipgloss.Style {
	if i == m.cursor && m.mode != modeEdit {
		return spanFocusStyle
	}
	if ann.Selection.Kind != token.SelectOriginal {
		return spanAppliedStyle
	}
	switch ann.Action {
	case token.ActionSuggest:
		return spanSuggestStyle
	case token.ActionPhoneticOnly:
		return spanPhoneticStyle
	default:
		return spanPlainStyle
	}
}

// renderPicker draws the rendering choices for the focused token.
func (m Model) renderPicker() string {
	ann, err := m.sess.Token(m.cursor)
	if err != nil {
		return ""
	}
	var lines []string
	lines = append(lines, subtitleStyle.Render("Rendering for "+ann.Token.Surface))
	lines = append(lines, "")
	for i, opt := range m.picker {
		if i == m.pickerIdx {
			lines = append(lines, pickerActiveStyle.Render("▸ "+opt.label))
		} else {
			lines = append(lines, pickerItemStyle.Render("  "+opt.label))
		}
	}
	return pickerBoxStyle.Render(strings.Join(lines, "\n"))
}

// renderInspector draws the focused token's details next to a glyph preview.
func (m Model) renderInspector() string {
	if m.sess.Len() == 0 {
		return ""
	}
	ann, err := m.sess.Token(m.cursor)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.row("Surface", ann.Token.Surface))
	b.WriteString(m.row("POS", ann.Token.POS+"  ("+string(ann.Token.Category)+")"))
	if ann.Token.Lemma != "" && ann.Token.Lemma != ann.Token.Surface {
		b.WriteString(m.row("Lemma", ann.Token.Lemma))
	}
	if ann.HasPhonetic() {
		b.WriteString(m.row("Phonetic", ann.Phonetic))
	}
	b.WriteString(m.row("Action", string(ann.Action)))
	b.WriteString(m.row("Selected", ann.SelectedText()+"  ("+ann.Selection.String()+")"))
	if ann.Action == token.ActionSuggest {
		b.WriteString(m.row("Candidates", candidateSummary(ann.Candidates)))
	}
	detail := strings.TrimRight(b.String(), "\n")

	content := detail
	if glyph := glyphPreview(ann.Token.Surface); glyph != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Center, glyphStyle.Render(glyph), "   ", detail)
	}
	title := subtitleStyle.Render(fmt.Sprintf("Token %d/%d", m.cursor+1, m.sess.Len()))
	return inspectorBoxStyle.Render(title + "\n\n" + content)
}

func (m Model) row(label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value) + "\n"
}

func candidateSummary(cands []token.Candidate) string {
	if len(cands) == 0 {
		return "(none found)"
	}
	n := len(cands)
	shown := n
	if shown > 3 {
		shown = 3
	}
	parts := make([]string, 0, shown)
	for _, c := range cands[:shown] {
		parts = append(parts, c.Text)
	}
	s := strings.Join(parts, ", ")
	if n > shown {
		s += fmt.Sprintf(", … (%d total)", n)
	}
	return s
}

// glyphPreview renders the first kanji of surface as half-block art.
func glyphPreview(surface string) string {
	for _, r := range surface {
		if kana.IsKanji(r) {
			return bigkanji.Render(string(r), 12, 6)
		}
	}
	return ""
}
