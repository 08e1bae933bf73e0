package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/golox/internal/interp"
	"github.com/leapstack-labs/golox/pkg/ast"
	"github.com/leapstack-labs/golox/pkg/parser"
)

const (
	tabSource = iota
	tabTokens
	tabAST
	tabResult
)

var tabNames = []string{"Source", "Tokens", "AST", "Result"}

// fileChangedMsg is sent by the watcher when the source file is saved.
type fileChangedMsg struct{}

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
		Reload:  key.NewBinding(key.WithKeys("r")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

type appStyles struct {
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	footer      lipgloss.Style
}

func newAppStyles() appStyles {
	return appStyles{
		activeTab:   lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("2")),
		inactiveTab: lipgloss.NewStyle().Padding(0, 1).Faint(true),
		footer:      lipgloss.NewStyle().Faint(true),
	}
}

// snapshot holds the rendered views for one version of the source file.
type snapshot struct {
	source string
	tokens string
	tree   string
	result string
}

// buildSnapshot reads path and runs it through the lexer, parser, and
// evaluator. Failures become the displayed content of the affected tabs
// so the viewer stays up while the user edits through broken states.
func buildSnapshot(path string) snapshot {
	data, err := os.ReadFile(path)
	if err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		return snapshot{source: msg, tokens: msg, tree: msg, result: msg}
	}
	source := string(data)

	var toks strings.Builder
	for _, tok := range parser.Tokenize(source) {
		toks.WriteString(tok.String())
		toks.WriteByte('\n')
	}

	var tree, result string
	expr, err := parser.Parse(source)
	if err != nil {
		tree = fmt.Sprintf("Error: %v", err)
		result = tree
	} else {
		var p ast.Printer
		tree = p.Print(expr)

		val, err := interp.New().Eval(expr)
		if err != nil {
			result = fmt.Sprintf("Error: %v", err)
		} else {
			result = val.String()
		}
	}

	return snapshot{
		source: source,
		tokens: toks.String(),
		tree:   tree,
		result: result,
	}
}

type model struct {
	path     string
	keys     keyMap
	styles   appStyles
	active   int
	snap     snapshot
	viewport viewport.Model
	ready    bool
}

func newModel(path string) model {
	return model{
		path:   path,
		keys:   defaultKeyMap(),
		styles: newAppStyles(),
		snap:   buildSnapshot(path),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.active = (m.active + 1) % len(tabNames)
			m.viewport.SetContent(m.content())
			m.viewport.GotoTop()

		case key.Matches(msg, m.keys.PrevTab):
			m.active = (m.active + len(tabNames) - 1) % len(tabNames)
			m.viewport.SetContent(m.content())
			m.viewport.GotoTop()

		case key.Matches(msg, m.keys.Reload):
			m.snap = buildSnapshot(m.path)
			m.viewport.SetContent(m.content())
		}

	case fileChangedMsg:
		m.snap = buildSnapshot(m.path)
		m.viewport.SetContent(m.content())

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// content returns the text for the active tab.
func (m model) content() string {
	switch m.active {
	case tabTokens:
		return m.snap.tokens
	case tabAST:
		return m.snap.tree
	case tabResult:
		return m.snap.result
	default:
		return m.snap.source
	}
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		style := m.styles.inactiveTab
		if i == m.active {
			style = m.styles.activeTab
		}
		tabs = append(tabs, style.Render(name))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	footer := m.styles.footer.Render(fmt.Sprintf("%s  tab: switch  r: reload  q: quit", m.path))

	return header + "\n\n" + m.viewport.View() + "\n" + footer
}
