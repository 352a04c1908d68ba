package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhabedank/teardown/internal/llm"
	"github.com/dhabedank/teardown/internal/tui"
)

var resetConfig bool

// SetupCmd represents the setup command.
var SetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Long: `Configure teardown with an interactive wizard.

The wizard walks through three choices:
- Provider: which LLM backend to use (detected from configured API keys)
- Model: which model to run teardowns with
- Depth: the default analysis depth

Configuration is saved to ~/.teardown.yaml`,
	RunE: runSetup,
}

func init() {
	SetupCmd.Flags().BoolVar(&resetConfig, "reset", false, "Reset configuration to defaults")
}

// setupConfig holds the configuration being built.
type setupConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	Depth    string `yaml:"depth,omitempty"`
}

func runSetup(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	// Handle reset
	if resetConfig {
		if err := os.Remove(configPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove config: %w", err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration reset to defaults")
		fmt.Printf("  Removed: %s\n", configPath)
		return nil
	}

	available := llm.AvailableModels()
	if len(available) == 0 {
		return fmt.Errorf("no LLM providers detected. Set OPENAI_API_KEY or ANTHROPIC_API_KEY")
	}

	// Run the wizard
	p := tea.NewProgram(newSetupModel(available))
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	finalModel := m.(setupModel)
	if finalModel.cancelled {
		fmt.Println("Setup cancelled")
		return nil
	}

	config := setupConfig{
		Provider: finalModel.provider,
		Model:    finalModel.model,
		Depth:    finalModel.depth,
	}

	if err := saveConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration saved to " + configPath)
	fmt.Println()
	fmt.Println("Selected:")
	fmt.Printf("  Provider: %s\n", tui.ModelStyle.Render(config.Provider))
	fmt.Printf("  Model:    %s\n", tui.ModelStyle.Render(config.Model))
	fmt.Printf("  Depth:    %s\n", tui.ModelStyle.Render(config.Depth))

	return nil
}

func getConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teardown.yaml"
	}
	return filepath.Join(home, ".teardown.yaml")
}

func saveConfig(path string, config setupConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bubble Tea model for the setup wizard

type setupModel struct {
	step      int // 0=provider, 1=model, 2=depth
	current   list.Model
	available map[string][]llm.ModelInfo
	provider  string
	model     string
	depth     string
	cancelled bool
	width     int
	height    int
}

type choiceItem struct {
	id   string
	name string
	desc string
}

func (c choiceItem) Title() string       { return c.name }
func (c choiceItem) Description() string { return c.desc }
func (c choiceItem) FilterValue() string { return c.name }

func newChoiceList(title string, items []list.Item) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("#9b59b6"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("#95a5a6"))

	l := list.New(items, delegate, 60, 14)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = tui.TitleStyle
	return l
}

func newSetupModel(available map[string][]llm.ModelInfo) setupModel {
	var items []list.Item
	providerDescs := map[string]string{
		"openai":    "OpenAI chat completions (OPENAI_API_KEY)",
		"anthropic": "Anthropic Messages API (ANTHROPIC_API_KEY)",
	}
	for _, provider := range []string{"openai", "anthropic"} {
		if _, ok := available[provider]; ok {
			items = append(items, choiceItem{id: provider, name: provider, desc: providerDescs[provider]})
		}
	}

	return setupModel{
		step:      0,
		current:   newChoiceList("Select Provider", items),
		available: available,
	}
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.current.SetWidth(msg.Width)
		m.current.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			item, ok := m.current.SelectedItem().(choiceItem)
			if !ok {
				return m, nil
			}

			switch m.step {
			case 0:
				m.provider = item.id
				items := make([]list.Item, 0, len(m.available[m.provider]))
				for _, info := range m.available[m.provider] {
					items = append(items, choiceItem{id: info.ID, name: info.Name, desc: info.Description})
				}
				m.current = newChoiceList("Select Model", items)
			case 1:
				m.model = item.id
				m.current = newChoiceList("Select Default Depth", []list.Item{
					choiceItem{id: "quick", name: "Quick", desc: "Short bullets, four sections"},
					choiceItem{id: "standard", name: "Standard", desc: "Detailed analysis, all eight sections"},
					choiceItem{id: "deep", name: "Deep", desc: "Comprehensive multi-paragraph analysis"},
				})
			case 2:
				m.depth = item.id
				return m, tea.Quit
			}

			m.step++
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.current, cmd = m.current.Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	if m.cancelled {
		return ""
	}

	// Progress indicator
	steps := []string{"Provider", "Model", "Depth"}
	progress := "\n  "
	for i, s := range steps {
		if i == m.step {
			progress += tui.SelectedStyle.Render(fmt.Sprintf("[%s]", s))
		} else if i < m.step {
			progress += tui.SuccessStyle.Render(fmt.Sprintf("✓ %s", s))
		} else {
			progress += tui.UnselectedStyle.Render(fmt.Sprintf("○ %s", s))
		}
		if i < len(steps)-1 {
			progress += " → "
		}
	}
	progress += "\n\n"

	help := tui.HelpStyle.Render("\n  ↑/↓: navigate • enter: select • q: quit")

	return progress + m.current.View() + help
}
