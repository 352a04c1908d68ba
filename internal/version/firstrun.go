package version

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhabedank/teardown/internal/tui"
)

// IsFirstRun returns true if this appears to be the first run.
// Checks for existence of the config file or first-run marker.
func IsFirstRun() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}

	configPath := filepath.Join(home, ".teardown.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return false // Config exists, not first run
	}

	markerPath := filepath.Join(home, ".teardown", ".initialized")
	if _, err := os.Stat(markerPath); err == nil {
		return false // Already initialized
	}

	return true
}

// MarkInitialized creates the first-run marker.
func MarkInitialized() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	dir := filepath.Join(home, ".teardown")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}

	markerPath := filepath.Join(dir, ".initialized")
	_ = os.WriteFile(markerPath, []byte{}, 0644)
}

// PrintFirstRunNotice prints a welcome message for first-time users.
func PrintFirstRunNotice() {
	fmt.Println()
	fmt.Printf("%s Welcome to teardown!\n", tui.TitleStyle.Render("*"))
	fmt.Println()
	fmt.Println("  Quick start:")
	fmt.Printf("    1. Run %s to pick your provider and model\n", tui.ModelStyle.Render("teardown setup"))
	fmt.Printf("    2. Tear down a product: %s\n", tui.ModelStyle.Render("teardown run \"Google Pay\" --industry fintech"))
	fmt.Printf("    3. Compare two products: %s\n", tui.ModelStyle.Render("teardown compare \"Google Pay\" \"Cred\""))
	fmt.Println()
	fmt.Printf("  %s\n", tui.HelpStyle.Render("Run 'teardown --help' for all options"))
	fmt.Println()

	// Mark as initialized so we don't show this again
	MarkInitialized()
}
