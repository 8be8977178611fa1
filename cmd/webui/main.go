// Command webui is a terminal console for registry admins: log in, see
// the software table, toggle, add, delete.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"soft-admin/cmd/webui/ui"
)

func main() {
	p := tea.NewProgram(ui.NewRootModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "webui:", err)
		os.Exit(1)
	}
}
