package ui

import (
	"fmt"
	"os/user"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func DrawBanner(version string, commandCount int) {
	borderColor := lipgloss.Color("#D97757")
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(60)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D7D7D")).
		MarginLeft(2)

	currentUser, _ := user.Current()
	username := "there"
	if currentUser != nil {
		if currentUser.Name != "" {
			names := strings.Fields(currentUser.Name)
			if len(names) > 0 {
				username = names[0]
			}
		} else {
			username = currentUser.Username
		}
	}

	welcome := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Render(fmt.Sprintf("Hi %s! What should I open for you?", username))

	info := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D7D7D")).
		Render(fmt.Sprintf("%d commands loaded • type / to browse them", commandCount))

	content := lipgloss.JoinVertical(lipgloss.Left, welcome, info)

	fmt.Println(titleStyle.Render("Deskmate " + version))
	fmt.Println(borderStyle.Render(content))
}
