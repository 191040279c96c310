package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type entry struct {
	icon, title, text string
}

var features = []entry{
	{"💬", "Share & Connect", "Share your thoughts and experiences with the community"},
	{"👥", "Build Relationships", "Connect with friends and discover new people"},
	{"❤️", "Engage & Interact", "Engage with posts through likes and comments"},
	{"⚡", "Real-time Updates", "Get instant notifications and live updates"},
	{"🎨", "Beautiful Design", "Clean and intuitive user interface"},
	{"📱", "Cross-platform", "Works seamlessly across all devices"},
}

var technologies = []entry{
	{"🐹", "Go", "1.24"},
	{"💄", "Lip Gloss", "terminal styling"},
	{"🗄️", "SQLite", "modernc.org/sqlite with goose migrations"},
	{"🔴", "Redis", "go-redis, optional session backend"},
	{"🖼️", "mimetype", "profile photo detection"},
	{"🆔", "UUID", "post identifiers"},
}

func About() string {
	var b strings.Builder

	b.WriteString(logoLeftStyle.Render("About Social") + logoRightStyle.Render("App") + "\n")
	b.WriteString(subtitleStyle.Render("Connecting people through meaningful experiences and shared moments") + "\n\n")

	b.WriteString(titleStyle.Render("🎯 Mission") + "\n")
	b.WriteString("SocialApp is designed to bring people together through meaningful connections\n")
	b.WriteString("and shared experiences.\n\n")

	b.WriteString(section("✨ Features", features))
	b.WriteString("\n")
	b.WriteString(section("🛠️ Technology", technologies))

	return b.String()
}

func section(title string, items []entry) string {
	lines := []string{titleStyle.Render(title)}
	for _, it := range items {
		lines = append(lines, "  "+it.icon+" "+nameStyle.Render(it.title)+" "+subtitleStyle.Render(it.text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}
