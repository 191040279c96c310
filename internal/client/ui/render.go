package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophsocial/internal/client/feed"
	"github.com/dmitrijs2005/gophsocial/internal/client/router"
	"github.com/dmitrijs2005/gophsocial/internal/client/session"
)

// Header draws the logo, the navigation with the active route highlighted
// and, for a signed-in user, their avatar and name.
func Header(active router.Route, st session.State) string {
	logo := logoLeftStyle.Render("Social") + logoRightStyle.Render("App")

	var nav []string
	for _, item := range []struct {
		route router.Route
		label string
	}{{router.Feed, "Feed"}, {router.About, "About"}} {
		if item.route == active {
			nav = append(nav, navActiveStyle.Render(item.label))
		} else {
			nav = append(nav, navStyle.Render(item.label))
		}
	}

	parts := []string{logo, "  ", strings.Join(nav, "  ")}
	if st.Authenticated {
		parts = append(parts, "  ", Avatar(st.User.Name, st.ProfilePhoto), " ", nameStyle.Render(st.User.Name))
	}
	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
}

// Avatar shows initials, or a camera mark when a photo is set; a terminal
// cannot draw the image itself.
func Avatar(name, photo string) string {
	if photo != "" {
		return avatarStyle.Render("📷")
	}
	initials := feed.Initials(name)
	if initials == "" {
		initials = "?"
	}
	return avatarStyle.Render(initials)
}

// Welcome greets the user by first name.
func Welcome(name string) string {
	first := name
	if f := strings.Fields(name); len(f) > 0 {
		first = f[0]
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Welcome back, ")+accentStyle.Render(first)+titleStyle.Render("! 👋"),
		subtitleStyle.Render("Here's what's happening in your community"),
	)
}

func PostCard(p feed.Post) string {
	heart, label := "🤍", "Like"
	if p.Liked {
		heart, label = likedStyle.Render("❤️"), likedStyle.Render("Liked")
	}

	head := lipgloss.JoinHorizontal(lipgloss.Top,
		Avatar(p.Author.Name, p.Author.ProfilePhoto), " ",
		lipgloss.JoinVertical(lipgloss.Left,
			nameStyle.Render(p.Author.Name),
			subtitleStyle.Render("@"+p.Author.Username+" · "+p.Timestamp),
		),
	)
	actions := fmt.Sprintf("%s %s %d   💬 Comment %d", heart, label, p.Likes, p.Comments)
	id := subtitleStyle.Render("id " + p.ID)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, head, "", p.Content, "", actions, id))
}

// Feed renders the posts in order, or the empty-feed message.
func Feed(posts []feed.Post) string {
	if len(posts) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("No posts yet"),
			subtitleStyle.Render("Be the first to share something with your community!"),
		)
	}
	cards := make([]string, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, PostCard(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// FieldErrors lists field messages in form order.
func FieldErrors(order []string, errs map[string]string) string {
	var lines []string
	for _, f := range order {
		if msg, ok := errs[f]; ok {
			lines = append(lines, errorStyle.Render("✗ "+f+": "+msg))
		}
	}
	return strings.Join(lines, "\n")
}

func Banner(msg string) string {
	return bannerStyle.Render(msg)
}

func Notice(msg string) string {
	return noticeStyle.Render(msg)
}

func Loading(msg string) string {
	return subtitleStyle.Render("⏳ " + msg)
}

// Crash is the catch-all screen for an unexpected failure.
func Crash(err any) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		bannerStyle.Render("Something went wrong"),
		"Please restart the app or contact support.",
		subtitleStyle.Render(fmt.Sprint(err)),
	)
}
