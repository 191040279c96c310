// Package feed serves the mock timeline: three seeded posts, posts written
// by the signed-in user and like toggling. Nothing leaves the process.
package feed

import (
	"regexp"
	"strings"
	"unicode"
)

type Author struct {
	Name         string
	Username     string
	Initials     string
	ProfilePhoto string
}

type Post struct {
	ID        string
	Author    Author
	Content   string
	Timestamp string
	Likes     int
	Comments  int
	Liked     bool
}

var spaces = regexp.MustCompile(`\s+`)

// Initials takes the first letter of every word, upper-cased.
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		for _, r := range w {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// Username lower-cases name and joins its words with underscores.
func Username(name string) string {
	return spaces.ReplaceAllString(strings.ToLower(name), "_")
}

func seedPosts() []Post {
	return []Post{
		{
			ID:        "1",
			Author:    Author{Name: "Sarah Johnson", Username: "sarah_j", Initials: "SJ"},
			Content:   "Just finished an amazing workout session! 💪 The morning energy is unmatched. Who else loves starting their day with some exercise?",
			Timestamp: "2 hours ago",
			Likes:     24,
			Comments:  8,
		},
		{
			ID:        "2",
			Author:    Author{Name: "Alex Chen", Username: "alex_dev", Initials: "AC"},
			Content:   "Working on a new React project with some amazing features. The developer experience keeps getting better! 🚀 #ReactJS #WebDev",
			Timestamp: "4 hours ago",
			Likes:     42,
			Comments:  15,
		},
		{
			ID:        "3",
			Author:    Author{Name: "Maria Rodriguez", Username: "maria_art", Initials: "MR"},
			Content:   "Spent the weekend painting in the park. Nature provides the best inspiration! 🌳 Here's to finding creativity in everyday moments.",
			Timestamp: "6 hours ago",
			Likes:     67,
			Comments:  23,
		},
	}
}
