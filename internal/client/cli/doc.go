// Package cli is the interactive terminal front end of the social client.
//
// App wires the session store, the router, the feed and the profile photo
// uploader behind a read-eval-print loop. Commands map to screens of the app:
//
//	help, login, register, logout, feed, about, goto <path>,
//	post, like <id>, photo <path>, rename, whoami, exit | quit
//
// The loop starts once the stored session has been loaded; until then it
// shows "Loading...". A panic inside a command is recovered and reported
// as a generic failure so the loop keeps running.
package cli
