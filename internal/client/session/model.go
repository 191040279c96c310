package session

// User is the signed-in person. ID is generated locally from the clock and
// is only distinct enough for a single client.
type User struct {
	ID    string
	Name  string
	Email string
}

// UserUpdate carries the fields to merge into the current user. Nil and
// empty values are left alone.
type UserUpdate struct {
	Name  *string
	Email *string
}

// State is an immutable view of the session handed to observers.
type State struct {
	User          User
	Authenticated bool
	ProfilePhoto  string
}
