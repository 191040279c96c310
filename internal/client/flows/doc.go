// Package flows drives the login and registration forms. A Flow collects
// field values, validates them, waits on a Submitter that stands in for the
// remote call, then logs the user into the session and navigates to the feed.
//
// State moves Idle -> Validating -> Submitting -> Success, or into Failed
// when validation or submission fails. Close cancels whatever is in flight;
// a cancelled flow never touches the session.
package flows
