// Package session holds the client's single current-user state.
//
// A Store is built once at startup with a Persistence (usually
// NewStoragePersistence over a metadata backend) and passed to every
// consumer: the auth flows log users in, the router watches authentication,
// the feed reads the author, the profile uploader writes the photo.
//
// Lifecycle:
//
//	st := session.NewStore(session.NewStoragePersistence(repo), session.WithLogger(log))
//	st.Start(ctx)            // background load of userName/userEmail/userId
//	<-st.Ready()             // UI shows "Loading..." until here
//	defer st.Close()
//
// Persisted keys are userName, userEmail, userId and profilePhoto. The
// session is authenticated if and only if a user is present.
package session
