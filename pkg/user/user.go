package user

// DefaultName is the greeting name of users who logged in without registering.
const DefaultName = "Student"

type User struct {
	Email string
	Name  string
}

// Login is the authentication part of a session's state.
type Login struct {
	LoggedIn bool
	User     User
}
