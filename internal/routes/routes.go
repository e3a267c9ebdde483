package routes

const (
	// Health
	Health = "/health"

	// API is the prefix every user-facing endpoint is mounted under.
	API = "/api"

	// Paths relative to API; the router registers them on subrouters of the
	// prefix, so they must not repeat it.
	UsersRegister = "/users/register"
	UsersLogin    = "/users/login"
	UsersLogout   = "/users/logout"
	UsersEdit     = "/users/edit"
	Factors       = "/factors"
)
