package registry

// Auth is a credential triple for an image registry. The server address is
// routing metadata for the transport; only the username/password pair is part
// of the credential payload sent to the registry, and that internal form is
// produced by the module-private conversion in internal/registry.
type Auth struct {
	ServerAddress string `json:"serveraddress"`
	Username      string `json:"username"`
	Password      string `json:"password"`
}

// MakeAuth builds a credential for the registry at the given address.
func MakeAuth(serverAddress, username, password string) Auth {
	return Auth{
		ServerAddress: serverAddress,
		Username:      username,
		Password:      password,
	}
}
