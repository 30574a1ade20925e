// Package registry holds the wire form of registry credentials. Being an
// internal package, only the transport collaborators inside this module can
// shape an Auth into the payload sent during a registry handshake.
package registry

import (
	modelregistry "github.com/nikolaylagutko/go-docker/models/registry"
)

// Config is the credential payload of a registry handshake. The server
// address is deliberately absent: it routes the request, it is not part of
// the credential.
type Config struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FromAuth strips a public Auth down to its wire form.
func FromAuth(auth modelregistry.Auth) Config {
	return Config{
		Username: auth.Username,
		Password: auth.Password,
	}
}
