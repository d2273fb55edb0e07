package server

import (
	"net"
	"strconv"
)

// Config holds configuration for the development server.
type Config struct {
	// Host is the interface the dev server listens on.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the port the dev server listens on.
	Port int `mapstructure:"port" default:"5173"`
	// Root is the directory served to the browser.
	Root string `mapstructure:"root" default:"."`
	// TLSCert is the certificate file used when serving over HTTPS.
	TLSCert string `mapstructure:"tls_cert" default:""`
	// TLSKey is the private key matching TLSCert.
	TLSKey string `mapstructure:"tls_key" default:""`
}

// Address returns the host:port pair to listen on.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// HTTPS reports whether both TLS files are configured.
func (c Config) HTTPS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}
