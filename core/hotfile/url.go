package hotfile

import (
	"fmt"
	"net"
	"strconv"
)

// URLOptions carries the server settings that influence the advertised URL.
type URLOptions struct {
	// Origin, when set, is used verbatim instead of deriving a URL.
	Origin string
	// HTTPS reports whether the server itself terminates TLS.
	HTTPS bool
	// Host is the configured listen host. Empty when the server listens on all interfaces.
	Host string
	// HMRProtocol is the configured HMR protocol ("ws" or "wss"), if any.
	HMRProtocol string
	// HMRHost is the configured HMR host, if any.
	HMRHost string
	// HMRClientPort is the configured HMR client port, if any.
	HMRClientPort int
	// Sail is set when running inside the Sail containers.
	Sail bool
	// HostConfigured reports whether the user set a server host explicitly.
	HostConfigured bool
}

// DevServerURL derives the URL the browser should use to reach the dev server
// listening on addr.
//
// The protocol follows the HMR protocol when one is configured, else the server's TLS
// setting. The host prefers the HMR host, then "localhost" under Sail, then the
// configured host, then the listen address (bracketed for IPv6). The port prefers the
// HMR client port over the listen port.
func DevServerURL(addr net.Addr, opts URLOptions) (string, error) {
	if opts.Origin != "" {
		return opts.Origin, nil
	}

	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return "", fmt.Errorf("dev server is not listening on a TCP address: %v", addr)
	}

	protocol := "http"
	switch {
	case opts.HMRProtocol == "wss":
		protocol = "https"
	case opts.HMRProtocol != "":
		protocol = "http"
	case opts.HTTPS:
		protocol = "https"
	}

	host := serverAddress(tcp)
	switch {
	case opts.HMRHost != "":
		host = opts.HMRHost
	case opts.Sail && !opts.HostConfigured:
		host = "localhost"
	case opts.Host != "":
		host = opts.Host
	}

	port := tcp.Port
	if opts.HMRClientPort != 0 {
		port = opts.HMRClientPort
	}

	return protocol + "://" + host + ":" + strconv.Itoa(port), nil
}

func serverAddress(addr *net.TCPAddr) string {
	if addr.IP == nil {
		return "localhost"
	}
	if addr.IP.To4() == nil {
		return "[" + addr.IP.String() + "]"
	}
	return addr.IP.String()
}
