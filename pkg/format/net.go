package format

import (
	"fmt"
	"strings"
)

// Addr joins a host and port, bracketing IPv6 hosts.
func Addr(host string, port int) string {
	if strings.ContainsAny(host, ":") { // IPv6
		return fmt.Sprintf("[%s]:%d", host, port)
	} else { // IPv4
		return fmt.Sprintf("%s:%d", host, port)
	}
}

// CID renders a connection ID for log and CLI output. Empty IDs show as a
// dash so they remain visible in aligned output.
func CID(id []byte) string {
	if len(id) == 0 {
		return "-"
	}
	return fmt.Sprintf("%x", id)
}
