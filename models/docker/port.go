package docker

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Protocol string

const (
	ProtocolTCP Protocol = "tcp"
	ProtocolUDP Protocol = "udp"
)

// DefaultHostIP is the address the daemon binds published ports to when no
// explicit host IP is given.
const DefaultHostIP = "0.0.0.0"

// Port is a container port together with its transport protocol. Its textual
// form is "<number>/<protocol>", e.g. "8080/tcp".
type Port struct {
	Number   int
	Protocol Protocol
}

// MakePort builds a Port from a number and a protocol string. Only "tcp" and
// "udp" are accepted; anything else reports ok=false.
func MakePort(number int, protocol string) (Port, bool) {
	switch Protocol(protocol) {
	case ProtocolTCP, ProtocolUDP:
		return Port{Number: number, Protocol: Protocol(protocol)}, true
	default:
		return Port{}, false
	}
}

// ParsePort parses the "<number>/<protocol>" form. Malformed input is a
// normal case and reports ok=false.
func ParsePort(raw string) (Port, bool) {
	split := strings.Split(raw, "/")
	if len(split) != 2 || !isDigits(split[0]) {
		return Port{}, false
	}
	number, err := strconv.Atoi(split[0])
	if err != nil {
		return Port{}, false
	}
	return MakePort(number, split[1])
}

func (p Port) String() string {
	return strconv.Itoa(p.Number) + "/" + string(p.Protocol)
}

// MarshalText lets Port act as a map key at the JSON boundary.
func (p Port) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Port) UnmarshalText(text []byte) error {
	port, ok := ParsePort(string(text))
	if !ok {
		return errors.Errorf("invalid port specification %q", string(text))
	}
	*p = port
	return nil
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// PortBinding is the host side of a published port.
type PortBinding struct {
	HostIP   string `json:"HostIp"`
	HostPort int    `json:"HostPort,string"`
}

// MakePortBinding binds a host port on all interfaces.
func MakePortBinding(hostPort int) PortBinding {
	return PortBinding{
		HostIP:   DefaultHostIP,
		HostPort: hostPort,
	}
}
