package env

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Host is the kind of process hosting the assertions.
type Host int

const (
	// HostCLI is a terminal or command-line process.
	HostCLI Host = iota
	// HostWeb is a CGI-style web process whose output is an HTTP response.
	HostWeb
)

func (h Host) String() string {
	if h == HostWeb {
		return "web"
	}
	return "cli"
}

// gatewayVars are set by web servers for CGI-style children.
var gatewayVars = []string{"GATEWAY_INTERFACE", "REQUEST_METHOD", "SERVER_SOFTWARE"}

// DetectHost reports HostCLI when stdout is a terminal or no gateway
// variables are present, and HostWeb otherwise.
func DetectHost() Host {
	return detectHost(os.Getenv, isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

func detectHost(getenv func(string) string, terminal bool) Host {
	if terminal {
		return HostCLI
	}
	for _, key := range gatewayVars {
		if getenv(key) != "" {
			return HostWeb
		}
	}
	return HostCLI
}
