package docker

import "time"

// ContainerState is the runtime status section of an inspect response.
// It is a read-only snapshot produced by the daemon.
type ContainerState struct {
	Running    bool       `json:"Running"`
	Paused     bool       `json:"Paused"`
	Restarting bool       `json:"Restarting"`
	Pid        int        `json:"Pid"`
	ExitCode   int        `json:"ExitCode"`
	StartedAt  *time.Time `json:"StartedAt,omitempty"`
	FinishedAt *time.Time `json:"FinishedAt,omitempty"`
}

// NetworkSettings is the network section of an inspect response.
type NetworkSettings struct {
	IPAddress   string                 `json:"IPAddress"`
	IPPrefixLen int                    `json:"IPPrefixLen"`
	Gateway     string                 `json:"Gateway"`
	Bridge      string                 `json:"Bridge"`
	Ports       map[Port][]PortBinding `json:"Ports,omitempty"`
}
