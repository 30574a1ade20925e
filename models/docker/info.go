package docker

import "time"

// Node describes the cluster node a container was scheduled on. It only
// appears in inspect responses from classic swarm endpoints.
type Node struct {
	ID     string            `json:"ID"`
	Name   string            `json:"Name"`
	Addr   string            `json:"Addr"`
	IP     string            `json:"IP"`
	Cpus   int               `json:"Cpus"`
	Memory int64             `json:"Memory"`
	Labels map[string]string `json:"Labels,omitempty"`
}

// ContainerInfo is the full inspect result for a single container.
type ContainerInfo struct {
	ID              HashID            `json:"Id"`
	Created         time.Time         `json:"Created"`
	Path            string            `json:"Path"`
	Args            []string          `json:"Args"`
	Config          ContainerConfig   `json:"Config"`
	State           ContainerState    `json:"State"`
	Image           string            `json:"Image"`
	NetworkSettings NetworkSettings   `json:"NetworkSettings"`
	ResolvConfPath  string            `json:"ResolvConfPath"`
	HostnamePath    string            `json:"HostnamePath"`
	HostsPath       string            `json:"HostsPath"`
	Name            string            `json:"Name"`
	MountLabel      string            `json:"MountLabel,omitempty"`
	ProcessLabel    string            `json:"ProcessLabel,omitempty"`
	Labels          map[string]string `json:"Labels,omitempty"`
	Volumes         map[string]string `json:"Volumes"`
	HostConfig      HostConfig        `json:"HostConfig"`
	Node            *Node             `json:"Node,omitempty"`
}

// CreateResponse is the daemon's answer to a create request.
type CreateResponse struct {
	ID       HashID   `json:"Id"`
	Warnings []string `json:"Warnings"`
}
