package docker

// PortSummary is the abbreviated port mapping shown in list responses.
type PortSummary struct {
	IP          string `json:"IP,omitempty"`
	PrivatePort int    `json:"PrivatePort"`
	PublicPort  int    `json:"PublicPort,omitempty"`
	Type        string `json:"Type"`
}

// ContainerStatus is one entry of a container list response.
type ContainerStatus struct {
	ID      HashID            `json:"Id"`
	Names   []string          `json:"Names"`
	Image   string            `json:"Image"`
	Command string            `json:"Command"`
	Created int64             `json:"Created"`
	Ports   []PortSummary     `json:"Ports"`
	Labels  map[string]string `json:"Labels,omitempty"`
	Status  string            `json:"Status"`
}
