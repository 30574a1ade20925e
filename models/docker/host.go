package docker

// DeviceMapping exposes a host device inside the container.
type DeviceMapping struct {
	PathOnHost        string `json:"PathOnHost"`
	PathInContainer   string `json:"PathInContainer"`
	CgroupPermissions string `json:"CgroupPermissions"`
}

// LinuxCapabilities adjusts the kernel capability set of the container.
type LinuxCapabilities struct {
	CapAdd  []string `json:"CapAdd,omitempty"`
	CapDrop []string `json:"CapDrop,omitempty"`
}

// ResourceLimits caps the memory and CPU a container may use. Zero means no
// limit for every field.
type ResourceLimits struct {
	Memory            int64  `json:"Memory"`
	MemorySwap        int64  `json:"MemorySwap"`
	MemoryReservation int64  `json:"MemoryReservation"`
	CPUShares         int64  `json:"CpuShares"`
	CpusetCpus        string `json:"CpusetCpus,omitempty"`
}

// HostConfig is the host-level runtime policy of a container: published
// ports, mounts, networking mode, privileges and restart behavior. Like
// ContainerConfig it is an immutable value with With* copy mutators.
type HostConfig struct {
	PortBindings    map[Port][]PortBinding `json:"PortBindings,omitempty"`
	PublishAllPorts bool                   `json:"PublishAllPorts"`
	Links           []ContainerLink        `json:"Links,omitempty"`
	Binds           []VolumeBinding        `json:"Binds,omitempty"`
	VolumesFrom     []string               `json:"VolumesFrom,omitempty"`
	Devices         []DeviceMapping        `json:"Devices,omitempty"`
	ReadonlyRootfs  bool                   `json:"ReadonlyRootfs"`
	DNS             []string               `json:"Dns,omitempty"`
	DNSSearch       []string               `json:"DnsSearch,omitempty"`
	NetworkMode     string                 `json:"NetworkMode,omitempty"`
	Privileged      bool                   `json:"Privileged"`
	LinuxCapabilities
	Resources     ResourceLimits `json:"Resources"`
	RestartPolicy RestartPolicy  `json:"RestartPolicy"`
}

// WithPortBindings replaces the whole port binding mapping; it is not merged
// with any bindings set before.
func (h HostConfig) WithPortBindings(bindings map[Port][]PortBinding) HostConfig {
	copied := make(map[Port][]PortBinding, len(bindings))
	for port, hostPorts := range bindings {
		copied[port] = hostPorts
	}
	h.PortBindings = copied
	return h
}

func (h HostConfig) WithPublishAllPorts(publish bool) HostConfig {
	h.PublishAllPorts = publish
	return h
}

func (h HostConfig) WithLinks(links ...ContainerLink) HostConfig {
	h.Links = links
	return h
}

func (h HostConfig) WithBinds(binds ...VolumeBinding) HostConfig {
	h.Binds = binds
	return h
}

func (h HostConfig) WithVolumesFrom(containers ...string) HostConfig {
	h.VolumesFrom = containers
	return h
}

func (h HostConfig) WithDevices(devices ...DeviceMapping) HostConfig {
	h.Devices = devices
	return h
}

func (h HostConfig) WithReadonlyRootfs(readonly bool) HostConfig {
	h.ReadonlyRootfs = readonly
	return h
}

func (h HostConfig) WithDNS(servers ...string) HostConfig {
	h.DNS = servers
	return h
}

func (h HostConfig) WithDNSSearch(domains ...string) HostConfig {
	h.DNSSearch = domains
	return h
}

func (h HostConfig) WithNetworkMode(mode string) HostConfig {
	h.NetworkMode = mode
	return h
}

func (h HostConfig) WithPrivileged(privileged bool) HostConfig {
	h.Privileged = privileged
	return h
}

func (h HostConfig) WithCapabilities(capabilities LinuxCapabilities) HostConfig {
	h.LinuxCapabilities = capabilities
	return h
}

func (h HostConfig) WithResources(resources ResourceLimits) HostConfig {
	h.Resources = resources
	return h
}

func (h HostConfig) WithRestartPolicy(policy RestartPolicy) HostConfig {
	h.RestartPolicy = policy
	return h
}
