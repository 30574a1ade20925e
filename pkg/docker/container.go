package docker

import (
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/go-connections/nat"

	models "github.com/nikolaylagutko/go-docker/models/docker"
)

// CreateOptions turns a model config pair into the request body of the
// Engine API create endpoint.
func CreateOptions(cfg models.ContainerConfig, host models.HostConfig) (container.Config, container.HostConfig) {
	return prepareContainerConfig(cfg), prepareHostConfig(host)
}

func prepareContainerConfig(cfg models.ContainerConfig) container.Config {
	return container.Config{
		Hostname:        cfg.Hostname,
		Domainname:      cfg.Domainname,
		User:            cfg.User,
		AttachStdin:     cfg.AttachStdin,
		AttachStdout:    cfg.AttachStdout,
		AttachStderr:    cfg.AttachStderr,
		ExposedPorts:    preparePortSet(cfg.ExposedPorts),
		Tty:             cfg.Tty,
		OpenStdin:       cfg.OpenStdin,
		StdinOnce:       cfg.StdinOnce,
		Env:             cfg.Env,
		Cmd:             strslice.StrSlice(cfg.Cmd),
		Entrypoint:      strslice.StrSlice(cfg.Entrypoint),
		Image:           cfg.Image,
		Volumes:         cfg.Volumes,
		WorkingDir:      cfg.WorkingDir,
		NetworkDisabled: cfg.NetworkDisabled,
		Labels:          cfg.Labels,
	}
}

func prepareHostConfig(host models.HostConfig) container.HostConfig {
	return container.HostConfig{
		Binds:           prepareBinds(host.Binds),
		NetworkMode:     container.NetworkMode(host.NetworkMode),
		PortBindings:    preparePortMap(host.PortBindings),
		RestartPolicy:   prepareRestartPolicy(host.RestartPolicy),
		VolumesFrom:     host.VolumesFrom,
		CapAdd:          strslice.StrSlice(host.CapAdd),
		CapDrop:         strslice.StrSlice(host.CapDrop),
		DNS:             host.DNS,
		DNSSearch:       host.DNSSearch,
		Links:           prepareLinks(host.Links),
		Privileged:      host.Privileged,
		PublishAllPorts: host.PublishAllPorts,
		ReadonlyRootfs:  host.ReadonlyRootfs,
		Resources:       prepareResources(host.Resources, host.Devices),
	}
}

func preparePortSet(ports []models.Port) nat.PortSet {
	if len(ports) == 0 {
		return nil
	}
	set := nat.PortSet{}
	for _, port := range ports {
		set[nat.Port(port.String())] = struct{}{}
	}
	return set
}

func preparePortMap(bindings map[models.Port][]models.PortBinding) nat.PortMap {
	if len(bindings) == 0 {
		return nil
	}
	portMap := nat.PortMap{}
	for port, hostPorts := range bindings {
		bound := make([]nat.PortBinding, 0, len(hostPorts))
		for _, binding := range hostPorts {
			bound = append(bound, nat.PortBinding{
				HostIP:   binding.HostIP,
				HostPort: strconv.Itoa(binding.HostPort),
			})
		}
		portMap[nat.Port(port.String())] = bound
	}
	return portMap
}

func prepareBinds(binds []models.VolumeBinding) []string {
	output := make([]string, 0, len(binds))
	for _, bind := range binds {
		output = append(output, bind.String())
	}
	return output
}

func prepareLinks(links []models.ContainerLink) []string {
	output := make([]string, 0, len(links))
	for _, link := range links {
		output = append(output, link.String())
	}
	return output
}

func prepareRestartPolicy(policy models.RestartPolicy) container.RestartPolicy {
	return container.RestartPolicy{
		Name:              policy.Name,
		MaximumRetryCount: policy.MaximumRetryCount,
	}
}

func prepareResources(limits models.ResourceLimits, devices []models.DeviceMapping) container.Resources {
	deviceMappings := make([]container.DeviceMapping, 0, len(devices))
	for _, device := range devices {
		deviceMappings = append(deviceMappings, container.DeviceMapping{
			PathOnHost:        device.PathOnHost,
			PathInContainer:   device.PathInContainer,
			CgroupPermissions: device.CgroupPermissions,
		})
	}
	return container.Resources{
		Memory:            limits.Memory,
		MemorySwap:        limits.MemorySwap,
		MemoryReservation: limits.MemoryReservation,
		CPUShares:         limits.CPUShares,
		CpusetCpus:        limits.CpusetCpus,
		Devices:           deviceMappings,
	}
}
