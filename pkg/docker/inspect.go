package docker

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	models "github.com/nikolaylagutko/go-docker/models/docker"
)

// MakeContainerInfo decodes an Engine API inspect response into the model.
// Entries the daemon reports in a shape the model cannot hold, such as a
// malformed port key, are logged and skipped rather than failing the whole
// snapshot.
func MakeContainerInfo(raw types.ContainerJSON, logger *zap.Logger) (models.ContainerInfo, error) {
	if raw.ContainerJSONBase == nil {
		return models.ContainerInfo{}, errors.New("inspect response has no container section")
	}

	created, err := time.Parse(time.RFC3339Nano, raw.Created)
	if err != nil {
		return models.ContainerInfo{}, errors.Wrapf(err, "invalid creation time %q", raw.Created)
	}

	info := models.ContainerInfo{
		ID:             models.HashID(raw.ID),
		Created:        created,
		Path:           raw.Path,
		Args:           raw.Args,
		Image:          raw.Image,
		ResolvConfPath: raw.ResolvConfPath,
		HostnamePath:   raw.HostnamePath,
		HostsPath:      raw.HostsPath,
		Name:           raw.Name,
		MountLabel:     raw.MountLabel,
		ProcessLabel:   raw.ProcessLabel,
		Volumes:        makeVolumes(raw.Mounts),
		Node:           makeNode(raw.Node),
	}

	if raw.State != nil {
		info.State = makeContainerState(*raw.State, logger)
	}
	if raw.Config != nil {
		info.Config = makeContainerConfig(*raw.Config, logger)
		info.Labels = raw.Config.Labels
	}
	if raw.HostConfig != nil {
		info.HostConfig = makeHostConfig(*raw.HostConfig, logger)
	}
	if raw.NetworkSettings != nil {
		info.NetworkSettings = models.NetworkSettings{
			IPAddress:   raw.NetworkSettings.IPAddress,
			IPPrefixLen: raw.NetworkSettings.IPPrefixLen,
			Gateway:     raw.NetworkSettings.Gateway,
			Bridge:      raw.NetworkSettings.Bridge,
			Ports:       makePortBindings(raw.NetworkSettings.Ports, logger),
		}
	}
	return info, nil
}

// MakeContainerStatuses decodes an Engine API list response into the model.
func MakeContainerStatuses(raw []types.Container, logger *zap.Logger) []models.ContainerStatus {
	output := make([]models.ContainerStatus, 0, len(raw))
	for _, cnt := range raw {
		output = append(output, models.ContainerStatus{
			ID:      models.HashID(cnt.ID),
			Names:   cnt.Names,
			Image:   cnt.Image,
			Command: cnt.Command,
			Created: cnt.Created,
			Ports:   makePortSummaries(cnt.Ports),
			Labels:  cnt.Labels,
			Status:  cnt.Status,
		})
	}
	logger.Debug(fmt.Sprintf("Decoded %d container summaries", len(output)))
	return output
}

func makeContainerState(raw types.ContainerState, logger *zap.Logger) models.ContainerState {
	return models.ContainerState{
		Running:    raw.Running,
		Paused:     raw.Paused,
		Restarting: raw.Restarting,
		Pid:        raw.Pid,
		ExitCode:   raw.ExitCode,
		StartedAt:  makeTimestamp(raw.StartedAt, logger),
		FinishedAt: makeTimestamp(raw.FinishedAt, logger),
	}
}

// makeTimestamp maps the daemon's zero timestamp (a container that never
// started) and the empty string to an absent time.
func makeTimestamp(raw string, logger *zap.Logger) *time.Time {
	if raw == "" {
		return nil
	}
	stamp, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		logger.Warn(fmt.Sprintf("Skipping unparseable timestamp %q: %v", raw, err))
		return nil
	}
	if stamp.IsZero() {
		return nil
	}
	return &stamp
}

func makeContainerConfig(raw container.Config, logger *zap.Logger) models.ContainerConfig {
	return models.ContainerConfig{
		Image:        raw.Image,
		Entrypoint:   raw.Entrypoint,
		Cmd:          raw.Cmd,
		Env:          raw.Env,
		ExposedPorts: makeExposedPorts(raw.ExposedPorts, logger),
		Volumes:      raw.Volumes,
		WorkingDir:   raw.WorkingDir,
		User:         raw.User,
		Hostname:     raw.Hostname,
		Domainname:   raw.Domainname,
		StreamsConfig: models.StreamsConfig{
			AttachStdin:  raw.AttachStdin,
			AttachStdout: raw.AttachStdout,
			AttachStderr: raw.AttachStderr,
			Tty:          raw.Tty,
			OpenStdin:    raw.OpenStdin,
			StdinOnce:    raw.StdinOnce,
		},
		Labels:          raw.Labels,
		NetworkDisabled: raw.NetworkDisabled,
	}
}

func makeHostConfig(raw container.HostConfig, logger *zap.Logger) models.HostConfig {
	return models.HostConfig{
		PortBindings:    makePortBindings(raw.PortBindings, logger),
		PublishAllPorts: raw.PublishAllPorts,
		Links:           makeLinks(raw.Links, logger),
		Binds:           makeBinds(raw.Binds, logger),
		VolumesFrom:     raw.VolumesFrom,
		Devices:         makeDevices(raw.Resources.Devices),
		ReadonlyRootfs:  raw.ReadonlyRootfs,
		DNS:             raw.DNS,
		DNSSearch:       raw.DNSSearch,
		NetworkMode:     string(raw.NetworkMode),
		Privileged:      raw.Privileged,
		LinuxCapabilities: models.LinuxCapabilities{
			CapAdd:  raw.CapAdd,
			CapDrop: raw.CapDrop,
		},
		Resources: models.ResourceLimits{
			Memory:            raw.Resources.Memory,
			MemorySwap:        raw.Resources.MemorySwap,
			MemoryReservation: raw.Resources.MemoryReservation,
			CPUShares:         raw.Resources.CPUShares,
			CpusetCpus:        raw.Resources.CpusetCpus,
		},
		RestartPolicy: models.RestartPolicy{
			Name:              raw.RestartPolicy.Name,
			MaximumRetryCount: raw.RestartPolicy.MaximumRetryCount,
		},
	}
}

func makeExposedPorts(raw nat.PortSet, logger *zap.Logger) []models.Port {
	if len(raw) == 0 {
		return nil
	}
	ports := make([]models.Port, 0, len(raw))
	for key := range raw {
		port, ok := models.ParsePort(string(key))
		if !ok {
			logger.Warn(fmt.Sprintf("Skipping malformed exposed port %q", string(key)))
			continue
		}
		ports = append(ports, port)
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].String() < ports[j].String() })
	return ports
}

func makePortBindings(raw nat.PortMap, logger *zap.Logger) map[models.Port][]models.PortBinding {
	if len(raw) == 0 {
		return nil
	}
	bindings := make(map[models.Port][]models.PortBinding, len(raw))
	for key, rawBindings := range raw {
		port, ok := models.ParsePort(string(key))
		if !ok {
			logger.Warn(fmt.Sprintf("Skipping malformed port key %q", string(key)))
			continue
		}
		bound := make([]models.PortBinding, 0, len(rawBindings))
		for _, binding := range rawBindings {
			hostPort, err := strconv.Atoi(binding.HostPort)
			if err != nil && binding.HostPort != "" {
				logger.Warn(fmt.Sprintf("Skipping malformed host port %q for %s", binding.HostPort, port))
				continue
			}
			bound = append(bound, models.PortBinding{
				HostIP:   binding.HostIP,
				HostPort: hostPort,
			})
		}
		bindings[port] = bound
	}
	return bindings
}

func makeLinks(raw []string, logger *zap.Logger) []models.ContainerLink {
	links := make([]models.ContainerLink, 0, len(raw))
	for _, entry := range raw {
		link, ok := models.ParseContainerLink(entry)
		if !ok {
			logger.Warn(fmt.Sprintf("Skipping malformed link %q", entry))
			continue
		}
		links = append(links, link)
	}
	return links
}

func makeBinds(raw []string, logger *zap.Logger) []models.VolumeBinding {
	binds := make([]models.VolumeBinding, 0, len(raw))
	for _, entry := range raw {
		bind, ok := models.ParseVolumeBinding(entry)
		if !ok {
			logger.Warn(fmt.Sprintf("Skipping malformed volume binding %q", entry))
			continue
		}
		binds = append(binds, bind)
	}
	return binds
}

func makeDevices(raw []container.DeviceMapping) []models.DeviceMapping {
	devices := make([]models.DeviceMapping, 0, len(raw))
	for _, device := range raw {
		devices = append(devices, models.DeviceMapping{
			PathOnHost:        device.PathOnHost,
			PathInContainer:   device.PathInContainer,
			CgroupPermissions: device.CgroupPermissions,
		})
	}
	return devices
}

func makeVolumes(mounts []types.MountPoint) map[string]string {
	volumes := make(map[string]string, len(mounts))
	for _, mount := range mounts {
		volumes[mount.Destination] = mount.Source
	}
	return volumes
}

func makeNode(raw *types.ContainerNode) *models.Node {
	if raw == nil {
		return nil
	}
	return &models.Node{
		ID:     raw.ID,
		Name:   raw.Name,
		Addr:   raw.Addr,
		IP:     raw.IPAddress,
		Cpus:   raw.Cpus,
		Memory: raw.Memory,
		Labels: raw.Labels,
	}
}

func makePortSummaries(raw []types.Port) []models.PortSummary {
	summaries := make([]models.PortSummary, 0, len(raw))
	for _, port := range raw {
		summaries = append(summaries, models.PortSummary{
			IP:          port.IP,
			PrivatePort: int(port.PrivatePort),
			PublicPort:  int(port.PublicPort),
			Type:        port.Type,
		})
	}
	return summaries
}
