package docker

import (
	"testing"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	models "github.com/nikolaylagutko/go-docker/models/docker"
)

func TestMakeContainerInfo(t *testing.T) {
	logger := zap.NewNop()

	raw := types.ContainerJSON{
		ContainerJSONBase: &types.ContainerJSONBase{
			ID:             "0123456789abcdef",
			Created:        "2022-05-10T08:30:00.000000001Z",
			Path:           "/bin/sh",
			Args:           []string{"-c", "echo hello"},
			Image:          "sha256:deadbeef",
			ResolvConfPath: "/var/lib/docker/containers/0123/resolv.conf",
			HostnamePath:   "/var/lib/docker/containers/0123/hostname",
			HostsPath:      "/var/lib/docker/containers/0123/hosts",
			Name:           "/web",
			MountLabel:     "",
			ProcessLabel:   "",
			State: &types.ContainerState{
				Running:    true,
				Pid:        4242,
				StartedAt:  "2022-05-10T08:30:01Z",
				FinishedAt: "0001-01-01T00:00:00Z",
			},
			HostConfig: &container.HostConfig{
				Binds:        []string{"/host:/container:ro", "not-a-bind"},
				NetworkMode:  "bridge",
				Links:        []string{"db:database"},
				PortBindings: nat.PortMap{"80/tcp": {{HostIP: "0.0.0.0", HostPort: "8080"}}},
				RestartPolicy: container.RestartPolicy{
					Name:              "on-failure",
					MaximumRetryCount: 3,
				},
			},
			Node: &types.ContainerNode{
				ID:        "node-1",
				IPAddress: "10.0.0.5",
				Addr:      "10.0.0.5:2375",
				Name:      "worker-1",
				Cpus:      8,
				Memory:    16 << 30,
			},
		},
		Mounts: []types.MountPoint{
			{Source: "/host", Destination: "/container"},
		},
		Config: &container.Config{
			Image:        "ubuntu:22.04",
			Env:          []string{"FOO=bar"},
			ExposedPorts: nat.PortSet{"80/tcp": {}, "bogus": {}},
			Labels:       map[string]string{"tier": "web"},
		},
		NetworkSettings: &types.NetworkSettings{
			NetworkSettingsBase: types.NetworkSettingsBase{
				Bridge: "docker0",
				Ports:  nat.PortMap{"80/tcp": {{HostIP: "0.0.0.0", HostPort: "8080"}}},
			},
			DefaultNetworkSettings: types.DefaultNetworkSettings{
				IPAddress:   "172.17.0.2",
				IPPrefixLen: 16,
				Gateway:     "172.17.0.1",
			},
		},
	}

	info, err := MakeContainerInfo(raw, logger)
	require.NoError(t, err)

	assert.Equal(t, models.HashID("0123456789abcdef"), info.ID)
	assert.Equal(t, "0123456789ab", info.ID.ShortHash())
	assert.Equal(t, time.Date(2022, 5, 10, 8, 30, 0, 1, time.UTC), info.Created)
	assert.Equal(t, "/bin/sh", info.Path)
	assert.Equal(t, "/web", info.Name)

	// State: started timestamp present, zero finish timestamp absent.
	assert.True(t, info.State.Running)
	assert.Equal(t, 4242, info.State.Pid)
	require.NotNil(t, info.State.StartedAt)
	assert.Equal(t, time.Date(2022, 5, 10, 8, 30, 1, 0, time.UTC), *info.State.StartedAt)
	assert.Nil(t, info.State.FinishedAt)

	// Config: the malformed exposed port key is dropped.
	assert.Equal(t, "ubuntu:22.04", info.Config.Image)
	web, ok := models.MakePort(80, "tcp")
	require.True(t, ok)
	assert.Equal(t, []models.Port{web}, info.Config.ExposedPorts)
	assert.Equal(t, map[string]string{"FOO": "bar"}, info.Config.EnvironmentMap())
	assert.Equal(t, map[string]string{"tier": "web"}, info.Labels)

	// HostConfig: the malformed bind string is dropped.
	assert.Equal(t, []models.VolumeBinding{
		{HostPath: "/host", ContainerPath: "/container", ReadOnly: true},
	}, info.HostConfig.Binds)
	assert.Equal(t, []models.ContainerLink{{Name: "db", Alias: "database"}}, info.HostConfig.Links)
	assert.Equal(t, "bridge", info.HostConfig.NetworkMode)
	assert.Equal(t, models.RestartOnFailure(3), info.HostConfig.RestartPolicy)
	assert.Equal(t, []models.PortBinding{{HostIP: "0.0.0.0", HostPort: 8080}}, info.HostConfig.PortBindings[web])

	// Network settings.
	assert.Equal(t, "172.17.0.2", info.NetworkSettings.IPAddress)
	assert.Equal(t, 16, info.NetworkSettings.IPPrefixLen)
	assert.Equal(t, "172.17.0.1", info.NetworkSettings.Gateway)
	assert.Equal(t, "docker0", info.NetworkSettings.Bridge)
	assert.Equal(t, []models.PortBinding{{HostIP: "0.0.0.0", HostPort: 8080}}, info.NetworkSettings.Ports[web])

	// Volumes map and scheduling node.
	assert.Equal(t, map[string]string{"/container": "/host"}, info.Volumes)
	require.NotNil(t, info.Node)
	assert.Equal(t, "worker-1", info.Node.Name)
	assert.Equal(t, "10.0.0.5", info.Node.IP)
	assert.Equal(t, 8, info.Node.Cpus)
}

func TestMakeContainerInfoMissingBase(t *testing.T) {
	_, err := MakeContainerInfo(types.ContainerJSON{}, zap.NewNop())
	assert.Error(t, err)
}

func TestMakeContainerInfoInvalidCreationTime(t *testing.T) {
	raw := types.ContainerJSON{
		ContainerJSONBase: &types.ContainerJSONBase{
			ID:      "0123456789abcdef",
			Created: "yesterday",
		},
	}
	_, err := MakeContainerInfo(raw, zap.NewNop())
	assert.Error(t, err)
}

func TestMakeContainerInfoVolumesDefaultToEmpty(t *testing.T) {
	raw := types.ContainerJSON{
		ContainerJSONBase: &types.ContainerJSONBase{
			ID:      "0123456789abcdef",
			Created: "2022-05-10T08:30:00Z",
		},
	}
	info, err := MakeContainerInfo(raw, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, info.Volumes)
	assert.Empty(t, info.Volumes)
	assert.Nil(t, info.Node)
}

func TestMakeContainerStatuses(t *testing.T) {
	raw := []types.Container{
		{
			ID:      "0123456789abcdef",
			Names:   []string{"/web"},
			Image:   "ubuntu:22.04",
			Command: "/bin/sh -c 'echo hello'",
			Created: 1652171400,
			Ports: []types.Port{
				{IP: "0.0.0.0", PrivatePort: 80, PublicPort: 8080, Type: "tcp"},
			},
			Labels: map[string]string{"tier": "web"},
			Status: "Up 2 hours",
		},
	}

	statuses := MakeContainerStatuses(raw, zap.NewNop())
	require.Len(t, statuses, 1)

	status := statuses[0]
	assert.Equal(t, models.HashID("0123456789abcdef"), status.ID)
	assert.Equal(t, []string{"/web"}, status.Names)
	assert.Equal(t, "ubuntu:22.04", status.Image)
	assert.Equal(t, int64(1652171400), status.Created)
	assert.Equal(t, []models.PortSummary{
		{IP: "0.0.0.0", PrivatePort: 80, PublicPort: 8080, Type: "tcp"},
	}, status.Ports)
	assert.Equal(t, "Up 2 hours", status.Status)
}
