package docker

import (
	"sort"
	"strings"
)

// StreamsConfig selects which standard streams are attached to the container
// and how stdin behaves. All flags default to false.
type StreamsConfig struct {
	AttachStdin  bool `json:"AttachStdin"`
	AttachStdout bool `json:"AttachStdout"`
	AttachStderr bool `json:"AttachStderr"`
	Tty          bool `json:"Tty"`
	OpenStdin    bool `json:"OpenStdin"`
	StdinOnce    bool `json:"StdinOnce"`
}

// ContainerConfig is the desired definition of a container: the image to run and
// everything that is independent of the host it runs on. Host-level policy
// lives in HostConfig.
//
// Values are immutable; every With* method returns a new config with exactly
// one field group replaced and leaves the receiver untouched. Environment
// variables are stored in their wire form, one "KEY=VALUE" string each.
type ContainerConfig struct {
	Image        string              `json:"Image"`
	Entrypoint   []string            `json:"Entrypoint,omitempty"`
	Cmd          []string            `json:"Cmd,omitempty"`
	Env          []string            `json:"Env,omitempty"`
	ExposedPorts []Port              `json:"ExposedPorts,omitempty"`
	Volumes      map[string]struct{} `json:"Volumes,omitempty"`
	WorkingDir   string              `json:"WorkingDir,omitempty"`
	User         string              `json:"User,omitempty"`
	Hostname     string              `json:"Hostname,omitempty"`
	Domainname   string              `json:"Domainname,omitempty"`
	StreamsConfig
	Labels          map[string]string `json:"Labels,omitempty"`
	NetworkDisabled bool              `json:"NetworkDisabled,omitempty"`
}

// MakeContainerConfig builds a config that runs the given image with all
// other fields at their defaults.
func MakeContainerConfig(image string) ContainerConfig {
	return ContainerConfig{Image: image}
}

func (c ContainerConfig) WithImage(image string) ContainerConfig {
	c.Image = image
	return c
}

func (c ContainerConfig) WithEntrypoint(entrypoint ...string) ContainerConfig {
	c.Entrypoint = entrypoint
	return c
}

func (c ContainerConfig) WithCmd(cmd ...string) ContainerConfig {
	c.Cmd = cmd
	return c
}

// WithEnvironment replaces the environment with the given variables, encoded
// as "KEY=VALUE" strings in key order.
func (c ContainerConfig) WithEnvironment(vars map[string]string) ContainerConfig {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(vars))
	for _, key := range keys {
		env = append(env, key+"="+vars[key])
	}
	c.Env = env
	return c
}

// EnvironmentMap decodes the stored environment. Each entry is split on the
// first "=" only, so "=" characters inside the value survive; an entry with
// no "=" at all maps to the empty value.
func (c ContainerConfig) EnvironmentMap() map[string]string {
	vars := make(map[string]string, len(c.Env))
	for _, entry := range c.Env {
		split := strings.SplitN(entry, "=", 2)
		if len(split) == 1 {
			vars[split[0]] = ""
			continue
		}
		vars[split[0]] = split[1]
	}
	return vars
}

func (c ContainerConfig) WithExposedPorts(ports ...Port) ContainerConfig {
	c.ExposedPorts = ports
	return c
}

func (c ContainerConfig) WithVolumes(containerPaths ...string) ContainerConfig {
	volumes := make(map[string]struct{}, len(containerPaths))
	for _, path := range containerPaths {
		volumes[path] = struct{}{}
	}
	c.Volumes = volumes
	return c
}

// WithWorkingDir sets the working directory. The empty string means unset.
func (c ContainerConfig) WithWorkingDir(dir string) ContainerConfig {
	c.WorkingDir = dir
	return c
}

// WithUser sets the user the command runs as. The empty string means unset.
func (c ContainerConfig) WithUser(user string) ContainerConfig {
	c.User = user
	return c
}

// WithHostname sets the container hostname. The empty string means unset.
func (c ContainerConfig) WithHostname(hostname string) ContainerConfig {
	c.Hostname = hostname
	return c
}

// WithDomainname sets the container domain name. The empty string means unset.
func (c ContainerConfig) WithDomainname(domainname string) ContainerConfig {
	c.Domainname = domainname
	return c
}

func (c ContainerConfig) WithStreams(streams StreamsConfig) ContainerConfig {
	c.StreamsConfig = streams
	return c
}

// WithLabels replaces the whole label mapping; it is not merged with any
// labels set before.
func (c ContainerConfig) WithLabels(labels map[string]string) ContainerConfig {
	copied := make(map[string]string, len(labels))
	for key, value := range labels {
		copied[key] = value
	}
	c.Labels = copied
	return c
}

func (c ContainerConfig) WithNetworkDisabled(disabled bool) ContainerConfig {
	c.NetworkDisabled = disabled
	return c
}
