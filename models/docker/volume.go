package docker

import "strings"

// VolumeBinding mounts a host path into the container. Its textual form is
// "host:container" for a read-write mount or "host:container:ro" for a
// read-only one.
type VolumeBinding struct {
	HostPath      string
	ContainerPath string
	ReadOnly      bool
}

// ParseVolumeBinding parses the "host:container[:ro]" form. Only the literal
// "ro" is recognized as a third segment; any other shape reports ok=false.
func ParseVolumeBinding(raw string) (VolumeBinding, bool) {
	split := strings.Split(raw, ":")
	switch {
	case len(split) == 2:
		return VolumeBinding{HostPath: split[0], ContainerPath: split[1]}, true
	case len(split) == 3 && split[2] == "ro":
		return VolumeBinding{HostPath: split[0], ContainerPath: split[1], ReadOnly: true}, true
	default:
		return VolumeBinding{}, false
	}
}

func (b VolumeBinding) String() string {
	bind := b.HostPath + ":" + b.ContainerPath
	if b.ReadOnly {
		bind = bind + ":ro"
	}
	return bind
}
