package docker

const (
	restartAlways    = "always"
	restartOnFailure = "on-failure"
)

// RestartPolicy tells the daemon whether to restart a container after it
// exits. The zero value means never restart.
type RestartPolicy struct {
	Name              string `json:"Name"`
	MaximumRetryCount int    `json:"MaximumRetryCount"`
}

// RestartNever is the default policy: the container is not restarted.
func RestartNever() RestartPolicy {
	return RestartPolicy{}
}

// RestartAlways restarts the container regardless of its exit code.
func RestartAlways() RestartPolicy {
	return RestartPolicy{Name: restartAlways}
}

// RestartOnFailure restarts the container on non-zero exit, giving up after
// maxRetries attempts.
func RestartOnFailure(maxRetries int) RestartPolicy {
	return RestartPolicy{Name: restartOnFailure, MaximumRetryCount: maxRetries}
}
