package vpn

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Runner drives the tunnel process. The manager owns all state; a Runner
// only starts, stops and observes the process.
type Runner interface {
	// Available returns an error when the tunnel binary cannot be found.
	Available() error
	Start(ctx context.Context, configPath string) error
	Stop(ctx context.Context) error
	Running(ctx context.Context) bool
}

// OpenVPNRunner runs openvpn as a daemon. Because --daemon double-forks,
// the process is managed by name rather than by PID.
type OpenVPNRunner struct {
	binary string
}

// compile-time check: *OpenVPNRunner must satisfy Runner
var _ Runner = (*OpenVPNRunner)(nil)

func NewOpenVPNRunner(binary string) *OpenVPNRunner {
	if binary == "" {
		binary = "openvpn"
	}
	return &OpenVPNRunner{binary: binary}
}

func (r *OpenVPNRunner) Available() error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return fmt.Errorf("%w: %q not in PATH", ErrBinaryMissing, r.binary)
	}
	return nil
}

func (r *OpenVPNRunner) Start(ctx context.Context, configPath string) error {
	cmd := exec.CommandContext(ctx, r.binary, "--config", configPath, "--daemon", "--log", "/tmp/openvpn.log")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("start tunnel: %w: %s", err, out)
	}
	return nil
}

func (r *OpenVPNRunner) Stop(ctx context.Context) error {
	// pkill exits 1 when nothing matched, which is fine here
	cmd := exec.CommandContext(ctx, "pkill", "-x", r.binary)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil
		}
		return fmt.Errorf("stop tunnel: %w", err)
	}
	return nil
}

func (r *OpenVPNRunner) Running(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "pgrep", "-x", r.binary)
	return cmd.Run() == nil
}
