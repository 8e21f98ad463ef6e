package cli

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/doeshing/keyclip-go/internal/ports"
)

// Clipboard implements ports.Clipboard using platform-specific tools.
// Copy errors keep the helper's *exec.ExitError so the command layer can
// propagate the underlying exit status.
type Clipboard struct {
	// tool pins a specific helper binary; empty means auto-detect.
	tool string
}

// NewClipboard builds the clipboard helper. tool optionally overrides
// auto-detection (pbcopy, xclip, wl-copy).
func NewClipboard(tool string) *Clipboard {
	return &Clipboard{tool: tool}
}

func (c *Clipboard) Enabled() bool {
	if c.tool != "" {
		_, err := exec.LookPath(c.tool)
		return err == nil
	}
	switch runtime.GOOS {
	case "darwin", "linux":
		return true
	default:
		return false
	}
}

// Copy writes text to the system clipboard. An empty string clears it.
func (c *Clipboard) Copy(text string) error {
	cmd, err := c.command()
	if err != nil {
		return err
	}
	cmd.Stdin = bytes.NewBufferString(text)
	return cmd.Run()
}

func (c *Clipboard) command() (*exec.Cmd, error) {
	if c.tool != "" {
		return toolCommand(c.tool), nil
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := exec.LookPath("wl-copy"); err == nil {
			return exec.Command("wl-copy"), nil
		}
		return nil, fmt.Errorf("clipboard utilities not found")
	default:
		return nil, fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
}

func toolCommand(tool string) *exec.Cmd {
	if tool == "xclip" {
		return exec.Command("xclip", "-selection", "clipboard")
	}
	return exec.Command(tool)
}

var _ ports.Clipboard = (*Clipboard)(nil)
