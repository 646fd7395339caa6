// Package clipboard writes converted timestamps to the system clipboard.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"

	atotto "github.com/atotto/clipboard"
	"github.com/go-faster/errors"
)

// Writer copies text somewhere a user can paste it from.
type Writer interface {
	WriteText(s string) error
}

// System is the host clipboard.
type System struct{}

// WriteText implements Writer.
func (System) WriteText(s string) error { return Write(s) }

// Func adapts a function to Writer.
type Func func(s string) error

// WriteText implements Writer.
func (f Func) WriteText(s string) error { return f(s) }

// Write copies s to the system clipboard.
//
// atotto/clipboard covers pbcopy, xclip, xsel and the Windows API; when it
// reports the platform as unsupported (e.g. Wayland without X tools) the
// platform command chain is tried instead.
func Write(s string) error {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	if !atotto.Unsupported {
		if err := atotto.WriteAll(s); err == nil {
			return nil
		}
	}
	if err := writeWithCommands(s); err != nil {
		return errors.Wrap(err, "copy to clipboard")
	}
	return nil
}

type command struct {
	name string
	args []string
}

func commandsFor(goos string) []command {
	switch goos {
	case "darwin":
		return []command{{name: "pbcopy"}}
	case "windows":
		return []command{
			{name: "cmd", args: []string{"/c", "clip"}},
			{name: "powershell", args: []string{"-NoProfile", "-Command", "Set-Clipboard"}},
		}
	default:
		// Wayland first, then X11.
		return []command{
			{name: "wl-copy"},
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
		}
	}
}

func writeWithCommands(s string) error {
	var last error = errors.New("no clipboard command available")
	for _, c := range commandsFor(runtime.GOOS) {
		if err := runClipboardCmd(c.name, c.args, s); err != nil {
			last = err
			continue
		}
		return nil
	}
	return last
}

func runClipboardCmd(name string, args []string, stdin string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, name)
	}
	return nil
}
