package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandsFor(t *testing.T) {
	t.Parallel()

	names := func(cs []command) []string {
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.name)
		}
		return out
	}

	assert.Equal(t, []string{"pbcopy"}, names(commandsFor("darwin")))
	assert.Equal(t, []string{"cmd", "powershell"}, names(commandsFor("windows")))
	assert.Equal(t, []string{"wl-copy", "xclip", "xsel"}, names(commandsFor("linux")))
	assert.Equal(t, []string{"wl-copy", "xclip", "xsel"}, names(commandsFor("freebsd")))
}

func TestRunClipboardCmd_MissingBinary(t *testing.T) {
	t.Parallel()

	err := runClipboardCmd("definitely-not-a-clipboard-tool-xyz", nil, "x")
	assert.Error(t, err)
}

func TestFunc_WriteText(t *testing.T) {
	t.Parallel()

	var got string
	var w Writer = Func(func(s string) error {
		got = s
		return nil
	})
	assert.NoError(t, w.WriteText("2024-01-15T10:15:00.000Z"))
	assert.Equal(t, "2024-01-15T10:15:00.000Z", got)
}
