package commands

import (
	"io"
	"strings"

	"github.com/atinylittleshell/tsh/internal/commandtree"
)

type demoCommand struct {
	path        []string
	description string
	message     string
	variadic    bool
}

var demoCommands = []demoCommand{
	{[]string{"git", "add"}, "Stage files.", "Executing git add", false},
	{[]string{"git", "commit"}, "Record staged changes.", "Executing git commit", false},
	{[]string{"docker", "run"}, "Run a container.", "Executing docker run", false},
	{[]string{"docker", "build"}, "Build an image.", "Executing docker build", false},
	{[]string{"playlist", "add"}, "Add a track to the playlist.", "!playlist add", false},
	{[]string{"playlist", "remove"}, "Remove a track from the playlist.", "!playlist remove", false},
	{[]string{"playlist", "insert"}, "Insert tracks at a position. Takes any number of arguments.", "!playlist insert", true},
}

// RegisterDemo installs the demo commands. Each prints a message followed
// by its parameters.
func (d *Dispatcher) RegisterDemo() {
	for _, cmd := range demoCommands {
		message := cmd.message
		action := commandtree.ActionFunc(func(params []string) {
			io.WriteString(d.out, strings.Join(append([]string{message}, params...), " "))
		})

		if cmd.variadic {
			d.RegisterVariadic(cmd.path, cmd.description, action)
		} else {
			d.Register(cmd.path, cmd.description, action)
		}
	}
}
