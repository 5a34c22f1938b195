package commands

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/urfave/cli.v1"
)

// GenerateDocs generates markdown documentation for the commands in app
func GenerateDocs(app *cli.App) string {
	buffer := bytes.Buffer{}

	fmt.Fprintf(&buffer, "# `%s`\n\n%s - %s\n\n", app.Name, app.Version, app.Authors[0].Name)

	if app.Usage != "" {
		buffer.WriteString(app.Usage)
		buffer.WriteString("\n\n")
	}

	fmt.Fprintf(&buffer, "## Commands (%d)\n\n", len(app.Commands))

	for _, command := range app.Commands {
		generateCommandDocs(app.Name, command, &buffer)
		buffer.WriteString("---\n\n")
	}

	if len(app.Flags) > 0 {
		buffer.WriteString("## Global Flags\n\n")
		writeFlagDocs(app.Flags, &buffer)
		buffer.WriteString("\n")
	}
	return buffer.String()
}

func generateCommandDocs(prefix string, command cli.Command, buffer *bytes.Buffer) {
	fmt.Fprintf(buffer, "### `%s %s`\n\n", prefix, command.Name)
	if command.Usage != "" {
		fmt.Fprintf(buffer, "Usage: `%s`\n\n", command.Usage)
	}
	if command.Description != "" {
		fmt.Fprintf(buffer, "%s\n\n", command.Description)
	}
	if len(command.Flags) > 0 {
		buffer.WriteString("#### Flags\n\n")
		writeFlagDocs(command.Flags, buffer)
		buffer.WriteString("\n")
	}
}

func writeFlagDocs(flags []cli.Flag, buffer *bytes.Buffer) {
	for _, flag := range flags {
		info := strings.SplitN(flag.String(), "\t", 2)
		if len(info) < 2 {
			fmt.Fprintf(buffer, "- `%s`\n", info[0])
			continue
		}
		fmt.Fprintf(buffer, "- `%s`: %s\n", info[0], info[1])
	}
}
