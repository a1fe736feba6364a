package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1954A6")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	cmdStyle = lipgloss.NewStyle().Bold(true)
)

func printHelp(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintf(w, "\n  %s  %s\n\n  %s\n", //nolint:errcheck
		titleStyle.Render("kthprofile"),
		dimStyle.Render(cmd.Version),
		dimStyle.Italic(true).Render(cmd.Short))

	fmt.Fprint(w, "\n  Usage:\n") //nolint:errcheck
	fmt.Fprintf(w, "    %s\n", cmdStyle.Render(cmd.UseLine())) //nolint:errcheck

	fmt.Fprint(w, "\n  Arguments:\n") //nolint:errcheck
	fmt.Fprintf(w, "    %s  %s\n", //nolint:errcheck
		cmdStyle.Render(fmt.Sprintf("%-16s", "NAME...")),
		dimStyle.Render("User names or kthids to look up"))

	options := []struct{ flag, desc string }{
		{"-h, --help", "Show this help"},
		{"-v, --version", "Show version"},
	}
	fmt.Fprint(w, "\n  Options:\n") //nolint:errcheck
	for _, o := range options {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-16s", o.flag)), dimStyle.Render(o.desc)) //nolint:errcheck
	}
	fmt.Fprintln(w) //nolint:errcheck
}

func printUsage(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintf(w, "Usage: %s\n", cmdStyle.Render(cmd.UseLine())) //nolint:errcheck
	fmt.Fprintf(w, "%s\n", dimStyle.Render("Run 'kthprofile --help' for more information.")) //nolint:errcheck
}
