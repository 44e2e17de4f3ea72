package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/templates"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the registered CV templates",
	RunE:  runTemplates,
}

var templatesVerbose bool

func init() {
	templatesCmd.Flags().BoolVarP(&templatesVerbose, "verbose", "v", false, "Print template descriptions in a formatted box")

	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	registry := templates.Builtin()
	list := registry.List()

	if templatesVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintTemplateList(list, list[0].ID)
		return nil
	}

	for _, tpl := range list {
		_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\n", tpl.ID, tpl.Name)
	}
	return nil
}
