package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arashek/ade/internal/config"
	"github.com/arashek/ade/internal/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect container templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates in the configured template directory",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load config")
		}

		loader := template.NewLoader(cfg.Templates.Dir)
		templates, err := loader.LoadTemplates()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load templates")
		}

		if len(templates) == 0 {
			fmt.Println("No templates found in", cfg.Templates.Dir)
			return
		}

		fmt.Printf("%-16s %-24s %-28s %s\n", "PROJECT TYPE", "ID", "IMAGE", "DESCRIPTION")
		for _, tpl := range templates {
			fmt.Printf("%-16s %-24s %-28s %s\n", tpl.ProjectType, tpl.ID, tpl.BaseImage, tpl.Description)
		}
	},
}

var templatesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a template file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot read %s: %v\n", args[0], err)
			os.Exit(1)
		}

		var tpl template.ContainerTemplate
		if err := yaml.Unmarshal(data, &tpl); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %s: %v\n", args[0], err)
			os.Exit(1)
		}

		if err := template.Validate(&tpl); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("OK: %s (%s)\n", tpl.ID, tpl.ProjectType)
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesValidateCmd)
}
