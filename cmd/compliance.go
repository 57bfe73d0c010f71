package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arashek/ade/internal/security"
)

var complianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Security policy compliance checks",
}

var complianceCheckCmd = &cobra.Command{
	Use:   "check [policy-file]",
	Short: "Check a security policy against the compliance rules",
	Long: `Evaluate a security policy (YAML) against the standard compliance
rule set. Without an argument the hardened default policy is checked.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		policy := security.DefaultPolicy()
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Cannot read %s: %v\n", args[0], err)
				os.Exit(1)
			}
			policy = &security.SecurityPolicy{}
			if err := yaml.Unmarshal(data, policy); err != nil {
				fmt.Fprintf(os.Stderr, "Cannot parse %s: %v\n", args[0], err)
				os.Exit(1)
			}
		}

		validator := security.NewValidator()
		results := validator.Validate(policy)
		summary := security.Summarize(results)

		for _, r := range results {
			mark := "PASS"
			if !r.Passed {
				mark = "FAIL"
			}
			fmt.Printf("%-4s [%-8s] %-18s %s\n", mark, r.Severity, r.RuleID, r.Message)
		}
		fmt.Printf("\n%d/%d rules passed\n", summary.Passed, summary.Total)

		if summary.Failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(complianceCmd)
	complianceCmd.AddCommand(complianceCheckCmd)
}
