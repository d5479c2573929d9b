package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func init() {
	companyCmd := &cobra.Command{
		Use:   "company",
		Short: "Manage the supplier register",
	}
	rootCmd.AddCommand(companyCmd)

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a supplier company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := theShop.AddCompany(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			slog.Info("company added", "company_id", c.ID, "name", c.Name)
			b, _ := json.MarshalIndent(c, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	companyCmd.AddCommand(addCmd)

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a supplier company (existing oils keep the name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := theShop.RemoveCompany(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("removed")
			return nil
		},
	}
	companyCmd.AddCommand(removeCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			companies, err := theShop.Companies(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range companies {
				fmt.Printf("%s | %s\n", c.ID, c.Name)
			}
			return nil
		},
	}
	companyCmd.AddCommand(listCmd)
}
