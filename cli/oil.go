package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"attarshop/domain"
)

func init() {
	oilCmd := &cobra.Command{
		Use:   "oil",
		Short: "Manage the oil inventory",
	}
	rootCmd.AddCommand(oilCmd)

	// add
	var name, company, category, macerationDate string
	var weight, purchasePrice, salePrice, macerationPct float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new oil to the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errors.New("name required")
			}
			oil := domain.Oil{
				Name:                 name,
				Company:              company,
				Category:             category,
				CurrentWeight:        weight,
				PurchasePricePerGram: purchasePrice,
				SalePricePerGram:     salePrice,
				MacerationDate:       macerationDate,
				MacerationPercentage: macerationPct,
			}
			start := time.Now()
			created, err := theShop.AddOil(cmd.Context(), oil)
			if err != nil {
				slog.Error("oil add failed", "name", name, "error", err)
				return err
			}
			slog.Info("oil added", "oil_id", created.ID, "duration_ms", time.Since(start).Milliseconds())
			b, _ := json.MarshalIndent(created, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "oil name")
	addCmd.Flags().StringVar(&company, "company", "", "supplier company")
	addCmd.Flags().StringVar(&category, "category", "", "fragrance category")
	addCmd.Flags().Float64Var(&weight, "weight", 0, "current weight in grams")
	addCmd.Flags().Float64Var(&purchasePrice, "purchase-price", 0, "purchase price per gram")
	addCmd.Flags().Float64Var(&salePrice, "sale-price", 0, "sale price per gram")
	addCmd.Flags().StringVar(&macerationDate, "maceration-date", "", "maceration date")
	addCmd.Flags().Float64Var(&macerationPct, "maceration-pct", 0, "maceration percentage")
	oilCmd.AddCommand(addCmd)

	// update
	var uName, uCompany, uCategory, uMacerationDate string
	var uWeight, uPurchasePrice, uSalePrice, uMacerationPct float64
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an oil",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			var patch domain.OilPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &uName
			}
			if cmd.Flags().Changed("company") {
				patch.Company = &uCompany
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &uCategory
			}
			if cmd.Flags().Changed("weight") {
				patch.CurrentWeight = &uWeight
			}
			if cmd.Flags().Changed("purchase-price") {
				patch.PurchasePricePerGram = &uPurchasePrice
			}
			if cmd.Flags().Changed("sale-price") {
				patch.SalePricePerGram = &uSalePrice
			}
			if cmd.Flags().Changed("maceration-date") {
				patch.MacerationDate = &uMacerationDate
			}
			if cmd.Flags().Changed("maceration-pct") {
				patch.MacerationPercentage = &uMacerationPct
			}

			start := time.Now()
			updated, err := theShop.UpdateOil(cmd.Context(), id, patch)
			if err != nil {
				slog.Error("oil update failed", "oil_id", id, "error", err)
				return err
			}
			slog.Info("oil updated", "oil_id", id, "duration_ms", time.Since(start).Milliseconds())
			b, _ := json.MarshalIndent(updated, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uName, "name", "", "oil name")
	updateCmd.Flags().StringVar(&uCompany, "company", "", "supplier company")
	updateCmd.Flags().StringVar(&uCategory, "category", "", "fragrance category")
	updateCmd.Flags().Float64Var(&uWeight, "weight", 0, "current weight in grams")
	updateCmd.Flags().Float64Var(&uPurchasePrice, "purchase-price", 0, "purchase price per gram")
	updateCmd.Flags().Float64Var(&uSalePrice, "sale-price", 0, "sale price per gram")
	updateCmd.Flags().StringVar(&uMacerationDate, "maceration-date", "", "maceration date")
	updateCmd.Flags().Float64Var(&uMacerationPct, "maceration-pct", 0, "maceration percentage")
	oilCmd.AddCommand(updateCmd)

	// list
	var lCategory, lCompany, lOutput string
	var lLowStock bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List oils in the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			oils, err := theShop.Oils(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]domain.Oil, 0, len(oils))
			for _, o := range oils {
				if lCategory != "" && o.Category != lCategory {
					continue
				}
				if lCompany != "" && o.Company != lCompany {
					continue
				}
				if lLowStock && o.CurrentWeight > domain.LowStockThreshold {
					continue
				}
				out = append(out, o)
			}
			if lOutput == "json" {
				b, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, o := range out {
				fmt.Printf("%s | %s | %s | %s | %gg | %.2f/g\n",
					o.ID, o.Name, o.Company, o.Category, o.CurrentWeight, o.SalePricePerGram)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lCategory, "category", "", "filter by category")
	listCmd.Flags().StringVar(&lCompany, "company", "", "filter by company")
	listCmd.Flags().BoolVar(&lLowStock, "low-stock", false, "only oils at or below the low-stock threshold")
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	oilCmd.AddCommand(listCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an oil",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Delete %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := theShop.DeleteOil(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	oilCmd.AddCommand(deleteCmd)

	// restock
	var grams float64
	restockCmd := &cobra.Command{
		Use:   "restock <id>",
		Short: "Add stock to an existing oil",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oil, err := theShop.RestockOil(cmd.Context(), args[0], grams)
			if err != nil {
				return err
			}
			slog.Info("oil restocked", "oil_id", oil.ID, "grams", grams, "current_weight", oil.CurrentWeight)
			b, _ := json.MarshalIndent(oil, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	restockCmd.Flags().Float64Var(&grams, "grams", 0, "grams to add")
	oilCmd.AddCommand(restockCmd)

	// import (supports JSON array and NDJSON)
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Import oils from JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}

			b, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}

			btrim := bytes.TrimSpace(b)
			if len(btrim) == 0 {
				return errors.New("empty file")
			}

			var oils []domain.Oil
			if btrim[0] == '[' {
				if err := json.Unmarshal(btrim, &oils); err != nil {
					return err
				}
			} else {
				scanner := bufio.NewScanner(bytes.NewReader(btrim))
				for scanner.Scan() {
					line := bytes.TrimSpace(scanner.Bytes())
					if len(line) == 0 {
						continue
					}
					var o domain.Oil
					if err := json.Unmarshal(line, &o); err != nil {
						return err
					}
					oils = append(oils, o)
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			if err := theShop.ImportOils(cmd.Context(), oils); err != nil {
				return err
			}
			slog.Info("oils imported", "count", len(oils))
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	oilCmd.AddCommand(importCmd)

	// export
	var exportFile, exportCategory string
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Export oils to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file required")
			}
			oils, err := theShop.Oils(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]domain.Oil, 0, len(oils))
			for _, o := range oils {
				if exportCategory != "" && o.Category != exportCategory {
					continue
				}
				out = append(out, o)
			}
			b, _ := json.MarshalIndent(out, "", "  ")
			return os.WriteFile(exportFile, b, 0o644)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "filter by category")
	oilCmd.AddCommand(exportCmd)
}
