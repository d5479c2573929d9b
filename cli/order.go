package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"attarshop/report"
	"attarshop/sales"
)

func init() {
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Place and review orders",
	}
	rootCmd.AddCommand(orderCmd)

	// new
	var customer string
	var items []string
	newCmd := &cobra.Command{
		Use:   "new --item <oil-id>=<grams> [--item ...]",
		Short: "Place a new order and print its invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			cart := sales.NewCart()
			for _, spec := range items {
				id, grams, err := parseItemSpec(spec)
				if err != nil {
					return err
				}
				oil, err := theShop.Oil(cmd.Context(), id)
				if err != nil {
					return err
				}
				if err := cart.AddLine(oil, grams); err != nil {
					return err
				}
			}

			start := time.Now()
			order, err := theShop.PlaceOrder(cmd.Context(), cart, customer)
			if err != nil {
				slog.Error("order placement failed", "error", err)
				return err
			}
			slog.Info("order placed",
				"order_id", order.ID,
				"items", len(order.Items),
				"total", order.TotalAmount,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return report.RenderInvoice(os.Stdout, theShop.ShopName(), order)
		},
	}
	newCmd.Flags().StringVar(&customer, "customer", "", "customer name (optional)")
	newCmd.Flags().StringArrayVar(&items, "item", nil, "cart line as <oil-id>=<grams>, repeatable")
	orderCmd.AddCommand(newCmd)

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := theShop.Orders(cmd.Context())
			if err != nil {
				return err
			}
			if lOutput == "json" {
				b, _ := json.MarshalIndent(orders, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, o := range orders {
				fmt.Printf("%s | %s | %s | %s د.ع\n",
					o.ID, o.CustomerName, o.Date, report.Money(o.TotalAmount))
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	orderCmd.AddCommand(listCmd)

	// invoice reprint
	invoiceCmd := &cobra.Command{
		Use:   "invoice <order-id>",
		Short: "Reprint the invoice for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := theShop.Order(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return report.RenderInvoice(os.Stdout, theShop.ShopName(), order)
		},
	}
	rootCmd.AddCommand(invoiceCmd)
}

// parseItemSpec splits "<oil-id>=<grams>" into its parts.
func parseItemSpec(spec string) (string, float64, error) {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, fmt.Errorf("invalid item %q, want <oil-id>=<grams>", spec)
	}
	grams, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid grams in item %q: %w", spec, err)
	}
	return parts[0], grams, nil
}
