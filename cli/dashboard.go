package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"attarshop/domain"
	"attarshop/report"
)

func init() {
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the shop overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			oils, err := theShop.Oils(cmd.Context())
			if err != nil {
				return err
			}
			orders, err := theShop.Orders(cmd.Context())
			if err != nil {
				return err
			}
			s := report.BuildSummary(oils, orders)

			fmt.Printf("=== %s ===\n", theShop.ShopName())
			fmt.Printf("إجمالي المخزون: %s غرام\n", report.Money(s.TotalStockWeight))
			fmt.Printf("إجمالي المبيعات: %s د.ع\n", report.Money(s.TotalSales))
			fmt.Printf("قيمة المخزن (شراء): %s د.ع\n", report.Money(s.PurchaseValue))
			fmt.Printf("زيوت تحتاج تعبئة (أقل من %g غ): %d\n", domain.LowStockThreshold, len(s.LowStock))
			for _, o := range s.LowStock {
				fmt.Printf("  - %s (%s): %gg\n", o.Name, o.Company, o.CurrentWeight)
			}
			if len(s.RecentOrders) > 0 {
				fmt.Println("آخر الطلبيات:")
				for _, o := range s.RecentOrders {
					fmt.Printf("  - %s | %s | %s د.ع\n", o.CustomerName, o.Date, report.Money(o.TotalAmount))
				}
			}
			return nil
		},
	}
	rootCmd.AddCommand(dashboardCmd)
}
