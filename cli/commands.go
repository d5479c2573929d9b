// Package cli provides the Cobra-based CLI for attarshop.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"attarshop/persist"
	"attarshop/shop"
)

var (
	rootCmd = &cobra.Command{
		Use:   "attarshop",
		Short: "Perfume-oil shop manager: inventory, sales and invoices",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject the shop
			if theShop != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			var err error
			bridge, err = persist.NewStore(
				viper.GetString("store"),
				viper.GetString("store-path"),
				viper.GetString("redis-addr"),
			)
			if err != nil {
				return err
			}
			theShop, err = shop.Open(cmd.Context(), bridge)
			return err
		},
	}

	theShop *shop.Shop
	bridge  persist.Store
)

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("attarshop> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "json", "store backend: json|bolt|sqlite|redis|memory")
	rootCmd.PersistentFlags().String("store-path", "", "data file path (defaults per backend)")
	rootCmd.PersistentFlags().String("redis-addr", "localhost:6379", "redis address for the redis backend")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("store-path", rootCmd.PersistentFlags().Lookup("store-path"))
	viper.BindPFlag("redis-addr", rootCmd.PersistentFlags().Lookup("redis-addr"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("ATTARSHOP")
	viper.AutomaticEnv()

	// shop-name
	shopNameCmd := &cobra.Command{
		Use:   "shop-name [name]",
		Short: "Show or set the shop name printed on invoices",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println(theShop.ShopName())
				return nil
			}
			if err := theShop.SetShopName(cmd.Context(), args[0]); err != nil {
				return err
			}
			slog.Info("shop name updated", "name", args[0])
			fmt.Println(args[0])
			return nil
		},
	}
	rootCmd.AddCommand(shopNameCmd)
}

func Execute() error {
	err := rootCmd.Execute()
	if bridge != nil {
		if cerr := bridge.Close(); cerr != nil && err == nil {
			err = cerr
		}
		bridge = nil
	}
	return err
}
