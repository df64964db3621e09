// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"goway/config"
	"goway/coordinator"
	"goway/kvstore"
	"goway/venue"
)

var printer = message.NewPrinter(language.English)

// withCoordinator opens the store and the catalog for one-shot commands.
// Requests made here are persisted only: the running app, or the next one
// to start, delivers them.
func withCoordinator(cfg *config.Config, fn func(*coordinator.Coordinator, *venue.Static) error) error {
	catalog, err := venue.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	store, err := kvstore.OpenSQLite(cfg.ResolvedStorePath())
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(coordinator.New(store, catalog), catalog)
}

func requestCmd(cfg **config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Queue a navigation request for the app",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "building <id|name>",
			Short: "Open a building",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ref := strings.Join(args, " ")
				return withCoordinator(*cfg, func(c *coordinator.Coordinator, catalog *venue.Static) error {
					b, ok := catalog.LookupBuilding(ref)
					if !ok {
						return fmt.Errorf("no building matches %q", ref)
					}
					return queue(cmd, c, coordinator.ToBuilding(b))
				})
			},
		},
		&cobra.Command{
			Use:   "vendor <id|name>",
			Short: "Open a vendor",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ref := strings.Join(args, " ")
				return withCoordinator(*cfg, func(c *coordinator.Coordinator, catalog *venue.Static) error {
					v, ok := catalog.LookupVendor(ref)
					if !ok {
						return fmt.Errorf("no vendor matches %q", ref)
					}
					return queue(cmd, c, coordinator.ToVendor(v))
				})
			},
		},
		&cobra.Command{
			Use:       "type <vendor type>",
			Short:     "Open a vendor category",
			Args:      cobra.ExactArgs(1),
			ValidArgs: vendorTypeNames(),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := venue.ParseVendorType(args[0])
				if err != nil {
					return err
				}
				return withCoordinator(*cfg, func(c *coordinator.Coordinator, _ *venue.Static) error {
					return queue(cmd, c, coordinator.ToVendorType(t))
				})
			},
		},
	)
	return cmd
}

func queue(cmd *cobra.Command, c *coordinator.Coordinator, r coordinator.Request) error {
	if ok, _ := c.RequestNavigation(r); !ok {
		return fmt.Errorf("request %s was not accepted", r)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "queued %s\n", r)
	return nil
}

func pendingCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Show the request waiting for the app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCoordinator(*cfg, func(c *coordinator.Coordinator, _ *venue.Static) error {
				kind, value, ok := c.PersistedRequest()
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "no pending request")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", kind, value)
				return nil
			})
		},
	}
}

func clearCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget any pending request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCoordinator(*cfg, func(c *coordinator.Coordinator, _ *venue.Static) error {
				c.ClearNavigationState()
				fmt.Fprintln(cmd.OutOrStdout(), "cleared")
				return nil
			})
		},
	}
}

func venuesCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "venues [query]",
		Short: "List buildings and vendors",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := venue.Load((*cfg).Dataset)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				query := strings.Join(args, " ")
				res := catalog.Search(query)
				printer.Fprintf(out, "%d results for %q\n", res.Total(), query)
				for _, b := range res.Buildings {
					printer.Fprintf(out, "  %-24s building  %.1f\n", b.Name, b.Rating)
				}
				for _, r := range res.Vendors {
					printer.Fprintf(out, "  %-24s %s · %s  %.1f\n", r.Vendor.Name, r.Vendor.Type, r.BuildingName, r.Vendor.Rating)
				}
				return nil
			}

			buildings := catalog.AllBuildings()
			printer.Fprintf(out, "%d buildings, %d vendors\n", len(buildings), len(catalog.AllVendors()))
			for _, b := range buildings {
				printer.Fprintf(out, "%s (%.1f)\n", b.Name, b.Rating)
				for _, v := range b.Vendors {
					printer.Fprintf(out, "  %-24s %-14s %.1f\n", v.Name, v.Type, v.Rating)
				}
			}
			return nil
		},
	}
}

func vendorTypeNames() []string {
	names := make([]string, len(venue.VendorTypes))
	for i, t := range venue.VendorTypes {
		names[i] = string(t)
	}
	return names
}
