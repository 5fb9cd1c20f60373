package main

import (
	"fmt"
	"sort"

	"github.com/areahq/areactl/catalog"
	"github.com/areahq/areactl/model"
	"github.com/spf13/cobra"
)

func (a *app) catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the available actions and reactions, grouped by service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog.Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println("Actions:")
			printGrouped(catalog.GroupByService(cat.Actions))
			fmt.Println("Reactions:")
			printGrouped(catalog.GroupByService(cat.Reactions))
			return nil
		},
	}
}

func printGrouped(grouped map[string][]model.CatalogEntry) {
	services := make([]string, 0, len(grouped))
	for service := range grouped {
		services = append(services, service)
	}
	sort.Strings(services)
	for _, service := range services {
		fmt.Printf("  %s:\n", service)
		for _, entry := range grouped[service] {
			marker := " "
			if !entry.Available {
				marker = "!"
			}
			fmt.Printf("  %s %-32s %s\n", marker, entry.Key(), entry.Title)
		}
	}
}

func (a *app) optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options <service.event> <param>",
		Short: "List the allowed values for a select parameter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := a.catalog.Lookup(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("no catalog entry %s", args[0])
			}
			spec, ok := entry.Params[args[1]]
			if !ok {
				return fmt.Errorf("%s has no parameter %s", args[0], args[1])
			}
			if spec.Kind != model.PARAM_SELECT {
				return fmt.Errorf("parameter %s is %s, not a select", args[1], spec.Kind)
			}
			options, err := a.options.Fetch(cmd.Context(), spec)
			if err != nil {
				return err
			}
			for _, option := range options {
				fmt.Println(option)
			}
			return nil
		},
	}
}

func (a *app) servicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "Show which providers are connected",
		RunE: func(cmd *cobra.Command, args []string) error {
			providers, err := a.registry.Load(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range providers {
				state := "not connected"
				if p.Connected {
					state = "connected"
				}
				fmt.Printf("%-12s %s\n", p.Provider, state)
			}
			return nil
		},
	}
}

func (a *app) connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <provider>",
		Short: "Print the browser URL that authorizes a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("open this URL in a browser to connect %s:\n%s\n", args[0], a.oauth.AuthorizeURL(args[0]))
			return nil
		},
	}
}

func (a *app) disconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <provider>",
		Short: "Revoke a provider connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.oauth.Disconnect(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("%s disconnected\n", args[0])
			return nil
		},
	}
}
