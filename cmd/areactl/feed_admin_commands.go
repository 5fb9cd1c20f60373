package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/areahq/areactl/api"
	"github.com/areahq/areactl/mock"
	"github.com/areahq/areactl/model"
	"github.com/spf13/cobra"
)

func (a *app) feedCmd() *cobra.Command {
	var skip, limit int
	var search string
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Browse the public workflow feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.feed.Workflows(cmd.Context(), api.FeedQuery{Skip: skip, Limit: limit, Search: search})
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Printf("%4d  %-24s by %-20s %d steps\n", item.Id, item.Name, item.Author, item.StepsCount)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&skip, "skip", 0, "items to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "max items")
	cmd.Flags().StringVar(&search, "search", "", "filter by name or description")
	return cmd
}

func (a *app) adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrate users (admin role required)",
	}

	list := &cobra.Command{
		Use:   "users",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.admin.Users(cmd.Context())
			if err != nil {
				return err
			}
			for _, user := range users {
				fmt.Printf("%4d  %-20s %-28s %s\n", user.Id, user.Username, user.Email, user.Role)
			}
			return nil
		},
	}

	var username, email, password, role string
	create := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.AdminUserRequest{Username: username, Email: email, Password: password, Role: role}
			user, err := a.admin.CreateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("created user %d\n", user.Id)
			return nil
		},
	}
	create.Flags().StringVar(&username, "username", "", "display name")
	create.Flags().StringVar(&email, "email", "", "email")
	create.Flags().StringVar(&password, "password", "", "password")
	create.Flags().StringVar(&role, "role", "user", "role")
	create.MarkFlagRequired("email")
	create.MarkFlagRequired("password")

	remove := &cobra.Command{
		Use:   "delete-user <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			return a.admin.DeleteUser(cmd.Context(), id)
		},
	}

	cmd.AddCommand(list, create, remove)
	return cmd
}

func (a *app) mockServerCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "mockserver",
		Short: "Run an in-memory backend for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mock.NewServer(port)
			errc := make(chan error, 1)
			go func() {
				errc <- server.Start()
			}()
			sigc := make(chan os.Signal, 1)
			signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errc:
				return err
			case <-sigc:
				return server.Stop()
			}
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "listen port")
	return cmd
}
