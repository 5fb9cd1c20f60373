package main

import (
	"log"

	"github.com/areahq/areactl/api"
	"github.com/areahq/areactl/catalog"
	"github.com/areahq/areactl/config"
	"github.com/areahq/areactl/logger"
	"github.com/areahq/areactl/registry"
	"github.com/areahq/areactl/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app bundles the configured services behind the CLI commands. It is built
// once per invocation in the root PersistentPreRunE.
type app struct {
	cfg       config.Config
	client    *api.Client
	auth      *api.AuthService
	oauth     *api.OAuthService
	workflows *api.WorkflowService
	feed      *api.FeedService
	admin     *api.AdminService
	options   *api.OptionsService
	catalog   *catalog.Cache
	registry  *registry.Registry
}

func setupFlags(cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config-file", "", "Path to config file.")
	cmd.PersistentFlags().String("server", "http://127.0.0.1:8080", "backend base URL")
	cmd.PersistentFlags().String("token-file", config.DefaultTokenFile(), "where the session token is stored")
	cmd.PersistentFlags().Bool("debug", false, "verbose logging")
	return viper.BindPFlags(cmd.PersistentFlags())
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return err
	}
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return err
			}
		}
	}
	a.cfg.ServerUrl = viper.GetString("server")
	a.cfg.TokenFile = viper.GetString("token-file")
	a.cfg.Debug = viper.GetBool("debug")

	if err := logger.Init(a.cfg.Debug); err != nil {
		return err
	}
	if err := api.RegisterViews(); err != nil {
		return err
	}

	sess := session.New(session.NewFileStore(a.cfg.TokenFile))
	a.client = api.NewClient(a.cfg.ServerUrl, sess)
	a.auth = api.NewAuthService(a.client)
	a.oauth = api.NewOAuthService(a.client)
	a.workflows = api.NewWorkflowService(a.client)
	a.feed = api.NewFeedService(a.client)
	a.admin = api.NewAdminService(a.client)
	a.options = api.NewOptionsService(a.client)
	a.catalog = catalog.NewCache(api.NewCatalogService(a.client))
	a.registry = registry.New(a.oauth)
	return nil
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:               "areactl",
		Short:             "Compose and manage automation workflows from the terminal",
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
	}

	if err := setupFlags(root); err != nil {
		log.Fatal(err)
	}

	root.AddCommand(
		a.loginCmd(),
		a.registerCmd(),
		a.logoutCmd(),
		a.meCmd(),
		a.changePasswordCmd(),
		a.catalogCmd(),
		a.optionsCmd(),
		a.servicesCmd(),
		a.connectCmd(),
		a.disconnectCmd(),
		a.workflowCmd(),
		a.feedCmd(),
		a.adminCmd(),
		a.mockServerCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
