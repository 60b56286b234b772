package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"riotswch/internal/account"
	"riotswch/internal/config"
	"riotswch/internal/logging"
	"riotswch/internal/rpc"
	"riotswch/internal/switcher"
)

// envPassword is read when --password-stdin is not given, so the password
// never has to appear in argv.
const envPassword = "RIOTSWCH_PASSWORD"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	cfg    config.Config
	logger hclog.Logger
	sw     *switcher.Switcher
}

func loadApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)
	return &app{
		cfg:    cfg,
		logger: logger,
		sw:     switcher.New(cfg, logger),
	}, nil
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "riotswch",
		Short:         "Switch the account signed in to the Riot Client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or <user config dir>/riotswch/config.yaml)")

	root.AddCommand(newSwitchCmd(&configPath))
	root.AddCommand(newLocateCmd(&configPath))
	root.AddCommand(newCloseCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	return root
}

func newSwitchCmd(configPath *string) *cobra.Command {
	var username string
	var passwordStdin, remote bool

	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Restart the Riot Client and sign in as another account",
		Long: "Closes every Riot Client process, starts the launcher again and, on Windows,\n" +
			"types the username and password into the login form.\n\n" +
			"The password is read from stdin with --password-stdin, otherwise from $" + envPassword + ".",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd.InOrStdin(), passwordStdin)
			if err != nil {
				return err
			}

			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if remote {
				return switchRemote(ctx, a, *configPath, username, password)
			}
			if err := a.sw.Switch(ctx, account.NewCredentials(username, password)); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Riot Client restarted")
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Riot account username")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	cmd.Flags().BoolVar(&remote, "remote", false, "run the switch through a plugin process started with 'serve'")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

// switchRemote starts this binary in serve mode and calls it like any other
// plugin host would.
func switchRemote(ctx context.Context, a *app, configPath, username, password string) error {
	self, err := os.Executable()
	if err != nil {
		return err
	}
	args := []string{"serve"}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}

	client, closeFn, err := rpc.Dial(self, args, a.logger.Named("host"))
	if err != nil {
		return err
	}
	defer closeFn()

	return rpc.SwitchRiotAccount(ctx, client, username, password)
}

func newLocateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Print the Riot Client launcher path that switch would start",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			path, err := a.sw.Resolver.Resolve()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newCloseCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Close every running Riot Client and League client process",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			a.sw.Terminator.Terminate()
			return nil
		},
	}
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:    "serve",
		Short:  "Serve switch_riot_account to a go-plugin host",
		Hidden: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			rpc.Serve(rpc.NewServer(a.sw, a.logger), a.logger.Named("plugin"))
			return nil
		},
	}
}

func readPassword(stdin io.Reader, fromStdin bool) (string, error) {
	if !fromStdin {
		password, ok := os.LookupEnv(envPassword)
		if !ok {
			return "", errors.New("no password: use --password-stdin or set " + envPassword)
		}
		return password, nil
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
