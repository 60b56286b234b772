package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"riotswch/internal/logging"
)

const defaultStartTimeout = 5 * time.Second

// Dial starts binary with args as a plugin and returns a client for it.
// The returned func kills the plugin process.
func Dial(binary string, args []string, logger hclog.Logger) (SwitcherClient, func(), error) {
	if logger == nil {
		logger = logging.Discard()
	}
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          PluginMap(nil),
		Cmd:              exec.Command(binary, args...),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           logger,
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start plugin client: %w", err)
	}
	raw, err := rpcClient.Dispense(PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense plugin: %w", err)
	}
	typed, ok := raw.(SwitcherClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("plugin rpc client type mismatch")
	}
	return typed, closeFn, nil
}

// SwitchRiotAccount invokes the switch command and turns a failed switch
// into an error carrying the server's message.
func SwitchRiotAccount(ctx context.Context, c SwitcherClient, username, password string) error {
	input, err := json.Marshal(SwitchInput{Username: username, Password: password})
	if err != nil {
		return err
	}
	resp, err := c.Execute(ctx, &ExecuteRequest{
		CommandID: CommandSwitchRiotAccount,
		InputJSON: string(input),
	})
	if err != nil {
		return fmt.Errorf("execute %s: %w", CommandSwitchRiotAccount, err)
	}
	if !resp.OK {
		return errors.New(resp.Error)
	}
	return nil
}
