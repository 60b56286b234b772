package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"riotswch/internal/account"
	"riotswch/internal/logging"
)

// Switcher is the operation the server exposes.
type Switcher interface {
	Switch(ctx context.Context, creds account.Credentials) error
}

// Server answers host calls by running the switch in-process.
type Server struct {
	Switcher Switcher
	Logger   hclog.Logger
}

func NewServer(s Switcher, logger hclog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{Switcher: s, Logger: logger}
}

func (s *Server) ListCommands(_ context.Context, _ *Empty) (*ListCommandsResponse, error) {
	return &ListCommandsResponse{Commands: []CommandDescriptor{
		{
			ID:          CommandSwitchRiotAccount,
			Title:       "Switch Riot account",
			Description: "Restarts the Riot Client and signs in with the given username and password",
		},
	}}, nil
}

func (s *Server) Execute(ctx context.Context, in *ExecuteRequest) (*ExecuteResponse, error) {
	if in.CommandID != CommandSwitchRiotAccount {
		return nil, fmt.Errorf("unknown command: %s", in.CommandID)
	}

	var input SwitchInput
	if err := json.Unmarshal([]byte(in.InputJSON), &input); err != nil {
		return nil, fmt.Errorf("decode %s input: %w", in.CommandID, err)
	}

	if err := s.Switcher.Switch(ctx, account.NewCredentials(input.Username, input.Password)); err != nil {
		s.Logger.Warn("switch failed", "error", err)
		return &ExecuteResponse{OK: false, Error: err.Error()}, nil
	}
	return &ExecuteResponse{OK: true}, nil
}

// Serve blocks, serving impl to the go-plugin host that started us.
func Serve(impl SwitcherServer, logger hclog.Logger) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: HandshakeConfig,
		Plugins:         PluginMap(impl),
		GRPCServer:      plugin.DefaultGRPCServer,
		Logger:          logger,
	})
}
