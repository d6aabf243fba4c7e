package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	pluginrpc "ptrack/internal/modules/report/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.Metadata, error) {
	return &pluginrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"command", "report", "fullscreen_tty"},
	}, nil
}

func (s *server) ListCommands(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.ListCommandsResponse, error) {
	return &pluginrpc.ListCommandsResponse{Commands: []pluginrpc.CommandDescriptor{
		{ID: "echo", Title: "Echo", Description: "Echoes provided input", Kind: "command", TimeoutMS: 2000},
		{ID: "summary", Title: "Summary", Description: "Returns a deterministic progress report payload", Kind: "report", TimeoutMS: 2500},
		{ID: "tty-echo", Title: "TTY Echo", Description: "Prepares a tty command", Kind: "fullscreen_tty", TimeoutMS: 1500},
	}}, nil
}

func (s *server) Execute(_ context.Context, in *pluginrpc.ExecuteRequest) (*pluginrpc.ExecuteResponse, error) {
	switch in.CommandID {
	case "echo":
		if strings.TrimSpace(in.InputJSON) == "" {
			return &pluginrpc.ExecuteResponse{Stdout: "echo", OutputJSON: `{"echo":""}`, ExitCode: 0}, nil
		}
		return &pluginrpc.ExecuteResponse{Stdout: in.InputJSON, OutputJSON: fmt.Sprintf(`{"echo":%q}`, in.InputJSON), ExitCode: 0}, nil
	case "summary":
		payload := map[string]any{}
		if strings.TrimSpace(in.InputJSON) != "" {
			_ = json.Unmarshal([]byte(in.InputJSON), &payload)
		}
		report := map[string]any{
			"data_dir":   in.Context.DataDir,
			"program_id": in.Context.ProgramID,
			"session_id": in.Context.SessionID,
			"result":     "report-ready",
			"input_keys": len(payload),
		}
		raw, _ := json.Marshal(report)
		return &pluginrpc.ExecuteResponse{Stdout: "report complete", OutputJSON: string(raw), ExitCode: 0}, nil
	default:
		return nil, fmt.Errorf("unknown command: %s", in.CommandID)
	}
}

func (s *server) PrepareTTY(_ context.Context, in *pluginrpc.PrepareTTYRequest) (*pluginrpc.PrepareTTYResponse, error) {
	if in.CommandID != "tty-echo" {
		return nil, fmt.Errorf("unknown tty command: %s", in.CommandID)
	}
	return &pluginrpc.PrepareTTYResponse{
		Argv: []string{"/bin/sh", "-lc", "echo ptrack-reference-tty"},
		Cwd:  in.Context.Cwd,
		Env: map[string]string{
			"PTRACK_PLUGIN": "reference",
		},
	}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: pluginrpc.HandshakeConfig,
		Plugins:         pluginrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
