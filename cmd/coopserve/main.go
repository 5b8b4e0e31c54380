// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"fmt"
	"os"

	"github.com/hackercorplabs/coopserve/pkg/server"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coopserve [port]",
		Short: "Serve a directory over HTTP with cross-origin isolation headers",
		Long: `coopserve serves the current directory (or --rootdir) over HTTP and adds
Cross-Origin-Opener-Policy: same-origin and Cross-Origin-Embedder-Policy: credentialless
to every response, which browsers require before enabling SharedArrayBuffer.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	factory := server.NewConfigFactory(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		serverConfig, err := factory.CreateServerConfig(args)
		if err != nil {
			return err
		}

		platformServer, err := server.NewServer(serverConfig)
		if err != nil {
			return err
		}

		syschan := make(chan os.Signal, 1)
		return platformServer.StartServer(syschan)
	}
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
