package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/owlgames/term2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

Each SSH connection gets its own game session. Scores are stored
per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.term2048/host_key

Examples:
  term2048 serve                           # Listen on :23234 with auto-generated key
  term2048 serve --ssh :2222               # Listen on port 2222
  term2048 serve --host-key ./my_host_key  # Use specific host key
  term2048 serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (0 = config value)")
}

func runServe(_ *cobra.Command, _ []string) {
	fileCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	address := fileCfg.Server.Address
	if flagSSHAddr != "" {
		address = flagSSHAddr
	}

	hostKey := fileCfg.Server.HostKeyPath
	if flagHostKey != "" {
		hostKey = flagHostKey
	}

	idleTimeout := fileCfg.Server.IdleTimeout()
	if flagIdleTimeout > 0 {
		idleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	cfg := tui.SSHServerConfig{
		Address:     address,
		HostKeyPath: hostKey,
		DBPath:      fileCfg.Storage.DBPath,
		TickRate:    fileCfg.UI.TickRate,
		IdleTimeout: idleTimeout,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting term2048 SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
