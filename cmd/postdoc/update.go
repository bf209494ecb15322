package main

import (
	"fmt"
	"os"

	"github.com/blackcoderx/postdoc/pkg/ui"
	"github.com/blang/semver"
	"github.com/charmbracelet/huh"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

// repository is the GitHub repository releases are fetched from.
const repository = "blackcoderx/postdoc"

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update postdoc to the latest release",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runUpdate(cmd, version); err != nil {
			ui.Error(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func runUpdate(cmd *cobra.Command, current string) error {
	if current == "dev" {
		ui.Warn(cmd.OutOrStdout(), "Development build, self-update is disabled")
		return nil
	}

	v, err := semver.ParseTolerant(current)
	if err != nil {
		return fmt.Errorf("invalid current version %q: %w", current, err)
	}

	latest, found, err := selfupdate.DetectLatest(repository)
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found || latest.Version.LTE(v) {
		ui.Success(cmd.OutOrStdout(), "postdoc %s is up to date", v)
		return nil
	}

	confirmed := false
	err = huh.NewConfirm().
		Title(fmt.Sprintf("Update postdoc %s to %s?", v, latest.Version)).
		Value(&confirmed).
		Run()
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}
	ui.Success(cmd.OutOrStdout(), "Updated to %s", latest.Version)
	return nil
}
