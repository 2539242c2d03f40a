// ABOUTME: Sync subcommand for Charm cloud backups of daily logs
// ABOUTME: Provides status, link, push and pull commands (SSH key auth)
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/proto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/worklog/internal/charm"
)

func (a *app) syncCmd() *cobra.Command {
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Back up daily logs to the cloud",
		Long: `Back up your daily logs securely to the cloud using Charm.

Authentication is automatic via SSH keys - no login required!

Commands:
  status  - Show sync status and Charm user ID
  link    - Link this device to another Charm account
  push    - Upload local daily logs that changed
  pull    - Restore daily logs missing on this device

Examples:
  worklog sync status
  worklog sync push
  worklog sync pull --force`,
	}

	syncCmd.AddCommand(a.syncStatusCmd())
	syncCmd.AddCommand(a.syncLinkCmd())
	syncCmd.AddCommand(a.syncPushCmd())
	syncCmd.AddCommand(a.syncPullCmd())
	return syncCmd
}

func (a *app) backup() (*charm.Client, *charm.Backup, error) {
	c, err := charm.NewClient(a.cfg.Sync)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Charm: %w", err)
	}
	return c, charm.NewBackup(c, a.cfg.Directory, a.logger), nil
}

// autoSync pushes after a change when auto_sync is enabled. Failures only warn.
func (a *app) autoSync() {
	if !a.cfg.Sync.AutoSync {
		return
	}
	_, b, err := a.backup()
	if err == nil {
		_, err = b.Push()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: auto sync failed: %v\n", err)
	}
}

// forgetDay drops the backup of a day whose log was deleted. Like autoSync it
// only talks to Charm when auto_sync is enabled.
func (a *app) forgetDay(day time.Time) {
	if !a.cfg.Sync.AutoSync {
		return
	}
	_, b, err := a.backup()
	if err == nil {
		err = b.Forget(day)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to remove backup of deleted log: %v\n", err)
	}
}

func (a *app) syncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := charm.NewClient(a.cfg.Sync)
			if err != nil {
				return err
			}

			// Get user ID
			id, err := c.ID()
			if err != nil {
				fmt.Printf("Charm:     not connected (%v)\n", err)
				fmt.Println("\nRun 'worklog sync link' to connect to a Charm account.")
				return nil
			}

			fmt.Printf("Charm ID:  %s\n", id)
			fmt.Printf("Server:    %s\n", charm.GetCharmHost())

			snaps, err := charm.NewBackup(c, a.cfg.Directory, a.logger).Snapshots()
			if err != nil {
				color.Yellow("Backups:   unavailable (%v)", err)
			} else if len(snaps) == 0 {
				fmt.Println("Backups:   none")
			} else {
				fmt.Printf("Backups:   %d days, latest %s (pushed %s from %s)\n",
					len(snaps), snaps[0].Day, snaps[0].PushedAt.Format("2006-01-02 15:04"), snaps[0].Host)
			}

			if a.cfg.Sync.AutoSync {
				color.Green("Status:    Auto sync enabled")
			} else {
				color.Yellow("Status:    Manual sync")
			}
			return nil
		},
	}
}

func (a *app) syncLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link",
		Short: "Link this device to a Charm account",
		Long: `Link this device to an existing Charm account.

This will generate a link code that you can enter on another device
that's already linked to your Charm account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := charm.NewClient(a.cfg.Sync); err != nil {
				return err
			}
			cc, err := client.NewClientWithDefaults()
			if err != nil {
				return fmt.Errorf("failed to create Charm client: %w", err)
			}

			// Check if already linked
			if _, err := cc.ID(); err == nil {
				color.Green("Already linked to a Charm account!")
				fmt.Println("Run 'worklog sync status' to see your account info.")
				return nil
			}

			fmt.Println("Generating link request...")
			fmt.Println("Enter this code on a device that's already linked to your Charm account.")

			lh := &linkHandler{}
			if err := cc.LinkGen(lh); err != nil {
				return fmt.Errorf("link failed: %w", err)
			}

			return nil
		},
	}
}

func (a *app) syncPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload changed daily logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, b, err := a.backup()
			if err != nil {
				return err
			}
			res, err := b.Push()
			if err != nil {
				return fmt.Errorf("push failed: %w", err)
			}
			if !a.cfg.Sync.AutoSync {
				if err := c.Sync(); err != nil {
					return fmt.Errorf("sync failed: %w", err)
				}
			}
			color.Green("Pushed %d day(s), %d unchanged (snapshot %s)", res.Pushed, res.Unchanged, res.SnapshotID)
			return nil
		},
	}
}

func (a *app) syncPullCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Restore daily logs from the cloud",
		Long: `Restore daily logs from Charm Cloud.

Days that already have a local log are skipped unless --force is given,
in which case the local log is replaced by the backup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, b, err := a.backup()
			if err != nil {
				return err
			}
			if err := c.Sync(); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}
			res, err := b.Pull(force)
			if err != nil {
				return fmt.Errorf("pull failed: %w", err)
			}
			for _, day := range res.Restored {
				color.Green("  ✓ %s restored", day)
			}
			for _, day := range res.Skipped {
				color.Yellow("  ! %s kept (local log exists)", day)
			}
			fmt.Printf("Restored %d day(s), skipped %d.\n", len(res.Restored), len(res.Skipped))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite local logs with the backup")
	return cmd
}

// linkHandler implements proto.LinkHandler for the link flow.
type linkHandler struct{}

func (lh *linkHandler) TokenCreated(l *proto.Link) {
	fmt.Printf("\nLink code: %s\n\n", l.Token)
	fmt.Println("Waiting for approval...")
}

func (lh *linkHandler) TokenSent(l *proto.Link) {
	// Token has been validated
}

func (lh *linkHandler) ValidToken(l *proto.Link) {
	// Linking complete
}

func (lh *linkHandler) InvalidToken(l *proto.Link) {
	fmt.Println("Invalid or expired token. Please try again.")
}

func (lh *linkHandler) Request(l *proto.Link) bool {
	fmt.Printf("\nLink request from: %s\n", l.RequestAddr)
	fmt.Print("Approve? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes"
}

func (lh *linkHandler) RequestDenied(l *proto.Link) {
	fmt.Println("Link request denied.")
}

func (lh *linkHandler) SameUser(l *proto.Link) {
	color.Green("\nSuccessfully linked!")
}

func (lh *linkHandler) Success(l *proto.Link) {
	color.Green("\nSuccessfully linked!")
}

func (lh *linkHandler) Timeout(l *proto.Link) {
	fmt.Println("\nLink request timed out. Please try again.")
}

func (lh *linkHandler) Error(l *proto.Link) {
	fmt.Println("\nError during linking")
}
