package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/service"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/spf13/cobra"
)

func (a *App) newLoginCommand() *cobra.Command {
	var credentials models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session locally",
		Long:  "Log in with the configured credentials. The password is read from standard input when --password is not given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if credentials.Password == "" {
				password, err := readLine(cmd)
				if err != nil {
					return err
				}
				credentials.Password = password
			}

			session, err := a.services.SessionService.Login(cmd.Context(), credentials)
			if err != nil {
				return err
			}

			return a.print(cmd, sessionView(session), func(w *tableWriter) {
				w.row("Logged in as", session.Username)
				w.row("Expires at", formatTime(session.ExpiresAt))
			})
		},
	}

	cmd.Flags().StringVarP(&credentials.Username, "username", "u", "", "user name")
	cmd.Flags().StringVarP(&credentials.Password, "password", "p", "", "password (read from stdin when empty)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func (a *App) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.services.SessionService.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *App) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := a.requireSession(cmd.Context())
			if err != nil {
				return err
			}

			return a.print(cmd, sessionView(session), func(w *tableWriter) {
				w.row("User", session.Username)
				w.row("Expires at", formatTime(session.ExpiresAt))
				w.row("Time left", session.TimeLeft(time.Now()).Truncate(time.Second).String())
			})
		},
	}
}

func (a *App) newRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Renew the session token now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := a.services.SessionService.Refresh(cmd.Context())
			if err != nil {
				return err
			}

			return a.print(cmd, sessionView(session), func(w *tableWriter) {
				w.row("Token renewed, expires at", formatTime(session.ExpiresAt))
			})
		},
	}
}

func (a *App) newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the session alive until interrupted",
		Long: `watch checks the stored session periodically and renews the token when
it is about to expire. It stops on interrupt or once the session is gone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			a.stopWatch = cancel

			fmt.Fprintf(cmd.OutOrStdout(), "Watching session (check every %s, renew under %s)\n",
				a.cfg.Workers.CheckInterval, a.cfg.Workers.RefreshThreshold)

			a.services.SessionKeeper.Start(ctx, a.cfg.Workers.CheckInterval, a.cfg.Workers.RefreshThreshold)
			<-ctx.Done()
			a.services.SessionKeeper.Stop()

			return nil
		},
	}
}

// onSessionCheck reports keeper decisions while watching. A session that
// is gone ends the watch.
func (a *App) onSessionCheck(action models.SessionAction, err error) {
	out := a.root.OutOrStdout()

	switch {
	case errors.Is(err, service.ErrNotLoggedIn), errors.Is(err, service.ErrSessionExpired):
		fmt.Fprintln(out, "Session ended:", describeError(err))
		a.endWatch()
	case err != nil:
		fmt.Fprintln(out, "Session check failed:", describeError(err))
	case action == models.SessionRefresh:
		fmt.Fprintln(out, "Token renewed")
	case action == models.SessionDiscard:
		fmt.Fprintln(out, "Session expired and was discarded")
		a.endWatch()
	}
}

func (a *App) endWatch() {
	if a.stopWatch != nil {
		a.stopWatch()
	}
}

type sessionJSON struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// sessionView hides the token from printed output.
func sessionView(session models.Session) sessionJSON {
	return sessionJSON{Username: session.Username, ExpiresAt: session.ExpiresAt}
}

func readLine(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}

	return line, nil
}
