package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/procurehub/adminapi/internal/adapter"
	"github.com/procurehub/adminapi/models"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the admin panel and store the session locally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			password := loginPassword
			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			// Prime the anti-forgery cookie before the mutating login
			// request. A 401 here just means "not signed in yet".
			if _, err := c.api.CheckAuth(ctx); err != nil && !errors.Is(err, adapter.ErrUnauthorized) {
				return err
			}

			status, err := c.api.Login(ctx, models.Credentials{
				Username: loginUsername,
				Password: password,
			})
			if err != nil {
				return err
			}
			return printJSON(status)
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and drop the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			if err := c.api.Logout(ctx); err != nil {
				c.log.Warn().Err(err).Msg("server-side logout failed, dropping local session anyway")
			}
			return c.sess.Reset()
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in admin for the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			status, err := c.api.CheckAuth(ctx)
			if err != nil {
				return err
			}
			return printJSON(status)
		})
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Admin username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Admin password (prompted when omitted)")
	_ = loginCmd.MarkFlagRequired("username")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
