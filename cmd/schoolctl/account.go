package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client"
)

// passwordEnv lets scripts avoid putting the password on the command line.
const passwordEnv = "SCHOOL_PASSWORD"

func (a *app) newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a token and store it in the session store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			if password == "" {
				return fmt.Errorf("--password or %s is required", passwordEnv)
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				if _, err := c.Login(ctx, username, password); err != nil {
					return err
				}
				return printJSON(cmd, map[string]any{"authenticated": true, "username": username})
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (or set "+passwordEnv+")")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func (a *app) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				c.Logout(ctx)
				return printJSON(cmd, map[string]any{"authenticated": false})
			})
		},
	}
}

type statusReport struct {
	Authenticated bool       `json:"authenticated"`
	BaseURL       string     `json:"base_url"`
	SessionStore  string     `json:"session_store"`
	Subject       string     `json:"subject,omitempty"`
	UserID        string     `json:"user_id,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Expired       bool       `json:"expired,omitempty"`
	CanRefresh    bool       `json:"can_refresh"`
}

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session without contacting the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				sess := c.Session()
				rep := statusReport{
					Authenticated: sess.Authenticated(),
					BaseURL:       c.BaseURL(),
					SessionStore:  a.cfg.SessionStore,
					CanRefresh:    sess.RefreshToken() != "",
				}
				if rep.Authenticated {
					// Opaque tokens are fine; claims are best effort.
					if claims, err := sess.Claims(); err == nil {
						rep.Subject = claims.Subject
						rep.UserID = claims.UserID
						if !claims.ExpiresAt.IsZero() {
							exp := claims.ExpiresAt
							rep.ExpiresAt = &exp
							rep.Expired = claims.Expired(time.Now())
						}
					}
				}
				return printJSON(cmd, rep)
			})
		},
	}
}

func (a *app) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				u, err := c.GetCurrentUser(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, u)
			})
		},
	}
}

func (a *app) newRegisterCmd() *cobra.Command {
	var req client.RegisterRequest
	var dob string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in as it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				req.Password = os.Getenv(passwordEnv)
			}
			if req.PasswordConfirm == "" {
				req.PasswordConfirm = req.Password
			}
			d, err := parseDate("date-of-birth", dob)
			if err != nil {
				return err
			}
			req.DateOfBirth = d
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				rr, err := c.Register(ctx, req)
				if err != nil {
					return err
				}
				return printJSON(cmd, rr.User)
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&req.Username, "username", "u", "", "Username (required)")
	f.StringVar(&req.Email, "email", "", "Email address (required)")
	f.StringVarP(&req.Password, "password", "p", "", "Password (or set "+passwordEnv+")")
	f.StringVar(&req.PasswordConfirm, "password-confirm", "", "Password confirmation (defaults to --password)")
	f.StringVar(&req.FirstName, "first-name", "", "First name")
	f.StringVar(&req.LastName, "last-name", "", "Last name")
	f.StringVar(&req.UserType, "user-type", "", "Account type: student, employer, instructor")
	f.StringVar(&req.PhoneNumber, "phone", "", "Phone number")
	f.StringVar(&req.Address, "address", "", "Postal address")
	f.StringVar(&dob, "date-of-birth", "", "Date of birth (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *app) newUpdateProfileCmd() *cobra.Command {
	var upd client.ProfileUpdate
	var dob string

	cmd := &cobra.Command{
		Use:   "update-profile",
		Short: "Update fields of the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate("date-of-birth", dob)
			if err != nil {
				return err
			}
			upd.DateOfBirth = d
			if upd == (client.ProfileUpdate{}) {
				return errors.New("nothing to update")
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				p, err := c.UpdateProfile(ctx, upd)
				if err != nil {
					return err
				}
				return printJSON(cmd, p)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&upd.FirstName, "first-name", "", "First name")
	f.StringVar(&upd.LastName, "last-name", "", "Last name")
	f.StringVar(&upd.Email, "email", "", "Email address")
	f.StringVar(&upd.PhoneNumber, "phone", "", "Phone number")
	f.StringVar(&upd.Address, "address", "", "Postal address")
	f.StringVar(&dob, "date-of-birth", "", "Date of birth (YYYY-MM-DD)")
	return cmd
}

func (a *app) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Trade the stored refresh token for a new access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) error {
				if _, err := c.RefreshSession(ctx); err != nil {
					return err
				}
				return printJSON(cmd, map[string]any{"authenticated": true, "refreshed": true})
			})
		},
	}
}

func parseDate(flag, v string) (*strfmt.Date, error) {
	if v == "" {
		return nil, nil
	}
	var d strfmt.Date
	if err := d.UnmarshalText([]byte(v)); err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return &d, nil
}
