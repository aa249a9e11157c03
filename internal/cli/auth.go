package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// NewRegisterCmd creates an account and signs it in.
func NewRegisterCmd(configPath, backend *string) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd.Context(), *configPath, *backend)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := a.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("email %s is already registered", email)
			}
			log.Printf("registered and signed in as %s", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// NewLoginCmd signs in with stored credentials.
func NewLoginCmd(configPath, backend *string) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd.Context(), *configPath, *backend)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := a.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("invalid email or password")
			}
			log.Printf("signed in as %s", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// NewLogoutCmd clears the persisted session.
func NewLogoutCmd(configPath, backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd.Context(), *configPath, *backend)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.Logout(cmd.Context()); err != nil {
				return err
			}
			log.Printf("signed out")
			return nil
		},
	}
}

// NewWhoamiCmd prints the active session, if any.
func NewWhoamiCmd(configPath, backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd.Context(), *configPath, *backend)
			if err != nil {
				return err
			}
			defer cleanup()

			user := a.CurrentUser()
			if user == nil {
				fmt.Println("not signed in")
				return nil
			}
			fmt.Printf("%s <%s> (since %s)\n", user.Name, user.Email, user.CreatedAt)
			return nil
		},
	}
}
