package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/pkg/service/user"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/gorm"
)

func newUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage ledger users",
	}

	var name, mail string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user, prompting for the password",
		RunE: func(cmd *cobra.Command, args []string) error {
			passwd, err := readPassword(cmd)
			if err != nil {
				return err
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			svc := user.New(infra.NewUoW(db), slog.Default())
			u, err := svc.Create(cmd.Context(), name, mail, passwd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s user #%d <%s>\n", color.GreenString("created"), u.ID, u.Mail)
			return nil
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Display name")
	createCmd.Flags().StringVar(&mail, "mail", "", "Login mail")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("mail")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			users, err := user.New(infra.NewUoW(db), slog.Default()).List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			_, _ = bold.Fprintf(out, "%-6s %-24s %s\n", "ID", "NAME", "MAIL")
			for _, u := range users {
				fmt.Fprintf(out, "%-6d %-24s %s\n", u.ID, u.Name, u.Mail)
			}
			return nil
		},
	}

	userCmd.AddCommand(createCmd, listCmd)
	return userCmd
}

// readPassword prompts on a terminal and otherwise reads one line from stdin.
func readPassword(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}
	raw, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 4096))
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(strings.SplitN(string(raw), "\n", 2)[0], "\r"), nil
}

func printVersion(cmd *cobra.Command, db *gorm.DB) error {
	version, dirty, err := infra.MigrationVersion(db)
	if err != nil {
		return err
	}
	state := color.GreenString("clean")
	if dirty {
		state = color.YellowString("dirty")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (%s)\n", version, state)
	return nil
}
