package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/switchsmith/switchsmith/pkg/generate"
)

var secretCmd = &cobra.Command{
	Use:   "secret [plaintext]",
	Short: "Hash a secret into IOS type 8 form",
	Long: `Secret hashes a plaintext password into the IOS type 8 form
(PBKDF2-SHA256), suitable for a plan's enable_secret field.

With no argument the secret is read from the terminal without echo.
The salt is random, so repeated runs produce different strings for the
same plaintext.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var plaintext string
		if len(args) == 1 {
			plaintext = args[0]
		} else {
			fmt.Fprint(os.Stderr, "Secret: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("reading secret: %w", err)
			}
			plaintext = string(raw)
		}
		if plaintext == "" {
			return fmt.Errorf("empty secret")
		}

		hash, err := generate.Type8Secret(plaintext)
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}
