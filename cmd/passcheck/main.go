package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/validate"
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func main() {
	cmd := &cli.Command{
		Name:      "passcheck",
		Usage:     "Check a password against a rule set and report every problem at once",
		ArgsUsage: "[password]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "policy",
				Usage: "use the full default password policy instead of the basic rule set",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			password := c.Args().First()
			if password == "" {
				var err error
				password, err = readPassword(os.Stdin)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			v := basicValidator()
			if c.Bool("policy") {
				v = validate.DefaultPasswordPolicy().Validator("password")
			}

			err := v.Validate(password)
			if err == nil {
				fmt.Println(okStyle.Render("ok") + " password accepted")
				return nil
			}

			verrs := validate.ExtractValidationErrors(err)
			if verrs == nil {
				return err
			}
			for _, msg := range verrs.Messages() {
				fmt.Println(failStyle.Render("x") + " " + msg)
			}
			return cli.Exit("", 1)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// basicValidator carries the minimal rule set: length, digit, mixed case.
func basicValidator() *validate.Validator[string] {
	return validate.New[string]().
		AddRule(func(password string) bool {
			return len(password) > 8
		}, "password length must be greater than 8 chars.").
		AddRule(func(password string) bool {
			return strings.ContainsAny(password, "0123456789")
		}, "password must contain a digit.").
		AddRule(func(password string) bool {
			var hasLower, hasUpper bool
			for _, r := range password {
				switch {
				case unicode.IsLower(r):
					hasLower = true
				case unicode.IsUpper(r):
					hasUpper = true
				}
			}
			return hasLower && hasUpper
		}, "password must contain both of lower and upper case.")
}

func readPassword(in *os.File) (string, error) {
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return strings.TrimRight(scanner.Text(), "\r\n"), nil
}
