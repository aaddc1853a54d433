package main

import (
	"context"
	"fmt"
	"os"

	hwecli "github.com/homework-evaluation/backend/cli"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/config"
	"github.com/homework-evaluation/backend/internal/directory"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

func newMigrateCommand(clictx *hwecli.Context) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Migrate the database to the latest version",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Println("Migrating the database to the latest version…")
			if err := clictx.Migrate(ctx); err != nil {
				return err
			}

			fmt.Println("✅ Migration complete!")
			return nil
		},
	}
}

func newSetupCommand(clictx *hwecli.Context, admin config.AdminConfig) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Migrate the database and create the admin account from ADMIN_* variables",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Println("Setting up the homework evaluation instance…")

			result, err := clictx.Setup(ctx, admin)
			if err != nil {
				return err
			}

			fmt.Println("✅ Setup complete!")
			fmt.Println()
			fmt.Printf("Admin account: %s (ID: %d)\n", result.Admin.Username, result.Admin.ID)
			fmt.Println()
			fmt.Println("You can then use the following commands to complete the setup:")
			fmt.Println("  - \"create-subject\" and \"create-account\" to add subjects and users one by one.")
			fmt.Println("  - \"seed\" to import subjects and users from a JSON file.")
			fmt.Println()
			fmt.Println("For further migrations, you can use the following commands:")
			fmt.Println("  - \"migrate\" to migrate the database to the latest version.")

			return nil
		},
	}
}

func newCreateSubjectCommand(clictx *hwecli.Context) *cli.Command {
	return &cli.Command{
		Name:  "create-subject",
		Usage: "Create a subject",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Usage:    "The unique name of the subject.",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "code",
				Usage:    "The unique code of the subject.",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			subject, err := clictx.CreateSubject(ctx, c.String("name"), c.String("code"))
			if err != nil {
				return err
			}

			fmt.Printf("✅ Subject %q (%s) has been created with ID %d.\n", subject.Name, subject.Code, subject.ID)
			return nil
		},
	}
}

func newCreateAccountCommand(clictx *hwecli.Context) *cli.Command {
	return &cli.Command{
		Name:  "create-account",
		Usage: "Create a teacher or student account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "role",
				Usage:    "The role of the account: teacher or student.",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "username",
				Usage:    "The unique username to sign in with.",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Usage:    "The password to sign in with.",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "display-name",
				Usage:    "The name shown to other users.",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "subject",
				Usage: "The code of a subject to enroll in. Repeat for several subjects.",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			created, err := clictx.CreateAccount(ctx, directory.CreateAccountRequest{
				Role:        account.Role(c.String("role")),
				Username:    c.String("username"),
				Secret:      c.String("password"),
				DisplayName: c.String("display-name"),
				Subjects: lo.Map(c.StringSlice("subject"), func(code string, _ int) enrollment.SubjectRef {
					return enrollment.ByCode(code)
				}),
			})
			if err != nil {
				return err
			}

			fmt.Printf("✅ %s %q has been created with ID %d.\n", created.Role, created.Username, created.ID)
			return nil
		},
	}
}

func newDeleteAccountCommand(clictx *hwecli.Context) *cli.Command {
	return &cli.Command{
		Name:  "delete-account",
		Usage: "Delete an account and its submissions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Usage:    "The username of the account to delete.",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			username := c.String("username")
			if err := clictx.DeleteAccount(ctx, username); err != nil {
				return err
			}

			fmt.Println("✅ Account", username, "has been deleted.")
			return nil
		},
	}
}

func newSeedCommand(clictx *hwecli.Context) *cli.Command {
	return &cli.Command{
		Name:        "seed",
		Usage:       "Seed subjects and accounts from a JSON file",
		Description: "Seed subjects and accounts from a JSON file shaped as `{subjects: [{name, code}], accounts: [{role, username, password, display_name, subjects: [code]}]}`. Existing subjects and usernames are skipped.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "The JSON file to seed the database from.",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "Print a summary instead of the progress view.",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			content, err := os.ReadFile(c.String("file"))
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			file, err := hwecli.ParseSeedFile(content)
			if err != nil {
				return err
			}

			fmt.Printf("Seeding the database from %q…\n", c.String("file"))

			var summary hwecli.SeedSummary
			if c.Bool("plain") {
				summary = clictx.Seed(ctx, file)
			} else {
				summary, err = clictx.SeedInteractive(ctx, file)
				if err != nil {
					return err
				}
			}

			for _, err := range summary.Errors {
				fmt.Println("⚠️", err)
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d records failed", summary.Failed, summary.Created+summary.Skipped+summary.Failed)
			}

			fmt.Printf("✅ Seeded! %d created, %d skipped.\n", summary.Created, summary.Skipped)
			return nil
		},
	}
}

func newRootCommand(subcommands ...*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     "admin-cli",
		Usage:    "A CLI tool for managing the homework evaluation instance.",
		Commands: subcommands,
	}
}
