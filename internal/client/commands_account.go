// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gym-keeper/internal/adapter"
	"github.com/MKhiriev/go-gym-keeper/models"
)

func (a *App) register(ctx context.Context, args []string) error {
	var reg models.Registration

	fs := a.flagSet("register")
	fs.StringVar(&reg.FullName, "name", "", "Full name")
	fs.StringVar(&reg.Email, "email", "", "Email")
	fs.StringVar(&reg.Phone, "phone", "", "Phone number")
	fs.StringVar(&reg.Password, "password", "", "Password")
	fs.StringVar(&reg.ConfirmPassword, "confirm", "", "Password confirmation")
	fs.Float64Var(&reg.HeightCm, "height", 0, "Height in cm")
	fs.Float64Var(&reg.WeightKg, "weight", 0, "Weight in kg")
	fs.IntVar(&reg.AgeYears, "age", 0, "Age in years")
	fs.StringVar(&reg.Gender, "gender", "", "Gender")
	fs.StringVar(&reg.DesiredPackage, "package", "", "Desired membership package")
	fs.StringVar(&reg.FitnessGoals, "goals", "", "Fitness goals")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "name", "email", "password"); err != nil {
		return err
	}

	session, err := a.server.Register(ctx, reg)
	if err != nil {
		return err
	}
	if err = a.persistToken(); err != nil {
		return err
	}

	printSession(a.out, session)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var credentials models.Credentials

	fs := a.flagSet("login")
	fs.StringVar(&credentials.Email, "email", "", "Email")
	fs.StringVar(&credentials.Password, "password", "", "Password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "email", "password"); err != nil {
		return err
	}

	session, err := a.server.Login(ctx, credentials)
	if err != nil {
		return err
	}
	if err = a.persistToken(); err != nil {
		return err
	}

	printSession(a.out, session)
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := a.flagSet("logout").Parse(args); err != nil {
		return err
	}

	if err := a.server.Logout(ctx); err != nil {
		return err
	}
	if err := a.tokens.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// session prints the signed-in account. A token the server no longer
// accepts is removed from the store.
func (a *App) session(ctx context.Context, args []string) error {
	if err := a.flagSet("session").Parse(args); err != nil {
		return err
	}

	session, err := a.server.CurrentSession(ctx)
	if errors.Is(err, adapter.ErrNoSession) {
		if a.server.Token() != "" {
			a.logger.Debug().Msg("stored token is no longer valid")
			if err = a.tokens.Clear(); err != nil {
				return err
			}
		}
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	if err != nil {
		return err
	}

	printSession(a.out, session)
	return nil
}

func (a *App) changePassword(ctx context.Context, args []string) error {
	var change models.PasswordChange

	fs := a.flagSet("password")
	fs.StringVar(&change.CurrentPassword, "current", "", "Current password")
	fs.StringVar(&change.NewPassword, "new", "", "New password")
	fs.StringVar(&change.ConfirmPassword, "confirm", "", "New password confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "current", "new"); err != nil {
		return err
	}

	if err := a.server.ChangePassword(ctx, change); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password changed")
	return nil
}

func (a *App) listAccounts(ctx context.Context, args []string) error {
	fs := a.flagSet("accounts")
	adminKey := fs.String("admin-key", "", "Admin key of the server")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required(fs, "admin-key"); err != nil {
		return err
	}

	accounts, err := a.server.ListAccounts(ctx, *adminKey)
	if err != nil {
		return err
	}

	return printAccounts(a.out, accounts)
}

func (a *App) version(ctx context.Context, args []string) error {
	if err := a.flagSet("version").Parse(args); err != nil {
		return err
	}

	v, err := a.server.ServerVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "server version: %s\n", v)
	return nil
}
