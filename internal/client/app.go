// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/MKhiriev/go-gym-keeper/internal/adapter"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App is the gymctl runtime.
type App struct {
	server adapter.ServerAdapter
	tokens TokenStore
	out    io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, tokens TokenStore, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		server: server,
		tokens: tokens,
		out:    out,
		logger: logger,
	}

	a.commands = map[string]command{
		"bmi":      {"bmi -weight KG -height CM", a.bmi},
		"body-fat": {"body-fat -sex male|female -height CM -waist CM -neck CM [-hip CM]", a.bodyFat},
		"calories": {"calories -sex male|female -weight KG -height CM -age YEARS -activity LEVEL", a.calories},
		"metrics":  {"metrics [-activity LEVEL]", a.metrics},
		"register": {"register -name NAME -email EMAIL -password PASSWORD [-phone ...] [-height CM] [-weight KG] [-age YEARS] [-gender ...]", a.register},
		"login":    {"login -email EMAIL -password PASSWORD", a.login},
		"logout":   {"logout", a.logout},
		"session":  {"session", a.session},
		"password": {"password -current PASSWORD -new PASSWORD", a.changePassword},
		"accounts": {"accounts -admin-key KEY", a.listAccounts},
		"version":  {"version", a.version},
	}

	return a
}

var _ Client = (*App)(nil)

// Run restores the stored token and executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	a.server.SetToken(token)

	err = cmd.run(ctx, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: gymctl <command> [flags]")
	fmt.Fprintln(a.out)
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// persistToken saves whatever token the adapter holds after a sign-in.
func (a *App) persistToken() error {
	if err := a.tokens.Save(a.server.Token()); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

func required(fs *flag.FlagSet, names ...string) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	for _, name := range names {
		if !set[name] {
			return fmt.Errorf("%s: %w: -%s", fs.Name(), ErrMissingFlag, name)
		}
	}
	return nil
}
