package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
)

func newStatusCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the local account state",
		Long: `Show the entitlement, any pending checkout and the last search.
With --email the backend is asked whether that account is premium.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd, email)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "also check this account's premium status on the backend")
	return cmd
}

func (a *app) runStatus(cmd *cobra.Command, email string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	ent, err := a.store.LoadEntitlement(ctx)
	if err != nil {
		return err
	}
	if ent.IsPremium {
		activated := "unknown"
		if ent.ActivatedAt != nil {
			activated = timeutil.FormatDateTime(*ent.ActivatedAt)
		}
		fmt.Fprintf(out, "Plan: Premium (since %s)\n", activated)
	} else {
		fmt.Fprintln(out, "Plan: Free")
	}

	pending, err := a.store.LoadPendingPayment(ctx)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Pending checkout: %s (started %s)\n", pending.SessionID, timeutil.FormatDateTime(pending.CreatedAt))
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	last, err := a.store.LoadLastSearch(ctx)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Last search: %s -> %s on %s\n", last.From, last.To, last.DepartureDate)
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	if email = strings.TrimSpace(email); email != "" {
		premium, err := a.client.CheckPremium(ctx, email)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			fmt.Fprintf(out, "Account %s: not found\n", email)
		case err != nil:
			return err
		case premium:
			fmt.Fprintf(out, "Account %s: premium\n", email)
		default:
			fmt.Fprintf(out, "Account %s: free\n", email)
		}
	}
	return nil
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear all local data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out. Local data cleared.")
			return nil
		},
	}
}

func newSweepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove expired local entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.store.SweepExpired(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired entries\n", n)
			return nil
		},
	}
}
