package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/models"
)

// Command builds the root command. Every subcommand shares the connection
// flags declared here.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "custody",
		Short:         "Command-line client for the custody server",
		Version:       a.build.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect(cmd.Context())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.Adapter.HTTPAddress, "address", "a", a.cfg.Adapter.HTTPAddress, "custody server base URL")
	flags.DurationVar(&a.cfg.Adapter.RequestTimeout, "timeout", a.cfg.Adapter.RequestTimeout, "request timeout")
	flags.StringVar(&a.cfg.App.OwnerSecret, "secret", a.cfg.App.OwnerSecret, "owner secret for owner-only commands")
	flags.StringVar(&a.token, "token", "", "owner token from a previous login")
	flags.StringVarP(&a.cfg.App.HashKey, "hash-key", "k", a.cfg.App.HashKey, "HMAC key for signing mint requests")
	flags.StringVar(&a.cfg.Wallet.Path, "wallet", a.cfg.Wallet.Path, "wallet database file")
	flags.StringVarP(&a.cfg.Wallet.Passphrase, "passphrase", "p", a.cfg.Wallet.Passphrase, "wallet passphrase")

	root.AddCommand(
		a.versionCommand(),
		a.loginCommand(),
		a.balanceCommand(),
		a.counterCommand(),
		a.increaseCommand(),
		a.withdrawCommand(),
		a.withdrawConfidentialCommand(),
		a.mintCommand(),
		a.journalCommand(),
		a.walletCommand(),
		a.dashboardCommand(),
	)

	return root
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverVersion, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.build)
			fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\n", serverVersion)
			return nil
		},
	}
}

func (a *App) loginCommand() *cobra.Command {
	var copyToken bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange the owner secret for a token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.services.AuthService.LoginOwner(cmd.Context(), a.cfg.App.OwnerSecret)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)

			if copyToken {
				return clipboard.WriteAll(token.SignedString)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyToken, "copy", false, "copy the token to the clipboard")

	return cmd
}

func (a *App) balanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the supply and fee vault balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.asOwner(cmd.Context()); err != nil {
				return err
			}
			overview, err := a.services.CustodyService.Overview(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "supply: %d %s\nfees: %d\n",
				overview.Balance, overview.Resources.Supply.Symbol, overview.Fees)
			return nil
		},
	}
}

func (a *App) counterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "counter",
		Short: "Show the withdrawal counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.asOwner(cmd.Context()); err != nil {
				return err
			}
			overview, err := a.services.CustodyService.Overview(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), overview.Counter)
			return nil
		},
	}
}

func (a *App) increaseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "increase",
		Short: "Increment the counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.asOwner(cmd.Context()); err != nil {
				return err
			}
			counter, err := a.services.CustodyService.Increase(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), counter)
			return nil
		},
	}
}

func (a *App) withdrawCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw AMOUNT",
		Short: "Withdraw public tokens, paying the flat fee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: amount %q", ErrInvalidArgument, args[0])
			}
			bucket, err := a.services.CustodyService.Withdraw(cmd.Context(), models.Amount(amount))
			if err != nil {
				return err
			}
			return printJSON(cmd, bucket)
		},
	}
}

func (a *App) withdrawConfidentialCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw-confidential AMOUNT",
		Short: "Withdraw hidden value proven from the wallet's vault openings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: amount %q", ErrInvalidArgument, args[0])
			}
			if err = a.unlockWallet(cmd.Context()); err != nil {
				return err
			}
			bucket, err := a.services.CustodyService.WithdrawConfidential(cmd.Context(), amount)
			if err != nil {
				return err
			}
			return printJSON(cmd, bucket)
		},
	}
}

func (a *App) mintCommand() *cobra.Command {
	mint := &cobra.Command{
		Use:   "mint",
		Short: "Mint new value into the component vaults",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			return a.asOwner(cmd.Context())
		},
	}

	var itemData string
	nonFungible := &cobra.Command{
		Use:   "non-fungible ID",
		Short: "Mint one collection item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: item id %q", ErrInvalidArgument, args[0])
			}
			item := models.NonFungibleItem{ID: models.ItemID(id)}
			if itemData != "" {
				if !json.Valid([]byte(itemData)) {
					return fmt.Errorf("%w: item data must be JSON", ErrInvalidArgument)
				}
				item.Data = json.RawMessage(itemData)
			}
			return a.services.CustodyService.MintNonFungible(cmd.Context(), item)
		},
	}
	nonFungible.Flags().StringVar(&itemData, "data", "", "item metadata as a JSON document")

	mint.AddCommand(
		&cobra.Command{
			Use:   "fungible AMOUNT",
			Short: "Mint public tokens into the supply vault",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				amount, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("%w: amount %q", ErrInvalidArgument, args[0])
				}
				return a.services.CustodyService.MintFungible(cmd.Context(), models.Amount(amount))
			},
		},
		nonFungible,
		&cobra.Command{
			Use:   "confidential VALUE",
			Short: "Mint hidden value and keep its opening in the wallet",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("%w: value %q", ErrInvalidArgument, args[0])
				}
				if err = a.unlockWallet(cmd.Context()); err != nil {
					return err
				}
				commitment, err := a.services.CustodyService.MintConfidential(cmd.Context(), value)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), commitment)
				return nil
			},
		},
	)

	return mint
}

func (a *App) journalCommand() *cobra.Command {
	var (
		operation string
		since     time.Duration
		limit     uint64
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List committed operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.asOwner(cmd.Context()); err != nil {
				return err
			}

			filter := models.JournalFilter{Operation: models.Operation(operation), Limit: limit}
			if since > 0 {
				filter.Since = time.Now().Add(-since)
			}

			entries, err := a.services.CustodyService.Journal(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd, entries)
		},
	}
	cmd.Flags().StringVar(&operation, "operation", "", "only entries of this operation")
	cmd.Flags().DurationVar(&since, "since", 0, "only entries younger than this")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "maximum number of entries")

	return cmd
}

func (a *App) walletCommand() *cobra.Command {
	wallet := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the local wallet of confidential openings",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			return a.unlockWallet(cmd.Context())
		},
	}

	var (
		value    uint64
		blinding string
	)
	importSeed := &cobra.Command{
		Use:   "import-seed",
		Short: "Track the opening of the component's confidential seed supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var scalar crypto.Scalar
			if err := scalar.UnmarshalText([]byte(blinding)); err != nil {
				return fmt.Errorf("%w: blinding: %w", ErrInvalidArgument, err)
			}
			opening := crypto.Opening{Value: value, Blinding: scalar}
			if err := a.services.WalletService.TrackVault(cmd.Context(), opening); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opening.Commitment())
			return nil
		},
	}
	importSeed.Flags().Uint64Var(&value, "value", 0, "seed value")
	importSeed.Flags().StringVar(&blinding, "blinding", "", "hex-encoded seed blinding")
	_ = importSeed.MarkFlagRequired("blinding")

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the tracked openings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, struct {
				Vault    []crypto.Opening `json:"vault"`
				Received []crypto.Opening `json:"received"`
			}{
				Vault:    a.services.WalletService.VaultOpenings(),
				Received: a.services.WalletService.Received(),
			})
		},
	}

	wallet.AddCommand(importSeed, show)
	return wallet
}

func (a *App) dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive owner dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.asOwner(cmd.Context()); err != nil {
				return err
			}
			return a.dashboard(cmd)
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
