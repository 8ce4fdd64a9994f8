package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"consultsite/internal/config"
	"consultsite/internal/content"
	"consultsite/internal/database"
	"consultsite/internal/services"
)

const commandTimeout = 30 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "consultctl",
		Short:         "Operate the consulting site backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDiagnoseCmd(), newSubmitCmd())
	return root
}

// --- diagnose ---

func newDiagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Print the document store diagnostics snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			cfg, store, err := open(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			snapshot := services.NewHealthService(store, cfg.Database).Diagnose(ctx)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snapshot)
		},
	}
}

// --- submit ---

func newSubmitCmd() *cobra.Command {
	var p services.InquiryPayload
	var company, phone, service string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Store an inquiry through the regular write path",
		Long: `Store an inquiry through the regular write path.

Examples:
  consultctl submit --name "Jane Doe" --email jane@example.com --message "Need architecture help"
  consultctl submit --name Jane --email jane@example.com --message hi --service ai`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			if cmd.Flags().Changed("company") {
				p.Company = &company
			}
			if cmd.Flags().Changed("phone") {
				p.Phone = &phone
			}
			if cmd.Flags().Changed("service") {
				p.Service = &service
			}

			cfg, store, err := open(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			catalogue, err := content.Load(cfg.Content.Path)
			if err != nil {
				return err
			}

			id, err := services.NewInquiryService(store, catalogue).Submit(ctx, &p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored inquiry %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Name, "name", "", "full name")
	cmd.Flags().StringVar(&p.Email, "email", "", "email address")
	cmd.Flags().StringVar(&p.Message, "message", "", "inquiry message")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&service, "service", "", "service interest id")
	return cmd
}

// open loads configuration and connects to the store. A disconnected store is
// returned without error so diagnose can report it.
func open(ctx context.Context) (*config.Config, *database.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	store, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Printf("[DB] Warning: %v", err)
	}
	return cfg, store, nil
}
