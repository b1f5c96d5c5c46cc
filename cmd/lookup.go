package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ouvidoria-digital/esic-backend/internal/config"
	"github.com/ouvidoria-digital/esic-backend/internal/repo"
	"github.com/ouvidoria-digital/esic-backend/internal/utils"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <protocol>",
	Short: "Print a request from the store by protocol",
	Long:  `Fetch a single request directly from the configured store and print it in a human-readable form. Useful for support work without going through the HTTP API.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad()

		db, err := repo.Open(cfg.DBDriver, cfg.DBDSN, false)
		if err != nil {
			return err
		}
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		r, err := repo.GetRequestByProtocol(ctx, db, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Protocol:    %s\n", r.Protocol)
		fmt.Fprintf(out, "Status:      %s\n", r.Status)
		fmt.Fprintf(out, "Agency:      %s\n", utils.AgencyLabel(string(r.TargetAgency)))
		fmt.Fprintf(out, "Applicant:   %s <%s>\n", r.ApplicantName, r.Email)
		fmt.Fprintf(out, "Submitted:   %s\n", r.SubmittedAt.Format(time.RFC3339))
		if r.Subject != "" {
			fmt.Fprintf(out, "Subject:     %s\n", r.Subject)
		}
		fmt.Fprintf(out, "Description: %s\n", r.Description)
		if r.AdminResponse != "" || len(r.AdminAttachments) > 0 {
			fmt.Fprintln(out, "---")
			if r.RespondedAt != nil {
				fmt.Fprintf(out, "Responded:   %s\n", r.RespondedAt.Format(time.RFC3339))
			}
			if r.AdminResponse != "" {
				fmt.Fprintf(out, "Response:    %s\n", r.AdminResponse)
			}
			for _, a := range r.AdminAttachments {
				fmt.Fprintf(out, "Attachment:  %s (%s, %s)\n", a.Name, a.MimeType, utils.SizeLabel(a.SizeBytes))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
