package main

import (
	"context"

	"citron-srv/internal/report"

	"github.com/spf13/cobra"
)

type jobFunc func(uc report.UseCase, ctx context.Context, ip report.JobInput) (report.JobOutput, error)

func newJobCmd(use, short string, fn jobFunc) *cobra.Command {
	var date, wikiID string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			o, err := fn(s.domains.Report, s.ctx, report.JobInput{WikiID: wikiID, Date: date})
			if err != nil {
				return err
			}
			return printJSON(o)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "report day as YYYY-MM-DD (default depends on the job)")
	cmd.Flags().StringVar(&wikiID, "wiki", "", "wiki id (default: every configured wiki)")
	return cmd
}

func init() {
	rootCmd.AddCommand(
		newJobCmd("reconcile", "Rewrite the report page from the stored detections", report.UseCase.Reconcile),
		newJobCmd("announce", "Announce the report on the announcement page", report.UseCase.Announce),
		newJobCmd("sync-feedback", "Store reviewer feedback and promote good hostnames", report.UseCase.SyncFeedback),
	)
}
