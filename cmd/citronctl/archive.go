package main

import (
	"citron-srv/internal/report"

	"github.com/spf13/cobra"
)

var archivesCmd = &cobra.Command{
	Use:   "archives",
	Short: "List the archived versions of a report, or print one with --version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wikiID, _ := cmd.Flags().GetString("wiki")
		date, _ := cmd.Flags().GetString("date")
		version, _ := cmd.Flags().GetString("version")

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		if version != "" {
			r, err := s.domains.Report.GetArchive(s.ctx, report.GetArchiveInput{WikiID: wikiID, Date: date, Version: version})
			if err != nil {
				return err
			}
			return printJSON(r)
		}

		versions, err := s.domains.Report.ListArchives(s.ctx, report.ListArchivesInput{WikiID: wikiID, Date: date})
		if err != nil {
			return err
		}
		return printJSON(versions)
	},
}

func init() {
	archivesCmd.Flags().String("wiki", "", "wiki id")
	archivesCmd.Flags().String("date", "", "report day as YYYY-MM-DD (default: today)")
	archivesCmd.Flags().String("version", "", "archived version (the report's updatedAt)")
	_ = archivesCmd.MarkFlagRequired("wiki")
	rootCmd.AddCommand(archivesCmd)
}
