package main

import (
	"fmt"

	"citron-srv/internal/detection"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "List the hostnames a revision added",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wikiID, _ := cmd.Flags().GetString("wiki")
		newRev, _ := cmd.Flags().GetInt64("rev")
		oldRev, _ := cmd.Flags().GetInt64("old")

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		w, ok := s.domains.Wikis[wikiID]
		if !ok {
			return fmt.Errorf("wiki %q is not configured", wikiID)
		}

		ip := detection.ExtractInput{ServerName: w.ServerName, NewRevisionID: newRev}
		if cmd.Flags().Changed("old") {
			ip.OldRevisionID = &oldRev
		}
		hostnames, err := s.domains.Detection.Extract(s.ctx, ip)
		if err != nil {
			return err
		}
		if hostnames == nil {
			hostnames = []string{}
		}
		return printJSON(hostnames)
	},
}

func init() {
	extractCmd.Flags().String("wiki", "", "wiki id")
	extractCmd.Flags().Int64("rev", 0, "new revision id")
	extractCmd.Flags().Int64("old", 0, "old revision id (omit for page creations)")
	_ = extractCmd.MarkFlagRequired("wiki")
	_ = extractCmd.MarkFlagRequired("rev")
	rootCmd.AddCommand(extractCmd)
}
