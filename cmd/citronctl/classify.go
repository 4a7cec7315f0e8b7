package main

import (
	"citron-srv/internal/classifier"
	"citron-srv/internal/feature"
	"citron-srv/pkg/util"

	"github.com/spf13/cobra"
)

type classifyResult struct {
	Model    classifier.ModelInfo      `json:"model"`
	Features []feature.HostnameFeature `json:"features"`
	Results  []classifier.Result       `json:"results"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify <hostname>...",
	Short: "Collect features for hostnames and run the classifier",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modelID, _ := cmd.Flags().GetString("model")

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		features, err := s.domains.Feature.CollectMany(s.ctx, feature.CollectManyInput{Hostnames: util.Unique(args)})
		if err != nil {
			return err
		}
		o, err := s.domains.Classifier.Classify(s.ctx, classifier.ClassifyInput{Features: features, ModelID: modelID})
		if err != nil {
			return err
		}
		return printJSON(classifyResult{Model: o.Model, Features: features, Results: o.Results})
	},
}

func init() {
	classifyCmd.Flags().String("model", "", "model id (default: the configured default model)")
	rootCmd.AddCommand(classifyCmd)
}
