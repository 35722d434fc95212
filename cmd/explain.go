package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abrick/brick/internal/llm"
)

func explainCmd() *cobra.Command {
	var (
		analysisType string
		model        string
		baseURL      string
	)

	cmd := &cobra.Command{
		Use:   "explain <file>",
		Short: "Ask the configured LLM for an advisory analysis of a file",
		Long: `Sends the raw source of a file to an OpenAI-compatible endpoint
(a local Ollama works) and prints the free-text analysis. This is
advisory only; linting works without any model configured.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			analyzer := llm.New(llm.Config{Model: model, BaseURL: baseURL})
			resp, err := analyzer.Analyze(cmd.Context(), string(src), llm.AnalysisType(analysisType))
			if err != nil {
				return err
			}

			fmt.Println(resp.Content)
			fmt.Fprintf(os.Stderr, "\n[%s, %d tokens, %s]\n",
				resp.Model, resp.TotalTokens, resp.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&analysisType, "type", "t", string(llm.AnalysisReview),
		fmt.Sprintf("analysis type %v", llm.AnalysisTypes()))
	cmd.Flags().StringVarP(&model, "model", "m", "", "model name")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "OpenAI-compatible endpoint URL")
	return cmd
}
