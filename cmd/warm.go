/*
Copyright © 2025 tranvd
*/
package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/tranvd/askbot-be/config"
	"github.com/tranvd/askbot-be/service"
)

// warmCmd represents the warm command
var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Pre-extract text from every corpus document",
	Long: `Scans the corpus directory and extracts the text of every document,
reporting which files yield no text. Useful for checking a corpus before
pointing the server at it.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		kb := service.NewKnowledgeBase(cfg.CorpusDir)

		docs := kb.Scan(ctx)
		if len(docs) == 0 {
			log.Println("No corpus documents found")
			return
		}

		empty := 0
		for _, path := range docs {
			text := kb.ExtractText(ctx, path)
			if text == "" {
				empty++
				log.Printf("no text extracted: %s", path)
				continue
			}
			log.Printf("extracted %d bytes: %s", len(text), path)
		}
		log.Printf("warmed %d documents, %d produced no text", len(docs), empty)
	},
}

func init() {
	rootCmd.AddCommand(warmCmd)
}
