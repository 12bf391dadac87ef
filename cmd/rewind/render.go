package main

import (
	"encoding/json"
	"fmt"
	"os"

	"cloud.google.com/go/storage"
	"github.com/spf13/cobra"

	"rewind/internal/domain"
)

var (
	renderEvent    string
	renderPlayers  []string
	renderAreas    []string
	renderTeams    []string
	renderLanguage string
	renderMusic    string
	renderJSON     bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Produce one rewind synchronously",
	Long: `Run the whole pipeline for one game without the job queue and print the
resulting timeline.

Examples:
  rewind render --event 634594
  rewind render --event 634594 --player "Shohei Ohtani" --language ja
  rewind render --event 634594 --json > timeline.json`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderEvent, "event", "", "game id (gamePk)")
	renderCmd.Flags().StringSliceVar(&renderPlayers, "player", nil, "player to focus on, repeatable")
	renderCmd.Flags().StringSliceVar(&renderAreas, "area", nil, "aspect of the game to focus on, repeatable")
	renderCmd.Flags().StringSliceVar(&renderTeams, "team", nil, "team to focus on, repeatable")
	renderCmd.Flags().StringVar(&renderLanguage, "language", "en", "narration language")
	renderCmd.Flags().StringVar(&renderMusic, "music", "", "background music url")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "print the timeline JSON only")
	_ = renderCmd.MarkFlagRequired("event")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	db, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	rdb, err := openRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer rdb.Close()

	blobs, err := storage.NewClient(ctx)
	if err != nil {
		return err
	}
	defer blobs.Close()

	pipeline, err := buildPipeline(ctx, cfg, db, rdb, blobs, logger)
	if err != nil {
		return err
	}

	observe := func(stage domain.Stage, section int) {
		if !renderJSON {
			fmt.Fprintln(os.Stderr, renderProgress(stage, section))
		}
	}

	timeline, err := pipeline.Rewind(ctx, domain.RewindRequest{
		EventID:            renderEvent,
		FocusPlayers:       renderPlayers,
		FocusAreas:         renderAreas,
		FocusTeams:         renderTeams,
		LanguageCode:       renderLanguage,
		BackgroundMusicURL: renderMusic,
	}, observe)
	if err != nil {
		return fmt.Errorf("%s: %w", domain.UserMessage(err), err)
	}

	if renderJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(timeline)
	}

	fmt.Println(renderSummary(timeline))
	return nil
}
