package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"burnout-check/internal/config"
	"burnout-check/internal/db"
	"burnout-check/internal/repository"
	"burnout-check/internal/service"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Append to or list the mood log",
}

var moodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append today's mood entry",
	RunE:  runMoodAdd,
}

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the mood log, oldest first",
	RunE:  runMoodList,
}

func init() {
	moodAddCmd.Flags().Int("mood", 3, "Mood score")
	moodAddCmd.Flags().String("emoji", "😐", "Mood emoji")
	moodAddCmd.Flags().String("note", "", "Free-text note")

	moodCmd.AddCommand(moodAddCmd)
	moodCmd.AddCommand(moodListCmd)
}

// openMoodService abre el backend configurado. close libera conexiones.
func openMoodService(cmd *cobra.Command) (*service.MoodService, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()

	var pool *pgxpool.Pool
	if cfg.MoodStore == config.MoodStorePostgres {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}

	repo, closeRepo, err := repository.OpenMoodStore(ctx, cfg, pool)
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, nil, err
	}
	cleanup := func() {
		_ = closeRepo()
		if pool != nil {
			pool.Close()
		}
	}
	return service.NewMoodService(repo, nil, newLogger(cmd)), cleanup, nil
}

func runMoodAdd(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := openMoodService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var in service.MoodInput
	if cmd.Flags().Changed("mood") {
		mood, _ := cmd.Flags().GetInt("mood")
		in.Mood = &mood
	}
	if cmd.Flags().Changed("emoji") {
		emoji, _ := cmd.Flags().GetString("emoji")
		in.Emoji = &emoji
	}
	if cmd.Flags().Changed("note") {
		note, _ := cmd.Flags().GetString("note")
		in.Note = &note
	}

	entry, err := svc.Append(cmd.Context(), in)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), entry)
}

func runMoodList(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := openMoodService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	entries, err := svc.List(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), entries)
}
