// cmd/commands.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"rocketreading/internal/config"
	"rocketreading/internal/curriculum"
	"rocketreading/internal/model"
	"rocketreading/internal/service"
)

func seedCmd() *cobra.Command {
	var (
		profileID string
		world     int
		file      string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed a profile with a built-in world or a curriculum file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				items []model.Item
				err   error
			)
			if file != "" {
				items, err = curriculum.LoadFile(file)
			} else {
				if world == 0 {
					world = config.Cfg.App.World
				}
				items, err = curriculum.World(world)
			}
			if err != nil {
				return err
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			created, err := service.NewSchedulerService(store, sessionMode()).SeedItems(cmd.Context(), profileID, items)
			if err != nil {
				return err
			}
			logger.Info("Profile seeded",
				slog.String("profile_id", profileID),
				slog.Int("items", len(items)),
				slog.Int("states_created", created),
			)
			return writeJSON(cmd.OutOrStdout(), model.SeedItemsResponse{Items: len(items), StatesCreated: created})
		},
	}
	cmd.Flags().StringVarP(&profileID, "profile", "p", "", "profile id")
	cmd.Flags().IntVarP(&world, "world", "w", 0, "built-in world number (defaults to app.world)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "curriculum file (.yaml, .yml or .xlsx)")
	cmd.MarkFlagsMutuallyExclusive("world", "file")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func dueCmd() *cobra.Command {
	var (
		profileID string
		asOf      string
	)
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List the items due for a profile with their taught sounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now().UTC()
			if asOf != "" {
				parsed, err := time.Parse(time.RFC3339, asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of: %w", err)
				}
				at = parsed
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			items, err := service.NewSchedulerService(store, sessionMode()).GetDueItems(cmd.Context(), profileID, at)
			if err != nil {
				return err
			}
			type dueItem struct {
				ID      string `json:"id"`
				Content string `json:"content"`
				Sound   string `json:"sound,omitempty"`
			}
			return writeJSON(cmd.OutOrStdout(), lo.Map(items, func(it model.Item, _ int) dueItem {
				return dueItem{ID: it.ID, Content: it.Content, Sound: it.Metadata.Data().Sound}
			}))
		},
	}
	cmd.Flags().StringVarP(&profileID, "profile", "p", "", "profile id")
	cmd.Flags().StringVar(&asOf, "as-of", "", "RFC3339 instant (defaults to now)")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func reviewCmd() *cobra.Command {
	var (
		profileID string
		response  string
		latency   int
	)
	cmd := &cobra.Command{
		Use:   "review <item_id> <correct|incorrect|needed_help>",
		Short: "Log one review and print the updated item state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := model.ParseRating(args[1])
			if err != nil {
				return err
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			state, err := service.NewSchedulerService(store, sessionMode()).LogReview(cmd.Context(), profileID, args[0], rating,
				model.ResponseData{RawResponse: response, ResponseTimeMs: latency})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), state)
		},
	}
	cmd.Flags().StringVarP(&profileID, "profile", "p", "", "profile id")
	cmd.Flags().StringVar(&response, "response", "", "raw response captured for the attempt")
	cmd.Flags().IntVar(&latency, "latency-ms", 0, "response time in milliseconds")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func progressCmd() *cobra.Command {
	var (
		profileID string
		world     int
	)
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show world progress and completion for a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if world == 0 {
				world = config.Cfg.App.World
			}

			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			mastery := service.NewMasteryService(store)
			progress, err := mastery.GetWorldProgress(cmd.Context(), profileID, world)
			if err != nil {
				return err
			}
			complete, err := mastery.CheckWorldComplete(cmd.Context(), profileID, world)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), struct {
				World    int             `json:"world"`
				Progress *model.Progress `json:"progress"`
				Complete bool            `json:"complete"`
			}{world, progress, complete})
		},
	}
	cmd.Flags().StringVarP(&profileID, "profile", "p", "", "profile id")
	cmd.Flags().IntVarP(&world, "world", "w", 0, "world number (defaults to app.world)")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
