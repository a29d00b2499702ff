package cli

import (
	"context"
	"fmt"
	"io"

	"curiona-admin/internal/models"

	"github.com/spf13/cobra"
)

func newRoadmapsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roadmaps",
		Aliases: []string{"roadmap", "r"},
		Short:   "Browse and remove generated roadmaps",
	}

	cmd.AddCommand(newRoadmapsListCmd(opts))
	cmd.AddCommand(newRoadmapsGetCmd(opts))
	cmd.AddCommand(newRoadmapsRatingsCmd(opts))
	cmd.AddCommand(newRoadmapsDeleteCmd(opts))

	return cmd
}

func newRoadmapsListCmd(opts *options) *cobra.Command {
	var filters models.Filters

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List roadmaps",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd, func(ctx context.Context, s *session) error {
				var list *models.FilteredList[models.RoadmapSummary]
				err := s.call(ctx, func(ctx context.Context) error {
					var err error
					list, err = s.admin.ListRoadmaps(ctx, "", filters.Normalize())
					return err
				})
				if err != nil {
					return fmt.Errorf("failed to list roadmaps: %w", err)
				}
				return render(cmd.OutOrStdout(), opts.output, list, func(w io.Writer) { renderRoadmaps(w, list) })
			})
		},
	}
	addFilterFlags(cmd, &filters, true)

	return cmd
}

func newRoadmapsGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a roadmap and its topic tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return opts.withSession(cmd, func(ctx context.Context, s *session) error {
				var roadmap *models.Roadmap
				err := s.call(ctx, func(ctx context.Context) error {
					var err error
					roadmap, err = s.admin.GetRoadmap(ctx, "", id)
					return err
				})
				if err != nil {
					return fmt.Errorf("failed to load roadmap %d: %w", id, err)
				}
				return render(cmd.OutOrStdout(), opts.output, roadmap, func(w io.Writer) { renderRoadmap(w, roadmap) })
			})
		},
	}
}

func newRoadmapsRatingsCmd(opts *options) *cobra.Command {
	var filters models.Filters

	cmd := &cobra.Command{
		Use:   "ratings <id>",
		Short: "List the ratings left on a roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return opts.withSession(cmd, func(ctx context.Context, s *session) error {
				var list *models.FilteredList[models.Rating]
				err := s.call(ctx, func(ctx context.Context) error {
					var err error
					list, err = s.admin.ListRoadmapRatings(ctx, "", id, filters.Normalize())
					return err
				})
				if err != nil {
					return fmt.Errorf("failed to list ratings for roadmap %d: %w", id, err)
				}
				return render(cmd.OutOrStdout(), opts.output, list, func(w io.Writer) { renderRatings(w, list) })
			})
		},
	}
	addFilterFlags(cmd, &filters, false)

	return cmd
}

func newRoadmapsDeleteCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete a roadmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete roadmap %d without --yes", id)
			}

			return opts.withSession(cmd, func(ctx context.Context, s *session) error {
				if err := s.call(ctx, func(ctx context.Context) error { return s.admin.DeleteRoadmap(ctx, "", id) }); err != nil {
					return fmt.Errorf("failed to delete roadmap %d: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Roadmap %d deleted.\n", id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")

	return cmd
}
