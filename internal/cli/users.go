package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"curiona-admin/internal/models"

	"github.com/spf13/cobra"
)

func addFilterFlags(cmd *cobra.Command, f *models.Filters, search bool) {
	cmd.Flags().IntVar(&f.Page, "page", models.DefaultPage, "page number")
	cmd.Flags().IntVar(&f.Limit, "limit", models.DefaultLimit, fmt.Sprintf("items per page (max %d)", models.MaxLimit))
	if search {
		cmd.Flags().StringVarP(&f.Search, "search", "q", "", "search text")
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func newUsersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user", "u"},
		Short:   "Browse and moderate user accounts",
	}

	cmd.AddCommand(newUsersListCmd(opts))
	cmd.AddCommand(newUsersGetCmd(opts))
	cmd.AddCommand(newUserActionCmd(opts, "suspend", "Suspend a user account", "suspended",
		func(ctx context.Context, s *session, id int64) error { return s.admin.SuspendUser(ctx, "", id) }))
	cmd.AddCommand(newUserActionCmd(opts, "unsuspend", "Lift a user suspension", "unsuspended",
		func(ctx context.Context, s *session, id int64) error { return s.admin.UnsuspendUser(ctx, "", id) }))
	cmd.AddCommand(newUsersDeleteCmd(opts))

	return cmd
}

func newUsersListCmd(opts *options) *cobra.Command {
	var filters models.Filters

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd, func(ctx context.Context, s *session) error {
				var list *models.FilteredList[models.Account]
				err := s.call(ctx, func(ctx context.Context) error {
					var err error
					list, err = s.admin.ListUsers(ctx, "", filters.Normalize())
					return err
				})
				if err != nil {
					return fmt.Errorf("failed to list users: %w", err)
				}
				return render(cmd.OutOrStdout(), opts.output, list, func(w io.Writer) { renderUsers(w, list) })
			})
		},
	}
	addFilterFlags(cmd, &filters, true)

	return cmd
}

func newUsersGetCmd(opts *options) *cobra.Command {
	var filters models.Filters

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user and their roadmaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return opts.withSession(cmd, func(ctx context.Context, s *session) error {
				var account *models.Account
				err := s.call(ctx, func(ctx context.Context) error {
					var err error
					account, err = s.admin.GetUser(ctx, "", id, filters.Normalize())
					return err
				})
				if err != nil {
					return fmt.Errorf("failed to load user %d: %w", id, err)
				}
				return render(cmd.OutOrStdout(), opts.output, account, func(w io.Writer) { renderUser(w, account) })
			})
		},
	}
	addFilterFlags(cmd, &filters, false)

	return cmd
}

func newUserActionCmd(opts *options, use, short, done string, action func(context.Context, *session, int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return opts.withSession(cmd, func(ctx context.Context, s *session) error {
				if err := s.call(ctx, func(ctx context.Context) error { return action(ctx, s, id) }); err != nil {
					return fmt.Errorf("failed to %s user %d: %w", use, id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User %d %s.\n", id, done)
				return nil
			})
		},
	}
}

func newUsersDeleteCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete user %d without --yes", id)
			}

			return opts.withSession(cmd, func(ctx context.Context, s *session) error {
				if self := s.auth.Snapshot().Session; self != nil && self.User.ID == id {
					return fmt.Errorf("you cannot delete your own account")
				}
				if err := s.call(ctx, func(ctx context.Context) error { return s.admin.DeleteUser(ctx, "", id) }); err != nil {
					return fmt.Errorf("failed to delete user %d: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User %d deleted.\n", id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")

	return cmd
}
