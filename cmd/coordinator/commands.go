package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrazzld/study-coordinator/internal/config"
	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/platform/logger"
	"github.com/phrazzld/study-coordinator/internal/service"
	"github.com/phrazzld/study-coordinator/internal/store"
	"github.com/phrazzld/study-coordinator/internal/view"
)

// TokenEnv names the environment variable read when --token is not given.
const TokenEnv = config.EnvPrefix + "_TOKEN"

// rootOptions carries the persistent flags and the application built from
// them. Tests set app directly to skip configuration loading.
type rootOptions struct {
	configFile string
	token      string
	app        *application
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "coordinator",
		Short:         "Coordinate study groups, sessions, resources and discussions",
		Long: `Coordinate study groups, sessions, resources and discussions.

Configuration comes from coordinator.yaml and COORD_* environment variables.
login, profile and the session, resource and discussion commands use
session tokens and need COORD_AUTH_JWT_SECRET (at least 32 characters);
register, users, status and group work without it.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.app != nil {
				return nil
			}
			return opts.init(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a configuration file")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv(TokenEnv),
		"session token printed by login (defaults to $"+TokenEnv+")")

	root.AddCommand(
		newRegisterCmd(opts),
		newLoginCmd(opts),
		newUsersCmd(opts),
		newProfileCmd(opts),
		newStatusCmd(opts),
		newGroupCmd(opts),
		newSessionCmd(opts),
		newResourceCmd(opts),
		newDiscussionCmd(opts),
	)

	return root
}

func (o *rootOptions) init(ctx context.Context) error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	o.app = app
	return nil
}

// actor resolves the logged-in user from the token flag.
func (o *rootOptions) actor(cmd *cobra.Command) (*domain.User, error) {
	return o.app.actor(cmd.Context(), o.token)
}

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	var in service.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := opts.app.accounts.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			cmd.Printf("User registered: %s (ID %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&in.ID, "id", 0, "numeric user id")
	cmd.Flags().StringVar(&in.Username, "username", "", "login name")
	cmd.Flags().StringVar(&in.Password, "password", "", "password")
	cmd.Flags().StringVar(&in.Name, "name", "", "first name")
	cmd.Flags().StringVar(&in.Surname, "surname", "", "surname")
	for _, f := range []string{"id", "username", "password"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tokens, err := opts.app.tokenService()
			if err != nil {
				return err
			}
			user, err := opts.app.accounts.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			token, err := tokens.GenerateToken(cmd.Context(), user.ID)
			if err != nil {
				return fmt.Errorf("failed to issue session token: %w", err)
			}
			cmd.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUsersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the ids and usernames of all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return view.WriteUserDirectory(cmd.OutOrStdout(), opts.app.accounts.ListUsers(cmd.Context()))
		},
	}
}

func newProfileCmd(opts *rootOptions) *cobra.Command {
	var name, surname, password string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update your name, surname or password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, err := opts.actor(cmd)
			if err != nil {
				return err
			}

			var upd service.ProfileUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("surname") {
				upd.Surname = &surname
			}
			if cmd.Flags().Changed("password") {
				upd.Password = &password
			}

			user, err := opts.app.accounts.UpdateProfile(cmd.Context(), actor.ID, upd)
			if err != nil {
				return err
			}
			cmd.Printf("Profile updated: %s\n", user.FullName())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new first name")
	cmd.Flags().StringVar(&surname, "surname", "", "new surname")
	cmd.Flags().StringVar(&password, "password", "", "new password")

	return cmd
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show how each collection was loaded",
		Long: `Show how each collection was loaded.

With --repair every collection is written back from memory, so files that
could not be decoded are replaced by empty collections.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := view.WriteLoadReport(cmd.OutOrStdout(), opts.app.loadReport); err != nil {
				return err
			}
			if !repair {
				return nil
			}
			if err := opts.app.stores.SaveAll(cmd.Context()); err != nil {
				return fmt.Errorf("failed to rewrite collections: %w", err)
			}
			cmd.Printf("Rewrote %d collections in %s\n", len(opts.app.loadReport), opts.app.stores.Dir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "rewrite every collection from memory")

	return cmd
}

func newGroupCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Create and inspect study groups",
	}

	var description string
	var members []int
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a study group and add users to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.app.groups.CreateGroup(cmd.Context(), service.CreateGroupInput{
				Name:        args[0],
				Description: description,
				MemberIDs:   members,
			})
			if err != nil {
				return err
			}
			for _, issue := range res.Issues {
				switch {
				case errors.Is(issue.Err, store.ErrUserNotFound):
					cmd.Printf("User with ID %d not found.\n", issue.UserID)
				case errors.Is(issue.Err, service.ErrAlreadyAdded):
					cmd.Printf("User with ID %d is already added.\n", issue.UserID)
				default:
					cmd.Printf("User with ID %d skipped: %v\n", issue.UserID, issue.Err)
				}
			}
			cmd.Printf("Study group created: %s (%d members)\n", res.Group.Name, len(res.Members))
			return nil
		},
	}
	create.Flags().StringVar(&description, "description", "", "what the group studies")
	create.Flags().IntSliceVar(&members, "members", nil, "comma-separated user ids")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all study groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return view.WriteGroups(cmd.OutOrStdout(), opts.app.groups.ListGroups(cmd.Context()))
		},
	}

	show := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a study group and its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := opts.app.groups.GetGroupDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return view.WriteGroupDetails(cmd.OutOrStdout(), details.Group, details.Members)
		},
	}

	cmd.AddCommand(create, list, show)
	return cmd
}

func newSessionCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Schedule and browse your group's study sessions",
	}

	var in service.SessionInput
	add := &cobra.Command{
		Use:   "add TITLE",
		Short: "Schedule a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := opts.actor(cmd)
			if err != nil {
				return err
			}
			in.Title = args[0]
			s, err := opts.app.sessions.AddSession(cmd.Context(), actor, in)
			if err != nil {
				return err
			}
			cmd.Printf("Session added: %s\n", s.Title)
			return nil
		},
	}
	add.Flags().StringVar(&in.Date, "date", "", "when the session takes place")
	add.Flags().StringVar(&in.Description, "description", "", "what the session covers")

	list := &cobra.Command{
		Use:   "list",
		Short: "List your group's sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, err := opts.actor(cmd)
			if err != nil {
				return err
			}
			sessions, err := opts.app.sessions.ListSessions(cmd.Context(), actor)
			if err != nil {
				return err
			}
			return view.WriteSessions(cmd.OutOrStdout(), actor.GroupName, sessions)
		},
	}

	show := &cobra.Command{
		Use:   "show TITLE",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := opts.actor(cmd)
			if err != nil {
				return err
			}
			s, err := opts.app.sessions.FindSession(cmd.Context(), actor, args[0])
			if err != nil {
				return err
			}
			return view.WriteSession(cmd.OutOrStdout(), s)
		},
	}

	var title, date, desc string
	edit := &cobra.Command{
		Use:   "edit TITLE",
		Short: "Change a session's title, date or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := opts.actor(cmd)
			if err != nil {
				return err
			}
			var upd service.SessionUpdate
			upd.Title = changed(cmd, "title", &title)
			upd.Date = changed(cmd, "date", &date)
			upd.Description = changed(cmd, "description", &desc)
			s, err := opts.app.sessions.EditSession(cmd.Context(), actor, args[0], upd)
			if err != nil {
				return err
			}
			cmd.Printf("Session updated: %s\n", s.Title)
			return nil
		},
	}
	edit.Flags().StringVar(&title, "title", "", "new title")
	edit.Flags().StringVar(&date, "date", "", "new date")
	edit.Flags().StringVar(&desc, "description", "", "new description")

	cmd.AddCommand(add, list, show, edit)
	return cmd
}

func newResourceCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Share and browse your group's resources",
	}

	var in service.ResourceInput
	add := &cobra.Command{
		Use:   "add TITLE",
		Short: "Share a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := opts.actor(cmd)
			if err != nil {
				return err
			}
			in.Title = args[0]
			r, err := opts.app.resources.AddResource(cmd.Context(), actor, in)
			if err != nil {
				return err
			}
			cmd.Printf("Resource added: %s\n", r.Title)
			return nil
		},
	}
	add.Flags().StringVar(&in.Description, "description", "", "what the resource is")
	add.Flags().StringVar(&in.Link, "link", "", "where to find it")

	list := &cobra.Command{
		Use:   "list",
		Short: "List your group's resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, err := opts.actor(cmd)
			if err != nil {
				return err
			}
			resources, err := opts.app.resources.ListResources(cmd.Context(), actor)
			if err != nil {
				return err
			}
			return view.WriteResources(cmd.OutOrStdout(), actor.GroupName, resources)
		},
	}

	show := &cobra.Command{
		Use:   "show TITLE",
		Short: "Show one resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := opts.actor(cmd)
			if err != nil {
				return err
			}
			r, err := opts.app.resources.FindResource(cmd.Context(), actor, args[0])
			if err != nil {
				return err
			}
			return view.WriteResource(cmd.OutOrStdout(), r)
		},
	}

	var title, desc, link string
	edit := &cobra.Command{
		Use:   "edit TITLE",
		Short: "Change a resource's title, description or link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := opts.actor(cmd)
			if err != nil {
				return err
			}
			var upd service.ResourceUpdate
			upd.Title = changed(cmd, "title", &title)
			upd.Description = changed(cmd, "description", &desc)
			upd.Link = changed(cmd, "link", &link)
			r, err := opts.app.resources.EditResource(cmd.Context(), actor, args[0], upd)
			if err != nil {
				return err
			}
			cmd.Printf("Resource updated: %s\n", r.Title)
			return nil
		},
	}
	edit.Flags().StringVar(&title, "title", "", "new title")
	edit.Flags().StringVar(&desc, "description", "", "new description")
	edit.Flags().StringVar(&link, "link", "", "new link")

	cmd.AddCommand(add, list, show, edit)
	return cmd
}

func newDiscussionCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discussion",
		Short: "Use your group's discussion board",
	}

	withActor := func(fn func(cmd *cobra.Command, actor *domain.User, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			actor, err := opts.actor(cmd)
			if err != nil {
				return err
			}
			return fn(cmd, actor, args)
		}
	}

	add := &cobra.Command{
		Use:   "add TOPIC",
		Short: "Start a discussion",
		Args:  cobra.ExactArgs(1),
		RunE: withActor(func(cmd *cobra.Command, actor *domain.User, args []string) error {
			d, err := opts.app.discussions.AddDiscussion(cmd.Context(), actor, args[0])
			if err != nil {
				return err
			}
			cmd.Printf("Discussion added: %s\n", d.Topic)
			return nil
		}),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your group's discussions and their comments",
		Args:  cobra.NoArgs,
		RunE: withActor(func(cmd *cobra.Command, actor *domain.User, _ []string) error {
			discussions, err := opts.app.discussions.ListDiscussions(cmd.Context(), actor)
			if err != nil {
				return err
			}
			return view.WriteDiscussions(cmd.OutOrStdout(), actor.GroupName, discussions)
		}),
	}

	show := &cobra.Command{
		Use:   "show TOPIC",
		Short: "Show one discussion",
		Args:  cobra.ExactArgs(1),
		RunE: withActor(func(cmd *cobra.Command, actor *domain.User, args []string) error {
			d, err := opts.app.discussions.FindDiscussion(cmd.Context(), actor, args[0])
			if err != nil {
				return err
			}
			return view.WriteDiscussion(cmd.OutOrStdout(), d)
		}),
	}

	comment := &cobra.Command{
		Use:   "comment TOPIC TEXT...",
		Short: "Comment on a discussion",
		Args:  cobra.MinimumNArgs(2),
		RunE: withActor(func(cmd *cobra.Command, actor *domain.User, args []string) error {
			text := strings.Join(args[1:], " ")
			d, err := opts.app.discussions.AddComment(cmd.Context(), actor, args[0], text)
			if err != nil {
				return err
			}
			cmd.Printf("Comment added to %s\n", d.Topic)
			return nil
		}),
	}

	rename := &cobra.Command{
		Use:   "rename TOPIC NEW_TOPIC",
		Short: "Change a discussion's topic",
		Args:  cobra.ExactArgs(2),
		RunE: withActor(func(cmd *cobra.Command, actor *domain.User, args []string) error {
			d, err := opts.app.discussions.EditDiscussionTopic(cmd.Context(), actor, args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Printf("Discussion renamed to %s\n", d.Topic)
			return nil
		}),
	}

	cmd.AddCommand(add, list, show, comment, rename)
	return cmd
}

// changed returns v if the named flag was set on the command line.
func changed(cmd *cobra.Command, name string, v *string) *string {
	if cmd.Flags().Changed(name) {
		return v
	}
	return nil
}
