package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"curiona-admin/internal/admin"
	"curiona-admin/internal/apierror"
	"curiona-admin/internal/authstate"
	"curiona-admin/internal/console"
	"curiona-admin/internal/models"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const signOutTimeout = 5 * time.Second

var errPasswordRequired = errors.New("password required: pass --password, set " + EnvPassword + " or run in a terminal")

// session is a signed-in console connection. The console keeps the tokens in
// cookies; admin calls therefore pass an empty bearer token.
type session struct {
	admin  *admin.Client
	auth   *authstate.Provider
	logger *slog.Logger
}

func (o *options) providerOptions(logger *slog.Logger) []authstate.Option {
	return []authstate.Option{
		authstate.WithLogger(logger),
		authstate.WithRefreshThreshold(o.refreshThreshold),
		authstate.WithCheckInterval(o.checkInterval),
	}
}

func (o *options) signIn(cmd *cobra.Command) (*session, error) {
	logger := o.logger(cmd.ErrOrStderr())

	client, err := console.New(o.consoleURL, o.timeout, logger)
	if err != nil {
		return nil, err
	}

	provider := authstate.NewProvider(client, o.providerOptions(logger)...)

	ctx := cmd.Context()
	if o.oauthToken != "" {
		err = provider.SignInGoogle(ctx, o.oauthToken)
	} else {
		var credentials models.Credentials
		credentials, err = o.credentials(cmd)
		if err == nil {
			err = provider.SignIn(ctx, credentials)
		}
	}
	if err != nil {
		provider.Close()
		if errors.Is(err, errPasswordRequired) {
			return nil, err
		}
		return nil, fmt.Errorf("sign in failed: %s", apierror.Message(err))
	}

	logger.Debug("signed in", "console", o.consoleURL, "user", provider.Snapshot().Session.User.Email)

	return &session{admin: client.Admin, auth: provider, logger: logger}, nil
}

func (o *options) credentials(cmd *cobra.Command) (models.Credentials, error) {
	email := strings.TrimSpace(o.email)
	password := o.password

	if email == "" || password == "" {
		in, ok := cmd.InOrStdin().(*os.File)
		if !ok || !term.IsTerminal(int(in.Fd())) {
			if email == "" {
				return models.Credentials{}, errors.New("email required: pass --email or set " + EnvEmail)
			}
			return models.Credentials{}, errPasswordRequired
		}

		if email == "" {
			fmt.Fprint(cmd.ErrOrStderr(), "Email: ")
			line, err := bufio.NewReader(in).ReadString('\n')
			if err != nil {
				return models.Credentials{}, fmt.Errorf("failed to read email: %w", err)
			}
			email = strings.TrimSpace(line)
		}

		if password == "" {
			fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
			raw, err := term.ReadPassword(int(in.Fd()))
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return models.Credentials{}, fmt.Errorf("failed to read password: %w", err)
			}
			password = string(raw)
		}
	}

	return models.Credentials{Email: email, Password: password}, nil
}

// close signs out even when ctx was cancelled, e.g. by Ctrl-C during --watch.
func (s *session) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), signOutTimeout)
	defer cancel()

	if err := s.auth.SignOut(ctx); err != nil {
		s.logger.Warn("sign out failed", "error", err)
	}
	s.auth.Close()
}

// call runs fn and, when the console reports the access token expired,
// refreshes once and retries.
func (s *session) call(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if !apierror.IsAuth(err) {
		return err
	}

	if refreshErr := s.auth.RefreshSession(ctx); refreshErr != nil {
		return err
	}

	return fn(ctx)
}

// withSession signs in, runs fn and signs out.
func (o *options) withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	s, err := o.signIn(cmd)
	if err != nil {
		return err
	}
	defer s.close(cmd.Context())

	return fn(cmd.Context(), s)
}
