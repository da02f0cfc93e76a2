// Package upstream reads collections from another develfood instance over HTTP.
package upstream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"develfood/internal/domain/entity"
	"develfood/internal/domain/repository"

	"github.com/pkg/errors"
)

// userRepository implements repository.UserRepository by calling GET {baseURL}/users.
type userRepository struct {
	usersURL   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewUserRepository creates a users client for baseURL.
func NewUserRepository(baseURL string, timeout time.Duration, logger *slog.Logger) (repository.UserRepository, error) {
	usersURL, err := url.JoinPath(baseURL, "users")
	if err != nil {
		return nil, errors.Wrapf(err, "invalid users endpoint %q", baseURL)
	}

	return &userRepository{
		usersURL: usersURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, repo.usersURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := repo.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch users")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("users endpoint returned status %d", resp.StatusCode)
	}

	var users []*entity.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	repo.logger.Debug("Fetched users from upstream",
		slog.String("url", repo.usersURL),
		slog.Int("count", len(users)),
	)

	return users, nil
}
