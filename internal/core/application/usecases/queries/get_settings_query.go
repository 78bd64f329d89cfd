package queries

import (
	"context"
	"errors"
	"time"

	"sellerdesk/internal/pkg/guard"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New("GetSettingsQuery must be created via NewGetSettingsQuery constructor")

// Settings is the read-only console configuration shown to operators.
type Settings struct {
	UpstreamAPIURL           string
	UnrecognizedStatusPolicy string
	PaidFlagPolicy           string
	RecentOrdersLimit        int
	LowStockThreshold        int
	LowStockLimit            int
	SessionTTL               time.Duration
	Categories               map[string]string
	Theme                    string
	NotificationsEnabled     bool
}

type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// GetSettingsQueryHandler returns the settings fixed at startup.
type GetSettingsQueryHandler struct {
	settings Settings
}

func NewGetSettingsQueryHandler(settings Settings) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{settings: settings}
}

func (h GetSettingsQueryHandler) Handle(_ context.Context, query GetSettingsQuery) (Settings, error) {
	if err := query.Validate(); err != nil {
		return Settings{}, err
	}
	return h.settings, nil
}
