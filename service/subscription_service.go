// ABOUTME: User-facing subscription operations: list/add/remove/pause/resume/sync/discover
// ABOUTME: Add is a reactivating upsert; remove soft-deletes and purges only INBOX user items

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"inbox-hub/driver"
	"inbox-hub/ids"
	"inbox-hub/models"
	"inbox-hub/repository"
)

const (
	manualSyncKeyFmt = "manual-sync:%s"
	manualSyncTTL    = 5 * time.Minute
	syncAllKeyFmt    = "sync-all:%s"
	syncAllTTL       = 2 * time.Minute

	syncAllYouTubeCap = 20
	syncAllSpotifyCap = 30

	defaultPollIntervalSeconds = IntervalActive
)

// SubscriptionView is a subscription joined with creator display fields.
type SubscriptionView struct {
	*models.Subscription
	Name        string  `json:"name"`
	ImageURL    *string `json:"image_url,omitempty"`
	Description *string `json:"description,omitempty"`
	ExternalURL *string `json:"external_url,omitempty"`
}

// ListResult is one page of subscriptions.
type ListResult struct {
	Items      []SubscriptionView `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
	HasMore    bool               `json:"has_more"`
}

// AddInput is the payload for adding a subscription.
type AddInput struct {
	Provider          models.Provider
	ProviderChannelID string
	Name              string
	ImageURL          *string
}

// SyncAllResult reports a bounded sync-all pass.
type SyncAllResult struct {
	Synced        int                 `json:"synced"`
	ItemsFound    int                 `json:"items_found"`
	Errors        []SubscriptionError `json:"-"`
	HasMoreToSync bool                `json:"has_more_to_sync"`
	Remaining     int                 `json:"remaining"`
}

// DiscoverItem is one remote channel/show in discover results.
type DiscoverItem struct {
	ProviderChannelID string `json:"provider_channel_id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	ImageURL          string `json:"image_url,omitempty"`
	IsSubscribed      bool   `json:"is_subscribed"`
}

// DiscoverResult wraps discover responses.
type DiscoverResult struct {
	Items              []DiscoverItem `json:"items"`
	ConnectionRequired bool           `json:"connection_required"`
}

// SubscriptionService implements the user-invoked operations.
type SubscriptionService struct {
	subs        repository.SubscriptionRepository
	items       repository.ItemRepository
	creators    repository.CreatorRepository
	connections repository.ConnectionRepository
	tokens      TokenProvider
	youtube     YouTubeAPI
	spotify     SpotifyAPI
	initial     *InitialFetchService
	ytPoller    *YouTubePoller
	spPoller    *SpotifyPoller
	rssPoller   *RSSPoller
	kv          KV
	logger      *slog.Logger
	now         func() int64
}

// NewSubscriptionService wires the ops surface.
func NewSubscriptionService(
	subs repository.SubscriptionRepository,
	items repository.ItemRepository,
	creators repository.CreatorRepository,
	connections repository.ConnectionRepository,
	tokens TokenProvider,
	youtube YouTubeAPI,
	spotify SpotifyAPI,
	initial *InitialFetchService,
	ytPoller *YouTubePoller,
	spPoller *SpotifyPoller,
	rssPoller *RSSPoller,
	kv KV,
	logger *slog.Logger,
) *SubscriptionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubscriptionService{
		subs:        subs,
		items:       items,
		creators:    creators,
		connections: connections,
		tokens:      tokens,
		youtube:     youtube,
		spotify:     spotify,
		initial:     initial,
		ytPoller:    ytPoller,
		spPoller:    spPoller,
		rssPoller:   rssPoller,
		kv:          kv,
		logger:      logger,
		now:         ids.NowMillis,
	}
}

// List returns one page of the user's subscriptions with creator
// display fields joined in.
func (s *SubscriptionService) List(ctx context.Context, userID string, filter repository.SubscriptionListFilter) (*ListResult, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}

	// fetch one extra row to detect another page
	probe := filter
	probe.Limit = filter.Limit + 1
	subs, err := s.subs.ListByUser(ctx, userID, probe)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	hasMore := len(subs) > filter.Limit
	if hasMore {
		subs = subs[:filter.Limit]
	}

	creatorIDs := make([]string, 0, len(subs))
	for _, sub := range subs {
		if sub.CreatorID != nil {
			creatorIDs = append(creatorIDs, *sub.CreatorID)
		}
	}
	creators, err := s.creators.FindByIDs(ctx, creatorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load creators for list: %w", err)
	}

	result := &ListResult{Items: make([]SubscriptionView, 0, len(subs)), HasMore: hasMore}
	for _, sub := range subs {
		view := SubscriptionView{Subscription: sub}
		if sub.CreatorID != nil {
			if c, ok := creators[*sub.CreatorID]; ok {
				view.Name = c.Name
				view.ImageURL = c.ImageURL
				view.Description = c.Description
				view.ExternalURL = c.ExternalURL
			}
		}
		result.Items = append(result.Items, view)
	}
	if hasMore && len(subs) > 0 {
		result.NextCursor = subs[len(subs)-1].ID
	}
	return result, nil
}

// Add upserts a subscription, reactivating a prior UNSUBSCRIBED row,
// then awaits the welcome fetch. Welcome failures never roll it back.
// The payload's display fields seed the creator row so the subscription
// lists with a name before its first item lands.
func (s *SubscriptionService) Add(ctx context.Context, userID string, input AddInput) (*SubscriptionView, error) {
	if !input.Provider.Valid() || input.ProviderChannelID == "" {
		return nil, fmt.Errorf("%w: provider and provider_channel_id are required", ErrBadRequest)
	}
	if err := s.requireActiveConnection(ctx, userID, input.Provider); err != nil {
		return nil, err
	}

	now := s.now()
	newSub := &models.Subscription{
		ID:                  ids.NewULID(),
		UserID:              userID,
		Provider:            input.Provider,
		ProviderChannelID:   input.ProviderChannelID,
		PollIntervalSeconds: defaultPollIntervalSeconds,
		Status:              models.SubscriptionActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if input.Name != "" {
		creatorID, err := s.seedCreator(ctx, input, now)
		if err != nil {
			return nil, err
		}
		newSub.CreatorID = &creatorID
	}

	sub, err := s.subs.Upsert(ctx, newSub)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert subscription: %w", err)
	}

	s.initial.Run(ctx, sub)
	return &SubscriptionView{Subscription: sub, Name: input.Name, ImageURL: input.ImageURL}, nil
}

// seedCreator keys the creator the same way ingestion does: native
// channel/show ids double as creator ids, RSS derives a synthetic id
// from the name.
func (s *SubscriptionService) seedCreator(ctx context.Context, input AddInput, now int64) (string, error) {
	creator := &CreatorInput{Name: input.Name, ImageURL: input.ImageURL}
	if input.Provider.RequiresConnection() {
		creator.ProviderCreatorID = input.ProviderChannelID
	}
	return resolveCreator(ctx, s.creators, input.Provider, creator, now)
}

// Remove soft-deletes: tracking rows and INBOX user items go, the seen
// gate and bookmarked/archived items stay.
func (s *SubscriptionService) Remove(ctx context.Context, userID, subscriptionID string) error {
	sub, err := s.ownedSubscription(ctx, userID, subscriptionID)
	if err != nil {
		return err
	}

	now := s.now()
	if err := s.subs.UpdateStatus(ctx, sub.ID, models.SubscriptionUnsubscribed, nil, now); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	// inbox purge first: it selects via the tracking rows
	if _, err := s.items.DeleteInboxUserItems(ctx, userID, sub.ID); err != nil {
		return fmt.Errorf("failed to purge inbox items: %w", err)
	}
	if err := s.items.DeleteSubscriptionItems(ctx, sub.ID); err != nil {
		return fmt.Errorf("failed to purge tracking rows: %w", err)
	}
	return nil
}

// Pause stops polling without touching content.
func (s *SubscriptionService) Pause(ctx context.Context, userID, subscriptionID string) error {
	sub, err := s.ownedSubscription(ctx, userID, subscriptionID)
	if err != nil {
		return err
	}
	if sub.Status != models.SubscriptionActive {
		return fmt.Errorf("%w: only active subscriptions can be paused", ErrBadRequest)
	}
	return s.subs.UpdateStatus(ctx, sub.ID, models.SubscriptionPaused, nil, s.now())
}

// Resume re-enables polling after rechecking the connection.
func (s *SubscriptionService) Resume(ctx context.Context, userID, subscriptionID string) error {
	sub, err := s.ownedSubscription(ctx, userID, subscriptionID)
	if err != nil {
		return err
	}
	if sub.Status != models.SubscriptionPaused {
		return fmt.Errorf("%w: only paused subscriptions can be resumed", ErrBadRequest)
	}
	if err := s.requireActiveConnection(ctx, userID, sub.Provider); err != nil {
		return err
	}
	return s.subs.UpdateStatus(ctx, sub.ID, models.SubscriptionActive, nil, s.now())
}

// SyncNow polls one subscription on demand, throttled to one run per
// five minutes per subscription.
func (s *SubscriptionService) SyncNow(ctx context.Context, userID, subscriptionID string) (int, error) {
	sub, err := s.ownedSubscription(ctx, userID, subscriptionID)
	if err != nil {
		return 0, err
	}
	if sub.Status != models.SubscriptionActive {
		return 0, fmt.Errorf("%w: subscription is not active", ErrBadRequest)
	}
	if err := s.requireActiveConnection(ctx, userID, sub.Provider); err != nil {
		return 0, err
	}

	ok, err := s.kv.SetNXWithTTL(ctx, fmt.Sprintf(manualSyncKeyFmt, sub.ID), manualSyncTTL)
	if err != nil {
		return 0, fmt.Errorf("failed to check sync throttle: %w", err)
	}
	if !ok {
		return 0, ErrThrottled
	}

	return s.pollOne(ctx, sub)
}

// SyncAll polls the user's active subscriptions grouped by provider,
// oldest-polled first, capped per provider by the outbound API quota.
func (s *SubscriptionService) SyncAll(ctx context.Context, userID string) (*SyncAllResult, error) {
	ok, err := s.kv.SetNXWithTTL(ctx, fmt.Sprintf(syncAllKeyFmt, userID), syncAllTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to check sync-all throttle: %w", err)
	}
	if !ok {
		return nil, ErrThrottled
	}

	result := &SyncAllResult{}
	var total BatchResult
	caps := map[models.Provider]int{
		models.ProviderYouTube: syncAllYouTubeCap,
		models.ProviderSpotify: syncAllSpotifyCap,
		models.ProviderRSS:     syncAllSpotifyCap,
	}

	for provider, capacity := range caps {
		subs, err := s.subs.ListActiveByUserProvider(ctx, userID, provider)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s subscriptions: %w", provider, err)
		}
		if len(subs) == 0 {
			continue
		}

		sort.Slice(subs, func(i, j int) bool {
			if subs[i].NeverPolled() != subs[j].NeverPolled() {
				return subs[i].NeverPolled()
			}
			if subs[i].NeverPolled() {
				return subs[i].ID < subs[j].ID
			}
			return *subs[i].LastPolledAt < *subs[j].LastPolledAt
		})

		if len(subs) > capacity {
			result.HasMoreToSync = true
			result.Remaining += len(subs) - capacity
			subs = subs[:capacity]
		}

		total.merge(s.pollProvider(ctx, userID, provider, subs))
	}
	result.Synced = total.Processed
	result.ItemsFound = total.NewItems
	result.Errors = total.Errors
	return result, nil
}

// DiscoverAvailable lists the user's remote channel/show subscriptions
// with a local isSubscribed flag.
func (s *SubscriptionService) DiscoverAvailable(ctx context.Context, userID string, provider models.Provider) (*DiscoverResult, error) {
	if !provider.RequiresConnection() {
		return &DiscoverResult{Items: []DiscoverItem{}}, nil
	}

	token, err := s.tokens.GetValidToken(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) ||
			errors.Is(err, driver.ErrRefreshTokenInvalid) ||
			errors.Is(err, driver.ErrAccessRevoked) {
			return &DiscoverResult{Items: []DiscoverItem{}, ConnectionRequired: true}, nil
		}
		return nil, err
	}

	subscribed, err := s.subs.ListNonUnsubscribedChannelIDs(ctx, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to load local subscriptions: %w", err)
	}

	var items []DiscoverItem
	switch provider {
	case models.ProviderYouTube:
		channels, err := s.youtube.ListMySubscriptions(ctx, token)
		if err != nil {
			return nil, err
		}
		for _, ch := range channels {
			items = append(items, DiscoverItem{
				ProviderChannelID: ch.ChannelID,
				Name:              ch.Title,
				Description:       ch.Description,
				ImageURL:          ch.ThumbnailURL,
				IsSubscribed:      subscribed[ch.ChannelID],
			})
		}
	case models.ProviderSpotify:
		shows, err := s.spotify.ListSavedShows(ctx, token)
		if err != nil {
			return nil, err
		}
		for _, show := range shows {
			items = append(items, DiscoverItem{
				ProviderChannelID: show.ID,
				Name:              show.Name,
				Description:       show.Description,
				ImageURL:          show.ImageURL,
				IsSubscribed:      subscribed[show.ID],
			})
		}
	}
	return &DiscoverResult{Items: items}, nil
}

// DiscoverSearch searches remote channels/shows.
func (s *SubscriptionService) DiscoverSearch(ctx context.Context, userID string, provider models.Provider, query string, limit int) (*DiscoverResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrBadRequest)
	}
	if limit <= 0 || limit > 20 {
		limit = 20
	}
	if !provider.RequiresConnection() {
		return &DiscoverResult{Items: []DiscoverItem{}}, nil
	}

	token, err := s.tokens.GetValidToken(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) ||
			errors.Is(err, driver.ErrRefreshTokenInvalid) ||
			errors.Is(err, driver.ErrAccessRevoked) {
			return &DiscoverResult{Items: []DiscoverItem{}, ConnectionRequired: true}, nil
		}
		return nil, err
	}

	subscribed, err := s.subs.ListNonUnsubscribedChannelIDs(ctx, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to load local subscriptions: %w", err)
	}

	var items []DiscoverItem
	switch provider {
	case models.ProviderYouTube:
		channels, err := s.youtube.SearchChannels(ctx, token, query, limit)
		if err != nil {
			return nil, err
		}
		for _, ch := range channels {
			items = append(items, DiscoverItem{
				ProviderChannelID: ch.ChannelID,
				Name:              ch.Title,
				Description:       ch.Description,
				ImageURL:          ch.ThumbnailURL,
				IsSubscribed:      subscribed[ch.ChannelID],
			})
		}
	case models.ProviderSpotify:
		shows, err := s.spotify.SearchShows(ctx, token, query, limit)
		if err != nil {
			return nil, err
		}
		for _, show := range shows {
			items = append(items, DiscoverItem{
				ProviderChannelID: show.ID,
				Name:              show.Name,
				Description:       show.Description,
				ImageURL:          show.ImageURL,
				IsSubscribed:      subscribed[show.ID],
			})
		}
	}
	return &DiscoverResult{Items: items}, nil
}

func (s *SubscriptionService) pollOne(ctx context.Context, sub *models.Subscription) (int, error) {
	switch sub.Provider {
	case models.ProviderYouTube:
		token, err := s.tokens.GetValidToken(ctx, sub.UserID, sub.Provider)
		if err != nil {
			return 0, err
		}
		return s.ytPoller.PollSingle(ctx, sub, token)
	case models.ProviderSpotify:
		token, err := s.tokens.GetValidToken(ctx, sub.UserID, sub.Provider)
		if err != nil {
			return 0, err
		}
		return s.spPoller.PollSingle(ctx, sub, token)
	case models.ProviderRSS:
		return s.rssPoller.PollSingle(ctx, sub)
	default:
		return 0, fmt.Errorf("%w: provider %s cannot be synced", ErrBadRequest, sub.Provider)
	}
}

func (s *SubscriptionService) pollProvider(ctx context.Context, userID string, provider models.Provider, subs []*models.Subscription) BatchResult {
	switch provider {
	case models.ProviderYouTube, models.ProviderSpotify:
		token, err := s.tokens.GetValidToken(ctx, userID, provider)
		if err != nil {
			var out BatchResult
			for _, sub := range subs {
				out.Errors = append(out.Errors, SubscriptionError{SubscriptionID: sub.ID, Err: err})
			}
			return out
		}
		if provider == models.ProviderYouTube {
			return s.ytPoller.PollBatch(ctx, subs, token)
		}
		return s.spPoller.PollBatch(ctx, subs, token)
	case models.ProviderRSS:
		return s.rssPoller.PollBatch(ctx, subs)
	default:
		return BatchResult{}
	}
}

func (s *SubscriptionService) ownedSubscription(ctx context.Context, userID, subscriptionID string) (*models.Subscription, error) {
	sub, err := s.subs.FindByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	// ownership failures are indistinguishable from missing rows
	if sub.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return sub, nil
}

func (s *SubscriptionService) requireActiveConnection(ctx context.Context, userID string, provider models.Provider) error {
	if !provider.RequiresConnection() {
		return nil
	}
	conn, err := s.connections.FindByUserProvider(ctx, userID, provider)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoActiveConnection
	}
	if err != nil {
		return fmt.Errorf("failed to check connection: %w", err)
	}
	if conn.Status != models.ConnectionActive {
		return ErrNoActiveConnection
	}
	return nil
}
