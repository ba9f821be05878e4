package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"innkeep/config"
	"innkeep/infras/otel"
	bookingRepo "innkeep/internal/domains/booking/repository"
	"innkeep/internal/domains/calendar/model/dto"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheProjectCalendar = "calendar:project"
)

type Calendar interface {
	Project(ctx context.Context, roomIDs []string, windowStart, windowEnd string) (dto.GetCalendarResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Calendar {
	return &serviceImpl{
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Project maps the active bookings intersecting the inclusive window onto
// display events. The query is read-only and deterministic for a fixed
// database state; booking writes invalidate its cache.
func (s *serviceImpl) Project(ctx context.Context, roomIDs []string, windowStart, windowEnd string) (res dto.GetCalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.Project")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := parseWindow(windowStart, windowEnd)
	if err != nil {
		return res, err
	}

	scopeIDs := normalizeScope(roomIDs)
	cacheKey := shared.BuildCacheKey(cacheProjectCalendar, strings.Join(scopeIDs, ","), windowStart, windowEnd)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for calendar projection")

		return res, nil
	}

	bookings, err := s.bookings.GetActiveInWindow(ctx, scopeIDs, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to project calendar window")

		return res, fmt.Errorf("failed to project calendar window: %w", err)
	}

	res.FromModels(bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar projection to cache")
		}
	}()

	return res, nil
}

func parseWindow(windowStart, windowEnd string) (time.Time, time.Time, error) {
	start, err := timezone.Parse(constant.DateOnlyFormat, windowStart)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("window_start must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	end, err := timezone.Parse(constant.DateOnlyFormat, windowEnd)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("window_end must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("window_end must not be before window_start") // nolint:wrapcheck
	}

	return start, end, nil
}

// normalizeScope sorts and deduplicates the room scope so equivalent queries
// share a cache entry.
func normalizeScope(roomIDs []string) []string {
	scopeIDs := make([]string, 0, len(roomIDs))

	for _, id := range roomIDs {
		if trimmed := strings.TrimSpace(id); trimmed != constant.Empty {
			scopeIDs = append(scopeIDs, trimmed)
		}
	}

	sort.Strings(scopeIDs)

	deduped := scopeIDs[:0]

	for i, id := range scopeIDs {
		if i == 0 || scopeIDs[i-1] != id {
			deduped = append(deduped, id)
		}
	}

	return deduped
}
