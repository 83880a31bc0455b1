// Copyright (c) 2026 Mercata. All rights reserved.
// Author: quang.damminh@gmail.com

package attribute

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quangdam/mercata/internal/platform/constants"
)

// CachedRepository decorates a Repository with a Redis read-through cache
// for scope schema lookups. Attribute definitions change rarely and are read
// on every assignment request, so they are the one hot read worth caching;
// the cache is TTL-only since the schema registry is written out of band.
//
// Cache failures are never fatal: a broken Redis degrades to direct reads.
type CachedRepository struct {
	Repository

	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedRepository(inner Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{Repository: inner, client: client, ttl: ttl, logger: logger}
}

func (repository *CachedRepository) ListByScope(context context.Context, scope Scope) ([]*Attribute, error) {
	key := fmt.Sprintf("%s%s:%d", constants.RedisPrefixAttributeScope, scope.Kind, scope.TypeID)

	cached, err := repository.client.Get(context, key).Bytes()
	if err == nil {
		if attributes, err := decodeScopeAttributes(cached); err == nil {
			return attributes, nil
		}
		// Unparseable payload, likely a format change; fall through to refill.
	} else if err != redis.Nil {
		repository.logger.WarnContext(context, "attribute scope cache read failed",
			slog.String("key", key), slog.String("error", err.Error()))
	}

	attributes, err := repository.Repository.ListByScope(context, scope)
	if err != nil {
		return nil, err
	}

	if encoded, err := marshalScopeAttributes(attributes); err == nil {
		if err := repository.client.Set(context, key, encoded, repository.ttl).Err(); err != nil {
			repository.logger.WarnContext(context, "attribute scope cache write failed",
				slog.String("key", key), slog.String("error", err.Error()))
		}
	}

	return attributes, nil
}

// scopeCacheEntry is the cache wire shape. It carries the internal ID,
// which the public JSON shape hides but the engine needs back on a hit.
type scopeCacheEntry struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Slug          string      `json:"slug"`
	InputType     InputType   `json:"input_type"`
	EntityType    *EntityType `json:"entity_type,omitempty"`
	ValueRequired bool        `json:"value_required"`
}

func marshalScopeAttributes(attributes []*Attribute) ([]byte, error) {
	entries := make([]scopeCacheEntry, 0, len(attributes))
	for _, attr := range attributes {
		entries = append(entries, scopeCacheEntry{
			ID:            attr.ID,
			Name:          attr.Name,
			Slug:          attr.Slug,
			InputType:     attr.InputType,
			EntityType:    attr.EntityType,
			ValueRequired: attr.ValueRequired,
		})
	}
	return json.Marshal(entries)
}

func decodeScopeAttributes(data []byte) ([]*Attribute, error) {
	var entries []scopeCacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	attributes := make([]*Attribute, 0, len(entries))
	for _, entry := range entries {
		attributes = append(attributes, &Attribute{
			ID:            entry.ID,
			Name:          entry.Name,
			Slug:          entry.Slug,
			InputType:     entry.InputType,
			EntityType:    entry.EntityType,
			ValueRequired: entry.ValueRequired,
		})
	}
	return attributes, nil
}
