package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mkotov/go-chat-bridge/internal/adapter"
	"github.com/mkotov/go-chat-bridge/internal/bridge"
	"github.com/mkotov/go-chat-bridge/internal/logger"
	"github.com/mkotov/go-chat-bridge/internal/store"
	"github.com/mkotov/go-chat-bridge/models"
)

// cachedListLimit bounds how many cached conversations a single update carries.
const cachedListLimit = 200

type sessionService struct {
	adapter adapter.BridgeAdapter
	cache   store.ConversationCache
	tasks   *bridge.Bridge
	logger  *logger.Logger
}

func NewSessionService(bridgeAdapter adapter.BridgeAdapter, cache store.ConversationCache, tasks *bridge.Bridge, log *logger.Logger) SessionService {
	child := log.GetChildLogger()
	child.UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("component", "service")
	})

	return &sessionService{
		adapter: bridgeAdapter,
		cache:   cache,
		tasks:   tasks,
		logger:  child,
	}
}

func (s *sessionService) Connect(ctx context.Context, creds models.SessionCredentials) string {
	return s.tasks.Schedule(ctx, func(taskCtx context.Context) (any, error) {
		status, err := s.adapter.Ping(taskCtx, creds.BaseURL, creds.Token, creds.Password)
		if err != nil {
			return ConnectUpdate{Err: fmt.Errorf("probe server: %w", err)}, nil
		}

		update := ConnectUpdate{Status: status}
		if creds.Password != "" && creds.Token == "" {
			token, tokenErr := s.adapter.ObtainToken(taskCtx, creds.BaseURL, creds.Password)
			if tokenErr != nil {
				s.logger.Warn().Err(tokenErr).Msg("token exchange failed")
			} else {
				update.Token = token
			}
		}
		return update, nil
	})
}

func (s *sessionService) LoadConversations(ctx context.Context, creds models.SessionCredentials) string {
	cached, cacheErr := s.cache.ListCached(ctx, cachedListLimit)
	if cacheErr != nil {
		s.logger.Warn().Err(cacheErr).Msg("read cached conversations")
	} else if len(cached) > 0 {
		s.tasks.Deliver(ConversationsUpdate{Conversations: cached, Provisional: true}, nil)
	}

	return s.tasks.Schedule(ctx, func(taskCtx context.Context) (any, error) {
		conversations, raws, err := s.adapter.Conversations(taskCtx, creds.BaseURL, creds.Password)
		if err != nil {
			return ConversationsUpdate{Err: fmt.Errorf("fetch conversations: %w", err)}, nil
		}

		if err = s.cache.UpsertBatch(taskCtx, conversations, raws); err != nil {
			// the fetched list is still usable, surface the write failure separately
			return ConversationsUpdate{
				Conversations: conversations,
				StorageErr:    fmt.Errorf("persist conversations: %w", err),
			}, nil
		}

		reconciled, err := s.cache.ListCached(taskCtx, cachedListLimit)
		if err != nil {
			return ConversationsUpdate{
				Conversations: conversations,
				StorageErr:    fmt.Errorf("reread persisted conversations: %w", err),
			}, nil
		}
		return ConversationsUpdate{Conversations: reconciled}, nil
	})
}

func (s *sessionService) LoadContacts(ctx context.Context, creds models.SessionCredentials) string {
	return s.tasks.Schedule(ctx, func(taskCtx context.Context) (any, error) {
		contacts, err := s.adapter.Contacts(taskCtx, creds.BaseURL, creds.Password)
		if err != nil {
			return ContactsUpdate{Err: fmt.Errorf("fetch contacts: %w", err)}, nil
		}
		return ContactsUpdate{Contacts: contacts}, nil
	})
}

func (s *sessionService) CreateConversation(ctx context.Context, creds models.SessionCredentials, addresses []string, message string) string {
	return s.tasks.Schedule(ctx, func(taskCtx context.Context) (any, error) {
		conversation, err := s.adapter.CreateChat(taskCtx, creds.BaseURL, creds.Password, addresses, message)
		if err != nil {
			return ChatCreatedUpdate{Err: fmt.Errorf("create chat: %w", err)}, nil
		}

		if err = s.cache.UpsertBatch(taskCtx, []models.Conversation{conversation}, nil); err != nil {
			return ChatCreatedUpdate{
				Conversation: conversation,
				StorageErr:   fmt.Errorf("persist created chat: %w", err),
			}, nil
		}

		// the chat exists remotely either way, so a failed republish only
		// degrades the update, it does not revoke the creation
		if reconciled, listErr := s.cache.ListCached(taskCtx, cachedListLimit); listErr != nil {
			s.logger.Warn().Err(listErr).Msg("reread cache after chat creation")
		} else {
			s.tasks.Deliver(ConversationsUpdate{Conversations: reconciled}, nil)
		}

		return ChatCreatedUpdate{Conversation: conversation}, nil
	})
}
