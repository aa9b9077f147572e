// Package assistant orchestrates one question/answer exchange: session
// lookup, history append, the model call, and answer shaping.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gen01-ai/interview-assistant/config"
	"github.com/gen01-ai/interview-assistant/internal/chat"
	"github.com/gen01-ai/interview-assistant/internal/cohere"
	"github.com/gen01-ai/interview-assistant/internal/format"
	"github.com/gen01-ai/interview-assistant/internal/session"
)

// ErrEmptyReply is returned when the model produced no answer text. The
// user's turn stays in history so the session still records that the
// question was asked; the message text is part of the wire contract.
var ErrEmptyReply = errors.New("Cohere API returned an empty response.")

// answerMarker is appended to every formatted answer.
const answerMarker = "\n\n🕒"

// ModelClient is the boundary to the hosted chat-completion API.
type ModelClient interface {
	Chat(ctx context.Context, turns []chat.Turn, opts cohere.ChatOptions) (*chat.Reply, error)
}

// Service processes user questions against per-user conversation memory.
type Service struct {
	store    *session.Store
	model    ModelClient
	opts     cohere.ChatOptions
	maxWords int
	logger   *zap.SugaredLogger
}

// NewService wires the session store and model client together.
func NewService(store *session.Store, model ModelClient, cfg *config.Config, logger *zap.SugaredLogger) *Service {
	maxWords := cfg.MaxAnswerWords
	if maxWords <= 0 {
		maxWords = format.DefaultMaxWords
	}

	return &Service{
		store: store,
		model: model,
		opts: cohere.ChatOptions{
			MaxTokens:   cfg.Cohere.MaxTokens,
			Temperature: cfg.Cohere.Temperature,
		},
		maxWords: maxWords,
		logger:   logger,
	}
}

// Result is a successful exchange.
type Result struct {
	Answer       string
	ResponseTime string
}

// ProcessText appends the question to the user's conversation, asks the
// model for an answer with the full history as context, and on success
// appends the formatted answer as well. The user's session lock is held
// for the whole exchange so concurrent requests for the same user never
// interleave their appends.
func (s *Service) ProcessText(ctx context.Context, userID, question string) (*Result, error) {
	sess := s.store.Acquire(userID)
	defer sess.Release()

	sess.Append(chat.Turn{Role: chat.RoleUser, Content: question})

	requestID := uuid.NewString()
	s.logger.Infow("sending request to cohere api",
		"request_id", requestID,
		"user_id", userID,
		"history_len", sess.Len(),
	)

	start := time.Now()
	reply, err := s.model.Chat(ctx, sess.Turns(), s.opts)
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Warnw("chat completion failed", "request_id", requestID, "error", err)
		return nil, err
	}

	answer := reply.Resolve()
	if answer == "" {
		s.logger.Warnw("chat completion was empty", "request_id", requestID)
		return nil, ErrEmptyReply
	}

	formatted := format.WithLimit(answer, s.maxWords) + answerMarker
	sess.Append(chat.Turn{Role: chat.RoleAssistant, Content: formatted})

	s.logger.Infow("chat completion succeeded",
		"request_id", requestID,
		"response_time", fmt.Sprintf("%.4f seconds", elapsed.Seconds()),
	)

	return &Result{
		Answer:       formatted,
		ResponseTime: fmt.Sprintf("%.4f seconds", elapsed.Seconds()),
	}, nil
}
