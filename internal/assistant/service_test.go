package assistant

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/gen01-ai/interview-assistant/config"
	"github.com/gen01-ai/interview-assistant/internal/chat"
	"github.com/gen01-ai/interview-assistant/internal/cohere"
	"github.com/gen01-ai/interview-assistant/internal/session"
)

type fakeModel struct {
	mu       sync.Mutex
	reply    *chat.Reply
	err      error
	gotTurns [][]chat.Turn
	gotOpts  []cohere.ChatOptions
}

func (f *fakeModel) Chat(_ context.Context, turns []chat.Turn, opts cohere.ChatOptions) (*chat.Reply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := make([]chat.Turn, len(turns))
	copy(copied, turns)
	f.gotTurns = append(f.gotTurns, copied)
	f.gotOpts = append(f.gotOpts, opts)
	return f.reply, f.err
}

func newTestService(t *testing.T, model *fakeModel) (*Service, *session.Store) {
	t.Helper()
	store := session.NewStore()
	cfg := &config.Config{
		MaxAnswerWords: 2000,
		Cohere:         config.CohereConfig{MaxTokens: 1000, Temperature: 0.2},
	}
	return NewService(store, model, cfg, zap.NewNop().Sugar()), store
}

var responseTimePattern = regexp.MustCompile(`^\d+\.\d{4} seconds$`)

func TestProcessTextFirstCallSendsSeedPlusQuestion(t *testing.T) {
	model := &fakeModel{reply: &chat.Reply{Text: "fine."}}
	svc, _ := newTestService(t, model)

	if _, err := svc.ProcessText(context.Background(), "u1", "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seed := chat.SeedConversation()
	sent := model.gotTurns[0]
	if len(sent) != len(seed)+1 {
		t.Fatalf("expected seed plus one user turn, got %d turns", len(sent))
	}
	for i := range seed {
		if sent[i] != seed[i] {
			t.Fatalf("turn %d does not match the seed template", i)
		}
	}
	last := sent[len(sent)-1]
	if last.Role != chat.RoleUser || last.Content != "hi" {
		t.Fatalf("unexpected final turn: %+v", last)
	}

	if model.gotOpts[0].MaxTokens != 1000 || model.gotOpts[0].Temperature != 0.2 {
		t.Fatalf("unexpected chat options: %+v", model.gotOpts[0])
	}
}

func TestProcessTextSuccess(t *testing.T) {
	model := &fakeModel{reply: &chat.Reply{Text: "A B C"}}
	svc, store := newTestService(t, model)

	result, err := svc.ProcessText(context.Background(), "u1", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "### Answer:\nA B C\n\n🕒"
	if result.Answer != want {
		t.Fatalf("expected answer %q, got %q", want, result.Answer)
	}
	if !responseTimePattern.MatchString(result.ResponseTime) {
		t.Fatalf("unexpected response time format: %q", result.ResponseTime)
	}

	turns, _ := store.Snapshot("u1")
	if len(turns) != chat.SeedLen()+2 {
		t.Fatalf("expected two appended turns, got %d", len(turns)-chat.SeedLen())
	}
	if turns[len(turns)-2].Role != chat.RoleUser || turns[len(turns)-2].Content != "hi" {
		t.Fatalf("unexpected user turn: %+v", turns[len(turns)-2])
	}
	if turns[len(turns)-1].Role != chat.RoleAssistant || turns[len(turns)-1].Content != want {
		t.Fatalf("unexpected assistant turn: %+v", turns[len(turns)-1])
	}
}

func TestProcessTextJoinsSegments(t *testing.T) {
	model := &fakeModel{reply: &chat.Reply{Segments: []string{"A", "B", "C"}}}
	svc, _ := newTestService(t, model)

	result, err := svc.ProcessText(context.Background(), "u1", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Answer != "### Answer:\nA B C\n\n🕒" {
		t.Fatalf("unexpected answer: %q", result.Answer)
	}
}

func TestProcessTextSecondCallAppends(t *testing.T) {
	model := &fakeModel{reply: &chat.Reply{Text: "fine."}}
	svc, store := newTestService(t, model)

	if _, err := svc.ProcessText(context.Background(), "u1", "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ProcessText(context.Background(), "u1", "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// History never resets to the seed; the second call sees the first
	// exchange in its context.
	second := model.gotTurns[1]
	if len(second) != chat.SeedLen()+3 {
		t.Fatalf("expected seed plus three turns on the second call, got %d", len(second))
	}

	turns, _ := store.Snapshot("u1")
	if len(turns) != chat.SeedLen()+4 {
		t.Fatalf("expected four appended turns, got %d", len(turns)-chat.SeedLen())
	}
}

func TestProcessTextEmptyReplyKeepsUserTurn(t *testing.T) {
	model := &fakeModel{reply: &chat.Reply{Text: ""}}
	svc, store := newTestService(t, model)

	_, err := svc.ProcessText(context.Background(), "u1", "hi")
	if !errors.Is(err, ErrEmptyReply) {
		t.Fatalf("expected ErrEmptyReply, got %v", err)
	}

	turns, _ := store.Snapshot("u1")
	if len(turns) != chat.SeedLen()+1 {
		t.Fatalf("expected only the user turn appended, got %d extra", len(turns)-chat.SeedLen())
	}
	if turns[len(turns)-1].Role != chat.RoleUser {
		t.Fatalf("expected the user turn last, got %+v", turns[len(turns)-1])
	}
}

func TestProcessTextAdapterFailureKeepsUserTurn(t *testing.T) {
	upstream := errors.New("connection refused")
	model := &fakeModel{err: upstream}
	svc, store := newTestService(t, model)

	_, err := svc.ProcessText(context.Background(), "u1", "hi")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected the adapter error, got %v", err)
	}

	turns, _ := store.Snapshot("u1")
	if len(turns) != chat.SeedLen()+1 {
		t.Fatalf("expected only the user turn appended, got %d extra", len(turns)-chat.SeedLen())
	}
}

func TestProcessTextConcurrentSameUser(t *testing.T) {
	model := &fakeModel{reply: &chat.Reply{Text: "fine."}}
	svc, store := newTestService(t, model)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.ProcessText(context.Background(), "u1", "hi"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	turns, _ := store.Snapshot("u1")
	if len(turns) != chat.SeedLen()+4 {
		t.Fatalf("expected exactly four appended turns, got %d", len(turns)-chat.SeedLen())
	}
	appended := turns[chat.SeedLen():]
	for i := 0; i < len(appended); i += 2 {
		if appended[i].Role != chat.RoleUser || appended[i+1].Role != chat.RoleAssistant {
			t.Fatalf("appends interleaved: %+v", appended)
		}
	}
}
