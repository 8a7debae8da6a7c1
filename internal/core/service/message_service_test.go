package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/mercadillo/storefront/internal/core/domain"
)

type stubMessageRepo struct {
	messages []*domain.Message
}

func (r *stubMessageRepo) Insert(_ context.Context, message *domain.Message) (*domain.Message, error) {
	saved := *message
	r.messages = append(r.messages, &saved)
	return &saved, nil
}

func (r *stubMessageRepo) FindByParticipant(_ context.Context, username string) ([]*domain.Message, error) {
	var out []*domain.Message
	for _, m := range r.messages {
		if m.From == username || m.To == username {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	return out, nil
}

func (r *stubMessageRepo) PartnersOf(_ context.Context, usernames []string) ([]string, error) {
	given := make(map[string]struct{}, len(usernames))
	for _, u := range usernames {
		given[u] = struct{}{}
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if _, isGiven := given[name]; isGiven {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, m := range r.messages {
		if _, ok := given[m.To]; ok {
			add(m.From)
		}
		if _, ok := given[m.From]; ok {
			add(m.To)
		}
	}
	sort.Strings(out)
	return out, nil
}

func seedMessageUsers(t *testing.T, repo *stubUserRepo) {
	t.Helper()
	now := time.Now().UTC()
	for name, role := range map[string]string{
		"alice": domain.RoleStandard,
		"bob":   domain.RoleStandard,
		"root":  domain.RoleAdmin,
	} {
		if _, err := repo.Create(context.Background(), &domain.User{Username: name, Role: role, CreatedAt: now}); err != nil {
			t.Fatalf("seed user %s: %v", name, err)
		}
	}
}

func TestMessageService_SendAndHistory(t *testing.T) {
	users := newStubUserRepo()
	seedMessageUsers(t, users)
	svc := NewMessageService(&stubMessageRepo{}, users, testLogger())

	if _, err := svc.Send(context.Background(), "alice", "root", "help, my order is stuck"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.Send(context.Background(), "root", "alice", "looking into it"); err != nil {
		t.Fatalf("send reply: %v", err)
	}

	history, err := svc.History(context.Background(), "alice")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].From != "alice" || history[1].From != "root" {
		t.Fatalf("history out of order: %+v", history)
	}
}

func TestMessageService_Send_UnknownRecipient(t *testing.T) {
	users := newStubUserRepo()
	seedMessageUsers(t, users)
	svc := NewMessageService(&stubMessageRepo{}, users, testLogger())

	if _, err := svc.Send(context.Background(), "alice", "ghost", "anyone there?"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMessageService_Partners(t *testing.T) {
	users := newStubUserRepo()
	seedMessageUsers(t, users)
	svc := NewMessageService(&stubMessageRepo{}, users, testLogger())

	if _, err := svc.Send(context.Background(), "alice", "root", "hi"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.Send(context.Background(), "root", "bob", "checking in"); err != nil {
		t.Fatalf("send: %v", err)
	}
	// A user-to-user message must not show up in the support picker.
	if _, err := svc.Send(context.Background(), "alice", "bob", "offtopic"); err != nil {
		t.Fatalf("send: %v", err)
	}

	partners, err := svc.Partners(context.Background())
	if err != nil {
		t.Fatalf("partners: %v", err)
	}
	if len(partners) != 2 || partners[0] != "alice" || partners[1] != "bob" {
		t.Fatalf("unexpected partners: %v", partners)
	}
}

func TestMessageService_Partners_NoAdmins(t *testing.T) {
	users := newStubUserRepo()
	svc := NewMessageService(&stubMessageRepo{}, users, testLogger())

	partners, err := svc.Partners(context.Background())
	if err != nil {
		t.Fatalf("partners: %v", err)
	}
	if len(partners) != 0 {
		t.Fatalf("expected no partners, got %v", partners)
	}
}
