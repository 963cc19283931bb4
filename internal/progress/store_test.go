// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package progress

import (
	"errors"
	"sort"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)

	p := New("u1")
	p.CompletedArticles = map[string]bool{"go-intro": true}
	p.TotalPoints = 150
	p.StreakDays = 3

	if err := s.Put(p); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get("u1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.UserID != "u1" || got.TotalPoints != 150 || got.StreakDays != 3 {
		t.Errorf("Get() = %+v, want stored fields back", got)
	}
	if !got.CompletedArticles["go-intro"] {
		t.Error("completed set lost in round trip")
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestStorePutValidation(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put(nil); err == nil {
		t.Error("Put(nil) = nil, want error")
	}
	if err := s.Put(&UserProgress{}); err == nil {
		t.Error("Put() without user id = nil, want error")
	}
}

func TestStorePutReplaces(t *testing.T) {
	s := newTestStore(t)

	p := New("u1")
	p.TotalPoints = 100
	if err := s.Put(p); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	p.TotalPoints = 250
	if err := s.Put(p); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get("u1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.TotalPoints != 250 {
		t.Errorf("TotalPoints = %d, want 250 after replace", got.TotalPoints)
	}
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put(New("u1")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.PutProfile("u1", map[string]string{"skill": "beginner"}); err != nil {
		t.Fatalf("PutProfile() error = %v", err)
	}

	if err := s.Delete("u1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := s.Get("u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete = %v, want ErrNotFound", err)
	}
	var dst map[string]string
	if err := s.GetProfile("u1", &dst); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetProfile() after delete = %v, want ErrNotFound", err)
	}

	// Deleting a missing record is not an error.
	if err := s.Delete("nobody"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestStoreListUsers(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"carol", "alice", "bob"} {
		if err := s.Put(New(id)); err != nil {
			t.Fatalf("Put(%q) error = %v", id, err)
		}
	}
	// Profile keys must not leak into the user listing.
	if err := s.PutProfile("alice", map[string]int{"points": 10}); err != nil {
		t.Fatalf("PutProfile() error = %v", err)
	}

	ids, err := s.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}

	sort.Strings(ids)
	want := []string{"alice", "bob", "carol"}
	if len(ids) != len(want) {
		t.Fatalf("ListUsers() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ListUsers()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestStoreProfileRoundTrip(t *testing.T) {
	s := newTestStore(t)

	type profile struct {
		Skill     string   `json:"skill"`
		Interests []string `json:"interests"`
	}

	in := profile{Skill: "intermediate", Interests: []string{"go", "web"}}
	if err := s.PutProfile("u1", in); err != nil {
		t.Fatalf("PutProfile() error = %v", err)
	}

	var out profile
	if err := s.GetProfile("u1", &out); err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if out.Skill != in.Skill || len(out.Interests) != 2 {
		t.Errorf("GetProfile() = %+v, want %+v", out, in)
	}

	if err := s.PutProfile("", in); err == nil {
		t.Error("PutProfile() without user id = nil, want error")
	}
}
