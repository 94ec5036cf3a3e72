package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "tuit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestPutAndGetText(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	added := time.Unix(1700000000, 0).UTC()
	if err := st.PutText(ctx, "sutta", "The Buddha's first teaching", added); err != nil {
		t.Fatalf("PutText: %v", err)
	}
	entry, err := st.GetText(ctx, "sutta")
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if entry.Name != "sutta" || entry.Body != "The Buddha's first teaching" {
		t.Fatalf("GetText = %+v", entry)
	}
	if !entry.AddedAt.Equal(added) {
		t.Fatalf("AddedAt = %v, want %v", entry.AddedAt, added)
	}
}

func TestPutTextReplaces(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.PutText(ctx, "a", "first", time.Now()); err != nil {
		t.Fatalf("PutText: %v", err)
	}
	if err := st.PutText(ctx, "a", "second", time.Now()); err != nil {
		t.Fatalf("PutText: %v", err)
	}
	entry, err := st.GetText(ctx, "a")
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if entry.Body != "second" {
		t.Fatalf("Body = %q, want %q", entry.Body, "second")
	}
}

func TestPutTextRejectsBlankName(t *testing.T) {
	st := openTestStore(t)
	if err := st.PutText(context.Background(), "  ", "body", time.Now()); err == nil {
		t.Fatalf("PutText accepted a blank name")
	}
}

func TestListTextsOrdered(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := st.PutText(ctx, name, name+" body", time.Now()); err != nil {
			t.Fatalf("PutText(%q): %v", name, err)
		}
	}
	entries, err := st.ListTexts(ctx)
	if err != nil {
		t.Fatalf("ListTexts: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(entries) != len(want) {
		t.Fatalf("ListTexts returned %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf("entry %d = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestMissingTextIsNotFound(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, err := st.GetText(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetText error = %v, want ErrNotFound", err)
	}
	if err := st.DeleteText(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteText error = %v, want ErrNotFound", err)
	}
}

func TestDeleteText(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.PutText(ctx, "gone", "body", time.Now()); err != nil {
		t.Fatalf("PutText: %v", err)
	}
	if err := st.DeleteText(ctx, "gone"); err != nil {
		t.Fatalf("DeleteText: %v", err)
	}
	if _, err := st.GetText(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetText after delete = %v, want ErrNotFound", err)
	}
}
