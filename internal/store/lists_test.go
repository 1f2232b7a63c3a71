// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/platepick/internal/models"
)

func TestStore_SaveList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.SaveList(ctx, "u1", models.UserList{Name: "Date night", RestaurantIDs: []string{"r1", "r2", "r1"}})
	if err != nil {
		t.Fatalf("SaveList() error = %v", err)
	}

	t.Run("new list gets id and creation time", func(t *testing.T) {
		if created.ID == "" {
			t.Error("expected generated id")
		}
		if created.CreatedAt == 0 {
			t.Error("expected CreatedAt")
		}
	})

	t.Run("duplicate restaurant ids dropped", func(t *testing.T) {
		if want := []string{"r1", "r2"}; !reflect.DeepEqual(created.RestaurantIDs, want) {
			t.Errorf("RestaurantIDs = %v, want %v", created.RestaurantIDs, want)
		}
	})

	t.Run("saving same id replaces in place", func(t *testing.T) {
		if _, err := s.SaveList(ctx, "u1", models.UserList{Name: "Second"}); err != nil {
			t.Fatal(err)
		}

		renamed := created
		renamed.Name = "Anniversary"
		if _, err := s.SaveList(ctx, "u1", renamed); err != nil {
			t.Fatal(err)
		}

		lists := s.GetLists(ctx, "u1")
		if len(lists) != 2 {
			t.Fatalf("len(lists) = %d, want 2", len(lists))
		}
		if lists[0].ID != created.ID || lists[0].Name != "Anniversary" {
			t.Errorf("lists[0] = %+v, want renamed first list", lists[0])
		}
		if lists[0].CreatedAt != created.CreatedAt {
			t.Error("CreatedAt changed on update")
		}
	})
}

func TestStore_GetList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	list, err := s.SaveList(ctx, "u1", models.UserList{Name: "Brunch"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.GetList(ctx, "u1", list.ID)
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if got.Name != "Brunch" {
		t.Errorf("Name = %q, want Brunch", got.Name)
	}

	if _, err := s.GetList(ctx, "u1", "missing"); !errors.Is(err, ErrListNotFound) {
		t.Errorf("GetList(missing) error = %v, want ErrListNotFound", err)
	}
	if _, err := s.GetList(ctx, "u2", list.ID); !errors.Is(err, ErrListNotFound) {
		t.Errorf("GetList(other user) error = %v, want ErrListNotFound", err)
	}
}

func TestStore_DeleteList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, _ := s.SaveList(ctx, "u1", models.UserList{Name: "A"})
	b, _ := s.SaveList(ctx, "u1", models.UserList{Name: "B"})

	if err := s.DeleteList(ctx, "u1", a.ID); err != nil {
		t.Fatalf("DeleteList() error = %v", err)
	}

	lists := s.GetLists(ctx, "u1")
	if len(lists) != 1 || lists[0].ID != b.ID {
		t.Errorf("GetLists() = %+v, want only B", lists)
	}

	if err := s.DeleteList(ctx, "u1", a.ID); !errors.Is(err, ErrListNotFound) {
		t.Errorf("second DeleteList() error = %v, want ErrListNotFound", err)
	}
}

func TestStore_AddRestaurantToList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	list, err := s.SaveList(ctx, "u1", models.UserList{Name: "Tacos"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		restaurantID string
		want         []string
	}{
		{"add first", "r1", []string{"r1"}},
		{"add second", "r2", []string{"r1", "r2"}},
		{"add duplicate is idempotent", "r1", []string{"r1", "r2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.AddRestaurantToList(ctx, "u1", list.ID, tt.restaurantID)
			if err != nil {
				t.Fatalf("AddRestaurantToList() error = %v", err)
			}
			if !reflect.DeepEqual(got.RestaurantIDs, tt.want) {
				t.Errorf("RestaurantIDs = %v, want %v", got.RestaurantIDs, tt.want)
			}
			stored, _ := s.GetList(ctx, "u1", list.ID)
			if !reflect.DeepEqual(stored.RestaurantIDs, tt.want) {
				t.Errorf("stored RestaurantIDs = %v, want %v", stored.RestaurantIDs, tt.want)
			}
		})
	}

	if _, err := s.AddRestaurantToList(ctx, "u1", "missing", "r1"); !errors.Is(err, ErrListNotFound) {
		t.Errorf("AddRestaurantToList(missing) error = %v, want ErrListNotFound", err)
	}
}

func TestStore_RemoveRestaurantFromList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	list, err := s.SaveList(ctx, "u1", models.UserList{Name: "Ramen", RestaurantIDs: []string{"r1", "r2", "r3"}})
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.RemoveRestaurantFromList(ctx, "u1", list.ID, "r2")
	if err != nil {
		t.Fatalf("RemoveRestaurantFromList() error = %v", err)
	}
	if want := []string{"r1", "r3"}; !reflect.DeepEqual(got.RestaurantIDs, want) {
		t.Errorf("RestaurantIDs = %v, want %v", got.RestaurantIDs, want)
	}

	// Removing an absent id is a no-op.
	got, err = s.RemoveRestaurantFromList(ctx, "u1", list.ID, "r9")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.RestaurantIDs) != 2 {
		t.Errorf("RestaurantIDs = %v, want 2 entries", got.RestaurantIDs)
	}

	for _, id := range []string{"r1", "r3"} {
		if got, err = s.RemoveRestaurantFromList(ctx, "u1", list.ID, id); err != nil {
			t.Fatal(err)
		}
	}
	if got.RestaurantIDs == nil || len(got.RestaurantIDs) != 0 {
		t.Errorf("RestaurantIDs = %v, want empty non-nil slice", got.RestaurantIDs)
	}

	if _, err := s.RemoveRestaurantFromList(ctx, "u1", "missing", "r1"); !errors.Is(err, ErrListNotFound) {
		t.Errorf("RemoveRestaurantFromList(missing) error = %v, want ErrListNotFound", err)
	}
}
