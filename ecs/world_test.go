package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/tweens/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get[int](w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get[float64](w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove[float64](w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})
}

func TestForEach2(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[string]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, stringPtr("b")); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, stringPtr("c")); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, a *int, b *string) {
					if *a != 2 || *b != "b" {
						t.Fatalf("unexpected values %d %q", *a, *b)
					}
					res = append(res, e)
				})
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if res := Query(w, ka, kb); len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestStaleHandleAfterRecycle(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %s after %s", fresh, old)
	}
	if fresh == old {
		t.Fatalf("recycled entity kept its generation")
	}
	if Has(w, fresh, k) {
		t.Fatalf("recycled entity inherited a component")
	}
	if err := Add(w, old, k, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("add to stale handle err = %v", err)
	}
	if DestroyEntity(w, old) {
		t.Fatalf("destroying a stale handle should fail")
	}
}

func TestDestroyDuringForEach(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, k, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, k, func(e Entity, v *int) {
		visited++
		if *v%2 == 0 {
			DestroyEntity(w, e)
		}
	})
	if visited != 5 {
		t.Fatalf("visited %d entities, want 5", visited)
	}
	if n := len(Entities(w)); n != 2 {
		t.Fatalf("%d entities left, want 2", n)
	}
}

func TestFirstAndInPlaceMutation(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	if _, _, ok := First(w, k); ok {
		t.Fatalf("First on empty store should fail")
	}
	e := CreateEntity(w)
	if err := Add(w, e, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	_, v, ok := First(w, k)
	if !ok {
		t.Fatal("First failed")
	}
	*v = 7
	if got, _ := Get(w, e, k); *got != 7 {
		t.Fatalf("mutation through pointer lost, got %d", *got)
	}
}

func TestDestroyEntityClearsEveryStore(t *testing.T) {
	w := NewWorld()
	pos := component.NewComponentKind[int]()
	name := component.NewComponentKind[string]()

	keep := CreateEntity(w)
	gone := CreateEntity(w)
	for _, e := range []Entity{keep, gone} {
		if err := Add(w, e, pos, intPtr(int(e.id()))); err != nil {
			t.Fatal(err)
		}
		label := e.String()
		if err := Add(w, e, name, &label); err != nil {
			t.Fatal(err)
		}
	}

	if !DestroyEntity(w, gone) {
		t.Fatal("DestroyEntity returned false for a live entity")
	}
	for _, id := range []component.ComponentID{pos.ID(), name.ID()} {
		set := w.storage.set(id)
		if set.Has(gone) {
			t.Fatalf("store %d still holds %s", id, gone)
		}
		if set.Len() != 1 || !set.Has(keep) {
			t.Fatalf("store %d len = %d, want only %s", id, set.Len(), keep)
		}
	}
	if got := Query(w, pos, name); len(got) != 1 || got[0] != keep {
		t.Fatalf("Query = %v, want [%s]", got, keep)
	}
}

func TestEntitiesSlotOrder(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)
	DestroyEntity(w, b)

	if got := Entities(w); len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("Entities = %v, want [%s %s]", got, a, c)
	}

	d := CreateEntity(w)
	got := Entities(w)
	if len(got) != 3 || got[0] != a || got[1] != d || got[2] != c {
		t.Fatalf("Entities after recycle = %v, want [%s %s %s]", got, a, d, c)
	}
	if d.String() != "2v1" {
		t.Fatalf("recycled handle = %s, want 2v1", d)
	}
}
