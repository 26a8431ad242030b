package entity

import (
	"reflect"
	"testing"

	"spacemax-td/internal/component"
	"spacemax-td/internal/types"
)

func TestStoreKeepsInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	a, b, c := 1, 2, 3
	s.Add(30, &a)
	s.Add(10, &b)
	s.Add(20, &c)
	d := 4
	s.Add(10, &d) // replace keeps the slot

	if got, want := s.IDs(), []types.EntityID{30, 10, 20}; !reflect.DeepEqual(got, want) {
		t.Fatalf("IDs = %v, want %v", got, want)
	}
	if v, _ := s.Get(10); *v != 4 {
		t.Errorf("replaced value = %d, want 4", *v)
	}

	if !s.Remove(10) || s.Remove(10) {
		t.Error("Remove should succeed once")
	}
	if got, want := s.IDs(), []types.EntityID{30, 20}; !reflect.DeepEqual(got, want) {
		t.Errorf("IDs after remove = %v, want %v", got, want)
	}
}

func TestStoreEachToleratesRemoval(t *testing.T) {
	s := NewStore[int]()
	for i := 1; i <= 4; i++ {
		v := i
		s.Add(types.EntityID(i), &v)
	}
	var visited []types.EntityID
	s.Each(func(id types.EntityID, _ *int) {
		visited = append(visited, id)
		if id == 1 {
			s.Remove(3) // not yet visited
		}
	})
	if want := []types.EntityID{1, 2, 4}; !reflect.DeepEqual(visited, want) {
		t.Errorf("visited %v, want %v", visited, want)
	}
}

func TestStoreFirst(t *testing.T) {
	s := NewStore[int]()
	for i := 1; i <= 5; i++ {
		v := i * 10
		s.Add(types.EntityID(i), &v)
	}
	id, v, ok := s.First(func(_ types.EntityID, v *int) bool { return *v > 25 })
	if !ok || id != 3 || *v != 30 {
		t.Errorf("First = %d, %v, %v", id, v, ok)
	}
	if _, _, ok := s.First(func(types.EntityID, *int) bool { return false }); ok {
		t.Error("First matched nothing but reported ok")
	}
	s.Clear()
	if s.Len() != 0 || s.Has(1) {
		t.Error("Clear left entries behind")
	}
}

func TestECSIDsAreNeverReused(t *testing.T) {
	ecs := NewECS()
	first := ecs.AddEnemy(component.Position{}, &component.Enemy{HP: 10, MaxHP: 10})
	if !ecs.RemoveEnemy(first) {
		t.Fatal("RemoveEnemy failed")
	}
	if ecs.RemoveEnemy(first) {
		t.Error("second RemoveEnemy reported success")
	}
	second := ecs.AddEnemy(component.Position{}, &component.Enemy{HP: 10, MaxHP: 10})
	if second == first || second == types.NoEntity {
		t.Errorf("got ID %d after removing %d", second, first)
	}
	if _, ok := ecs.Positions[first]; ok {
		t.Error("position of removed enemy kept")
	}
}

func TestLiveEnemy(t *testing.T) {
	ecs := NewECS()
	id := ecs.AddEnemy(component.Position{X: 4}, &component.Enemy{HP: 10, MaxHP: 10})

	enemy, pos, ok := ecs.LiveEnemy(id)
	if !ok || enemy.HP != 10 || pos.X != 4 {
		t.Fatalf("LiveEnemy = %+v, %+v, %v", enemy, pos, ok)
	}
	enemy.HP = 0
	if _, _, ok := ecs.LiveEnemy(id); ok {
		t.Error("dead enemy resolved")
	}
	if _, _, ok := ecs.LiveEnemy(12345); ok {
		t.Error("unknown ID resolved")
	}
}
