package event

import (
	"reflect"
	"testing"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) OnEvent(e Event) {
	*r.log = append(*r.log, r.name+":"+string(e.Type))
}

func TestDispatchOrder(t *testing.T) {
	var log []string
	d := NewDispatcher()
	all := &recorder{"all", &log}
	a := &recorder{"a", &log}
	b := &recorder{"b", &log}

	d.SubscribeAll(all)
	d.Subscribe(a, EnemyKilled, EnemyBreached)
	d.Subscribe(b, EnemyKilled)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: EnemyBreached})
	d.Dispatch(Event{Type: TowerPlaced})

	want := []string{
		"a:EnemyKilled", "b:EnemyKilled", "all:EnemyKilled",
		"a:EnemyBreached", "all:EnemyBreached",
		"all:TowerPlaced",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("log = %v\nwant  %v", log, want)
	}
}

func TestUnsubscribe(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{"a", &log}
	b := &recorder{"b", &log}
	d.Subscribe(a, EnemyKilled, GameOver)
	d.Subscribe(b, EnemyKilled)
	d.SubscribeAll(a)

	d.Unsubscribe(a, EnemyKilled)
	d.Dispatch(Event{Type: EnemyKilled})
	if want := []string{"b:EnemyKilled", "a:EnemyKilled"}; !reflect.DeepEqual(log, want) {
		t.Fatalf("after partial unsubscribe: %v, want %v", log, want)
	}

	log = nil
	d.Unsubscribe(a)
	d.Dispatch(Event{Type: GameOver})
	if len(log) != 0 {
		t.Errorf("fully unsubscribed listener still called: %v", log)
	}
}

type selfRemover struct {
	d     *Dispatcher
	calls int
}

func (s *selfRemover) OnEvent(Event) {
	s.calls++
	s.d.Unsubscribe(s)
}

func TestListenerMayUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var log []string
	s := &selfRemover{d: d}
	after := &recorder{"after", &log}
	d.Subscribe(s, Victory)
	d.Subscribe(after, Victory)

	d.Dispatch(Event{Type: Victory})
	d.Dispatch(Event{Type: Victory})
	if s.calls != 1 || len(log) != 2 {
		t.Errorf("self-remover called %d times, later listener %d times", s.calls, len(log))
	}
}
