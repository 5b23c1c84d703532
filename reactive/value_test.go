package reactive

import "testing"

func TestValueGetSet(t *testing.T) {
	v := NewValue(1)

	if got := v.Get(); got != 1 {
		t.Errorf("Get() = %d, want 1", got)
	}

	v.Set(5)
	if got := v.Get(); got != 5 {
		t.Errorf("Get() after Set = %d, want 5", got)
	}
}

func TestValueUpdate(t *testing.T) {
	v := NewValue(10)
	v.Update(func(n int) int { return n * 2 })

	if got := v.Get(); got != 20 {
		t.Errorf("Get() after Update = %d, want 20", got)
	}
}

func TestValueSubscribeImmediate(t *testing.T) {
	v := NewValue("initial")

	var got []string
	v.Subscribe(func(s string) { got = append(got, s) })

	if len(got) != 1 || got[0] != "initial" {
		t.Fatalf("subscribe should deliver current value immediately, got %v", got)
	}

	v.Set("next")
	if len(got) != 2 || got[1] != "next" {
		t.Errorf("subscriber should observe Set, got %v", got)
	}
}

func TestValueSubscribeWithoutInitial(t *testing.T) {
	v := NewValue(1)

	var got []int
	v.Subscribe(func(n int) { got = append(got, n) }, WithoutInitial())

	if len(got) != 0 {
		t.Fatalf("WithoutInitial should suppress the immediate call, got %v", got)
	}

	v.Set(2)
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("subscriber should observe later sets, got %v", got)
	}
}

func TestValueObservesEveryChangeInOrder(t *testing.T) {
	v := NewValue(0)

	var got []int
	v.Subscribe(func(n int) { got = append(got, n) }, WithoutInitial())

	for i := 1; i <= 5; i++ {
		v.Set(i)
	}

	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestValueUnsubscribeIdempotent(t *testing.T) {
	v := NewValue(0)

	calls := 0
	unsub := v.Subscribe(func(int) { calls++ }, WithoutInitial())

	v.Set(1)
	unsub()
	unsub() // second call must be safe
	v.Set(2)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestValueUnsubscribeDoesNotAffectOthers(t *testing.T) {
	v := NewValue(0)

	var a, b int
	unsubA := v.Subscribe(func(int) { a++ }, WithoutInitial())
	v.Subscribe(func(int) { b++ }, WithoutInitial())

	v.Set(1)
	unsubA()
	v.Set(2)

	if a != 1 {
		t.Errorf("a = %d, want 1", a)
	}
	if b != 2 {
		t.Errorf("b = %d, want 2", b)
	}
}
