package asserts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type celsius float64

type bag struct {
	items []string
}

func TestStrictEqual(t *testing.T) {
	fn := func() {}
	ch := make(chan int)
	items := []string{"a"}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"ints", 3, 3, true},
		{"named vs underlying", celsius(1), 1.0, false},
		{"same named", celsius(1), celsius(1), true},
		{"empty strings", "", "", true},
		{"false vs zero", false, 0, false},
		{"nil vs nil", nil, nil, true},
		{"nil vs empty string", nil, "", false},
		{"nil slices", []int(nil), []int(nil), true},
		{"nil vs empty slice", []int(nil), []int{}, false},
		{"distinct empty slices share the zero base", []int{}, make([]int, 0), true},
		{"same func", fn, fn, true},
		{"same chan", ch, ch, true},
		{"distinct chans", ch, make(chan int), false},
		{"arrays", [2]int{1, 2}, [2]int{1, 2}, true},
		{"struct with slice deep equal", bag{items: []string{"a"}}, bag{items: []string{"a"}}, true},
		{"struct with slice differs", bag{items: items}, bag{items: []string{"b"}}, false},
		{"interface holding non-comparable", any([]any{items}), any([]any{items}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strictEqual(tt.a, tt.b))
			assert.Equal(t, tt.want, strictEqual(tt.b, tt.a))
		})
	}
}

func TestAssertMessage(t *testing.T) {
	assert.Equal(t, "Assertion failed", assertMessage(nil))
	assert.Equal(t, "Assertion failed: a b", assertMessage([]string{"a", "b"}))
}

func TestRun_ConvertsPanics(t *testing.T) {
	err := run(func() error { panic(7) })

	pe, ok := err.(*PanicError)
	assert.True(t, ok)
	assert.Equal(t, 7, pe.Value)

	assert.NoError(t, run(func() error { return nil }))
}
