package queue

import (
	"fmt"
	"testing"

	. "github.com/ava12/cfg/internal/test"
)

func TestCapFor(t *testing.T) {
	for i := 0; i <= 33; i++ {
		name := fmt.Sprintf("%d elements", i)
		t.Run(name, func(t *testing.T) {
			c := capFor(i)
			Assert(t, c >= minCap, "expecting at least %d, got %d", minCap, c)
			Assert(t, c&(c-1) == 0, "expecting 2^n, got %b", c)
			Assert(t, c >= i, "expecting cap >= %d, got %d", i, c)
			if c > minCap {
				Assert(t, (c>>1) < i, "expecting cap/2 < %d, got cap %d", i, c)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	q := New[int]()
	ExpectInt(t, minCap, len(q.items))
	ExpectBool(t, true, q.IsEmpty())
	ExpectInt(t, 0, q.Len())

	i, f := q.First()
	ExpectInt(t, 0, i)
	ExpectBool(t, false, f)
}

func TestPrefilled(t *testing.T) {
	q := New(1, 2, 3, 4, 5)
	ExpectInt(t, minCap<<1, len(q.items))
	ExpectInt(t, 5, q.Len())
	for want := 1; want <= 5; want++ {
		got, f := q.First()
		ExpectBool(t, true, f)
		ExpectInt(t, want, got)
	}
	ExpectBool(t, true, q.IsEmpty())
}

func TestWrapAround(t *testing.T) {
	q := New[int]()
	for i := 0; i < minCap; i++ {
		q.Append(i)
	}
	q.First()
	q.First()
	q.Append(10).Append(11)
	ExpectInt(t, minCap, len(q.items))
	ExpectInt(t, 2, q.head)

	got := q.Items()
	want := []int{2, 3, 10, 11}
	ExpectInt(t, len(want), len(got))
	for i := range want {
		ExpectInt(t, want[i], got[i])
	}
}

func TestGrow(t *testing.T) {
	q := New[int]()
	for i := 0; i < minCap; i++ {
		q.Append(i)
	}
	q.First()
	q.Append(minCap)
	q.Append(minCap + 1)
	ExpectInt(t, minCap<<1, len(q.items))
	ExpectInt(t, 0, q.head)

	for want := 1; want <= minCap+1; want++ {
		got, f := q.First()
		ExpectBool(t, true, f)
		ExpectInt(t, want, got)
	}
	ExpectBool(t, true, q.IsEmpty())
}

func TestFifoOrder(t *testing.T) {
	q := New[string]()
	next := 0
	for round := 0; round < 100; round++ {
		q.Append(fmt.Sprint(round))
		if round%3 == 2 {
			s, _ := q.First()
			ExpectString(t, fmt.Sprint(next), s)
			next++
		}
	}
	ExpectInt(t, 100-next, q.Len())
	for !q.IsEmpty() {
		s, _ := q.First()
		ExpectString(t, fmt.Sprint(next), s)
		next++
	}
	ExpectInt(t, 100, next)
}
