package bind

import (
	"reflect"
	"sort"
	"testing"
)

func TestDiffListenersBothEmpty(t *testing.T) {
	missing, added := diffListeners(nil, nil)
	if len(missing) != 0 || len(added) != 0 {
		t.Errorf("diff(nil, nil) = %v, %v, want empty, empty", missing, added)
	}
}

func TestDiffListenersIdentical(t *testing.T) {
	old := []string{"a", "b", "c"}
	missing, added := diffListeners(old, []string{"a", "b", "c"})
	if len(missing) != 0 {
		t.Errorf("missing = %v, want empty", missing)
	}
	if len(added) != 0 {
		t.Errorf("added = %v, want empty", added)
	}
}

func TestDiffListenersOverlap(t *testing.T) {
	missing, added := diffListeners([]string{"a", "b"}, []string{"b", "c"})
	if !reflect.DeepEqual(missing, []string{"a"}) {
		t.Errorf("missing = %v, want [a]", missing)
	}
	if !reflect.DeepEqual(added, []string{"c"}) {
		t.Errorf("added = %v, want [c]", added)
	}
}

func TestDiffListenersDisjoint(t *testing.T) {
	missing, added := diffListeners([]string{"a", "b"}, []string{"x", "y"})
	if !reflect.DeepEqual(missing, []string{"a", "b"}) {
		t.Errorf("missing = %v, want [a b]", missing)
	}
	if !reflect.DeepEqual(added, []string{"x", "y"}) {
		t.Errorf("added = %v, want [x y]", added)
	}
}

func TestDiffListenersMissingPreservesOldOrder(t *testing.T) {
	missing, _ := diffListeners([]string{"c", "a", "b"}, []string{"a"})
	if !reflect.DeepEqual(missing, []string{"c", "b"}) {
		t.Errorf("missing = %v, want [c b]", missing)
	}
}

func TestDiffListenersDuplicatesTreatedAsSets(t *testing.T) {
	// A still-wanted event duplicated in the old list must not be
	// unregistered, and a duplicated new event must register once.
	missing, added := diffListeners([]string{"a", "a", "b"}, []string{"a", "c", "c"})
	if !reflect.DeepEqual(missing, []string{"b"}) {
		t.Errorf("missing = %v, want [b]", missing)
	}
	if !reflect.DeepEqual(added, []string{"c"}) {
		t.Errorf("added = %v, want [c]", added)
	}
}

// Applying the diff to a registered set must always yield exactly the set of
// the new list.
func TestDiffListenersReconcilesToNewSet(t *testing.T) {
	cases := []struct {
		name string
		old  []string
		new  []string
	}{
		{"grow", nil, []string{"a", "b"}},
		{"shrink", []string{"a", "b"}, nil},
		{"rotate", []string{"a", "b"}, []string{"b", "c"}},
		{"dups", []string{"a", "a", "b", "b"}, []string{"b", "c", "b"}},
		{"reorder", []string{"a", "b", "c"}, []string{"c", "b", "a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registered := make(map[string]bool)
			for _, e := range tc.old {
				registered[e] = true
			}

			missing, added := diffListeners(tc.old, tc.new)
			for _, e := range missing {
				delete(registered, e)
			}
			for _, e := range added {
				registered[e] = true
			}

			var got []string
			for e := range registered {
				got = append(got, e)
			}
			sort.Strings(got)

			want := make(map[string]bool)
			for _, e := range tc.new {
				want[e] = true
			}
			var wantList []string
			for e := range want {
				wantList = append(wantList, e)
			}
			sort.Strings(wantList)

			if !reflect.DeepEqual(got, wantList) {
				t.Errorf("final set = %v, want %v", got, wantList)
			}
		})
	}
}
