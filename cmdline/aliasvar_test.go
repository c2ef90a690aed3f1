package cmdline

import (
	"reflect"
	"testing"
)

func TestNameValueTableSetGetDelete(t *testing.T) {
	tbl := newNameValueTable()
	tbl.Set("a", "1")
	tbl.Set("b", "2")

	if v, ok := tbl.Get("a"); !ok || v != "1" {
		t.Fatalf("Get(a) = (%q, %v), want (1, true)", v, ok)
	}

	tbl.Delete("a")
	if _, ok := tbl.Get("a"); ok {
		t.Fatalf("a should be gone after Delete")
	}
	if !reflect.DeepEqual(tbl.Names(), []string{"b"}) {
		t.Fatalf("Names() = %#v, want [b]", tbl.Names())
	}
}

func TestNameValueTablePreservesInsertionOrder(t *testing.T) {
	tbl := newNameValueTable()
	tbl.Set("z", "1")
	tbl.Set("a", "2")
	tbl.Set("m", "3")
	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(tbl.Names(), want) {
		t.Fatalf("Names() = %#v, want %#v", tbl.Names(), want)
	}
}

func TestNameValueTableSetExistingDoesNotReorder(t *testing.T) {
	tbl := newNameValueTable()
	tbl.Set("a", "1")
	tbl.Set("b", "2")
	tbl.Set("a", "updated")
	want := []string{"a", "b"}
	if !reflect.DeepEqual(tbl.Names(), want) {
		t.Fatalf("Names() = %#v, want %#v", tbl.Names(), want)
	}
	if v, _ := tbl.Get("a"); v != "updated" {
		t.Fatalf("Get(a) = %q, want %q", v, "updated")
	}
}

func TestNameValueTableDeleteUnknownIsNoop(t *testing.T) {
	tbl := newNameValueTable()
	tbl.Delete("nope") // must not panic
}

func TestNameValueTableReset(t *testing.T) {
	tbl := newNameValueTable()
	tbl.Set("a", "1")
	tbl.Reset()
	if len(tbl.Names()) != 0 {
		t.Fatalf("Names() after Reset = %#v, want empty", tbl.Names())
	}
}
