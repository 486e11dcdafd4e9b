package dispatch

import (
	"testing"
)

func TestRegistry_InsertLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	conn := &fakeConn{hostID: []byte{1}}

	if _, ok := r.Lookup([]byte{0xaa}); ok {
		t.Error("Lookup() on empty registry found an entry")
	}

	r.Insert([]byte{0xaa}, conn)
	got, ok := r.Lookup([]byte{0xaa})
	if !ok {
		t.Fatal("Lookup() did not find inserted entry")
	}
	if got != conn {
		t.Error("Lookup() returned a different connection")
	}
}

func TestRegistry_ManyIDsOneConn(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	conn := &fakeConn{hostID: []byte{1}}

	ids := [][]byte{{0x01}, {0x02, 0x03}, {0x04, 0x05, 0x06}}
	for _, id := range ids {
		r.Insert(id, conn)
	}

	if r.Len() != len(ids) {
		t.Errorf("Len() = %d; want %d", r.Len(), len(ids))
	}

	for _, id := range ids {
		got, ok := r.Lookup(id)
		if !ok || got != conn {
			t.Errorf("Lookup(%x) = %v, %v; want the shared connection", id, got, ok)
		}
	}
}

func TestRegistry_Remove(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	conn := &fakeConn{hostID: []byte{1}}
	r.Insert([]byte{0xaa}, conn)

	if err := r.Remove([]byte{0xaa}); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok := r.Lookup([]byte{0xaa}); ok {
		t.Error("Lookup() found entry after Remove()")
	}
}

func TestRegistry_RemoveAbsent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	if err := r.Remove([]byte{0xbb}); err == nil {
		t.Error("Remove() of absent id returned nil; want error")
	}
}

func TestRegistry_RemoveConn(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	conn := &fakeConn{hostID: []byte{1}}
	other := &fakeConn{hostID: []byte{2}}

	r.Insert([]byte{0x01}, conn)
	r.Insert([]byte{0x02}, conn)
	r.Insert([]byte{0x03}, other)

	if removed := r.RemoveConn(conn); removed != 2 {
		t.Errorf("RemoveConn() = %d; want 2", removed)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d; want 1", r.Len())
	}
	if _, ok := r.Lookup([]byte{0x03}); !ok {
		t.Error("RemoveConn() removed an entry of another connection")
	}
}

func TestRegistry_InsertOverwrites(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	conn := &fakeConn{hostID: []byte{1}}

	r.Insert([]byte{0x01}, conn)
	r.Insert([]byte{0x01}, conn)

	if r.Len() != 1 {
		t.Errorf("Len() = %d; want 1 after duplicate insert", r.Len())
	}
}
