package storage

import (
	"bytes"
	"testing"
)

func TestLocalDiskRoundTrip(t *testing.T) {
	d := newLocalDiskAt(t.TempDir(), "http://localhost:8080/storage")

	path := "product-attachments/mouse.jpg"
	if err := d.Put(path, []byte("jpeg bytes")); err != nil {
		t.Fatal(err)
	}

	if !d.Exists(path) {
		t.Fatal("file should exist after Put")
	}
	if d.Missing(path) {
		t.Fatal("Missing should be false")
	}

	data, err := d.Get(path)
	if err != nil || !bytes.Equal(data, []byte("jpeg bytes")) {
		t.Fatalf("unexpected content %q err %v", data, err)
	}

	size, err := d.Size(path)
	if err != nil || size != int64(len("jpeg bytes")) {
		t.Fatalf("size %d err %v", size, err)
	}

	if got := d.URL(path); got != "http://localhost:8080/storage/product-attachments/mouse.jpg" {
		t.Fatalf("unexpected url %q", got)
	}

	files, err := d.Files("product-attachments")
	if err != nil || len(files) != 1 {
		t.Fatalf("files %v err %v", files, err)
	}

	if err := d.Delete(path); err != nil {
		t.Fatal(err)
	}
	if d.Exists(path) {
		t.Fatal("file should be gone after Delete")
	}
	// Deleting a missing file is not an error.
	if err := d.Delete(path); err != nil {
		t.Fatal(err)
	}
}

func TestPutStreamCreatesDirectories(t *testing.T) {
	d := newLocalDiskAt(t.TempDir(), "")

	if err := d.PutStream("a/b/c.txt", bytes.NewReader([]byte("x"))); err != nil {
		t.Fatal(err)
	}
	if !d.Exists("a/b/c.txt") {
		t.Fatal("nested path should exist")
	}
}
