package random

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"
)

func TestUniformRange(t *testing.T) {
	src := NewSeeded(42)

	for range 100000 {
		v, err := Uniform(src, 0, 5)

		if err != nil {
			t.Fatal(err)
		}

		if v < 0 || v >= 5 {
			t.Fatalf("%v is out of [0, 5)", v)
		}
	}
}

func TestUniformEdges(t *testing.T) {
	v, err := Uniform(fixedSource(0), 0, 5)

	if err != nil {
		t.Fatal(err)
	}

	if v != 0 {
		t.Fatalf("expected 0, got %v", v)
	}

	v, err = Uniform(fixedSource(^uint64(0)), 0, 5)

	if err != nil {
		t.Fatal(err)
	}

	if v >= 5 {
		t.Fatalf("%v reached the upper bound", v)
	}

	v, err = Uniform(fixedSource(1<<63), 0, 5)

	if err != nil {
		t.Fatal(err)
	}

	if v != 2.5 {
		t.Fatalf("expected 2.5, got %v", v)
	}
}

func TestUniformInvalidRange(t *testing.T) {
	_, err := Uniform(NewSeeded(0), 5, 5)

	if err != ErrInvalidRange {
		t.Fatal("ErrInvalidRange should be returned")
	}
}

func TestEntropy(t *testing.T) {
	src := NewEntropy(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 1, 2}))

	v, err := src.Uint64()

	if err != nil {
		t.Fatal(err)
	}

	if v != 258 {
		t.Fatalf("expected 258, got %d", v)
	}

	_, err = src.Uint64()

	if !errors.Is(err, ErrSource) {
		t.Fatal("exhausted reader should cause ErrSource")
	}

	_, err = Float64(NewEntropy(iotest.ErrReader(errors.New("device is gone"))))

	if !errors.Is(err, ErrSource) {
		t.Fatal("broken reader should cause ErrSource")
	}
}

func TestCryptoSeeded(t *testing.T) {
	src, err := NewCryptoSeeded()

	if err != nil {
		t.Fatal(err)
	}

	if _, err = Float64(src); err != nil {
		t.Fatal(err)
	}

	if _, err = NewEntropy(nil).Uint64(); err != nil {
		t.Fatal(err)
	}
}
