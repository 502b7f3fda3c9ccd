package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(reader, "Say something", &out)
	if err != nil {
		t.Fatalf("GetSimpleText err: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Say something") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(reader, "p", &out)
	if err != nil {
		t.Fatalf("GetSimpleText err: %v", err)
	}
	if got != "no newline" {
		t.Fatalf("got %q", got)
	}
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := GetTextWithDefault(bufio.NewReader(strings.NewReader("\n")), "Name", "kept", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "kept" {
		t.Fatalf("blank input should keep default, got %q", got)
	}

	got, err = GetTextWithDefault(bufio.NewReader(strings.NewReader("replaced\n")), "Name", "kept", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "replaced" {
		t.Fatalf("got %q", got)
	}
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n"))

	got, err := GetMultiline(reader, "Instructions", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "line one\nline two" {
		t.Fatalf("got %q", got)
	}
}

func TestGetIngredients(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("beef\ncarrots\n\n"))

	got, err := GetIngredients(reader, nil, &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 || got[0] != "beef" || got[1] != "carrots" {
		t.Fatalf("got %v", got)
	}
}

func TestGetIngredients_BlankKeepsInitial(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("\n"))

	got, err := GetIngredients(reader, []string{"beef"}, &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 1 || got[0] != "beef" {
		t.Fatalf("initial list not kept: %v", got)
	}
	if !strings.Contains(out.String(), "beef") {
		t.Fatalf("initial list not shown: %q", out.String())
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("sekret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "sekret" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}
