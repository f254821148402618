package edit

import (
	"errors"
	"testing"
)

func runWrite(t *testing.T, src string, cmd *Command) (string, *Session) {
	t.Helper()
	sess, err := Run([]byte(src), cmd, nil)
	if err != nil {
		t.Fatalf("run %s %q: %v", cmd.Op, cmd.Target, err)
	}
	return string(sess.Doc.Bytes()), sess
}

func TestModify(t *testing.T) {
	src := `[{listen, "0.0.0.0", 8080}].` + "\n"
	got, sess := runWrite(t, src, &Command{
		Op: Modify, Target: "listen", Args: []string{Skip, "9090"},
	})
	want := `[{listen, "0.0.0.0", 9090}].` + "\n"
	if got != want {
		t.Errorf("modify: got %q, want %q", got, want)
	}
	if !sess.Dirty {
		t.Error("modify must dirty the document")
	}
}

func TestModifySkipOnly(t *testing.T) {
	src := "{a, 1}.\n"
	got, sess := runWrite(t, src, &Command{Op: Modify, Target: "a", Args: []string{Skip}})
	if got != src {
		t.Errorf("skip-only modify changed the document: %q", got)
	}
	if sess.Dirty {
		t.Error("skip-only modify must not dirty the document")
	}
}

func TestModifyTypeMismatch(t *testing.T) {
	src := `[{listen, "0.0.0.0", 8080}].` + "\n"
	_, err := Run([]byte(src), &Command{
		Op: Modify, Target: "listen", Args: []string{"localhost"},
	}, nil)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}
	var tm *TypeMismatchError
	if !errors.As(err, &tm) || tm.Arg != "localhost" {
		t.Errorf("missing argument in %v", err)
	}
}

func TestModifyForce(t *testing.T) {
	src := `[{listen, "0.0.0.0", 8080}].` + "\n"
	got, sess := runWrite(t, src, &Command{
		Op: Modify, Target: "listen", Args: []string{"localhost"}, Force: true,
	})
	want := `[{listen, localhost, 8080}].` + "\n"
	if got != want {
		t.Errorf("modify -force: got %q, want %q", got, want)
	}
	if len(sess.Warnings) != 1 || sess.Warnings[0].Category != "TYPE" {
		t.Errorf("expected one TYPE warning, got %v", sess.Warnings)
	}
}

func TestModifyNonEndpoint(t *testing.T) {
	_, err := Run([]byte(kernelSrc), &Command{
		Op: Modify, Target: "kernel", Args: []string{"1"},
	}, nil)
	if !errors.Is(err, ErrMissingTarget) {
		t.Errorf("got %v, want ErrMissingTarget", err)
	}
}

func TestModifyTooManyValues(t *testing.T) {
	_, err := Run([]byte("{a, 1}.\n"), &Command{
		Op: Modify, Target: "a", Args: []string{"1", "2"},
	}, nil)
	if !errors.Is(err, ErrBadArg) {
		t.Errorf("got %v, want ErrBadArg", err)
	}
}
