package cssmatrix

import (
	"errors"
	"testing"
)

func TestIsInvalidArgument(t *testing.T) {
	err := errors.New("some error")
	if IsInvalidArgument(err) {
		t.Log("custom error type InvalidArgument is wrongly recognized")
		t.Fail()
	}

	err = NewInvalidArgument("bad value %v", 3)
	if !IsInvalidArgument(err) {
		t.Log("custom error type InvalidArgument is not recognized")
		t.Fail()
	}

	if err.Error() != "bad value 3" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(NewInvalidArgument("bad value"), "read %q", "input.txt")
	if err.Error() != `read "input.txt": bad value` {
		t.Errorf("unexpected message: %q", err.Error())
	}

	if !IsInvalidArgument(err) {
		t.Errorf("wrapped InvalidArgument is not recognized")
	}
}
