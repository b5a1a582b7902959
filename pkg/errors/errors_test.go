package errors

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewError(t *testing.T) {
	Convey("Given a mix of errors and messages", t, func() {
		first := errors.New("close page")
		err := NewError(first, "browser teardown", nil)

		Convey("Then every part shows up in the message", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "close page\nbrowser teardown")
		})

		Convey("And the wrapped error is reachable", func() {
			So(errors.Is(err, first), ShouldBeTrue)
		})
	})

	Convey("Given nothing but nil errors", t, func() {
		Convey("Then no error is produced", func() {
			So(NewError(nil), ShouldBeNil)
		})
	})
}

func TestInvalidURLFormatError(t *testing.T) {
	Convey("Given a rejected URL", t, func() {
		err := NewInvalidURLFormatError(
			"https://example.com/foo",
			"https://<host>/plans/code/<code>",
			"https://<host>/plans/code/<code>/printing",
		)

		Convey("Then it matches the sentinel", func() {
			So(errors.Is(err, ErrInvalidURLFormat), ShouldBeTrue)
		})

		Convey("And the message names both shapes and the input", func() {
			So(err.Error(), ShouldContainSubstring, "https://<host>/plans/code/<code>\n")
			So(err.Error(), ShouldContainSubstring, "https://<host>/plans/code/<code>/printing")
			So(err.Error(), ShouldEndWith, "got: https://example.com/foo")
		})
	})
}
